package flows

import (
	"strings"

	"github.com/reusee/fastev/events"
	"github.com/reusee/fastev/scripts"
)

// ResolveBreak finds the repeat-above command closing the loop that contains index.
// Without one, the scan stops at the last command.
func ResolveBreak(list *events.List, index int) Break {
	depth := 0
	i := index
	for i < list.Len()-1 {
		i++
		switch list.At(i).Code {
		case events.CodeLoop:
			depth++
		case events.CodeRepeatAbove:
			if depth == 0 {
				return Break{
					Next: i,
				}
			}
			depth--
		}
	}
	return Break{
		Next: i,
	}
}

// ResolveRepeat finds the nearest preceding command at indent. The scan stops at the first command.
func ResolveRepeat(list *events.List, index int, indent int) Repeat {
	i := index
	for i > 0 {
		i--
		if list.At(i).Indent == indent {
			return Repeat{
				Next: i,
			}
		}
	}
	return Repeat{
		Next: i,
	}
}

// ResolveJump resolves a jump from index to label.
// A missing label resolves to index itself, so execution continues with the next command.
func ResolveJump(list *events.List, index int, indent int, label string) Jump {
	next, ok := list.Labels().Lookup(label)
	if !ok {
		return Jump{
			Next: index,
		}
	}

	var crossings []int
	for i := min(next, index); i <= max(next, index); i++ {
		newIndent := list.At(i).Indent
		if newIndent != indent {
			crossings = append(crossings, indent)
			indent = newIndent
		}
	}

	return Jump{
		Next:      next,
		Crossings: crossings,
	}
}

// ResolveSkip finds the last command of the block nested under index.
func ResolveSkip(list *events.List, index int, indent int) Skip {
	i := index
	for {
		next := list.At(i + 1)
		if next == nil || next.Indent <= indent {
			break
		}
		i++
	}
	return Skip{
		Next: i,
	}
}

// ResolveScript joins the script at index with its continuation lines and compiles the result.
func ResolveScript(list *events.List, index int, compile scripts.Compiler) (Script, error) {
	src := ScriptSource(list, index)
	unit, err := compile(src.Text)
	if err != nil {
		return Script{}, err
	}
	return Script{
		Next:     index + src.Absorbed,
		Unit:     unit,
		Absorbed: src.Absorbed,
	}, nil
}

type Source struct {
	Text     string
	Absorbed int
}

// ScriptSource concatenates the script lines starting at index, one line per command.
func ScriptSource(list *events.List, index int) Source {
	var b strings.Builder
	b.WriteString(events.String(list.At(index).Param(0)))
	b.WriteString("\n")
	absorbed := 0
	for {
		next := list.At(index + absorbed + 1)
		if next == nil || next.Code != events.CodeScriptContinuation {
			break
		}
		absorbed++
		b.WriteString(events.String(next.Param(0)))
		b.WriteString("\n")
	}
	return Source{
		Text:     b.String(),
		Absorbed: absorbed,
	}
}
