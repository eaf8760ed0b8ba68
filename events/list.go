package events

import "sync"

// List is an event's command list.
// Its structure must not change once an interpreter has executed it:
// label indexes and command resolutions are computed against the initial order.
type List struct {
	Name     string
	Commands []*Command

	labelsOnce sync.Once
	labels     *LabelIndex
}

func NewList(name string, commands ...*Command) *List {
	return &List{
		Name:     name,
		Commands: commands,
	}
}

func (l *List) Len() int {
	return len(l.Commands)
}

// At returns the command at i, or nil when i is out of range.
func (l *List) At(i int) *Command {
	if i < 0 || i >= len(l.Commands) {
		return nil
	}
	return l.Commands[i]
}

// Labels returns the list's label index, building it on first use.
func (l *List) Labels() *LabelIndex {
	l.labelsOnce.Do(func() {
		l.labels = BuildLabelIndex(l)
	})
	return l.labels
}
