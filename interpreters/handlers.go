package interpreters

import (
	"maps"

	"github.com/reusee/fastev/events"
)

// Handler executes a command. It returns false to stop execution for the current tick.
type Handler func(it *Interpreter, params []any) (bool, error)

var slowHandlers = map[events.Code]Handler{
	events.CodeConditionalBranch:   (*Interpreter).commandConditionalBranch,
	events.CodeElse:                (*Interpreter).commandElse,
	events.CodeLoop:                (*Interpreter).commandLoop,
	events.CodeRepeatAbove:         (*Interpreter).commandRepeatAbove,
	events.CodeBreakLoop:           (*Interpreter).commandBreakLoop,
	events.CodeExitEventProcessing: (*Interpreter).commandExitEventProcessing,
	events.CodeCommonEvent:         (*Interpreter).commandCommonEvent,
	events.CodeJumpToLabel:         (*Interpreter).commandJumpToLabel,
	events.CodeControlSwitches:     (*Interpreter).commandControlSwitches,
	events.CodeControlVariables:    (*Interpreter).commandControlVariables,
	events.CodeSetMovementRoute:    (*Interpreter).commandSetMovementRoute,
	events.CodeScript:              (*Interpreter).commandScript,
	events.CodePluginCommand:       (*Interpreter).commandPluginCommand,
}

// dispatchTable overlays the memoizing handlers on the slow ones.
// Each memoizing handler falls back to the slow one while its flag is off.
func dispatchTable() map[events.Code]Handler {
	table := maps.Clone(slowHandlers)

	table[events.CodeBreakLoop] = func(it *Interpreter, params []any) (bool, error) {
		return it.shim.Break(it, func() (bool, error) {
			return it.commandBreakLoop(params)
		})
	}

	table[events.CodeRepeatAbove] = func(it *Interpreter, params []any) (bool, error) {
		return it.shim.Repeat(it, func() (bool, error) {
			return it.commandRepeatAbove(params)
		})
	}

	table[events.CodeJumpToLabel] = func(it *Interpreter, params []any) (bool, error) {
		return it.shim.Jump(it, labelName(params), func() (bool, error) {
			return it.commandJumpToLabel(params)
		})
	}

	table[events.CodeScript] = func(it *Interpreter, params []any) (bool, error) {
		return it.shim.Script(it, func() (bool, error) {
			return it.commandScript(params)
		})
	}

	return table
}

func labelName(params []any) string {
	if len(params) == 0 {
		return ""
	}
	return events.String(params[0])
}

// skipBranch moves to the last command of the block nested under the current one.
func (it *Interpreter) skipBranch() {
	it.shim.Skip(it, it.slowSkipBranch)
}

func (it *Interpreter) slowSkipBranch() {
	for {
		next := it.list.At(it.index + 1)
		if next == nil || next.Indent <= it.indent {
			return
		}
		it.index++
	}
}
