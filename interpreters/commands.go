package interpreters

import (
	"context"

	"github.com/reusee/fastev/events"
	"github.com/reusee/fastev/scripts"
)

func (it *Interpreter) commandConditionalBranch(params []any) (bool, error) {
	result, err := it.condition(params)
	if err != nil {
		return false, err
	}
	if result {
		it.setBranch(it.indent, BranchTrue)
	} else {
		it.setBranch(it.indent, BranchFalse)
		it.skipBranch()
	}
	return true, nil
}

func (it *Interpreter) commandElse(params []any) (bool, error) {
	if it.Branch(it.indent) != BranchFalse {
		it.skipBranch()
	}
	return true, nil
}

func (it *Interpreter) commandLoop(params []any) (bool, error) {
	return true, nil
}

func (it *Interpreter) commandRepeatAbove(params []any) (bool, error) {
	for it.index > 0 {
		it.index--
		if it.currentCommand().Indent == it.indent {
			break
		}
	}
	return true, nil
}

func (it *Interpreter) commandBreakLoop(params []any) (bool, error) {
	depth := 0
	for it.index < it.list.Len()-1 {
		it.index++
		command := it.currentCommand()
		if command.Code == events.CodeLoop {
			depth++
		}
		if command.Code == events.CodeRepeatAbove {
			if depth > 0 {
				depth--
			} else {
				break
			}
		}
	}
	return true, nil
}

func (it *Interpreter) commandExitEventProcessing(params []any) (bool, error) {
	it.index = it.list.Len()
	return true, nil
}

func (it *Interpreter) commandCommonEvent(params []any) (bool, error) {
	if len(params) == 0 {
		return true, nil
	}
	commonEvent, ok := it.state.CommonEvents[events.Int(params[0])]
	if !ok || commonEvent.List == nil {
		return true, nil
	}
	child, err := it.child(commonEvent.List)
	if err != nil {
		return false, err
	}
	ctx := it.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	if err := child.Run(ctx); err != nil {
		return false, err
	}
	return true, nil
}

func (it *Interpreter) commandJumpToLabel(params []any) (bool, error) {
	name := labelName(params)
	for i, command := range it.list.Commands {
		if command.Code == events.CodeLabel && events.String(command.Param(0)) == name {
			it.jumpTo(i)
			break
		}
	}
	return true, nil
}

func (it *Interpreter) jumpTo(index int) {
	indent := it.indent
	for i := min(index, it.index); i <= max(index, it.index); i++ {
		newIndent := it.list.At(i).Indent
		if newIndent != indent {
			it.ClearBranch(indent)
			indent = newIndent
		}
	}
	it.index = index
}

func (it *Interpreter) commandControlSwitches(params []any) (bool, error) {
	start := events.Int(paramAt(params, 0))
	end := events.Int(paramAt(params, 1))
	value := events.Int(paramAt(params, 2)) == 0
	for id := start; id <= end; id++ {
		it.state.Switches.SetValue(id, value)
	}
	return true, nil
}

func (it *Interpreter) commandControlVariables(params []any) (bool, error) {
	value, err := it.operand(params)
	if err != nil {
		return false, err
	}
	start := events.Int(paramAt(params, 0))
	end := events.Int(paramAt(params, 1))
	operation := events.Int(paramAt(params, 2))
	for id := start; id <= end; id++ {
		it.operateVariable(id, operation, value)
	}
	return true, nil
}

const (
	operationSet = iota
	operationAdd
	operationSub
	operationMul
	operationDiv
	operationMod
)

func (it *Interpreter) operateVariable(id int, operation int, value int) {
	variables := it.state.Variables
	old := variables.Value(id)
	switch operation {
	case operationSet:
		variables.SetValue(id, value)
	case operationAdd:
		variables.SetValue(id, old+value)
	case operationSub:
		variables.SetValue(id, old-value)
	case operationMul:
		variables.SetValue(id, old*value)
	case operationDiv:
		if value != 0 {
			variables.SetValue(id, old/value)
		}
	case operationMod:
		if value != 0 {
			variables.SetValue(id, old%value)
		}
	}
}

func (it *Interpreter) commandScript(params []any) (bool, error) {
	script := events.String(it.currentCommand().Param(0)) + "\n"
	for it.nextCode() == events.CodeScriptContinuation {
		it.index++
		script += events.String(it.currentCommand().Param(0)) + "\n"
	}
	if err := scripts.Exec(it.env, script); err != nil {
		return false, err
	}
	return true, nil
}

func (it *Interpreter) commandPluginCommand(params []any) (bool, error) {
	plugin := events.String(paramAt(params, 0))
	command := events.String(paramAt(params, 1))
	args := make(map[string]string)
	if m, ok := paramAt(params, 3).(map[string]any); ok {
		for k, v := range m {
			args[k] = events.String(v)
		}
	}
	if err := it.plugins.Call(plugin, command, args); err != nil {
		return false, err
	}
	return true, nil
}

func paramAt(params []any, i int) any {
	if i < 0 || i >= len(params) {
		return nil
	}
	return params[i]
}
