package interpreters

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/fastev/configs"
	"github.com/reusee/fastev/events"
	"github.com/reusee/fastev/flows"
	"github.com/reusee/fastev/games"
	"github.com/reusee/fastev/modes"
)

func testScope(t *testing.T, defs ...any) dscope.Scope {
	return dscope.New(
		new(Module),
		modes.ForTest(t),
		dscope.Provide(configs.NewLoader(nil, "")),
	).Fork(defs...)
}

func slowFlags() *flows.Flags {
	return flows.NewFlags(false, false)
}

func cmd(code events.Code, indent int, params ...any) *events.Command {
	return events.NewCommand(code, indent, params...)
}

// setVariable builds a control variables command applying op with a constant to variable id.
func setVariable(indent int, id int, op int, value int) *events.Command {
	return cmd(events.CodeControlVariables, indent, id, id, op, operandConstant, value)
}

func ifVariable(indent int, id int, op int, value int) *events.Command {
	return cmd(events.CodeConditionalBranch, indent, conditionVariable, id, 0, value, op)
}

func testCommonEvent() *events.List {
	return events.NewList("common event 1",
		setVariable(0, 10, operationAdd, 1),
		cmd(events.CodeConditionalBranch, 0, conditionScript, "variables[10] > 1"),
		cmd(events.CodeExitEventProcessing, 1),
		cmd(events.CodeEndBranch, 0),
		cmd(events.CodeScript, 0, "variables[11] = variables[10] * 10"),
		cmd(events.CodeEnd, 0),
	)
}

func testProgram() *events.List {
	return events.NewList("main",
		setVariable(0, 1, operationSet, 0),
		cmd(events.CodeLoop, 0),
		setVariable(1, 1, operationAdd, 1),
		ifVariable(1, 1, 1, 5),
		cmd(events.CodeBreakLoop, 2),
		cmd(events.CodeEndBranch, 1),
		cmd(events.CodeScript, 1, "variables[2] = variables[2] + variables[1]"),
		cmd(events.CodeScriptContinuation, 1, "variables[3] = variables[2] * 2"),
		cmd(events.CodeRepeatAbove, 0),

		cmd(events.CodeLabel, 0, "top"),
		cmd(events.CodeConditionalBranch, 0, conditionSwitch, 1, 0),
		setVariable(1, 4, operationAdd, 100),
		cmd(events.CodeCommonEvent, 1, 1),
		cmd(events.CodeJumpToLabel, 1, "end"),
		cmd(events.CodeElse, 0),
		cmd(events.CodeControlSwitches, 1, 1, 1, 0),
		cmd(events.CodeCommonEvent, 1, 1),
		cmd(events.CodeJumpToLabel, 1, "top"),
		cmd(events.CodeEndBranch, 0),
		setVariable(0, 5, operationSet, 999),
		cmd(events.CodeLabel, 0, "end"),

		cmd(events.CodeLoop, 0),
		setVariable(1, 6, operationAdd, 1),
		setVariable(1, 7, operationSet, 0),
		cmd(events.CodeLoop, 1),
		setVariable(2, 7, operationAdd, 1),
		setVariable(2, 8, operationAdd, 1),
		ifVariable(2, 7, 1, 2),
		cmd(events.CodeBreakLoop, 3),
		cmd(events.CodeEndBranch, 2),
		cmd(events.CodeRepeatAbove, 1),
		ifVariable(1, 6, 1, 3),
		cmd(events.CodeBreakLoop, 2),
		cmd(events.CodeEndBranch, 1),
		cmd(events.CodeRepeatAbove, 0),

		cmd(events.CodeJumpToLabel, 0, "missing"),
		cmd(events.CodeSetMovementRoute, 0, -1, map[string]any{
			"list": []any{
				map[string]any{"code": games.RouteMoveRight},
				map[string]any{"code": games.RouteScript, "parameters": []any{"variables[9] = variables[9] + 1"}},
				map[string]any{"code": games.RouteMoveDown},
				map[string]any{"code": games.RouteEnd},
			},
		}),
		cmd(events.CodeEnd, 0),
	)
}

func testState() *games.State {
	state := games.NewState(42)
	state.AddCommonEvent(1, "common", testCommonEvent())
	return state
}

type traceStep struct {
	Index    int
	Branches []Branch
}

func trace(t *testing.T, it *Interpreter) []traceStep {
	var steps []traceStep
	for it.IsRunning() {
		if _, err := it.Step(); err != nil {
			t.Fatal(err)
		}
		steps = append(steps, traceStep{
			Index:    it.Index(),
			Branches: it.Branches(),
		})
	}
	return steps
}
