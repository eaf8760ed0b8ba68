package interpreters

import (
	"fmt"

	"github.com/reusee/fastev/events"
	"github.com/reusee/fastev/scripts"
	"go.starlark.net/starlark"
)

const (
	conditionSwitch   = 0
	conditionVariable = 1
	conditionScript   = 12
)

func (it *Interpreter) condition(params []any) (bool, error) {
	switch kind := events.Int(paramAt(params, 0)); kind {

	case conditionSwitch:
		value := it.state.Switches.Value(events.Int(paramAt(params, 1)))
		return value == (events.Int(paramAt(params, 2)) == 0), nil

	case conditionVariable:
		value := it.state.Variables.Value(events.Int(paramAt(params, 1)))
		operand := events.Int(paramAt(params, 3))
		if events.Int(paramAt(params, 2)) != 0 {
			operand = it.state.Variables.Value(operand)
		}
		return compare(value, operand, events.Int(paramAt(params, 4))), nil

	case conditionScript:
		value, err := scripts.Eval(it.env, events.String(paramAt(params, 1)))
		if err != nil {
			return false, err
		}
		return bool(value.Truth()), nil

	default:
		return false, fmt.Errorf("unsupported condition type %d", kind)
	}
}

func compare(a, b int, op int) bool {
	switch op {
	case 0:
		return a == b
	case 1:
		return a >= b
	case 2:
		return a <= b
	case 3:
		return a > b
	case 4:
		return a < b
	case 5:
		return a != b
	}
	return false
}

const (
	operandConstant = 0
	operandVariable = 1
	operandRandom   = 2
	operandScript   = 4
)

func (it *Interpreter) operand(params []any) (int, error) {
	switch kind := events.Int(paramAt(params, 3)); kind {

	case operandConstant:
		return events.Int(paramAt(params, 4)), nil

	case operandVariable:
		return it.state.Variables.Value(events.Int(paramAt(params, 4))), nil

	case operandRandom:
		lo := events.Int(paramAt(params, 4))
		hi := events.Int(paramAt(params, 5))
		if hi < lo {
			lo, hi = hi, lo
		}
		return lo + it.state.Rand.IntN(hi-lo+1), nil

	case operandScript:
		value, err := scripts.Eval(it.env, events.String(paramAt(params, 4)))
		if err != nil {
			return 0, err
		}
		i, err := starlark.AsInt32(value)
		if err != nil {
			return 0, fmt.Errorf("variable operand: %w", err)
		}
		return i, nil

	default:
		return 0, fmt.Errorf("unsupported operand type %d", kind)
	}
}
