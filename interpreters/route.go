package interpreters

import (
	"github.com/reusee/fastev/events"
	"github.com/reusee/fastev/games"
)

// commandSetMovementRoute runs the whole route on the player at once.
func (it *Interpreter) commandSetMovementRoute(params []any) (bool, error) {
	route, ok := paramAt(params, 1).(map[string]any)
	if !ok {
		return true, nil
	}
	steps, _ := route["list"].([]any)
	for _, step := range steps {
		m, ok := step.(map[string]any)
		if !ok {
			continue
		}
		code := events.Int(m["code"])
		if code == games.RouteEnd {
			break
		}
		if it.state.Player.Move(code) {
			continue
		}
		if code != games.RouteScript {
			continue
		}
		stepParams, _ := m["parameters"].([]any)
		if err := it.shim.RouteScript(it.env, events.String(paramAt(stepParams, 0))); err != nil {
			return false, err
		}
	}
	return true, nil
}
