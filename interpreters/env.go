package interpreters

import (
	"github.com/reusee/fastev/scripts"
	"go.starlark.net/starlark"
)

func (it *Interpreter) scriptEnv() scripts.Env {
	state := it.state
	list := it.list

	switches := scripts.NewIndexed("switches",
		func(id int) starlark.Value {
			return starlark.Bool(state.Switches.Value(id))
		},
		func(id int, v starlark.Value) error {
			state.Switches.SetValue(id, bool(v.Truth()))
			return nil
		},
	)

	variables := scripts.NewIndexed("variables",
		func(id int) starlark.Value {
			return starlark.MakeInt(state.Variables.Value(id))
		},
		func(id int, v starlark.Value) error {
			i, err := starlark.AsInt32(v)
			if err != nil {
				return err
			}
			state.Variables.SetValue(id, i)
			return nil
		},
	)

	event, err := scripts.ToValue(map[string]any{
		"list":  list.Name,
		"depth": it.depth,
	})
	if err != nil {
		// map of string and int always converts
		panic(err)
	}

	logger := it.logger
	return scripts.Env{
		Thread: &starlark.Thread{
			Name: list.Name,
			Print: func(_ *starlark.Thread, msg string) {
				logger.Info("script print", "list", list.Name, "msg", msg)
			},
		},
		Predeclared: starlark.StringDict{
			"switches":  switches,
			"variables": variables,
			"event":     event,
		},
	}
}
