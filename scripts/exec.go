package scripts

import (
	"fmt"

	"go.starlark.net/starlark"
)

// Exec compiles src without caching and runs it.
func Exec(env Env, src string) error {
	unit, err := compile(src)
	if err != nil {
		return err
	}
	return unit.Run(env)
}

// Eval evaluates a single expression. Results are never cached.
func Eval(env Env, expr string) (starlark.Value, error) {
	thread := env.Thread
	if thread == nil {
		thread = &starlark.Thread{
			Name: fileName,
		}
	}
	value, err := starlark.EvalOptions(fileOptions, thread, fileName, expr, env.Predeclared)
	if err != nil {
		return nil, fmt.Errorf("eval %q: %w", expr, err)
	}
	return value, nil
}
