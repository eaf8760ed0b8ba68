package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/fastev/logs"
	"github.com/reusee/fastev/scripts"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens a script REPL over env on stdin. It returns when the input ends.
type Tap func(ctx context.Context, what string, env scripts.Env)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, env scripts.Env) {
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Sorted(maps.Keys(env.Predeclared)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread := env.Thread
		if thread == nil {
			thread = &starlark.Thread{
				Name: "repl",
			}
		}
		globals := maps.Clone(env.Predeclared)
		if globals == nil {
			globals = make(starlark.StringDict)
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
			GlobalReassign:  true,
		}, thread, globals)
	}
}
