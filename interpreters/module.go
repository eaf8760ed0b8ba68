package interpreters

import (
	"github.com/reusee/dscope"
	"github.com/reusee/fastev/flows"
	"github.com/reusee/fastev/games"
	"github.com/reusee/fastev/logs"
)

type Module struct {
	dscope.Module
	Flows flows.Module
	Logs  logs.Module
}

// Plugins provides the registry with the set command of the fast path plugin registered.
func (Module) Plugins(
	flags *flows.Flags,
	logger logs.Logger,
) *Plugins {
	plugins := NewPlugins()
	plugins.Register(flows.PluginName, flows.SetCommandName, func(args map[string]string) error {
		flags.Set(args)
		logger.Info("fast paths set", "flags", flags)
		return nil
	})
	return plugins
}

// New creates an idle interpreter over state.
type New func(state *games.State) *Interpreter

func (Module) New(
	shim *flows.Shim,
	plugins *Plugins,
	logger logs.Logger,
	newSpan logs.NewSpan,
) New {
	handlers := dispatchTable()
	return func(state *games.State) *Interpreter {
		return &Interpreter{
			state:    state,
			shim:     shim,
			plugins:  plugins,
			handlers: handlers,
			logger:   logger,
			newSpan:  newSpan,
		}
	}
}
