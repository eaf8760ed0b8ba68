package scripts

import (
	"fmt"

	"go.starlark.net/starlark"
)

// Env is the ambient context a unit runs in.
type Env struct {
	Thread      *starlark.Thread
	Predeclared starlark.StringDict
}

// Unit is a compiled script. It takes no arguments and may be run any number of times;
// each run starts with fresh script globals.
type Unit struct {
	Source  string
	program *starlark.Program
}

func (u *Unit) Run(env Env) error {
	thread := env.Thread
	if thread == nil {
		thread = &starlark.Thread{
			Name: fileName,
		}
	}
	if _, err := u.program.Init(thread, env.Predeclared); err != nil {
		return fmt.Errorf("run script: %w", err)
	}
	return nil
}
