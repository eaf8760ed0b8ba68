package scripts

import (
	"fmt"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

const fileName = "script"

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
	GlobalReassign:  true,
}

// free names are bound by the host at run time
func isPredeclared(name string) bool {
	return !starlark.Universe.Has(name)
}

type CompileError struct {
	Source string
	Err    error
}

func (c *CompileError) Error() string {
	return fmt.Sprintf("compile script: %v", c.Err)
}

func (c *CompileError) Unwrap() error {
	return c.Err
}

func compile(src string) (*Unit, error) {
	_, program, err := starlark.SourceProgramOptions(fileOptions, fileName, src, isPredeclared)
	if err != nil {
		return nil, &CompileError{
			Source: src,
			Err:    err,
		}
	}
	return &Unit{
		Source:  src,
		program: program,
	}, nil
}
