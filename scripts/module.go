package scripts

import "github.com/reusee/dscope"

type Module struct {
	dscope.Module
}

type Compiler func(src string) (*Unit, error)

func (Module) Compiler() Compiler {
	return Compile
}
