package flows

import (
	"fmt"
	"sync/atomic"

	"github.com/reusee/fastev/vars"
)

// Flags gate the fast paths. FastEval covers script commands, FastSkip every other control-flow command.
// Turning a flag off takes effect at the next dispatched command; stored resolutions are kept.
type Flags struct {
	fastEval atomic.Bool
	fastSkip atomic.Bool
}

func NewFlags(fastEval, fastSkip bool) *Flags {
	f := new(Flags)
	f.fastEval.Store(fastEval)
	f.fastSkip.Store(fastSkip)
	return f
}

func (f *Flags) FastEval() bool {
	return f.fastEval.Load()
}

func (f *Flags) FastSkip() bool {
	return f.fastSkip.Load()
}

func (f *Flags) SetFastEval(v bool) {
	f.fastEval.Store(v)
}

func (f *Flags) SetFastSkip(v bool) {
	f.fastSkip.Store(v)
}

func (f *Flags) String() string {
	return fmt.Sprintf("fasteval=%v fastskip=%v", f.FastEval(), f.FastSkip())
}

const (
	PluginName     = "fastev"
	SetCommandName = "set"
)

// Set applies the arguments of the set plugin command. Absent arguments leave a flag unchanged.
func (f *Flags) Set(args map[string]string) {
	if v, ok := args["fasteval"]; ok {
		f.SetFastEval(vars.StrToBool(v))
	}
	if v, ok := args["fastskip"]; ok {
		f.SetFastSkip(vars.StrToBool(v))
	}
}
