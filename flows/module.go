package flows

import (
	"github.com/reusee/dscope"
	"github.com/reusee/fastev/cmds"
	"github.com/reusee/fastev/configs"
	"github.com/reusee/fastev/logs"
	"github.com/reusee/fastev/modes"
	"github.com/reusee/fastev/scripts"
	"github.com/reusee/fastev/vars"
)

type Module struct {
	dscope.Module
	Scripts scripts.Module
	Logs    logs.Module
}

var (
	slowEvalFlag = cmds.Switch("-slow-eval")
	slowSkipFlag = cmds.Switch("-slow-skip")
)

var enabled = true

func (Module) Flags(
	loader configs.Loader,
	logger logs.Logger,
) *Flags {
	fastEval := *vars.FirstNonZero(configs.First[*bool](loader, "fast_eval"), &enabled)
	fastSkip := *vars.FirstNonZero(configs.First[*bool](loader, "fast_skip"), &enabled)
	if *slowEvalFlag {
		fastEval = false
	}
	if *slowSkipFlag {
		fastSkip = false
	}
	flags := NewFlags(fastEval, fastSkip)
	logger.Debug("fast paths", "flags", flags)
	return flags
}

func (Module) Shim(
	flags *Flags,
	compile scripts.Compiler,
	logger logs.Logger,
	mode modes.Mode,
) *Shim {
	return NewShim(flags, compile, logger, mode)
}
