package events

import "fmt"

type Code int

const (
	CodeEnd                 Code = 0
	CodeComment             Code = 108
	CodeConditionalBranch   Code = 111
	CodeLoop                Code = 112
	CodeBreakLoop           Code = 113
	CodeExitEventProcessing Code = 115
	CodeCommonEvent         Code = 117
	CodeLabel               Code = 118
	CodeJumpToLabel         Code = 119
	CodeControlSwitches     Code = 121
	CodeControlVariables    Code = 122
	CodeSetMovementRoute    Code = 205
	CodeScript              Code = 355
	CodePluginCommand       Code = 357
	CodeCommentContinuation Code = 408
	CodeElse                Code = 411
	CodeEndBranch           Code = 412
	CodeRepeatAbove         Code = 413
	CodeScriptContinuation  Code = 655
)

var codeNames = map[Code]string{
	CodeEnd:                 "end",
	CodeComment:             "comment",
	CodeConditionalBranch:   "conditional branch",
	CodeLoop:                "loop",
	CodeBreakLoop:           "break loop",
	CodeExitEventProcessing: "exit event processing",
	CodeCommonEvent:         "common event",
	CodeLabel:               "label",
	CodeJumpToLabel:         "jump to label",
	CodeControlSwitches:     "control switches",
	CodeControlVariables:    "control variables",
	CodeSetMovementRoute:    "set movement route",
	CodeScript:              "script",
	CodePluginCommand:       "plugin command",
	CodeCommentContinuation: "comment continuation",
	CodeElse:                "else",
	CodeEndBranch:           "end branch",
	CodeRepeatAbove:         "repeat above",
	CodeScriptContinuation:  "script continuation",
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("code(%d)", int(c))
}
