package flows

import (
	"github.com/reusee/fastev/events"
	"github.com/reusee/fastev/scripts"
)

// Machine is the interpreter state the shim reads and moves.
type Machine interface {
	List() *events.List
	Index() int
	SetIndex(int)
	Indent() int
	// ClearBranch forgets the branch outcome remembered at indent.
	ClearBranch(indent int)
	ScriptEnv() scripts.Env
}

// Slow is the unmodified handler for the dispatched command.
type Slow func() (bool, error)
