package interpreters

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/reusee/fastev/events"
	"github.com/reusee/fastev/flows"
	"github.com/reusee/fastev/games"
	"github.com/reusee/fastev/logs"
	"github.com/reusee/fastev/scripts"
)

type Branch int8

const (
	BranchUnknown Branch = iota
	BranchTrue
	BranchFalse
)

const maxDepth = 100

var ErrCallDepth = errors.New("common event call has exceeded maximum depth")

type Interpreter struct {
	list     *events.List
	index    int
	indent   int
	branches []Branch
	depth    int

	state    *games.State
	shim     *flows.Shim
	plugins  *Plugins
	handlers map[events.Code]Handler
	logger   logs.Logger
	newSpan  logs.NewSpan
	env      scripts.Env

	// set while Run is executing, for nested common event runs
	ctx context.Context
}

var _ flows.Machine = new(Interpreter)

// Setup activates list and resets the execution position.
func (it *Interpreter) Setup(list *events.List) {
	it.list = list
	it.index = 0
	it.indent = 0
	it.branches = it.branches[:0]
	it.env = it.scriptEnv()
	it.shim.Setup(list)
}

func (it *Interpreter) IsRunning() bool {
	return it.list != nil
}

func (it *Interpreter) terminate() {
	it.list = nil
	it.index = 0
	it.branches = it.branches[:0]
}

func (it *Interpreter) List() *events.List {
	return it.list
}

func (it *Interpreter) Index() int {
	return it.index
}

func (it *Interpreter) SetIndex(i int) {
	it.index = i
}

func (it *Interpreter) Indent() int {
	return it.indent
}

func (it *Interpreter) Depth() int {
	return it.depth
}

func (it *Interpreter) State() *games.State {
	return it.state
}

func (it *Interpreter) ScriptEnv() scripts.Env {
	return it.env
}

func (it *Interpreter) Branch(indent int) Branch {
	if indent < 0 || indent >= len(it.branches) {
		return BranchUnknown
	}
	return it.branches[indent]
}

// Branches returns a copy of the branch memory.
func (it *Interpreter) Branches() []Branch {
	return slices.Clone(it.branches)
}

func (it *Interpreter) setBranch(indent int, b Branch) {
	if indent >= len(it.branches) {
		it.branches = append(it.branches, make([]Branch, indent+1-len(it.branches))...)
	}
	it.branches[indent] = b
}

func (it *Interpreter) ClearBranch(indent int) {
	if indent < 0 || indent >= len(it.branches) {
		return
	}
	it.branches[indent] = BranchUnknown
}

func (it *Interpreter) currentCommand() *events.Command {
	return it.list.At(it.index)
}

func (it *Interpreter) nextCode() events.Code {
	if command := it.list.At(it.index + 1); command != nil {
		return command.Code
	}
	return events.CodeEnd
}

// Step executes the current command and advances. It returns false when the command asks
// execution to stop for this tick.
func (it *Interpreter) Step() (bool, error) {
	if it.list == nil {
		return false, nil
	}
	command := it.currentCommand()
	if command == nil {
		it.terminate()
		return true, nil
	}
	it.indent = command.Indent
	if handler, ok := it.handlers[command.Code]; ok {
		index := it.index
		cont, err := handler(it, command.Parameters)
		if err != nil {
			return false, fmt.Errorf("%s at %s[%d]: %w", command.Code, it.list.Name, index, err)
		}
		if !cont {
			return false, nil
		}
	}
	it.index++
	return true, nil
}

// Run executes the active list until it terminates.
func (it *Interpreter) Run(ctx context.Context) (err error) {
	if it.list == nil {
		return nil
	}
	ctx, _ = it.newSpan(ctx, "",
		"list", it.list.Name,
		"depth", it.depth,
	)
	defer func() {
		err = logs.WrapSpan(ctx, err)
	}()
	it.ctx = ctx
	defer func() {
		it.ctx = nil
	}()

	for it.IsRunning() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := it.Step(); err != nil {
			return err
		}
	}
	return nil
}

func (it *Interpreter) child(list *events.List) (*Interpreter, error) {
	if it.depth+1 >= maxDepth {
		return nil, ErrCallDepth
	}
	child := &Interpreter{
		depth:    it.depth + 1,
		state:    it.state,
		shim:     it.shim,
		plugins:  it.plugins,
		handlers: it.handlers,
		logger:   it.logger,
		newSpan:  it.newSpan,
	}
	child.Setup(list)
	return child, nil
}
