package main

import (
	"context"
	"fmt"
	"maps"
	"os"
	"sync"
	"time"

	"github.com/reusee/dscope"
	"github.com/reusee/fastev/cmds"
	"github.com/reusee/fastev/debugs"
	"github.com/reusee/fastev/events"
	"github.com/reusee/fastev/flows"
	"github.com/reusee/fastev/games"
	"github.com/reusee/fastev/interpreters"
	"github.com/reusee/fastev/logs"
	"github.com/reusee/fastev/modes"
	"github.com/reusee/fastev/syncs"
)

var (
	programFlag  = cmds.Var[string]("-program")
	benchFlag    = cmds.Var[int]("-bench")
	parallelFlag = cmds.Var[int]("-parallel")
	seedFlag     = cmds.Var[uint64]("-seed")
	compareFlag  = cmds.Switch("-compare")
	tapFlag      = cmds.Switch("-tap")
	timeoutFlag  = cmds.Var[time.Duration]("-timeout")
)

func main() {
	cmds.Execute(os.Args[1:])
	ctx := context.Background()
	if *timeoutFlag > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeoutFlag)
		defer cancel()
	}

	if *programFlag == "" {
		fmt.Fprintln(os.Stderr, "no program, use -program <file>")
		os.Exit(-1)
	}

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		newInterpreter interpreters.New,
		shim *flows.Shim,
		seed Seed,
		tap debugs.Tap,
	) {
		program, err := OpenProgram(*programFlag)
		ce(err)

		it, variables, err := run(ctx, program, newInterpreter, uint64(seed))
		ce(err)
		logger.Info("done",
			"variables", variables,
		)
		if *tapFlag {
			tap(ctx, "program end", it.ScriptEnv())
		}

		if *compareFlag {
			scope.Fork(func() *flows.Flags {
				return flows.NewFlags(false, false)
			}).Call(func(
				newInterpreter interpreters.New,
			) {
				_, slowVariables, err := run(ctx, program, newInterpreter, uint64(seed))
				ce(err)
				if !maps.Equal(variables, slowVariables) {
					ce(fmt.Errorf("fast and slow runs differ: %v %v", variables, slowVariables))
				}
				logger.Info("fast and slow runs match")
			})
		}

		if *benchFlag > 0 {
			ce(bench(ctx, program, newInterpreter, uint64(seed), *benchFlag, *parallelFlag, logger))
		}

		logger.Info("resolutions",
			"stats", shim.Stats(),
		)
	})
}

func run(
	ctx context.Context,
	program *Program,
	newInterpreter interpreters.New,
	seed uint64,
) (*interpreters.Interpreter, map[int]int, error) {
	list, state, err := program.Load(seed)
	if err != nil {
		return nil, nil, err
	}
	it := newInterpreter(state)
	it.Setup(list)
	if err := it.Run(ctx); err != nil {
		return nil, nil, err
	}
	return it, state.Variables.Snapshot(), nil
}

type loaded struct {
	list         *events.List
	commonEvents map[int]*games.CommonEvent
}

// bench runs the program n times, at most parallel runs at once. Loaded lists are pooled
// and reused, so later runs execute resolved commands.
func bench(
	ctx context.Context,
	program *Program,
	newInterpreter interpreters.New,
	seed uint64,
	n int,
	parallel int,
	logger logs.Logger,
) error {
	parallel = max(parallel, 1)
	pool := make(chan loaded, parallel)
	for range parallel {
		list, state, err := program.Load(seed)
		if err != nil {
			return err
		}
		pool <- loaded{
			list:         list,
			commonEvents: state.CommonEvents,
		}
	}

	sem := syncs.NewSemaphore(parallel)
	var errOnce sync.Once
	var benchErr error
	var wg sync.WaitGroup
	start := time.Now()

	for range n {
		sem.Acquire()
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release()
			l := <-pool
			defer func() {
				pool <- l
			}()

			_, state, err := program.Load(seed)
			if err == nil {
				state.CommonEvents = l.commonEvents
				it := newInterpreter(state)
				it.Setup(l.list)
				err = it.Run(ctx)
			}
			if err != nil {
				errOnce.Do(func() {
					benchErr = err
				})
			}
		}()
	}
	wg.Wait()
	if benchErr != nil {
		return benchErr
	}

	elapsed := time.Since(start)
	logger.Info("bench",
		"runs", n,
		"parallel", parallel,
		"elapsed", elapsed,
		"per_run", elapsed/time.Duration(n),
	)
	return nil
}
