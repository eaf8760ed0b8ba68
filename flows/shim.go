package flows

import (
	"reflect"

	"github.com/reusee/fastev/events"
	"github.com/reusee/fastev/logs"
	"github.com/reusee/fastev/modes"
	"github.com/reusee/fastev/scripts"
)

// Shim sits between the interpreter's dispatch and its handlers for the memoized command kinds.
type Shim struct {
	flags   *Flags
	compile scripts.Compiler
	logger  logs.Logger
	verify  bool
	stats   *Stats
}

func NewShim(
	flags *Flags,
	compile scripts.Compiler,
	logger logs.Logger,
	mode modes.Mode,
) *Shim {
	return &Shim{
		flags:   flags,
		compile: compile,
		logger:  logger,
		verify:  mode == modes.ModeDevelopment,
		stats:   new(Stats),
	}
}

func (s *Shim) Flags() *Flags {
	return s.flags
}

func (s *Shim) Stats() *Stats {
	return s.stats
}

// Setup is called when list becomes active in an interpreter.
func (s *Shim) Setup(list *events.List) {
	if !s.flags.FastSkip() {
		return
	}
	labels := list.Labels()
	s.logger.Debug("list setup",
		"list", list.Name,
		"commands", list.Len(),
		"labels", labels.Len(),
	)
}

func (s *Shim) Break(m Machine, slow Slow) (bool, error) {
	return controlFlow(s, m, KindBreak, slow,
		func(list *events.List, index, _ int) Break {
			return ResolveBreak(list, index)
		},
		func(m Machine, r Break) {
			m.SetIndex(r.Next)
		},
	)
}

func (s *Shim) Repeat(m Machine, slow Slow) (bool, error) {
	return controlFlow(s, m, KindRepeat, slow,
		ResolveRepeat,
		func(m Machine, r Repeat) {
			m.SetIndex(r.Next)
		},
	)
}

func (s *Shim) Jump(m Machine, label string, slow Slow) (bool, error) {
	return controlFlow(s, m, KindJump, slow,
		func(list *events.List, index, indent int) Jump {
			return ResolveJump(list, index, indent, label)
		},
		func(m Machine, r Jump) {
			for _, indent := range r.Crossings {
				m.ClearBranch(indent)
			}
			m.SetIndex(r.Next)
		},
	)
}

func (s *Shim) Skip(m Machine, slow func()) {
	_, _ = controlFlow(s, m, KindSkip,
		func() (bool, error) {
			slow()
			return true, nil
		},
		ResolveSkip,
		func(m Machine, r Skip) {
			m.SetIndex(r.Next)
		},
	)
}

func controlFlow[R events.Resolution](
	s *Shim,
	m Machine,
	kind Kind,
	slow Slow,
	resolve func(list *events.List, index, indent int) R,
	apply func(Machine, R),
) (bool, error) {
	if !s.flags.FastSkip() {
		return slow()
	}

	list := m.List()
	index := m.Index()
	command := list.At(index)

	if r, ok := command.Resolved().(R); ok {
		s.stats.hit(kind)
		if s.verify {
			s.check(list, index, kind, r, resolve(list, index, m.Indent()))
		}
		apply(m, r)
		return true, nil
	}

	s.stats.miss(kind)
	r := resolve(list, index, m.Indent())
	command.Resolve(r)
	apply(m, r)
	return true, nil
}

// check reports a stored resolution that no longer matches the list
func (s *Shim) check(list *events.List, index int, kind Kind, stored, fresh events.Resolution) {
	if reflect.DeepEqual(stored, fresh) {
		return
	}
	s.logger.Warn("stale resolution",
		"list", list.Name,
		"index", index,
		"kind", kind,
		"stored", stored.Destination(),
		"fresh", fresh.Destination(),
	)
}

func (s *Shim) Script(m Machine, slow Slow) (bool, error) {
	if !s.flags.FastEval() {
		return slow()
	}

	list := m.List()
	index := m.Index()
	command := list.At(index)

	r, ok := command.Resolved().(Script)
	if ok {
		s.stats.hit(KindScript)
		m.SetIndex(r.Next)
		if err := r.Unit.Run(m.ScriptEnv()); err != nil {
			return false, err
		}
		return true, nil
	}

	s.stats.miss(KindScript)
	r, err := ResolveScript(list, index, s.compile)
	if err != nil {
		return false, err
	}
	m.SetIndex(r.Next)
	if err := r.Unit.Run(m.ScriptEnv()); err != nil {
		return false, err
	}
	command.Resolve(r)
	return true, nil
}

// RouteScript runs a movement-route script step.
func (s *Shim) RouteScript(env scripts.Env, src string) error {
	if !s.flags.FastEval() {
		return scripts.Exec(env, src)
	}
	unit, err := s.compile(src)
	if err != nil {
		return err
	}
	return unit.Run(env)
}
