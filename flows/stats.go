package flows

import (
	"log/slog"
	"sync/atomic"
)

type Kind uint8

const (
	KindBreak Kind = iota
	KindRepeat
	KindJump
	KindSkip
	KindScript
	numKinds
)

func (k Kind) String() string {
	switch k {
	case KindBreak:
		return "break"
	case KindRepeat:
		return "repeat"
	case KindJump:
		return "jump"
	case KindSkip:
		return "skip"
	case KindScript:
		return "script"
	}
	return "unknown"
}

// Stats counts resolution cache hits and misses per command kind.
type Stats struct {
	hits   [numKinds]atomic.Int64
	misses [numKinds]atomic.Int64
}

func (s *Stats) hit(kind Kind) {
	s.hits[kind].Add(1)
}

func (s *Stats) miss(kind Kind) {
	s.misses[kind].Add(1)
}

func (s *Stats) Hits(kind Kind) int64 {
	return s.hits[kind].Load()
}

func (s *Stats) Misses(kind Kind) int64 {
	return s.misses[kind].Load()
}

var _ slog.LogValuer = new(Stats)

func (s *Stats) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, numKinds)
	for kind := range numKinds {
		attrs = append(attrs, slog.Group(kind.String(),
			"hits", s.Hits(kind),
			"misses", s.Misses(kind),
		))
	}
	return slog.GroupValue(attrs...)
}
