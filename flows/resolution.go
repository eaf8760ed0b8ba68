package flows

import (
	"github.com/reusee/fastev/events"
	"github.com/reusee/fastev/scripts"
)

// Break is the resolved target of a break-loop command: the repeat-above command closing the loop.
type Break struct {
	Next int
}

// Repeat is the resolved target of a repeat-above command: the loop command opening the loop.
type Repeat struct {
	Next int
}

// Jump is the resolved target of a jump-to-label command.
// Crossings lists the indent levels whose branch memory is cleared on every jump.
type Jump struct {
	Next      int
	Crossings []int
}

// Skip is the last command inside the block following a branching command.
type Skip struct {
	Next int
}

// Script is a compiled script command. Absorbed continuation commands are skipped over on every visit.
type Script struct {
	Next     int
	Unit     *scripts.Unit
	Absorbed int
}

var (
	_ events.Resolution = Break{}
	_ events.Resolution = Repeat{}
	_ events.Resolution = Jump{}
	_ events.Resolution = Skip{}
	_ events.Resolution = Script{}
)

func (b Break) Destination() int {
	return b.Next
}

func (r Repeat) Destination() int {
	return r.Next
}

func (j Jump) Destination() int {
	return j.Next
}

func (s Skip) Destination() int {
	return s.Next
}

func (s Script) Destination() int {
	return s.Next
}
