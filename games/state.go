package games

import (
	"math/rand/v2"

	"github.com/reusee/fastev/events"
)

type State struct {
	Switches     *Switches
	Variables    *Variables
	CommonEvents map[int]*CommonEvent
	Player       *Character
	Rand         *rand.Rand
}

func NewState(seed uint64) *State {
	return &State{
		Switches:     NewSwitches(),
		Variables:    NewVariables(),
		CommonEvents: make(map[int]*CommonEvent),
		Player:       new(Character),
		Rand:         rand.New(rand.NewPCG(seed, seed)),
	}
}

type CommonEvent struct {
	ID   int
	Name string
	List *events.List
}

func (s *State) AddCommonEvent(id int, name string, list *events.List) {
	s.CommonEvents[id] = &CommonEvent{
		ID:   id,
		Name: name,
		List: list,
	}
}
