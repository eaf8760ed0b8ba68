package games

type Switches struct {
	values map[int]bool
}

func NewSwitches() *Switches {
	return &Switches{
		values: make(map[int]bool),
	}
}

func (s *Switches) Value(id int) bool {
	return s.values[id]
}

func (s *Switches) SetValue(id int, value bool) {
	if value {
		s.values[id] = true
	} else {
		delete(s.values, id)
	}
}
