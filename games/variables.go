package games

import "maps"

type Variables struct {
	values map[int]int
}

func NewVariables() *Variables {
	return &Variables{
		values: make(map[int]int),
	}
}

func (v *Variables) Value(id int) int {
	return v.values[id]
}

func (v *Variables) SetValue(id int, value int) {
	if value == 0 {
		delete(v.values, id)
		return
	}
	v.values[id] = value
}

// Snapshot returns the non-zero variables.
func (v *Variables) Snapshot() map[int]int {
	return maps.Clone(v.values)
}
