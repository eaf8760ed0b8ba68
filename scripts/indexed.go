package scripts

import (
	"fmt"

	"go.starlark.net/starlark"
)

// Indexed exposes integer-keyed host storage to scripts as a mapping: x[i], x[i] = v.
type Indexed struct {
	name string
	get  func(int) starlark.Value
	set  func(int, starlark.Value) error
}

var _ starlark.HasSetKey = new(Indexed)

func NewIndexed(
	name string,
	get func(int) starlark.Value,
	set func(int, starlark.Value) error,
) *Indexed {
	return &Indexed{
		name: name,
		get:  get,
		set:  set,
	}
}

func (x *Indexed) String() string {
	return "<" + x.name + ">"
}

func (x *Indexed) Type() string {
	return x.name
}

func (x *Indexed) Freeze() {}

func (x *Indexed) Truth() starlark.Bool {
	return starlark.True
}

func (x *Indexed) Hash() (uint32, error) {
	return 0, fmt.Errorf("unhashable type: %s", x.name)
}

func (x *Indexed) Get(k starlark.Value) (starlark.Value, bool, error) {
	i, err := starlark.AsInt32(k)
	if err != nil {
		return nil, false, fmt.Errorf("%s index: %w", x.name, err)
	}
	return x.get(i), true, nil
}

func (x *Indexed) SetKey(k, v starlark.Value) error {
	if x.set == nil {
		return fmt.Errorf("%s is read-only", x.name)
	}
	i, err := starlark.AsInt32(k)
	if err != nil {
		return fmt.Errorf("%s index: %w", x.name, err)
	}
	return x.set(i, v)
}
