package events

import (
	"encoding/json"
	"testing"
)

func TestListAt(t *testing.T) {
	list := NewList("test",
		NewCommand(CodeComment, 0, "a"),
		NewCommand(CodeEnd, 0),
	)
	if list.Len() != 2 {
		t.Fatalf("got %v", list.Len())
	}
	if list.At(-1) != nil {
		t.Fatal()
	}
	if list.At(2) != nil {
		t.Fatal()
	}
	if list.At(0).Code != CodeComment {
		t.Fatalf("got %v", list.At(0).Code)
	}
	if list.At(0).Param(0) != "a" {
		t.Fatalf("got %v", list.At(0).Param(0))
	}
	if list.At(0).Param(1) != nil {
		t.Fatal()
	}
}

func TestLabelIndex(t *testing.T) {
	list := NewList("test",
		NewCommand(CodeLabel, 0, "a"),
		NewCommand(CodeComment, 0),
		NewCommand(CodeLabel, 1, "b"),
		NewCommand(CodeLabel, 0, "a"),
		NewCommand(CodeEnd, 0),
	)
	labels := list.Labels()
	if labels.Len() != 2 {
		t.Fatalf("got %v", labels.Len())
	}
	if i, ok := labels.Lookup("a"); !ok || i != 0 {
		t.Fatalf("got %v %v", i, ok)
	}
	if i, ok := labels.Lookup("b"); !ok || i != 2 {
		t.Fatalf("got %v %v", i, ok)
	}
	if _, ok := labels.Lookup("missing"); ok {
		t.Fatal()
	}
	if list.Labels() != labels {
		t.Fatal("label index rebuilt")
	}
}

func TestResolutionCell(t *testing.T) {
	command := NewCommand(CodeBreakLoop, 1)
	if command.Resolved() != nil {
		t.Fatal()
	}
	command.Resolve(testResolution(3))
	if r := command.Resolved(); r == nil || r.Destination() != 3 {
		t.Fatalf("got %v", r)
	}
}

type testResolution int

func (t testResolution) Destination() int {
	return int(t)
}

func TestInt(t *testing.T) {
	cases := []struct {
		in   any
		want int
	}{
		{nil, 0},
		{1, 1},
		{int64(2), 2},
		{uint8(3), 3},
		{4.9, 4},
		{float32(-1.5), -1},
		{json.Number("7"), 7},
		{true, 1},
		{"8", 0},
	}
	for _, c := range cases {
		if got := Int(c.in); got != c.want {
			t.Fatalf("Int(%#v): got %v", c.in, got)
		}
	}
}

func TestFromRecords(t *testing.T) {
	var records []Record
	if err := json.Unmarshal([]byte(`[
		{"code": 118, "indent": 0, "parameters": ["top"]},
		{"code": 0, "indent": 0, "parameters": []}
	]`), &records); err != nil {
		t.Fatal(err)
	}
	list := FromRecords("records", records)
	if list.Len() != 2 {
		t.Fatalf("got %v", list.Len())
	}
	if list.At(0).Code != CodeLabel {
		t.Fatalf("got %v", list.At(0).Code)
	}
	if i, ok := list.Labels().Lookup("top"); !ok || i != 0 {
		t.Fatalf("got %v %v", i, ok)
	}
	if CodeLabel.String() != "label" {
		t.Fatalf("got %v", CodeLabel.String())
	}
	if Code(9999).String() != "code(9999)" {
		t.Fatalf("got %v", Code(9999).String())
	}
}
