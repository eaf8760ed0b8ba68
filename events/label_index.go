package events

type LabelIndex struct {
	indexes map[string]int
}

func BuildLabelIndex(list *List) *LabelIndex {
	ret := &LabelIndex{
		indexes: make(map[string]int),
	}
	for i, command := range list.Commands {
		if command.Code != CodeLabel {
			continue
		}
		name := String(command.Param(0))
		// first declaration wins, same as a linear search for the label
		if _, ok := ret.indexes[name]; ok {
			continue
		}
		ret.indexes[name] = i
	}
	return ret
}

func (l *LabelIndex) Lookup(name string) (int, bool) {
	i, ok := l.indexes[name]
	return i, ok
}

func (l *LabelIndex) Len() int {
	return len(l.indexes)
}
