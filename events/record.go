package events

// Record is the serialized form of a command in event data files.
type Record struct {
	Code       int   `json:"code"`
	Indent     int   `json:"indent"`
	Parameters []any `json:"parameters"`
}

func FromRecords(name string, records []Record) *List {
	commands := make([]*Command, 0, len(records))
	for _, record := range records {
		commands = append(commands, &Command{
			Code:       Code(record.Code),
			Indent:     record.Indent,
			Parameters: record.Parameters,
		})
	}
	return NewList(name, commands...)
}
