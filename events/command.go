package events

// Resolution is a memoized control-flow result stored on a command.
// Every resolution knows the index execution moves to when it is applied.
type Resolution interface {
	Destination() int
}

type Command struct {
	Code       Code
	Indent     int
	Parameters []any

	resolution Resolution
}

func NewCommand(code Code, indent int, params ...any) *Command {
	return &Command{
		Code:       code,
		Indent:     indent,
		Parameters: params,
	}
}

// Resolved returns the resolution stored on the command, or nil.
func (c *Command) Resolved() Resolution {
	return c.resolution
}

// Resolve stores r. Commands are resolved at most once in correct operation;
// a second call overwrites.
func (c *Command) Resolve(r Resolution) {
	c.resolution = r
}

func (c *Command) Param(i int) any {
	if i < 0 || i >= len(c.Parameters) {
		return nil
	}
	return c.Parameters[i]
}
