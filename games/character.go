package games

const (
	RouteEnd       = 0
	RouteMoveDown  = 1
	RouteMoveLeft  = 2
	RouteMoveRight = 3
	RouteMoveUp    = 4
	RouteScript    = 45
)

type Character struct {
	X     int
	Y     int
	Steps int
}

// Move handles the movement codes of a route and reports whether code was one of them.
func (c *Character) Move(code int) bool {
	switch code {
	case RouteMoveDown:
		c.Y++
	case RouteMoveLeft:
		c.X--
	case RouteMoveRight:
		c.X++
	case RouteMoveUp:
		c.Y--
	default:
		return false
	}
	c.Steps++
	return true
}
