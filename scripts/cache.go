package scripts

import "sync"

// Cache maps script text to compiled units. Entries are never evicted.
type Cache struct {
	mu    sync.Mutex
	units map[string]*Unit
}

func NewCache() *Cache {
	return &Cache{
		units: make(map[string]*Unit),
	}
}

// Default is the process-wide cache.
var Default = NewCache()

// Compile returns the unit for src from the default cache, compiling it on first use.
func Compile(src string) (*Unit, error) {
	return Default.Compile(src)
}

func (c *Cache) Compile(src string) (*Unit, error) {
	c.mu.Lock()
	unit, ok := c.units[src]
	c.mu.Unlock()
	if ok {
		return unit, nil
	}

	unit, err := compile(src)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.units[src]; ok {
		// lost a race with another compilation of the same text
		return existing, nil
	}
	c.units[src] = unit
	return unit, nil
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.units)
}
