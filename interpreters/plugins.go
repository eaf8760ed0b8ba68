package interpreters

import (
	"fmt"
	"sync"
)

type PluginFunc func(args map[string]string) error

// Plugins maps plugin commands to host functions.
type Plugins struct {
	mu    sync.RWMutex
	funcs map[pluginKey]PluginFunc
}

type pluginKey struct {
	plugin  string
	command string
}

func NewPlugins() *Plugins {
	return &Plugins{
		funcs: make(map[pluginKey]PluginFunc),
	}
}

func (p *Plugins) Register(plugin, command string, fn PluginFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.funcs[pluginKey{plugin, command}] = fn
}

// Call runs the registered command. Unknown commands are ignored.
func (p *Plugins) Call(plugin, command string, args map[string]string) error {
	p.mu.RLock()
	fn, ok := p.funcs[pluginKey{plugin, command}]
	p.mu.RUnlock()
	if !ok {
		return nil
	}
	if err := fn(args); err != nil {
		return fmt.Errorf("plugin %s %s: %w", plugin, command, err)
	}
	return nil
}
