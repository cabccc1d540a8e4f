package tools

import (
	"fmt"
	"sort"
	"sync"
)

// Registry is the live name -> Tool mapping that defines what is currently
// callable. Safe for concurrent readers; mutations notify the registered
// change hook so any schema snapshot bound elsewhere can be rebuilt.
type Registry struct {
	mu       sync.RWMutex
	tools    map[string]Tool
	onChange func()
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[string]Tool),
	}
}

// OnChange sets the hook invoked after every successful mutation. The hook
// runs outside the registry lock.
func (r *Registry) OnChange(fn func()) {
	r.mu.Lock()
	r.onChange = fn
	r.mu.Unlock()
}

// Register inserts a tool keyed by its name. Registering a name twice
// replaces the previous tool (last write wins, same as a plain map insert).
func (r *Registry) Register(t Tool) error {
	if t == nil || t.Name() == "" {
		return fmt.Errorf("tool name must not be empty")
	}

	r.mu.Lock()
	r.tools[t.Name()] = t
	fn := r.onChange
	r.mu.Unlock()

	if fn != nil {
		fn()
	}
	return nil
}

// Unregister removes a tool by name. Removing an absent name is a no-op and
// does not fire the change hook.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	_, ok := r.tools[name]
	if ok {
		delete(r.tools, name)
	}
	fn := r.onChange
	r.mu.Unlock()

	if ok && fn != nil {
		fn()
	}
}

// Get looks up a tool by name.
func (r *Registry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tools[name]
	return t, ok
}

// List returns a copy of the current mapping. Mutating the returned map has
// no effect on the registry.
func (r *Registry) List() map[string]Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]Tool, len(r.tools))
	for name, t := range r.tools {
		out[name] = t
	}
	return out
}

// Names returns the registered tool names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Schemas projects the schema of every registered tool, ordered by name.
func (r *Registry) Schemas() []Schema {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)

	schemas := make([]Schema, 0, len(names))
	for _, name := range names {
		schemas = append(schemas, ProjectSchema(r.tools[name]))
	}
	return schemas
}

// Len reports the number of registered tools.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tools)
}
