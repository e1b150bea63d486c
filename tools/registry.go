package tools

// Registry maps tool names to implementations, preserving registration order.
// It is built once at startup and never mutated afterwards, so lookups need no
// synchronization.
type Registry struct {
	order  []string
	byName map[string]Tool
}

// NewRegistry creates a registry containing the given tools, in order. Tool
// names must be unique within a registry.
func NewRegistry(ts ...Tool) (*Registry, error) {
	r := &Registry{byName: make(map[string]Tool, len(ts))}
	for _, t := range ts {
		if _, exists := r.byName[t.Name()]; exists {
			return nil, E(KindInternal, "duplicate tool %q in registry", t.Name())
		}
		r.byName[t.Name()] = t
		r.order = append(r.order, t.Name())
	}
	return r, nil
}

// GetTools returns all tools in registration order.
func (r *Registry) GetTools() []Tool {
	ts := make([]Tool, 0, len(r.order))
	for _, name := range r.order {
		ts = append(ts, r.byName[name])
	}
	return ts
}

// GetTool retrieves a tool by name.
func (r *Registry) GetTool(name string) (Tool, error) {
	t, exists := r.byName[name]
	if !exists {
		return nil, E(KindUnknownTool, "tool %q not found in registry", name)
	}
	return t, nil
}
