// registry.go holds the global extension registry. Extensions self-register
// from init(), before main runs, and keep their registration order so
// commands appear in a stable order.

package extension

import "sync"

var (
	mu       sync.RWMutex
	registry = make(map[string]Extension)
	order    []string
)

// Register adds an extension to the registry. Called from init() functions.
// It panics on a duplicate name, like database/sql.Register: a clash is a
// programming error, not a runtime condition.
func Register(e Extension) {
	mu.Lock()
	defer mu.Unlock()

	name := e.Name()
	if _, exists := registry[name]; exists {
		panic("extension already registered: " + name)
	}

	registry[name] = e
	order = append(order, name)
}

// All returns every registered extension in registration order.
func All() []Extension {
	mu.RLock()
	defer mu.RUnlock()

	exts := make([]Extension, 0, len(order))
	for _, name := range order {
		exts = append(exts, registry[name])
	}
	return exts
}

// Get returns the extension registered under name, or nil.
func Get(name string) Extension {
	mu.RLock()
	defer mu.RUnlock()
	return registry[name]
}

// Names returns the registered extension names in registration order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, len(order))
	copy(names, order)
	return names
}

// Tools returns the MCP tools of every registered extension.
func Tools() []MCPTool {
	var tools []MCPTool
	for _, e := range All() {
		tools = append(tools, e.MCPTools()...)
	}
	return tools
}
