// Package tool provides MCP tool registration and handling.
package tool

import (
	"context"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sirupsen/logrus"
)

// Handler processes a tool call. Arguments have already been decoded from the
// wire; the returned value is serialized by the dispatcher.
type Handler func(ctx context.Context, args map[string]any) (any, error)

// Definition describes a tool's metadata and handler.
type Definition struct {
	Tool    mcp.Tool
	Handler Handler
}

// Registry manages tool registration and lookup. Registration never fails;
// only lookup of an unknown name does, at the dispatch layer.
type Registry interface {
	// Register adds a tool definition to the registry. Registering a name
	// twice replaces the earlier definition in place.
	Register(def Definition)
	// List returns all registered tools in insertion order.
	List() []mcp.Tool
	// Get retrieves a tool definition by name.
	Get(name string) (Definition, bool)
	// Definitions returns all registered tool definitions in insertion order.
	Definitions() []Definition
	// Len returns the number of registered tools.
	Len() int
}

type registry struct {
	log     logrus.FieldLogger
	mu      sync.RWMutex
	byName  map[string]int
	entries []Definition
}

// NewRegistry creates a new tool registry.
func NewRegistry(log logrus.FieldLogger) Registry {
	return &registry{
		log:    log.WithField("component", "tool-registry"),
		byName: make(map[string]int, 64),
	}
}

// Register adds a tool definition to the registry.
func (r *registry) Register(def Definition) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if idx, exists := r.byName[def.Tool.Name]; exists {
		r.log.WithField("tool", def.Tool.Name).Warn("Overwriting existing tool definition")
		r.entries[idx] = def

		return
	}

	r.byName[def.Tool.Name] = len(r.entries)
	r.entries = append(r.entries, def)

	r.log.WithField("tool", def.Tool.Name).Debug("Registered tool")
}

// List returns all registered tools in insertion order.
func (r *registry) List() []mcp.Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tools := make([]mcp.Tool, len(r.entries))
	for i, def := range r.entries {
		tools[i] = def.Tool
	}

	return tools
}

// Get retrieves a tool definition by name.
func (r *registry) Get(name string) (Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, exists := r.byName[name]
	if !exists {
		return Definition{}, false
	}

	return r.entries[idx], true
}

// Definitions returns all registered tool definitions in insertion order.
func (r *registry) Definitions() []Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	defs := make([]Definition, len(r.entries))
	copy(defs, r.entries)

	return defs
}

// Len returns the number of registered tools.
func (r *registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}

// Compile-time interface compliance check.
var _ Registry = (*registry)(nil)
