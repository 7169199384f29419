// Package resource provides MCP resource registration and URI matching.
package resource

import (
	"context"
	"regexp"
	"strings"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sirupsen/logrus"
)

// ReadHandler produces a resource's content. It receives the concrete request
// URI, never the pattern: templated handlers parse out their own variables.
// A string result is served verbatim; any other value is JSON-serialized by
// the dispatcher.
type ReadHandler func(ctx context.Context, uri string) (any, error)

// Entry is a registered resource: descriptive metadata keyed by a URI pattern,
// plus the handler producing its content.
type Entry struct {
	// Resource carries the pattern (in URI), name, description and MIME type.
	Resource mcp.Resource
	// Handler produces the content for a matching request URI.
	Handler ReadHandler

	// matcher is non-nil for templated patterns, compiled at registration.
	matcher *regexp.Regexp
}

// Templated reports whether the entry's URI carries {var} placeholders.
func (e *Entry) Templated() bool {
	return e.matcher != nil
}

// Matches reports whether a concrete URI matches this entry's pattern.
// Exact patterns require string identity; each {var} placeholder stands in
// for exactly one run of one-or-more non-slash characters.
func (e *Entry) Matches(uri string) bool {
	if e.matcher == nil {
		return e.Resource.URI == uri
	}

	return e.matcher.MatchString(uri)
}

// placeholderPattern matches {var} segments inside a URI pattern.
var placeholderPattern = regexp.MustCompile(`\{[^}]+\}`)

// compilePattern converts a templated URI pattern into a matcher. Literal
// parts are quoted; placeholders become single-segment wildcards that never
// match empty strings or cross a slash.
func compilePattern(pattern string) *regexp.Regexp {
	var b strings.Builder

	b.WriteString("^")

	last := 0
	for _, loc := range placeholderPattern.FindAllStringIndex(pattern, -1) {
		b.WriteString(regexp.QuoteMeta(pattern[last:loc[0]]))
		b.WriteString("[^/]+")
		last = loc[1]
	}

	b.WriteString(regexp.QuoteMeta(pattern[last:]))
	b.WriteString("$")

	return regexp.MustCompile(b.String())
}

// Registry manages MCP resources and resolves request URIs against them.
//
// Exact and templated patterns live in one ordered list: resolution is a
// single linear scan in registration order and the first match wins. An exact
// pattern registered after a broader template that also matches it is
// therefore unreachable; precedence is controlled purely through registration
// order. This is deliberate, preserved behavior, not an accident to fix here.
type Registry interface {
	// Register adds a resource. Registering the same raw pattern string twice
	// replaces the earlier entry in place.
	Register(res Entry)
	// Match resolves a concrete URI to the first matching entry.
	Match(uri string) (Entry, bool)
	// List returns all registered resources in registration order.
	List() []mcp.Resource
	// ListStatic returns the exact-URI resources, for protocol discovery.
	ListStatic() []mcp.Resource
	// ListTemplates returns the templated resources, for protocol discovery.
	ListTemplates() []mcp.ResourceTemplate
	// Len returns the number of registered resources.
	Len() int
}

type registry struct {
	log       logrus.FieldLogger
	mu        sync.RWMutex
	byPattern map[string]int
	entries   []Entry
}

// NewRegistry creates a new resource registry.
func NewRegistry(log logrus.FieldLogger) Registry {
	return &registry{
		log:       log.WithField("component", "resource-registry"),
		byPattern: make(map[string]int, 16),
	}
}

// Register adds a resource to the registry.
func (r *registry) Register(res Entry) {
	pattern := res.Resource.URI

	if strings.Contains(pattern, "{") {
		res.matcher = compilePattern(pattern)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if idx, exists := r.byPattern[pattern]; exists {
		r.log.WithField("uri", pattern).Warn("Overwriting existing resource registration")
		r.entries[idx] = res

		return
	}

	r.byPattern[pattern] = len(r.entries)
	r.entries = append(r.entries, res)

	r.log.WithFields(logrus.Fields{
		"uri":       pattern,
		"templated": res.Templated(),
	}).Debug("Registered resource")
}

// Match resolves a concrete URI to the first matching entry in registration
// order.
func (r *registry) Match(uri string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, entry := range r.entries {
		if entry.Matches(uri) {
			return entry, true
		}
	}

	return Entry{}, false
}

// List returns all registered resources in registration order.
func (r *registry) List() []mcp.Resource {
	r.mu.RLock()
	defer r.mu.RUnlock()

	resources := make([]mcp.Resource, len(r.entries))
	for i, entry := range r.entries {
		resources[i] = entry.Resource
	}

	return resources
}

// ListStatic returns the exact-URI resources in registration order.
func (r *registry) ListStatic() []mcp.Resource {
	r.mu.RLock()
	defer r.mu.RUnlock()

	resources := make([]mcp.Resource, 0, len(r.entries))

	for _, entry := range r.entries {
		if !entry.Templated() {
			resources = append(resources, entry.Resource)
		}
	}

	return resources
}

// ListTemplates returns the templated resources in registration order.
func (r *registry) ListTemplates() []mcp.ResourceTemplate {
	r.mu.RLock()
	defer r.mu.RUnlock()

	templates := make([]mcp.ResourceTemplate, 0, len(r.entries))

	for _, entry := range r.entries {
		if !entry.Templated() {
			continue
		}

		templates = append(templates, mcp.NewResourceTemplate(
			entry.Resource.URI,
			entry.Resource.Name,
			mcp.WithTemplateDescription(entry.Resource.Description),
			mcp.WithTemplateMIMEType(entry.Resource.MIMEType),
		))
	}

	return templates
}

// Len returns the number of registered resources.
func (r *registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}

// Compile-time check that registry implements Registry.
var _ Registry = (*registry)(nil)
