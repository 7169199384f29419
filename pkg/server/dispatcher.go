package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/james-choncholas/bookstack-mcp-server/pkg/mcperr"
	"github.com/james-choncholas/bookstack-mcp-server/pkg/observability"
	"github.com/james-choncholas/bookstack-mcp-server/pkg/resource"
	"github.com/james-choncholas/bookstack-mcp-server/pkg/tool"
)

// Dispatcher implements the four protocol operations against the registries:
// list tools, call tool, list resources, read resource. All failures leave
// through mcperr.Translate so callers only ever observe the stable taxonomy.
type Dispatcher struct {
	log       logrus.FieldLogger
	tools     tool.Registry
	resources resource.Registry
}

// NewDispatcher creates a dispatcher over the given registries.
func NewDispatcher(log logrus.FieldLogger, tools tool.Registry, resources resource.Registry) *Dispatcher {
	return &Dispatcher{
		log:       log.WithField("component", "dispatcher"),
		tools:     tools,
		resources: resources,
	}
}

// ListTools returns the declared metadata of every registered tool. Handlers
// are never exposed.
func (d *Dispatcher) ListTools() []mcp.Tool {
	tools := d.tools.List()
	d.log.WithField("count", len(tools)).Debug("Listing tools")

	return tools
}

// CallTool invokes a registered tool by name. The handler's return value is
// wrapped as a single text content block of 2-space-indented JSON regardless
// of its native type.
func (d *Dispatcher) CallTool(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
	log := d.log.WithField("tool", name)
	log.WithField("args", args).Debug("Tool call received")

	def, ok := d.tools.Get(name)
	if !ok {
		observability.ToolCallsTotal.WithLabelValues(name, "unknown").Inc()

		return nil, mcperr.UnknownTool(name)
	}

	if args == nil {
		args = map[string]any{}
	}

	timer := prometheus.NewTimer(observability.ToolCallDuration.WithLabelValues(name))
	value, err := def.Handler(ctx, args)
	timer.ObserveDuration()

	if err != nil {
		log.WithError(err).Error("Tool call failed")
		observability.ToolCallsTotal.WithLabelValues(name, "error").Inc()

		return nil, mcperr.Translate(err)
	}

	text, err := encodeIndented(value)
	if err != nil {
		log.WithError(err).Error("Tool result serialization failed")
		observability.ToolCallsTotal.WithLabelValues(name, "error").Inc()

		return nil, mcperr.Translate(err)
	}

	observability.ToolCallsTotal.WithLabelValues(name, "success").Inc()
	log.Debug("Tool call succeeded")

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: text},
		},
	}, nil
}

// ListResources returns the declared metadata of every registered resource,
// exact and templated alike, in registration order.
func (d *Dispatcher) ListResources() []mcp.Resource {
	resources := d.resources.List()
	d.log.WithField("count", len(resources)).Debug("Listing resources")

	return resources
}

// ListResourceTemplates returns the templated resources for discovery.
func (d *Dispatcher) ListResourceTemplates() []mcp.ResourceTemplate {
	return d.resources.ListTemplates()
}

// ReadResource resolves a concrete URI against the registered patterns and
// invokes the matching handler with the original URI. String results pass
// through verbatim; anything else is serialized as 2-space-indented JSON.
// The resource's declared MIME type is attached either way.
func (d *Dispatcher) ReadResource(ctx context.Context, uri string) ([]mcp.ResourceContents, error) {
	log := d.log.WithField("uri", uri)
	log.Debug("Resource read received")

	entry, ok := d.resources.Match(uri)
	if !ok {
		observability.ResourceReadsTotal.WithLabelValues("unknown").Inc()

		return nil, mcperr.UnknownResource(uri)
	}

	value, err := entry.Handler(ctx, uri)
	if err != nil {
		log.WithError(err).Error("Resource read failed")
		observability.ResourceReadsTotal.WithLabelValues("error").Inc()

		return nil, mcperr.Translate(err)
	}

	text, ok := value.(string)
	if !ok {
		text, err = encodeIndented(value)
		if err != nil {
			log.WithError(err).Error("Resource content serialization failed")
			observability.ResourceReadsTotal.WithLabelValues("error").Inc()

			return nil, mcperr.Translate(err)
		}
	}

	observability.ResourceReadsTotal.WithLabelValues("success").Inc()
	log.Debug("Resource read succeeded")

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: entry.Resource.MIMEType,
			Text:     text,
		},
	}, nil
}

// encodeIndented serializes a value as 2-space-indented JSON, the fixed wire
// contract for tool and resource content blocks.
func encodeIndented(value any) (string, error) {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serializing result: %w", err)
	}

	return string(data), nil
}
