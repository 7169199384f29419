package tool

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sirupsen/logrus"

	"github.com/james-choncholas/bookstack-mcp-server/internal/version"
	"github.com/james-choncholas/bookstack-mcp-server/pkg/params"
)

// Counts reports the current registry population. Implemented by the server
// builder over both registries; counts are read at call time so the meta
// tool's own registration is included in what it reports.
type Counts func() (tools, resources int)

// NewMetaTools returns the self-description catalog entry. It must be
// registered after all other tool factories.
func NewMetaTools(log logrus.FieldLogger, upstreamURL string, counts Counts) []Definition {
	log.WithField("tools", "meta").Debug("Building meta tools")

	t := mcp.Tool{
		Name:        "server_info",
		Description: "Get information about this MCP server: version, upstream instance and catalog size",
		InputSchema: objectSchema(map[string]any{}),
	}
	schema := params.MustCompile(t.InputSchema)

	return []Definition{{
		Tool: t,
		Handler: func(_ context.Context, args map[string]any) (any, error) {
			if _, err := schema.Validate(args); err != nil {
				return nil, err
			}

			tools, resources := counts()

			return map[string]any{
				"name":           "bookstack-mcp",
				"version":        version.Version,
				"upstream_url":   upstreamURL,
				"tool_count":     tools,
				"resource_count": resources,
			}, nil
		},
	}}
}
