package tool

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sirupsen/logrus"

	"github.com/james-choncholas/bookstack-mcp-server/pkg/bookstack"
	"github.com/james-choncholas/bookstack-mcp-server/pkg/params"
)

// NewSystemTools returns the catalog entry for instance system information.
func NewSystemTools(log logrus.FieldLogger, client bookstack.Client) []Definition {
	log.WithField("tools", "system").Debug("Building system tools")

	t := mcp.Tool{
		Name:        "system_info",
		Description: "Get system details of the BookStack instance (version, instance ID, base URL)",
		InputSchema: objectSchema(map[string]any{}),
	}
	schema := params.MustCompile(t.InputSchema)

	return []Definition{{
		Tool: t,
		Handler: func(ctx context.Context, args map[string]any) (any, error) {
			if _, err := schema.Validate(args); err != nil {
				return nil, err
			}

			return client.GetSystemInfo(ctx)
		},
	}}
}
