package tool

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sirupsen/logrus"

	"github.com/james-choncholas/bookstack-mcp-server/pkg/bookstack"
	"github.com/james-choncholas/bookstack-mcp-server/pkg/params"
)

// NewRecycleBinTools returns the catalog entries for recycle bin operations.
// All of these require admin permissions upstream.
func NewRecycleBinTools(log logrus.FieldLogger, client bookstack.Client) []Definition {
	log.WithField("tools", "recycle_bin").Debug("Building recycle bin tools")

	return []Definition{
		listTool("recycle_bin_list",
			"List deleted items currently in the recycle bin",
			client.ListRecycleBin),
		newRecycleBinItemTool("recycle_bin_restore",
			"Restore a deleted item from the recycle bin",
			client.RestoreRecycleBinItem),
		newRecycleBinItemTool("recycle_bin_destroy",
			"Permanently destroy an item in the recycle bin",
			client.DestroyRecycleBinItem),
	}
}

// newRecycleBinItemTool builds a tool acting on a single deletion entry.
func newRecycleBinItemTool(name, desc string, fn func(context.Context, int) (any, error)) Definition {
	t := mcp.Tool{
		Name:        name,
		Description: desc,
		InputSchema: objectSchema(map[string]any{
			"deletion_id": idProperty("The deletion ID as listed by recycle_bin_list (not the entity ID)"),
		}, "deletion_id"),
	}
	schema := params.MustCompile(t.InputSchema)

	return Definition{
		Tool: t,
		Handler: func(ctx context.Context, args map[string]any) (any, error) {
			args, err := schema.Validate(args)
			if err != nil {
				return nil, err
			}

			deletionID, err := params.ID(args["deletion_id"])
			if err != nil {
				return nil, err
			}

			return fn(ctx, deletionID)
		},
	}
}
