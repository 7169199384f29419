package tool

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sirupsen/logrus"

	"github.com/james-choncholas/bookstack-mcp-server/pkg/bookstack"
	"github.com/james-choncholas/bookstack-mcp-server/pkg/mcperr"
	"github.com/james-choncholas/bookstack-mcp-server/pkg/params"
)

// contentTypeProperty describes the entity type addressed by permission tools.
func contentTypeProperty() map[string]any {
	return map[string]any{
		"type":        "string",
		"description": "Type of the content item",
		"enum":        bookstack.PermissionContentTypes,
	}
}

// rolePermissionsProperty describes per-role permission overrides.
func rolePermissionsProperty() map[string]any {
	return map[string]any{
		"type":        "array",
		"description": "Per-role permission overrides",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"role_id": map[string]any{"type": "integer", "minimum": 1},
				"view":    map[string]any{"type": "boolean"},
				"create":  map[string]any{"type": "boolean"},
				"update":  map[string]any{"type": "boolean"},
				"delete":  map[string]any{"type": "boolean"},
			},
			"required": []string{"role_id"},
		},
	}
}

// NewPermissionTools returns the catalog entries for content permission
// operations.
func NewPermissionTools(log logrus.FieldLogger, client bookstack.Client) []Definition {
	log.WithField("tools", "permissions").Debug("Building permission tools")

	getDef := permissionTool("permissions_get",
		"Get the content-level permissions of an item",
		nil,
		func(ctx context.Context, contentType string, contentID int, _ map[string]any) (any, error) {
			return client.GetContentPermissions(ctx, contentType, contentID)
		})

	updateDef := permissionTool("permissions_update",
		"Update the content-level permissions of an item",
		map[string]any{
			"owner_id": map[string]any{
				"type":        "integer",
				"description": "ID of the user to set as owner",
				"minimum":     1,
			},
			"role_permissions": rolePermissionsProperty(),
			"fallback_permissions": map[string]any{
				"type":        "object",
				"description": "Fallback permissions applied when no role override matches",
				"properties": map[string]any{
					"inheriting": map[string]any{"type": "boolean"},
					"view":       map[string]any{"type": "boolean"},
					"create":     map[string]any{"type": "boolean"},
					"update":     map[string]any{"type": "boolean"},
					"delete":     map[string]any{"type": "boolean"},
				},
			},
		},
		client.UpdateContentPermissions)

	return []Definition{getDef, updateDef}
}

// permissionTool builds a tool addressing one content item's permissions.
func permissionTool(
	name, desc string,
	extraProps map[string]any,
	fn func(context.Context, string, int, map[string]any) (any, error),
) Definition {
	props := map[string]any{
		"content_type": contentTypeProperty(),
		"content_id":   idProperty("ID of the content item"),
	}

	for key, value := range extraProps {
		props[key] = value
	}

	t := mcp.Tool{
		Name:        name,
		Description: desc,
		InputSchema: objectSchema(props, "content_type", "content_id"),
	}
	schema := params.MustCompile(t.InputSchema)

	return Definition{
		Tool: t,
		Handler: func(ctx context.Context, args map[string]any) (any, error) {
			args, err := schema.Validate(args)
			if err != nil {
				return nil, err
			}

			contentType, ok := args["content_type"].(string)
			if !ok {
				return nil, mcperr.Validation("content_type must be a string")
			}

			contentID, err := params.ID(args["content_id"])
			if err != nil {
				return nil, err
			}

			return fn(ctx, contentType, contentID, bodyFrom(args, "content_type", "content_id"))
		},
	}
}
