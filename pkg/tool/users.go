package tool

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sirupsen/logrus"

	"github.com/james-choncholas/bookstack-mcp-server/pkg/bookstack"
	"github.com/james-choncholas/bookstack-mcp-server/pkg/params"
)

// userProperties are the writable fields of a user.
func userProperties() map[string]any {
	return map[string]any{
		"name": map[string]any{
			"type":        "string",
			"description": "Display name of the user",
		},
		"email": map[string]any{
			"type":        "string",
			"description": "Email address of the user",
		},
		"external_auth_id": map[string]any{
			"type":        "string",
			"description": "External authentication system ID",
		},
		"language": map[string]any{
			"type":        "string",
			"description": "Preferred interface language code (e.g. 'en', 'de')",
		},
		"password": map[string]any{
			"type":        "string",
			"description": "Account password",
			"minLength":   8,
		},
		"roles": map[string]any{
			"type":        "array",
			"description": "IDs of the roles to assign",
			"items":       map[string]any{"type": "integer"},
		},
		"send_invite": map[string]any{
			"type":        "boolean",
			"description": "Send an invite email allowing the user to set their own password",
		},
	}
}

// NewUserTools returns the catalog entries for user operations.
func NewUserTools(log logrus.FieldLogger, client bookstack.Client) []Definition {
	log.WithField("tools", "users").Debug("Building user tools")

	return []Definition{
		listTool("users_list",
			"List users with optional pagination, sorting and filtering",
			client.ListUsers),
		getTool("users_get",
			"Get details of a user, including assigned roles",
			client.GetUser),
		createTool("users_create",
			"Create a new user",
			userProperties(), []string{"name", "email"},
			client.CreateUser),
		updateTool("users_update",
			"Update an existing user",
			userProperties(),
			client.UpdateUser),
		newUsersDeleteTool(client),
	}
}

// newUsersDeleteTool builds the user deletion tool. Unlike other deletes it
// accepts an optional ownership migration target.
func newUsersDeleteTool(client bookstack.Client) Definition {
	t := mcp.Tool{
		Name:        "users_delete",
		Description: "Delete a user, optionally migrating their content ownership to another user",
		InputSchema: objectSchema(map[string]any{
			"id": idProperty("The ID of the user to delete"),
			"migrate_ownership_id": map[string]any{
				"type":        "integer",
				"description": "ID of the user to transfer owned content to",
				"minimum":     1,
			},
		}, "id"),
	}
	schema := params.MustCompile(t.InputSchema)

	return Definition{
		Tool: t,
		Handler: func(ctx context.Context, args map[string]any) (any, error) {
			args, err := schema.Validate(args)
			if err != nil {
				return nil, err
			}

			id, err := params.ID(args["id"])
			if err != nil {
				return nil, err
			}

			migrateID := 0
			if raw, ok := args["migrate_ownership_id"]; ok {
				migrateID, err = params.ID(raw)
				if err != nil {
					return nil, err
				}
			}

			if err := client.DeleteUser(ctx, id, migrateID); err != nil {
				return nil, err
			}

			return map[string]any{"deleted": true, "id": id}, nil
		},
	}
}
