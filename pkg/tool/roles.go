package tool

import (
	"github.com/sirupsen/logrus"

	"github.com/james-choncholas/bookstack-mcp-server/pkg/bookstack"
)

// roleProperties are the writable fields of a role.
func roleProperties() map[string]any {
	return map[string]any{
		"display_name": map[string]any{
			"type":        "string",
			"description": "Display name of the role",
		},
		"description": map[string]any{
			"type":        "string",
			"description": "Description of the role",
		},
		"mfa_enforced": map[string]any{
			"type":        "boolean",
			"description": "Whether multi-factor authentication is required for this role",
		},
		"external_auth_id": map[string]any{
			"type":        "string",
			"description": "External authentication system role ID",
		},
		"permissions": map[string]any{
			"type":        "array",
			"description": "System permission names to grant (e.g. 'content-export', 'user-create-all')",
			"items":       map[string]any{"type": "string"},
		},
	}
}

// NewRoleTools returns the catalog entries for role operations.
func NewRoleTools(log logrus.FieldLogger, client bookstack.Client) []Definition {
	log.WithField("tools", "roles").Debug("Building role tools")

	return []Definition{
		listTool("roles_list",
			"List roles with optional pagination, sorting and filtering",
			client.ListRoles),
		getTool("roles_get",
			"Get details of a role, including granted permissions",
			client.GetRole),
		createTool("roles_create",
			"Create a new role",
			roleProperties(), []string{"display_name"},
			client.CreateRole),
		updateTool("roles_update",
			"Update an existing role",
			roleProperties(),
			client.UpdateRole),
		deleteTool("roles_delete",
			"Delete a role (users keep their other roles)",
			client.DeleteRole),
	}
}
