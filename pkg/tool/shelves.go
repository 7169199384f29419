package tool

import (
	"github.com/sirupsen/logrus"

	"github.com/james-choncholas/bookstack-mcp-server/pkg/bookstack"
)

// shelfProperties are the writable fields of a bookshelf.
func shelfProperties() map[string]any {
	return map[string]any{
		"name": map[string]any{
			"type":        "string",
			"description": "Name of the shelf",
			"maxLength":   255,
		},
		"description": map[string]any{
			"type":        "string",
			"description": "Plain text description",
		},
		"description_html": map[string]any{
			"type":        "string",
			"description": "HTML description, takes precedence over description",
		},
		"books": map[string]any{
			"type":        "array",
			"description": "IDs of the books on this shelf, in display order",
			"items":       map[string]any{"type": "integer"},
		},
		"tags": tagsProperty(),
	}
}

// NewShelfTools returns the catalog entries for bookshelf operations.
func NewShelfTools(log logrus.FieldLogger, client bookstack.Client) []Definition {
	log.WithField("tools", "shelves").Debug("Building shelf tools")

	return []Definition{
		listTool("shelves_list",
			"List bookshelves with optional pagination, sorting and filtering",
			client.ListShelves),
		getTool("shelves_get",
			"Get full details of a bookshelf, including the books on it",
			client.GetShelf),
		createTool("shelves_create",
			"Create a new bookshelf",
			shelfProperties(), []string{"name"},
			client.CreateShelf),
		updateTool("shelves_update",
			"Update an existing bookshelf",
			shelfProperties(),
			client.UpdateShelf),
		deleteTool("shelves_delete",
			"Delete a bookshelf (moves it to the recycle bin)",
			client.DeleteShelf),
	}
}
