package tool

import (
	"github.com/sirupsen/logrus"

	"github.com/james-choncholas/bookstack-mcp-server/pkg/bookstack"
)

// pageProperties are the writable fields of a page.
func pageProperties() map[string]any {
	return map[string]any{
		"book_id": map[string]any{
			"type":        "integer",
			"description": "ID of the book to place the page in",
		},
		"chapter_id": map[string]any{
			"type":        "integer",
			"description": "ID of the chapter to place the page in (instead of book_id)",
		},
		"name": map[string]any{
			"type":        "string",
			"description": "Name of the page",
			"maxLength":   255,
		},
		"html": map[string]any{
			"type":        "string",
			"description": "HTML content, exclusive with markdown",
		},
		"markdown": map[string]any{
			"type":        "string",
			"description": "Markdown content, exclusive with html",
		},
		"priority": map[string]any{
			"type":        "integer",
			"description": "Ordering priority within the parent",
		},
		"tags": tagsProperty(),
	}
}

// NewPageTools returns the catalog entries for page operations.
func NewPageTools(log logrus.FieldLogger, client bookstack.Client) []Definition {
	log.WithField("tools", "pages").Debug("Building page tools")

	return []Definition{
		listTool("pages_list",
			"List pages with optional pagination, sorting and filtering",
			client.ListPages),
		getTool("pages_get",
			"Get full details and content of a page",
			client.GetPage),
		createTool("pages_create",
			"Create a new page in a book or chapter",
			pageProperties(), []string{"name"},
			client.CreatePage),
		updateTool("pages_update",
			"Update an existing page",
			pageProperties(),
			client.UpdatePage),
		deleteTool("pages_delete",
			"Delete a page (moves it to the recycle bin)",
			client.DeletePage),
		exportTool("pages_export",
			"Export a page as html, pdf, plaintext or markdown",
			client.ExportPage),
	}
}
