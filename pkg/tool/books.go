package tool

import (
	"github.com/sirupsen/logrus"

	"github.com/james-choncholas/bookstack-mcp-server/pkg/bookstack"
)

// bookProperties are the writable fields of a book.
func bookProperties() map[string]any {
	return map[string]any{
		"name": map[string]any{
			"type":        "string",
			"description": "Name of the book",
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
		"default_template_id": map[string]any{
			"type":        "integer",
			"description": "Page ID to use as the default template for new pages",
		},
		"tags": tagsProperty(),
	}
}

// NewBookTools returns the catalog entries for book operations.
func NewBookTools(log logrus.FieldLogger, client bookstack.Client) []Definition {
	log.WithField("tools", "books").Debug("Building book tools")

	return []Definition{
		listTool("books_list",
			"List books with optional pagination, sorting and filtering",
			client.ListBooks),
		getTool("books_get",
			"Get full details of a book, including its chapters and pages",
			client.GetBook),
		createTool("books_create",
			"Create a new book",
			bookProperties(), []string{"name"},
			client.CreateBook),
		updateTool("books_update",
			"Update an existing book",
			bookProperties(),
			client.UpdateBook),
		deleteTool("books_delete",
			"Delete a book (moves it to the recycle bin)",
			client.DeleteBook),
		exportTool("books_export",
			"Export a book as html, pdf, plaintext or markdown",
			client.ExportBook),
	}
}
