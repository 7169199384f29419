package tool

import (
	"github.com/sirupsen/logrus"

	"github.com/james-choncholas/bookstack-mcp-server/pkg/bookstack"
)

// chapterProperties are the writable fields of a chapter.
func chapterProperties() map[string]any {
	return map[string]any{
		"book_id": map[string]any{
			"type":        "integer",
			"description": "ID of the book the chapter belongs to",
		},
		"name": map[string]any{
			"type":        "string",
			"description": "Name of the chapter",
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
		"priority": map[string]any{
			"type":        "integer",
			"description": "Ordering priority within the book",
		},
		"tags": tagsProperty(),
	}
}

// NewChapterTools returns the catalog entries for chapter operations.
func NewChapterTools(log logrus.FieldLogger, client bookstack.Client) []Definition {
	log.WithField("tools", "chapters").Debug("Building chapter tools")

	return []Definition{
		listTool("chapters_list",
			"List chapters with optional pagination, sorting and filtering",
			client.ListChapters),
		getTool("chapters_get",
			"Get full details of a chapter, including its pages",
			client.GetChapter),
		createTool("chapters_create",
			"Create a new chapter in a book",
			chapterProperties(), []string{"book_id", "name"},
			client.CreateChapter),
		updateTool("chapters_update",
			"Update an existing chapter",
			chapterProperties(),
			client.UpdateChapter),
		deleteTool("chapters_delete",
			"Delete a chapter (moves it to the recycle bin)",
			client.DeleteChapter),
		exportTool("chapters_export",
			"Export a chapter as html, pdf, plaintext or markdown",
			client.ExportChapter),
	}
}
