package tool

import (
	"github.com/sirupsen/logrus"

	"github.com/james-choncholas/bookstack-mcp-server/pkg/bookstack"
)

// imageProperties are the writable fields of a gallery image.
func imageProperties() map[string]any {
	return map[string]any{
		"name": map[string]any{
			"type":        "string",
			"description": "Name of the image",
			"maxLength":   255,
		},
		"uploaded_to": map[string]any{
			"type":        "integer",
			"description": "ID of the page the image is used on",
			"minimum":     1,
		},
		"type": map[string]any{
			"type":        "string",
			"description": "Image type",
			"enum":        []string{"gallery", "drawio"},
		},
	}
}

// NewImageTools returns the catalog entries for image gallery operations.
func NewImageTools(log logrus.FieldLogger, client bookstack.Client) []Definition {
	log.WithField("tools", "images").Debug("Building image tools")

	return []Definition{
		listTool("images_list",
			"List gallery images with optional pagination, sorting and filtering",
			client.ListImages),
		getTool("images_get",
			"Get details of a gallery image, including its URLs",
			client.GetImage),
		createTool("images_create",
			"Create a new gallery image record",
			imageProperties(), []string{"name", "uploaded_to", "type"},
			client.CreateImage),
		updateTool("images_update",
			"Update an existing gallery image",
			imageProperties(),
			client.UpdateImage),
		deleteTool("images_delete",
			"Delete a gallery image",
			client.DeleteImage),
	}
}
