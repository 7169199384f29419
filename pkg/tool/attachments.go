package tool

import (
	"github.com/sirupsen/logrus"

	"github.com/james-choncholas/bookstack-mcp-server/pkg/bookstack"
)

// attachmentProperties are the writable fields of an attachment. File uploads
// require multipart requests the protocol cannot carry, so only link
// attachments can be created through this adapter.
func attachmentProperties() map[string]any {
	return map[string]any{
		"name": map[string]any{
			"type":        "string",
			"description": "Name of the attachment",
			"maxLength":   255,
		},
		"uploaded_to": map[string]any{
			"type":        "integer",
			"description": "ID of the page the attachment belongs to",
			"minimum":     1,
		},
		"link": map[string]any{
			"type":        "string",
			"description": "URL the attachment points to",
		},
	}
}

// NewAttachmentTools returns the catalog entries for attachment operations.
func NewAttachmentTools(log logrus.FieldLogger, client bookstack.Client) []Definition {
	log.WithField("tools", "attachments").Debug("Building attachment tools")

	return []Definition{
		listTool("attachments_list",
			"List attachments with optional pagination, sorting and filtering",
			client.ListAttachments),
		getTool("attachments_get",
			"Get details of an attachment, including its content or link",
			client.GetAttachment),
		createTool("attachments_create",
			"Create a new link attachment on a page",
			attachmentProperties(), []string{"name", "uploaded_to", "link"},
			client.CreateAttachment),
		updateTool("attachments_update",
			"Update an existing attachment",
			attachmentProperties(),
			client.UpdateAttachment),
		deleteTool("attachments_delete",
			"Delete an attachment",
			client.DeleteAttachment),
	}
}
