package tool

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/james-choncholas/bookstack-mcp-server/pkg/bookstack"
)

// Listing bounds shared by all list tools, matching BookStack's API limits.
const (
	MaxListCount     = 500
	DefaultListCount = 100
)

// objectSchema builds an object input schema from properties and required keys.
func objectSchema(props map[string]any, required ...string) mcp.ToolInputSchema {
	return mcp.ToolInputSchema{
		Type:       "object",
		Properties: props,
		Required:   required,
	}
}

// idProperty describes a positive integer identifier argument.
func idProperty(desc string) map[string]any {
	return map[string]any{
		"type":        "integer",
		"description": desc,
		"minimum":     1,
	}
}

// listProperties describes the shared offset/count/sort/filter listing grammar.
func listProperties() map[string]any {
	return map[string]any{
		"offset": map[string]any{
			"type":        "integer",
			"description": "Number of records to skip",
			"minimum":     0,
		},
		"count": map[string]any{
			"type":        "integer",
			"description": fmt.Sprintf("Number of records to return (default %d, max %d)", DefaultListCount, MaxListCount),
			"minimum":     1,
			"maximum":     MaxListCount,
		},
		"sort": map[string]any{
			"type":        "string",
			"description": "Sort field, prefix with + or - for direction (e.g. '-created_at')",
		},
		"filter": map[string]any{
			"type":        "object",
			"description": "Field filters, e.g. {\"name\": \"My Book\"} or {\"id\": \">=5\"}",
			"additionalProperties": map[string]any{
				"type": "string",
			},
		},
	}
}

// formatProperty describes the export format argument.
func formatProperty() map[string]any {
	return map[string]any{
		"type":        "string",
		"description": "Export format",
		"enum":        bookstack.ExportFormats,
	}
}

// tagsProperty describes the shared tags argument used by content entities.
func tagsProperty() map[string]any {
	return map[string]any{
		"type":        "array",
		"description": "Tags to apply, each with a name and optional value",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"name":  map[string]any{"type": "string"},
				"value": map[string]any{"type": "string"},
			},
			"required": []string{"name"},
		},
	}
}

// listParamsFrom extracts listing controls from validated arguments.
func listParamsFrom(args map[string]any) bookstack.ListParams {
	p := bookstack.ListParams{Count: DefaultListCount}

	if offset, ok := args["offset"].(float64); ok {
		p.Offset = int(offset)
	}

	if count, ok := args["count"].(float64); ok && count > 0 {
		p.Count = int(count)
	}

	if sort, ok := args["sort"].(string); ok {
		p.Sort = sort
	}

	if filter, ok := args["filter"].(map[string]any); ok {
		p.Filter = make(map[string]string, len(filter))
		for key, value := range filter {
			p.Filter[key] = fmt.Sprint(value)
		}
	}

	return p
}

// bodyFrom copies validated arguments into a request body, dropping the keys
// that address the entity rather than describe it.
func bodyFrom(args map[string]any, exclude ...string) map[string]any {
	body := make(map[string]any, len(args))

	for key, value := range args {
		body[key] = value
	}

	for _, key := range exclude {
		delete(body, key)
	}

	return body
}
