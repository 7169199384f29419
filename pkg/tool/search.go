package tool

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sirupsen/logrus"

	"github.com/james-choncholas/bookstack-mcp-server/pkg/bookstack"
	"github.com/james-choncholas/bookstack-mcp-server/pkg/mcperr"
	"github.com/james-choncholas/bookstack-mcp-server/pkg/params"
)

const searchAllDescription = `Search across all content types (shelves, books, chapters, pages).

Supports BookStack's search syntax: exact terms in quotes, tag filters like [tag=value],
and option filters like {created_by:me} or {type:page}.`

// NewSearchTools returns the catalog entry for unified search.
func NewSearchTools(log logrus.FieldLogger, client bookstack.Client) []Definition {
	log.WithField("tools", "search").Debug("Building search tools")

	t := mcp.Tool{
		Name:        "search_all",
		Description: searchAllDescription,
		InputSchema: objectSchema(map[string]any{
			"query": map[string]any{
				"type":        "string",
				"description": "Search query, supports the BookStack search syntax",
				"minLength":   1,
			},
			"page": map[string]any{
				"type":        "integer",
				"description": "Results page to return",
				"minimum":     1,
			},
			"count": map[string]any{
				"type":        "integer",
				"description": "Number of results per page (max 100)",
				"minimum":     1,
				"maximum":     100,
			},
		}, "query"),
	}
	schema := params.MustCompile(t.InputSchema)

	return []Definition{{
		Tool: t,
		Handler: func(ctx context.Context, args map[string]any) (any, error) {
			args, err := schema.Validate(args)
			if err != nil {
				return nil, err
			}

			query, ok := args["query"].(string)
			if !ok || query == "" {
				return nil, mcperr.Validation("query must be a non-empty string")
			}

			page := 0
			if v, ok := args["page"].(float64); ok {
				page = int(v)
			}

			count := 0
			if v, ok := args["count"].(float64); ok {
				count = int(v)
			}

			return client.Search(ctx, query, page, count)
		},
	}}
}
