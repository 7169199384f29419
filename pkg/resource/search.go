package resource

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sirupsen/logrus"

	"github.com/james-choncholas/bookstack-mcp-server/pkg/bookstack"
	"github.com/james-choncholas/bookstack-mcp-server/pkg/mcperr"
)

// RegisterSearchResources registers the bookstack://search/{query} resource.
func RegisterSearchResources(log logrus.FieldLogger, reg Registry, client bookstack.Client) {
	log = log.WithField("resource", "search")

	reg.Register(Entry{
		Resource: mcp.Resource{
			URI:         "bookstack://search/{query}",
			Name:        "Search Results",
			Description: "Search results across all content types for the given query",
			MIMEType:    "application/json",
		},
		Handler: func(ctx context.Context, uri string) (any, error) {
			query := trailingSegment(uri)
			if query == "" {
				return nil, mcperr.Validation("search query must not be empty")
			}

			return client.Search(ctx, query, 0, 0)
		},
	})

	log.Debug("Registered search resources")
}
