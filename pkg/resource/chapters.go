package resource

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sirupsen/logrus"

	"github.com/james-choncholas/bookstack-mcp-server/pkg/bookstack"
)

// RegisterChapterResources registers the bookstack://chapters resources.
func RegisterChapterResources(log logrus.FieldLogger, reg Registry, client bookstack.Client) {
	log = log.WithField("resource", "chapters")

	reg.Register(Entry{
		Resource: mcp.Resource{
			URI:         "bookstack://chapters",
			Name:        "All Chapters",
			Description: "Listing of all chapters in the BookStack instance",
			MIMEType:    "application/json",
		},
		Handler: func(ctx context.Context, _ string) (any, error) {
			return client.ListChapters(ctx, bookstack.ListParams{})
		},
	})

	reg.Register(Entry{
		Resource: mcp.Resource{
			URI:         "bookstack://chapters/{id}",
			Name:        "Chapter Details",
			Description: "Full details of a single chapter, including its pages",
			MIMEType:    "application/json",
		},
		Handler: func(ctx context.Context, uri string) (any, error) {
			id, err := trailingID(uri)
			if err != nil {
				return nil, err
			}

			return client.GetChapter(ctx, id)
		},
	})

	log.Debug("Registered chapter resources")
}
