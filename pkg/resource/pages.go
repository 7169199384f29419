package resource

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sirupsen/logrus"

	"github.com/james-choncholas/bookstack-mcp-server/pkg/bookstack"
)

// RegisterPageResources registers the bookstack://pages resources.
func RegisterPageResources(log logrus.FieldLogger, reg Registry, client bookstack.Client) {
	log = log.WithField("resource", "pages")

	reg.Register(Entry{
		Resource: mcp.Resource{
			URI:         "bookstack://pages",
			Name:        "All Pages",
			Description: "Listing of all pages in the BookStack instance",
			MIMEType:    "application/json",
		},
		Handler: func(ctx context.Context, _ string) (any, error) {
			return client.ListPages(ctx, bookstack.ListParams{})
		},
	})

	reg.Register(Entry{
		Resource: mcp.Resource{
			URI:         "bookstack://pages/{id}",
			Name:        "Page Details",
			Description: "Full details and content of a single page",
			MIMEType:    "application/json",
		},
		Handler: func(ctx context.Context, uri string) (any, error) {
			id, err := trailingID(uri)
			if err != nil {
				return nil, err
			}

			return client.GetPage(ctx, id)
		},
	})

	log.Debug("Registered page resources")
}
