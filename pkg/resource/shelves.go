package resource

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sirupsen/logrus"

	"github.com/james-choncholas/bookstack-mcp-server/pkg/bookstack"
)

// RegisterShelfResources registers the bookstack://shelves resources.
func RegisterShelfResources(log logrus.FieldLogger, reg Registry, client bookstack.Client) {
	log = log.WithField("resource", "shelves")

	reg.Register(Entry{
		Resource: mcp.Resource{
			URI:         "bookstack://shelves",
			Name:        "All Shelves",
			Description: "Listing of all bookshelves in the BookStack instance",
			MIMEType:    "application/json",
		},
		Handler: func(ctx context.Context, _ string) (any, error) {
			return client.ListShelves(ctx, bookstack.ListParams{})
		},
	})

	reg.Register(Entry{
		Resource: mcp.Resource{
			URI:         "bookstack://shelves/{id}",
			Name:        "Shelf Details",
			Description: "Full details of a single bookshelf, including the books on it",
			MIMEType:    "application/json",
		},
		Handler: func(ctx context.Context, uri string) (any, error) {
			id, err := trailingID(uri)
			if err != nil {
				return nil, err
			}

			return client.GetShelf(ctx, id)
		},
	})

	log.Debug("Registered shelf resources")
}
