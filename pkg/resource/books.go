package resource

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sirupsen/logrus"

	"github.com/james-choncholas/bookstack-mcp-server/pkg/bookstack"
)

// RegisterBookResources registers the bookstack://books resources.
func RegisterBookResources(log logrus.FieldLogger, reg Registry, client bookstack.Client) {
	log = log.WithField("resource", "books")

	reg.Register(Entry{
		Resource: mcp.Resource{
			URI:         "bookstack://books",
			Name:        "All Books",
			Description: "Listing of all books in the BookStack instance",
			MIMEType:    "application/json",
		},
		Handler: func(ctx context.Context, _ string) (any, error) {
			return client.ListBooks(ctx, bookstack.ListParams{})
		},
	})

	reg.Register(Entry{
		Resource: mcp.Resource{
			URI:         "bookstack://books/{id}",
			Name:        "Book Details",
			Description: "Full details of a single book, including its chapters and pages",
			MIMEType:    "application/json",
		},
		Handler: func(ctx context.Context, uri string) (any, error) {
			id, err := trailingID(uri)
			if err != nil {
				return nil, err
			}

			return client.GetBook(ctx, id)
		},
	})

	log.Debug("Registered book resources")
}
