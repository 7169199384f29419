package resource

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sirupsen/logrus"

	"github.com/james-choncholas/bookstack-mcp-server/pkg/bookstack"
)

// RegisterSystemResources registers the bookstack://system resource.
func RegisterSystemResources(log logrus.FieldLogger, reg Registry, client bookstack.Client) {
	log = log.WithField("resource", "system")

	reg.Register(Entry{
		Resource: mcp.Resource{
			URI:         "bookstack://system",
			Name:        "System Information",
			Description: "Details of the BookStack instance: version, instance ID and base URL",
			MIMEType:    "application/json",
		},
		Handler: func(ctx context.Context, _ string) (any, error) {
			return client.GetSystemInfo(ctx)
		},
	})

	log.Debug("Registered system resources")
}
