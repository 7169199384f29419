package tool

import (
	"github.com/sirupsen/logrus"

	"github.com/james-choncholas/bookstack-mcp-server/pkg/bookstack"
)

// NewAuditTools returns the catalog entry for the audit log.
func NewAuditTools(log logrus.FieldLogger, client bookstack.Client) []Definition {
	log.WithField("tools", "audit").Debug("Building audit tools")

	return []Definition{
		listTool("audit_log_list",
			"List audit log events (requires admin permissions). Filterable by type, user and date",
			client.ListAuditLog),
	}
}
