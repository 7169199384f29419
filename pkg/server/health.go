package server

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/james-choncholas/bookstack-mcp-server/pkg/bookstack"
	"github.com/james-choncholas/bookstack-mcp-server/pkg/resource"
	"github.com/james-choncholas/bookstack-mcp-server/pkg/tool"
)

// Health status values.
const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// HealthReport is the result of one aggregation pass. It is recomputed on
// every request and never stored.
type HealthReport struct {
	Status string          `json:"status"`
	Checks map[string]bool `json:"checks"`
}

// Healthy reports whether all checks passed.
func (r HealthReport) Healthy() bool {
	return r.Status == StatusHealthy
}

// HealthAggregator folds independent checks into a single status: upstream
// API reachability, tool registry population and resource registry
// population, combined with logical AND.
type HealthAggregator struct {
	log       logrus.FieldLogger
	client    bookstack.Client
	tools     tool.Registry
	resources resource.Registry
}

// NewHealthAggregator creates a health aggregator.
func NewHealthAggregator(log logrus.FieldLogger, client bookstack.Client, tools tool.Registry, resources resource.Registry) *HealthAggregator {
	return &HealthAggregator{
		log:       log.WithField("component", "health"),
		client:    client,
		tools:     tools,
		resources: resources,
	}
}

// Check runs all checks and returns the aggregate report. It never fails: a
// failing or panicking connectivity probe is just a false result.
func (a *HealthAggregator) Check(ctx context.Context) HealthReport {
	checks := map[string]bool{
		"bookstack_api":        a.probeUpstream(ctx),
		"tools_registered":     a.tools.Len() > 0,
		"resources_registered": a.resources.Len() > 0,
	}

	status := StatusHealthy

	for name, ok := range checks {
		if !ok {
			status = StatusUnhealthy

			a.log.WithField("check", name).Warn("Health check failed")
		}
	}

	return HealthReport{Status: status, Checks: checks}
}

// probeUpstream runs the connectivity probe, folding errors and panics into
// a boolean.
func (a *HealthAggregator) probeUpstream(ctx context.Context) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			a.log.WithField("panic", r).Error("Connectivity probe panicked")
			ok = false
		}
	}()

	if err := a.client.HealthCheck(ctx); err != nil {
		a.log.WithError(err).Debug("Connectivity probe failed")

		return false
	}

	return true
}
