package server

import (
	"context"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/james-choncholas/bookstack-mcp-server/pkg/bookstack"
	"github.com/james-choncholas/bookstack-mcp-server/pkg/resource"
	"github.com/james-choncholas/bookstack-mcp-server/pkg/tool"
)

// probeClient stubs the connectivity probe; every other client method is
// unused by the aggregator.
type probeClient struct {
	bookstack.Client

	err      error
	panicMsg string
}

func (c *probeClient) HealthCheck(_ context.Context) error {
	if c.panicMsg != "" {
		panic(c.panicMsg)
	}

	return c.err
}

func populatedRegistries() (tool.Registry, resource.Registry) {
	log := testLogger()

	tools := tool.NewRegistry(log)
	registerTool(tools, "books_list", func(_ context.Context, _ map[string]any) (any, error) {
		return nil, nil
	})

	resources := resource.NewRegistry(log)
	resources.Register(resource.Entry{
		Resource: mcp.Resource{URI: "bookstack://books", Name: "books"},
		Handler: func(_ context.Context, _ string) (any, error) {
			return nil, nil
		},
	})

	return tools, resources
}

func TestHealthAllChecksPass(t *testing.T) {
	tools, resources := populatedRegistries()
	agg := NewHealthAggregator(testLogger(), &probeClient{}, tools, resources)

	report := agg.Check(context.Background())

	if !report.Healthy() {
		t.Errorf("expected healthy report, got %+v", report)
	}

	for _, name := range []string{"bookstack_api", "tools_registered", "resources_registered"} {
		if !report.Checks[name] {
			t.Errorf("expected check %s to pass", name)
		}
	}
}

func TestHealthFailedProbeMakesUnhealthy(t *testing.T) {
	tools, resources := populatedRegistries()
	client := &probeClient{err: errors.New("connection refused")}
	agg := NewHealthAggregator(testLogger(), client, tools, resources)

	report := agg.Check(context.Background())

	if report.Healthy() {
		t.Error("expected unhealthy report when the upstream probe fails")
	}

	if report.Checks["bookstack_api"] {
		t.Error("expected bookstack_api check to fail")
	}

	// The other checks still report their own state.
	if !report.Checks["tools_registered"] || !report.Checks["resources_registered"] {
		t.Error("expected registry checks to remain unaffected")
	}
}

func TestHealthEmptyRegistriesMakeUnhealthy(t *testing.T) {
	log := testLogger()
	tools := tool.NewRegistry(log)
	resources := resource.NewRegistry(log)

	agg := NewHealthAggregator(log, &probeClient{}, tools, resources)

	report := agg.Check(context.Background())

	if report.Healthy() {
		t.Error("expected unhealthy report with empty registries")
	}

	if report.Checks["tools_registered"] || report.Checks["resources_registered"] {
		t.Errorf("expected registry checks to fail, got %+v", report.Checks)
	}
}

func TestHealthProbePanicIsFolded(t *testing.T) {
	tools, resources := populatedRegistries()
	client := &probeClient{panicMsg: "nil upstream"}
	agg := NewHealthAggregator(testLogger(), client, tools, resources)

	// A panicking probe must degrade to a failed check, not crash the caller.
	report := agg.Check(context.Background())

	if report.Healthy() {
		t.Error("expected unhealthy report when the probe panics")
	}

	if report.Checks["bookstack_api"] {
		t.Error("expected bookstack_api check to fail on panic")
	}

	if report.Status != StatusUnhealthy {
		t.Errorf("expected status %q, got %q", StatusUnhealthy, report.Status)
	}
}
