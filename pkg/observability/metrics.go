// Package observability provides metrics capabilities for bookstack-mcp.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics namespace for all bookstack-mcp metrics.
const metricsNamespace = "bookstack_mcp"

// Tool call metrics.
var (
	// ToolCallsTotal counts the total number of tool calls by tool name and status.
	ToolCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "tool_calls_total",
			Help:      "Total number of tool calls",
		},
		[]string{"tool", "status"},
	)

	// ToolCallDuration measures the duration of tool calls in seconds.
	ToolCallDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "tool_call_duration_seconds",
			Help:      "Duration of tool calls in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.1, 2, 10),
		},
		[]string{"tool"},
	)
)

// Resource read metrics.
var (
	// ResourceReadsTotal counts resource reads by status.
	ResourceReadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "resource_reads_total",
			Help:      "Total number of resource reads",
		},
		[]string{"status"},
	)
)

// Session metrics.
var (
	// ActiveSessions tracks the number of in-flight MCP sessions.
	ActiveSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "active_sessions",
			Help:      "Number of in-flight MCP sessions",
		},
	)
)

func init() {
	prometheus.MustRegister(
		ToolCallsTotal,
		ToolCallDuration,
		ResourceReadsTotal,
		ActiveSessions,
	)
}
