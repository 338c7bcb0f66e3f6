// Package metrics defines and registers all custom Prometheus metrics for
// the dual-admin API. It is the single source of truth for metric names,
// labels, and help strings. Registration happens at import time via
// promauto; request-level metrics come from the echoprometheus middleware
// wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dualadmin"

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// BroadcastsTotal counts change notifications fanned out to clients.
// Label:
//   - resource: the resource tag carried by the notification (e.g. "students")
var BroadcastsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "broadcasts_total",
		Help:      "Total number of resource-change broadcasts sent.",
	},
	[]string{"resource"},
)

// WebsocketConnections tracks the current number of live notification
// connections in the hub registry.
var WebsocketConnections = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "websocket_connections",
		Help:      "Current number of registered WebSocket connections.",
	},
)
