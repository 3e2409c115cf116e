// Package metrics defines and registers all custom Prometheus metrics for the
// annual review API. It is the single source of truth for metric names,
// labels, and help strings. HTTP-level metrics come from the echoprometheus
// middleware registered in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "reviewhub"

// RosterImportsTotal counts completed academic-year transitions.
var RosterImportsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "roster_imports_total",
		Help:      "Total number of academic-year roster imports completed.",
	},
)

// SnapshotFilesTotal counts archive snapshot workbooks written, whether taken
// automatically before an import or requested on demand.
var SnapshotFilesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "snapshot_files_total",
		Help:      "Total number of archive snapshot workbooks written.",
	},
)

// ReviewUpdatesTotal counts review form saves.
// Label:
//   - type: "module" or "program"
var ReviewUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "review_updates_total",
		Help:      "Total number of review updates applied.",
	},
	[]string{"type"},
)

// RemindersTotal counts reminder delivery outcomes.
// Label:
//   - result: "sent", "failed" or "skipped" (suppressed by the throttle)
var RemindersTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reminders_total",
		Help:      "Total number of reminder deliveries, labelled by outcome.",
	},
	[]string{"result"},
)
