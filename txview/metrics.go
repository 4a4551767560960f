package txview

import "github.com/spacemeshos/go-txview/metrics"

const subsystem = "cache"

var (
	rowsGauge = metrics.NewSimpleGauge(
		"rows",
		subsystem,
		"number of display records in the view",
	)
	changesCounter = metrics.NewCounter(
		"changes",
		subsystem,
		"applied changes by effective status",
		[]string{"status"},
	)
	inconsistencies = metrics.NewCounter(
		"inconsistencies",
		subsystem,
		"changes that disagree with the view",
		[]string{"kind"},
	)
	staleReads = metrics.NewSimpleCounter(
		"stale_reads",
		subsystem,
		"status reads served stale because the ledger was busy",
	)
	refreshDuration = metrics.NewLatencyHistogram(
		"refresh_duration_seconds",
		subsystem,
		"duration of a full refresh",
	)
)
