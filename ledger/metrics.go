package ledger

import "github.com/spacemeshos/go-txview/metrics"

const subsystem = "ledger"

var (
	activeGauge = metrics.NewSimpleGauge(
		"active",
		subsystem,
		"transactions in the active store",
	)
	archivedGauge = metrics.NewSimpleGauge(
		"archived",
		subsystem,
		"transactions in the archive",
	)
	tipGauge = metrics.NewSimpleGauge(
		"tip",
		subsystem,
		"chain tip height",
	)
	archiveCacheHits = metrics.NewCounter(
		"archive_cache",
		subsystem,
		"archived transaction lookups by decoded cache outcome",
		[]string{"outcome"},
	)
)
