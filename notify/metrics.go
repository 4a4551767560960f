package notify

import "github.com/spacemeshos/go-txview/metrics"

const subsystem = "notify"

var (
	backlog = metrics.NewSimpleGauge(
		"backlog",
		subsystem,
		"changes buffered while a bulk operation runs",
	)
	flushed = metrics.NewSimpleCounter(
		"flushed",
		subsystem,
		"changes replayed after bulk operations",
	)
)
