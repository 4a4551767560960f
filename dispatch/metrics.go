package dispatch

import "github.com/spacemeshos/go-txview/metrics"

const subsystem = "dispatch"

var (
	depth = metrics.NewSimpleGauge(
		"depth",
		subsystem,
		"messages waiting for the view context",
	)
	delivered = metrics.NewCounter(
		"delivered",
		subsystem,
		"messages delivered by kind",
		[]string{"kind"},
	)
)
