package presets

import (
	"time"

	"github.com/spacemeshos/go-txview/config"
)

func init() {
	register("rescan", rescan())
}

// rescan starts with a large rescan so that the queued changes are replayed
// with the processing advisory on.
func rescan() config.Config {
	conf := config.DefaultConfig()
	conf.Simulator.RescanSize = 500
	conf.Simulator.BlockInterval = 5 * time.Second
	conf.Session.Cache.Cap = 1000
	conf.LOGGING.QueueLoggerLevel = "debug"
	return conf
}
