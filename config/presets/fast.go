package presets

import (
	"time"

	"github.com/spacemeshos/go-txview/config"
)

func init() {
	register("fast", fast())
}

// fast produces a block every second and archives aggressively.
func fast() config.Config {
	conf := config.DefaultConfig()
	conf.Simulator.BlockInterval = time.Second
	conf.Simulator.TxPerBlock = 5
	conf.Simulator.ArchiveDepth = 10
	conf.Simulator.RescanSize = 0
	conf.Ledger.ArchiveCacheSize = 32
	return conf
}
