package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	cfg "github.com/spacemeshos/go-txview/config"
	"github.com/spacemeshos/go-txview/config/presets"
)

var config = cfg.DefaultConfig()

// AddCommands adds cobra commands to the app.
func AddCommands(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP("preset", "p", "",
		fmt.Sprintf("preset overwrites default values of the config. options %+s", presets.Options()))

	/** ======================== BaseConfig Flags ========================== **/
	cmd.PersistentFlags().StringVarP(&config.BaseConfig.ConfigFile,
		"config", "c", config.BaseConfig.ConfigFile, "Set Load configuration from file")
	cmd.PersistentFlags().StringVar(&config.LOGGING.Encoder, "log-encoder",
		config.LOGGING.Encoder, "Log as JSON instead of plain text")
	cmd.PersistentFlags().BoolVar(&config.CollectMetrics, "metrics",
		config.CollectMetrics, "collect metrics")
	cmd.PersistentFlags().IntVar(&config.MetricsPort, "metrics-port",
		config.MetricsPort, "metric server port")
	cmd.PersistentFlags().StringVar(&config.DumpFile, "dump-file",
		config.DumpFile, "file the dump command writes the view snapshot to")
	cmd.PersistentFlags().IntVar(&config.DumpBlocks, "dump-blocks",
		config.DumpBlocks, "number of simulated blocks produced before dumping")

	/** ======================== View Flags ========================== **/
	cmd.PersistentFlags().IntVar(&config.Session.Cache.Cap, "cap",
		config.Session.Cache.Cap, "maximum number of transactions kept in the view, 0 for unlimited")
	cmd.PersistentFlags().IntVar(&config.Session.Queue.Threshold, "threshold",
		config.Session.Queue.Threshold, "queued notifications above which a flush is reported as bulk processing")
	cmd.PersistentFlags().IntVar(&config.Session.Dispatch.InitialCapacity, "initial-capacity",
		config.Session.Dispatch.InitialCapacity, "initial capacity of the dispatcher queue")

	/** ======================== Ledger Flags ========================== **/
	cmd.PersistentFlags().IntVar(&config.Ledger.ArchiveCacheSize, "archive-cache-size",
		config.Ledger.ArchiveCacheSize, "number of decoded archived transactions kept in memory")
	cmd.PersistentFlags().DurationVar(&config.Simulator.BlockInterval, "block-interval",
		config.Simulator.BlockInterval, "interval between simulated blocks")
	cmd.PersistentFlags().IntVar(&config.Simulator.TxPerBlock, "tx-per-block",
		config.Simulator.TxPerBlock, "pending transactions created after every simulated block")
	cmd.PersistentFlags().IntVar(&config.Simulator.ConfirmPercent, "confirm-percent",
		config.Simulator.ConfirmPercent, "chance in percent a pending transaction is included in the next block")
	cmd.PersistentFlags().Int64Var(&config.Simulator.ArchiveDepth, "archive-depth",
		config.Simulator.ArchiveDepth, "depth after which transactions are archived, 0 disables archiving")
	cmd.PersistentFlags().IntVar(&config.Simulator.RescanSize, "rescan-size",
		config.Simulator.RescanSize, "number of historic transactions found by the startup rescan")
	cmd.PersistentFlags().Uint64Var(&config.Simulator.Seed, "seed",
		config.Simulator.Seed, "seed of the simulated chain")

	// Bind Flags to config
	err := viper.BindPFlags(cmd.PersistentFlags())
	if err != nil {
		fmt.Println("an error has occurred while binding flags:", err)
	}
}
