package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	cfg "github.com/spacemeshos/go-txview/config"
)

func newTestCommand(t *testing.T) *cobra.Command {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	cmd := &cobra.Command{Use: "test", Run: func(*cobra.Command, []string) {}}
	AddCommands(cmd)
	return cmd
}

func TestEnsureCLIFlags(t *testing.T) {
	cmd := newTestCommand(t)
	require.NoError(t, cmd.ParseFlags([]string{
		"--cap", "7",
		"--threshold", "2",
		"--block-interval", "3s",
		"--archive-depth", "4",
		"--seed", "9",
		"--metrics",
		"--log-encoder", "json",
	}))

	conf := cfg.DefaultConfig()
	require.NoError(t, EnsureCLIFlags(cmd, &conf))
	require.Equal(t, 7, conf.Session.Cache.Cap)
	require.Equal(t, 2, conf.Session.Queue.Threshold)
	require.Equal(t, 3*time.Second, conf.Simulator.BlockInterval)
	require.EqualValues(t, 4, conf.Simulator.ArchiveDepth)
	require.EqualValues(t, 9, conf.Simulator.Seed)
	require.True(t, conf.CollectMetrics)
	require.Equal(t, cfg.JSONLogEncoder, conf.LOGGING.Encoder)

	defaults := cfg.DefaultConfig()
	require.Equal(t, defaults.Simulator.TxPerBlock, conf.Simulator.TxPerBlock)
	require.Equal(t, defaults.MetricsPort, conf.MetricsPort)
}

func TestLoadConfig_PresetFileAndFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "txview.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[simulator]
tx-per-block = 11
`), 0o600))

	cmd := newTestCommand(t)
	require.NoError(t, cmd.ParseFlags([]string{"--config", path, "--preset", "fast", "--rescan-size", "3"}))

	conf, err := LoadConfig(cmd)
	require.NoError(t, err)
	require.Equal(t, time.Second, conf.Simulator.BlockInterval)
	require.Equal(t, 11, conf.Simulator.TxPerBlock)
	require.Equal(t, 3, conf.Simulator.RescanSize)
}

func TestLoadConfig_UnknownPreset(t *testing.T) {
	cmd := newTestCommand(t)
	require.NoError(t, cmd.ParseFlags([]string{"--preset", "slow"}))

	_, err := LoadConfig(cmd)
	require.ErrorContains(t, err, "preset slow is not registered")
}

func TestNewLogger(t *testing.T) {
	conf := cfg.DefaultConfig()

	logger, err := NewLogger(&conf, "ledger")
	require.NoError(t, err)
	require.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	require.True(t, logger.Core().Enabled(zapcore.WarnLevel))

	logger, err = NewLogger(&conf, "unregistered")
	require.NoError(t, err)
	require.True(t, logger.Core().Enabled(zapcore.InfoLevel))

	conf.LOGGING.CacheLoggerLevel = "loud"
	_, err = NewLogger(&conf, "cache")
	require.Error(t, err)
}
