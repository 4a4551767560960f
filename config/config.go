// Package config contains txview configuration definitions
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/spacemeshos/go-txview/ledger"
	"github.com/spacemeshos/go-txview/session"
)

const defaultConfigFileName = "./config.toml"

// Config defines the top level configuration for the txview tool.
type Config struct {
	BaseConfig `mapstructure:"main"`
	Session    session.Config   `mapstructure:"session"`
	Ledger     ledger.Config    `mapstructure:"ledger"`
	Simulator  ledger.SimConfig `mapstructure:"simulator"`
	LOGGING    LoggerConfig     `mapstructure:"logging"`
}

// BaseConfig defines the default configuration options for the txview tool.
type BaseConfig struct {
	ConfigFile string `mapstructure:"config"`

	CollectMetrics bool `mapstructure:"metrics"`
	MetricsPort    int  `mapstructure:"metrics-port"`

	// DumpFile is where the dump command writes the view snapshot.
	DumpFile string `mapstructure:"dump-file"`
	// DumpBlocks is the number of simulated blocks produced before dumping.
	DumpBlocks int `mapstructure:"dump-blocks"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		BaseConfig: defaultBaseConfig(),
		Session:    session.DefaultConfig(),
		Ledger:     ledger.DefaultConfig(),
		Simulator:  ledger.DefaultSimConfig(),
		LOGGING:    defaultLoggingConfig(),
	}
}

func defaultBaseConfig() BaseConfig {
	return BaseConfig{
		ConfigFile:     defaultConfigFileName,
		CollectMetrics: false,
		MetricsPort:    1010,
		DumpFile:       "./txview.json",
		DumpBlocks:     20,
	}
}

// LoadConfig reads the config file at fileLocation into vip. A missing
// default config file is not an error.
func LoadConfig(fileLocation string, vip *viper.Viper) error {
	if fileLocation == "" {
		fileLocation = defaultConfigFileName
	}
	vip.SetConfigFile(fileLocation)
	err := vip.ReadInConfig()
	if err == nil {
		return nil
	}
	if fileLocation == defaultConfigFileName && errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("read config file %s: %w", fileLocation, err)
}

// Unmarshal decodes the values loaded into vip on top of conf.
func Unmarshal(vip *viper.Viper, conf *Config) error {
	hook := mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
	if err := vip.Unmarshal(conf, viper.DecodeHook(hook)); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}
