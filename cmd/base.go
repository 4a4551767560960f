// Package cmd is the base package for the txview executables.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"reflect"
	"sync"
	"syscall"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	bc "github.com/spacemeshos/go-txview/config"
	"github.com/spacemeshos/go-txview/config/presets"
	"github.com/spacemeshos/go-txview/log"
)

var (
	// Version is the app's semantic version. Designed to be overwritten by make.
	Version string

	// Branch is the git branch used to build the App. Designed to be overwritten by make.
	Branch string

	// Commit is the git commit used to build the app. Designed to be overwritten by make.
	Commit string
)

var (
	mu                      sync.RWMutex
	globalCtx, globalCancel = context.WithCancel(context.Background())
)

// Ctx returns global context.
func Ctx() context.Context {
	mu.RLock()
	defer mu.RUnlock()

	return globalCtx
}

// Cancel returns global cancellation function.
func Cancel() func() {
	mu.RLock()
	defer mu.RUnlock()

	return globalCancel
}

// HandleInterrupts cancels the global context on the first interrupt or termination signal.
func HandleInterrupts(logger *zap.Logger) {
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-signalChan
		logger.Info("received signal, stopping", zap.Stringer("signal", sig))
		Cancel()()
	}()
}

// LoadConfigFromFile reads the config file and the preset selected by flags
// and decodes them on top of the defaults.
func LoadConfigFromFile() (*bc.Config, error) {
	fileLocation := viper.GetString("config")
	if err := bc.LoadConfig(fileLocation, viper.GetViper()); err != nil {
		return nil, err
	}

	conf := bc.DefaultConfig()
	if name := viper.GetString("preset"); len(name) > 0 {
		preset, err := presets.Get(name)
		if err != nil {
			return nil, err
		}
		conf = preset
	}
	if err := bc.Unmarshal(viper.GetViper(), &conf); err != nil {
		return nil, err
	}
	return &conf, nil
}

// LoadConfig loads the config and applies the flags set on cmd.
func LoadConfig(cmd *cobra.Command) (*bc.Config, error) {
	conf, err := LoadConfigFromFile()
	if err != nil {
		return nil, err
	}
	if err := EnsureCLIFlags(cmd, conf); err != nil {
		return nil, err
	}
	return conf, nil
}

// EnsureCLIFlags checks flag types and converts them.
func EnsureCLIFlags(cmd *cobra.Command, appCFG *bc.Config) error {
	var err error
	assignFields := func(p reflect.Type, elem reflect.Value, name string) {
		for i := 0; i < p.NumField(); i++ {
			if p.Field(i).Tag.Get("mapstructure") != name {
				continue
			}
			var val any
			switch p.Field(i).Type.String() {
			case "bool":
				val = viper.GetBool(name)
			case "string":
				val = viper.GetString(name)
			case "int":
				val = viper.GetInt(name)
			case "int64":
				val = viper.GetInt64(name)
			case "uint64":
				val = viper.GetUint64(name)
			case "time.Duration":
				val = viper.GetDuration(name)
			default:
				err = fmt.Errorf("flag %s: unsupported type %s", name, p.Field(i).Type)
				return
			}
			elem.Field(i).Set(reflect.ValueOf(val))
			return
		}
	}

	// viper can't handle nested structs when deserializing flags
	sections := []any{
		&appCFG.BaseConfig,
		&appCFG.Session.Cache,
		&appCFG.Session.Queue,
		&appCFG.Session.Dispatch,
		&appCFG.Ledger,
		&appCFG.Simulator,
		&appCFG.LOGGING,
	}
	cmd.Flags().Visit(func(f *pflag.Flag) {
		for _, section := range sections {
			elem := reflect.ValueOf(section).Elem()
			assignFields(elem.Type(), elem, f.Name)
		}
	})
	return err
}

// NewLogger returns the logger for the named module with the level set in the logging config.
func NewLogger(conf *bc.Config, name string) (*zap.Logger, error) {
	level, err := decodeLoggerLevel(conf, name)
	if err != nil {
		return nil, err
	}
	return log.New(name, level, conf.LOGGING.Encoder)
}

func decodeLoggerLevel(conf *bc.Config, name string) (string, error) {
	loggers := map[string]string{}
	if err := mapstructure.Decode(conf.LOGGING, &loggers); err != nil {
		return "", fmt.Errorf("error decoding mapstructure: %w", err)
	}
	if level, ok := loggers[name]; ok {
		return level, nil
	}
	return conf.LOGGING.AppLoggerLevel, nil
}
