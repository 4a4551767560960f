package config

import "go.uber.org/zap/zapcore"

// LogEncoder defines a log encoder kind.
type LogEncoder = string

const (
	defaultLoggingLevel = zapcore.InfoLevel
	// ConsoleLogEncoder represents logging with plain text.
	ConsoleLogEncoder LogEncoder = "console"
	// JSONLogEncoder represents logging with JSON.
	JSONLogEncoder LogEncoder = "json"
)

// LoggerConfig holds the logging level for each module.
type LoggerConfig struct {
	Encoder              LogEncoder `mapstructure:"log-encoder"`
	AppLoggerLevel       string     `mapstructure:"app"`
	CacheLoggerLevel     string     `mapstructure:"cache"`
	QueueLoggerLevel     string     `mapstructure:"queue"`
	DispatchLoggerLevel  string     `mapstructure:"dispatch"`
	LedgerLoggerLevel    string     `mapstructure:"ledger"`
	SimulatorLoggerLevel string     `mapstructure:"simulator"`
	MetricsLoggerLevel   string     `mapstructure:"metrics-server"`
}

func defaultLoggingConfig() LoggerConfig {
	return LoggerConfig{
		Encoder:              ConsoleLogEncoder,
		AppLoggerLevel:       defaultLoggingLevel.String(),
		CacheLoggerLevel:     defaultLoggingLevel.String(),
		QueueLoggerLevel:     defaultLoggingLevel.String(),
		DispatchLoggerLevel:  zapcore.WarnLevel.String(),
		LedgerLoggerLevel:    zapcore.WarnLevel.String(),
		SimulatorLoggerLevel: defaultLoggingLevel.String(),
		MetricsLoggerLevel:   defaultLoggingLevel.String(),
	}
}
