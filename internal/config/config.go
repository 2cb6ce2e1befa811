package config

import (
	"github.com/paularlott/cli"
)

type Config struct {
	LogLevel  string
	LogFormat string
}

var (
	logLevel  string
	logFormat string
)

func GetFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:         "log-level",
			Usage:        "Log level (debug, info, warn, error)",
			EnvVars:      []string{"SUBNETCALC_LOG_LEVEL"},
			DefaultValue: "info",
			AssignTo:     &logLevel,
		},
		&cli.StringFlag{
			Name:         "log-format",
			Usage:        "Log output format (console or json)",
			EnvVars:      []string{"SUBNETCALC_LOG_FORMAT"},
			DefaultValue: "console",
			AssignTo:     &logFormat,
		},
	}
}

func Load() *Config {
	return &Config{
		LogLevel:  logLevel,
		LogFormat: logFormat,
	}
}
