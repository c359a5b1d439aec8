// Package config defines the top-level CLI structure parsed by kong.
package config

import (
	"github.com/vuemdi/mdigen/internal/cmd"
)

// LogConfig holds the logging flags shared by all commands.
type LogConfig struct {
	Level string `help:"Log level: trace, debug, info, warn, error" enum:"trace,debug,info,warn,error" default:"info" env:"MDIGEN_LOG_LEVEL"`
	File  string `help:"Mirror logs to this file (truncated on start)" env:"MDIGEN_LOG_FILE"`
}

// CLI is the root command structure.
type CLI struct {
	ConfigFile string    `name:"config" help:"Path to a configuration file (JSON, YAML, or TOML)" env:"MDIGEN_CONFIG"`
	Log        LogConfig `embed:"" prefix:"log."`

	Generate  cmd.Generate      `cmd:"" default:"withargs" help:"Generate icon components, indexes, and demo pages"`
	Clean     cmd.Clean         `cmd:"" help:"Remove previously generated output trees"`
	ConfigCmd cmd.ConfigCommand `cmd:"" name:"config" help:"Configuration file helpers"`
}
