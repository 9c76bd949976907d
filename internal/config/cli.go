// Package config declares the makestatus command line.
package config

import (
	"github.com/alecthomas/kong"

	"github.com/Alia5/makestatus/internal/cmd"
)

// CLI is the root kong command tree. Every flag can also be set from a
// configuration file or a MAKESTATUS_* environment variable.
type CLI struct {
	Config  string           `help:"Path to a json, yaml or toml configuration file" type:"path" env:"MAKESTATUS_CONFIG"`
	Version kong.VersionFlag `help:"Print version and exit"`
	Log     LogConfig        `embed:"" prefix:"log."`

	Generate   cmd.Generate      `cmd:"" help:"Generate the QStatus header, source and dependency files"`
	List       cmd.List          `cmd:"" help:"Print the flattened status table"`
	ConfigCmds cmd.ConfigCommand `cmd:"" name:"config" help:"Configuration file helpers"`
}

// LogConfig controls the slog setup.
type LogConfig struct {
	Level string `help:"Log level: trace, debug, info, warn, error" default:"warn" enum:"trace,debug,info,warn,error" env:"MAKESTATUS_LOG_LEVEL"`
	File  string `help:"Also write logs at trace level to this file" type:"path" env:"MAKESTATUS_LOG_FILE"`
}
