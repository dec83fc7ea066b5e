// Copyright 2024 The go-chainspec Authors
// This file is part of go-chainspec.
//
// go-chainspec is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-chainspec is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-chainspec. If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"reflect"
	"unicode"

	"github.com/mitchellh/go-homedir"
	"github.com/naoina/toml"
	"github.com/openethereum/go-chainspec/log"
	"github.com/openethereum/go-chainspec/spec"
	"github.com/urfave/cli/v2"
)

var (
	dumpConfigCommand = &cli.Command{
		Action:      dumpConfig,
		Name:        "dumpconfig",
		Usage:       "Show configuration values",
		ArgsUsage:   "",
		Description: `The dumpconfig command shows the effective configuration values.`,
	}

	configFileFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	verbosityFlag = &cli.IntFlag{
		Name:  "verbosity",
		Usage: "Logging verbosity: 0=crit, 1=error, 2=warn, 3=info, 4=debug, 5=detail",
		Value: int(log.LvlInfo),
	}
	noColorFlag = &cli.BoolFlag{
		Name:  "nocolor",
		Usage: "Disable colored output",
	}
	logFileFlag = &cli.StringFlag{
		Name:  "log.file",
		Usage: "Also write logs in logfmt to this file, rotated at 100 MB",
	}
	logJSONFlag = &cli.BoolFlag{
		Name:  "log.json",
		Usage: "Write the log file as JSON records instead of logfmt",
	}
	logDebugFlag = &cli.BoolFlag{
		Name:  "log.debug",
		Usage: "Prepend log messages with call-site location (file and line number)",
	}
	formatFlag = &cli.StringFlag{
		Name:  "format",
		Usage: "Chain spec input format (json or yaml), picked from the file extension if unset",
	}
)

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		link := ""
		if unicode.IsUpper(rune(rt.Name()[0])) && rt.PkgPath() != "main" {
			link = fmt.Sprintf(", see https://pkg.go.dev/%s#%s for available fields", rt.PkgPath(), rt.Name())
		}
		return fmt.Errorf("field '%s' is not defined in %s%s", field, rt.String(), link)
	},
}

// Config is the configuration of the builtinspec tool.
type Config struct {
	Verbosity int
	NoColor   bool
	LogFile   string
	LogJSON   bool
	LogDebug  bool

	// Format is the chain spec input format. Empty means by file extension.
	Format string

	// Output is the document format written by migrate and defaults.
	Output string
}

var defaultConfig = Config{
	Verbosity: int(log.LvlInfo),
	Output:    "json",
}

func loadConfig(file string, cfg *Config) error {
	file, err := homedir.Expand(file)
	if err != nil {
		return err
	}
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}

// makeConfig loads the configuration file, if any, and applies the command
// line flags on top of it.
func makeConfig(ctx *cli.Context) (*Config, error) {
	cfg := defaultConfig
	if file := ctx.String(configFileFlag.Name); file != "" {
		if err := loadConfig(file, &cfg); err != nil {
			return nil, fmt.Errorf("failed to load config %s: %v", file, err)
		}
	}
	if ctx.IsSet(verbosityFlag.Name) {
		cfg.Verbosity = ctx.Int(verbosityFlag.Name)
	}
	if ctx.IsSet(noColorFlag.Name) {
		cfg.NoColor = ctx.Bool(noColorFlag.Name)
	}
	if ctx.IsSet(logFileFlag.Name) {
		cfg.LogFile = ctx.String(logFileFlag.Name)
	}
	if ctx.IsSet(logJSONFlag.Name) {
		cfg.LogJSON = ctx.Bool(logJSONFlag.Name)
	}
	if ctx.IsSet(logDebugFlag.Name) {
		cfg.LogDebug = ctx.Bool(logDebugFlag.Name)
	}
	if ctx.IsSet(formatFlag.Name) {
		cfg.Format = ctx.String(formatFlag.Name)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.Verbosity < int(log.LvlCrit) || cfg.Verbosity > int(log.LvlTrace) {
		return fmt.Errorf("verbosity %d out of range [%d, %d]", cfg.Verbosity, log.LvlCrit, log.LvlTrace)
	}
	if cfg.Format != "" {
		if _, err := spec.ParseFormat(cfg.Format); err != nil {
			return err
		}
	}
	if _, err := spec.ParseFormat(cfg.Output); err != nil {
		return fmt.Errorf("invalid output: %v", err)
	}
	return nil
}

// inputFormat returns the format to read path with.
func (cfg *Config) inputFormat(path string) spec.Format {
	if cfg.Format != "" {
		f, _ := spec.ParseFormat(cfg.Format)
		return f
	}
	return spec.FormatFromPath(path)
}

// dumpConfig is the dumpconfig command.
func dumpConfig(ctx *cli.Context) error {
	cfg := appConfig(ctx)
	out, err := tomlSettings.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = ctx.App.Writer.Write(out)
	return err
}
