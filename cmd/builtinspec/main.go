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

// builtinspec inspects and migrates the builtin contract definitions of a
// chain specification.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/mitchellh/go-homedir"
	"github.com/openethereum/go-chainspec/internal/version"
	"github.com/openethereum/go-chainspec/log"
	"github.com/urfave/cli/v2"
	"gopkg.in/natefinch/lumberjack.v2"
)

const configKey = "config"

var app = newApp()

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "builtinspec"
	app.Usage = "chain specification builtin contract tool"
	app.Version = version.String()
	app.Copyright = "Copyright 2024 The go-chainspec Authors"
	app.Metadata = make(map[string]interface{})
	app.Flags = []cli.Flag{
		configFileFlag,
		verbosityFlag,
		noColorFlag,
		logFileFlag,
		logJSONFlag,
		logDebugFlag,
		formatFlag,
	}
	app.Commands = []*cli.Command{
		checkCommand,
		scheduleCommand,
		migrateCommand,
		defaultsCommand,
		dumpConfigCommand,
	}
	app.Before = func(ctx *cli.Context) error {
		cfg, err := makeConfig(ctx)
		if err != nil {
			return err
		}
		ctx.App.Metadata[configKey] = cfg
		return setupLogging(cfg, ctx.App.ErrWriter)
	}
	return app
}

// setupLogging installs the root log handler. Colors are only used when
// writing to a terminal.
func setupLogging(cfg *Config, w io.Writer) error {
	if w == nil {
		w = os.Stderr
	}
	usecolor := false
	if f, ok := w.(*os.File); ok && !cfg.NoColor {
		usecolor = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		if usecolor {
			w = colorable.NewColorable(f)
		}
	}
	if cfg.NoColor {
		color.NoColor = true
	}
	handler := log.StreamHandler(w, log.TerminalFormat(usecolor))
	if cfg.LogFile != "" {
		path, err := homedir.Expand(cfg.LogFile)
		if err != nil {
			return err
		}
		rotator := &lumberjack.Logger{
			Filename: path,
			MaxSize:  100, // megabytes
		}
		format := log.LogfmtFormat()
		if cfg.LogJSON {
			format = log.JSONFormat()
		}
		fileHandler := log.StreamHandler(rotator, format)
		if cfg.LogDebug {
			fileHandler = log.CallerFileHandler(fileHandler)
		}
		handler = log.MultiHandler(handler, fileHandler)
	}
	log.PrintOrigins(cfg.LogDebug)
	log.Root().SetHandler(log.LvlFilterHandler(log.Lvl(cfg.Verbosity), handler))
	return nil
}

func appConfig(ctx *cli.Context) *Config {
	return ctx.App.Metadata[configKey].(*Config)
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
