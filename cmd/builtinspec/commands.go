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
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/mitchellh/go-homedir"
	"github.com/olekukonko/tablewriter"
	"github.com/openethereum/go-chainspec/log"
	"github.com/openethereum/go-chainspec/spec"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var (
	blockFlag = &cli.Uint64Flag{
		Name:  "block",
		Usage: "Only show the pricing active at this block",
	}
	nameFlag = &cli.StringFlag{
		Name:  "name",
		Usage: "Only show builtins with this name",
	}
	yamlFlag = &cli.BoolFlag{
		Name:  "yaml",
		Usage: "Write YAML instead of JSON",
	}

	checkCommand = &cli.Command{
		Action:    checkSpec,
		Name:      "check",
		Usage:     "Validate the builtin contracts of a chain spec",
		ArgsUsage: "<chainspec>",
		Description: `
The check command decodes every builtin contract of the chain specification
and reports deprecated definitions. It fails on the first invalid builtin.`,
	}
	scheduleCommand = &cli.Command{
		Action:    showSchedule,
		Name:      "schedule",
		Usage:     "Print the pricing schedules of a chain spec",
		ArgsUsage: "<chainspec>",
		Flags:     []cli.Flag{blockFlag, nameFlag},
	}
	migrateCommand = &cli.Command{
		Action:    migrateSpec,
		Name:      "migrate",
		Usage:     "Rewrite builtin contracts with multi-activation pricing",
		ArgsUsage: "<chainspec>",
		Flags:     []cli.Flag{yamlFlag},
		Description: `
The migrate command prints the accounts section of the chain specification
with every builtin converted to the multi-activation pricing schedule. Legacy
activate_at and eip1108_transition fields do not survive the conversion.`,
	}
	defaultsCommand = &cli.Command{
		Action: showDefaults,
		Name:   "defaults",
		Usage:  "Print the Ethereum mainnet builtin contracts",
		Flags:  []cli.Flag{yamlFlag},
	}
)

func loadSpec(ctx *cli.Context) ([]spec.Precompile, error) {
	if ctx.NArg() != 1 {
		return nil, errors.New("need exactly one chain spec file argument")
	}
	path, err := homedir.Expand(ctx.Args().First())
	if err != nil {
		return nil, err
	}
	input, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	format := appConfig(ctx).inputFormat(path)
	log.Debug("Loading chain spec", "path", path, "format", format)
	precompiles, err := spec.LoadBuiltins(input, format, log.Root())
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return precompiles, nil
}

func checkSpec(ctx *cli.Context) error {
	precompiles, err := loadSpec(ctx)
	if err != nil {
		return err
	}
	ok := color.New(color.FgGreen).Sprint("OK")
	for _, p := range precompiles {
		fmt.Fprintf(ctx.App.Writer, "%s %s %-20s activations=%d\n", ok, p.Address, p.Builtin.Name, p.Builtin.Pricing.Len())
	}
	fmt.Fprintf(ctx.App.Writer, "%d builtins\n", len(precompiles))
	return nil
}

func showSchedule(ctx *cli.Context) error {
	precompiles, err := loadSpec(ctx)
	if err != nil {
		return err
	}
	var (
		name     = ctx.String(nameFlag.Name)
		atBlock  = ctx.IsSet(blockFlag.Name)
		block    = ctx.Uint64(blockFlag.Name)
		table    = tablewriter.NewWriter(ctx.App.Writer)
		rowCount int
	)
	table.SetHeader([]string{"Address", "Name", "Activation", "Info", "Pricing"})
	table.SetAutoWrapText(false)
	for _, p := range precompiles {
		if name != "" && p.Builtin.Name != name {
			continue
		}
		heights := p.Builtin.Pricing.Heights()
		if atBlock {
			h, ok := p.Builtin.Pricing.ActiveHeight(block)
			if !ok {
				continue
			}
			heights = []uint64{h}
		}
		for _, h := range heights {
			entry := p.Builtin.Pricing[h]
			info := ""
			if entry.Info != nil {
				info = *entry.Info
			}
			table.Append([]string{p.Address, p.Builtin.Name, strconv.FormatUint(h, 10), info, describePricing(entry.Price)})
			rowCount++
		}
	}
	if rowCount == 0 {
		return errors.New("no matching builtins")
	}
	table.Render()
	return nil
}

func describePricing(p spec.Pricing) string {
	switch p := p.(type) {
	case spec.Blake2F:
		return fmt.Sprintf("%s gas_per_round=%d", p.Kind(), p.GasPerRound)
	case spec.Linear:
		return fmt.Sprintf("%s base=%d word=%d", p.Kind(), p.Base, p.Word)
	case spec.Modexp:
		return fmt.Sprintf("%s divisor=%d", p.Kind(), p.Divisor)
	case spec.AltBn128Pairing:
		return fmt.Sprintf("%s base=%d pair=%d", p.Kind(), p.Base, p.Pair)
	case spec.AltBn128ConstOperations:
		return fmt.Sprintf("%s price=%d", p.Kind(), p.Price)
	}
	return fmt.Sprintf("%v", p)
}

func migrateSpec(ctx *cli.Context) error {
	precompiles, err := loadSpec(ctx)
	if err != nil {
		return err
	}
	return writeAccounts(ctx, precompiles)
}

func showDefaults(ctx *cli.Context) error {
	return writeAccounts(ctx, spec.FoundationBuiltins())
}

func writeAccounts(ctx *cli.Context, precompiles []spec.Precompile) error {
	out, err := spec.MarshalAccounts(precompiles)
	if err != nil {
		return err
	}
	format, _ := spec.ParseFormat(appConfig(ctx).Output)
	if ctx.Bool(yamlFlag.Name) {
		format = spec.FormatYAML
	}
	if format == spec.FormatYAML {
		if out, err = spec.JSONToYAML(out); err != nil {
			return err
		}
	} else {
		out = append(out, '\n')
	}
	_, err = ctx.App.Writer.Write(out)
	return err
}
