// Copyright 2024 The go-chainspec Authors
// This file is part of the go-chainspec library.
//
// The go-chainspec library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-chainspec library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-chainspec library. If not, see <http://www.gnu.org/licenses/>.

package spec

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// Format is the encoding of a chain specification file.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat parses a format name as written in configuration files.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return FormatJSON, fmt.Errorf("unknown chain spec format %q", name)
}

// FormatFromPath picks the format from the file extension. Anything that is
// not .yaml or .yml is read as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// Precompile is a builtin contract bound to its account address.
type Precompile struct {
	Address string   `json:"address"`
	Builtin *Builtin `json:"builtin"`
}

// LoadBuiltins reads the builtin contracts out of the accounts section of a
// chain specification. Accounts without a builtin and all other members are
// skipped. The result is sorted by address.
func LoadBuiltins(input []byte, format Format, w Warner) ([]Precompile, error) {
	if format == FormatYAML {
		conv, err := YAMLToJSON(input)
		if err != nil {
			return nil, errors.Wrap(err, "invalid YAML chain spec")
		}
		input = conv
	}
	doc, err := members(input)
	if err != nil {
		return nil, errors.Wrap(err, "invalid chain spec")
	}
	accounts, err := members(doc["accounts"])
	if err != nil {
		return nil, errors.Wrap(err, "invalid accounts section")
	}
	if w == nil {
		w = builtinLog
	}
	var (
		result = make([]Precompile, 0, len(accounts))
		seen   = make(map[string]string)
	)
	for key, raw := range accounts {
		addr, err := normalizeAddress(key)
		if err != nil {
			return nil, errors.Wrapf(err, "account %s", key)
		}
		if prev, ok := seen[addr]; ok {
			return nil, errors.Errorf("account %s duplicates %s", key, prev)
		}
		seen[addr] = key

		account, err := members(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "account %s", key)
		}
		builtin := account["builtin"]
		if len(builtin) == 0 || string(builtin) == "null" {
			continue
		}
		b, err := DecodeBuiltin(builtin, accountWarner{w, addr})
		if err != nil {
			return nil, errors.Wrapf(err, "account %s", key)
		}
		result = append(result, Precompile{Address: addr, Builtin: b})
	}
	slices.SortFunc(result, func(a, b Precompile) int {
		return strings.Compare(a.Address, b.Address)
	})
	return result, nil
}

// MarshalAccounts encodes precompiles as the accounts section of a chain
// specification, with every builtin in the modern shape.
func MarshalAccounts(precompiles []Precompile) ([]byte, error) {
	type account struct {
		Builtin *Builtin `json:"builtin"`
	}
	accounts := make(map[string]account, len(precompiles))
	for _, p := range precompiles {
		accounts[p.Address] = account{p.Builtin}
	}
	return json.MarshalIndent(map[string]interface{}{"accounts": accounts}, "", "  ")
}

// members splits a JSON object into its members, matching names exactly.
// A missing or null value yields no members.
func members(input []byte) (map[string]json.RawMessage, error) {
	if len(input) == 0 {
		return nil, nil
	}
	if _, err := objectKeys(input); err != nil {
		return nil, err
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(input, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func normalizeAddress(s string) (string, error) {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return "", errors.New("address must be 0x-prefixed")
	}
	body := s[2:]
	if len(body) != 40 {
		return "", errors.Errorf("address must be 20 bytes, have %d hex digits", len(body))
	}
	if _, err := hex.DecodeString(body); err != nil {
		return "", errors.Wrap(err, "invalid address")
	}
	return "0x" + strings.ToLower(body), nil
}

// accountWarner tags diagnostics with the account they were raised for.
type accountWarner struct {
	w    Warner
	addr string
}

func (a accountWarner) Warn(msg string, ctx ...interface{}) {
	a.w.Warn(msg, append([]interface{}{"account", a.addr}, ctx...)...)
}
