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
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/openethereum/go-chainspec/spec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const foundationSpec = "../../spec/testdata/foundation.json"

func runApp(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	app := newApp()
	var out, errOut bytes.Buffer
	app.Writer, app.ErrWriter = &out, &errOut
	err = app.Run(append([]string{"builtinspec", "--nocolor"}, args...))
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCheck(t *testing.T) {
	out, logs, err := runApp(t, "check", foundationSpec)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 10)
	for _, line := range lines[:9] {
		assert.True(t, strings.HasPrefix(line, "OK 0x"), line)
	}
	assert.Contains(t, lines[5], "alt_bn128_add")
	assert.Contains(t, lines[5], "activations=2")
	assert.Equal(t, "9 builtins", lines[9])

	assert.Contains(t, logs, "Builtin missing activation block")
	assert.Contains(t, logs, "eip1108_transition")
}

func TestCheckQuiet(t *testing.T) {
	_, logs, err := runApp(t, "--verbosity", "1", "check", foundationSpec)
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestCheckInvalid(t *testing.T) {
	path := writeFile(t, "bad.json", `{"accounts":{"0x0000000000000000000000000000000000000001":{"builtin":{"name":"x","pricing":{"linear":{"base":1}}}}}}`)
	_, _, err := runApp(t, "check", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, spec.ErrMissingField)
	assert.Contains(t, err.Error(), "account 0x0000000000000000000000000000000000000001")

	_, _, err = runApp(t, "check")
	assert.Error(t, err)
}

func TestSchedule(t *testing.T) {
	out, _, err := runApp(t, "schedule", foundationSpec)
	require.NoError(t, err)
	assert.Contains(t, out, "alt_bn128_pairing base=100000 pair=80000")
	assert.Contains(t, out, "alt_bn128_pairing base=45000 pair=34000")
	assert.Contains(t, out, "EIP1108 transition")

	out, _, err = runApp(t, "schedule", "--block", "5000000", "--name", "alt_bn128_add", foundationSpec)
	require.NoError(t, err)
	assert.Contains(t, out, "4370000")
	assert.Contains(t, out, "alt_bn128_const_operations price=500")
	assert.NotContains(t, out, "price=150")
	assert.NotContains(t, out, "ecrecover")

	_, _, err = runApp(t, "schedule", "--name", "sha3", foundationSpec)
	assert.Error(t, err)
}

func TestMigrate(t *testing.T) {
	want := spec.FoundationBuiltins()

	out, _, err := runApp(t, "migrate", foundationSpec)
	require.NoError(t, err)
	have, err := spec.LoadBuiltins([]byte(out), spec.FormatJSON, nil)
	require.NoError(t, err)
	if diff := cmp.Diff(want, have); diff != "" {
		t.Errorf("migrated builtins mismatch (-want +have):\n%s", diff)
	}
	assert.NotContains(t, out, "activate_at")
	assert.NotContains(t, out, "eip1108_transition_price")

	out, _, err = runApp(t, "migrate", "--yaml", foundationSpec)
	require.NoError(t, err)
	have, err = spec.LoadBuiltins([]byte(out), spec.FormatYAML, nil)
	require.NoError(t, err)
	if diff := cmp.Diff(want, have); diff != "" {
		t.Errorf("migrated YAML builtins mismatch (-want +have):\n%s", diff)
	}
}

func TestFormatOverride(t *testing.T) {
	yamlDoc, err := os.ReadFile("../../spec/testdata/foundation.yaml")
	require.NoError(t, err)
	path := writeFile(t, "chain.spec", string(yamlDoc))

	_, _, err = runApp(t, "check", path)
	assert.Error(t, err)

	out, _, err := runApp(t, "--format", "yaml", "check", path)
	require.NoError(t, err)
	assert.Contains(t, out, "9 builtins")
}

func TestDefaults(t *testing.T) {
	out, _, err := runApp(t, "defaults")
	require.NoError(t, err)
	have, err := spec.LoadBuiltins([]byte(out), spec.FormatJSON, nil)
	require.NoError(t, err)
	assert.Equal(t, spec.FoundationBuiltins(), have)
}

func TestConfigFile(t *testing.T) {
	path := writeFile(t, "config.toml", "Verbosity = 4\nOutput = \"yaml\"\n")

	out, _, err := runApp(t, "--config", path, "dumpconfig")
	require.NoError(t, err)
	assert.Contains(t, out, "Verbosity = 4")
	assert.Contains(t, out, `Output = "yaml"`)

	out, _, err = runApp(t, "--config", path, "--verbosity", "2", "dumpconfig")
	require.NoError(t, err)
	assert.Contains(t, out, "Verbosity = 2")

	out, _, err = runApp(t, "--config", path, "defaults")
	require.NoError(t, err)
	have, err := spec.LoadBuiltins([]byte(out), spec.FormatYAML, nil)
	require.NoError(t, err)
	assert.Len(t, have, 9)
}

func TestConfigErrors(t *testing.T) {
	path := writeFile(t, "config.toml", "Bogus = 1\n")
	_, _, err := runApp(t, "--config", path, "dumpconfig")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "field 'Bogus' is not defined")

	_, _, err = runApp(t, "--verbosity", "9", "dumpconfig")
	assert.Error(t, err)

	_, _, err = runApp(t, "--format", "toml", "dumpconfig")
	assert.Error(t, err)
}

func TestLogFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "builtinspec.log")
	_, _, err := runApp(t, "--log.file", logFile, "check", foundationSpec)
	require.NoError(t, err)

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), `msg="Builtin missing activation block, defaulting to 0"`)
	assert.Contains(t, string(content), "builtin=ecrecover")
}

func TestLogFileJSON(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "builtinspec.log")
	_, logs, err := runApp(t, "--log.file", logFile, "--log.json", "--log.debug", "check", foundationSpec)
	require.NoError(t, err)
	assert.Contains(t, logs, ".go:")

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.NotEmpty(t, lines)

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &record))
	assert.Equal(t, "warn", record["lvl"])
	assert.Contains(t, record["caller"], ".go:")
	assert.Contains(t, record, "builtin")
}
