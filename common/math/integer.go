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

// Package math provides the integer encodings used by chain specifications.
package math

import (
	"bytes"
	"fmt"
	"strconv"
)

// HexOrDecimal64 marshals uint64 as hex or decimal. Chain specifications use it
// for block heights, which may be written as a JSON number, a quoted decimal
// string or a quoted 0x-prefixed hex string.
type HexOrDecimal64 uint64

// NewHexOrDecimal64 returns a pointer to the given value, for use in optional
// struct fields.
func NewHexOrDecimal64(n uint64) *HexOrDecimal64 {
	h := HexOrDecimal64(n)
	return &h
}

// Uint64 returns the value as a plain integer.
func (i HexOrDecimal64) Uint64() uint64 {
	return uint64(i)
}

// UnmarshalJSON implements json.Unmarshaler.
//
// It is similar to UnmarshalText, but allows parsing real decimals too, not just
// quoted decimal strings. A JSON null leaves the value untouched.
func (i *HexOrDecimal64) UnmarshalJSON(input []byte) error {
	if bytes.Equal(input, []byte("null")) {
		return nil
	}
	if len(input) >= 2 && input[0] == '"' {
		input = input[1 : len(input)-1]
	}
	return i.UnmarshalText(input)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *HexOrDecimal64) UnmarshalText(input []byte) error {
	n, ok := ParseUint64(string(input))
	if !ok {
		return fmt.Errorf("invalid hex or decimal integer %q", input)
	}
	*i = HexOrDecimal64(n)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (i HexOrDecimal64) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("%#x", uint64(i))), nil
}

// String returns the hex form used by MarshalText.
func (i HexOrDecimal64) String() string {
	return fmt.Sprintf("%#x", uint64(i))
}

// ParseUint64 parses s as an integer in decimal or hexadecimal syntax.
// Leading zeros are accepted. The empty string parses as zero.
func ParseUint64(s string) (uint64, bool) {
	if s == "" {
		return 0, true
	}
	if len(s) >= 2 && (s[:2] == "0x" || s[:2] == "0X") {
		v, err := strconv.ParseUint(s[2:], 16, 64)
		return v, err == nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	return v, err == nil
}

// MustParseUint64 parses s as an integer and panics if the string is invalid.
func MustParseUint64(s string) uint64 {
	v, ok := ParseUint64(s)
	if !ok {
		panic("invalid unsigned 64 bit integer: " + s)
	}
	return v
}
