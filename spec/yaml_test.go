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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYAMLToJSON(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"", `null`},
		{"a: 1", `{"a":1}`},
		{"0x10: {info: hi}", `{"0x10":{"info":"hi"}}`},
		{"100: [1, -2, 1.5, true, null, '3']", `{"100":[1,-2,1.5,true,null,"3"]}`},
		{"base: &b 7\nword: *b", `{"base":7,"word":7}`},
		{"big: 18446744073709551615", `{"big":18446744073709551615}`},
		{"base: 3000.0", `{"base":3000.0}`},
	}
	for _, tt := range tests {
		have, err := YAMLToJSON([]byte(tt.input))
		require.NoError(t, err, tt.input)
		assert.JSONEq(t, tt.want, string(have), tt.input)
	}
}

func TestYAMLToJSONErrors(t *testing.T) {
	for _, input := range []string{
		"a: [1, 2",
		"? [1, 2]\n: x",
		"a: 1\na: 2",
	} {
		_, err := YAMLToJSON([]byte(input))
		assert.Error(t, err, input)
	}
}

func TestJSONToYAML(t *testing.T) {
	out, err := JSONToYAML([]byte(`{"0x10":{"info":"EIP1108 transition","price":{"modexp":{"divisor":20}}},"name":"123"}`))
	require.NoError(t, err)
	want := `"0x10":
    info: EIP1108 transition
    price:
        modexp:
            divisor: 20
name: "123"
`
	assert.Equal(t, want, string(out))
}

func TestYAMLAccountsRoundTrip(t *testing.T) {
	want := FoundationBuiltins()
	enc, err := MarshalAccounts(want)
	require.NoError(t, err)
	doc, err := JSONToYAML(enc)
	require.NoError(t, err)

	have, err := LoadBuiltins(doc, FormatYAML, discardWarner)
	require.NoError(t, err)
	if diff := cmp.Diff(want, have); diff != "" {
		t.Errorf("round trip mismatch (-want +have):\n%s\n%s", diff, doc)
	}
}
