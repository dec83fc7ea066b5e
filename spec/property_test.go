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
	"encoding/json"
	"fmt"
	"testing"

	"github.com/openethereum/go-chainspec/log"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var discardWarner = WarnFunc(func(string, ...interface{}) {})

// plainPricing draws a rule without legacy transition fields.
func plainPricing() *rapid.Generator[Pricing] {
	return rapid.OneOf(
		rapid.Custom(func(t *rapid.T) Pricing {
			return Blake2F{GasPerRound: rapid.Uint64().Draw(t, "gas_per_round")}
		}),
		rapid.Custom(func(t *rapid.T) Pricing {
			return Linear{Base: rapid.Uint64().Draw(t, "base"), Word: rapid.Uint64().Draw(t, "word")}
		}),
		rapid.Custom(func(t *rapid.T) Pricing {
			return Modexp{Divisor: rapid.Uint64().Draw(t, "divisor")}
		}),
		rapid.Custom(func(t *rapid.T) Pricing {
			return AltBn128Pairing{Base: rapid.Uint64().Draw(t, "base"), Pair: rapid.Uint64().Draw(t, "pair")}
		}),
		rapid.Custom(func(t *rapid.T) Pricing {
			return AltBn128ConstOperations{Price: rapid.Uint64().Draw(t, "price")}
		}),
	)
}

func mustMarshalPricing(t *rapid.T, p Pricing) string {
	enc, err := marshalPricing(p)
	if err != nil {
		t.Fatalf("marshal %v: %v", p, err)
	}
	return string(enc)
}

func heightText(t *rapid.T, h uint64) string {
	if rapid.Bool().Draw(t, "hex") {
		return fmt.Sprintf(`"%#x"`, h)
	}
	return fmt.Sprintf(`"%d"`, h)
}

func TestLegacyWithoutActivationProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := plainPricing().Draw(t, "pricing")
		input := fmt.Sprintf(`{"name":"b","pricing":%s}`, mustMarshalPricing(t, p))

		b, err := DecodeBuiltin([]byte(input), discardWarner)
		require.NoError(t, err)
		require.Equal(t, Schedule{0: {Price: p}}, b.Pricing)
	})
}

func TestLegacyIgnoredTransitionProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := rapid.OneOf(
			rapid.Custom(func(t *rapid.T) Pricing { return Blake2F{GasPerRound: rapid.Uint64().Draw(t, "gas_per_round")} }),
			rapid.Custom(func(t *rapid.T) Pricing { return Linear{Base: rapid.Uint64().Draw(t, "base")} }),
			rapid.Custom(func(t *rapid.T) Pricing { return Modexp{Divisor: rapid.Uint64().Draw(t, "divisor")} }),
		).Draw(t, "pricing")
		h := rapid.Uint64().Draw(t, "activate_at")

		input := fmt.Sprintf(`{"name":"b","activate_at":%s,"pricing":%s`, heightText(t, h), mustMarshalPricing(t, p))
		if rapid.Bool().Draw(t, "with_transition") {
			input += fmt.Sprintf(`,"eip1108_transition":%d`, rapid.Uint64().Draw(t, "transition"))
		}
		input += "}"

		b, err := DecodeBuiltin([]byte(input), discardWarner)
		require.NoError(t, err)
		require.Equal(t, Schedule{h: {Price: p}}, b.Pricing)
	})
}

func TestLegacyTransitionProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		activate := rapid.Uint64().Draw(t, "activate_at")
		transition := rapid.Uint64().Filter(func(v uint64) bool { return v != activate }).Draw(t, "transition")

		pairing := rapid.Bool().Draw(t, "pairing")
		v1, v2 := rapid.Uint64().Draw(t, "v1"), rapid.Uint64().Draw(t, "v2")
		v3, v4 := rapid.Uint64().Draw(t, "v3"), rapid.Uint64().Draw(t, "v4")

		var (
			legacy        string
			before, after Pricing
		)
		if pairing {
			legacy = fmt.Sprintf(`{"alt_bn128_pairing":{"base":%d,"pair":%d,"eip1108_transition_base":%d,"eip1108_transition_pair":%d}}`, v1, v2, v3, v4)
			before, after = AltBn128Pairing{Base: v1, Pair: v2}, AltBn128Pairing{Base: v3, Pair: v4}
		} else {
			legacy = fmt.Sprintf(`{"alt_bn128_const_operations":{"price":%d,"eip1108_transition_price":%d}}`, v1, v3)
			before, after = AltBn128ConstOperations{Price: v1}, AltBn128ConstOperations{Price: v3}
		}
		input := fmt.Sprintf(`{"name":"b","activate_at":%s,"eip1108_transition":%s,"pricing":%s}`,
			heightText(t, activate), heightText(t, transition), legacy)

		b, err := DecodeBuiltin([]byte(input), discardWarner)
		require.NoError(t, err)

		info := EIP1108Info
		want := Schedule{
			activate:   {Price: before},
			transition: {Info: &info, Price: after},
		}
		require.Equal(t, want, b.Pricing)
	})
}

func scheduleGen() *rapid.Generator[Schedule] {
	return rapid.Custom(func(t *rapid.T) Schedule {
		heights := rapid.SliceOfNDistinct(rapid.Uint64(), 1, 6, rapid.ID[uint64]).Draw(t, "heights")
		s := make(Schedule, len(heights))
		for _, h := range heights {
			var info *string
			if rapid.Bool().Draw(t, "has_info") {
				v := rapid.StringMatching(`[a-zA-Z0-9 ,]{0,24}`).Draw(t, "info")
				info = &v
			}
			s[h] = PricingAt{Info: info, Price: plainPricing().Draw(t, "price")}
		}
		return s
	})
}

func TestModernPassthroughProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		sched := scheduleGen().Draw(t, "schedule")

		input := `{"name":"b","pricing":{`
		first := true
		for h, entry := range sched {
			if !first {
				input += ","
			}
			first = false
			body, err := json.Marshal(entry)
			require.NoError(t, err)
			input += heightText(t, h) + ":" + string(body)
		}
		input += "}}"

		b, err := DecodeBuiltin([]byte(input), discardWarner)
		require.NoError(t, err)
		require.Equal(t, sched, b.Pricing)
	})
}

func TestCanonicalEncodingIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := &Builtin{
			Name:    rapid.StringMatching(`[a-z0-9_]{0,16}`).Draw(t, "name"),
			Pricing: scheduleGen().Draw(t, "schedule"),
		}
		enc, err := json.Marshal(b)
		require.NoError(t, err)

		dec, err := DecodeBuiltin(enc, log.Root())
		require.NoError(t, err)
		require.Equal(t, b, dec)

		again, err := json.Marshal(dec)
		require.NoError(t, err)
		require.Equal(t, string(enc), string(again))
	})
}
