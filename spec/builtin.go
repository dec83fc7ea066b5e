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

// Package spec implements the builtin contract section of a chain specification.
//
// A builtin is a precompiled contract whose gas price may change over the
// lifetime of a network. Its pricing is described by a schedule mapping block
// heights to the rule active from that height on. Two shapes are accepted when
// decoding: the legacy shape with a single rule, an optional activate_at
// height and an optional eip1108_transition height, and the modern shape with
// an explicit schedule. Both are normalized into the same Builtin value.
package spec

import (
	"bytes"
	"encoding/json"

	"github.com/openethereum/go-chainspec/common/math"
	"github.com/openethereum/go-chainspec/log"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// EIP1108Info annotates the schedule entry created from a legacy
// eip1108_transition.
const EIP1108Info = "EIP1108 transition"

var builtinLog = log.New("target", "builtin")

// Warner receives the non-fatal diagnostics raised while normalizing a
// builtin. log.Logger satisfies it.
type Warner interface {
	Warn(msg string, ctx ...interface{})
}

// WarnFunc adapts a function to the Warner interface.
type WarnFunc func(msg string, ctx ...interface{})

func (f WarnFunc) Warn(msg string, ctx ...interface{}) { f(msg, ctx...) }

// PricingAt is a pricing rule together with an optional description of the
// activation, e.g. "PunyPony HF, March 12, 2025".
type PricingAt struct {
	Info  *string
	Price Pricing
}

type pricingAtJSON struct {
	Info  *string         `json:"info,omitempty"`
	Price json.RawMessage `json:"price"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *PricingAt) UnmarshalJSON(input []byte) error {
	var dec pricingAtJSON
	if err := decodeStrict(input, &dec); err != nil {
		return err
	}
	if dec.Price == nil {
		return missingField("price", "activation")
	}
	price, err := unmarshalPricing(dec.Price)
	if err != nil {
		return err
	}
	p.Info, p.Price = dec.Info, price
	return nil
}

// MarshalJSON implements json.Marshaler.
func (p PricingAt) MarshalJSON() ([]byte, error) {
	price, err := marshalPricing(p.Price)
	if err != nil {
		return nil, err
	}
	return json.Marshal(pricingAtJSON{Info: p.Info, Price: price})
}

// Schedule maps activation heights to the pricing active from that height on.
type Schedule map[uint64]PricingAt

// Heights returns the activation heights in ascending order.
func (s Schedule) Heights() []uint64 {
	heights := maps.Keys(s)
	slices.Sort(heights)
	return heights
}

// Len returns the number of activations.
func (s Schedule) Len() int { return len(s) }

// At returns the entry in effect at the given block: the one with the greatest
// activation height not above it. It reports false if no entry is active yet.
func (s Schedule) At(block uint64) (PricingAt, bool) {
	h, ok := s.ActiveHeight(block)
	if !ok {
		return PricingAt{}, false
	}
	return s[h], true
}

// ActiveHeight returns the activation height of the entry in effect at the
// given block.
func (s Schedule) ActiveHeight(block uint64) (uint64, bool) {
	heights := s.Heights()
	i, found := slices.BinarySearch(heights, block)
	if found {
		return heights[i], true
	}
	if i == 0 {
		return 0, false
	}
	return heights[i-1], true
}

// UnmarshalJSON implements json.Unmarshaler. Heights may be decimal or
// 0x-prefixed hex strings.
func (s *Schedule) UnmarshalJSON(input []byte) error {
	var dec map[math.HexOrDecimal64]PricingAt
	if err := decodeStrict(input, &dec); err != nil {
		return err
	}
	if len(dec) == 0 {
		return ErrEmptySchedule
	}
	*s = make(Schedule, len(dec))
	for h, p := range dec {
		(*s)[h.Uint64()] = p
	}
	return nil
}

// MarshalJSON implements json.Marshaler. Entries are written in ascending
// height order with hex heights.
func (s Schedule) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, h := range s.Heights() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, _ := json.Marshal(math.HexOrDecimal64(h))
		buf.Write(key)
		buf.WriteByte(':')
		entry, err := json.Marshal(s[h])
		if err != nil {
			return nil, err
		}
		buf.Write(entry)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// PricingCompat is the pricing member of a builtin definition. Exactly one of
// Single (legacy shape) and Multi (modern shape) is set.
type PricingCompat struct {
	Single Pricing
	Multi  Schedule
}

// UnmarshalJSON implements json.Unmarshaler. The input is tried as a single
// rule first and as an activation schedule second.
func (p *PricingCompat) UnmarshalJSON(input []byte) error {
	single, errSingle := unmarshalPricing(input)
	if errSingle == nil {
		*p = PricingCompat{Single: single}
		return nil
	}
	var multi Schedule
	errMulti := multi.UnmarshalJSON(input)
	if errMulti == nil {
		*p = PricingCompat{Multi: multi}
		return nil
	}
	return &pricingMismatchError{single: errSingle, multi: errMulti}
}

type pricingMismatchError struct {
	single, multi error
}

func (e *pricingMismatchError) Error() string {
	return ErrNoMatchingPricing.Error() + " (as pricing: " + e.single.Error() + "; as schedule: " + e.multi.Error() + ")"
}

func (e *pricingMismatchError) Unwrap() []error {
	return []error{ErrNoMatchingPricing, e.single, e.multi}
}

// BuiltinCompat is a builtin definition as written in a chain specification,
// in either the legacy or the modern shape. It only exists to be normalized
// into a Builtin.
type BuiltinCompat struct {
	Name              string
	Pricing           PricingCompat
	ActivateAt        *math.HexOrDecimal64
	EIP1108Transition *math.HexOrDecimal64
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *BuiltinCompat) UnmarshalJSON(input []byte) error {
	type BuiltinCompat struct {
		Name              *string              `json:"name"`
		Pricing           *PricingCompat       `json:"pricing"`
		ActivateAt        *math.HexOrDecimal64 `json:"activate_at"`
		EIP1108Transition *math.HexOrDecimal64 `json:"eip1108_transition"`
	}
	var dec BuiltinCompat
	if err := decodeStrict(input, &dec); err != nil {
		return err
	}
	if dec.Name == nil {
		return missingField("name", "builtin")
	}
	if dec.Pricing == nil {
		return missingField("pricing", "builtin")
	}
	c.Name = *dec.Name
	c.Pricing = *dec.Pricing
	c.ActivateAt = dec.ActivateAt
	c.EIP1108Transition = dec.EIP1108Transition
	return nil
}

// Builtin is a normalized builtin contract definition. It is not modified
// after construction and may be shared between goroutines.
type Builtin struct {
	Name    string
	Pricing Schedule
}

// DecodeBuiltin decodes a builtin definition in either shape and normalizes
// it. Deprecation diagnostics go to w, or to the package logger if w is nil.
// Schema violations are reported as *DecodeError.
func DecodeBuiltin(input []byte, w Warner) (*Builtin, error) {
	var c BuiltinCompat
	if err := json.Unmarshal(input, &c); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return c.Normalize(w), nil
}

// UnmarshalJSON implements json.Unmarshaler, logging diagnostics to the
// package logger.
func (b *Builtin) UnmarshalJSON(input []byte) error {
	dec, err := DecodeBuiltin(input, nil)
	if err != nil {
		return err
	}
	*b = *dec
	return nil
}

// MarshalJSON implements json.Marshaler. The builtin is always written in the
// modern shape, which decodes back into an equal Builtin.
func (b Builtin) MarshalJSON() ([]byte, error) {
	type Builtin struct {
		Name    string   `json:"name"`
		Pricing Schedule `json:"pricing"`
	}
	return json.Marshal(Builtin{Name: b.Name, Pricing: b.Pricing})
}
