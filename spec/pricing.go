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
	"strings"
)

// Discriminators of the pricing rules as they appear in a chain specification.
const (
	KindBlake2F                 = "blake2_f"
	KindLinear                  = "linear"
	KindModexp                  = "modexp"
	KindAltBn128Pairing         = "alt_bn128_pairing"
	KindAltBn128ConstOperations = "alt_bn128_const_operations"
)

var pricingKinds = []string{
	KindBlake2F,
	KindLinear,
	KindModexp,
	KindAltBn128Pairing,
	KindAltBn128ConstOperations,
}

// Pricing is the gas pricing rule of a builtin contract. The set of rules is
// closed: Blake2F, Linear, Modexp, AltBn128Pairing and AltBn128ConstOperations.
type Pricing interface {
	// Kind returns the discriminator naming the rule in a chain specification.
	Kind() string

	pricing()
}

// Blake2F prices the BLAKE2 compression function: each call costs the same
// amount per round.
type Blake2F struct {
	GasPerRound uint64 `json:"gas_per_round"`
}

// Linear prices a call as a base cost plus a cost per 32-byte word of input.
type Linear struct {
	Base uint64 `json:"base"`
	Word uint64 `json:"word"`
}

// Modexp holds the divisor of the modular exponentiation cost formula.
type Modexp struct {
	Divisor uint64 `json:"divisor"`
}

// AltBn128Pairing prices the alt_bn128 pairing check as a base cost plus a
// cost per point pair.
//
// The EIP1108 fields are the prices after a legacy eip1108_transition. They
// are only read while migrating a legacy definition and are never set on a
// normalized rule.
type AltBn128Pairing struct {
	Base uint64 `json:"base"`
	Pair uint64 `json:"pair"`

	EIP1108TransitionBase *uint64 `json:"eip1108_transition_base,omitempty"`
	EIP1108TransitionPair *uint64 `json:"eip1108_transition_pair,omitempty"`
}

// AltBn128ConstOperations prices the constant cost alt_bn128 operations
// (ECADD and ECMUL). EIP1108TransitionPrice follows the same rules as the
// legacy fields of AltBn128Pairing.
type AltBn128ConstOperations struct {
	Price uint64 `json:"price"`

	EIP1108TransitionPrice *uint64 `json:"eip1108_transition_price,omitempty"`
}

func (Blake2F) Kind() string                 { return KindBlake2F }
func (Linear) Kind() string                  { return KindLinear }
func (Modexp) Kind() string                  { return KindModexp }
func (AltBn128Pairing) Kind() string         { return KindAltBn128Pairing }
func (AltBn128ConstOperations) Kind() string { return KindAltBn128ConstOperations }

func (Blake2F) pricing()                 {}
func (Linear) pricing()                  {}
func (Modexp) pricing()                  {}
func (AltBn128Pairing) pricing()         {}
func (AltBn128ConstOperations) pricing() {}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Blake2F) UnmarshalJSON(input []byte) error {
	type Blake2F struct {
		GasPerRound *uint64 `json:"gas_per_round"`
	}
	var dec Blake2F
	if err := decodeStrict(input, &dec); err != nil {
		return err
	}
	if dec.GasPerRound == nil {
		return missingField("gas_per_round", KindBlake2F)
	}
	p.GasPerRound = *dec.GasPerRound
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Linear) UnmarshalJSON(input []byte) error {
	type Linear struct {
		Base *uint64 `json:"base"`
		Word *uint64 `json:"word"`
	}
	var dec Linear
	if err := decodeStrict(input, &dec); err != nil {
		return err
	}
	if dec.Base == nil {
		return missingField("base", KindLinear)
	}
	if dec.Word == nil {
		return missingField("word", KindLinear)
	}
	p.Base, p.Word = *dec.Base, *dec.Word
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Modexp) UnmarshalJSON(input []byte) error {
	type Modexp struct {
		Divisor *uint64 `json:"divisor"`
	}
	var dec Modexp
	if err := decodeStrict(input, &dec); err != nil {
		return err
	}
	if dec.Divisor == nil {
		return missingField("divisor", KindModexp)
	}
	p.Divisor = *dec.Divisor
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *AltBn128Pairing) UnmarshalJSON(input []byte) error {
	type AltBn128Pairing struct {
		Base                  *uint64 `json:"base"`
		Pair                  *uint64 `json:"pair"`
		EIP1108TransitionBase *uint64 `json:"eip1108_transition_base"`
		EIP1108TransitionPair *uint64 `json:"eip1108_transition_pair"`
	}
	var dec AltBn128Pairing
	if err := decodeStrict(input, &dec); err != nil {
		return err
	}
	if dec.Base == nil {
		return missingField("base", KindAltBn128Pairing)
	}
	if dec.Pair == nil {
		return missingField("pair", KindAltBn128Pairing)
	}
	p.Base, p.Pair = *dec.Base, *dec.Pair
	p.EIP1108TransitionBase = dec.EIP1108TransitionBase
	p.EIP1108TransitionPair = dec.EIP1108TransitionPair
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *AltBn128ConstOperations) UnmarshalJSON(input []byte) error {
	type AltBn128ConstOperations struct {
		Price                  *uint64 `json:"price"`
		EIP1108TransitionPrice *uint64 `json:"eip1108_transition_price"`
	}
	var dec AltBn128ConstOperations
	if err := decodeStrict(input, &dec); err != nil {
		return err
	}
	if dec.Price == nil {
		return missingField("price", KindAltBn128ConstOperations)
	}
	p.Price = *dec.Price
	p.EIP1108TransitionPrice = dec.EIP1108TransitionPrice
	return nil
}

// pricingDecoders maps each discriminator to the decoder of its rule.
var pricingDecoders = map[string]func([]byte) (Pricing, error){
	KindBlake2F:                 decodeVariant[Blake2F],
	KindLinear:                  decodeVariant[Linear],
	KindModexp:                  decodeVariant[Modexp],
	KindAltBn128Pairing:         decodeVariant[AltBn128Pairing],
	KindAltBn128ConstOperations: decodeVariant[AltBn128ConstOperations],
}

func decodeVariant[T Pricing](input []byte) (Pricing, error) {
	var v T
	if err := json.Unmarshal(input, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// unmarshalPricing decodes an externally tagged pricing object such as
// {"linear": {"base": 3000, "word": 0}}.
func unmarshalPricing(input []byte) (Pricing, error) {
	if _, err := objectKeys(input); err != nil {
		return nil, err
	}
	var tagged map[string]json.RawMessage
	if err := json.Unmarshal(input, &tagged); err != nil {
		return nil, err
	}
	if len(tagged) != 1 {
		return nil, fmt.Errorf("%w, have %d", ErrVariantCount, len(tagged))
	}
	for kind, body := range tagged {
		decode, ok := pricingDecoders[kind]
		if !ok {
			return nil, fmt.Errorf("%w `%s`, expected one of %s", ErrUnknownVariant, kind, strings.Join(pricingKinds, ", "))
		}
		p, err := decode(body)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", kind, err)
		}
		return p, nil
	}
	panic("unreachable")
}

// marshalPricing encodes p in the externally tagged form read by unmarshalPricing.
func marshalPricing(p Pricing) ([]byte, error) {
	if p == nil {
		return nil, fmt.Errorf("%w 'price'", ErrMissingField)
	}
	return json.Marshal(map[string]Pricing{p.Kind(): p})
}
