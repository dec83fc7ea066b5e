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

// Normalize converts the definition into a Builtin with an activation
// schedule. It never fails; deprecated or incomplete legacy input is reported
// to w, or to the package logger if w is nil.
func (c *BuiltinCompat) Normalize(w Warner) *Builtin {
	if w == nil {
		w = builtinLog
	}
	if c.Pricing.Single == nil {
		sched := make(Schedule, len(c.Pricing.Multi))
		for h, p := range c.Pricing.Multi {
			sched[h] = p
		}
		return &Builtin{Name: c.Name, Pricing: sched}
	}
	var base uint64
	if c.ActivateAt != nil {
		base = c.ActivateAt.Uint64()
	} else {
		w.Warn("Builtin missing activation block, defaulting to 0", "builtin", c.Name)
	}
	sched := Schedule{
		base: {Price: stripTransition(c.Pricing.Single)},
	}
	if c.EIP1108Transition != nil {
		if price, ok := eip1108Pricing(c.Pricing.Single); ok {
			info := EIP1108Info
			// Overwrites the base entry if both heights coincide.
			sched[c.EIP1108Transition.Uint64()] = PricingAt{Info: &info, Price: price}
			w.Warn("Builtin uses deprecated eip1108_transition, use a multi-activation pricing schedule", "builtin", c.Name)
		}
	}
	return &Builtin{Name: c.Name, Pricing: sched}
}

// stripTransition drops the legacy EIP-1108 sub-fields from a rule.
func stripTransition(p Pricing) Pricing {
	switch p := p.(type) {
	case AltBn128Pairing:
		return AltBn128Pairing{Base: p.Base, Pair: p.Pair}
	case AltBn128ConstOperations:
		return AltBn128ConstOperations{Price: p.Price}
	}
	return p
}

// eip1108Pricing returns the rule a legacy definition switches to at its
// eip1108_transition height, if the rule carries the needed sub-fields.
func eip1108Pricing(p Pricing) (Pricing, bool) {
	switch p := p.(type) {
	case AltBn128Pairing:
		if p.EIP1108TransitionBase != nil && p.EIP1108TransitionPair != nil {
			return AltBn128Pairing{Base: *p.EIP1108TransitionBase, Pair: *p.EIP1108TransitionPair}, true
		}
	case AltBn128ConstOperations:
		if p.EIP1108TransitionPrice != nil {
			return AltBn128ConstOperations{Price: *p.EIP1108TransitionPrice}, true
		}
	}
	return nil, false
}
