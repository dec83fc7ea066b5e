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
	"fmt"

	"github.com/openethereum/go-chainspec/params"
)

// FoundationBuiltins returns the builtin contracts of the Ethereum mainnet in
// normalized form, ordered by address.
func FoundationBuiltins() []Precompile {
	info := EIP1108Info
	byzantium, istanbul := params.MainnetByzantiumBlock, params.MainnetIstanbulBlock

	builtins := []*Builtin{
		{Name: "ecrecover", Pricing: Schedule{
			0: {Price: Linear{Base: params.EcrecoverGas, Word: 0}},
		}},
		{Name: "sha256", Pricing: Schedule{
			0: {Price: Linear{Base: params.Sha256BaseGas, Word: params.Sha256PerWordGas}},
		}},
		{Name: "ripemd160", Pricing: Schedule{
			0: {Price: Linear{Base: params.Ripemd160BaseGas, Word: params.Ripemd160PerWordGas}},
		}},
		{Name: "identity", Pricing: Schedule{
			0: {Price: Linear{Base: params.IdentityBaseGas, Word: params.IdentityPerWordGas}},
		}},
		{Name: "modexp", Pricing: Schedule{
			byzantium: {Price: Modexp{Divisor: params.ModExpQuadCoeffDiv}},
		}},
		{Name: "alt_bn128_add", Pricing: Schedule{
			byzantium: {Price: AltBn128ConstOperations{Price: params.Bn256AddGasByzantium}},
			istanbul:  {Info: &info, Price: AltBn128ConstOperations{Price: params.Bn256AddGasIstanbul}},
		}},
		{Name: "alt_bn128_mul", Pricing: Schedule{
			byzantium: {Price: AltBn128ConstOperations{Price: params.Bn256ScalarMulGasByzantium}},
			istanbul:  {Info: &info, Price: AltBn128ConstOperations{Price: params.Bn256ScalarMulGasIstanbul}},
		}},
		{Name: "alt_bn128_pairing", Pricing: Schedule{
			byzantium: {Price: AltBn128Pairing{Base: params.Bn256PairingBaseGasByzantium, Pair: params.Bn256PairingPerPointGasByzantium}},
			istanbul:  {Info: &info, Price: AltBn128Pairing{Base: params.Bn256PairingBaseGasIstanbul, Pair: params.Bn256PairingPerPointGasIstanbul}},
		}},
		{Name: "blake2_f", Pricing: Schedule{
			istanbul: {Price: Blake2F{GasPerRound: params.Blake2FPerRoundGas}},
		}},
	}
	precompiles := make([]Precompile, len(builtins))
	for i, b := range builtins {
		precompiles[i] = Precompile{Address: fmt.Sprintf("0x%040x", i+1), Builtin: b}
	}
	return precompiles
}
