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

package params

// Mainnet fork heights at which builtin contracts were introduced or repriced.
const (
	MainnetByzantiumBlock uint64 = 4_370_000 // modexp, alt_bn128 add/mul/pairing
	MainnetIstanbulBlock  uint64 = 9_069_000 // blake2_f, EIP-1108 alt_bn128 repricing
)
