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

package spec_test

import (
	"encoding/json"
	"fmt"

	"github.com/openethereum/go-chainspec/spec"
)

func ExampleDecodeBuiltin() {
	input := `{
		"name": "alt_bn128_add",
		"activate_at": "0x00",
		"eip1108_transition": "0x17d433",
		"pricing": {
			"alt_bn128_const_operations": {"price": 500, "eip1108_transition_price": 150}
		}
	}`
	warn := spec.WarnFunc(func(msg string, ctx ...interface{}) {
		fmt.Println("warning:", msg, ctx)
	})
	b, err := spec.DecodeBuiltin([]byte(input), warn)
	if err != nil {
		panic(err)
	}
	for _, h := range b.Pricing.Heights() {
		entry := b.Pricing[h]
		fmt.Printf("%d: %s %+v\n", h, entry.Price.Kind(), entry.Price.(spec.AltBn128ConstOperations).Price)
	}
	canonical, _ := json.Marshal(b)
	fmt.Println(string(canonical))

	// Output:
	// warning: Builtin uses deprecated eip1108_transition, use a multi-activation pricing schedule [builtin alt_bn128_add]
	// 0: alt_bn128_const_operations 500
	// 1561651: alt_bn128_const_operations 150
	// {"name":"alt_bn128_add","pricing":{"0x0":{"price":{"alt_bn128_const_operations":{"price":500}}},"0x17d433":{"info":"EIP1108 transition","price":{"alt_bn128_const_operations":{"price":150}}}}}
}

func ExampleSchedule_At() {
	b, err := spec.DecodeBuiltin([]byte(`{"name":"ecrecover","pricing":{
		"0": {"price": {"linear": {"base": 3000, "word": 0}}},
		"500": {"info": "enable fake EIP at block 500", "price": {"linear": {"base": 10, "word": 0}}}
	}}`), nil)
	if err != nil {
		panic(err)
	}
	for _, block := range []uint64{0, 499, 500, 1000} {
		entry, _ := b.Pricing.At(block)
		fmt.Printf("block %d: %+v\n", block, entry.Price)
	}
	// Output:
	// block 0: {Base:3000 Word:0}
	// block 499: {Base:3000 Word:0}
	// block 500: {Base:10 Word:0}
	// block 1000: {Base:10 Word:0}
}
