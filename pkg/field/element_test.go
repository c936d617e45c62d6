// Copyright akinovak
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package field

import (
	"testing"

	"github.com/akinovak/l1-table-verifier/pkg/field/bls12_377"
	"github.com/stretchr/testify/assert"
)

func init() {
	// make sure the interface is adhered to.
	_ = Element[bls12_377.Element](bls12_377.Element{})
}

func TestZeroAndOne(t *testing.T) {
	assert.True(t, Zero[bls12_377.Element]().IsZero())
	assert.True(t, One[bls12_377.Element]().IsOne())
	assert.False(t, One[bls12_377.Element]().IsZero())
}

func TestByteEmbedding(t *testing.T) {
	// Every byte embeds distinctly, in order.
	prev := Zero[bls12_377.Element]()
	//
	for b := 1; b <= 255; b++ {
		cur := Uint64[bls12_377.Element](uint64(b))
		assert.Equal(t, 1, cur.Cmp(prev), "byte %d", b)
		prev = cur
	}
}

func TestArithmetic(t *testing.T) {
	var (
		three = Uint64[bls12_377.Element](3)
		five  = Uint64[bls12_377.Element](5)
	)
	//
	assert.Equal(t, 0, three.Add(five).Cmp(Uint64[bls12_377.Element](8)))
	assert.Equal(t, 0, five.Sub(three).Cmp(Uint64[bls12_377.Element](2)))
	assert.Equal(t, 0, three.Mul(five).Cmp(Uint64[bls12_377.Element](15)))
}

func TestBytesRoundTrip(t *testing.T) {
	original := Uint64[bls12_377.Element](0xdeadbeef)
	encoded := original.Bytes()
	// Fixed-width big-endian encoding
	assert.Len(t, encoded, 32)
	//
	decoded := FromBigEndianBytes[bls12_377.Element](encoded)
	assert.Equal(t, 0, original.Cmp(decoded))
}

func TestBytesInjectiveOnBytes(t *testing.T) {
	seen := make(map[string]bool)
	//
	for b := 0; b < 256; b++ {
		key := string(Uint64[bls12_377.Element](uint64(b)).Bytes())
		assert.False(t, seen[key])
		seen[key] = true
	}
}
