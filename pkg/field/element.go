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
	"fmt"
)

// An Element of a prime-order field.  The chip and the surrounding framework
// are generic over this interface, with the concrete field chosen by the outer
// circuit.  Implementations are expected to be small value types which reduce
// modulo the field order on construction.
type Element[F any] interface {
	fmt.Stringer
	// Add x + y
	Add(y F) F
	// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
	Cmp(y F) int
	// Check whether this value is zero (or not).
	IsZero() bool
	// Check whether this value is one (or not).
	IsOne() bool
	// Compute x * y
	Mul(y F) F
	// Compute x - y
	Sub(y F) F
	// SetBytes interprets bytes in big endian order and reduces modulo the
	// field order.
	SetBytes(bytes []byte) F
	// SetUint64 embeds an unsigned integer into the field.
	SetUint64(val uint64) F
	// Bytes returns a fixed-width big-endian encoding of this element.  Equal
	// elements must produce equal encodings.
	Bytes() []byte
}

// Zero constructs a field element representing 0
func Zero[F Element[F]]() F {
	var element F
	//
	return element
}

// One constructs a field element representing 1
func One[F Element[F]]() F {
	var element F
	//
	return element.SetUint64(1)
}

// Uint64 constructs a field element from a given uint64.  Bytes embed into the
// field this way, via the natural unsigned cast.
func Uint64[F Element[F]](val uint64) F {
	var element F
	//
	return element.SetUint64(val)
}

// FromBigEndianBytes constructs a field element from an array of bytes given
// in big endian order.
func FromBigEndianBytes[F Element[F]](bytes []byte) F {
	var element F
	//
	return element.SetBytes(bytes)
}
