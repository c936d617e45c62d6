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
package plonk

// Value is a two-state witness value: either a concrete value, or the
// distinguished "unknown" marker used during key generation when witnesses do
// not yet exist.  This is deliberately not a generic null type; unknownness is
// a semantic state which flows through the assignment interface.
type Value[T any] struct {
	value T
	known bool
}

// Known constructs a concrete value.
func Known[T any](value T) Value[T] {
	return Value[T]{value, true}
}

// Unknown constructs the unknown marker.
func Unknown[T any]() Value[T] {
	return Value[T]{}
}

// IsKnown reports whether this value is concrete.
func (v Value[T]) IsKnown() bool {
	return v.known
}

// Get returns the concrete value along with a flag indicating whether it was
// known.  For unknown values, the zero value of T is returned.
func (v Value[T]) Get() (T, bool) {
	return v.value, v.known
}

// Unwrap returns the concrete value, panicking if it is unknown.  Callers
// should prefer Get unless unknownness has already been excluded.
func (v Value[T]) Unwrap() T {
	if !v.known {
		panic("unwrapped unknown value")
	}
	//
	return v.value
}
