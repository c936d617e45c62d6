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

// Column is an opaque handle to an advice (witness) column.  Handles are only
// meaningful with respect to the constraint system which allocated them.
type Column struct {
	index uint
}

// Index returns the position of this column within the constraint system.
func (c Column) Index() uint {
	return c.index
}

// TableColumn is an opaque handle to a fixed lookup table column.  Values in
// such columns are part of the circuit's public parameters, fixed at
// key-generation time.
type TableColumn struct {
	index uint
}

// Index returns the position of this table column within the constraint
// system.
func (c TableColumn) Index() uint {
	return c.index
}

// Rotation describes a row offset relative to the evaluation row of an
// expression.  Rotations wrap around the trace, following the cyclic structure
// of the underlying evaluation domain.
type Rotation int

// RotationCur queries the evaluation row itself.
func RotationCur() Rotation {
	return 0
}

// RotationNext queries the row immediately after the evaluation row.
func RotationNext() Rotation {
	return 1
}

// RotationPrev queries the row immediately before the evaluation row.
func RotationPrev() Rotation {
	return -1
}
