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
package gadget

import "github.com/akinovak/l1-table-verifier/pkg/plonk"

// TableRow is one canonical (x, y) byte pair destined for the fixed table.
// Duplicates are permitted, as are gaps: the table is not required to cover
// all byte pairs.
type TableRow struct {
	X uint8
	Y uint8
}

// NewTableRow constructs a table row from a pair of bytes.
func NewTableRow(x uint8, y uint8) TableRow {
	return TableRow{x, y}
}

// InputRow is one witnessed pair to be looked up.  Either component may be
// unknown during key generation, where witness values do not yet exist.
type InputRow struct {
	X plonk.Value[uint8]
	Y plonk.Value[uint8]
}

// NewInputRow constructs an input row from a pair of concrete bytes.
func NewInputRow(x uint8, y uint8) InputRow {
	return InputRow{plonk.Known(x), plonk.Known(y)}
}

// UnknownInputRow constructs an input row with both components unknown, as
// used during key generation.
func UnknownInputRow() InputRow {
	return InputRow{plonk.Unknown[uint8](), plonk.Unknown[uint8]()}
}

// Columns splits a list of table rows into the two column vectors consumed by
// the loader.
func Columns(rows []TableRow) (xs []uint8, ys []uint8) {
	xs = make([]uint8, len(rows))
	ys = make([]uint8, len(rows))
	//
	for i, row := range rows {
		xs[i] = row.X
		ys[i] = row.Y
	}
	//
	return xs, ys
}
