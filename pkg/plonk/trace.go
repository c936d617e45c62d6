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

import (
	"fmt"

	"github.com/akinovak/l1-table-verifier/pkg/field"
)

// cell is a single advice cell.  Cells start out unassigned and become
// assigned exactly once during synthesis; the distinction matters because the
// lookup check must not constrain rows nobody witnessed.
type cell[F any] struct {
	value    F
	assigned bool
}

// Trace holds the assignment grid for one synthesis pass: a rectangular block
// of advice cells (height fixed up front by the circuit's row count) together
// with the contents of the fixed lookup table columns (which grow as they are
// loaded).
type Trace[F field.Element[F]] struct {
	height uint
	// advice cells, indexed by column then row.
	advice [][]cell[F]
	// table column contents, indexed by column then row.
	tables [][]F
}

// NewTrace constructs an empty trace for a given constraint system, with room
// for the given number of rows.
func NewTrace[F field.Element[F]](cs *ConstraintSystem[F], height uint) *Trace[F] {
	advice := make([][]cell[F], cs.AdviceColumnCount())
	for i := range advice {
		advice[i] = make([]cell[F], height)
	}
	//
	return &Trace[F]{
		height: height,
		advice: advice,
		tables: make([][]F, cs.TableColumnCount()),
	}
}

// Height returns the number of rows in this trace.
func (t *Trace[F]) Height() uint {
	return t.height
}

// Advice returns the contents of a given advice cell.  Unassigned cells read
// back as unknown.
func (t *Trace[F]) Advice(col Column, row uint) Value[F] {
	c := t.advice[col.Index()][row]
	if !c.assigned {
		return Unknown[F]()
	}
	//
	return Known(c.value)
}

// SetAdvice assigns a given advice cell, reporting an error when the row lies
// outside the trace.
func (t *Trace[F]) SetAdvice(col Column, row uint, value F) error {
	if row >= t.height {
		return fmt.Errorf("%w: advice row %d out of bounds (height %d)", ErrSynthesis, row, t.height)
	}
	//
	t.advice[col.Index()][row] = cell[F]{value, true}
	//
	return nil
}

// Table returns the loaded contents of a given fixed table column.
func (t *Trace[F]) Table(col TableColumn) []F {
	return t.tables[col.Index()]
}

// SetTableCell assigns one cell of a fixed table column.  Cells may be written
// in any order within the loading closure; gaps are filled with zero until
// written, keeping the column contents deterministic.
func (t *Trace[F]) SetTableCell(col TableColumn, row uint, value F) error {
	if row >= t.height {
		return fmt.Errorf("%w: table row %d out of bounds (height %d)", ErrSynthesis, row, t.height)
	}
	//
	data := t.tables[col.Index()]
	// Grow column as needed
	for uint(len(data)) <= row {
		data = append(data, field.Zero[F]())
	}
	//
	data[row] = value
	t.tables[col.Index()] = data
	//
	return nil
}
