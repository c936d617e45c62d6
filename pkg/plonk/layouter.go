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

// Layouter places regions and tables onto the global row grid.  This is a
// single-pass floor planner: regions are stacked top-down in the order they
// are assigned, each starting immediately after the previous one.  Fixed
// tables occupy their own columns and always load from row zero.
//
// In keygen mode, advice value thunks are never evaluated: only the shape of
// each region and the contents of the fixed tables are recorded.  This is what
// allows a verification key to be computed before any witness exists.
type Layouter[F field.Element[F]] struct {
	trace  *Trace[F]
	offset uint
	keygen bool
}

// NewLayouter constructs a layouter which records witness values into the
// given trace.
func NewLayouter[F field.Element[F]](tr *Trace[F]) *Layouter[F] {
	return &Layouter[F]{trace: tr}
}

// NewKeygenLayouter constructs a layouter which records region shapes and
// table contents only, ignoring advice values.
func NewKeygenLayouter[F field.Element[F]](tr *Trace[F]) *Layouter[F] {
	return &Layouter[F]{trace: tr, keygen: true}
}

// AssignRegion places a new region at the current offset and invokes the given
// closure to populate it.  The region's height is however many rows the
// closure touches; the next region starts below it.
func (l *Layouter[F]) AssignRegion(name string, fn func(region *Region[F]) error) error {
	region := &Region[F]{layouter: l, name: name, start: l.offset}
	//
	if err := fn(region); err != nil {
		return err
	}
	// Advance past this region
	l.offset += region.rows
	//
	return nil
}

// AssignTable invokes the given closure with a table layouter through which
// the fixed table columns are loaded.  The closure is expected to assign every
// cell of a rectangular block starting at row zero.
func (l *Layouter[F]) AssignTable(name string, fn func(table *TableLayouter[F]) error) error {
	table := &TableLayouter[F]{trace: l.trace, name: name}
	//
	return fn(table)
}

// Region is a contiguous row range within the circuit, addressed locally: row
// 0 inside the region may correspond to any global row.
type Region[F field.Element[F]] struct {
	layouter *Layouter[F]
	name     string
	start    uint
	// rows is the observed height of this region so far.
	rows uint
}

// AssignAdvice assigns an advice cell at a given offset within this region.
// The value thunk returns either a concrete field element or an error; in
// particular a missing witness during proving surfaces as ErrSynthesis.  In
// keygen mode the thunk is not evaluated at all.
func (r *Region[F]) AssignAdvice(annotation string, col Column, offset uint, to func() (F, error)) error {
	row := r.start + offset
	//
	if row >= r.layouter.trace.Height() {
		return fmt.Errorf("%w: region %q row %d out of bounds (height %d)",
			ErrSynthesis, r.name, row, r.layouter.trace.Height())
	}
	// Track region height
	if offset+1 > r.rows {
		r.rows = offset + 1
	}
	// Keygen never looks at witness values
	if r.layouter.keygen {
		return nil
	}
	//
	value, err := to()
	if err != nil {
		return fmt.Errorf("%s (region %q): %w", annotation, r.name, err)
	}
	//
	return r.layouter.trace.SetAdvice(col, row, value)
}

// TableLayouter assigns cells of the fixed lookup table columns.
type TableLayouter[F field.Element[F]] struct {
	trace *Trace[F]
	name  string
}

// AssignCell assigns one cell of a fixed table column.  Unlike advice, table
// values are part of the circuit's public parameters and are therefore
// evaluated during key generation as well.
func (t *TableLayouter[F]) AssignCell(annotation string, col TableColumn, offset uint, to func() (F, error)) error {
	value, err := to()
	if err != nil {
		return fmt.Errorf("%s (table %q): %w", annotation, t.name, err)
	}
	//
	return t.trace.SetTableCell(col, offset, value)
}
