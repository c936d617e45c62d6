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

// MaxColumns bounds the number of columns (of each kind) a constraint system
// will allocate.  Exceeding it indicates a structurally broken circuit, and is
// treated as a programmer error rather than a runtime condition.
const MaxColumns = 1 << 16

// ConstraintSystem collects the shape of a circuit: which columns exist and
// which lookup arguments couple them.  It is populated exactly once, during
// circuit configuration, before any synthesis takes place.  It must not be
// accessed concurrently while being populated.
type ConstraintSystem[F field.Element[F]] struct {
	numAdvice uint
	numTables uint
	lookups   []Lookup[F]
}

// NewConstraintSystem constructs an empty constraint system.
func NewConstraintSystem[F field.Element[F]]() *ConstraintSystem[F] {
	return &ConstraintSystem[F]{}
}

// AdviceColumn allocates a fresh advice (witness) column.
func (cs *ConstraintSystem[F]) AdviceColumn() Column {
	if cs.numAdvice >= MaxColumns {
		panic(fmt.Sprintf("advice column budget exhausted (%d columns)", MaxColumns))
	}
	//
	col := Column{cs.numAdvice}
	cs.numAdvice++
	//
	return col
}

// LookupTableColumn allocates a fresh fixed lookup table column.
func (cs *ConstraintSystem[F]) LookupTableColumn() TableColumn {
	if cs.numTables >= MaxColumns {
		panic(fmt.Sprintf("table column budget exhausted (%d columns)", MaxColumns))
	}
	//
	col := TableColumn{cs.numTables}
	cs.numTables++
	//
	return col
}

// Lookup registers a lookup argument under a given handle.  The closure
// receives a cell query interface and returns the (expression, table column)
// pairs being coupled: in any satisfying assignment, every row's tuple of
// expression values must appear as a row of the table columns.
func (cs *ConstraintSystem[F]) Lookup(handle string, fn func(meta *VirtualCells[F]) []LookupPair[F]) {
	meta := &VirtualCells[F]{cs}
	pairs := fn(meta)
	//
	if len(pairs) == 0 {
		panic(fmt.Sprintf("lookup %q registered with no pairs", handle))
	}
	//
	cs.lookups = append(cs.lookups, Lookup[F]{Handle: handle, Pairs: pairs})
}

// AdviceColumnCount returns the number of advice columns allocated so far.
func (cs *ConstraintSystem[F]) AdviceColumnCount() uint {
	return cs.numAdvice
}

// TableColumnCount returns the number of table columns allocated so far.
func (cs *ConstraintSystem[F]) TableColumnCount() uint {
	return cs.numTables
}

// Lookups returns the lookup arguments registered on this constraint system.
func (cs *ConstraintSystem[F]) Lookups() []Lookup[F] {
	return cs.lookups
}

// VirtualCells builds expressions referring to cells relative to the
// evaluation row, during lookup registration.
type VirtualCells[F field.Element[F]] struct {
	cs *ConstraintSystem[F]
}

// QueryAdvice builds an expression referring to an advice cell at a given
// rotation from the evaluation row.
func (m *VirtualCells[F]) QueryAdvice(col Column, rot Rotation) Expression[F] {
	if col.Index() >= m.cs.numAdvice {
		panic(fmt.Sprintf("advice column %d queried before allocation", col.Index()))
	}
	//
	return AdviceQuery[F]{col, rot}
}
