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
	"strings"

	"github.com/akinovak/l1-table-verifier/pkg/field"
	"github.com/akinovak/l1-table-verifier/pkg/util/hash"
)

// LookupPair couples one input expression with one fixed table column.
type LookupPair[F field.Element[F]] struct {
	Input Expression[F]
	Table TableColumn
}

// Lookup is a registered lookup argument: for every row of the trace, the
// tuple of input expression values must appear as a row of the table columns.
// The argument is row-universal; it does not constrain where in the trace the
// inputs were assigned, nor in which order the table was loaded.
type Lookup[F field.Element[F]] struct {
	// Handle is an identifier useful when debugging (i.e. to know which
	// lookup failed, etc).
	Handle string
	// Pairs are the coupled (input, table column) pairs.
	Pairs []LookupPair[F]
}

// Accepts checks whether this lookup argument holds on every checkable row of
// the trace, returning one failure per violating row.  Rows whose input tuple
// involves an unassigned advice cell are skipped: nobody witnessed them, so
// the argument places no obligation there.
func (l Lookup[F]) Accepts(tr *Trace[F]) []Failure {
	var (
		failures []Failure
		width    = uint(len(l.Pairs))
		keyWidth = uint(len(field.Zero[F]().Bytes()))
		// Reusable key buffer
		bytes = make([]byte, keyWidth*width)
	)
	// Sanity check table geometry before anything else.
	if failure := l.checkRectangular(tr); failure != nil {
		return []Failure{failure}
	}
	// Insert all loaded table rows
	rows := l.insertTableRows(tr, bytes)
	// Check every trace row against them
	for row := uint(0); row < tr.Height(); row++ {
		values, ok := l.evalInputs(row, tr, bytes)
		if !ok {
			// Unwitnessed row
			continue
		}
		//
		if !rows.Contains(hash.NewBytesKey(bytes)) {
			failures = append(failures, &LookupFailure[F]{l.Handle, row, values})
		}
	}
	//
	return failures
}

func (l Lookup[F]) checkRectangular(tr *Trace[F]) Failure {
	height := uint(len(tr.Table(l.Pairs[0].Table)))
	//
	for _, pair := range l.Pairs[1:] {
		if uint(len(tr.Table(pair.Table))) != height {
			return &RaggedTableFailure{l.Handle}
		}
	}
	//
	return nil
}

func (l Lookup[F]) insertTableRows(tr *Trace[F], bytes []byte) *hash.Set[hash.BytesKey] {
	var (
		height = uint(len(tr.Table(l.Pairs[0].Table)))
		rows   = hash.NewSet[hash.BytesKey](height)
	)
	//
	for row := uint(0); row < height; row++ {
		slice := bytes
		//
		for _, pair := range l.Pairs {
			ith := tr.Table(pair.Table)[row]
			n := copy(slice, ith.Bytes())
			slice = slice[n:]
		}
		//
		rows.Insert(hash.NewBytesKey(bytes))
	}
	//
	return rows
}

// evalInputs evaluates the input expressions at a given row into the key
// buffer, returning the values themselves for failure reporting.  A false
// result indicates the row involves an unassigned cell.
func (l Lookup[F]) evalInputs(row uint, tr *Trace[F], bytes []byte) ([]F, bool) {
	var (
		values = make([]F, len(l.Pairs))
		slice  = bytes
	)
	//
	for i, pair := range l.Pairs {
		ith, ok := pair.Input.EvalAt(row, tr).Get()
		if !ok {
			return nil, false
		}
		//
		values[i] = ith
		n := copy(slice, ith.Bytes())
		slice = slice[n:]
	}
	//
	return values, true
}

// ============================================================================
// Failures
// ============================================================================

// LookupFailure reports a trace row whose input tuple does not appear in the
// loaded table.
type LookupFailure[F field.Element[F]] struct {
	// Handle of the failing lookup.
	Handle string
	// Row of the trace at which the tuple was evaluated.
	Row uint
	// Values of the input tuple at that row.
	Values []F
}

// Message implementation for the Failure interface.
func (p *LookupFailure[F]) Message() string {
	values := make([]string, len(p.Values))
	for i, v := range p.Values {
		values[i] = v.String()
	}
	//
	return fmt.Sprintf("lookup %q fails at row %d: (%s) not in table",
		p.Handle, p.Row, strings.Join(values, ", "))
}

func (p *LookupFailure[F]) String() string {
	return p.Message()
}

// RaggedTableFailure reports a lookup whose table columns were loaded with
// differing lengths.  A correctly written loader cannot produce this.
type RaggedTableFailure struct {
	// Handle of the failing lookup.
	Handle string
}

// Message implementation for the Failure interface.
func (p *RaggedTableFailure) Message() string {
	return fmt.Sprintf("lookup %q has table columns of differing lengths", p.Handle)
}

func (p *RaggedTableFailure) String() string {
	return p.Message()
}
