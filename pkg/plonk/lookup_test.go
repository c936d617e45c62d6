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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pairLookup wires up a two-column lookup over a fresh constraint system,
// loads the given table rows, and assigns the given advice rows.
func pairLookup(t *testing.T, height uint, table [][2]uint64, advice [][2]uint64) (Lookup[El], *Trace[El]) {
	t.Helper()
	//
	cs := NewConstraintSystem[El]()
	a := cs.AdviceColumn()
	b := cs.AdviceColumn()
	ta := cs.LookupTableColumn()
	tb := cs.LookupTableColumn()
	//
	cs.Lookup("pair", func(meta *VirtualCells[El]) []LookupPair[El] {
		return []LookupPair[El]{
			{Input: meta.QueryAdvice(a, RotationCur()), Table: ta},
			{Input: meta.QueryAdvice(b, RotationCur()), Table: tb},
		}
	})
	//
	tr := NewTrace(cs, height)
	for i, row := range table {
		require.NoError(t, tr.SetTableCell(ta, uint(i), elem(row[0])))
		require.NoError(t, tr.SetTableCell(tb, uint(i), elem(row[1])))
	}
	for i, row := range advice {
		require.NoError(t, tr.SetAdvice(a, uint(i), elem(row[0])))
		require.NoError(t, tr.SetAdvice(b, uint(i), elem(row[1])))
	}
	//
	require.Len(t, cs.Lookups(), 1)
	//
	return cs.Lookups()[0], tr
}

func TestLookupAcceptsMemberRows(t *testing.T) {
	lookup, tr := pairLookup(t, 8,
		[][2]uint64{{0, 1}, {1, 125}, {2, 126}},
		[][2]uint64{{1, 125}, {0, 1}})
	//
	assert.Empty(t, lookup.Accepts(tr))
}

func TestLookupRejectsNonMemberRow(t *testing.T) {
	lookup, tr := pairLookup(t, 8,
		[][2]uint64{{0, 1}, {1, 125}},
		[][2]uint64{{0, 1}, {0, 125}})
	//
	failures := lookup.Accepts(tr)
	require.Len(t, failures, 1)
	//
	failure, ok := failures[0].(*LookupFailure[El])
	require.True(t, ok)
	assert.Equal(t, uint(1), failure.Row)
	assert.Contains(t, failure.Message(), "row 1")
	assert.Contains(t, failure.Message(), "pair")
}

func TestLookupSkipsUnassignedRows(t *testing.T) {
	// Only two of eight rows are witnessed; the rest must not be constrained.
	lookup, tr := pairLookup(t, 8,
		[][2]uint64{{5, 6}},
		[][2]uint64{{5, 6}, {5, 6}})
	//
	assert.Empty(t, lookup.Accepts(tr))
}

func TestLookupPartialRowIsSkipped(t *testing.T) {
	lookup, tr := pairLookup(t, 8,
		[][2]uint64{{5, 6}},
		nil)
	// Assign only one half of row 0: the tuple involves an unassigned cell,
	// so the row is not checked.
	require.NoError(t, tr.SetAdvice(Column{0}, 0, elem(5)))
	//
	assert.Empty(t, lookup.Accepts(tr))
}

func TestLookupReportsEveryViolatingRow(t *testing.T) {
	lookup, tr := pairLookup(t, 8,
		[][2]uint64{{0, 0}},
		[][2]uint64{{1, 1}, {0, 0}, {2, 2}})
	//
	failures := lookup.Accepts(tr)
	assert.Len(t, failures, 2)
}

func TestLookupRaggedTable(t *testing.T) {
	lookup, tr := pairLookup(t, 8,
		[][2]uint64{{0, 1}},
		nil)
	// Load one extra cell into the first table column only.
	require.NoError(t, tr.SetTableCell(lookup.Pairs[0].Table, 1, elem(9)))
	//
	failures := lookup.Accepts(tr)
	require.Len(t, failures, 1)
	assert.IsType(t, &RaggedTableFailure{}, failures[0])
}

func TestEmptyTableRejectsAssignedRows(t *testing.T) {
	lookup, tr := pairLookup(t, 8,
		nil,
		[][2]uint64{{0, 0}})
	//
	assert.Len(t, lookup.Accepts(tr), 1)
}

func TestTableCellOutOfBounds(t *testing.T) {
	_, tr := pairLookup(t, 4, nil, nil)
	//
	err := tr.SetTableCell(TableColumn{0}, 4, elem(1))
	assert.ErrorIs(t, err, ErrSynthesis)
}

func TestAdviceCellOutOfBounds(t *testing.T) {
	_, tr := pairLookup(t, 4, nil, nil)
	//
	err := tr.SetAdvice(Column{0}, 4, elem(1))
	assert.ErrorIs(t, err, ErrSynthesis)
}
