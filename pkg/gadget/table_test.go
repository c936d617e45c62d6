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

import (
	"testing"

	"github.com/akinovak/l1-table-verifier/pkg/field/bls12_377"
	"github.com/akinovak/l1-table-verifier/pkg/plonk"
	"github.com/akinovak/l1-table-verifier/pkg/plonk/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkLookup synthesizes the lookup circuit over the given table and witness
// and returns the mock prover's failures.
func checkLookup(t *testing.T, xs []uint8, ys []uint8, witness []InputRow) []plonk.Failure {
	t.Helper()
	//
	circuit := &LookupCircuit[bls12_377.Element]{Xs: xs, Ys: ys, Witness: witness}
	//
	prover, err := mock.Run[bls12_377.Element](4, circuit)
	require.NoError(t, err)
	//
	return prover.Verify()
}

func witnessOf(pairs ...[2]uint8) []InputRow {
	rows := make([]InputRow, len(pairs))
	for i, p := range pairs {
		rows[i] = NewInputRow(p[0], p[1])
	}
	//
	return rows
}

func TestAcceptMinimal(t *testing.T) {
	failures := checkLookup(t, []uint8{0, 1, 2}, []uint8{1, 125, 126},
		witnessOf([2]uint8{0, 1}, [2]uint8{1, 125}, [2]uint8{2, 126}))
	//
	assert.Empty(t, failures)
}

func TestRejectWrongPair(t *testing.T) {
	failures := checkLookup(t, []uint8{0, 1, 2}, []uint8{1, 125, 126},
		witnessOf([2]uint8{0, 1}, [2]uint8{1, 125}, [2]uint8{2, 127}))
	//
	require.Len(t, failures, 1)
	// The violating witness sits at row 2 of the (first) region.
	failure, ok := failures[0].(*plonk.LookupFailure[bls12_377.Element])
	require.True(t, ok)
	assert.Equal(t, uint(2), failure.Row)
}

func TestAcceptSwappedWitnessOrder(t *testing.T) {
	failures := checkLookup(t, []uint8{0, 1, 2}, []uint8{1, 125, 126},
		witnessOf([2]uint8{2, 126}, [2]uint8{0, 1}, [2]uint8{1, 125}))
	//
	assert.Empty(t, failures)
}

func TestAcceptDuplicateWitness(t *testing.T) {
	failures := checkLookup(t, []uint8{0, 1, 2}, []uint8{1, 125, 126},
		witnessOf([2]uint8{1, 125}, [2]uint8{1, 125}, [2]uint8{1, 125}))
	//
	assert.Empty(t, failures)
}

func TestRejectCrossTuple(t *testing.T) {
	// 0 and 125 each occur in the table, but never together.
	failures := checkLookup(t, []uint8{0, 1, 2}, []uint8{1, 125, 126},
		witnessOf([2]uint8{0, 125}))
	//
	assert.Len(t, failures, 1)
}

func TestLoadShapeMismatch(t *testing.T) {
	circuit := &LookupCircuit[bls12_377.Element]{
		Xs:      []uint8{0, 1},
		Ys:      []uint8{0, 1, 2},
		Witness: nil,
	}
	//
	_, err := mock.Run[bls12_377.Element](4, circuit)
	require.ErrorIs(t, err, plonk.ErrSynthesis)
}

func TestEmptyTableRejectsWitness(t *testing.T) {
	failures := checkLookup(t, nil, nil, witnessOf([2]uint8{0, 0}))
	//
	assert.Len(t, failures, 1)
}

func TestEmptyTableEmptyWitnessAccepts(t *testing.T) {
	failures := checkLookup(t, nil, nil, nil)
	//
	assert.Empty(t, failures)
}

func TestDuplicateTableRowsHarmless(t *testing.T) {
	failures := checkLookup(t, []uint8{7, 7, 7}, []uint8{9, 9, 9},
		witnessOf([2]uint8{7, 9}))
	//
	assert.Empty(t, failures)
}

func TestMissingWitnessDuringProving(t *testing.T) {
	circuit := &LookupCircuit[bls12_377.Element]{
		Xs:      []uint8{0},
		Ys:      []uint8{1},
		Witness: []InputRow{{X: plonk.Known[uint8](0), Y: plonk.Unknown[uint8]()}},
	}
	//
	_, err := mock.Run[bls12_377.Element](4, circuit)
	require.ErrorIs(t, err, plonk.ErrSynthesis)
}

func TestKeygenToleratesUnknownWitness(t *testing.T) {
	circuit := &LookupCircuit[bls12_377.Element]{
		Xs:      []uint8{0, 1, 2},
		Ys:      []uint8{1, 125, 126},
		Witness: []InputRow{UnknownInputRow(), UnknownInputRow()},
	}
	//
	vk, err := mock.Keygen[bls12_377.Element](4, circuit)
	require.NoError(t, err)
	// Both table columns were captured, three rows each.
	require.Len(t, vk.TableColumns(), 2)
	assert.Len(t, vk.TableColumns()[0], 3)
	assert.Len(t, vk.TableColumns()[1], 3)
}

func TestTablePermutationChangesKeyNotDecision(t *testing.T) {
	var (
		witness  = witnessOf([2]uint8{1, 125})
		straight = &LookupCircuit[bls12_377.Element]{
			Xs: []uint8{0, 1, 2}, Ys: []uint8{1, 125, 126}, Witness: witness}
		permuted = &LookupCircuit[bls12_377.Element]{
			Xs: []uint8{2, 0, 1}, Ys: []uint8{126, 1, 125}, Witness: witness}
	)
	// Keys differ...
	vk1, err := mock.Keygen[bls12_377.Element](4, straight)
	require.NoError(t, err)
	vk2, err := mock.Keygen[bls12_377.Element](4, permuted)
	require.NoError(t, err)
	assert.NotEqual(t, vk1.Fingerprint(), vk2.Fingerprint())
	// ...but the decision does not.
	assert.Empty(t, checkLookup(t, straight.Xs, straight.Ys, witness))
	assert.Empty(t, checkLookup(t, permuted.Xs, permuted.Ys, witness))
}

func TestWitnessOverflowingCircuitRows(t *testing.T) {
	witness := make([]InputRow, 20)
	for i := range witness {
		witness[i] = NewInputRow(0, 1)
	}
	// k=4 gives 16 rows; 20 witness rows cannot fit.
	circuit := &LookupCircuit[bls12_377.Element]{Xs: []uint8{0}, Ys: []uint8{1}, Witness: witness}
	//
	_, err := mock.Run[bls12_377.Element](4, circuit)
	require.ErrorIs(t, err, plonk.ErrSynthesis)
}
