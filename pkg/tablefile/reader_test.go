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
package tablefile

import (
	"testing"

	"github.com/akinovak/l1-table-verifier/pkg/gadget"
	"github.com/akinovak/l1-table-verifier/pkg/plonk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadValidDocument(t *testing.T) {
	doc, err := FromBytes([]byte(`{
		"table": {"x": [0, 1, 2], "y": [1, 125, 126]},
		"rows": [[0, 1], [2, 126]]
	}`))
	require.NoError(t, err)
	//
	assert.Equal(t, []uint8{0, 1, 2}, doc.Xs)
	assert.Equal(t, []uint8{1, 125, 126}, doc.Ys)
	require.Len(t, doc.Rows, 2)
	assert.Equal(t, gadget.NewInputRow(0, 1), doc.Rows[0])
	assert.Equal(t, gadget.NewInputRow(2, 126), doc.Rows[1])
}

func TestReadNullComponentAsUnknown(t *testing.T) {
	doc, err := FromBytes([]byte(`{
		"table": {"x": [0], "y": [1]},
		"rows": [[0, null]]
	}`))
	require.NoError(t, err)
	//
	require.Len(t, doc.Rows, 1)
	assert.True(t, doc.Rows[0].X.IsKnown())
	assert.False(t, doc.Rows[0].Y.IsKnown())
}

func TestReadRejectsOutOfRangeTableValue(t *testing.T) {
	_, err := FromBytes([]byte(`{
		"table": {"x": [0, 256], "y": [1, 2]},
		"rows": []
	}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"x"`)
	assert.Contains(t, err.Error(), "row 1")
}

func TestReadRejectsNegativeWitnessValue(t *testing.T) {
	_, err := FromBytes([]byte(`{
		"table": {"x": [0], "y": [1]},
		"rows": [[-1, 0]]
	}`))
	assert.Error(t, err)
}

func TestReadRejectsMalformedPair(t *testing.T) {
	_, err := FromBytes([]byte(`{
		"table": {"x": [0], "y": [1]},
		"rows": [[0, 1, 2]]
	}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 0")
}

func TestReadMismatchedColumnsTolerated(t *testing.T) {
	// Shape checking belongs to the loader, not the reader.
	doc, err := FromBytes([]byte(`{
		"table": {"x": [0, 1], "y": [1]},
		"rows": []
	}`))
	require.NoError(t, err)
	assert.Len(t, doc.Xs, 2)
	assert.Len(t, doc.Ys, 1)
}

func TestWriteReadRoundTrip(t *testing.T) {
	original := &Document{
		Xs: []uint8{0, 1, 2},
		Ys: []uint8{1, 125, 126},
		Rows: []gadget.InputRow{
			gadget.NewInputRow(1, 125),
			{X: plonk.Unknown[uint8](), Y: plonk.Known[uint8](7)},
		},
	}
	//
	data, err := ToBytes(original)
	require.NoError(t, err)
	//
	parsed, err := FromBytes(data)
	require.NoError(t, err)
	assert.Equal(t, original, parsed)
}
