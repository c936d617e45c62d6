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

// Package tablefile reads and writes lookup documents expressed in JSON
// notation.  For example, {"table": {"x": [0], "y": [1]}, "rows": [[0, 1]]}
// is a one-row table together with one witnessed pair.  A null component
// within a witness pair denotes the unknown marker.
package tablefile

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/akinovak/l1-table-verifier/pkg/gadget"
	"github.com/akinovak/l1-table-verifier/pkg/plonk"
)

// Document is a parsed lookup document: the canonical table columns plus the
// witness rows to be looked up.
type Document struct {
	// Xs and Ys are the table columns (equal length is *not* enforced here;
	// the loader owns that check).
	Xs []uint8
	Ys []uint8
	// Rows are the witnessed pairs.
	Rows []gadget.InputRow
}

// rawDocument mirrors the JSON shape prior to validation.
type rawDocument struct {
	Table rawTable   `json:"table"`
	Rows  [][]*int64 `json:"rows"`
}

type rawTable struct {
	X []int64 `json:"x"`
	Y []int64 `json:"y"`
}

// FromBytes parses a lookup document expressed in JSON notation.
func FromBytes(data []byte) (*Document, error) {
	var raw rawDocument
	// Attempt to unmarshall
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	// Validate table columns
	xs, err := validateColumn("x", raw.Table.X)
	if err != nil {
		return nil, err
	}
	//
	ys, err := validateColumn("y", raw.Table.Y)
	if err != nil {
		return nil, err
	}
	// Validate witness rows
	rows, err := validateRows(raw.Rows)
	if err != nil {
		return nil, err
	}
	//
	return &Document{Xs: xs, Ys: ys, Rows: rows}, nil
}

// validateColumn checks every value lies in the byte range, reporting the
// offending row otherwise.
func validateColumn(name string, data []int64) ([]uint8, error) {
	out := make([]uint8, len(data))
	//
	for i, val := range data {
		if val < 0 || val > math.MaxUint8 {
			return nil, fmt.Errorf("table column %q out-of-bounds (row %d, value %d)", name, i, val)
		}
		//
		out[i] = uint8(val)
	}
	//
	return out, nil
}

func validateRows(data [][]*int64) ([]gadget.InputRow, error) {
	rows := make([]gadget.InputRow, len(data))
	//
	for i, pair := range data {
		if len(pair) != 2 {
			return nil, fmt.Errorf("witness row %d malformed (expected 2 components, got %d)", i, len(pair))
		}
		//
		x, err := validateComponent(i, pair[0])
		if err != nil {
			return nil, err
		}
		//
		y, err := validateComponent(i, pair[1])
		if err != nil {
			return nil, err
		}
		//
		rows[i] = gadget.InputRow{X: x, Y: y}
	}
	//
	return rows, nil
}

func validateComponent(row int, val *int64) (plonk.Value[uint8], error) {
	// Null denotes the unknown marker
	if val == nil {
		return plonk.Unknown[uint8](), nil
	}
	//
	if *val < 0 || *val > math.MaxUint8 {
		return plonk.Value[uint8]{}, fmt.Errorf("witness row %d out-of-bounds (value %d)", row, *val)
	}
	//
	return plonk.Known(uint8(*val)), nil
}
