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
	"encoding/json"

	"github.com/akinovak/l1-table-verifier/pkg/plonk"
)

// ToBytes renders a lookup document into its JSON notation, suitable for
// reading back with FromBytes.
func ToBytes(doc *Document) ([]byte, error) {
	raw := rawDocument{
		Table: rawTable{
			X: widen(doc.Xs),
			Y: widen(doc.Ys),
		},
		Rows: make([][]*int64, len(doc.Rows)),
	}
	//
	for i, row := range doc.Rows {
		raw.Rows[i] = []*int64{narrow(row.X), narrow(row.Y)}
	}
	//
	return json.MarshalIndent(raw, "", "  ")
}

func widen(data []uint8) []int64 {
	out := make([]int64, len(data))
	//
	for i, val := range data {
		out[i] = int64(val)
	}
	//
	return out
}

func narrow(val plonk.Value[uint8]) *int64 {
	if b, ok := val.Get(); ok {
		wide := int64(b)
		return &wide
	}
	// Unknown renders as null
	return nil
}
