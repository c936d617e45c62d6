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

// Package rel tabulates canonical byte relations.  A relation here is any
// function over the byte domain, materialized as the 256 rows (b, f(b)); the
// chip looks pairs up without knowing which relation produced them.
package rel

import "github.com/akinovak/l1-table-verifier/pkg/gadget"

// Identity tabulates (b, b) for every byte b.
func Identity() []gadget.TableRow {
	return tabulate(func(b uint8) uint8 { return b })
}

// XorConst tabulates (b, b^key) for every byte b.
func XorConst(key uint8) []gadget.TableRow {
	return tabulate(func(b uint8) uint8 { return b ^ key })
}

// Complement tabulates (b, ^b) for every byte b.
func Complement() []gadget.TableRow {
	return XorConst(0xff)
}

// Increment tabulates (b, b+1 mod 256) for every byte b.
func Increment() []gadget.TableRow {
	return tabulate(func(b uint8) uint8 { return b + 1 })
}

func tabulate(fn func(uint8) uint8) []gadget.TableRow {
	rows := make([]gadget.TableRow, 256)
	//
	for i := range rows {
		b := uint8(i)
		rows[i] = gadget.NewTableRow(b, fn(b))
	}
	//
	return rows
}
