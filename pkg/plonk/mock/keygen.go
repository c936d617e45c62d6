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
package mock

import (
	"crypto/sha256"

	"github.com/akinovak/l1-table-verifier/pkg/field"
	"github.com/akinovak/l1-table-verifier/pkg/plonk"
)

// VerifyingKey captures the key-generation-time view of a circuit: the loaded
// contents of every fixed table column.  Witness values play no part in it.
type VerifyingKey[F field.Element[F]] struct {
	tables [][]F
}

// Keygen configures the given circuit and synthesizes it with a layouter that
// ignores advice values entirely.  Unknown witnesses must therefore succeed
// here; this is the standard key-generation-time behaviour.
func Keygen[F field.Element[F]](k uint, circuit plonk.Circuit[F]) (*VerifyingKey[F], error) {
	cs := plonk.NewConstraintSystem[F]()
	circuit.Configure(cs)
	//
	trace := plonk.NewTrace(cs, uint(1)<<k)
	layouter := plonk.NewKeygenLayouter(trace)
	//
	if err := circuit.Synthesize(layouter); err != nil {
		return nil, err
	}
	//
	return &VerifyingKey[F]{snapshotTables(cs, trace)}, nil
}

func snapshotTables[F field.Element[F]](cs *plonk.ConstraintSystem[F], tr *plonk.Trace[F]) [][]F {
	var tables [][]F
	//
	for _, lookup := range cs.Lookups() {
		for _, pair := range lookup.Pairs {
			column := tr.Table(pair.Table)
			tables = append(tables, append([]F(nil), column...))
		}
	}
	//
	return tables
}

// TableColumns returns the captured fixed table contents, one slice per table
// column referenced by a lookup, in registration order.
func (vk *VerifyingKey[F]) TableColumns() [][]F {
	return vk.tables
}

// Fingerprint digests the table contents in load order.  Two keys with the
// same fingerprint commit to identical tables; permuting table rows changes
// the fingerprint without changing which traces verify.
func (vk *VerifyingKey[F]) Fingerprint() [32]byte {
	hash := sha256.New()
	//
	for _, column := range vk.tables {
		for _, value := range column {
			hash.Write(value.Bytes())
		}
	}
	//
	var fingerprint [32]byte
	copy(fingerprint[:], hash.Sum(nil))
	//
	return fingerprint
}
