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

// Package mock provides a testing facility which evaluates all registered
// constraints symbolically over a synthesized trace and reports violations,
// without producing an actual zero-knowledge proof.  A proof which this
// package rejects would not verify; a proof it accepts would.
package mock

import (
	"github.com/akinovak/l1-table-verifier/pkg/field"
	"github.com/akinovak/l1-table-verifier/pkg/plonk"
)

// Prover holds the outcome of one synthesis pass: the circuit's constraint
// system together with the fully assigned trace.
type Prover[F field.Element[F]] struct {
	cs    *plonk.ConstraintSystem[F]
	trace *plonk.Trace[F]
}

// Run configures the given circuit and synthesizes it with a witness-recording
// layouter over a trace of 2^k rows.  Synthesis errors (missing witnesses, row
// overflow) are returned as-is.
func Run[F field.Element[F]](k uint, circuit plonk.Circuit[F]) (*Prover[F], error) {
	cs := plonk.NewConstraintSystem[F]()
	circuit.Configure(cs)
	//
	trace := plonk.NewTrace(cs, uint(1)<<k)
	layouter := plonk.NewLayouter(trace)
	//
	if err := circuit.Synthesize(layouter); err != nil {
		return nil, err
	}
	//
	return &Prover[F]{cs, trace}, nil
}

// Verify evaluates every registered lookup argument over the trace, returning
// one failure per violating row (and nil when the trace is accepted).
func (p *Prover[F]) Verify() []plonk.Failure {
	var failures []plonk.Failure
	//
	for _, lookup := range p.cs.Lookups() {
		failures = append(failures, lookup.Accepts(p.trace)...)
	}
	//
	return failures
}

// Trace exposes the synthesized trace, e.g. for inspecting loaded tables.
func (p *Prover[F]) Trace() *plonk.Trace[F] {
	return p.trace
}
