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

import "github.com/akinovak/l1-table-verifier/pkg/field"

// Circuit is the contract an outer circuit fulfils towards the framework.
// Configure is invoked exactly once, before synthesis, to register columns and
// constraints; implementations typically stash the resulting chip
// configurations on the circuit itself.  Synthesize is invoked once per
// witness generation (and once during key generation, with a layouter that
// ignores witness values).
type Circuit[F field.Element[F]] interface {
	// Configure registers the circuit's columns and constraints.
	Configure(meta *ConstraintSystem[F])
	// Synthesize assigns the circuit's witness through the given layouter.
	Synthesize(layouter *Layouter[F]) error
}
