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
	"github.com/akinovak/l1-table-verifier/pkg/field"
	"github.com/akinovak/l1-table-verifier/pkg/plonk"
)

// LookupCircuit is a minimal outer circuit wiring the chip: it loads the given
// table and witnesses the given input rows in a single region.  The mock
// prover then decides whether every witnessed pair is in the table.  Both the
// command line checker and the tests drive the chip through this circuit.
type LookupCircuit[F field.Element[F]] struct {
	// Xs and Ys are the canonical table columns.
	Xs []uint8
	Ys []uint8
	// Witness rows to be looked up.
	Witness []InputRow
	//
	config TableConfig
}

// Configure implementation for the plonk.Circuit interface.
func (c *LookupCircuit[F]) Configure(meta *plonk.ConstraintSystem[F]) {
	inputX := meta.AdviceColumn()
	inputY := meta.AdviceColumn()
	//
	c.config = Configure[F](meta, inputX, inputY)
}

// Synthesize implementation for the plonk.Circuit interface.
func (c *LookupCircuit[F]) Synthesize(layouter *plonk.Layouter[F]) error {
	if err := Load(c.config, layouter, c.Xs, c.Ys); err != nil {
		return err
	}
	//
	chip := Construct[F](c.config)
	//
	return layouter.AssignRegion("inputs", func(region *plonk.Region[F]) error {
		for i, input := range c.Witness {
			if err := chip.Assign(region, uint(i), input); err != nil {
				return err
			}
		}
		//
		return nil
	})
}
