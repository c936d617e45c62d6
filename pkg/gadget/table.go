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

// Package gadget provides a reusable two-column lookup table chip.  The chip
// forces every witnessed (x, y) byte pair to appear as a row of a
// prover-loaded static table, making it suitable for tabulated byte relations
// (XOR, S-boxes, permutations) which are cheaper as lookups than as gates.
// The chip is relation-agnostic: the outer circuit decides what to tabulate.
//
// Note the chip does not itself enforce that witnessed values lie in [0, 255];
// membership in the loaded table does so transitively, provided the table only
// contains bytes.  A wider domain is the outer circuit's concern.
package gadget

import (
	"fmt"

	"github.com/akinovak/l1-table-verifier/pkg/field"
	"github.com/akinovak/l1-table-verifier/pkg/plonk"
)

// Inputs holds the two advice columns carrying the witnessed pairs.  These are
// owned by the surrounding circuit, which decides where its witnesses live.
type Inputs struct {
	X plonk.Column
	Y plonk.Column
}

// Table holds the two fixed table columns owned by the chip.  No other chip
// may write into them once loaded.
type Table struct {
	X plonk.TableColumn
	Y plonk.TableColumn
}

// TableConfig is the chip's complete configuration: handles to all four
// columns.  It is immutable and freely copyable.
type TableConfig struct {
	Input Inputs
	Table Table
}

// TableChip binds a TableConfig to a scalar field.  It is stateless beyond
// the configuration and is created transiently during synthesis; the
// configuration itself is registered with the constraint system exactly once.
type TableChip[F field.Element[F]] struct {
	config TableConfig
}

// Configure registers the chip with the constraint system.  The two fixed
// table columns are allocated here, inside the chip, which guarantees the
// lookup argument is wired to the exact columns Load will later populate.
// Semantically: for every row, the tuple (inputX, inputY) at that row must
// appear as some row of (tableX, tableY).
func Configure[F field.Element[F]](meta *plonk.ConstraintSystem[F], inputX plonk.Column, inputY plonk.Column) TableConfig {
	tableX := meta.LookupTableColumn()
	tableY := meta.LookupTableColumn()
	//
	meta.Lookup("byte pair", func(cells *plonk.VirtualCells[F]) []plonk.LookupPair[F] {
		xCur := cells.QueryAdvice(inputX, plonk.RotationCur())
		yCur := cells.QueryAdvice(inputY, plonk.RotationCur())
		//
		return []plonk.LookupPair[F]{
			{Input: xCur, Table: tableX},
			{Input: yCur, Table: tableY},
		}
	})
	//
	return TableConfig{
		Input: Inputs{X: inputX, Y: inputY},
		Table: Table{X: tableX, Y: tableY},
	}
}

// Construct binds a configuration to a chip instance.
func Construct[F field.Element[F]](config TableConfig) *TableChip[F] {
	return &TableChip[F]{config}
}

// Config returns the chip's configuration.
func (c *TableChip[F]) Config() TableConfig {
	return c.config
}

// Load materializes the canonical (x, y) rows into the fixed table columns.
// The two vectors must have equal length; a mismatch is an error rather than
// a silent truncation to the common prefix.  Row order is irrelevant to
// soundness but is preserved as given, keeping the table deterministic with
// respect to the verification key.  Empty tables are permitted: every
// concrete witness will then fail the lookup, which is the correct behaviour.
func Load[F field.Element[F]](config TableConfig, layouter *plonk.Layouter[F], xs []uint8, ys []uint8) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("%w: table columns have mismatched lengths (%d vs %d)",
			plonk.ErrSynthesis, len(xs), len(ys))
	}
	//
	return layouter.AssignTable("byte pair table", func(table *plonk.TableLayouter[F]) error {
		for i := range xs {
			x, y := xs[i], ys[i]
			//
			if err := table.AssignCell(fmt.Sprintf("x row %d", i), config.Table.X, uint(i),
				knownByte[F](x)); err != nil {
				return err
			}
			//
			if err := table.AssignCell(fmt.Sprintf("y row %d", i), config.Table.Y, uint(i),
				knownByte[F](y)); err != nil {
				return err
			}
		}
		//
		return nil
	})
}

// LoadRows is a convenience form of Load taking rows rather than column
// vectors.
func LoadRows[F field.Element[F]](config TableConfig, layouter *plonk.Layouter[F], rows []TableRow) error {
	xs, ys := Columns(rows)
	//
	return Load(config, layouter, xs, ys)
}

// AssignRow writes a witnessed pair into the advice cells at a given row of
// the region.  Unknown values propagate unknownness to the prover: during key
// generation this succeeds, whilst during proving it surfaces as a synthesis
// error indicating missing witness data.  The row then participates in every
// lookup argument registered on these advice columns, including this chip's.
//
// The region need not overlap the loaded table rows; the lookup argument is
// row-universal, so placement is immaterial.
func (c *TableChip[F]) AssignRow(region *plonk.Region[F], row uint, x plonk.Value[uint8], y plonk.Value[uint8]) error {
	config := c.config
	//
	if err := region.AssignAdvice(fmt.Sprintf("x: %d", row), config.Input.X, row,
		optionalByte[F](x)); err != nil {
		return err
	}
	//
	return region.AssignAdvice(fmt.Sprintf("y: %d", row), config.Input.Y, row,
		optionalByte[F](y))
}

// Assign writes one input row, consuming it.
func (c *TableChip[F]) Assign(region *plonk.Region[F], row uint, input InputRow) error {
	return c.AssignRow(region, row, input.X, input.Y)
}

// knownByte embeds a concrete byte into the field.
func knownByte[F field.Element[F]](b uint8) func() (F, error) {
	return func() (F, error) {
		return field.Uint64[F](uint64(b)), nil
	}
}

// optionalByte embeds an optional byte into the field, mapping the unknown
// marker onto a synthesis error for the assignment interface to interpret.
func optionalByte[F field.Element[F]](v plonk.Value[uint8]) func() (F, error) {
	return func() (F, error) {
		b, ok := v.Get()
		if !ok {
			return field.Zero[F](), fmt.Errorf("%w: missing witness", plonk.ErrSynthesis)
		}
		//
		return field.Uint64[F](uint64(b)), nil
	}
}
