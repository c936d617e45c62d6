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

import (
	"fmt"
	"strings"

	"github.com/akinovak/l1-table-verifier/pkg/field"
)

// Expression is a polynomial over the cells of a trace, evaluated row by row.
// Evaluation produces an unknown value whenever any constituent advice cell is
// unassigned; constraints must not be applied to such rows.
type Expression[F field.Element[F]] interface {
	fmt.Stringer
	// EvalAt evaluates this expression at a given row of the trace.
	EvalAt(row uint, tr *Trace[F]) Value[F]
}

// ============================================================================
// Constant
// ============================================================================

// Constant is a literal field element.
type Constant[F field.Element[F]] struct {
	Value F
}

// NewConstant constructs a constant expression from a field element.
func NewConstant[F field.Element[F]](value F) Constant[F] {
	return Constant[F]{value}
}

// EvalAt implementation for the Expression interface.
func (e Constant[F]) EvalAt(_ uint, _ *Trace[F]) Value[F] {
	return Known(e.Value)
}

func (e Constant[F]) String() string {
	return e.Value.String()
}

// ============================================================================
// AdviceQuery
// ============================================================================

// AdviceQuery reads an advice cell relative to the evaluation row.  The
// rotation wraps around the trace.
type AdviceQuery[F field.Element[F]] struct {
	Column   Column
	Rotation Rotation
}

// EvalAt implementation for the Expression interface.
func (e AdviceQuery[F]) EvalAt(row uint, tr *Trace[F]) Value[F] {
	var (
		height = int(tr.Height())
		// Wrap rotation around the trace
		k = (int(row) + int(e.Rotation)) % height
	)
	//
	if k < 0 {
		k += height
	}
	//
	return tr.Advice(e.Column, uint(k))
}

func (e AdviceQuery[F]) String() string {
	if e.Rotation == 0 {
		return fmt.Sprintf("advice[%d]", e.Column.Index())
	}
	//
	return fmt.Sprintf("advice[%d]@%d", e.Column.Index(), e.Rotation)
}

// ============================================================================
// Sum
// ============================================================================

// Sum adds zero or more expressions.
type Sum[F field.Element[F]] struct {
	Args []Expression[F]
}

// NewSum constructs a sum from a given set of expressions.
func NewSum[F field.Element[F]](args ...Expression[F]) Sum[F] {
	return Sum[F]{args}
}

// EvalAt implementation for the Expression interface.
func (e Sum[F]) EvalAt(row uint, tr *Trace[F]) Value[F] {
	acc := field.Zero[F]()
	//
	for _, arg := range e.Args {
		val, ok := arg.EvalAt(row, tr).Get()
		if !ok {
			return Unknown[F]()
		}
		//
		acc = acc.Add(val)
	}
	//
	return Known(acc)
}

func (e Sum[F]) String() string {
	return nary("+", e.Args)
}

// ============================================================================
// Product
// ============================================================================

// Product multiplies zero or more expressions.
type Product[F field.Element[F]] struct {
	Args []Expression[F]
}

// NewProduct constructs a product from a given set of expressions.
func NewProduct[F field.Element[F]](args ...Expression[F]) Product[F] {
	return Product[F]{args}
}

// EvalAt implementation for the Expression interface.
func (e Product[F]) EvalAt(row uint, tr *Trace[F]) Value[F] {
	acc := field.One[F]()
	//
	for _, arg := range e.Args {
		val, ok := arg.EvalAt(row, tr).Get()
		if !ok {
			return Unknown[F]()
		}
		//
		acc = acc.Mul(val)
	}
	//
	return Known(acc)
}

func (e Product[F]) String() string {
	return nary("*", e.Args)
}

func nary[F field.Element[F]](op string, args []Expression[F]) string {
	var builder strings.Builder
	//
	builder.WriteString("(")
	//
	for i, arg := range args {
		if i != 0 {
			builder.WriteString(" ")
			builder.WriteString(op)
			builder.WriteString(" ")
		}
		//
		builder.WriteString(arg.String())
	}
	//
	builder.WriteString(")")
	//
	return builder.String()
}
