// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package op

import (
	"github.com/gx-org/tir/ir"
	"github.com/pkg/errors"
)

// reduceOp packages one combination operator and its identity element
// into an arity-1 reduction of the source over the given domain.
func reduceOp(op ir.BinaryOp, source ir.Expr, axis []*ir.IterVar, identity ir.Expr) ir.Expr {
	t := source.Type()
	x := &ir.Var{Name: "x", Typ: t}
	y := &ir.Var{Name: "y", Typ: t}
	reduce := &ir.Reduce{
		Combiner: &ir.CommReducer{
			Lhs:             []*ir.Var{x},
			Rhs:             []*ir.Var{y},
			Result:          []ir.Expr{&ir.Binary{Op: op, X: x, Y: y}},
			IdentityElement: []ir.Expr{identity},
		},
		Source:    []ir.Expr{source},
		Axis:      axis,
		Condition: True(),
	}
	if err := reduce.Validate(); err != nil {
		panic(errors.Wrap(err, "invalid reduce node"))
	}
	return reduce
}

// Sum adds the source over the reduction domain.
func Sum(source ir.Expr, axis []*ir.IterVar) ir.Expr {
	return reduceOp(ir.Add, source, axis, Zero(source.Type()))
}

// Prod multiplies the source over the reduction domain.
func Prod(source ir.Expr, axis []*ir.IterVar) ir.Expr {
	return reduceOp(ir.Mul, source, axis, One(source.Type()))
}

// All is true when the boolean source holds over the whole reduction
// domain.
func All(source ir.Expr, axis []*ir.IterVar) ir.Expr {
	checkBool("all", source)
	return reduceOp(ir.And, source, axis, Const(source.Type(), true))
}

// Any is true when the boolean source holds anywhere in the reduction
// domain.
func Any(source ir.Expr, axis []*ir.IterVar) ir.Expr {
	checkBool("any", source)
	return reduceOp(ir.Or, source, axis, Const(source.Type(), false))
}

// MaxOver returns the largest value of the source over the reduction
// domain.
func MaxOver(source ir.Expr, axis []*ir.IterVar) ir.Expr {
	return reduceOp(ir.Max, source, axis, MinValue(source.Type()))
}

// MinOver returns the smallest value of the source over the reduction
// domain.
func MinOver(source ir.Expr, axis []*ir.IterVar) ir.Expr {
	return reduceOp(ir.Min, source, axis, MaxValue(source.Type()))
}
