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

// Package arith evaluates IR operators eagerly over literal operands.
//
// Folding is attempted after type promotion, so both operands of a binary
// fold always share a type descriptor. A fold succeeds only when all
// operands are literal nodes of the kind the operator requires; otherwise
// it declines by returning nil and the caller builds a generic node.
// Folds are value-exact and preserve the operand descriptor.
package arith

import (
	"math"

	"github.com/gx-org/tir/dtype"
	"github.com/gx-org/tir/ir"
	"github.com/pkg/errors"
)

// TryConstFold evaluates a binary operator over two literal operands.
// It returns nil when the operands are not both literals of the kind
// the operator folds, or when the operator has no folder.
func TryConstFold(op ir.BinaryOp, x, y ir.Expr) ir.Expr {
	fold := folders[op]
	if fold == nil {
		return nil
	}
	return fold(x, y)
}

// TryConstFoldNot evaluates logical negation over a boolean literal.
func TryConstFoldNot(x ir.Expr) ir.Expr {
	px, ok := x.(*ir.UintImm)
	if !ok {
		return nil
	}
	var val uint64
	if px.Value == 0 {
		val = 1
	}
	return &ir.UintImm{Typ: px.Typ, Value: val}
}

type folder func(x, y ir.Expr) ir.Expr

// Each operator folder is assembled from one of the generic helpers below,
// parameterized by the evaluation closure of the operator for each literal
// kind. A nil closure declines that kind.
var folders = map[ir.BinaryOp]folder{
	ir.Add: arithFold(
		func(x, y int64) int64 { return x + y },
		func(x, y uint64) uint64 { return x + y },
		func(x, y float64) float64 { return x + y },
	),
	ir.Sub: arithFold(
		func(x, y int64) int64 { return x - y },
		func(x, y uint64) uint64 { return x - y },
		func(x, y float64) float64 { return x - y },
	),
	ir.Mul: arithFold(
		func(x, y int64) int64 { return x * y },
		func(x, y uint64) uint64 { return x * y },
		func(x, y float64) float64 { return x * y },
	),
	ir.Div: arithFold(
		func(x, y int64) int64 { checkDivisor(y); return x / y },
		func(x, y uint64) uint64 { checkDivisor(y); return x / y },
		func(x, y float64) float64 { return x / y },
	),
	ir.Mod: arithFold(
		func(x, y int64) int64 { checkDivisor(y); return x % y },
		func(x, y uint64) uint64 { checkDivisor(y); return x % y },
		nil,
	),
	ir.FloorDiv: arithFold(
		floorDiv,
		// Unsigned division already floors.
		func(x, y uint64) uint64 { checkDivisor(y); return x / y },
		nil,
	),
	ir.FloorMod: arithFold(
		floorMod,
		func(x, y uint64) uint64 { checkDivisor(y); return x % y },
		nil,
	),
	ir.Min: arithFold(
		func(x, y int64) int64 { return min(x, y) },
		func(x, y uint64) uint64 { return min(x, y) },
		math.Min,
	),
	ir.Max: arithFold(
		func(x, y int64) int64 { return max(x, y) },
		func(x, y uint64) uint64 { return max(x, y) },
		math.Max,
	),
	ir.EQ: compareFold(
		func(x, y int64) bool { return x == y },
		func(x, y uint64) bool { return x == y },
		func(x, y float64) bool { return x == y },
	),
	ir.NE: compareFold(
		func(x, y int64) bool { return x != y },
		func(x, y uint64) bool { return x != y },
		func(x, y float64) bool { return x != y },
	),
	ir.LT: compareFold(
		func(x, y int64) bool { return x < y },
		func(x, y uint64) bool { return x < y },
		func(x, y float64) bool { return x < y },
	),
	ir.LE: compareFold(
		func(x, y int64) bool { return x <= y },
		func(x, y uint64) bool { return x <= y },
		func(x, y float64) bool { return x <= y },
	),
	ir.GT: compareFold(
		func(x, y int64) bool { return x > y },
		func(x, y uint64) bool { return x > y },
		func(x, y float64) bool { return x > y },
	),
	ir.GE: compareFold(
		func(x, y int64) bool { return x >= y },
		func(x, y uint64) bool { return x >= y },
		func(x, y float64) bool { return x >= y },
	),
	ir.And: boolFold(func(x, y bool) bool { return x && y }),
	ir.Or:  boolFold(func(x, y bool) bool { return x || y }),
}

// arithFold folds an operator whose result has the type of its operands.
func arithFold(fi func(x, y int64) int64, fu func(x, y uint64) uint64, ff func(x, y float64) float64) folder {
	return func(x, y ir.Expr) ir.Expr {
		switch px := x.(type) {
		case *ir.IntImm:
			py, ok := y.(*ir.IntImm)
			if !ok || fi == nil {
				return nil
			}
			return &ir.IntImm{Typ: px.Typ, Value: fi(px.Value, py.Value)}
		case *ir.UintImm:
			py, ok := y.(*ir.UintImm)
			if !ok || fu == nil {
				return nil
			}
			return &ir.UintImm{Typ: px.Typ, Value: fu(px.Value, py.Value)}
		case *ir.FloatImm:
			py, ok := y.(*ir.FloatImm)
			if !ok || ff == nil {
				return nil
			}
			return &ir.FloatImm{Typ: px.Typ, Value: ff(px.Value, py.Value)}
		}
		return nil
	}
}

// compareFold folds a comparison into a boolean literal with the lane
// count of the operands.
func compareFold(fi func(x, y int64) bool, fu func(x, y uint64) bool, ff func(x, y float64) bool) folder {
	return func(x, y ir.Expr) ir.Expr {
		var val, ok bool
		switch px := x.(type) {
		case *ir.IntImm:
			var py *ir.IntImm
			if py, ok = y.(*ir.IntImm); ok {
				val = fi(px.Value, py.Value)
			}
		case *ir.UintImm:
			var py *ir.UintImm
			if py, ok = y.(*ir.UintImm); ok {
				val = fu(px.Value, py.Value)
			}
		case *ir.FloatImm:
			var py *ir.FloatImm
			if py, ok = y.(*ir.FloatImm); ok {
				val = ff(px.Value, py.Value)
			}
		}
		if !ok {
			return nil
		}
		return boolImm(dtype.Bool(x.Type().Lanes), val)
	}
}

// boolFold folds a logical operator over two boolean literals.
func boolFold(fn func(x, y bool) bool) folder {
	return func(x, y ir.Expr) ir.Expr {
		px, ok := x.(*ir.UintImm)
		if !ok {
			return nil
		}
		py, ok := y.(*ir.UintImm)
		if !ok {
			return nil
		}
		return boolImm(px.Typ, fn(px.Value != 0, py.Value != 0))
	}
}

func boolImm(t dtype.DataType, val bool) *ir.UintImm {
	var v uint64
	if val {
		v = 1
	}
	return &ir.UintImm{Typ: t, Value: v}
}

// floorDiv rounds the quotient toward negative infinity.
func floorDiv(x, y int64) int64 {
	checkDivisor(y)
	q := x / y
	if x%y != 0 && (x < 0) != (y < 0) {
		q--
	}
	return q
}

// floorMod keeps the sign of the divisor.
func floorMod(x, y int64) int64 {
	checkDivisor(y)
	r := x % y
	if r != 0 && (r < 0) != (y < 0) {
		r += y
	}
	return r
}

func checkDivisor[T int64 | uint64](y T) {
	if y == 0 {
		panic(errors.Errorf("cannot fold constants: division by zero"))
	}
}
