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
	"math/bits"

	"github.com/gx-org/tir/dtype"
	"github.com/gx-org/tir/ir"
)

// ConstValue is the set of Go values a literal node can be built from.
type ConstValue interface {
	int | int64 | uint64 | float64 | bool
}

// Const returns the literal of type t holding the given value.
// The literal node kind follows the kind of t, converting the value as
// needed. A vector t broadcasts the scalar literal across its lanes.
func Const[T ConstValue](t dtype.DataType, value T) ir.Expr {
	if t.Lanes == 1 {
		return scalarConst(t, value)
	}
	return &ir.Broadcast{Value: scalarConst(t.Element(), value), Lanes: t.Lanes}
}

func scalarConst[T ConstValue](t dtype.DataType, value T) ir.Expr {
	switch t.Kind {
	case dtype.IntKind:
		return &ir.IntImm{Typ: t, Value: toInt64(value)}
	case dtype.UintKind, dtype.BoolKind:
		return &ir.UintImm{Typ: t, Value: toUint64(value)}
	case dtype.FloatKind:
		return &ir.FloatImm{Typ: t, Value: toFloat64(value)}
	}
	fatalf("cannot make a constant of type %s", t)
	return nil
}

func toInt64[T ConstValue](value T) int64 {
	switch v := any(value).(type) {
	case int:
		return int64(v)
	case int64:
		return v
	case uint64:
		return int64(v)
	case float64:
		return int64(v)
	case bool:
		if v {
			return 1
		}
	}
	return 0
}

func toUint64[T ConstValue](value T) uint64 {
	switch v := any(value).(type) {
	case int:
		return uint64(v)
	case int64:
		return uint64(v)
	case uint64:
		return v
	case float64:
		return uint64(v)
	case bool:
		if v {
			return 1
		}
	}
	return 0
}

func toFloat64[T ConstValue](value T) float64 {
	switch v := any(value).(type) {
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case uint64:
		return float64(v)
	case float64:
		return v
	case bool:
		if v {
			return 1
		}
	}
	return 0
}

// Zero returns the zero literal of a type.
func Zero(t dtype.DataType) ir.Expr { return Const(t, 0) }

// One returns the one literal of a type.
func One(t dtype.DataType) ir.Expr { return Const(t, 1) }

// Bool returns the scalar boolean literal holding v.
func Bool(v bool) ir.Expr { return Const(dtype.Bool(1), v) }

// True returns the scalar boolean literal true.
func True() ir.Expr { return Bool(true) }

// False returns the scalar boolean literal false.
func False() ir.Expr { return Bool(false) }

// IsConst returns true if the expression is a literal node or the
// broadcast of one.
func IsConst(x ir.Expr) bool {
	switch xT := x.(type) {
	case *ir.IntImm, *ir.UintImm, *ir.FloatImm:
		return true
	case *ir.Broadcast:
		return IsConst(xT.Value)
	}
	return false
}

// IsConstPowerOfTwoInteger returns the exponent of a strictly positive
// power-of-two integer literal. It reports false for every other
// expression.
func IsConstPowerOfTwoInteger(x ir.Expr) (shift int, ok bool) {
	switch px := x.(type) {
	case *ir.IntImm:
		if px.Value <= 0 {
			return 0, false
		}
		return powerOfTwo(uint64(px.Value))
	case *ir.UintImm:
		if px.Value == 0 {
			return 0, false
		}
		return powerOfTwo(px.Value)
	}
	return 0, false
}

func powerOfTwo(v uint64) (int, bool) {
	if v&(v-1) != 0 {
		return 0, false
	}
	return bits.TrailingZeros64(v), true
}
