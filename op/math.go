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
	"math"

	"github.com/gx-org/tir/dtype"
	"github.com/gx-org/tir/ir"
)

// unaryFloatOp folds a float literal with the evaluation closure of the
// operator and emits the named intrinsic for any other operand.
func unaryFloatOp(name string, fn func(float64) float64, x ir.Expr) ir.Expr {
	if fx, ok := x.(*ir.FloatImm); ok {
		return &ir.FloatImm{Typ: fx.Typ, Value: fn(fx.Value)}
	}
	return pureIntrinsic(x.Type(), name, x)
}

// Floor returns the largest integral value not greater than x.
func Floor(x ir.Expr) ir.Expr {
	return unaryFloatOp(FloorIntrinsic, math.Floor, x)
}

// Ceil returns the smallest integral value not less than x.
func Ceil(x ir.Expr) ir.Expr {
	return unaryFloatOp(CeilIntrinsic, math.Ceil, x)
}

// Round returns x rounded to the nearest integral value, half to even.
func Round(x ir.Expr) ir.Expr {
	return unaryFloatOp(RoundIntrinsic, math.RoundToEven, x)
}

// Nearbyint returns x rounded to the nearest integral value, half to even.
func Nearbyint(x ir.Expr) ir.Expr {
	return unaryFloatOp(NearbyintIntrinsic, math.RoundToEven, x)
}

// Trunc returns the integral part of x, rounding toward zero.
func Trunc(x ir.Expr) ir.Expr {
	return unaryFloatOp(TruncIntrinsic, func(v float64) float64 {
		if v < 0 {
			return math.Ceil(v)
		}
		return math.Floor(v)
	}, x)
}

// Fmod returns the floating point remainder of x divided by y.
func Fmod(x, y ir.Expr) ir.Expr {
	return binaryFloatOp("fmod", FmodIntrinsic, math.Mod, x, y)
}

// Pow returns x raised to the power y.
func Pow(x, y ir.Expr) ir.Expr {
	return binaryFloatOp("pow", PowIntrinsic, math.Pow, x, y)
}

func binaryFloatOp(opName, name string, fn func(x, y float64) float64, x, y ir.Expr) ir.Expr {
	x, y = MatchTypes(x, y)
	if !x.Type().IsFloat() {
		fatalf("%s only applies to float operands: got type %s", opName, x.Type())
	}
	fx, xok := x.(*ir.FloatImm)
	fy, yok := y.(*ir.FloatImm)
	if xok && yok {
		return &ir.FloatImm{Typ: fx.Typ, Value: fn(fx.Value, fy.Value)}
	}
	return pureIntrinsic(x.Type(), name, x, y)
}

// Abs returns the absolute value of x. Unsigned operands are already
// non-negative and pass through unchanged; signed integers without a
// literal value lower to a select on the sign.
func Abs(x ir.Expr) ir.Expr {
	t := x.Type()
	switch {
	case t.IsInt():
		if px, ok := x.(*ir.IntImm); ok {
			v := px.Value
			if v < 0 {
				v = -v
			}
			return &ir.IntImm{Typ: t, Value: v}
		}
		return &ir.Select{Cond: GE(x, Zero(t)), TrueValue: x, FalseValue: Neg(x)}
	case t.IsFloat():
		if fx, ok := x.(*ir.FloatImm); ok {
			return &ir.FloatImm{Typ: t, Value: math.Abs(fx.Value)}
		}
		return pureIntrinsic(t, FabsIntrinsic, x)
	case t.IsUint():
		return x
	}
	fatalf("type %s not supported for absolute op", t)
	return nil
}

// IsNaN tells whether x is an IEEE not-a-number. Integer operands are
// never NaN and fold to false. Half-precision operands are widened to
// single precision first: the intrinsic has no half-precision form.
func IsNaN(x ir.Expr) ir.Expr {
	t := dtype.Bool(x.Type().Lanes)
	switch {
	case x.Type().IsInt() || x.Type().IsUint():
		return Const(t, false)
	case x.Type().IsFloat():
		if fx, ok := x.(*ir.FloatImm); ok {
			return Const(t, math.IsNaN(fx.Value))
		}
		if x.Type().Bits == 16 {
			return pureIntrinsic(t, IsNaNIntrinsic, Cast(dtype.Float(32, t.Lanes), x))
		}
		return pureIntrinsic(t, IsNaNIntrinsic, x)
	}
	fatalf("type %s not supported for isnan op", x.Type())
	return nil
}
