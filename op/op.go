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

// Package op builds typed tensor IR expressions.
//
// Every factory promotes its operands to a common type, folds the operator
// eagerly when all operands are literals, and only then allocates a generic
// node. Operand type mismatches the promotion engine cannot resolve, and
// operands of the wrong kind for an operator, are caller bugs: factories
// panic with a descriptive error instead of returning it.
package op

import (
	"math"

	"github.com/gx-org/tir/arith"
	"github.com/gx-org/tir/dtype"
	"github.com/gx-org/tir/ir"
	"github.com/pkg/errors"
)

func fatalf(format string, a ...any) {
	panic(errors.Errorf(format, a...))
}

func pureIntrinsic(t dtype.DataType, name string, args ...ir.Expr) ir.Expr {
	return &ir.Call{Typ: t, Name: name, Args: args, Kind: ir.PureIntrinsic}
}

// simpleCast wraps the expression in a cast node only when the type differs.
func simpleCast(t dtype.DataType, x ir.Expr) ir.Expr {
	if x.Type() == t {
		return x
	}
	return &ir.Cast{Typ: t, Value: x}
}

// MatchTypes returns the two operands promoted to a common type.
//
// A scalar operand is broadcast to the lane count of a vector operand.
// After lanes agree, an integer operand meeting a float operand is cast to
// the float type, the narrower of two same-signedness integers is cast up,
// and a signed integer meeting an unsigned one casts both sides to a signed
// integer of the wider width. Note that the last rule can change the value
// of an unsigned operand close to the width boundary; it is kept for
// compatibility with consumers relying on it.
//
// Vectors with different lane counts, or operand kinds with no promotion
// rule (such as a boolean against a number), are fatal errors.
func MatchTypes(a, b ir.Expr) (ir.Expr, ir.Expr) {
	if a.Type() == b.Type() {
		return a, b
	}
	ltype, rtype := a.Type(), b.Type()
	if ltype.Lanes == 1 && rtype.Lanes != 1 {
		a = &ir.Broadcast{Value: a, Lanes: rtype.Lanes}
	} else if rtype.Lanes == 1 && ltype.Lanes != 1 {
		b = &ir.Broadcast{Value: b, Lanes: ltype.Lanes}
	} else if ltype.Lanes != rtype.Lanes {
		fatalf("cannot match type %s vs %s", ltype, rtype)
	}
	if a.Type() == b.Type() {
		return a, b
	}
	lt, rt := a.Type(), b.Type()
	switch {
	case (lt.IsInt() || lt.IsUint()) && rt.IsFloat():
		a = Cast(rt, a)
	case lt.IsFloat() && (rt.IsInt() || rt.IsUint()):
		b = Cast(lt, b)
	case (lt.IsInt() && rt.IsInt()) || (lt.IsUint() && rt.IsUint()):
		if lt.Bits < rt.Bits {
			a = Cast(rt, a)
		} else {
			b = Cast(lt, b)
		}
	case (lt.IsInt() && rt.IsUint()) || (lt.IsUint() && rt.IsInt()):
		bits := max(lt.Bits, rt.Bits)
		a = simpleCast(dtype.Int(bits, lt.Lanes), a)
		b = simpleCast(dtype.Int(bits, rt.Lanes), b)
	default:
		fatalf("cannot match type %s vs %s", ltype, rtype)
	}
	return a, b
}

// binaryOp promotes the operands, folds the operator over literals,
// and builds a generic node when folding declines.
func binaryOp(op ir.BinaryOp, a, b ir.Expr) ir.Expr {
	a, b = MatchTypes(a, b)
	if ret := arith.TryConstFold(op, a, b); ret != nil {
		return ret
	}
	return &ir.Binary{Op: op, X: a, Y: b}
}

// Add returns a + b.
func Add(a, b ir.Expr) ir.Expr { return binaryOp(ir.Add, a, b) }

// Sub returns a - b.
func Sub(a, b ir.Expr) ir.Expr { return binaryOp(ir.Sub, a, b) }

// Mul returns a * b.
func Mul(a, b ir.Expr) ir.Expr { return binaryOp(ir.Mul, a, b) }

// Div returns a / b rounded toward zero. Both operands must be integers.
func Div(a, b ir.Expr) ir.Expr {
	checkInteger("div", a)
	checkInteger("div", b)
	return binaryOp(ir.Div, a, b)
}

// Neg returns the negation of a. A literal operand is negated directly;
// any other expression becomes 0 - a.
func Neg(a ir.Expr) ir.Expr {
	switch pa := a.(type) {
	case *ir.IntImm:
		return &ir.IntImm{Typ: pa.Typ, Value: -pa.Value}
	case *ir.FloatImm:
		return &ir.FloatImm{Typ: pa.Typ, Value: -pa.Value}
	}
	return Sub(Zero(a.Type()), a)
}

// TruncDiv returns a / b rounded toward zero.
// Both operands must be integers.
func TruncDiv(a, b ir.Expr) ir.Expr {
	return Div(a, b)
}

// TruncMod returns the remainder of the truncated division of a by b.
// Both operands must be integers.
func TruncMod(a, b ir.Expr) ir.Expr {
	checkInteger("truncmod", a)
	checkInteger("truncmod", b)
	return binaryOp(ir.Mod, a, b)
}

// FloorDiv returns a / b rounded toward negative infinity.
// Both operands must be integers.
func FloorDiv(a, b ir.Expr) ir.Expr {
	checkInteger("floordiv", a)
	checkInteger("floordiv", b)
	return binaryOp(ir.FloorDiv, a, b)
}

// FloorMod returns the remainder of the floored division of a by b,
// carrying the sign of b. Both operands must be integers.
func FloorMod(a, b ir.Expr) ir.Expr {
	checkInteger("floormod", a)
	checkInteger("floormod", b)
	return binaryOp(ir.FloorMod, a, b)
}

// IndexDiv divides array index expressions, rounding toward negative
// infinity.
func IndexDiv(a, b ir.Expr) ir.Expr { return FloorDiv(a, b) }

// IndexMod returns the remainder of an array index division, keeping the
// sign of the divisor.
func IndexMod(a, b ir.Expr) ir.Expr { return FloorMod(a, b) }

func checkInteger(op string, x ir.Expr) {
	if t := x.Type(); !t.IsInt() && !t.IsUint() {
		fatalf("%s expects integer operands: %s has type %s", op, x, t)
	}
}

// Min returns the smaller of a and b.
func Min(a, b ir.Expr) ir.Expr {
	switch {
	case isPosInf(a):
		return b
	case isNegInf(a):
		return a
	case isPosInf(b):
		return a
	case isNegInf(b):
		return b
	}
	return binaryOp(ir.Min, a, b)
}

// Max returns the larger of a and b.
func Max(a, b ir.Expr) ir.Expr {
	switch {
	case isPosInf(a):
		return a
	case isNegInf(a):
		return b
	case isPosInf(b):
		return b
	case isNegInf(b):
		return a
	}
	return binaryOp(ir.Max, a, b)
}

func isPosInf(x ir.Expr) bool {
	fx, ok := x.(*ir.FloatImm)
	return ok && math.IsInf(fx.Value, 1)
}

func isNegInf(x ir.Expr) bool {
	fx, ok := x.(*ir.FloatImm)
	return ok && math.IsInf(fx.Value, -1)
}

// GT returns the comparison a > b.
func GT(a, b ir.Expr) ir.Expr { return binaryOp(ir.GT, a, b) }

// GE returns the comparison a >= b.
func GE(a, b ir.Expr) ir.Expr { return binaryOp(ir.GE, a, b) }

// LT returns the comparison a < b.
func LT(a, b ir.Expr) ir.Expr { return binaryOp(ir.LT, a, b) }

// LE returns the comparison a <= b.
func LE(a, b ir.Expr) ir.Expr { return binaryOp(ir.LE, a, b) }

// EQ returns the comparison a == b.
func EQ(a, b ir.Expr) ir.Expr { return binaryOp(ir.EQ, a, b) }

// NE returns the comparison a != b.
func NE(a, b ir.Expr) ir.Expr { return binaryOp(ir.NE, a, b) }

// And returns the conjunction of two boolean expressions.
func And(a, b ir.Expr) ir.Expr {
	checkBool("&&", a)
	checkBool("&&", b)
	if ret := arith.TryConstFold(ir.And, a, b); ret != nil {
		return ret
	}
	return &ir.Binary{Op: ir.And, X: a, Y: b}
}

// Or returns the disjunction of two boolean expressions.
func Or(a, b ir.Expr) ir.Expr {
	checkBool("||", a)
	checkBool("||", b)
	if ret := arith.TryConstFold(ir.Or, a, b); ret != nil {
		return ret
	}
	return &ir.Binary{Op: ir.Or, X: a, Y: b}
}

// Not returns the negation of a boolean expression.
func Not(a ir.Expr) ir.Expr {
	checkBool("!", a)
	if ret := arith.TryConstFoldNot(a); ret != nil {
		return ret
	}
	return &ir.Not{X: a}
}

func checkBool(op string, x ir.Expr) {
	if t := x.Type(); !t.IsBool() {
		fatalf("%s expects boolean operands: %s has type %s", op, x, t)
	}
}

// IfThenElse returns the value of one of the two branches depending on a
// scalar boolean condition. A literal condition selects the branch at
// construction time and returns it directly.
func IfThenElse(cond, trueValue, falseValue ir.Expr) ir.Expr {
	if cond.Type() != dtype.Bool(1) {
		fatalf("if_then_else only accepts a scalar boolean condition: got type %s", cond.Type())
	}
	trueValue, falseValue = MatchTypes(trueValue, falseValue)
	switch pc := cond.(type) {
	case *ir.UintImm:
		if pc.Value != 0 {
			return trueValue
		}
		return falseValue
	case *ir.IntImm:
		if pc.Value != 0 {
			return trueValue
		}
		return falseValue
	}
	return pureIntrinsic(trueValue.Type(), IfThenElseIntrinsic, cond, trueValue, falseValue)
}

// Likely hints that a condition is almost always true. Hinting a literal
// is meaningless, so literals pass through unchanged.
func Likely(cond ir.Expr) ir.Expr {
	if IsConst(cond) {
		return cond
	}
	return pureIntrinsic(cond.Type(), LikelyIntrinsic, cond)
}
