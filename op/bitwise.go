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

import "github.com/gx-org/tir/ir"

// Bitwise operators and shifts have no primitive node: they promote their
// operands, fold pairs of signed integer literals directly, and otherwise
// lower to a named pure intrinsic of the operand type.

// ShiftLeft returns a shifted left by b bits.
func ShiftLeft(a, b ir.Expr) ir.Expr {
	return shiftOp(ShiftLeftIntrinsic, func(x, y int64) int64 { return x << y }, a, b)
}

// ShiftRight returns a shifted right by b bits.
func ShiftRight(a, b ir.Expr) ir.Expr {
	return shiftOp(ShiftRightIntrinsic, func(x, y int64) int64 { return x >> y }, a, b)
}

// shiftOp folds literal shifts and short-circuits shifts by a literal zero
// to the shifted operand.
func shiftOp(name string, fn func(x, y int64) int64, a, b ir.Expr) ir.Expr {
	a, b = MatchTypes(a, b)
	pa, aok := a.(*ir.IntImm)
	pb, bok := b.(*ir.IntImm)
	if bok && pb.Value < 0 {
		fatalf("%s by a negative amount: %d", name, pb.Value)
	}
	if aok && bok {
		return &ir.IntImm{Typ: a.Type(), Value: fn(pa.Value, pb.Value)}
	}
	if bok && pb.Value == 0 {
		return a
	}
	return pureIntrinsic(a.Type(), name, a, b)
}

// BitwiseAnd returns a & b.
func BitwiseAnd(a, b ir.Expr) ir.Expr {
	return bitwiseOp(BitwiseAndIntrinsic, func(x, y int64) int64 { return x & y }, a, b)
}

// BitwiseOr returns a | b.
func BitwiseOr(a, b ir.Expr) ir.Expr {
	return bitwiseOp(BitwiseOrIntrinsic, func(x, y int64) int64 { return x | y }, a, b)
}

// BitwiseXor returns a ^ b.
func BitwiseXor(a, b ir.Expr) ir.Expr {
	return bitwiseOp(BitwiseXorIntrinsic, func(x, y int64) int64 { return x ^ y }, a, b)
}

func bitwiseOp(name string, fn func(x, y int64) int64, a, b ir.Expr) ir.Expr {
	a, b = MatchTypes(a, b)
	pa, aok := a.(*ir.IntImm)
	pb, bok := b.(*ir.IntImm)
	if aok && bok {
		return &ir.IntImm{Typ: a.Type(), Value: fn(pa.Value, pb.Value)}
	}
	return pureIntrinsic(a.Type(), name, a, b)
}

// BitwiseNot returns the complement of an integer expression.
func BitwiseNot(a ir.Expr) ir.Expr {
	checkInteger("bitwise not", a)
	return pureIntrinsic(a.Type(), BitwiseNotIntrinsic, a)
}
