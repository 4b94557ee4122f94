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

package ir_test

import (
	"fmt"
	"testing"

	"github.com/gx-org/tir/dtype"
	"github.com/gx-org/tir/ir"
)

var (
	int32T   = dtype.Int(32, 1)
	float32T = dtype.Float(32, 1)
	boolT    = dtype.Bool(1)
)

func intImm(v int64) *ir.IntImm {
	return &ir.IntImm{Typ: int32T, Value: v}
}

func TestNodeTypes(t *testing.T) {
	x := &ir.Var{Name: "x", Typ: int32T}
	tests := []struct {
		expr ir.Expr
		want dtype.DataType
	}{
		{expr: intImm(1), want: int32T},
		{expr: &ir.UintImm{Typ: dtype.UInt(8, 1), Value: 255}, want: dtype.UInt(8, 1)},
		{expr: &ir.FloatImm{Typ: float32T, Value: 1.5}, want: float32T},
		{expr: &ir.Broadcast{Value: intImm(1), Lanes: 4}, want: dtype.Int(32, 4)},
		{expr: &ir.Cast{Typ: float32T, Value: x}, want: float32T},
		{expr: &ir.Binary{Op: ir.Add, X: x, Y: intImm(1)}, want: int32T},
		{expr: &ir.Binary{Op: ir.LT, X: x, Y: intImm(1)}, want: boolT},
		{
			expr: &ir.Binary{
				Op: ir.GE,
				X:  &ir.Broadcast{Value: x, Lanes: 4},
				Y:  &ir.Broadcast{Value: intImm(1), Lanes: 4},
			},
			want: dtype.Bool(4),
		},
		{expr: &ir.Not{X: &ir.Var{Name: "c", Typ: boolT}}, want: boolT},
		{
			expr: &ir.Select{
				Cond:       &ir.Var{Name: "c", Typ: boolT},
				TrueValue:  x,
				FalseValue: intImm(0),
			},
			want: int32T,
		},
		{
			expr: &ir.Call{Typ: float32T, Name: "floor", Args: []ir.Expr{x}, Kind: ir.PureIntrinsic},
			want: float32T,
		},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("test%d", i), func(t *testing.T) {
			if got := test.expr.Type(); got != test.want {
				t.Errorf("incorrect type for %s: got %s but want %s", test.expr, got, test.want)
			}
		})
	}
}

func TestNodeStrings(t *testing.T) {
	x := &ir.Var{Name: "x", Typ: int32T}
	tests := []struct {
		expr ir.Expr
		want string
	}{
		{expr: intImm(42), want: "42"},
		{expr: &ir.UintImm{Typ: boolT, Value: 1}, want: "true"},
		{expr: &ir.UintImm{Typ: boolT, Value: 0}, want: "false"},
		{expr: &ir.FloatImm{Typ: float32T, Value: 2}, want: "2.0"},
		{expr: &ir.FloatImm{Typ: float32T, Value: 2.5}, want: "2.5"},
		{expr: &ir.Binary{Op: ir.Add, X: x, Y: intImm(1)}, want: "(x + 1)"},
		{expr: &ir.Binary{Op: ir.Min, X: x, Y: intImm(1)}, want: "min(x, 1)"},
		{expr: &ir.Binary{Op: ir.FloorDiv, X: x, Y: intImm(2)}, want: "floordiv(x, 2)"},
		{expr: &ir.Not{X: &ir.Var{Name: "c", Typ: boolT}}, want: "!(c)"},
		{expr: &ir.Cast{Typ: float32T, Value: x}, want: "float32(x)"},
		{expr: &ir.Broadcast{Value: x, Lanes: 4}, want: "broadcast(x, 4)"},
		{
			expr: &ir.Select{Cond: &ir.Var{Name: "c", Typ: boolT}, TrueValue: x, FalseValue: intImm(0)},
			want: "select(c, x, 0)",
		},
		{
			expr: &ir.Call{Typ: int32T, Name: "shift_left", Args: []ir.Expr{x, intImm(3)}, Kind: ir.PureIntrinsic},
			want: "shift_left(x, 3)",
		},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("test%d", i), func(t *testing.T) {
			if got := test.expr.String(); got != test.want {
				t.Errorf("incorrect string representation: got %s but want %s", got, test.want)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	x := &ir.Var{Name: "x", Typ: int32T}
	tests := []struct {
		a, b ir.Expr
		want bool
	}{
		{a: intImm(1), b: intImm(1), want: true},
		{a: intImm(1), b: intImm(2), want: false},
		{a: intImm(1), b: &ir.IntImm{Typ: dtype.Int(64, 1), Value: 1}, want: false},
		{a: intImm(1), b: &ir.UintImm{Typ: dtype.UInt(32, 1), Value: 1}, want: false},
		{
			// Independently built trees compare equal without aliasing.
			a:    &ir.Binary{Op: ir.Add, X: &ir.Var{Name: "x", Typ: int32T}, Y: intImm(1)},
			b:    &ir.Binary{Op: ir.Add, X: x, Y: intImm(1)},
			want: true,
		},
		{
			a:    &ir.Binary{Op: ir.Add, X: x, Y: intImm(1)},
			b:    &ir.Binary{Op: ir.Sub, X: x, Y: intImm(1)},
			want: false,
		},
		{
			a:    &ir.Broadcast{Value: x, Lanes: 4},
			b:    &ir.Broadcast{Value: x, Lanes: 8},
			want: false,
		},
		{
			a:    &ir.Cast{Typ: float32T, Value: x},
			b:    &ir.Cast{Typ: float32T, Value: x},
			want: true,
		},
		{
			a:    &ir.Call{Typ: int32T, Name: "shift_left", Args: []ir.Expr{x, intImm(3)}, Kind: ir.PureIntrinsic},
			b:    &ir.Call{Typ: int32T, Name: "shift_left", Args: []ir.Expr{x, intImm(3)}, Kind: ir.PureIntrinsic},
			want: true,
		},
		{
			a:    &ir.Call{Typ: int32T, Name: "shift_left", Args: []ir.Expr{x, intImm(3)}, Kind: ir.PureIntrinsic},
			b:    &ir.Call{Typ: int32T, Name: "shift_right", Args: []ir.Expr{x, intImm(3)}, Kind: ir.PureIntrinsic},
			want: false,
		},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("test%d", i), func(t *testing.T) {
			if got := ir.Equal(test.a, test.b); got != test.want {
				t.Errorf("incorrect comparison of %s and %s: got %v but want %v", test.a, test.b, got, test.want)
			}
		})
	}
}
