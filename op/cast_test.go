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

package op_test

import (
	"fmt"
	"testing"

	"github.com/gx-org/tir/dtype"
	"github.com/gx-org/tir/ir"
	"github.com/gx-org/tir/op"
)

func TestCastLiterals(t *testing.T) {
	tests := []struct {
		typ  dtype.DataType
		expr ir.Expr
		want ir.Expr
	}{
		{
			typ:  float32T,
			expr: intImm(5),
			want: &ir.FloatImm{Typ: float32T, Value: 5},
		},
		{
			typ:  int64T,
			expr: intImm(5),
			want: &ir.IntImm{Typ: int64T, Value: 5},
		},
		{
			typ:  int32T,
			expr: &ir.UintImm{Typ: uint8T, Value: 200},
			want: &ir.IntImm{Typ: int32T, Value: 200},
		},
		{
			typ:  int32T,
			expr: floatImm(2.75),
			want: &ir.IntImm{Typ: int32T, Value: 2},
		},
		{
			typ:  uint8T,
			expr: intImm(3),
			want: &ir.UintImm{Typ: uint8T, Value: 3},
		},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("test%d", i), func(t *testing.T) {
			got := op.Cast(test.typ, test.expr)
			if !ir.Equal(got, test.want) {
				t.Errorf("incorrect cast of %s to %s: got %s but want %s", test.expr, test.typ, got, test.want)
			}
		})
	}
}

func TestCastNoOp(t *testing.T) {
	x := intVar("x")
	if got := op.Cast(int32T, x); got != x {
		t.Errorf("cast to the same type rewrote the expression: got %s", got)
	}
}

func TestCastIdempotence(t *testing.T) {
	exprs := []ir.Expr{
		intVar("x"),
		intImm(5),
		&ir.Var{Name: "v", Typ: dtype.Int(32, 4)},
	}
	for i, x := range exprs {
		t.Run(fmt.Sprintf("test%d", i), func(t *testing.T) {
			once := op.Cast(float32T.WithLanes(x.Type().Lanes), x)
			twice := op.Cast(float32T.WithLanes(x.Type().Lanes), once)
			if !ir.Equal(once, twice) {
				t.Errorf("cast is not idempotent: got %s then %s", once, twice)
			}
		})
	}
}

func TestCastScalarToVector(t *testing.T) {
	vec4 := dtype.Float(32, 4)

	// A scalar expression is cast to the element type, then broadcast.
	x := intVar("x")
	got := op.Cast(vec4, x)
	bcast, ok := got.(*ir.Broadcast)
	if !ok || bcast.Lanes != 4 {
		t.Fatalf("incorrect vector cast: got %s", got)
	}
	if _, ok := bcast.Value.(*ir.Cast); !ok {
		t.Errorf("broadcast value is %T: want the casted scalar", bcast.Value)
	}

	// A scalar literal is retyped, then broadcast.
	got = op.Cast(vec4, intImm(5))
	bcast, ok = got.(*ir.Broadcast)
	if !ok {
		t.Fatalf("incorrect vector cast of a literal: got %s", got)
	}
	if want := (&ir.FloatImm{Typ: float32T, Value: 5}); !ir.Equal(bcast.Value, want) {
		t.Errorf("incorrect broadcast literal: got %s but want %s", bcast.Value, want)
	}
}

func TestCastVectorToVector(t *testing.T) {
	v := &ir.Var{Name: "v", Typ: dtype.Int(32, 4)}
	got := op.Cast(dtype.Float(32, 4), v)
	if _, ok := got.(*ir.Cast); !ok {
		t.Errorf("incorrect vector to vector cast: got %s", got)
	}
	wantFatal(t, func() { op.Cast(dtype.Float(32, 8), v) })
}

func TestReinterpret(t *testing.T) {
	x := &ir.Var{Name: "x", Typ: float32T}
	got := op.Reinterpret(uint32T, x)
	call, ok := got.(*ir.Call)
	if !ok || call.Name != op.ReinterpretIntrinsic || call.Kind != ir.PureIntrinsic {
		t.Fatalf("incorrect reinterpretation: got %s", got)
	}
	if call.Typ != uint32T {
		t.Errorf("incorrect reinterpretation type: got %s but want %s", call.Typ, uint32T)
	}
	if got := op.Reinterpret(float32T, x); got != x {
		t.Errorf("reinterpret to the same type rewrote the expression: got %s", got)
	}
}
