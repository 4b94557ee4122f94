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
	"testing"

	"github.com/gx-org/tir/dtype"
	"github.com/gx-org/tir/ir"
	"go.uber.org/multierr"
)

func sumReducer() (*ir.CommReducer, *ir.Var) {
	x := &ir.Var{Name: "x", Typ: int32T}
	y := &ir.Var{Name: "y", Typ: int32T}
	return &ir.CommReducer{
		Lhs:             []*ir.Var{x},
		Rhs:             []*ir.Var{y},
		Result:          []ir.Expr{&ir.Binary{Op: ir.Add, X: x, Y: y}},
		IdentityElement: []ir.Expr{intImm(0)},
	}, x
}

func TestCommReducerValidate(t *testing.T) {
	reducer, _ := sumReducer()
	if err := reducer.Validate(); err != nil {
		t.Errorf("valid reducer reported an error: %v", err)
	}
	reducer.IdentityElement = nil
	reducer.Rhs = nil
	errs := multierr.Errors(reducer.Validate())
	if len(errs) != 2 {
		t.Errorf("incorrect number of arity errors: got %d but want 2", len(errs))
	}
}

func TestReduceValidate(t *testing.T) {
	reducer, _ := sumReducer()
	source := &ir.Var{Name: "a", Typ: int32T}
	axis := []*ir.IterVar{{
		Var: &ir.Var{Name: "k", Typ: int32T},
		Dom: &ir.Range{Min: intImm(0), Extent: intImm(8)},
	}}
	reduce := &ir.Reduce{
		Combiner:  reducer,
		Source:    []ir.Expr{source},
		Axis:      axis,
		Condition: &ir.UintImm{Typ: dtype.Bool(1), Value: 1},
	}
	if err := reduce.Validate(); err != nil {
		t.Errorf("valid reduce node reported an error: %v", err)
	}

	reduce.ValueIndex = 1
	reduce.Condition = intImm(1)
	errs := multierr.Errors(reduce.Validate())
	if len(errs) != 2 {
		t.Errorf("incorrect number of errors: got %d but want 2: %v", len(errs), errs)
	}

	reduce.Source = nil
	if err := reduce.Validate(); err == nil {
		t.Errorf("reduce node with no source reported as valid")
	}
}
