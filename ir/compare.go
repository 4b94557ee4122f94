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

package ir

// Equal reports whether two expressions are structurally equal:
// same node kinds, same types, same values, equal subtrees.
// Aliasing of common subexpressions is never required for two
// trees to compare equal.
func Equal(x, y Expr) bool {
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	switch xT := x.(type) {
	case *IntImm:
		yT, ok := y.(*IntImm)
		return ok && xT.Typ == yT.Typ && xT.Value == yT.Value
	case *UintImm:
		yT, ok := y.(*UintImm)
		return ok && xT.Typ == yT.Typ && xT.Value == yT.Value
	case *FloatImm:
		yT, ok := y.(*FloatImm)
		return ok && xT.Typ == yT.Typ && xT.Value == yT.Value
	case *Var:
		yT, ok := y.(*Var)
		return ok && xT.Typ == yT.Typ && xT.Name == yT.Name
	case *Broadcast:
		yT, ok := y.(*Broadcast)
		return ok && xT.Lanes == yT.Lanes && Equal(xT.Value, yT.Value)
	case *Cast:
		yT, ok := y.(*Cast)
		return ok && xT.Typ == yT.Typ && Equal(xT.Value, yT.Value)
	case *Binary:
		yT, ok := y.(*Binary)
		return ok && xT.Op == yT.Op && Equal(xT.X, yT.X) && Equal(xT.Y, yT.Y)
	case *Not:
		yT, ok := y.(*Not)
		return ok && Equal(xT.X, yT.X)
	case *Select:
		yT, ok := y.(*Select)
		return ok && Equal(xT.Cond, yT.Cond) &&
			Equal(xT.TrueValue, yT.TrueValue) &&
			Equal(xT.FalseValue, yT.FalseValue)
	case *Call:
		yT, ok := y.(*Call)
		return ok && xT.Typ == yT.Typ && xT.Name == yT.Name &&
			xT.Kind == yT.Kind && exprsEqual(xT.Args, yT.Args)
	case *Reduce:
		yT, ok := y.(*Reduce)
		return ok && reducersEqual(xT.Combiner, yT.Combiner) &&
			exprsEqual(xT.Source, yT.Source) &&
			axesEqual(xT.Axis, yT.Axis) &&
			Equal(xT.Condition, yT.Condition) &&
			xT.ValueIndex == yT.ValueIndex
	}
	return false
}

func exprsEqual(xs, ys []Expr) bool {
	if len(xs) != len(ys) {
		return false
	}
	for i, x := range xs {
		if !Equal(x, ys[i]) {
			return false
		}
	}
	return true
}

func varsEqual(xs, ys []*Var) bool {
	if len(xs) != len(ys) {
		return false
	}
	for i, x := range xs {
		if !Equal(x, ys[i]) {
			return false
		}
	}
	return true
}

func reducersEqual(x, y *CommReducer) bool {
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	return varsEqual(x.Lhs, y.Lhs) && varsEqual(x.Rhs, y.Rhs) &&
		exprsEqual(x.Result, y.Result) &&
		exprsEqual(x.IdentityElement, y.IdentityElement)
}

func rangesEqual(x, y *Range) bool {
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	return Equal(x.Min, y.Min) && Equal(x.Extent, y.Extent)
}

func axesEqual(xs, ys []*IterVar) bool {
	if len(xs) != len(ys) {
		return false
	}
	for i, x := range xs {
		if !Equal(x.Var, ys[i].Var) || !rangesEqual(x.Dom, ys[i].Dom) {
			return false
		}
	}
	return true
}
