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

import (
	"fmt"
	"strconv"
	"strings"
)

// String returns the literal value.
func (e *IntImm) String() string {
	return strconv.FormatInt(e.Value, 10)
}

// String returns the literal value. Boolean literals print as true or false.
func (e *UintImm) String() string {
	if e.Typ.IsBool() {
		return strconv.FormatBool(e.Value != 0)
	}
	return strconv.FormatUint(e.Value, 10)
}

// String returns the literal value with a float suffix.
func (e *FloatImm) String() string {
	s := strconv.FormatFloat(e.Value, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// String returns the name of the variable.
func (e *Var) String() string { return e.Name }

func (e *Broadcast) String() string {
	return fmt.Sprintf("broadcast(%s, %d)", e.Value, e.Lanes)
}

func (e *Cast) String() string {
	return fmt.Sprintf("%s(%s)", e.Typ, e.Value)
}

func (e *Binary) String() string {
	switch e.Op {
	case Min, Max, FloorDiv, FloorMod:
		return fmt.Sprintf("%s(%s, %s)", e.Op, e.X, e.Y)
	}
	return fmt.Sprintf("(%s %s %s)", e.X, e.Op, e.Y)
}

func (e *Not) String() string {
	return fmt.Sprintf("!(%s)", e.X)
}

func (e *Select) String() string {
	return fmt.Sprintf("select(%s, %s, %s)", e.Cond, e.TrueValue, e.FalseValue)
}

func (e *Call) String() string {
	args := make([]string, len(e.Args))
	for i, arg := range e.Args {
		args[i] = arg.String()
	}
	return fmt.Sprintf("%s(%s)", e.Name, strings.Join(args, ", "))
}

// String returns the interval as [min, min+extent).
func (r *Range) String() string {
	return fmt.Sprintf("range(min=%s, extent=%s)", r.Min, r.Extent)
}

func (v *IterVar) String() string {
	if v.Dom == nil {
		return v.Var.String()
	}
	return fmt.Sprintf("%s in %s", v.Var, v.Dom)
}

func (r *CommReducer) String() string {
	return fmt.Sprintf("comm_reducer(result=%s, lhs=%s, rhs=%s, identity=%s)",
		exprsString(r.Result), varsString(r.Lhs), varsString(r.Rhs), exprsString(r.IdentityElement))
}

func (e *Reduce) String() string {
	axis := make([]string, len(e.Axis))
	for i, iv := range e.Axis {
		axis[i] = iv.String()
	}
	return fmt.Sprintf("reduce(combiner=%s, source=%s, axis=[%s], where=%s, value_index=%d)",
		e.Combiner, exprsString(e.Source), strings.Join(axis, ", "), e.Condition, e.ValueIndex)
}

func exprsString(exprs []Expr) string {
	ss := make([]string, len(exprs))
	for i, expr := range exprs {
		ss[i] = expr.String()
	}
	return "[" + strings.Join(ss, ", ") + "]"
}

func varsString(vars []*Var) string {
	ss := make([]string, len(vars))
	for i, v := range vars {
		ss[i] = v.String()
	}
	return "[" + strings.Join(ss, ", ") + "]"
}
