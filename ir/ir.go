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

// Package ir defines the expression nodes of the tensor intermediate
// representation.
//
// Nodes are immutable once built: a transformation always allocates new nodes
// and shares the unaffected subtrees. Because of that, a tree can be read from
// any number of goroutines without synchronization. Every node carries the
// descriptor of its result type.
//
// Expressions are built through the op package factories, never assembled
// by downstream layers directly.
package ir

import "github.com/gx-org/tir/dtype"

// BinaryOp identifies the operator of a binary expression node.
type BinaryOp int

// Binary operators.
const (
	InvalidOp BinaryOp = iota

	Add
	Sub
	Mul
	Div
	Mod
	FloorDiv
	FloorMod
	Min
	Max

	EQ
	NE
	LT
	LE
	GT
	GE

	And
	Or
)

// IsCompare returns true if the operator is a comparison.
func (op BinaryOp) IsCompare() bool {
	return op >= EQ && op <= GE
}

// IsLogical returns true if the operator combines booleans.
func (op BinaryOp) IsLogical() bool {
	return op == And || op == Or
}

// String returns the source representation of the operator.
func (op BinaryOp) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Mod:
		return "%"
	case FloorDiv:
		return "floordiv"
	case FloorMod:
		return "floormod"
	case Min:
		return "min"
	case Max:
		return "max"
	case EQ:
		return "=="
	case NE:
		return "!="
	case LT:
		return "<"
	case LE:
		return "<="
	case GT:
		return ">"
	case GE:
		return ">="
	case And:
		return "&&"
	case Or:
		return "||"
	}
	return "invalid"
}

// CallKind describes how a call node is lowered.
type CallKind int

// Kinds of call nodes.
const (
	// Extern is a call to an external function.
	Extern CallKind = iota
	// PureExtern is a call to an external function with no side effect.
	PureExtern
	// Intrinsic is a call to a builtin operation.
	Intrinsic
	// PureIntrinsic is a call to a builtin operation with no side effect.
	// It is the only kind emitted by the op factories.
	PureIntrinsic
)

// String returns a string representation of the call kind.
func (k CallKind) String() string {
	switch k {
	case Extern:
		return "extern"
	case PureExtern:
		return "pure_extern"
	case Intrinsic:
		return "intrinsic"
	case PureIntrinsic:
		return "pure_intrinsic"
	}
	return "invalid"
}

type (
	// Expr is an expression node returning a typed result.
	Expr interface {
		Type() dtype.DataType
		String() string
		node()
	}

	// IntImm is a signed integer literal.
	IntImm struct {
		Typ   dtype.DataType
		Value int64
	}

	// UintImm is an unsigned integer literal.
	// Boolean literals are UintImm nodes of a boolean type
	// holding zero or one.
	UintImm struct {
		Typ   dtype.DataType
		Value uint64
	}

	// FloatImm is a floating point literal.
	FloatImm struct {
		Typ   dtype.DataType
		Value float64
	}

	// Var is a named scalar variable.
	Var struct {
		Name string
		Typ  dtype.DataType
	}

	// Broadcast replicates a scalar expression across vector lanes.
	Broadcast struct {
		Value Expr
		Lanes int
	}

	// Cast converts an expression to another type, preserving values.
	Cast struct {
		Typ   dtype.DataType
		Value Expr
	}

	// Binary is an operator with two arguments.
	Binary struct {
		Op   BinaryOp
		X, Y Expr
	}

	// Not is the logical negation of a boolean expression.
	Not struct {
		X Expr
	}

	// Select picks between two values depending on a condition.
	Select struct {
		Cond       Expr
		TrueValue  Expr
		FalseValue Expr
	}

	// Call is an expression calling a named operation.
	Call struct {
		Typ  dtype.DataType
		Name string
		Args []Expr
		Kind CallKind
	}

	// Range is a half-open interval of iteration values.
	Range struct {
		Min    Expr
		Extent Expr
	}

	// IterVar is one bound variable of a reduction iteration domain.
	// The same domain variable may appear in several sibling reduce
	// expressions describing one fused reduction.
	IterVar struct {
		Var *Var
		Dom *Range
	}

	// CommReducer describes a commutative combination: formal accumulator
	// and increment parameters, the combination expressions, and the
	// identity element of each combination. All four lists have the
	// same arity.
	CommReducer struct {
		Lhs             []*Var
		Rhs             []*Var
		Result          []Expr
		IdentityElement []Expr
	}

	// Reduce combines the source expressions over a reduction domain.
	Reduce struct {
		Combiner   *CommReducer
		Source     []Expr
		Axis       []*IterVar
		Condition  Expr
		ValueIndex int
	}
)

var (
	_ Expr = (*IntImm)(nil)
	_ Expr = (*UintImm)(nil)
	_ Expr = (*FloatImm)(nil)
	_ Expr = (*Var)(nil)
	_ Expr = (*Broadcast)(nil)
	_ Expr = (*Cast)(nil)
	_ Expr = (*Binary)(nil)
	_ Expr = (*Not)(nil)
	_ Expr = (*Select)(nil)
	_ Expr = (*Call)(nil)
	_ Expr = (*Reduce)(nil)
)

func (*IntImm) node()    {}
func (*UintImm) node()   {}
func (*FloatImm) node()  {}
func (*Var) node()       {}
func (*Broadcast) node() {}
func (*Cast) node()      {}
func (*Binary) node()    {}
func (*Not) node()       {}
func (*Select) node()    {}
func (*Call) node()      {}
func (*Reduce) node()    {}

// Type returns the type of the literal.
func (e *IntImm) Type() dtype.DataType { return e.Typ }

// Type returns the type of the literal.
func (e *UintImm) Type() dtype.DataType { return e.Typ }

// Type returns the type of the literal.
func (e *FloatImm) Type() dtype.DataType { return e.Typ }

// Type returns the type of the variable.
func (e *Var) Type() dtype.DataType { return e.Typ }

// Type returns the element type replicated across the lanes.
func (e *Broadcast) Type() dtype.DataType {
	return e.Value.Type().WithLanes(e.Lanes)
}

// Type returns the target type of the cast.
func (e *Cast) Type() dtype.DataType { return e.Typ }

// Type returns the result type of the operator.
// Comparisons return a boolean with the lane count of their operands;
// every other operator returns the type its operands share.
func (e *Binary) Type() dtype.DataType {
	if e.Op.IsCompare() {
		return dtype.Bool(e.X.Type().Lanes)
	}
	return e.X.Type()
}

// Type returns the type of the negated operand.
func (e *Not) Type() dtype.DataType { return e.X.Type() }

// Type returns the type shared by the two branches.
func (e *Select) Type() dtype.DataType { return e.TrueValue.Type() }

// Type returns the return type of the call.
func (e *Call) Type() dtype.DataType { return e.Typ }

// Type returns the type of the selected reduction result.
func (e *Reduce) Type() dtype.DataType {
	return e.Source[e.ValueIndex].Type()
}

// Arity returns the number of values combined by the reducer.
func (r *CommReducer) Arity() int {
	return len(r.Result)
}
