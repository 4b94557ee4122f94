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

// Package dtype describes the numeric types carried by tensor IR expressions.
//
// A DataType is a plain value: two descriptors are the same type exactly when
// their kind, bit width, and lane count are all equal, so descriptors can be
// compared with ==.
package dtype

import "fmt"

// Kind of a numeric type.
type Kind uint8

// Kinds of data supported by the IR.
const (
	InvalidKind Kind = iota
	IntKind
	UintKind
	FloatKind
	BoolKind
)

// String returns a string representation of a kind.
func (k Kind) String() string {
	switch k {
	case IntKind:
		return "int"
	case UintKind:
		return "uint"
	case FloatKind:
		return "float"
	case BoolKind:
		return "bool"
	}
	return "invalid"
}

// DataType describes a scalar or vector numeric type.
// A scalar has Lanes == 1; a vector is the element type
// replicated across Lanes parallel lanes.
type DataType struct {
	Kind  Kind
	Bits  int
	Lanes int
}

// Int returns a signed integer type.
func Int(bits, lanes int) DataType {
	return DataType{Kind: IntKind, Bits: bits, Lanes: lanes}
}

// UInt returns an unsigned integer type.
func UInt(bits, lanes int) DataType {
	return DataType{Kind: UintKind, Bits: bits, Lanes: lanes}
}

// Float returns a floating point type.
func Float(bits, lanes int) DataType {
	return DataType{Kind: FloatKind, Bits: bits, Lanes: lanes}
}

// Bool returns a boolean type.
func Bool(lanes int) DataType {
	return DataType{Kind: BoolKind, Bits: 1, Lanes: lanes}
}

// IsInt returns true if the type is a signed integer.
func (t DataType) IsInt() bool { return t.Kind == IntKind }

// IsUint returns true if the type is an unsigned integer.
func (t DataType) IsUint() bool { return t.Kind == UintKind }

// IsFloat returns true if the type is a float.
func (t DataType) IsFloat() bool { return t.Kind == FloatKind }

// IsBool returns true if the type is a boolean.
func (t DataType) IsBool() bool { return t.Kind == BoolKind }

// IsScalar returns true if the type has a single lane.
func (t DataType) IsScalar() bool { return t.Lanes == 1 }

// IsVector returns true if the type has more than one lane.
func (t DataType) IsVector() bool { return t.Lanes > 1 }

// Element returns the scalar element type of the type.
func (t DataType) Element() DataType {
	return t.WithLanes(1)
}

// WithLanes returns the same element type with a different lane count.
func (t DataType) WithLanes(lanes int) DataType {
	return DataType{Kind: t.Kind, Bits: t.Bits, Lanes: lanes}
}

// String returns a string representation of the type, for example
// int32, uint8, float32x4, or bool.
func (t DataType) String() string {
	var elem string
	if t.Kind == BoolKind {
		elem = "bool"
	} else {
		elem = fmt.Sprintf("%s%d", t.Kind, t.Bits)
	}
	if t.Lanes == 1 {
		return elem
	}
	return fmt.Sprintf("%sx%d", elem, t.Lanes)
}
