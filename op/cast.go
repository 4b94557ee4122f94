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
	"github.com/gx-org/tir/dtype"
	"github.com/gx-org/tir/ir"
)

// Cast converts a value to a type. Casting to the type the value already
// has returns the value itself. Literals are retyped directly instead of
// being wrapped in a cast node. Casting a scalar to a vector type casts
// the scalar to the element type, then broadcasts it. Casting between
// vectors requires equal lane counts.
func Cast(t dtype.DataType, value ir.Expr) ir.Expr {
	if value.Type() == t {
		return value
	}
	if t.Lanes == 1 {
		switch imm := value.(type) {
		case *ir.IntImm:
			return Const(t, imm.Value)
		case *ir.UintImm:
			return Const(t, imm.Value)
		case *ir.FloatImm:
			return Const(t, imm.Value)
		}
		return &ir.Cast{Typ: t, Value: value}
	}
	if value.Type().Lanes == 1 {
		elem := t.Element()
		if value.Type() != elem {
			switch imm := value.(type) {
			case *ir.IntImm:
				value = Const(elem, imm.Value)
			case *ir.UintImm:
				value = Const(elem, imm.Value)
			case *ir.FloatImm:
				value = Const(elem, imm.Value)
			default:
				value = &ir.Cast{Typ: elem, Value: value}
			}
		}
		return &ir.Broadcast{Value: value, Lanes: t.Lanes}
	}
	if value.Type().Lanes != t.Lanes {
		fatalf("cannot cast %s to %s: lane counts differ", value.Type(), t)
	}
	return &ir.Cast{Typ: t, Value: value}
}

// Reinterpret returns the bits of a value read back as another type.
// Unlike Cast, the value is not preserved. Reinterpreting to the type
// the value already has returns the value itself.
func Reinterpret(t dtype.DataType, value ir.Expr) ir.Expr {
	if value.Type() == t {
		return value
	}
	return pureIntrinsic(t, ReinterpretIntrinsic, value)
}
