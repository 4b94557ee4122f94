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
	"math"

	"github.com/gx-org/tir/dtype"
	"github.com/gx-org/tir/ir"
)

// Half-precision IEEE floats have no Go representation: the finite
// extrema are fixed literals.
const maxFloat16 = 65504.0

// MaxValue returns the largest representable literal of a scalar type.
func MaxValue(t dtype.DataType) ir.Expr {
	if t.Lanes != 1 {
		fatalf("cannot decide max_value for non-scalar type %s", t)
	}
	switch {
	case t.IsInt():
		if t.Bits == 64 {
			return &ir.IntImm{Typ: t, Value: math.MaxInt64}
		}
		if t.Bits < 64 {
			return &ir.IntImm{Typ: t, Value: (int64(1) << (t.Bits - 1)) - 1}
		}
	case t.IsUint():
		if t.Bits == 64 {
			return &ir.UintImm{Typ: t, Value: math.MaxUint64}
		}
		if t.Bits < 64 {
			return &ir.UintImm{Typ: t, Value: (uint64(1) << t.Bits) - 1}
		}
	case t.IsFloat():
		switch t.Bits {
		case 64:
			return &ir.FloatImm{Typ: t, Value: math.MaxFloat64}
		case 32:
			return &ir.FloatImm{Typ: t, Value: math.MaxFloat32}
		case 16:
			return &ir.FloatImm{Typ: t, Value: maxFloat16}
		}
	}
	fatalf("cannot decide max_value for type %s", t)
	return nil
}

// MinValue returns the smallest representable literal of a scalar type.
func MinValue(t dtype.DataType) ir.Expr {
	if t.Lanes != 1 {
		fatalf("cannot decide min_value for non-scalar type %s", t)
	}
	switch {
	case t.IsInt():
		if t.Bits == 64 {
			return &ir.IntImm{Typ: t, Value: math.MinInt64}
		}
		if t.Bits < 64 {
			return &ir.IntImm{Typ: t, Value: -(int64(1) << (t.Bits - 1))}
		}
	case t.IsUint():
		return &ir.UintImm{Typ: t, Value: 0}
	case t.IsFloat():
		switch t.Bits {
		case 64:
			return &ir.FloatImm{Typ: t, Value: -math.MaxFloat64}
		case 32:
			return &ir.FloatImm{Typ: t, Value: -math.MaxFloat32}
		case 16:
			return &ir.FloatImm{Typ: t, Value: -maxFloat16}
		}
	}
	fatalf("cannot decide min_value for type %s", t)
	return nil
}
