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

package dtype

import "github.com/gx-org/backend/dtype"

// DType converts the descriptor into a backend array data type.
// Only scalar kinds with a backend equivalent convert; every other
// descriptor, including all vector types, maps to dtype.Invalid.
func (t DataType) DType() dtype.DataType {
	if t.Lanes != 1 {
		return dtype.Invalid
	}
	switch t.Kind {
	case BoolKind:
		return dtype.Bool
	case IntKind:
		switch t.Bits {
		case 32:
			return dtype.Int32
		case 64:
			return dtype.Int64
		}
	case UintKind:
		switch t.Bits {
		case 32:
			return dtype.Uint32
		case 64:
			return dtype.Uint64
		}
	case FloatKind:
		// The backend has no IEEE half type: float16 does not convert.
		switch t.Bits {
		case 32:
			return dtype.Float32
		case 64:
			return dtype.Float64
		}
	}
	return dtype.Invalid
}
