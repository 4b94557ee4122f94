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
	"slices"

	"golang.org/x/exp/maps"
)

// Names of the pure intrinsics the factories emit when an operation has no
// primitive node. Backends key their lowering rules on these names.
const (
	BitwiseAndIntrinsic  = "bitwise_and"
	BitwiseOrIntrinsic   = "bitwise_or"
	BitwiseXorIntrinsic  = "bitwise_xor"
	BitwiseNotIntrinsic  = "bitwise_not"
	ShiftLeftIntrinsic   = "shift_left"
	ShiftRightIntrinsic  = "shift_right"
	ReinterpretIntrinsic = "reinterpret"
	IfThenElseIntrinsic  = "if_then_else"
	LikelyIntrinsic      = "likely"

	FloorIntrinsic     = "floor"
	CeilIntrinsic      = "ceil"
	RoundIntrinsic     = "round"
	NearbyintIntrinsic = "nearbyint"
	TruncIntrinsic     = "trunc"
	FmodIntrinsic      = "fmod"
	PowIntrinsic       = "pow"
	FabsIntrinsic      = "fabs"
	IsNaNIntrinsic     = "isnan"
)

var intrinsics = map[string]bool{
	BitwiseAndIntrinsic:  true,
	BitwiseOrIntrinsic:   true,
	BitwiseXorIntrinsic:  true,
	BitwiseNotIntrinsic:  true,
	ShiftLeftIntrinsic:   true,
	ShiftRightIntrinsic:  true,
	ReinterpretIntrinsic: true,
	IfThenElseIntrinsic:  true,
	LikelyIntrinsic:      true,
	FloorIntrinsic:       true,
	CeilIntrinsic:        true,
	RoundIntrinsic:       true,
	NearbyintIntrinsic:   true,
	TruncIntrinsic:       true,
	FmodIntrinsic:        true,
	PowIntrinsic:         true,
	FabsIntrinsic:        true,
	IsNaNIntrinsic:       true,
}

// IsIntrinsic returns true if name is a pure intrinsic emitted by this
// package.
func IsIntrinsic(name string) bool {
	return intrinsics[name]
}

// Intrinsics returns the sorted names of all the pure intrinsics this
// package can emit.
func Intrinsics() []string {
	names := maps.Keys(intrinsics)
	slices.Sort(names)
	return names
}
