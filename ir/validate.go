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
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Validate checks that the reducer parameter, combination, and identity
// lists all have the same arity. All violations are reported, not just
// the first one.
func (r *CommReducer) Validate() error {
	var errs error
	arity := r.Arity()
	if len(r.Lhs) != arity {
		errs = multierr.Append(errs, errors.Errorf("reducer has %d accumulator parameters for %d combination results", len(r.Lhs), arity))
	}
	if len(r.Rhs) != arity {
		errs = multierr.Append(errs, errors.Errorf("reducer has %d increment parameters for %d combination results", len(r.Rhs), arity))
	}
	if len(r.IdentityElement) != arity {
		errs = multierr.Append(errs, errors.Errorf("reducer has %d identity elements for %d combination results", len(r.IdentityElement), arity))
	}
	return errs
}

// Validate checks the structural invariants of the reduction:
// a consistent combiner, one source per combination, a value index
// selecting an existing source, and a boolean condition.
func (r *Reduce) Validate() error {
	var errs error
	if r.Combiner == nil {
		return errors.Errorf("reduce node has no combiner")
	}
	if err := r.Combiner.Validate(); err != nil {
		errs = multierr.Append(errs, err)
	}
	if len(r.Source) != r.Combiner.Arity() {
		errs = multierr.Append(errs, errors.Errorf("reduce node has %d sources for a combiner of arity %d", len(r.Source), r.Combiner.Arity()))
	}
	if r.ValueIndex < 0 || r.ValueIndex >= len(r.Source) {
		errs = multierr.Append(errs, errors.Errorf("reduce value index %d out of range for %d sources", r.ValueIndex, len(r.Source)))
	}
	if r.Condition != nil && !r.Condition.Type().IsBool() {
		errs = multierr.Append(errs, errors.Errorf("reduce condition has type %s: want a boolean", r.Condition.Type()))
	}
	return errs
}
