// Copyright 2024 The go-chainspec Authors
// This file is part of the go-chainspec library.
//
// The go-chainspec library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-chainspec library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-chainspec library. If not, see <http://www.gnu.org/licenses/>.

package spec

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownVariant is returned when a pricing object names a rule that
	// does not exist.
	ErrUnknownVariant = errors.New("unknown pricing variant")

	// ErrVariantCount is returned when a pricing object does not hold exactly
	// one rule.
	ErrVariantCount = errors.New("pricing must hold exactly one variant")

	// ErrMissingField is returned when a required field is absent or null.
	ErrMissingField = errors.New("missing required field")

	// ErrNoMatchingPricing is returned when the pricing of a builtin is neither
	// a single rule nor an activation schedule.
	ErrNoMatchingPricing = errors.New("data did not match a single pricing or an activation schedule")

	// ErrEmptySchedule is returned for an activation schedule without entries.
	// Parity accepted "pricing": {} as a builtin that is never active; here
	// every builtin must have at least one activation.
	ErrEmptySchedule = errors.New("activation schedule has no entries")
)

// DecodeError is returned when a builtin definition does not match the chain
// specification schema. No descriptor is produced alongside it.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid builtin definition: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func missingField(field, typ string) error {
	return fmt.Errorf("%w '%s' for %s", ErrMissingField, field, typ)
}
