// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the shape of bundle artifacts: the encoder
// manifest and encrypted records.
//
// A Validator accepts a value and an optional list of field names. With no
// fields a default set is checked; with fields only the named checks run.
// Validation never needs a key, so a record that passes may still fail to
// decrypt.
package validators

import "context"

// Validator validates a bundle artifact, optionally restricted to the named
// fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
