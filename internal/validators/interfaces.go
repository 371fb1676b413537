// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks inbound payloads of the reference notes server
// before they reach storage.
//
// A Validator accepts the value and, optionally, the names of the fields to
// check; with no names every known field is checked.
package validators

import "context"

// Validator validates the provided input, optionally restricted to the
// named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
