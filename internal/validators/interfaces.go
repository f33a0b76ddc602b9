// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before services act on them.
//
// Services depend on the [Validator] interface only; [RequestValidator] is
// the implementation backed by go-playground/validator struct tags, with the
// failures mapped to the sentinel errors of this package.
package validators

import "context"

// Validator validates a request value. Passing field names restricts the
// check to those fields.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
