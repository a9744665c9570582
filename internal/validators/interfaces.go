// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators validates decoded request bodies before they reach the
// service layer.
//
// Rules are declared with `validate` struct tags on the models and checked
// by go-playground/validator. Callers may restrict a check to a subset of
// fields.
package validators

import "context"

// Validator validates the provided input and optionally restricts
// validation to the named struct fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
