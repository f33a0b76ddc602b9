// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, HTTP response
// writing, HTTP client initialization, identifier generation, and JWT token
// generation and validation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UIDCtxKey is the key used to store the authenticated user's uid in the
// context. The auth middleware writes it; handlers read it with
// GetUIDFromContext.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.UIDCtxKey, "firebase-uid")
var UIDCtxKey = contextKey("uid")

// GetUIDFromContext retrieves the authenticated uid from the context.
//
// Returns the uid and an ok flag:
//   - ok == true : value is found, is a string and is not empty
//   - ok == false: value is missing, empty or has an unexpected type
func GetUIDFromContext(ctx context.Context) (string, bool) {
	uid, ok := ctx.Value(UIDCtxKey).(string)
	if !ok || uid == "" {
		return "", false
	}
	return uid, true
}

// WithUID returns a copy of ctx carrying uid under [UIDCtxKey].
func WithUID(ctx context.Context, uid string) context.Context {
	return context.WithValue(ctx, UIDCtxKey, uid)
}
