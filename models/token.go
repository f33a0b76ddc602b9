// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set carried by every access token.
//
// The payload keeps the `{"id": uid}` shape the web client already decodes,
// next to the standard registered claims (iss, iat, exp).
type TokenClaims struct {
	UID string `json:"id"`

	jwt.RegisteredClaims
}

// Token is an issued or parsed access token.
type Token struct {
	// Token is the underlying JWT. Nil for tokens built in tests.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS form sent in the x-access-token header.
	SignedString string `json:"-"`

	// UID is the user the token was issued for.
	UID string `json:"-"`

	// ExpiresAt is the moment the token stops being accepted.
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
func (t Token) String() string {
	return t.SignedString
}
