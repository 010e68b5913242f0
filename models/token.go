// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload of a session token.
//
// UserID and Username identify the subject. The embedded
// [jwt.RegisteredClaims] carry sub (the user ID as a string), iss, iat, exp
// and jti.
type Claims struct {
	UserID   int64  `json:"id"`
	Username string `json:"username"`

	jwt.RegisteredClaims
}

// Identity returns the subject of the claims.
func (c *Claims) Identity() Identity {
	return Identity{
		UserID:   c.UserID,
		Username: c.Username,
	}
}

// Token is a signed session token together with the claims it carries.
type Token struct {
	// Claims holds the decoded or freshly issued claims.
	Claims *Claims `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
