// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidPostID       = errors.New("invalid post id")
)

// Token errors. Verify always returns one of ErrTokenMalformed,
// ErrTokenInvalid or ErrTokenExpired, wrapping the underlying cause.
var (
	// ErrTokenMalformed means the token is absent or is not a structurally
	// valid JWT.
	ErrTokenMalformed = errors.New("token is malformed")

	// ErrTokenInvalid means the signature does not match or the claims are
	// not ones this server issues.
	ErrTokenInvalid = errors.New("token is invalid")

	// ErrTokenExpired means the signature is valid but exp has passed.
	ErrTokenExpired = errors.New("token is expired")

	ErrTokenCreationFailed = errors.New("token creation failed")
)
