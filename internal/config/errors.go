// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrEmptyTokenSignKey indicates that no token signing secret was provided.
	ErrEmptyTokenSignKey = errors.New("token sign key is required")
	// ErrInvalidTokenDuration indicates a zero or negative token lifetime.
	ErrInvalidTokenDuration = errors.New("token duration must be positive")
	// ErrInvalidPasswordHashCost indicates a bcrypt cost outside [4, 31].
	ErrInvalidPasswordHashCost = errors.New("password hash cost is out of range")
	// ErrEmptyDSN indicates that no database DSN was provided.
	ErrEmptyDSN = errors.New("database DSN is required")
	// ErrEmptyHTTPAddress indicates that no listen address was provided.
	ErrEmptyHTTPAddress = errors.New("http address is required")
	// ErrInvalidRateLimit indicates a non-positive request count or window.
	ErrInvalidRateLimit = errors.New("invalid rate limit configuration")
)
