// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername   = errors.New("username is required")
	ErrEmptyPassword   = errors.New("password is required")
	ErrPasswordTooLong = errors.New("password must not be longer than 72 bytes")
	ErrInvalidPostID   = errors.New("post id must be a positive integer")
)
