// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher produces and checks one-way password digests.
//
// Hash salts every call, so hashing the same plaintext twice yields two
// different digests. Verify recomputes the digest using the salt and cost
// embedded in digest and compares in constant time.
type PasswordHasher interface {
	// Hash returns the salted digest of plaintext.
	Hash(ctx context.Context, plaintext string) (string, error)

	// Verify reports whether plaintext matches digest. A malformed digest
	// never matches.
	Verify(ctx context.Context, plaintext, digest string) bool
}
