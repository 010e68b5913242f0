// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordTooLong is returned by Hash when the plaintext exceeds
// [MaxPasswordLength] bytes.
var ErrPasswordTooLong = errors.New("password is longer than 72 bytes")

// MaxPasswordLength is the largest input bcrypt accepts.
const MaxPasswordLength = 72

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a [PasswordHasher] backed by bcrypt. A cost
// outside [bcrypt.MinCost, bcrypt.MaxCost] falls back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &bcryptHasher{cost: cost}
}

func (b *bcryptHasher) Hash(ctx context.Context, plaintext string) (string, error) {
	if len(plaintext) > MaxPasswordLength {
		return "", ErrPasswordTooLong
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), b.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

func (b *bcryptHasher) Verify(ctx context.Context, plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
