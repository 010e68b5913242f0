// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants required at startup. Every violation is reported, joined.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.App.TokenSignKey == "" {
		errs = append(errs, ErrEmptyTokenSignKey)
	}
	if cfg.App.TokenDuration <= 0 {
		errs = append(errs, ErrInvalidTokenDuration)
	}
	if cfg.App.PasswordHashCost < bcrypt.MinCost || cfg.App.PasswordHashCost > bcrypt.MaxCost {
		errs = append(errs, ErrInvalidPasswordHashCost)
	}
	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, ErrEmptyDSN)
	}
	if cfg.Server.HTTPAddress == "" {
		errs = append(errs, ErrEmptyHTTPAddress)
	}
	if cfg.Server.RateLimit.Requests <= 0 || cfg.Server.RateLimit.Window <= 0 {
		errs = append(errs, ErrInvalidRateLimit)
	}

	return errors.Join(errs...)
}
