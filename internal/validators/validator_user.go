// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	"github.com/MKhiriev/go-blog/internal/crypto"
	"github.com/MKhiriev/go-blog/models"
)

const (
	FieldUsername = "username"
	FieldPassword = "password"
)

// MaxPasswordLength is the longest password, in bytes, the password hasher
// accepts.
const MaxPasswordLength = crypto.MaxPasswordLength

// UserValidator checks credentials submitted to register or login.
type UserValidator struct{}

func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate accepts models.User or *models.User. Without fields both the
// username and the password are checked.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(value, fields...)
	case *models.User:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateUser(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUser(user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if user.Username == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrEmptyPassword
			}
			if len(user.Password) > MaxPasswordLength {
				return ErrPasswordTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
