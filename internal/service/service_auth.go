// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-blog/internal/crypto"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
)

// dummyPassword is hashed once and compared against when a login names an
// unknown user, so that path costs one bcrypt comparison like a wrong
// password does.
const dummyPassword = "go-blog-dummy-password"

// authService is the concrete implementation of AuthService.
// It handles user registration and credential verification using a
// UserRepository for persistence, a PasswordHasher for digests and a
// TokenService for issuing session tokens.
type authService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	tokenService   TokenService
	validator      validators.Validator

	dummyHashOnce sync.Once
	dummyHash     string

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService.
//
// The returned service is safe for concurrent use.
func NewAuthService(
	userRepository store.UserRepository,
	hasher crypto.PasswordHasher,
	tokenService TokenService,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokenService:   tokenService,
		validator:      validators.NewUserValidator(),
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// Returns the persisted user (with a server-assigned UserID and no
// plaintext password) or:
//   - ErrInvalidDataProvided if Username or Password is empty, or the
//     password is too long to hash.
//   - store.ErrUsernameAlreadyExists (wrapped) if the username is taken.
//   - any other wrapped error for hashing or storage failures.
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, user); err != nil {
		log.Debug().Err(err).Str("username", user.Username).Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	digest, err := a.hasher.Hash(ctx, user.Password)
	if err != nil {
		log.Err(err).Msg("error hashing password")
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	user.PasswordHash = digest
	user.Password = ""

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user and issues a session token.
//
// Returns the token or:
//   - ErrInvalidDataProvided if Username or Password is empty.
//   - ErrInvalidCredentials if the user does not exist or the password
//     does not match. The two cases are indistinguishable to the caller.
//   - a wrapped storage or token error otherwise.
func (a *authService) Login(ctx context.Context, user models.User) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, user); err != nil {
		log.Debug().Err(err).Str("username", user.Username).Msg("invalid user data provided")
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, user.Username)
	if errors.Is(err, store.ErrUserNotFound) {
		a.hasher.Verify(ctx, user.Password, a.getDummyHash(ctx))
		log.Info().Str("username", user.Username).Msg("login for unknown user")
		return models.Token{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user search by username failed")
		return models.Token{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !a.hasher.Verify(ctx, user.Password, foundUser.PasswordHash) {
		log.Info().Int64("id", foundUser.UserID).Msg("wrong password")
		return models.Token{}, ErrInvalidCredentials
	}

	token, err := a.tokenService.Issue(ctx, foundUser)
	if err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("error issuing token")
		return models.Token{}, err
	}

	return token, nil
}

func (a *authService) getDummyHash(ctx context.Context) string {
	a.dummyHashOnce.Do(func() {
		digest, err := a.hasher.Hash(ctx, dummyPassword)
		if err != nil {
			a.logger.Err(err).Msg("error hashing dummy password")
			return
		}
		a.dummyHash = digest
	})

	return a.dummyHash
}
