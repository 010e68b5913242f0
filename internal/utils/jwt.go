// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-blog/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrInvalidJWTParams is returned by GenerateJWTToken when the issuer,
	// duration or sign key is missing, or the user has no ID.
	ErrInvalidJWTParams = errors.New("invalid params for generating JWT token")

	// ErrSubjectMismatch is returned by ValidateAndParseJWTToken when the
	// sub claim is absent or does not name the user ID carried in the token.
	ErrSubjectMismatch = errors.New("token subject does not match user id")
)

// BearerScheme is the Authorization header scheme that carries session tokens.
const BearerScheme = "Bearer"

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token for user.
//
// The token includes the following claims:
//   - id, username: the subject identity
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID encoded as a string
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//   - ID        (jti): a random UUID, unique per issuance
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("go-blog", user, time.Hour, "secret")
func GenerateJWTToken(issuer string, user models.User, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration <= 0 || signKey == "" || user.UserID == 0 {
		return models.Token{}, ErrInvalidJWTParams
	}

	now := time.Now()
	claims := &models.Claims{
		UserID:   user.UserID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(user.UserID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Claims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Signing method: only HS256 is accepted
//   - Signature verification using the provided sign key
//   - Expiration (exp) claim presence and check
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Subject (sub) claim matching the id claim
//
// Errors from the jwt package are wrapped, so callers can classify them with
// errors.Is against jwt.ErrTokenMalformed, jwt.ErrTokenSignatureInvalid,
// jwt.ErrTokenExpired and friends.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	claims := &models.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" || claims.Subject != strconv.FormatInt(claims.UserID, 10) {
		return models.Token{}, ErrSubjectMismatch
	}

	return models.Token{Claims: claims, SignedString: tokenString}, nil
}
