// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-blog/internal/app"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/models"
)

// newHandlerWithAuth builds a Handler with the given AuthService mock.
func newHandlerWithAuth(auth service.AuthService) *Handler {
	return &Handler{
		services: &service.Services{AuthService: auth},
		logger:   logger.Nop(),
	}
}

const aliceBody = `{"username":"alice","password":"secret123"}`

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	var received models.User
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, u models.User) (models.User, error) {
			received = u
			u.UserID = 1
			return u, nil
		},
	}

	rec := httptest.NewRecorder()
	newHandlerWithAuth(auth).register(rec, httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(aliceBody)))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"user registered"}`, rec.Body.String())
	assert.Equal(t, models.User{Username: "alice", Password: "secret123"}, received)
}

func TestRegister_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "invalid JSON",
			body:       `{"username":`,
			wantStatus: http.StatusBadRequest,
			wantBody:   app.MsgInvalidJSON,
		},
		{
			name:       "missing fields",
			body:       `{"username":"alice"}`,
			serviceErr: fmt.Errorf("%w: empty password", service.ErrInvalidDataProvided),
			wantStatus: http.StatusBadRequest,
			wantBody:   app.MsgMissingCredentials,
		},
		{
			name:       "duplicate username",
			body:       aliceBody,
			serviceErr: fmt.Errorf("user creation ended with error: %w", store.ErrUsernameAlreadyExists),
			wantStatus: http.StatusConflict,
			wantBody:   app.MsgUsernameTaken,
		},
		{
			name:       "store failure",
			body:       aliceBody,
			serviceErr: fmt.Errorf("%w: connection reset", store.ErrExecutingQuery),
			wantStatus: http.StatusInternalServerError,
			wantBody:   app.MsgInternalServerError,
		},
		{
			name:       "hash failure",
			body:       aliceBody,
			serviceErr: errors.New("error hashing password"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   app.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				registerUserFn: func(context.Context, models.User) (models.User, error) {
					if tt.serviceErr == nil {
						t.Fatal("service must not be called")
					}
					return models.User{}, tt.serviceErr
				},
			}

			rec := httptest.NewRecorder()
			newHandlerWithAuth(auth).register(rec, httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, strings.TrimSpace(rec.Body.String()))
		})
	}
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, u models.User) (models.Token, error) {
			assert.Equal(t, "alice", u.Username)
			assert.Equal(t, "secret123", u.Password)
			return models.Token{SignedString: "signed.jwt.token"}, nil
		},
	}

	rec := httptest.NewRecorder()
	newHandlerWithAuth(auth).login(rec, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(aliceBody)))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "signed.jwt.token", resp.Token)
}

func TestLogin_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
		wantBody   string
	}{
		{"invalid JSON", `not json`, nil, http.StatusBadRequest, app.MsgInvalidJSON},
		{"missing fields", `{}`, service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgMissingCredentials},
		{"bad credentials", aliceBody, service.ErrInvalidCredentials, http.StatusBadRequest, app.MsgInvalidCredentials},
		{"store failure", aliceBody, fmt.Errorf("user search by username failed: %w", store.ErrExecutingQuery), http.StatusInternalServerError, app.MsgInternalServerError},
		{"token failure", aliceBody, service.ErrTokenCreationFailed, http.StatusInternalServerError, app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				loginFn: func(context.Context, models.User) (models.Token, error) {
					if tt.serviceErr == nil {
						t.Fatal("service must not be called")
					}
					return models.Token{}, tt.serviceErr
				},
			}

			rec := httptest.NewRecorder()
			newHandlerWithAuth(auth).login(rec, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, strings.TrimSpace(rec.Body.String()))
		})
	}
}
