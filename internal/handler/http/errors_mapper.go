// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-blog/internal/app"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/store"
)

// errorResponse is the status and client-facing message written for an error.
type errorResponse struct {
	status  int
	message string
}

var errorResponseMap = map[error]errorResponse{
	service.ErrInvalidDataProvided: {http.StatusBadRequest, app.MsgMissingCredentials},
	service.ErrInvalidCredentials:  {http.StatusBadRequest, app.MsgInvalidCredentials},
	service.ErrInvalidPostID:       {http.StatusBadRequest, app.MsgInvalidPostID},

	ErrEmptyAuthorizationHeader:   {http.StatusUnauthorized, app.MsgAccessDenied},
	ErrInvalidAuthorizationHeader: {http.StatusUnauthorized, app.MsgAccessDenied},
	ErrEmptyToken:                 {http.StatusUnauthorized, app.MsgAccessDenied},

	service.ErrTokenMalformed: {http.StatusForbidden, app.MsgInvalidToken},
	service.ErrTokenInvalid:   {http.StatusForbidden, app.MsgInvalidToken},
	service.ErrTokenExpired:   {http.StatusForbidden, app.MsgInvalidToken},

	store.ErrUsernameAlreadyExists: {http.StatusConflict, app.MsgUsernameTaken},
	store.ErrPostNotFound:          {http.StatusNotFound, app.MsgPostNotFound},

	context.DeadlineExceeded: {http.StatusGatewayTimeout, app.MsgRequestTimeout},
}

// responseFromError maps err onto its status and message. Anything not
// listed is an internal error and its details stay in the log.
func responseFromError(err error) errorResponse {
	for target, resp := range errorResponseMap {
		if errors.Is(err, target) {
			return resp
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

func statusFromError(err error) int {
	return responseFromError(err).status
}

// writeError writes the short text body for err.
func writeError(w http.ResponseWriter, err error) {
	resp := responseFromError(err)
	http.Error(w, resp.message, resp.status)
}
