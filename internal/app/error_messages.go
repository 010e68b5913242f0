// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-blog server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgMissingCredentials is returned when username or password is empty
	// or otherwise unusable.
	MsgMissingCredentials = "missing username or password"

	// MsgInvalidCredentials is returned for both an unknown username and a
	// wrong password.
	MsgInvalidCredentials = "invalid credentials"

	// MsgUsernameTaken is returned when a registration attempt is rejected
	// because the requested username is already in use.
	MsgUsernameTaken = "username already taken"

	// MsgUserRegistered is the body of a successful registration.
	MsgUserRegistered = "user registered"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgRequestTimeout is returned when the request deadline passes before
	// the store answers.
	MsgRequestTimeout = "request timed out"

	// MsgAccessDenied is returned when a protected route is called without
	// a bearer token.
	MsgAccessDenied = "access denied"

	// MsgInvalidToken is returned when the presented token is malformed,
	// forged or expired.
	MsgInvalidToken = "invalid token"

	// MsgInvalidPostID is returned when the :id path parameter is not a
	// positive integer.
	MsgInvalidPostID = "invalid post id"

	// MsgPostNotFound is returned when no post has the requested id.
	MsgPostNotFound = "Post not found"

	// MsgPostDeleted is the message of a successful delete.
	MsgPostDeleted = "Post deleted"

	// MsgTooManyRequests is returned by the rate limiter.
	MsgTooManyRequests = "Too many requests from this IP, please try again later."
)
