// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginResponse is the body returned by a successful login.
type LoginResponse struct {
	Token string `json:"token"`
}

// MessageResponse is a short human-readable status body.
type MessageResponse struct {
	Message string `json:"message"`
}

// DeletePostResponse is the body returned after a post is deleted.
type DeletePostResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}
