// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User represents a registered blog account.
//
// Password is only ever populated from an inbound request body and is
// never persisted; PasswordHash is the bcrypt digest stored in the
// "users" table and is never serialized.
type User struct {
	// UserID is the store-assigned identifier of the user.
	UserID int64 `json:"id,omitempty"`

	// Username is the unique login name. It is immutable after creation.
	Username string `json:"username"`

	// Password is the plaintext password received at registration or login.
	Password string `json:"password,omitempty"`

	// PasswordHash is the salted one-way digest of the password.
	PasswordHash string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Identity returns the request-scoped identity of the user.
func (u User) Identity() Identity {
	return Identity{
		UserID:   u.UserID,
		Username: u.Username,
	}
}
