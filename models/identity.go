// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Identity is the authenticated caller attached to a request after its
// bearer token has been verified. It lives for one request only.
type Identity struct {
	UserID   int64  `json:"id"`
	Username string `json:"username"`
}
