// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

// AuthService registers users and logs them in.
type AuthService interface {
	// RegisterUser validates the credentials, hashes the password and stores
	// the user. A taken username yields store.ErrUsernameAlreadyExists.
	RegisterUser(ctx context.Context, user models.User) (models.User, error)

	// Login checks the credentials and issues a session token. An unknown
	// username and a wrong password both yield ErrInvalidCredentials.
	Login(ctx context.Context, user models.User) (models.Token, error)
}

// TokenService issues and verifies stateless session tokens.
type TokenService interface {
	Issue(ctx context.Context, user models.User) (models.Token, error)
	Verify(ctx context.Context, tokenString string) (models.Identity, error)
}

type PostService interface {
	ListPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, id int64) (models.Post, error)
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	UpdatePost(ctx context.Context, post models.Post) (models.Post, error)
	DeletePost(ctx context.Context, id int64) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// PostServiceWrapper defines middleware composition for PostService.
// Implementations wrap an existing PostService to add behavior such as
// validation.
type PostServiceWrapper interface {
	Wrap(PostService) PostService
}
