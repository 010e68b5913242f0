// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/repository_mock.go -package=mock

// UserRepository is the credential store.
type UserRepository interface {
	// CreateUser inserts user and returns it with the store-assigned UserID.
	// A taken username yields [ErrUsernameAlreadyExists] and no row is
	// written.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns the user with the given username or
	// [ErrUserNotFound].
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// PostRepository stores blog posts.
type PostRepository interface {
	ListPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, id int64) (models.Post, error)
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	UpdatePost(ctx context.Context, post models.Post) error
	DeletePost(ctx context.Context, id int64) error
}

// ErrorClassificator maps a driver error onto an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
