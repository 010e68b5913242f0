// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
)

// PostValidationService rejects non-positive post ids with ErrInvalidPostID
// before they reach the wrapped PostService.
type PostValidationService struct {
	inner     PostService
	validator validators.Validator
}

func NewPostValidationService() PostServiceWrapper {
	return &PostValidationService{
		validator: validators.NewPostValidator(),
	}
}

func (v *PostValidationService) ListPosts(ctx context.Context) ([]models.Post, error) {
	return v.inner.ListPosts(ctx)
}

func (v *PostValidationService) GetPost(ctx context.Context, id int64) (models.Post, error) {
	if err := v.validator.Validate(ctx, id); err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrInvalidPostID, err)
	}

	return v.inner.GetPost(ctx, id)
}

// CreatePost does not validate: the id of a new post is assigned by the store.
func (v *PostValidationService) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	return v.inner.CreatePost(ctx, post)
}

func (v *PostValidationService) UpdatePost(ctx context.Context, post models.Post) (models.Post, error) {
	if err := v.validator.Validate(ctx, post); err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrInvalidPostID, err)
	}

	return v.inner.UpdatePost(ctx, post)
}

func (v *PostValidationService) DeletePost(ctx context.Context, id int64) error {
	if err := v.validator.Validate(ctx, id); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPostID, err)
	}

	return v.inner.DeletePost(ctx, id)
}

func (v *PostValidationService) Wrap(inner PostService) PostService {
	v.inner = inner
	return v
}
