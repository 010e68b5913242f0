// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/models"
)

// postService passes post operations through to the repository.
type postService struct {
	postRepository store.PostRepository
	logger         *logger.Logger
}

// NewPostService returns a PostService over postRepository with id
// validation applied in front of it.
func NewPostService(postRepository store.PostRepository, logger *logger.Logger) PostService {
	inner := &postService{
		postRepository: postRepository,
		logger:         logger,
	}

	return NewPostValidationService().Wrap(inner)
}

func (s *postService) ListPosts(ctx context.Context) ([]models.Post, error) {
	posts, err := s.postRepository.ListPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing posts: %w", err)
	}

	return posts, nil
}

func (s *postService) GetPost(ctx context.Context, id int64) (models.Post, error) {
	post, err := s.postRepository.GetPost(ctx, id)
	if err != nil {
		return models.Post{}, fmt.Errorf("error getting post %d: %w", id, err)
	}

	return post, nil
}

func (s *postService) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	created, err := s.postRepository.CreatePost(ctx, post)
	if err != nil {
		return models.Post{}, fmt.Errorf("error creating post: %w", err)
	}

	logger.FromContext(ctx).Debug().Int64("id", created.ID).Msg("post created")
	return created, nil
}

// UpdatePost stores the new title, content and author and echoes post back.
// A missing id is not reported.
func (s *postService) UpdatePost(ctx context.Context, post models.Post) (models.Post, error) {
	if err := s.postRepository.UpdatePost(ctx, post); err != nil {
		return models.Post{}, fmt.Errorf("error updating post %d: %w", post.ID, err)
	}

	return post, nil
}

func (s *postService) DeletePost(ctx context.Context, id int64) error {
	if err := s.postRepository.DeletePost(ctx, id); err != nil {
		return fmt.Errorf("error deleting post %d: %w", id, err)
	}

	logger.FromContext(ctx).Debug().Int64("id", id).Msg("post deleted")
	return nil
}
