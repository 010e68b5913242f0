// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
)

// postRepository is the SQL implementation of [PostRepository] over the
// "posts" table.
type postRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		db:     db,
		logger: logger,
	}
}

// ListPosts returns every post ordered by id. An empty table yields an
// empty, non-nil slice.
func (r *postRepository) ListPosts(ctx context.Context) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListPostsQuery(r.db.builder)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.ListPosts").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.ListPosts").Msg("error selecting posts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0)
	for rows.Next() {
		var p models.Post
		if err = rows.Scan(&p.ID, &p.Title, &p.Content, &p.Author); err != nil {
			log.Err(err).Str("func", "*postRepository.ListPosts").Msg("error scanning post")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		posts = append(posts, p)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*postRepository.ListPosts").Msg("error iterating posts")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return posts, nil
}

func (r *postRepository) GetPost(ctx context.Context, id int64) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetPostQuery(r.db.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.GetPost").Msg("error building query")
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var p models.Post
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&p.ID, &p.Title, &p.Content, &p.Author)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Post{}, ErrPostNotFound
	case err != nil:
		log.Err(err).Str("func", "*postRepository.GetPost").Int64("id", id).Msg("error selecting post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return p, nil
}

// CreatePost inserts post and returns it with the store-assigned ID. Any ID
// already set on post is ignored.
func (r *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreatePostQuery(r.db.builder, post)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("error building query")
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&post.ID); err != nil {
		log.Err(err).Str("func", "*postRepository.CreatePost").Msg("error inserting post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return post, nil
}

// UpdatePost overwrites title, content and author of the post with
// post.ID. Updating an id that does not exist is not an error.
func (r *postRepository) UpdatePost(ctx context.Context, post models.Post) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePostQuery(r.db.builder, post)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.UpdatePost").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*postRepository.UpdatePost").Int64("id", post.ID).Msg("error updating post")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// DeletePost removes the post with id. Deleting an id that does not exist
// is not an error.
func (r *postRepository) DeletePost(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeletePostQuery(r.db.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.DeletePost").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*postRepository.DeletePost").Int64("id", id).Msg("error deleting post")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
