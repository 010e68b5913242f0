// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-blog/models"
)

var (
	dollar   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	question = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func TestBuildQueries(t *testing.T) {
	user := models.User{Username: "alice", PasswordHash: "hash"}
	post := models.Post{ID: 7, Title: "t", Content: "c", Author: "a"}

	tests := []struct {
		name         string
		build        func(b sq.StatementBuilderType) (string, []any, error)
		wantPostgres string
		wantSQLite   string
		wantArgs     []any
	}{
		{
			name:         "create user",
			build:        func(b sq.StatementBuilderType) (string, []any, error) { return buildCreateUserQuery(b, user) },
			wantPostgres: "INSERT INTO users (username,password_hash) VALUES ($1,$2) RETURNING id",
			wantSQLite:   "INSERT INTO users (username,password_hash) VALUES (?,?) RETURNING id",
			wantArgs:     []any{"alice", "hash"},
		},
		{
			name: "find user by username",
			build: func(b sq.StatementBuilderType) (string, []any, error) {
				return buildFindUserByUsernameQuery(b, "alice")
			},
			wantPostgres: "SELECT id, username, password_hash FROM users WHERE username = $1",
			wantSQLite:   "SELECT id, username, password_hash FROM users WHERE username = ?",
			wantArgs:     []any{"alice"},
		},
		{
			name:         "list posts",
			build:        buildListPostsQuery,
			wantPostgres: "SELECT id, title, content, author FROM posts ORDER BY id",
			wantSQLite:   "SELECT id, title, content, author FROM posts ORDER BY id",
		},
		{
			name:         "get post",
			build:        func(b sq.StatementBuilderType) (string, []any, error) { return buildGetPostQuery(b, 7) },
			wantPostgres: "SELECT id, title, content, author FROM posts WHERE id = $1",
			wantSQLite:   "SELECT id, title, content, author FROM posts WHERE id = ?",
			wantArgs:     []any{int64(7)},
		},
		{
			name:         "create post",
			build:        func(b sq.StatementBuilderType) (string, []any, error) { return buildCreatePostQuery(b, post) },
			wantPostgres: "INSERT INTO posts (title,content,author) VALUES ($1,$2,$3) RETURNING id",
			wantSQLite:   "INSERT INTO posts (title,content,author) VALUES (?,?,?) RETURNING id",
			wantArgs:     []any{"t", "c", "a"},
		},
		{
			name:         "update post",
			build:        func(b sq.StatementBuilderType) (string, []any, error) { return buildUpdatePostQuery(b, post) },
			wantPostgres: "UPDATE posts SET title = $1, content = $2, author = $3 WHERE id = $4",
			wantSQLite:   "UPDATE posts SET title = ?, content = ?, author = ? WHERE id = ?",
			wantArgs:     []any{"t", "c", "a", int64(7)},
		},
		{
			name:         "delete post",
			build:        func(b sq.StatementBuilderType) (string, []any, error) { return buildDeletePostQuery(b, 7) },
			wantPostgres: "DELETE FROM posts WHERE id = $1",
			wantSQLite:   "DELETE FROM posts WHERE id = ?",
			wantArgs:     []any{int64(7)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := tt.build(dollar)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPostgres, query)
			if tt.wantArgs == nil {
				assert.Empty(t, args)
			} else {
				assert.Equal(t, tt.wantArgs, args)
			}

			query, _, err = tt.build(question)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQLite, query)
		})
	}
}
