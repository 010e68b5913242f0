// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-blog/internal/app"
	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/models"
)

// servePosts routes an authenticated request through the full router so
// that {id} path parameters are resolved by chi.
func servePosts(t *testing.T, posts *mockPostService, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	svcs := newTestServices()
	svcs.PostService = posts

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+testToken)
	rec := httptest.NewRecorder()

	NewHandler(svcs, config.Server{}, logger.Nop()).Init().ServeHTTP(rec, req)
	return rec
}

func TestListPosts(t *testing.T) {
	want := []models.Post{
		{ID: 1, Title: "first", Content: "hello", Author: "alice"},
		{ID: 2, Title: "second", Content: "again", Author: "bob"},
	}
	posts := &mockPostService{listFn: func(context.Context) ([]models.Post, error) { return want, nil }}

	rec := servePosts(t, posts, http.MethodGet, "/posts", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var got []models.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, want, got)
}

func TestListPosts_EmptyIsArray(t *testing.T) {
	posts := &mockPostService{listFn: func(context.Context) ([]models.Post, error) { return nil, nil }}

	rec := servePosts(t, posts, http.MethodGet, "/posts", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListPosts_StoreError(t *testing.T) {
	posts := &mockPostService{listFn: func(context.Context) ([]models.Post, error) {
		return nil, fmt.Errorf("error listing posts: %w", store.ErrExecutingQuery)
	}}

	rec := servePosts(t, posts, http.MethodGet, "/posts", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, app.MsgInternalServerError, strings.TrimSpace(rec.Body.String()))
}

func TestGetPost(t *testing.T) {
	posts := &mockPostService{getFn: func(_ context.Context, id int64) (models.Post, error) {
		return models.Post{ID: id, Title: "t", Content: "c", Author: "a"}, nil
	}}

	rec := servePosts(t, posts, http.MethodGet, "/posts/7", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":7,"title":"t","content":"c","author":"a"}`, rec.Body.String())
}

func TestGetPost_Errors(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		serviceErr error
		wantStatus int
	}{
		{"not numeric", "/posts/abc", nil, http.StatusBadRequest},
		{"overflow", "/posts/99999999999999999999", nil, http.StatusBadRequest},
		{"non-positive", "/posts/0", service.ErrInvalidPostID, http.StatusBadRequest},
		{"not found", "/posts/42", store.ErrPostNotFound, http.StatusNotFound},
		{"store failure", "/posts/42", store.ErrScanningRow, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			posts := &mockPostService{getFn: func(context.Context, int64) (models.Post, error) {
				if tt.serviceErr == nil {
					t.Fatal("service must not be called")
				}
				return models.Post{}, tt.serviceErr
			}}

			rec := servePosts(t, posts, http.MethodGet, tt.path, "")
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCreatePost(t *testing.T) {
	posts := &mockPostService{createFn: func(_ context.Context, p models.Post) (models.Post, error) {
		assert.Zero(t, p.ID, "client-supplied id is ignored")
		p.ID = 11
		return p, nil
	}}

	rec := servePosts(t, posts, http.MethodPost, "/posts", `{"id":500,"title":"t","content":"c","author":"a"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":11,"title":"t","content":"c","author":"a"}`, rec.Body.String())
}

func TestCreatePost_InvalidJSON(t *testing.T) {
	posts := &mockPostService{createFn: func(context.Context, models.Post) (models.Post, error) {
		t.Fatal("service must not be called")
		return models.Post{}, nil
	}}

	rec := servePosts(t, posts, http.MethodPost, "/posts", `{"title":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdatePost_EchoesBoundPost(t *testing.T) {
	posts := &mockPostService{updateFn: func(_ context.Context, p models.Post) (models.Post, error) {
		assert.Equal(t, int64(3), p.ID, "id comes from the path")
		return p, nil
	}}

	rec := servePosts(t, posts, http.MethodPut, "/posts/3", `{"id":9,"title":"new","content":"body","author":"me"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":3,"title":"new","content":"body","author":"me"}`, rec.Body.String())
}

func TestUpdatePost_Errors(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       string
		serviceErr error
		wantStatus int
	}{
		{"bad id", "/posts/x", `{}`, nil, http.StatusBadRequest},
		{"bad JSON", "/posts/1", `{`, nil, http.StatusBadRequest},
		{"negative id", "/posts/-1", `{}`, service.ErrInvalidPostID, http.StatusBadRequest},
		{"store failure", "/posts/1", `{}`, store.ErrExecutingQuery, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			posts := &mockPostService{updateFn: func(context.Context, models.Post) (models.Post, error) {
				if tt.serviceErr == nil {
					t.Fatal("service must not be called")
				}
				return models.Post{}, tt.serviceErr
			}}

			rec := servePosts(t, posts, http.MethodPut, tt.path, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestDeletePost(t *testing.T) {
	var deleted int64
	posts := &mockPostService{deleteFn: func(_ context.Context, id int64) error {
		deleted = id
		return nil
	}}

	rec := servePosts(t, posts, http.MethodDelete, "/posts/5", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(5), deleted)
	assert.JSONEq(t, `{"message":"Post deleted","id":5}`, rec.Body.String())
}

func TestDeletePost_Errors(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		serviceErr error
		wantStatus int
	}{
		{"bad id", "/posts/1.5", nil, http.StatusBadRequest},
		{"store failure", "/posts/5", store.ErrExecutingQuery, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			posts := &mockPostService{deleteFn: func(context.Context, int64) error {
				if tt.serviceErr == nil {
					t.Fatal("service must not be called")
				}
				return tt.serviceErr
			}}

			rec := servePosts(t, posts, http.MethodDelete, tt.path, "")
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
