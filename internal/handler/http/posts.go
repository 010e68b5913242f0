// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-blog/internal/app"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	posts, err := h.services.PostService.ListPosts(r.Context())
	if err != nil {
		log.Err(err).Msg("error listing posts")
		writeError(w, err)
		return
	}

	if posts == nil {
		posts = []models.Post{}
	}

	utils.WriteJSON(w, posts, http.StatusOK)
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := postIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid post id")
		writeError(w, err)
		return
	}

	post, err := h.services.PostService.GetPost(r.Context(), id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("error getting post")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, post, http.StatusOK)
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var post models.Post
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}
	post.ID = 0

	created, err := h.services.PostService.CreatePost(r.Context(), post)
	if err != nil {
		log.Err(err).Msg("error creating post")
		writeError(w, err)
		return
	}

	if identity, ok := utils.GetIdentityFromContext(r.Context()); ok {
		log.Info().Int64("id", created.ID).Int64("user_id", identity.UserID).Msg("post created")
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := postIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid post id")
		writeError(w, err)
		return
	}

	var post models.Post
	if err = json.NewDecoder(r.Body).Decode(&post); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}
	post.ID = id

	updated, err := h.services.PostService.UpdatePost(r.Context(), post)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("error updating post")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := postIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid post id")
		writeError(w, err)
		return
	}

	if err = h.services.PostService.DeletePost(r.Context(), id); err != nil {
		log.Err(err).Int64("id", id).Msg("error deleting post")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.DeletePostResponse{Message: app.MsgPostDeleted, ID: id}, http.StatusOK)
}

// postIDFromRequest parses the {id} path parameter. Range checks are left
// to the post service.
func postIDFromRequest(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", service.ErrInvalidPostID, raw, err)
	}

	return id, nil
}
