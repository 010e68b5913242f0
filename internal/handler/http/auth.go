// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-blog/internal/app"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Int("status", statusFromError(err)).Msg("user registration failed")
		writeError(w, err)
		return
	}

	log.Info().Int64("id", registeredUser.UserID).Msg("user registered")
	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgUserRegistered}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Int("status", statusFromError(err)).Msg("login failed")
		writeError(w, err)
		return
	}

	log.Debug().Str("username", user.Username).Msg("user successfully logged in")
	utils.WriteJSON(w, models.LoginResponse{Token: token.SignedString}, http.StatusOK)
}
