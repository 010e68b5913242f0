// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/crypto"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/models"
)

type Services struct {
	AuthService    AuthService
	TokenService   TokenService
	PostService    PostService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	tokenService := NewTokenService(cfg, logger)
	hasher := crypto.NewBcryptHasher(cfg.PasswordHashCost)

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, hasher, tokenService, logger),
		TokenService:   tokenService,
		PostService:    NewPostService(storages.PostRepository, logger),
		AppInfoService: NewAppInfoService(cfg, buildInfo, logger),
	}
}
