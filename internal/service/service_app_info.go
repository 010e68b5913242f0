// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
)

// defaultAppVersion is reported when neither configuration nor the build
// names a version.
const defaultAppVersion = "dev"

type appInfoService struct {
	appVersion string
	buildInfo  models.AppBuildInfo

	logger *logger.Logger
}

// NewAppInfoService resolves the reported version once: the configured
// version wins, then the version baked in at build time, then "dev".
func NewAppInfoService(cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) AppInfoService {
	version := cfg.Version
	if version == "" && buildInfo.HasBuildVersion() {
		version = buildInfo.BuildVersion()
	}
	if version == "" {
		version = defaultAppVersion
	}

	logger.Debug().Str("version", version).Msg("app version resolved")

	return &appInfoService{
		appVersion: version,
		buildInfo:  buildInfo,
		logger:     logger,
	}
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}
