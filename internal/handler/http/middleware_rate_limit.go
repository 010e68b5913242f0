// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/httprate"

	"github.com/MKhiriev/go-blog/internal/app"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

// withRateLimit builds the per-IP limiter from the server configuration.
// The counters live inside the returned middleware, so it must be built once
// per router. A non-positive request limit disables limiting.
func (h *Handler) withRateLimit() func(http.Handler) http.Handler {
	limit := h.cfg.RateLimit
	if limit.Requests <= 0 || limit.Window <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return httprate.Limit(
		limit.Requests,
		limit.Window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(rateLimitExceeded),
	)
}

func rateLimitExceeded(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Warn().Str("remote_addr", r.RemoteAddr).Msg("rate limit exceeded")
	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgTooManyRequests}, http.StatusTooManyRequests)
}
