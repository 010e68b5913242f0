// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
)

func versionRequestFrom(remoteAddr string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/version", nil)
	req.RemoteAddr = remoteAddr
	return req
}

func TestRateLimit_RejectsOverLimit(t *testing.T) {
	cfg := config.Server{RateLimit: config.RateLimit{Requests: 3, Window: time.Minute}}
	router := NewHandler(newTestServices(), cfg, logger.Nop()).Init()

	for i := range 3 {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, versionRequestFrom("203.0.113.7:5000"))
		assert.Equal(t, http.StatusOK, rec.Code, "request %d", i+1)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, versionRequestFrom("203.0.113.7:5001"))

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"message":"Too many requests from this IP, please try again later."}`, rec.Body.String())
}

func TestRateLimit_CountsPerIP(t *testing.T) {
	cfg := config.Server{RateLimit: config.RateLimit{Requests: 1, Window: time.Minute}}
	router := NewHandler(newTestServices(), cfg, logger.Nop()).Init()

	first := httptest.NewRecorder()
	router.ServeHTTP(first, versionRequestFrom("198.51.100.1:1000"))
	other := httptest.NewRecorder()
	router.ServeHTTP(other, versionRequestFrom("198.51.100.2:1000"))
	again := httptest.NewRecorder()
	router.ServeHTTP(again, versionRequestFrom("198.51.100.1:1000"))

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusOK, other.Code)
	assert.Equal(t, http.StatusTooManyRequests, again.Code)
}

func TestRateLimit_AppliesToProtectedRoutes(t *testing.T) {
	cfg := config.Server{RateLimit: config.RateLimit{Requests: 1, Window: time.Minute}}
	router := NewHandler(newTestServices(), cfg, logger.Nop()).Init()

	for _, want := range []int{http.StatusUnauthorized, http.StatusTooManyRequests} {
		req := httptest.NewRequest(http.MethodGet, "/posts", nil)
		req.RemoteAddr = "192.0.2.10:4000"
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, want, rec.Code)
	}
}

func TestRateLimit_DisabledWhenNotConfigured(t *testing.T) {
	router := NewHandler(newTestServices(), config.Server{}, logger.Nop()).Init()

	for range 200 {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, versionRequestFrom("192.0.2.1:1234"))
		if !assert.Equal(t, http.StatusOK, rec.Code) {
			return
		}
	}
}
