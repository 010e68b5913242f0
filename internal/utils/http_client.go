// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client preconfigured
// to talk to the go-blog API.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:3000")
//	resp, err := client.R().SetBody(user).Post("/login")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a new HTTPClient sending JSON to baseURL.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(baseURL string) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetTimeout(10 * time.Second)

	return &HTTPClient{Client: client}
}

// WithToken returns a request that carries token as a bearer credential.
func (c *HTTPClient) WithToken(token string) *resty.Request {
	return c.R().SetAuthScheme(BearerScheme).SetAuthToken(token)
}
