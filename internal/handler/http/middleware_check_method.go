// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog/internal/logger"
)

// methodNotAllowedAsNotFound is registered as the router's MethodNotAllowed
// handler. A known path called with an unregistered method is answered like
// an unknown path, with 404, so route existence is not revealed.
func methodNotAllowedAsNotFound(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Debug().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("method is not registered for path")

	http.NotFound(w, r)
}
