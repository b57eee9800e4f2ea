// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Chi responds with HTTP 405 Method Not Allowed whenever a request path
// matches a registered route but the HTTP method is not handled. This
// handler responds with HTTP 404 Not Found instead, hiding the existence of
// the route from callers that use an unsupported method.
//
// If the router does match the method and path, the request is forwarded to
// the router's normal ServeHTTP pipeline. Matching goes through
// [chi.Mux.Match], so parameterised patterns such as /projects/{id}/labels
// are expanded.
//
// Usage:
//
//	router := chi.NewRouter()
//	router.MethodNotAllowed(CheckHTTPMethod(router))
//	// ... register routes ...
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.RawPath
		if path == "" {
			path = r.URL.Path
		}

		if !router.Match(chi.NewRouteContext(), r.Method, path) {
			writeError(w, r, errRouteNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
