// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is installed as the router's MethodNotAllowed handler.
// Instead of chi's 405 it answers 404, so probing a path with the wrong
// method does not reveal that the path exists. A request whose method is
// registered for the exact pattern is handed back to the router.
func CheckHTTPMethod(router chi.Router) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if routeHandlesMethod(router, r.URL.Path, r.Method) {
			router.ServeHTTP(w, r)
			return
		}

		w.WriteHeader(http.StatusNotFound)
	}
}

// routeHandlesMethod walks nested routers too. Patterns with URL parameters
// never equal a concrete path and are treated as unregistered.
func routeHandlesMethod(router chi.Routes, path, method string) bool {
	found := false
	_ = chi.Walk(router, func(m, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		if m == method && route == path {
			found = true
		}
		return nil
	})

	return found
}
