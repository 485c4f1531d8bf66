// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
// A path served for another method answers 404 instead of chi's 405, so
// the host does not reveal which bundle files exist to a probing client.
//
// Behavior:
//   - Walks router.Routes() looking for the exact request path
//   - Hands the request back to the router when the method is registered
//     for that pattern
//   - Answers 404 with the fixed body otherwise
//
// Parameters:
//
//	router - the chi router the handler is registered on
//
// Returns:
//
//	http.HandlerFunc-compatible function for router.MethodNotAllowed
//
// Example usage:
//
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, route := range router.Routes() {
			if route.Pattern != r.URL.Path {
				continue
			}
			if _, ok := route.Handlers[r.Method]; ok {
				router.ServeHTTP(w, r)
				return
			}
			break
		}

		writeError(w, http.StatusNotFound)
	}
}
