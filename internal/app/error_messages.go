// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// bundle host handlers.
//
// All Msg* constants are human-readable strings written into error response
// bodies. They never name the asset or the cause, so a probing client
// learns nothing beyond the status code.
package app

import "net/http"

const (
	// MsgNotFound is returned for unknown paths, unknown asset kinds and
	// assets the bundle does not carry.
	MsgNotFound = "not found"

	// MsgInternalServerError is returned when a bundle file exists but could
	// not be read.
	MsgInternalServerError = "internal server error"
)

// MessageForStatus returns the response body for an error status.
func MessageForStatus(status int) string {
	if status == http.StatusNotFound {
		return MsgNotFound
	}
	if status >= http.StatusInternalServerError {
		return MsgInternalServerError
	}
	return http.StatusText(status)
}
