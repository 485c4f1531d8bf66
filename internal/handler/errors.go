// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the server
// configuration carries no HTTP address. The bundle host has nothing to
// serve then, so startup fails.
var errNoHandlersAreCreated = errors.New("no handlers are created")

// errMissingServices is returned by NewHandlers when a service the routes
// depend on was not constructed.
var errMissingServices = errors.New("handlers need the bundle and app info services")
