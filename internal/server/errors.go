package server

import "errors"

// errNoBundleHandler is returned by NewServer when there is no HTTP handler
// to serve the bundle with.
var errNoBundleHandler = errors.New("no bundle handler to serve")
