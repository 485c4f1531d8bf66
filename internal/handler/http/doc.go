// Package http implements the bundle host's HTTP transport.
//
// The host publishes the encrypted bundle as static files: the verification
// token at /passcode-hash.txt and one record per asset at
// /encoded-<kind>.enc. It never sees a passcode or a key. Request tracing,
// access logging and response compression are handled here before the
// request reaches the bundle service.
package http
