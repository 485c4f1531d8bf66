package utils

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// NewBaseURLClient returns a client bound to baseURL with the given
// per-request timeout and retry policy.
//
// Behavior:
//   - Normalizes baseURL with [NormalizeBaseURL]
//   - Retries on transport errors and 5xx responses only; a 404 for an
//     absent optional record is answered at once
//   - Waits 100ms before the first retry, backing off up to one second
//
// Parameters:
//
//	baseURL    - bundle host, e.g. "localhost:8080" or "https://host/secret/"
//	timeout    - per-request timeout
//	retryCount - retries after the first attempt; 0 disables retrying
//
// Returns:
//
//	*HTTPClient - client whose requests take paths relative to baseURL
//	error       - non-nil if baseURL has no host
//
// Example usage:
//
//	client, err := utils.NewBaseURLClient(cfg.BundleURL, cfg.RequestTimeout, cfg.RetryCount)
//	resp, err := client.R().SetContext(ctx).Get("/passcode-hash.txt")
func NewBaseURLClient(baseURL string, timeout time.Duration, retryCount int) (*HTTPClient, error) {
	normalized, err := NormalizeBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	client := NewHTTPClient()
	client.
		SetBaseURL(normalized).
		SetTimeout(timeout).
		SetRetryCount(retryCount).
		SetRetryWaitTime(100 * time.Millisecond).
		SetRetryMaxWaitTime(time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= 500
		})

	return client, nil
}

// NormalizeBaseURL trims raw, defaults the scheme to http and strips the
// trailing slash. It fails when no host remains.
func NormalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
