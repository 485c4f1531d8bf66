package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// statusErrors pins the statuses the bundle server is known to emit.
var statusErrors = map[int]error{
	http.StatusNotFound:           ErrAssetNotFound,
	http.StatusGone:               ErrAssetNotFound,
	http.StatusServiceUnavailable: ErrServiceUnavailable,
}

// mapHTTPError turns a non-2xx bundle response into an error. Statuses
// outside statusErrors fall back to their class.
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	if err, ok := statusErrors[code]; ok {
		return fmt.Errorf("%w: %s", err, resp.Request.URL)
	}

	detail := strings.TrimSpace(string(resp.Body()))
	if detail == "" {
		detail = http.StatusText(code)
	}

	switch {
	case code >= http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d: %s", ErrServerError, code, detail)
	case code >= http.StatusBadRequest:
		return fmt.Errorf("%w: http %d: %s", ErrRequestRejected, code, detail)
	default:
		return fmt.Errorf("unexpected http %d: %s", code, detail)
	}
}
