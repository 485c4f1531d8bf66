package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/secret-decoder/internal/app"
	"github.com/MKhiriev/secret-decoder/internal/service"
	"github.com/MKhiriev/secret-decoder/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrAssetNotFound: http.StatusNotFound,

	store.ErrBundleFileNotFound: http.StatusNotFound,
	store.ErrInvalidAssetKind:   http.StatusNotFound,
	store.ErrBundleFileTooLarge: http.StatusInternalServerError,
	store.ErrReadingBundleFile:  http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with status and its fixed message. The cause is only
// logged.
func writeError(w http.ResponseWriter, status int) {
	http.Error(w, app.MessageForStatus(status), status)
}
