package http

import (
	"net/http"

	"github.com/MKhiriev/secret-decoder/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.appInfo.GetAppVersion(r.Context())

	utils.WriteText(w, []byte(serverVersion), http.StatusOK)
}
