// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/secret-decoder/internal/logger"
	"github.com/MKhiriev/secret-decoder/internal/utils"
	"github.com/MKhiriev/secret-decoder/models"
	"github.com/go-chi/chi/v5"
)

// getToken serves the hex verification token.
func (h *Handler) getToken(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	token, err := h.bundle.Token(r.Context())
	if err != nil {
		log.Err(err).Msg("loading token")
		writeError(w, statusFromError(err))
		return
	}

	writeBundleFile(w, r, []byte(token))
}

// getRecord serves one encrypted record. Unknown and absent assets are both
// answered with 404, which the client treats as an omitted optional asset.
func (h *Handler) getRecord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	kind, ok := models.AssetKindFromFileName(chi.URLParam(r, recordParam))
	if !ok {
		writeError(w, http.StatusNotFound)
		return
	}

	record, err := h.bundle.Record(r.Context(), kind)
	if err != nil {
		status := statusFromError(err)
		if status >= http.StatusInternalServerError {
			log.Err(err).Str("asset", string(kind)).Msg("loading record")
		}
		writeError(w, status)
		return
	}

	writeBundleFile(w, r, []byte(record))
}

// getManifest serves the published manifest. The reveal pipeline checks
// every record against its digest before decrypting.
func (h *Handler) getManifest(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	manifest, err := h.bundle.Manifest(r.Context())
	if err != nil {
		status := statusFromError(err)
		if status >= http.StatusInternalServerError {
			log.Err(err).Msg("loading manifest")
		}
		writeError(w, status)
		return
	}

	w.Header().Set("Cache-Control", "no-cache")
	if _, err = utils.WriteJSON(w, manifest, http.StatusOK); err != nil {
		log.Err(err).Msg("writing manifest")
		writeError(w, http.StatusInternalServerError)
	}
}

// writeBundleFile sends body with a strong ETag so a client can revalidate
// instead of downloading the record again. The bundle may be replaced by a
// new encoder run at any time, so caches must always revalidate.
func writeBundleFile(w http.ResponseWriter, r *http.Request, body []byte) {
	etag := `"` + utils.Digest(body) + `"`

	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "no-cache")

	if matchesETag(r.Header.Get("If-None-Match"), etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	utils.WriteText(w, body, http.StatusOK)
}

// matchesETag reports whether If-None-Match header names etag, either as
// sent for identity responses or as rewritten by the gzip middleware.
func matchesETag(header, etag string) bool {
	gzipped := gzipETag(etag)
	for candidate := range strings.SplitSeq(header, ",") {
		candidate = strings.TrimPrefix(strings.TrimSpace(candidate), "W/")
		if candidate == etag || candidate == gzipped || candidate == "*" {
			return true
		}
	}
	return false
}
