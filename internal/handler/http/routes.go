package http

import (
	"github.com/MKhiriev/secret-decoder/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// recordParam captures a record file name such as "encoded-image.enc".
const recordParam = "record"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// bundle files
	router.Group(func(r chi.Router) {
		r.Use(withGZip)

		r.Get("/"+models.TokenFileName, h.getToken)
		r.Get("/"+models.ManifestFileName, h.getManifest)
		r.Get("/{"+recordParam+`:encoded-[a-z-]+\.enc}`, h.getRecord)
	})

	router.Get("/api/version/", h.getServerVersion)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
