package http

import (
	"compress/gzip"
	"net/http"
	"strings"
	"sync"
)

var gzipWriterPool = sync.Pool{
	New: func() any {
		return gzip.NewWriter(nil)
	},
}

// gzipETagSuffix marks the entity tag of the gzip representation, which
// must differ from the identity one.
const gzipETagSuffix = "-gzip"

// withGZip compresses 200 responses for clients that accept gzip. Records
// are base64 text, so they shrink by roughly a quarter. Other statuses,
// 304 in particular, are passed through without a body. A strong ETag on a
// 200 or 304 answer is rewritten with [gzipETagSuffix].
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Accept-Encoding")

		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		gzipRW := &gzipResponseWriter{ResponseWriter: w}
		defer gzipRW.finish()

		next.ServeHTTP(gzipRW, r)
	})
}

type gzipResponseWriter struct {
	http.ResponseWriter

	gzipWriter  *gzip.Writer
	wroteHeader bool
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	if statusCode == http.StatusOK || statusCode == http.StatusNotModified {
		if etag := w.Header().Get("ETag"); etag != "" {
			w.Header().Set("ETag", gzipETag(etag))
		}
	}

	if statusCode == http.StatusOK {
		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Del("Content-Length")

		w.gzipWriter = gzipWriterPool.Get().(*gzip.Writer)
		w.gzipWriter.Reset(w.ResponseWriter)
	}
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	if w.gzipWriter == nil {
		return w.ResponseWriter.Write(data)
	}
	return w.gzipWriter.Write(data)
}

func (w *gzipResponseWriter) finish() {
	if w.gzipWriter == nil {
		return
	}
	_ = w.gzipWriter.Close()
	gzipWriterPool.Put(w.gzipWriter)
	w.gzipWriter = nil
}

// gzipETag turns a strong entity tag such as "abc" into "abc-gzip". Weak
// tags already allow differing encodings and are returned unchanged.
func gzipETag(etag string) string {
	if strings.HasPrefix(etag, "W/") || len(etag) < 2 || !strings.HasSuffix(etag, `"`) {
		return etag
	}
	return strings.TrimSuffix(etag, `"`) + gzipETagSuffix + `"`
}
