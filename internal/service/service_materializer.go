package service

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/MKhiriev/secret-decoder/internal/logger"
	"github.com/MKhiriev/secret-decoder/models"
)

// resourceMaterializer renders images as data URIs and audio as private
// temp files, the terminal counterpart of a revocable blob URL.
type resourceMaterializer struct {
	ids     IDGenerator
	baseDir string

	logger *logger.Logger

	mu     sync.Mutex
	tmpDir string
	closed bool
}

// errMaterializerClosed is returned for a file resource requested after
// Close, typically by an attempt that was still in flight.
var errMaterializerClosed = errors.New("materializer is closed")

// NewResourceMaterializer constructs a [Materializer]. Audio files are
// placed in a private directory created under baseDir on first use; an
// empty baseDir means os.TempDir.
func NewResourceMaterializer(ids IDGenerator, baseDir string, logger *logger.Logger) Materializer {
	return &resourceMaterializer{ids: ids, baseDir: baseDir, logger: logger}
}

// Materialize implements [Materializer].
func (m *resourceMaterializer) Materialize(kind models.AssetKind, data []byte) (*models.ResourceHandle, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty %s asset", kind)
	}

	mimeType := SniffMIMEType(data)
	id := m.ids.Generate()

	switch kind {
	case models.AssetImage, models.AssetImageTile:
		uri := "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
		return models.NewResourceHandle(id, kind, uri, mimeType, len(data), nil), nil
	case models.AssetAudio:
		return m.materializeFile(id, kind, mimeType, data)
	default:
		return nil, fmt.Errorf("asset %q has no resource form", kind)
	}
}

func (m *resourceMaterializer) materializeFile(id string, kind models.AssetKind, mimeType string, data []byte) (*models.ResourceHandle, error) {
	dir, err := m.dir()
	if err != nil {
		return nil, err
	}

	path := filepath.Join(dir, id+ExtensionForMIMEType(mimeType))
	if err = os.WriteFile(path, data, 0o600); err != nil {
		return nil, fmt.Errorf("write %s resource: %w", kind, err)
	}

	release := func() error {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("remove %s resource: %w", kind, err)
		}
		return nil
	}

	fileURL := (&url.URL{Scheme: "file", Path: filepath.ToSlash(path)}).String()
	m.logger.Debug().Str("asset", string(kind)).Str("handle", id).Msg("resource file created")

	return models.NewResourceHandle(id, kind, fileURL, mimeType, len(data), release), nil
}

func (m *resourceMaterializer) dir() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return "", errMaterializerClosed
	}
	if m.tmpDir != "" {
		return m.tmpDir, nil
	}

	dir, err := os.MkdirTemp(m.baseDir, "secret-decoder-*")
	if err != nil {
		return "", fmt.Errorf("create resource dir: %w", err)
	}
	m.tmpDir = dir
	return dir, nil
}

// Close implements [Materializer]. It removes the resource directory with
// any file a caller failed to release. File resources cannot be created
// afterwards.
func (m *resourceMaterializer) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	if m.tmpDir == "" {
		return nil
	}
	err := os.RemoveAll(m.tmpDir)
	m.tmpDir = ""
	return err
}

// SniffMIMEType returns the media type of data without parameters.
func SniffMIMEType(data []byte) string {
	mimeType, _, _ := strings.Cut(http.DetectContentType(data), ";")
	return strings.TrimSpace(mimeType)
}

var mimeExtensions = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/gif":       ".gif",
	"image/webp":      ".webp",
	"image/bmp":       ".bmp",
	"image/svg+xml":   ".svg",
	"audio/mpeg":      ".mp3",
	"audio/wave":      ".wav",
	"audio/aiff":      ".aiff",
	"audio/basic":     ".au",
	"audio/midi":      ".mid",
	"application/ogg": ".ogg",
	"video/mp4":       ".mp4",
	"video/webm":      ".webm",
	"text/plain":      ".txt",
}

// ExtensionForMIMEType maps a sniffed media type to a file extension,
// ".bin" when unknown.
func ExtensionForMIMEType(mimeType string) string {
	if ext, ok := mimeExtensions[mimeType]; ok {
		return ext
	}
	return ".bin"
}
