package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/secret-decoder/internal/config"
	"github.com/MKhiriev/secret-decoder/internal/logger"
	"github.com/MKhiriev/secret-decoder/internal/utils"
	"github.com/MKhiriev/secret-decoder/models"
)

type httpBundleSource struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPBundleSource constructs an HTTP implementation of [BundleSource]
// rooted at cfg.BundleURL. Bundle files are fetched by their published
// names, e.g. GET {base}/passcode-hash.txt and GET {base}/encoded-audio.enc.
//
// Returns an error if cfg.BundleURL is empty or cannot be parsed as a URL.
func NewHTTPBundleSource(cfg *config.ClientConfig, logger *logger.Logger) (BundleSource, error) {
	client, err := utils.NewBaseURLClient(cfg.BundleURL, cfg.RequestTimeout, cfg.RetryCount)
	if err != nil {
		return nil, fmt.Errorf("invalid bundle url: %w", err)
	}

	return &httpBundleSource{client: client, logger: logger}, nil
}

// FetchToken implements [BundleSource].
func (h *httpBundleSource) FetchToken(ctx context.Context) (string, error) {
	body, err := h.get(ctx, models.TokenFileName, "text/plain")
	if err != nil {
		return "", fmt.Errorf("fetch token: %w", err)
	}

	return body, nil
}

// FetchRecord implements [BundleSource].
func (h *httpBundleSource) FetchRecord(ctx context.Context, kind models.AssetKind) (models.EncryptedRecord, error) {
	if !kind.Valid() {
		return "", fmt.Errorf("fetch record: unknown asset kind %q", kind)
	}

	body, err := h.get(ctx, kind.FileName(), "text/plain")
	if err != nil {
		return "", fmt.Errorf("fetch %s record: %w", kind, err)
	}

	return models.EncryptedRecord(body), nil
}

// FetchManifest implements [BundleSource].
func (h *httpBundleSource) FetchManifest(ctx context.Context) (models.BundleManifest, error) {
	var manifest models.BundleManifest

	body, err := h.get(ctx, models.ManifestFileName, "application/json")
	if err != nil {
		return manifest, fmt.Errorf("fetch manifest: %w", err)
	}
	if err = json.Unmarshal([]byte(body), &manifest); err != nil {
		return manifest, fmt.Errorf("decode manifest: %w", err)
	}

	return manifest, nil
}

func (h *httpBundleSource) get(ctx context.Context, fileName, accept string) (string, error) {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", accept)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(utils.TraceIDHeader, traceID)
	}

	resp, err := req.Get("/" + fileName)
	if err != nil {
		return "", fmt.Errorf("request %s: %w", fileName, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	body := strings.TrimSpace(resp.String())
	if body == "" {
		return "", fmt.Errorf("%w: %s", ErrEmptyResponse, fileName)
	}

	h.logger.Debug().
		Str("file", fileName).
		Int("size", len(body)).
		Dur("took", resp.Time()).
		Msg("bundle file fetched")

	return body, nil
}
