// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/secret-decoder/internal/logger"
	"github.com/MKhiriev/secret-decoder/models"
)

// MaxBundleFileSize caps a single bundle file. Records are base64 text, so a
// 64 MiB record holds roughly 48 MiB of plaintext media.
const MaxBundleFileSize = 64 << 20

// fileBundleStorage keeps the bundle as plain files in one directory, laid
// out exactly as it is published: passcode-hash.txt, encoded-<kind>.enc and
// encoded-assets.json.
type fileBundleStorage struct {
	dir    string
	logger *logger.Logger
}

// NewFileBundleStorage constructs a [BundleStorage] over dir. The directory
// is created lazily by the first save, so a read-only consumer never
// touches the file system on construction.
func NewFileBundleStorage(dir string, logger *logger.Logger) BundleStorage {
	return &fileBundleStorage{dir: filepath.Clean(dir), logger: logger}
}

func (s *fileBundleStorage) Dir() string {
	return s.dir
}

// LoadToken implements [BundleReader].
func (s *fileBundleStorage) LoadToken(ctx context.Context) (string, error) {
	data, err := s.readFile(ctx, models.TokenFileName)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(data)), nil
}

// LoadRecord implements [BundleReader].
func (s *fileBundleStorage) LoadRecord(ctx context.Context, kind models.AssetKind) (models.EncryptedRecord, error) {
	if !kind.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidAssetKind, kind)
	}

	data, err := s.readFile(ctx, kind.FileName())
	if err != nil {
		return "", err
	}

	return models.EncryptedRecord(strings.TrimSpace(string(data))), nil
}

// LoadManifest implements [BundleReader].
func (s *fileBundleStorage) LoadManifest(ctx context.Context) (models.BundleManifest, error) {
	var manifest models.BundleManifest

	data, err := s.readFile(ctx, models.ManifestFileName)
	if err != nil {
		return manifest, err
	}

	if err = json.Unmarshal(data, &manifest); err != nil {
		return manifest, fmt.Errorf("%w: decode manifest: %w", ErrReadingBundleFile, err)
	}

	return manifest, nil
}

// SaveToken implements [BundleWriter].
func (s *fileBundleStorage) SaveToken(ctx context.Context, token string) error {
	return s.writeFile(ctx, models.TokenFileName, []byte(token))
}

// SaveRecord implements [BundleWriter].
func (s *fileBundleStorage) SaveRecord(ctx context.Context, kind models.AssetKind, record models.EncryptedRecord) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidAssetKind, kind)
	}

	return s.writeFile(ctx, kind.FileName(), []byte(record))
}

// SaveManifest implements [BundleWriter].
func (s *fileBundleStorage) SaveManifest(ctx context.Context, manifest models.BundleManifest) error {
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode manifest: %w", ErrWritingBundleFile, err)
	}

	return s.writeFile(ctx, models.ManifestFileName, append(data, '\n'))
}

// RemoveRecord implements [BundleWriter].
func (s *fileBundleStorage) RemoveRecord(ctx context.Context, kind models.AssetKind) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidAssetKind, kind)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	err := os.Remove(filepath.Join(s.dir, kind.FileName()))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrWritingBundleFile, err)
	}

	return nil
}

func (s *fileBundleStorage) readFile(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrBundleFileNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingBundleFile, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxBundleFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingBundleFile, err)
	}
	if len(data) > MaxBundleFileSize {
		return nil, fmt.Errorf("%w: %s", ErrBundleFileTooLarge, name)
	}

	s.logger.Debug().Str("file", name).Int("size", len(data)).Msg("bundle file read")
	return data, nil
}

// ReplaceRecords implements [BundleWriter].
func (s *fileBundleStorage) ReplaceRecords(ctx context.Context, records map[models.AssetKind]models.EncryptedRecord) error {
	for kind := range records {
		if !kind.Valid() {
			return fmt.Errorf("%w: %q", ErrInvalidAssetKind, kind)
		}
	}

	// target file name -> staged temp file
	staged := make(map[string]string, len(records))
	defer func() {
		for _, tmp := range staged {
			_ = os.Remove(tmp)
		}
	}()

	for kind, record := range records {
		tmp, err := s.stageFile(ctx, kind.FileName(), []byte(record))
		if err != nil {
			return err
		}
		staged[kind.FileName()] = tmp
	}

	for name, tmp := range staged {
		if err := os.Rename(tmp, filepath.Join(s.dir, name)); err != nil {
			return fmt.Errorf("%w: %w", ErrWritingBundleFile, err)
		}
		delete(staged, name)
	}

	for _, kind := range models.AllAssetKinds() {
		if _, ok := records[kind]; ok {
			continue
		}
		if err := s.RemoveRecord(ctx, kind); err != nil {
			return err
		}
	}

	s.logger.Debug().Int("records", len(records)).Msg("bundle records replaced")
	return nil
}

// writeFile stages data and renames it over the target, so a reader never
// observes a half-written file.
func (s *fileBundleStorage) writeFile(ctx context.Context, name string, data []byte) error {
	tmp, err := s.stageFile(ctx, name, data)
	if err != nil {
		return err
	}
	if err = os.Rename(tmp, filepath.Join(s.dir, name)); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: %w", ErrWritingBundleFile, err)
	}

	s.logger.Debug().Str("file", name).Int("size", len(data)).Msg("bundle file written")
	return nil
}

// stageFile writes data to a hidden temp file in the bundle directory and
// returns its path. The caller renames or removes it.
func (s *fileBundleStorage) stageFile(ctx context.Context, name string, data []byte) (path string, err error) {
	if err = ctx.Err(); err != nil {
		return "", err
	}

	if err = os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: %w", ErrWritingBundleFile, err)
	}

	tmp, err := os.CreateTemp(s.dir, "."+name+".*")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrWritingBundleFile, err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("%w: %w", ErrWritingBundleFile, err)
	}
	if err = tmp.Close(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrWritingBundleFile, err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return "", fmt.Errorf("%w: %w", ErrWritingBundleFile, err)
	}

	return tmp.Name(), nil
}
