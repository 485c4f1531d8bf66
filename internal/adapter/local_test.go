package adapter

import (
	"context"
	"testing"

	"github.com/MKhiriev/secret-decoder/internal/config"
	"github.com/MKhiriev/secret-decoder/internal/logger"
	"github.com/MKhiriev/secret-decoder/internal/store"
	"github.com/MKhiriev/secret-decoder/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalBundleSource(t *testing.T) {
	dir := t.TempDir()
	storage := store.NewFileBundleStorage(dir, logger.Nop())
	ctx := context.Background()

	require.NoError(t, storage.SaveToken(ctx, "tok\n"))
	require.NoError(t, storage.SaveRecord(ctx, models.AssetText, testRecord))

	s := NewLocalBundleSource(storage)

	token, err := s.FetchToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok", token)

	record, err := s.FetchRecord(ctx, models.AssetText)
	require.NoError(t, err)
	assert.Equal(t, models.EncryptedRecord(testRecord), record)

	_, err = s.FetchRecord(ctx, models.AssetImageTile)
	assert.ErrorIs(t, err, ErrAssetNotFound)
	assert.ErrorIs(t, err, store.ErrBundleFileNotFound)
}

func TestLocalBundleSource_Manifest(t *testing.T) {
	storage := store.NewFileBundleStorage(t.TempDir(), logger.Nop())
	ctx := context.Background()
	s := NewLocalBundleSource(storage)

	_, err := s.FetchManifest(ctx)
	assert.ErrorIs(t, err, ErrAssetNotFound)

	manifest := models.BundleManifest{
		PasscodeHash: "tok",
		Assets:       []models.ManifestAsset{{Kind: models.AssetText, RecordSHA256: "d1"}},
	}
	require.NoError(t, storage.SaveManifest(ctx, manifest))

	got, err := s.FetchManifest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "d1", got.RecordDigests()[models.AssetText])
}

func TestLocalBundleSource_EmptyFiles(t *testing.T) {
	storage := store.NewFileBundleStorage(t.TempDir(), logger.Nop())
	ctx := context.Background()
	require.NoError(t, storage.SaveToken(ctx, " "))
	require.NoError(t, storage.SaveRecord(ctx, models.AssetAudio, ""))

	s := NewLocalBundleSource(storage)

	_, err := s.FetchToken(ctx)
	assert.ErrorIs(t, err, ErrEmptyResponse)

	_, err = s.FetchRecord(ctx, models.AssetAudio)
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestNewBundleSource_Selects(t *testing.T) {
	local, err := NewBundleSource(&config.ClientConfig{BundleDir: t.TempDir()}, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &localBundleSource{}, local)

	remote, err := NewBundleSource(&config.ClientConfig{BundleURL: "localhost:8080"}, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &httpBundleSource{}, remote)
}
