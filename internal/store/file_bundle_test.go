package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/secret-decoder/internal/logger"
	"github.com/MKhiriev/secret-decoder/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) (BundleStorage, string) {
	t.Helper()
	dir := t.TempDir()
	return NewFileBundleStorage(dir, logger.Nop()), dir
}

// ── token ────────────────────────────────────────────────────────────────────

func TestToken_RoundTrip(t *testing.T) {
	s, dir := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveToken(ctx, "abc123"))

	raw, err := os.ReadFile(filepath.Join(dir, models.TokenFileName))
	require.NoError(t, err)
	assert.Equal(t, "abc123", string(raw))

	got, err := s.LoadToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc123", got)
}

func TestLoadToken_TrimsWhitespace(t *testing.T) {
	s, dir := newTestStorage(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, models.TokenFileName), []byte("  abc123\n"), 0o644))

	got, err := s.LoadToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abc123", got)
}

func TestLoadToken_Missing(t *testing.T) {
	s, _ := newTestStorage(t)

	_, err := s.LoadToken(context.Background())
	assert.ErrorIs(t, err, ErrBundleFileNotFound)
}

// ── records ──────────────────────────────────────────────────────────────────

func TestRecord_RoundTripEveryKind(t *testing.T) {
	s, dir := newTestStorage(t)
	ctx := context.Background()

	for _, kind := range models.AllAssetKinds() {
		record := models.EncryptedRecord("00112233445566778899aabbccddeeff:" + string(kind))
		require.NoError(t, s.SaveRecord(ctx, kind, record))

		_, err := os.Stat(filepath.Join(dir, kind.FileName()))
		require.NoError(t, err, kind)

		got, err := s.LoadRecord(ctx, kind)
		require.NoError(t, err)
		assert.Equal(t, record, got)
	}
}

func TestLoadRecord_MissingOptionalTile(t *testing.T) {
	s, _ := newTestStorage(t)

	_, err := s.LoadRecord(context.Background(), models.AssetImageTile)
	assert.ErrorIs(t, err, ErrBundleFileNotFound)
}

func TestRecord_InvalidKind(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()

	_, err := s.LoadRecord(ctx, models.AssetKind("../passcode-hash"))
	assert.ErrorIs(t, err, ErrInvalidAssetKind)

	err = s.SaveRecord(ctx, models.AssetKind("video"), "x")
	assert.ErrorIs(t, err, ErrInvalidAssetKind)

	err = s.RemoveRecord(ctx, models.AssetKind(""))
	assert.ErrorIs(t, err, ErrInvalidAssetKind)
}

func TestSaveRecord_Overwrites(t *testing.T) {
	s, dir := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveRecord(ctx, models.AssetText, "first"))
	require.NoError(t, s.SaveRecord(ctx, models.AssetText, "second"))

	got, err := s.LoadRecord(ctx, models.AssetText)
	require.NoError(t, err)
	assert.Equal(t, models.EncryptedRecord("second"), got)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasPrefix(e.Name(), "."), "temp file left behind: %s", e.Name())
	}
}

func TestRemoveRecord(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveRecord(ctx, models.AssetImageTile, "tile"))
	require.NoError(t, s.RemoveRecord(ctx, models.AssetImageTile))

	_, err := s.LoadRecord(ctx, models.AssetImageTile)
	assert.ErrorIs(t, err, ErrBundleFileNotFound)

	// absent already
	assert.NoError(t, s.RemoveRecord(ctx, models.AssetImageTile))
}

func TestReplaceRecords(t *testing.T) {
	s, dir := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveRecord(ctx, models.AssetText, "old text"))
	require.NoError(t, s.SaveRecord(ctx, models.AssetImageTile, "old tile"))

	err := s.ReplaceRecords(ctx, map[models.AssetKind]models.EncryptedRecord{
		models.AssetText:  "new text",
		models.AssetImage: "new image",
		models.AssetAudio: "new audio",
	})
	require.NoError(t, err)

	for kind, want := range map[models.AssetKind]models.EncryptedRecord{
		models.AssetText:  "new text",
		models.AssetImage: "new image",
		models.AssetAudio: "new audio",
	} {
		got, err := s.LoadRecord(ctx, kind)
		require.NoError(t, err, kind)
		assert.Equal(t, want, got)
	}

	_, err = s.LoadRecord(ctx, models.AssetImageTile)
	assert.ErrorIs(t, err, ErrBundleFileNotFound, "records left out of the set are removed")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasPrefix(e.Name(), "."), "temp file left behind: %s", e.Name())
	}
}

func TestReplaceRecords_FailureKeepsPreviousRecords(t *testing.T) {
	tests := []struct {
		name    string
		ctx     func() context.Context
		records map[models.AssetKind]models.EncryptedRecord
		wantErr error
	}{
		{
			name: "invalid kind",
			ctx:  context.Background,
			records: map[models.AssetKind]models.EncryptedRecord{
				models.AssetText:         "new text",
				models.AssetKind("../x"): "escape",
			},
			wantErr: ErrInvalidAssetKind,
		},
		{
			name: "canceled while staging",
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			},
			records: map[models.AssetKind]models.EncryptedRecord{models.AssetText: "new text"},
			wantErr: context.Canceled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, dir := newTestStorage(t)
			require.NoError(t, s.SaveRecord(context.Background(), models.AssetText, "old text"))
			require.NoError(t, s.SaveRecord(context.Background(), models.AssetImageTile, "old tile"))

			err := s.ReplaceRecords(tt.ctx(), tt.records)
			assert.ErrorIs(t, err, tt.wantErr)

			got, err := s.LoadRecord(context.Background(), models.AssetText)
			require.NoError(t, err)
			assert.Equal(t, models.EncryptedRecord("old text"), got)
			_, err = s.LoadRecord(context.Background(), models.AssetImageTile)
			assert.NoError(t, err)

			entries, err := os.ReadDir(dir)
			require.NoError(t, err)
			assert.Len(t, entries, 2, "no staged file may be left behind")
		})
	}
}

func TestLoadRecord_TooLarge(t *testing.T) {
	s, dir := newTestStorage(t)

	f, err := os.Create(filepath.Join(dir, models.AssetAudio.FileName()))
	require.NoError(t, err)
	require.NoError(t, f.Truncate(MaxBundleFileSize+1))
	require.NoError(t, f.Close())

	_, err = s.LoadRecord(context.Background(), models.AssetAudio)
	assert.ErrorIs(t, err, ErrBundleFileTooLarge)
}

// ── manifest ─────────────────────────────────────────────────────────────────

func TestManifest_RoundTrip(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx := context.Background()

	manifest := models.BundleManifest{
		PasscodeHash:  "abc",
		KDFIterations: 100000,
		Assets: []models.ManifestAsset{
			{Kind: models.AssetText, FileName: models.AssetText.FileName(), PlainSize: 5, RecordSize: 57, RecordSHA256: "ff"},
		},
		GeneratedAt: time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.SaveManifest(ctx, manifest))

	got, err := s.LoadManifest(ctx)
	require.NoError(t, err)
	assert.Equal(t, manifest, got)
}

func TestLoadManifest_Corrupt(t *testing.T) {
	s, dir := newTestStorage(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, models.ManifestFileName), []byte("{"), 0o644))

	_, err := s.LoadManifest(context.Background())
	assert.ErrorIs(t, err, ErrReadingBundleFile)
}

// ── misc ─────────────────────────────────────────────────────────────────────

func TestSave_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "public")
	s := NewFileBundleStorage(dir, logger.Nop())

	require.NoError(t, s.SaveToken(context.Background(), "tok"))
	assert.Equal(t, dir, s.Dir())

	_, err := os.Stat(filepath.Join(dir, models.TokenFileName))
	assert.NoError(t, err)
}

func TestCanceledContext(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, s.SaveToken(ctx, "tok"), context.Canceled)
	_, err := s.LoadToken(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewStorages(t *testing.T) {
	st := NewStorages(t.TempDir(), logger.Nop())
	require.NotNil(t, st.Bundle)
}
