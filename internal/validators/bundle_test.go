// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/secret-decoder/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var (
	testToken  = "8d969eef6ecad3c29a3a629280e686cf0c3f5d5a86aff3ca12020c923adc6c92"
	testDigest = strings.Repeat("ab", 32)
)

func asset(kind models.AssetKind) models.ManifestAsset {
	return models.ManifestAsset{
		Kind:         kind,
		FileName:     kind.FileName(),
		PlainSize:    10,
		RecordSize:   60,
		RecordSHA256: testDigest,
	}
}

func validManifest() models.BundleManifest {
	return models.BundleManifest{
		PasscodeHash:  testToken,
		KDFIterations: 100_000,
		Assets:        []models.ManifestAsset{asset(models.AssetText), asset(models.AssetImage), asset(models.AssetAudio)},
		GeneratedAt:   time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC),
	}
}

func record(ivBytes, ctBytes int) models.EncryptedRecord {
	return models.EncryptedRecord(strings.Repeat("0f", ivBytes) + ":" + base64.StdEncoding.EncodeToString(make([]byte, ctBytes)))
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestNewBundleValidator(t *testing.T) {
	require.NotNil(t, NewBundleValidator())
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewBundleValidator()
	ctx := context.Background()

	m := validManifest()
	r := record(16, 32)

	assert.NoError(t, v.Validate(ctx, m))
	assert.NoError(t, v.Validate(ctx, &m))
	assert.NoError(t, v.Validate(ctx, r))
	assert.NoError(t, v.Validate(ctx, &r))

	assert.ErrorIs(t, v.Validate(ctx, "text"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
}

func TestValidate_UnknownField(t *testing.T) {
	v := NewBundleValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, validManifest(), "nope"), ErrUnknownField)
	assert.ErrorIs(t, v.Validate(ctx, record(16, 16), FieldAssets), ErrUnknownField)
}

// ---------------------------------------------------------------------------
// Manifest
// ---------------------------------------------------------------------------

func TestValidateManifest(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.BundleManifest)
		fields []string
		want   error
	}{
		{"valid", func(*models.BundleManifest) {}, nil, nil},
		{"valid with tile", func(m *models.BundleManifest) {
			m.Assets = append(m.Assets, asset(models.AssetImageTile))
		}, nil, nil},
		{"uppercase token", func(m *models.BundleManifest) { m.PasscodeHash = strings.ToUpper(testToken) }, nil, ErrInvalidPasscodeHash},
		{"short token", func(m *models.BundleManifest) { m.PasscodeHash = testToken[:63] }, nil, ErrInvalidPasscodeHash},
		{"zero iterations", func(m *models.BundleManifest) { m.KDFIterations = 0 }, nil, ErrInvalidKDFIterations},
		{"no assets", func(m *models.BundleManifest) { m.Assets = nil }, nil, ErrEmptyAssets},
		{"unknown kind", func(m *models.BundleManifest) {
			m.Assets = append(m.Assets, models.ManifestAsset{Kind: "video", FileName: "encoded-video.enc", RecordSHA256: testDigest})
		}, nil, ErrInvalidAssetKind},
		{"duplicate kind", func(m *models.BundleManifest) {
			m.Assets = append(m.Assets, asset(models.AssetImage))
		}, nil, ErrDuplicateAsset},
		{"missing audio", func(m *models.BundleManifest) { m.Assets = m.Assets[:2] }, nil, ErrMissingRequiredAsset},
		{"wrong file name", func(m *models.BundleManifest) { m.Assets[1].FileName = "image.enc" }, nil, ErrInvalidFileName},
		{"bad record digest", func(m *models.BundleManifest) { m.Assets[0].RecordSHA256 = "xyz" }, nil, ErrInvalidRecordHash},
		{"bad digest outside scope", func(m *models.BundleManifest) { m.Assets[0].RecordSHA256 = "" }, []string{FieldAssets}, nil},
		{"zero time when asked", func(m *models.BundleManifest) { m.GeneratedAt = time.Time{} }, []string{FieldGeneratedAt}, ErrInvalidGeneratedAt},
		{"zero time by default", func(m *models.BundleManifest) { m.GeneratedAt = time.Time{} }, nil, nil},
	}

	v := NewBundleValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validManifest()
			tt.mutate(&m)

			err := v.Validate(context.Background(), m, tt.fields...)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// ---------------------------------------------------------------------------
// Record
// ---------------------------------------------------------------------------

func TestValidateRecord(t *testing.T) {
	tests := []struct {
		name   string
		record models.EncryptedRecord
		ok     bool
	}{
		{"one block", record(16, 16), true},
		{"several blocks", record(16, 64), true},
		{"trailing newline", record(16, 16) + "\n", true},
		{"no separator", models.EncryptedRecord(strings.Repeat("00", 16)), false},
		{"short iv", record(8, 16), false},
		{"bad hex", models.EncryptedRecord("zz" + strings.Repeat("00", 15) + ":AAAA"), false},
		{"bad base64", models.EncryptedRecord(strings.Repeat("00", 16) + ":***"), false},
		{"empty ciphertext", record(16, 0), false},
		{"unaligned ciphertext", record(16, 20), false},
	}

	v := NewBundleValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.record)
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrMalformedRecord)
		})
	}
}

func TestIsLowerHex(t *testing.T) {
	assert.True(t, isLowerHex("0123456789abcdef", 16))
	assert.False(t, isLowerHex("0123456789ABCDEF", 16))
	assert.False(t, isLowerHex("0123", 16))
	assert.False(t, isLowerHex("", 1))
}
