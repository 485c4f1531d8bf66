package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/secret-decoder/internal/logger"
	"github.com/MKhiriev/secret-decoder/internal/mock"
	"github.com/MKhiriev/secret-decoder/internal/service"
	"github.com/MKhiriev/secret-decoder/internal/store"
	"github.com/MKhiriev/secret-decoder/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBundleService_Token(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := mock.NewMockBundleReader(ctrl)
	svc := service.NewBundleService(reader, logger.Nop())
	ctx := context.Background()

	reader.EXPECT().LoadToken(ctx).Return("abc123", nil)

	token, err := svc.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)
}

func TestBundleService_TokenMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := mock.NewMockBundleReader(ctrl)
	svc := service.NewBundleService(reader, logger.Nop())
	ctx := context.Background()

	reader.EXPECT().LoadToken(ctx).Return("", store.ErrBundleFileNotFound)

	_, err := svc.Token(ctx)
	assert.ErrorIs(t, err, service.ErrAssetNotFound)
}

func TestBundleService_Record(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := mock.NewMockBundleReader(ctrl)
	svc := service.NewBundleService(reader, logger.Nop())
	ctx := context.Background()

	reader.EXPECT().LoadRecord(ctx, models.AssetImage).Return(models.EncryptedRecord("iv:ct"), nil)
	reader.EXPECT().LoadRecord(ctx, models.AssetImageTile).Return(models.EncryptedRecord(""), store.ErrBundleFileNotFound)
	reader.EXPECT().LoadRecord(ctx, models.AssetKind("../etc")).Return(models.EncryptedRecord(""), store.ErrInvalidAssetKind)

	record, err := svc.Record(ctx, models.AssetImage)
	require.NoError(t, err)
	assert.Equal(t, models.EncryptedRecord("iv:ct"), record)

	_, err = svc.Record(ctx, models.AssetImageTile)
	assert.ErrorIs(t, err, service.ErrAssetNotFound)

	_, err = svc.Record(ctx, models.AssetKind("../etc"))
	assert.ErrorIs(t, err, service.ErrAssetNotFound)
}

func TestBundleService_ReadFailurePassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := mock.NewMockBundleReader(ctrl)
	svc := service.NewBundleService(reader, logger.Nop())
	ctx := context.Background()

	ioErr := errors.Join(store.ErrReadingBundleFile, errors.New("permission denied"))
	reader.EXPECT().LoadRecord(ctx, models.AssetAudio).Return(models.EncryptedRecord(""), ioErr)

	_, err := svc.Record(ctx, models.AssetAudio)
	assert.ErrorIs(t, err, store.ErrReadingBundleFile)
	assert.NotErrorIs(t, err, service.ErrAssetNotFound)
}

func TestBundleService_Manifest(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := mock.NewMockBundleReader(ctrl)
	svc := service.NewBundleService(reader, logger.Nop())
	ctx := context.Background()

	stored := models.BundleManifest{
		PasscodeHash: "abc123",
		Assets: []models.ManifestAsset{
			{Kind: models.AssetText, Source: "/home/author/letter.txt", RecordSHA256: "d1"},
		},
	}
	gomock.InOrder(
		reader.EXPECT().LoadManifest(ctx).Return(stored, nil),
		reader.EXPECT().LoadManifest(ctx).Return(models.BundleManifest{}, store.ErrBundleFileNotFound),
	)

	got, err := svc.Manifest(ctx)
	require.NoError(t, err)
	assert.Empty(t, got.Assets[0].Source, "source paths are not published")
	assert.Equal(t, "d1", got.Assets[0].RecordSHA256)

	_, err = svc.Manifest(ctx)
	assert.ErrorIs(t, err, service.ErrAssetNotFound)
}
