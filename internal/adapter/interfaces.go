// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client's view of a published bundle.
//
// The primary abstraction is [BundleSource], which decouples the reveal
// pipeline from where the bundle lives. Two implementations ship: an
// HTTP/REST one ([NewHTTPBundleSource]) that fetches the static files from a
// bundle server, and a local one ([NewLocalBundleSource]) that reads them
// from a directory.
//
// Absence of a file is always reported as [ErrAssetNotFound], so callers can
// tell an optional asset that was never published from a broken transport.
package adapter

import (
	"context"

	"github.com/MKhiriev/secret-decoder/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/bundle_source_mock.go -package=mock

// BundleSource retrieves the verification token and encrypted records.
// Implementations must be safe for concurrent use: the pipeline fetches all
// records of an attempt in parallel.
type BundleSource interface {
	// FetchToken returns the hex verification token with surrounding
	// whitespace removed.
	FetchToken(ctx context.Context) (string, error)

	// FetchRecord returns the encrypted record of kind with surrounding
	// whitespace removed. Returns [ErrAssetNotFound] (wrapped) when the
	// bundle does not carry the asset.
	FetchRecord(ctx context.Context, kind models.AssetKind) (models.EncryptedRecord, error)

	// FetchManifest returns the published bundle manifest. Returns
	// [ErrAssetNotFound] (wrapped) for a bundle published without one.
	FetchManifest(ctx context.Context) (models.BundleManifest, error)
}
