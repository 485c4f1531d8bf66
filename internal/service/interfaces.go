package service

import (
	"context"

	"github.com/MKhiriev/secret-decoder/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// RevealPipeline runs the passcode-gated decryption: verify the candidate
// against the published token, derive the key, decrypt every asset
// concurrently and publish the materialized set.
//
// All methods are safe for concurrent use.
type RevealPipeline interface {
	// Preload fetches the verification token ahead of the first attempt.
	// The pipeline state is not changed; a failure is reported as
	// [ErrBundleUnavailable] and the token is fetched again by Submit.
	Preload(ctx context.Context) error

	// Submit runs one attempt to completion and returns the state it ended
	// in. A candidate that is not six characters long returns
	// [ErrPasscodeLength] without touching the state. Submitting while an
	// attempt is in flight supersedes it: the older Submit returns
	// [ErrStaleAttempt] and its result is released.
	Submit(ctx context.Context, candidate string) (State, error)

	// Reset returns the pipeline to Idle, cancels any attempt in flight and
	// releases every handle of a reveal.
	Reset() error

	// State returns the current state.
	State() State

	// Close resets the pipeline and frees materializer resources.
	Close() error
}

// Materializer turns decrypted bytes into renderable handles.
type Materializer interface {
	// Materialize builds a handle for a binary asset. data is not retained
	// after the call returns.
	Materialize(kind models.AssetKind, data []byte) (*models.ResourceHandle, error)
	// Close releases resources shared by all handles.
	Close() error
}

// IDGenerator yields unique handle ids.
type IDGenerator interface {
	Generate() string
}

// EncoderService produces and inspects bundles offline.
type EncoderService interface {
	// Encode encrypts the assets of req under the passcode and writes the
	// bundle, token and manifest.
	Encode(ctx context.Context, req EncodeRequest) (models.BundleManifest, error)
	// Decode decrypts every record of the bundle with passcode and writes
	// the plaintext files to outDir.
	Decode(ctx context.Context, passcode, outDir string) ([]DecodedAsset, error)
}

// BundleService serves the published bundle files.
type BundleService interface {
	// Token returns the verification token.
	Token(ctx context.Context) (string, error)
	// Record returns the encrypted record of kind, or [ErrAssetNotFound].
	Record(ctx context.Context, kind models.AssetKind) (models.EncryptedRecord, error)
	// Manifest returns the published form of the bundle manifest, or
	// [ErrAssetNotFound] when the bundle has none.
	Manifest(ctx context.Context) (models.BundleManifest, error)
}

// AppInfoService exposes build metadata over the API.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
