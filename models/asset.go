// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// AssetKind names one asset of the encrypted bundle.
type AssetKind string

const (
	// AssetText is the UTF-8 message revealed letter by letter.
	AssetText AssetKind = "text"
	// AssetImage is the main reveal image.
	AssetImage AssetKind = "image"
	// AssetImageTile is the optional tiled background image.
	AssetImageTile AssetKind = "image-tile"
	// AssetAudio is the background audio clip.
	AssetAudio AssetKind = "audio"
)

const (
	// TokenFileName is the bundle file holding the hex verification token.
	TokenFileName = "passcode-hash.txt"

	// ManifestFileName is the human-readable summary written by the encoder.
	// It is not part of the runtime fetch contract.
	ManifestFileName = "encoded-assets.json"

	recordFilePrefix = "encoded-"
	recordFileSuffix = ".enc"
)

// AllAssetKinds returns every asset kind in the order the pipeline reports
// them. The text asset comes first since it gates the reveal content.
func AllAssetKinds() []AssetKind {
	return []AssetKind{AssetText, AssetImage, AssetImageTile, AssetAudio}
}

// FileName returns the fixed bundle file name of the encrypted record,
// e.g. "encoded-image.enc".
func (k AssetKind) FileName() string {
	return recordFilePrefix + string(k) + recordFileSuffix
}

// Optional reports whether a bundle may omit the asset.
func (k AssetKind) Optional() bool {
	return k == AssetImageTile
}

// Binary reports whether the asset is materialized as a resource handle
// rather than as plain text.
func (k AssetKind) Binary() bool {
	return k != AssetText
}

// Valid reports whether k is one of the known asset kinds.
func (k AssetKind) Valid() bool {
	for _, known := range AllAssetKinds() {
		if k == known {
			return true
		}
	}
	return false
}

// AssetKindFromFileName resolves a bundle file name back to its asset kind.
func AssetKindFromFileName(name string) (AssetKind, bool) {
	if !strings.HasPrefix(name, recordFilePrefix) || !strings.HasSuffix(name, recordFileSuffix) {
		return "", false
	}

	kind := AssetKind(strings.TrimSuffix(strings.TrimPrefix(name, recordFilePrefix), recordFileSuffix))
	if !kind.Valid() {
		return "", false
	}
	return kind, true
}

// EncryptedRecord is a serialized encrypted asset in the form
// "<iv-hex>:<ciphertext-base64>".
type EncryptedRecord string

// String implements fmt.Stringer.
func (r EncryptedRecord) String() string {
	return string(r)
}
