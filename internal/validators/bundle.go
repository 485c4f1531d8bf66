package validators

import (
	"context"
	"crypto/aes"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/MKhiriev/secret-decoder/models"
)

// Field names accepted by [BundleValidator].
const (
	// FieldPasscodeHash targets the manifest token: 64 lowercase hex digits.
	FieldPasscodeHash = "passcode_hash"

	// FieldKDFIterations targets the recorded PBKDF2 iteration count.
	FieldKDFIterations = "kdf_iterations"

	// FieldAssets targets the asset list: known kinds, no duplicates, every
	// required kind present and file names matching the kind.
	FieldAssets = "assets"

	// FieldRecordHash targets the per-asset record digests.
	FieldRecordHash = "record_sha256"

	// FieldGeneratedAt targets the generation time.
	FieldGeneratedAt = "generated_at"

	// FieldRecordFormat targets the `<iv-hex>:<ciphertext-base64>` layout of
	// an encrypted record.
	FieldRecordFormat = "record_format"
)

const sha256HexLen = 64

// BundleValidator validates [models.BundleManifest] and
// [models.EncryptedRecord] values, in value or pointer form.
type BundleValidator struct{}

// NewBundleValidator returns a [BundleValidator] as a [Validator].
func NewBundleValidator() Validator {
	return &BundleValidator{}
}

// Validate dispatches on the dynamic type of obj. It returns
// [ErrUnsupportedType] for anything else.
func (v *BundleValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.BundleManifest:
		return v.validateManifest(ctx, value, fields...)
	case *models.BundleManifest:
		return v.validateManifest(ctx, *value, fields...)

	case models.EncryptedRecord:
		return v.validateRecord(ctx, value, fields...)
	case *models.EncryptedRecord:
		return v.validateRecord(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateManifest checks PasscodeHash, KDFIterations, Assets and the record
// digests by default. GeneratedAt is only checked when asked for, since the
// encoder fills it in last.
func (v *BundleValidator) validateManifest(_ context.Context, m models.BundleManifest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPasscodeHash, FieldKDFIterations, FieldAssets, FieldRecordHash}
	}

	for _, f := range fields {
		switch f {
		case FieldPasscodeHash:
			if !isLowerHex(m.PasscodeHash, sha256HexLen) {
				return ErrInvalidPasscodeHash
			}
		case FieldKDFIterations:
			if m.KDFIterations < 1 {
				return ErrInvalidKDFIterations
			}
		case FieldAssets:
			if err := validateAssets(m.Assets); err != nil {
				return err
			}
		case FieldRecordHash:
			for _, a := range m.Assets {
				if !isLowerHex(a.RecordSHA256, sha256HexLen) {
					return fmt.Errorf("%w: %s", ErrInvalidRecordHash, a.Kind)
				}
			}
		case FieldGeneratedAt:
			if m.GeneratedAt.IsZero() {
				return ErrInvalidGeneratedAt
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateAssets(assets []models.ManifestAsset) error {
	if len(assets) == 0 {
		return ErrEmptyAssets
	}

	seen := make(map[models.AssetKind]bool, len(assets))
	for _, a := range assets {
		if !a.Kind.Valid() {
			return fmt.Errorf("%w: %q", ErrInvalidAssetKind, a.Kind)
		}
		if seen[a.Kind] {
			return fmt.Errorf("%w: %s", ErrDuplicateAsset, a.Kind)
		}
		seen[a.Kind] = true

		if a.FileName != a.Kind.FileName() {
			return fmt.Errorf("%w: %s has %q", ErrInvalidFileName, a.Kind, a.FileName)
		}
	}

	for _, kind := range models.AllAssetKinds() {
		if !kind.Optional() && !seen[kind] {
			return fmt.Errorf("%w: %s", ErrMissingRequiredAsset, kind)
		}
	}

	return nil
}

func (v *BundleValidator) validateRecord(_ context.Context, r models.EncryptedRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRecordFormat}
	}

	for _, f := range fields {
		switch f {
		case FieldRecordFormat:
			if err := validateRecordFormat(r); err != nil {
				return fmt.Errorf("%w: %w", ErrMalformedRecord, err)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateRecordFormat(r models.EncryptedRecord) error {
	ivHex, payload, ok := strings.Cut(strings.TrimSpace(string(r)), ":")
	if !ok {
		return fmt.Errorf("missing separator")
	}

	iv, err := hex.DecodeString(ivHex)
	if err != nil {
		return fmt.Errorf("iv: %w", err)
	}
	if len(iv) != aes.BlockSize {
		return fmt.Errorf("iv is %d bytes", len(iv))
	}

	ct, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return fmt.Errorf("ciphertext: %w", err)
	}
	if len(ct) == 0 || len(ct)%aes.BlockSize != 0 {
		return fmt.Errorf("ciphertext is %d bytes", len(ct))
	}

	return nil
}

func isLowerHex(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for i := range len(s) {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
