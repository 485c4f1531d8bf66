package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/secret-decoder/internal/crypto"
	"github.com/MKhiriev/secret-decoder/internal/logger"
	"github.com/MKhiriev/secret-decoder/internal/store"
	"github.com/MKhiriev/secret-decoder/internal/utils"
	"github.com/MKhiriev/secret-decoder/internal/validators"
	"github.com/MKhiriev/secret-decoder/models"
)

// EncodeRequest lists the plaintext inputs of one encoder run. Text takes
// precedence over TextPath. TilePath may be empty.
type EncodeRequest struct {
	Passcode  string
	ImagePath string
	TilePath  string
	AudioPath string
	Text      string
	TextPath  string
}

// DecodedAsset describes a plaintext file written by Decode.
type DecodedAsset struct {
	Kind     models.AssetKind
	Path     string
	MIMEType string
	Size     int
}

type encoderService struct {
	storage    store.BundleStorage
	cipher     crypto.PasscodeCipher
	iterations int
	validator  validators.Validator
	now        func() time.Time

	logger *logger.Logger
}

// NewEncoderService constructs an [EncoderService] over storage. iterations
// is recorded in the manifest and must match the one cipher was built with.
func NewEncoderService(storage store.BundleStorage, cipher crypto.PasscodeCipher, iterations int, logger *logger.Logger) EncoderService {
	return &encoderService{
		storage:    storage,
		cipher:     cipher,
		iterations: iterations,
		validator:  validators.NewBundleValidator(),
		now:        time.Now,
		logger:     logger,
	}
}

type plainAsset struct {
	kind   models.AssetKind
	source string
	data   []byte
}

// Encode implements [EncoderService]. Every asset is encrypted before the
// first record is written, and the records replace the previous set as a
// whole, so a failed run over an existing bundle leaves it as it was.
// Records are written before the token. A stale tile record from an earlier
// run is removed when no tile is given.
func (s *encoderService) Encode(ctx context.Context, req EncodeRequest) (models.BundleManifest, error) {
	log := s.logger

	if !models.IsNumericPasscode(req.Passcode) {
		return models.BundleManifest{}, ErrInvalidPasscode
	}

	assets, err := s.readAssets(req)
	if err != nil {
		return models.BundleManifest{}, err
	}

	key, err := s.cipher.DeriveKey(req.Passcode)
	if err != nil {
		return models.BundleManifest{}, fmt.Errorf("derive key: %w", err)
	}
	defer key.Destroy()

	manifest := models.BundleManifest{
		PasscodeHash:  s.cipher.Token(req.Passcode),
		KDFIterations: s.iterations,
		Assets:        make([]models.ManifestAsset, 0, len(assets)),
	}

	records := make(map[models.AssetKind]models.EncryptedRecord, len(assets))
	for _, asset := range assets {
		if err = ctx.Err(); err != nil {
			return models.BundleManifest{}, err
		}

		record, encErr := s.cipher.Encrypt(asset.data, key)
		if encErr != nil {
			return models.BundleManifest{}, fmt.Errorf("encrypt %s: %w", asset.kind, encErr)
		}
		if err = s.validator.Validate(ctx, record); err != nil {
			return models.BundleManifest{}, fmt.Errorf("encrypt %s: %w", asset.kind, err)
		}
		records[asset.kind] = record

		manifest.Assets = append(manifest.Assets, models.ManifestAsset{
			Kind:         asset.kind,
			FileName:     asset.kind.FileName(),
			Source:       asset.source,
			PlainSize:    len(asset.data),
			RecordSize:   len(record),
			RecordSHA256: utils.DigestString(record.String()),
		})
		log.Debug().Str("asset", string(asset.kind)).Int("size", len(asset.data)).Msg("asset encrypted")
	}

	if err = s.storage.ReplaceRecords(ctx, records); err != nil {
		return models.BundleManifest{}, err
	}

	if err = s.storage.SaveToken(ctx, manifest.PasscodeHash); err != nil {
		return models.BundleManifest{}, err
	}

	manifest.GeneratedAt = s.now().UTC()
	if err = s.validator.Validate(ctx, manifest); err != nil {
		return models.BundleManifest{}, fmt.Errorf("manifest: %w", err)
	}
	if err = s.storage.SaveManifest(ctx, manifest); err != nil {
		return models.BundleManifest{}, err
	}

	log.Info().Str("dir", s.storage.Dir()).Int("assets", len(manifest.Assets)).Msg("bundle encoded")
	return manifest, nil
}

func (s *encoderService) readAssets(req EncodeRequest) ([]plainAsset, error) {
	text, textSource, err := readText(req)
	if err != nil {
		return nil, err
	}

	assets := []plainAsset{{kind: models.AssetText, source: textSource, data: text}}

	for _, in := range []struct {
		kind models.AssetKind
		path string
	}{
		{models.AssetImage, req.ImagePath},
		{models.AssetImageTile, req.TilePath},
		{models.AssetAudio, req.AudioPath},
	} {
		if in.path == "" {
			if in.kind.Optional() {
				continue
			}
			return nil, fmt.Errorf("%w: %s", ErrMissingAsset, in.kind)
		}

		data, readErr := os.ReadFile(in.path)
		if readErr != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrMissingAsset, in.kind, readErr)
		}
		if len(data) == 0 {
			return nil, fmt.Errorf("%w: %s: %s is empty", ErrMissingAsset, in.kind, in.path)
		}
		assets = append(assets, plainAsset{kind: in.kind, source: in.path, data: data})
	}

	return assets, nil
}

func readText(req EncodeRequest) ([]byte, string, error) {
	if req.Text != "" {
		return []byte(req.Text), "", nil
	}
	if req.TextPath == "" {
		return nil, "", ErrMissingText
	}

	data, err := os.ReadFile(req.TextPath)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrMissingText, err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return nil, "", ErrMissingText
	}
	if !utf8.Valid(data) {
		return nil, "", fmt.Errorf("%w: %s is not UTF-8", ErrMissingText, req.TextPath)
	}
	return data, req.TextPath, nil
}

// Decode implements [EncoderService]. The passcode is checked against the
// bundle token first; a mismatch returns [ErrVerificationMismatch] and no
// file is written. The optional tile is skipped when absent. When the bundle
// carries a manifest, every record must match its recorded digest.
func (s *encoderService) Decode(ctx context.Context, passcode, outDir string) ([]DecodedAsset, error) {
	log := s.logger

	token, err := s.storage.LoadToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBundleUnavailable, err)
	}
	if !s.cipher.Verify(passcode, token) {
		return nil, ErrVerificationMismatch
	}

	digests, err := s.recordDigests(ctx)
	if err != nil {
		return nil, err
	}

	key, err := s.cipher.DeriveKey(passcode)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}
	defer key.Destroy()

	if err = os.MkdirAll(outDir, 0o700); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	decoded := make([]DecodedAsset, 0, len(models.AllAssetKinds()))
	for _, kind := range models.AllAssetKinds() {
		record, loadErr := s.storage.LoadRecord(ctx, kind)
		if errors.Is(loadErr, store.ErrBundleFileNotFound) && kind.Optional() {
			continue
		}
		if loadErr != nil {
			return nil, assetError(kind, ErrBundleUnavailable, loadErr)
		}
		if want, ok := digests[kind]; ok && utils.DigestString(record.String()) != want {
			return nil, assetError(kind, ErrManifestMismatch, errRecordDigest)
		}

		plain, decErr := s.cipher.Decrypt(record, key)
		if decErr != nil {
			return nil, assetError(kind, ErrDecryption, decErr)
		}

		asset := DecodedAsset{Kind: kind, MIMEType: SniffMIMEType(plain), Size: len(plain)}
		if kind == models.AssetText {
			asset.Path = filepath.Join(outDir, "decrypted-text.txt")
		} else {
			asset.Path = filepath.Join(outDir, "decrypted-"+string(kind)+ExtensionForMIMEType(asset.MIMEType))
		}

		if err = os.WriteFile(asset.Path, plain, 0o600); err != nil {
			return nil, fmt.Errorf("write %s: %w", kind, err)
		}
		clear(plain)

		decoded = append(decoded, asset)
		log.Debug().Str("asset", string(kind)).Str("path", asset.Path).Msg("asset decoded")
	}

	return decoded, nil
}

// recordDigests returns the record digests of the bundle manifest, or nil
// when the bundle has no manifest.
func (s *encoderService) recordDigests(ctx context.Context) (map[models.AssetKind]string, error) {
	manifest, err := s.storage.LoadManifest(ctx)
	if errors.Is(err, store.ErrBundleFileNotFound) {
		s.logger.Debug().Msg("bundle has no manifest, skipping digest check")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrManifestMismatch, err)
	}
	if err = s.validator.Validate(ctx, manifest, validators.FieldAssets, validators.FieldRecordHash); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrManifestMismatch, err)
	}

	digests := make(map[models.AssetKind]string, len(manifest.Assets))
	for _, a := range manifest.Assets {
		digests[a.Kind] = a.RecordSHA256
	}
	return digests, nil
}
