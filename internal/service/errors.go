package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/secret-decoder/models"
)

// Pipeline outcomes. All three surface to the user as the same message; see
// [UserMessage].
var (
	// ErrVerificationMismatch is returned when the candidate does not hash
	// to the published token.
	ErrVerificationMismatch = errors.New("passcode verification failed")
	// ErrBundleUnavailable is returned when the token or a required record
	// could not be fetched.
	ErrBundleUnavailable = errors.New("bundle unavailable")
	// ErrDecryption is returned when a record fails to decrypt or to
	// materialize after successful verification.
	ErrDecryption = errors.New("asset decryption failed")
)

// Orchestration errors.
var (
	// ErrPasscodeLength is returned by Submit for a candidate that is not
	// exactly six characters. The pipeline state is left untouched.
	ErrPasscodeLength = errors.New("passcode must be exactly 6 characters")
	// ErrAlreadyRevealed is returned by Submit after a successful reveal
	// until Reset is called.
	ErrAlreadyRevealed = errors.New("secret already revealed")
	// ErrStaleAttempt is returned by a Submit whose attempt was superseded
	// by a newer Submit or by Reset. Its result has been discarded.
	ErrStaleAttempt = errors.New("attempt superseded")
)

// Encoder and bundle host errors.
var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrInvalidPasscode       = errors.New("passcode must be exactly 6 digits")
	ErrMissingText           = errors.New("no message text provided")
	ErrMissingAsset          = errors.New("required asset file is missing")
	ErrAssetNotFound         = errors.New("asset not found")
	ErrManifestMismatch      = errors.New("bundle does not match its manifest")
)

// errRecordDigest marks a record whose digest differs from the manifest.
var errRecordDigest = errors.New("record digest differs from manifest")

const (
	// MessageIncorrectCode is shown for every failed attempt, whatever the
	// cause, so that a corrupted bundle cannot be told apart from a wrong
	// passcode.
	MessageIncorrectCode = "Incorrect code. Try again."
	// MessageIncompleteCode is shown when fewer than six digits were typed.
	MessageIncompleteCode = "Enter all 6 digits."
)

// UserMessage maps a pipeline error to the text shown to the user. It
// returns an empty string for nil and for stale attempts, which the user
// never sees.
func UserMessage(err error) string {
	switch {
	case err == nil, errors.Is(err, ErrStaleAttempt):
		return ""
	case errors.Is(err, ErrPasscodeLength):
		return MessageIncompleteCode
	default:
		return MessageIncorrectCode
	}
}

// AssetError attributes a pipeline failure to one asset.
type AssetError struct {
	Kind models.AssetKind
	Err  error
}

func (e *AssetError) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *AssetError) Unwrap() error {
	return e.Err
}

func assetError(kind models.AssetKind, class, cause error) error {
	return &AssetError{Kind: kind, Err: fmt.Errorf("%w: %w", class, cause)}
}
