package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidPasscodeHash  = errors.New("invalid passcode hash")
	ErrInvalidKDFIterations = errors.New("invalid kdf iterations")
	ErrEmptyAssets          = errors.New("assets list cannot be empty")
	ErrInvalidAssetKind     = errors.New("invalid asset kind")
	ErrDuplicateAsset       = errors.New("duplicate asset")
	ErrMissingRequiredAsset = errors.New("required asset is missing")
	ErrInvalidFileName      = errors.New("file name does not match asset kind")
	ErrInvalidRecordHash    = errors.New("invalid record hash")
	ErrInvalidGeneratedAt   = errors.New("generation time is required")

	ErrMalformedRecord = errors.New("malformed encrypted record")
)
