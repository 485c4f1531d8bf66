// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrDecryptionFailed is the single opaque error of [PasscodeCipher.Decrypt].
	// The wrapped message carries the parse or cipher detail for operator logs.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrInvalidKDFParams is returned by [NewPasscodeCipher] when the salt is
	// empty or the iteration count is not positive.
	ErrInvalidKDFParams = errors.New("invalid key derivation parameters")

	// ErrInvalidKey is returned when a key has the wrong length or has
	// already been destroyed.
	ErrInvalidKey = errors.New("invalid key")

	errMalformedRecord = errors.New("malformed record")
	errInvalidIV       = errors.New("iv must be 16 bytes")
	errBlockAlignment  = errors.New("ciphertext is not a multiple of the block size")
	errInvalidPadding  = errors.New("invalid padding")
)
