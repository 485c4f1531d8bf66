// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the passcode cryptography shared by the offline
// encoder and the runtime decryption pipeline.
//
// Scheme:
//
//	Token  = hex(SHA-256(passcode))                           (verification)
//	Key    = PBKDF2-HMAC-SHA256(passcode, salt, iter, 32)     (derivation)
//	Record = hex(IV) ":" base64(AES-256-CBC(Key, IV, PKCS#7(plain)))
//
// The salt and iteration count are application-wide constants loaded from
// configuration on both sides. With a 10^6 passcode space and every artefact
// shipped to the client, the scheme is a puzzle lock, not a security control.
package crypto

import "github.com/MKhiriev/secret-decoder/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/passcode_cipher_mock.go -package=mock

// PasscodeCipher bundles every operation the encoder and the pipeline need.
// Implementations hold only the immutable KDF parameters and are safe for
// concurrent use.
type PasscodeCipher interface {
	// Token returns the lowercase hex SHA-256 digest of the UTF-8 passcode.
	Token(passcode string) string

	// Verify reports whether candidate hashes to expectedTokenHex. The
	// comparison is an exact match on the hex string; nothing else about a
	// mismatch is exposed.
	Verify(candidate, expectedTokenHex string) bool

	// DeriveKey runs PBKDF2 over passcode with the configured salt and
	// iteration count and returns the 256-bit key in locked memory. The
	// caller owns the key and must Destroy it.
	DeriveKey(passcode string) (*Key, error)

	// Encrypt pads plain with PKCS#7, encrypts it with AES-256-CBC under a
	// fresh random IV and returns the serialized record.
	Encrypt(plain []byte, key *Key) (models.EncryptedRecord, error)

	// Decrypt parses record, decrypts it and strips the PKCS#7 padding.
	// Every failure matches [ErrDecryptionFailed]; a wrong key and a corrupt
	// record are not told apart.
	Decrypt(record models.EncryptedRecord, key *Key) ([]byte, error)
}
