// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/MKhiriev/secret-decoder/models"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// DefaultSalt is the application-wide KDF salt shipped with the app.
	DefaultSalt = "my-static-salt"
	// DefaultIterations is the PBKDF2 iteration count shipped with the app.
	DefaultIterations = 100_000
)

// passcodeCipher is the private implementation of [PasscodeCipher].
type passcodeCipher struct {
	// PBKDF2 parameters. Both sides of the bundle must agree on them, so
	// they come from the shared configuration rather than per-call input.
	salt       []byte
	iterations int
	keyLen     int
}

// NewPasscodeCipher constructs a [PasscodeCipher] for the given shared salt
// and iteration count. The digest is SHA-256 and the key is 256 bits.
// Returns [ErrInvalidKDFParams] for an empty salt or a non-positive count.
func NewPasscodeCipher(salt string, iterations int) (PasscodeCipher, error) {
	if salt == "" || iterations < 1 {
		return nil, fmt.Errorf("%w: salt=%q iterations=%d", ErrInvalidKDFParams, salt, iterations)
	}

	return &passcodeCipher{
		salt:       []byte(salt),
		iterations: iterations,
		keyLen:     KeySize,
	}, nil
}

// Token implements [PasscodeCipher].
func (c *passcodeCipher) Token(passcode string) string {
	sum := sha256.Sum256([]byte(passcode))
	return hex.EncodeToString(sum[:])
}

// Verify implements [PasscodeCipher]. The strings are compared in constant
// time, which keeps exact-match semantics.
func (c *passcodeCipher) Verify(candidate, expectedTokenHex string) bool {
	return subtle.ConstantTimeCompare([]byte(c.Token(candidate)), []byte(expectedTokenHex)) == 1
}

// DeriveKey implements [PasscodeCipher].
func (c *passcodeCipher) DeriveKey(passcode string) (*Key, error) {
	raw := pbkdf2.Key([]byte(passcode), c.salt, c.iterations, c.keyLen, sha256.New)
	return NewKey(raw)
}

// Encrypt implements [PasscodeCipher].
func (c *passcodeCipher) Encrypt(plain []byte, key *Key) (models.EncryptedRecord, error) {
	raw, err := key.bytes()
	if err != nil {
		return "", err
	}

	block, err := aes.NewCipher(raw)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}

	iv := make([]byte, aes.BlockSize)
	if _, err = io.ReadFull(rand.Reader, iv); err != nil {
		return "", fmt.Errorf("generate iv: %w", err)
	}

	padded := pkcs7Pad(plain, aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	return formatRecord(iv, ciphertext), nil
}

// Decrypt implements [PasscodeCipher].
func (c *passcodeCipher) Decrypt(record models.EncryptedRecord, key *Key) ([]byte, error) {
	raw, err := key.bytes()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	iv, ciphertext, err := parseRecord(record)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	block, err := aes.NewCipher(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: create cipher: %w", ErrDecryptionFailed, err)
	}

	padded := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(padded, ciphertext)

	plain, err := pkcs7Unpad(padded, aes.BlockSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	return plain, nil
}
