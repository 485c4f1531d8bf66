package crypto

import (
	"bytes"
	"crypto/aes"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/MKhiriev/secret-decoder/models"
)

const recordSeparator = ":"

func formatRecord(iv, ciphertext []byte) models.EncryptedRecord {
	return models.EncryptedRecord(hex.EncodeToString(iv) + recordSeparator + base64.StdEncoding.EncodeToString(ciphertext))
}

// parseRecord splits "<iv-hex>:<ciphertext-base64>" and checks the sizes
// the CBC decrypter relies on. Surrounding whitespace (a trailing newline
// from a served file) is ignored.
func parseRecord(record models.EncryptedRecord) (iv, ciphertext []byte, err error) {
	ivHex, ctB64, ok := strings.Cut(strings.TrimSpace(string(record)), recordSeparator)
	if !ok {
		return nil, nil, fmt.Errorf("%w: missing separator", errMalformedRecord)
	}

	iv, err = hex.DecodeString(ivHex)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: iv: %w", errMalformedRecord, err)
	}
	if len(iv) != aes.BlockSize {
		return nil, nil, errInvalidIV
	}

	ciphertext, err = base64.StdEncoding.DecodeString(ctB64)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: ciphertext: %w", errMalformedRecord, err)
	}
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, nil, errBlockAlignment
	}

	return iv, ciphertext, nil
}

// pkcs7Pad always appends between 1 and blockSize bytes.
func pkcs7Pad(plain []byte, blockSize int) []byte {
	n := blockSize - len(plain)%blockSize
	padded := make([]byte, len(plain), len(plain)+n)
	copy(padded, plain)
	return append(padded, bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(padded []byte, blockSize int) ([]byte, error) {
	if len(padded) == 0 || len(padded)%blockSize != 0 {
		return nil, errBlockAlignment
	}

	n := int(padded[len(padded)-1])
	if n == 0 || n > blockSize {
		return nil, errInvalidPadding
	}
	for _, b := range padded[len(padded)-n:] {
		if int(b) != n {
			return nil, errInvalidPadding
		}
	}

	return padded[:len(padded)-n], nil
}
