package crypto

import (
	"crypto/subtle"
	"fmt"

	"github.com/awnumar/memguard"
)

// KeySize is the AES-256 key length in bytes.
const KeySize = 32

// Key is a derived symmetric key kept in a frozen memguard buffer. It is
// read-only after construction and safe to share between concurrent
// decrypts. Destroy wipes it; a destroyed key fails every operation.
type Key struct {
	buf *memguard.LockedBuffer
}

// NewKey moves raw into locked memory. raw is wiped by the call.
func NewKey(raw []byte) (*Key, error) {
	if len(raw) != KeySize {
		memguard.WipeBytes(raw)
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidKey, len(raw), KeySize)
	}

	buf := memguard.NewBufferFromBytes(raw)
	buf.Freeze()

	return &Key{buf: buf}, nil
}

// Alive reports whether the key can still be used.
func (k *Key) Alive() bool {
	return k != nil && k.buf != nil && k.buf.IsAlive()
}

// Equal compares two keys in constant time. Destroyed keys are never equal.
func (k *Key) Equal(other *Key) bool {
	if !k.Alive() || !other.Alive() {
		return false
	}
	return subtle.ConstantTimeCompare(k.buf.Bytes(), other.buf.Bytes()) == 1
}

// Destroy wipes the key. It is safe to call more than once and on nil.
func (k *Key) Destroy() {
	if k == nil || k.buf == nil {
		return
	}
	k.buf.Destroy()
}

func (k *Key) bytes() ([]byte, error) {
	if !k.Alive() {
		return nil, fmt.Errorf("%w: key destroyed", ErrInvalidKey)
	}
	return k.buf.Bytes(), nil
}
