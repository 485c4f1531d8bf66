package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// digestPool holds reusable SHA-256 instances for Digest. Bundle records are
// digested on every served request, so the instances are pooled.
var digestPool = sync.Pool{
	New: func() any {
		return sha256.New()
	},
}

// Digest returns the lowercase hex SHA-256 of data. It is used for bundle
// integrity metadata (manifest entries, record checks, ETag headers), never
// for secrets.
//
// Behavior:
//   - Retrieves a hash.Hash instance from digestPool
//   - Resets it, writes the data, computes the sum
//   - Resets again and returns it to the pool
//
// Parameters:
//
//	data - arbitrary byte slice to be digested
//
// Returns:
//
//	string - 64 lowercase hex characters
//
// Example usage:
//
//	etag := `"` + utils.Digest(record) + `"`
func Digest(data []byte) string {
	h := digestPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	digestPool.Put(h)

	return hex.EncodeToString(sum)
}

// DigestString is Digest for string input.
func DigestString(data string) string {
	return Digest([]byte(data))
}
