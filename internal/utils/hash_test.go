// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"testing"
)

func TestDigest_KnownVectors(t *testing.T) {
	tests := map[string]string{
		"":       "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		"123456": "8d969eef6ecad3c29a3a629280e686cf0c3f5d5a86aff3ca12020c923adc6c92",
	}

	for in, want := range tests {
		if got := DigestString(in); got != want {
			t.Errorf("DigestString(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestDigest_MatchesStdlib(t *testing.T) {
	data := []byte("abcdef0123456789:Zm9vYmFy")
	sum := sha256.Sum256(data)

	if got, want := Digest(data), hex.EncodeToString(sum[:]); got != want {
		t.Fatalf("unexpected digest\nwant: %s\ngot:  %s", want, got)
	}
}

// TestDigest_ReusedInstancesAreReset checks that pooled hashers never leak
// state between calls.
func TestDigest_ReusedInstancesAreReset(t *testing.T) {
	first := DigestString("first")
	_ = DigestString("something else entirely")

	if DigestString("first") != first {
		t.Fatal("digest must be deterministic across pooled instances")
	}
}

func TestDigest_Concurrent(t *testing.T) {
	want := DigestString("payload")

	var wg sync.WaitGroup
	for range 32 {
		wg.Go(func() {
			if got := DigestString("payload"); got != want {
				t.Errorf("concurrent digest mismatch: %s", got)
			}
		})
	}
	wg.Wait()
}
