// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"sync"
	"sync/atomic"
)

// ResourceHandle is a renderable reference to a decrypted binary asset:
// a data URI for images or a blob-style file URL for audio.
//
// A handle must be released once the presentation layer no longer needs it.
// Release is idempotent; a released handle keeps its ID and URL for logging
// but must not be handed out again.
type ResourceHandle struct {
	// ID uniquely identifies the handle within the process.
	ID string
	// Kind is the asset the handle was materialized from.
	Kind AssetKind
	// URL is the address the presentation layer renders from.
	URL string
	// MIMEType is the sniffed content type of the plaintext bytes.
	MIMEType string
	// Size is the plaintext size in bytes.
	Size int

	release  func() error
	once     sync.Once
	released atomic.Bool
	err      error
}

// NewResourceHandle constructs a handle. release is called at most once, by
// [ResourceHandle.Release]; it may be nil when nothing has to be freed.
func NewResourceHandle(id string, kind AssetKind, url, mimeType string, size int, release func() error) *ResourceHandle {
	return &ResourceHandle{
		ID:       id,
		Kind:     kind,
		URL:      url,
		MIMEType: mimeType,
		Size:     size,
		release:  release,
	}
}

// Release frees whatever backs the handle. Subsequent calls return the
// result of the first call.
func (h *ResourceHandle) Release() error {
	if h == nil {
		return nil
	}
	h.once.Do(func() {
		h.released.Store(true)
		if h.release != nil {
			h.err = h.release()
		}
	})
	return h.err
}

// Released reports whether Release has been called.
func (h *ResourceHandle) Released() bool {
	return h != nil && h.released.Load()
}

// RevealedAssetSet is the complete output of a successful decrypt: the
// plaintext message and a handle per binary asset.
type RevealedAssetSet struct {
	// Text is the decrypted UTF-8 message.
	Text string
	// Image is the main reveal image.
	Image *ResourceHandle
	// ImageTile is the tiled background image, or nil when the bundle
	// carries none.
	ImageTile *ResourceHandle
	// Audio is the background audio clip.
	Audio *ResourceHandle
}

// Handles returns every non-nil handle of the set.
func (s *RevealedAssetSet) Handles() []*ResourceHandle {
	if s == nil {
		return nil
	}

	handles := make([]*ResourceHandle, 0, 3)
	for _, h := range []*ResourceHandle{s.Image, s.ImageTile, s.Audio} {
		if h != nil {
			handles = append(handles, h)
		}
	}
	return handles
}

// Set stores h in the slot that matches its kind.
func (s *RevealedAssetSet) Set(h *ResourceHandle) {
	switch h.Kind {
	case AssetImage:
		s.Image = h
	case AssetImageTile:
		s.ImageTile = h
	case AssetAudio:
		s.Audio = h
	}
}

// Release releases every handle of the set and joins their errors.
func (s *RevealedAssetSet) Release() error {
	var errs []error
	for _, h := range s.Handles() {
		if err := h.Release(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
