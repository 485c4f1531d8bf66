// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/secret-decoder/models"

// Phase names the variant of a [State].
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseVerifying
	PhaseRejected
	PhaseDecrypting
	PhaseRevealed
	PhaseFailed
)

var phaseNames = [...]string{
	PhaseIdle:       "idle",
	PhaseVerifying:  "verifying",
	PhaseRejected:   "rejected",
	PhaseDecrypting: "decrypting",
	PhaseRevealed:   "revealed",
	PhaseFailed:     "failed",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// State is the reveal pipeline state. It is a closed set of variants:
// [Idle], [Verifying], [Rejected], [Decrypting], [Revealed] and [Failed].
// Each carries the attempt number it belongs to, so observers can drop
// updates from superseded attempts.
//
// Use a type switch to inspect a State:
//
//	switch s := st.(type) {
//	case service.Revealed:
//		render(s.Assets)
//	case service.Rejected, service.Failed:
//		showError(st)
//	}
type State interface {
	Attempt() uint64
	Phase() Phase
	sealed()
}

type attempt uint64

func (a attempt) Attempt() uint64 { return uint64(a) }
func (attempt) sealed()             {}

// Idle waits for a six-character candidate.
type Idle struct{ attempt }

// Verifying compares the candidate with the published token.
type Verifying struct{ attempt }

// Rejected means the candidate did not match. Input is accepted again.
type Rejected struct {
	attempt
	Err error
}

// Decrypting derives the key and decrypts every asset.
type Decrypting struct{ attempt }

// Revealed holds the decrypted assets until Reset.
type Revealed struct {
	attempt
	Assets *models.RevealedAssetSet
}

// Failed means the bundle could not be fetched or decrypted. Input is
// accepted again.
type Failed struct {
	attempt
	Err error
}

func (Idle) Phase() Phase       { return PhaseIdle }
func (Verifying) Phase() Phase  { return PhaseVerifying }
func (Rejected) Phase() Phase   { return PhaseRejected }
func (Decrypting) Phase() Phase { return PhaseDecrypting }
func (Revealed) Phase() Phase   { return PhaseRevealed }
func (Failed) Phase() Phase     { return PhaseFailed }

// Message returns the text shown to the user.
func (s Rejected) Message() string { return UserMessage(s.Err) }

// Message returns the text shown to the user.
func (s Failed) Message() string { return UserMessage(s.Err) }

// AcceptsInput reports whether Submit may start a new attempt from s. An
// attempt still in flight is superseded by the new one; only a reveal must
// be reset first.
func AcceptsInput(s State) bool {
	_, revealed := s.(Revealed)
	return !revealed
}

// InFlight reports whether s belongs to a running attempt.
func InFlight(s State) bool {
	switch s.(type) {
	case Verifying, Decrypting:
		return true
	default:
		return false
	}
}
