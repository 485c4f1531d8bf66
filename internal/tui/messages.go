package tui

import (
	"time"

	"github.com/MKhiriev/secret-decoder/internal/service"
)

// stateMsg carries a pipeline state published by the observer.
type stateMsg struct {
	state service.State
}

// submitDoneMsg is the outcome of one Submit call.
type submitDoneMsg struct {
	state service.State
	err   error
}

type preloadDoneMsg struct {
	err error
}

type resetDoneMsg struct {
	err error
}

// frameMsg drives the decrypting and reveal animations.
type frameMsg struct {
	at time.Time
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
