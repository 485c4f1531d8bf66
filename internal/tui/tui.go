// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/secret-decoder/internal/logger"
	"github.com/MKhiriev/secret-decoder/internal/service"
	"github.com/MKhiriev/secret-decoder/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI is the terminal front end of the reveal client.
type TUI struct {
	pipeline service.RevealPipeline
	relay    *StateRelay
	info     models.AppBuildInfo
	logger   *logger.Logger
}

// New constructs a TUI over pipeline. relay must be the observer the
// pipeline was built with, so that intermediate states reach the screen.
func New(pipeline service.RevealPipeline, relay *StateRelay, info models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		pipeline: pipeline,
		relay:    relay,
		info:     info,
		logger:   logger,
	}
}

// Run shows the passcode entry screen and blocks until the user quits or
// ctx is cancelled. The pipeline is closed on return, which releases every
// revealed resource.
func (t *TUI) Run(ctx context.Context) (err error) {
	defer func() {
		if closeErr := t.pipeline.Close(); closeErr != nil {
			t.logger.Warn().Err(closeErr).Msg("closing reveal pipeline")
			err = errors.Join(err, closeErr)
		}
	}()

	p := tea.NewProgram(newModel(ctx, t.pipeline, t.info, t.logger), tea.WithAltScreen(), tea.WithContext(ctx))
	t.relay.attach(p)
	defer t.relay.detach()

	if _, err = p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

// StateRelay forwards pipeline states to the running program. Its Observe
// method is passed to [service.WithStateObserver] before the program
// exists; states published while no program is attached are dropped.
type StateRelay struct {
	mu      sync.Mutex
	program *tea.Program
}

// NewStateRelay returns a detached relay.
func NewStateRelay() *StateRelay {
	return &StateRelay{}
}

// Observe delivers s to the attached program. States are sent in the
// order they are published; Send returns as soon as the program has quit.
func (r *StateRelay) Observe(s service.State) {
	r.mu.Lock()
	p := r.program
	r.mu.Unlock()

	if p != nil {
		p.Send(stateMsg{state: s})
	}
}

func (r *StateRelay) attach(p *tea.Program) {
	r.mu.Lock()
	r.program = p
	r.mu.Unlock()
}

func (r *StateRelay) detach() {
	r.attach(nil)
}
