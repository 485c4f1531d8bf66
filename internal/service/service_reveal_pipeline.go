// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/MKhiriev/secret-decoder/internal/adapter"
	"github.com/MKhiriev/secret-decoder/internal/crypto"
	"github.com/MKhiriev/secret-decoder/internal/logger"
	"github.com/MKhiriev/secret-decoder/internal/utils"
	"github.com/MKhiriev/secret-decoder/models"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// PipelineOption customizes a pipeline built by [NewRevealPipeline].
type PipelineOption func(*revealPipeline)

// WithStateObserver registers fn to receive every state the pipeline
// enters. fn is called without the pipeline lock held, possibly from
// several goroutines; it must not block.
func WithStateObserver(fn func(State)) PipelineOption {
	return func(p *revealPipeline) {
		p.observer = fn
	}
}

// WithAssetKinds restricts the assets an attempt decrypts. The default is
// [models.AllAssetKinds].
func WithAssetKinds(kinds ...models.AssetKind) PipelineOption {
	return func(p *revealPipeline) {
		p.kinds = kinds
	}
}

type revealPipeline struct {
	source       adapter.BundleSource
	cipher       crypto.PasscodeCipher
	materializer Materializer
	kinds        []models.AssetKind
	observer     func(State)
	traces       IDGenerator

	logger *logger.Logger

	mu     sync.Mutex
	seq    uint64
	state  State
	token  string
	cancel context.CancelFunc
}

// NewRevealPipeline constructs a [RevealPipeline] in the Idle state.
func NewRevealPipeline(
	source adapter.BundleSource,
	cipher crypto.PasscodeCipher,
	materializer Materializer,
	logger *logger.Logger,
	opts ...PipelineOption,
) RevealPipeline {
	p := &revealPipeline{
		source:       source,
		cipher:       cipher,
		materializer: materializer,
		kinds:        models.AllAssetKinds(),
		traces:       utils.NewUUIDGenerator(),
		logger:       logger,
		state:        Idle{},
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Preload implements [RevealPipeline].
func (p *revealPipeline) Preload(ctx context.Context) error {
	p.mu.Lock()
	loaded := p.token != ""
	p.mu.Unlock()
	if loaded {
		return nil
	}

	_, err := p.loadToken(ctx)
	return err
}

// State implements [RevealPipeline].
func (p *revealPipeline) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.state
}

// Submit implements [RevealPipeline].
func (p *revealPipeline) Submit(ctx context.Context, candidate string) (State, error) {
	if !models.IsCompletePasscode(candidate) {
		return p.State(), ErrPasscodeLength
	}

	attemptCtx, seq, token, err := p.begin(ctx)
	if err != nil {
		return p.State(), err
	}
	log := p.logger.WithAttempt(seq)
	if traceID, ok := utils.GetTraceIDFromContext(attemptCtx); ok {
		log = log.WithTraceID(traceID)
	}

	if token == "" {
		if token, err = p.loadToken(attemptCtx); err != nil {
			return p.finish(log, Failed{attempt: attempt(seq), Err: err}, nil)
		}
	}

	if !p.cipher.Verify(candidate, token) {
		return p.finish(log, Rejected{attempt: attempt(seq), Err: ErrVerificationMismatch}, nil)
	}

	if !p.transition(seq, Decrypting{attempt: attempt(seq)}) {
		return p.State(), ErrStaleAttempt
	}

	assets, err := p.decryptAll(attemptCtx, log, candidate)
	if err != nil {
		return p.finish(log, Failed{attempt: attempt(seq), Err: err}, nil)
	}

	return p.finish(log, Revealed{attempt: attempt(seq), Assets: assets}, assets)
}

// Reset implements [RevealPipeline].
func (p *revealPipeline) Reset() error {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.seq++
	prev := p.state
	next := Idle{attempt: attempt(p.seq)}
	p.state = next
	p.mu.Unlock()

	p.notify(next)

	if revealed, ok := prev.(Revealed); ok {
		if err := revealed.Assets.Release(); err != nil {
			p.logger.Warn().Err(err).Msg("releasing revealed assets")
			return fmt.Errorf("release assets: %w", err)
		}
		p.logger.Debug().Uint64("attempt", prev.Attempt()).Msg("revealed assets released")
	}

	return nil
}

// Close implements [RevealPipeline].
func (p *revealPipeline) Close() error {
	return errors.Join(p.Reset(), p.materializer.Close())
}

// begin opens a new attempt, superseding any attempt in flight.
func (p *revealPipeline) begin(ctx context.Context) (context.Context, uint64, string, error) {
	p.mu.Lock()
	if !AcceptsInput(p.state) {
		p.mu.Unlock()
		return nil, 0, "", ErrAlreadyRevealed
	}

	if p.cancel != nil {
		p.cancel()
	}
	attemptCtx, cancel := context.WithCancel(utils.WithTraceID(ctx, p.traces.Generate()))
	p.cancel = cancel
	p.seq++
	seq := p.seq
	token := p.token
	next := Verifying{attempt: attempt(seq)}
	p.state = next
	p.mu.Unlock()

	p.notify(next)
	return attemptCtx, seq, token, nil
}

// transition moves to next if seq is still the current attempt.
func (p *revealPipeline) transition(seq uint64, next State) bool {
	p.mu.Lock()
	if seq != p.seq {
		p.mu.Unlock()
		return false
	}
	p.state = next
	p.mu.Unlock()

	p.notify(next)
	return true
}

// finish publishes the final state of an attempt. A superseded attempt
// publishes nothing and releases whatever it produced.
func (p *revealPipeline) finish(log *logger.Logger, final State, produced *models.RevealedAssetSet) (State, error) {
	p.mu.Lock()
	if final.Attempt() != p.seq {
		current := p.state
		p.mu.Unlock()

		if err := produced.Release(); err != nil {
			log.Warn().Err(err).Msg("releasing stale assets")
		}
		log.Debug().Msg("stale attempt discarded")
		return current, ErrStaleAttempt
	}
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.state = final
	p.mu.Unlock()

	var err error
	switch s := final.(type) {
	case Rejected:
		err = s.Err
		log.Debug().Msg("passcode rejected")
	case Failed:
		err = s.Err
		p.logFailure(log, s.Err)
	case Revealed:
		log.Info().Int("handles", len(s.Assets.Handles())).Msg("secret revealed")
	}

	p.notify(final)
	return final, err
}

func (p *revealPipeline) logFailure(log *logger.Logger, err error) {
	var event *zerolog.Event
	if errors.Is(err, ErrBundleUnavailable) {
		event = log.Warn()
	} else {
		event = log.Error()
	}

	var assetErr *AssetError
	if errors.As(err, &assetErr) {
		event = event.Str("asset", string(assetErr.Kind))
	}

	event.Err(err).Msg("reveal attempt failed")
}

func (p *revealPipeline) notify(s State) {
	if p.observer != nil {
		p.observer(s)
	}
}

func (p *revealPipeline) loadToken(ctx context.Context) (string, error) {
	token, err := p.source.FetchToken(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBundleUnavailable, err)
	}

	p.mu.Lock()
	p.token = token
	p.mu.Unlock()

	return token, nil
}

// recordDigests fetches the published manifest. A bundle published without
// one yields nil and its records are decrypted unchecked.
func (p *revealPipeline) recordDigests(ctx context.Context, log *logger.Logger) (map[models.AssetKind]string, error) {
	manifest, err := p.source.FetchManifest(ctx)
	if errors.Is(err, adapter.ErrAssetNotFound) {
		log.Debug().Msg("bundle has no manifest, records are not checked")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBundleUnavailable, err)
	}

	return manifest.RecordDigests(), nil
}

// decryptAll derives the key and decrypts every configured asset
// concurrently. CBC without a MAC decrypts most corrupted records to
// garbage, so each record is first checked against its manifest digest. It
// returns only when all assets have finished; on any failure the handles
// produced so far are released.
func (p *revealPipeline) decryptAll(ctx context.Context, log *logger.Logger, passcode string) (*models.RevealedAssetSet, error) {
	digests, err := p.recordDigests(ctx, log)
	if err != nil {
		return nil, err
	}

	key, err := p.cipher.DeriveKey(passcode)
	if err != nil {
		return nil, fmt.Errorf("%w: derive key: %w", ErrDecryption, err)
	}
	defer key.Destroy()

	var (
		mu  sync.Mutex
		set = &models.RevealedAssetSet{}
	)

	g, gctx := errgroup.WithContext(ctx)
	for _, kind := range p.kinds {
		g.Go(func() error {
			want, listed := digests[kind]

			record, err := p.source.FetchRecord(gctx, kind)
			if err != nil {
				if kind.Optional() && !listed && errors.Is(err, adapter.ErrAssetNotFound) {
					log.Debug().Str("asset", string(kind)).Msg("optional asset absent")
					return nil
				}
				return assetError(kind, ErrBundleUnavailable, err)
			}
			if listed && utils.DigestString(record.String()) != want {
				return assetError(kind, ErrDecryption, errRecordDigest)
			}

			plain, err := p.cipher.Decrypt(record, key)
			if err != nil {
				return assetError(kind, ErrDecryption, err)
			}
			defer clear(plain)

			if !kind.Binary() {
				if !utf8.Valid(plain) {
					return assetError(kind, ErrDecryption, errors.New("text is not valid utf-8"))
				}
				mu.Lock()
				set.Text = string(plain)
				mu.Unlock()
				return nil
			}

			handle, err := p.materializer.Materialize(kind, plain)
			if err != nil {
				return assetError(kind, ErrDecryption, err)
			}
			mu.Lock()
			set.Set(handle)
			mu.Unlock()
			return nil
		})
	}

	if err = g.Wait(); err != nil {
		if releaseErr := set.Release(); releaseErr != nil {
			log.Warn().Err(releaseErr).Msg("releasing partial assets")
		}
		return nil, err
	}

	return set, nil
}
