package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/secret-decoder/internal/animation"
	"github.com/MKhiriev/secret-decoder/internal/logger"
	"github.com/MKhiriev/secret-decoder/internal/mock"
	"github.com/MKhiriev/secret-decoder/internal/service"
	"github.com/MKhiriev/secret-decoder/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testClock struct {
	t time.Time
}

func (c *testClock) now() time.Time { return c.t }

func (c *testClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestModel(t *testing.T) (model, *mock.MockRevealPipeline, *testClock) {
	t.Helper()
	ctrl := gomock.NewController(t)
	pipeline := mock.NewMockRevealPipeline(ctrl)

	clock := &testClock{t: time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)}
	m := newModel(context.Background(), pipeline, models.NewAppBuildInfo("v1.0.0", "2026-02-14", "abc123"), logger.Nop())
	m.now = clock.now

	return m, pipeline, clock
}

func update(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(model)
	require.True(t, ok)
	return nm, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeCode(t *testing.T, m model, code string) (model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, r := range code {
		m, cmd = update(t, m, runes(string(r)))
	}
	return m, cmd
}

func revealedSet() *models.RevealedAssetSet {
	return &models.RevealedAssetSet{
		Text:  "Happy Birthday\n\nHello world",
		Image: models.NewResourceHandle("img", models.AssetImage, "data:image/png;base64,AAAA", "image/png", 2048, nil),
		Audio: models.NewResourceHandle("aud", models.AssetAudio, "file:///tmp/aud.mp3", "audio/mpeg", 3<<20, nil),
	}
}

func TestModel_InitPreloadsToken(t *testing.T) {
	m, pipeline, _ := newTestModel(t)

	pipeline.EXPECT().Preload(gomock.Any()).Return(service.ErrBundleUnavailable)

	msg := m.Init()()
	done, ok := msg.(preloadDoneMsg)
	require.True(t, ok)
	assert.ErrorIs(t, done.err, service.ErrBundleUnavailable)

	m, cmd := update(t, m, done)
	assert.Nil(t, cmd)
	assert.Equal(t, screenEntry, m.screen)
}

func TestModel_EntryIgnoresNonDigits(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = update(t, m, runes("a"))
	m, _ = update(t, m, runes("1"))
	m, _ = update(t, m, runes("-"))
	m, _ = update(t, m, runes("2"))

	assert.Equal(t, "12", m.input.Value())
	assert.Contains(t, m.View(), "1 2 _ _ _ _")
}

func TestModel_SixDigitsSubmitAutomatically(t *testing.T) {
	m, pipeline, _ := newTestModel(t)

	pipeline.EXPECT().
		Submit(gomock.Any(), "123456").
		Return(service.Rejected{Err: service.ErrVerificationMismatch}, service.ErrVerificationMismatch)

	m, cmd := typeCode(t, m, "123456")
	require.NotNil(t, cmd)

	msg := cmd()
	done, ok := msg.(submitDoneMsg)
	require.True(t, ok)

	m, _ = update(t, m, done)
	assert.Equal(t, screenEntry, m.screen)
	assert.Equal(t, service.MessageIncorrectCode, m.errMsg)
	assert.Empty(t, m.input.Value(), "input must be cleared for the next try")
	assert.Contains(t, m.View(), service.MessageIncorrectCode)
}

func TestModel_EnterWithIncompleteCode(t *testing.T) {
	m, pipeline, _ := newTestModel(t)

	pipeline.EXPECT().
		Submit(gomock.Any(), "123").
		Return(service.Idle{}, service.ErrPasscodeLength)

	m, _ = typeCode(t, m, "123")
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	m, _ = update(t, m, cmd())
	assert.Equal(t, service.MessageIncompleteCode, m.errMsg)
	assert.Equal(t, "123", m.input.Value())
}

func TestModel_EscClearsEntry(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.errMsg = service.MessageIncorrectCode

	m, _ = typeCode(t, m, "42")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Empty(t, m.input.Value())
	assert.Empty(t, m.errMsg)
}

func TestModel_FailedShowsSameMessage(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = update(t, m, stateMsg{state: service.Decrypting{}})
	require.Equal(t, screenDecrypting, m.screen)

	m, _ = update(t, m, stateMsg{state: service.Failed{Err: service.ErrDecryption}})
	assert.Equal(t, screenEntry, m.screen)
	assert.Equal(t, service.MessageIncorrectCode, m.errMsg)
}

func TestModel_DecryptingShowsRotatingMessages(t *testing.T) {
	m, _, clock := newTestModel(t)

	m, cmd := update(t, m, stateMsg{state: service.Decrypting{}})
	assert.NotNil(t, cmd)
	assert.True(t, m.ticking)
	assert.Contains(t, m.View(), animation.DecryptingMessages[0])

	clock.advance(animation.MessageInterval)
	assert.Contains(t, m.View(), animation.DecryptingMessages[1])
}

func TestModel_DecryptingEscResets(t *testing.T) {
	m, pipeline, _ := newTestModel(t)

	gomock.InOrder(
		pipeline.EXPECT().Reset().Return(nil),
		pipeline.EXPECT().State().Return(service.Idle{}),
	)

	m, _ = update(t, m, stateMsg{state: service.Decrypting{}})
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)

	m, _ = update(t, m, cmd())
	assert.Equal(t, screenEntry, m.screen)
}

func TestModel_RevealAnimatesText(t *testing.T) {
	m, _, clock := newTestModel(t)
	m.width = 100

	m, cmd := update(t, m, stateMsg{state: service.Revealed{Assets: revealedSet()}})
	require.NotNil(t, cmd)
	assert.Equal(t, screenReveal, m.screen)
	require.NotNil(t, m.confetti)

	assert.NotContains(t, m.View(), "Hello world")

	clock.advance(m.script.Duration())
	view := m.View()
	assert.Contains(t, view, "Happy Birthday")
	assert.Contains(t, view, "Hello world")
	assert.Contains(t, view, "image/png")
	assert.Contains(t, view, "data:image/png;base64,...")
	assert.Contains(t, view, "file:///tmp/aud.mp3")
	assert.Contains(t, view, "3.0 MB")
}

func TestModel_RevealSkipAnimation(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = update(t, m, stateMsg{state: service.Revealed{Assets: revealedSet()}})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.True(t, m.skipAnimation)
	assert.Contains(t, m.View(), "Hello world")
}

func TestModel_RevealFramesStopWhenDone(t *testing.T) {
	m, _, clock := newTestModel(t)

	m, _ = update(t, m, stateMsg{state: service.Revealed{Assets: revealedSet()}})
	require.True(t, m.ticking)

	clock.advance(m.script.Duration())
	var cmd tea.Cmd
	for range 10_000 {
		m, cmd = update(t, m, frameMsg{})
		if cmd == nil {
			break
		}
	}

	assert.Nil(t, cmd)
	assert.False(t, m.ticking)
	assert.True(t, m.confetti.Done())
	assert.Empty(t, m.confettiView())
}

func TestModel_RepeatedStateIsIgnored(t *testing.T) {
	m, _, _ := newTestModel(t)

	set := revealedSet()
	m, _ = update(t, m, stateMsg{state: service.Revealed{Assets: set}})
	started := m.revealStarted
	confetti := m.confetti

	m, cmd := update(t, m, submitDoneMsg{state: service.Revealed{Assets: set}})
	assert.Nil(t, cmd)
	assert.Equal(t, started, m.revealStarted)
	assert.Same(t, confetti, m.confetti)
}

func TestModel_StaleSubmitIsIgnored(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = update(t, m, stateMsg{state: service.Decrypting{}})
	m, cmd := update(t, m, submitDoneMsg{state: service.Failed{Err: service.ErrDecryption}, err: service.ErrStaleAttempt})

	assert.Nil(t, cmd)
	assert.Equal(t, screenDecrypting, m.screen)
	assert.Empty(t, m.errMsg)
}

func TestModel_CopyMessage(t *testing.T) {
	var copied string
	orig := copyToClipboard
	copyToClipboard = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { copyToClipboard = orig })

	m, _, _ := newTestModel(t)
	m, _ = update(t, m, stateMsg{state: service.Revealed{Assets: revealedSet()}})

	m, cmd := update(t, m, runes("c"))
	require.NotNil(t, cmd)

	m, cmd = update(t, m, cmd())
	assert.NotNil(t, cmd)
	assert.Equal(t, "Happy Birthday\n\nHello world", copied)
	assert.Equal(t, "Message copied to clipboard", m.status)

	m, _ = update(t, m, clearStatusMsg{})
	assert.Empty(t, m.status)
}

func TestModel_CopyFailure(t *testing.T) {
	orig := copyToClipboard
	copyToClipboard = func(string) error { return errors.New("no clipboard") }
	t.Cleanup(func() { copyToClipboard = orig })

	m, _, _ := newTestModel(t)
	m, _ = update(t, m, stateMsg{state: service.Revealed{Assets: revealedSet()}})

	_, cmd := update(t, m, runes("c"))
	m, _ = update(t, m, cmd())
	assert.Equal(t, "Copy failed: no clipboard", m.status)
}

func TestModel_ResetFromReveal(t *testing.T) {
	m, pipeline, _ := newTestModel(t)

	gomock.InOrder(
		pipeline.EXPECT().Reset().Return(nil),
		pipeline.EXPECT().State().Return(service.Idle{}),
	)

	m, _ = update(t, m, stateMsg{state: service.Revealed{Assets: revealedSet()}})
	m, cmd := update(t, m, runes("r"))
	require.NotNil(t, cmd)

	m, _ = update(t, m, cmd())
	assert.Equal(t, screenEntry, m.screen)
	assert.Nil(t, m.assets)
	assert.Nil(t, m.confetti)
	assert.Empty(t, m.input.Value())
}

func TestModel_BuildInfoOverlay(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = update(t, m, runes("i"))
	require.True(t, m.showInfo)
	view := m.View()
	assert.Contains(t, view, "v1.0.0")
	assert.Contains(t, view, "abc123")

	m, _ = update(t, m, runes("5"))
	assert.Empty(t, m.input.Value(), "keys must not reach the entry while the overlay is open")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showInfo)
}

func TestModel_QuitKeys(t *testing.T) {
	m, _, _ := newTestModel(t)

	_, cmd := update(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestStateRelay_DetachedDropsStates(t *testing.T) {
	r := NewStateRelay()
	assert.NotPanics(t, func() { r.Observe(service.Verifying{}) })
}

func TestConfettiView_Dimensions(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.width = 64

	m, _ = update(t, m, stateMsg{state: service.Revealed{Assets: revealedSet()}})
	for range 5 {
		m.confetti.Step()
	}

	band := m.confettiView()
	lines := strings.Split(band, "\n")
	assert.Len(t, lines, confettiRows)
	assert.Contains(t, band, confettiGlyph)
}
