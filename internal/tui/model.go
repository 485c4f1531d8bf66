package tui

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/MKhiriev/secret-decoder/internal/animation"
	"github.com/MKhiriev/secret-decoder/internal/logger"
	"github.com/MKhiriev/secret-decoder/internal/service"
	"github.com/MKhiriev/secret-decoder/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenEntry screen = iota
	screenDecrypting
	screenReveal
)

const (
	frameInterval = 50 * time.Millisecond
	statusTTL     = 2 * time.Second
)

var copyToClipboard = clipboard.WriteAll

type model struct {
	ctx      context.Context
	pipeline service.RevealPipeline
	info     models.AppBuildInfo
	logger   *logger.Logger
	now      func() time.Time
	rng      *rand.Rand

	screen   screen
	input    textinput.Model
	spinner  spinner.Model
	showInfo bool
	width    int
	height   int

	// state is the last pipeline state applied to the screen.
	state   service.State
	errMsg  string
	status  string
	ticking bool

	decryptStarted time.Time
	revealStarted  time.Time
	skipAnimation  bool
	assets         *models.RevealedAssetSet
	script         animation.TextScript
	confetti       *animation.Confetti
}

func newModel(ctx context.Context, pipeline service.RevealPipeline, info models.AppBuildInfo, log *logger.Logger) model {
	in := textinput.New()
	in.CharLimit = models.PasscodeLength
	in.Width = models.PasscodeLength + 1
	in.Prompt = ""
	in.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = statusStyle

	now := time.Now()
	return model{
		ctx:      ctx,
		pipeline: pipeline,
		info:     info,
		logger:   log,
		now:      time.Now,
		rng:      rand.New(rand.NewPCG(uint64(now.UnixNano()), uint64(now.Unix()))),
		screen:   screenEntry,
		input:    in,
		spinner:  sp,
		state:    service.Idle{},
	}
}

func (m model) Init() tea.Cmd {
	return m.preloadCmd()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.showInfo {
			if key.Matches(msg, keys.esc, keys.info) {
				m.showInfo = false
			}
			return m, nil
		}
		if key.Matches(msg, keys.info) {
			m.showInfo = true
			return m, nil
		}

	case preloadDoneMsg:
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Msg("token preload failed")
		}
		return m, nil

	case stateMsg:
		return m.applyState(msg.state)

	case submitDoneMsg:
		return m.handleSubmitDone(msg)

	case resetDoneMsg:
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Msg("reset")
		}
		return m.applyState(m.pipeline.State())

	case frameMsg:
		return m.handleFrame()

	case copiedMsg:
		if msg.err != nil {
			m.status = "Copy failed: " + msg.err.Error()
		} else {
			m.status = "Message copied to clipboard"
		}
		return m, clearStatusCmd()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		if m.screen != screenDecrypting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	switch m.screen {
	case screenDecrypting:
		return m.updateDecrypting(msg)
	case screenReveal:
		return m.updateReveal(msg)
	default:
		return m.updateEntry(msg)
	}
}

func (m model) updateEntry(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, keys.quit):
			return m, tea.Quit
		case key.Matches(k, keys.esc):
			m.input.Reset()
			m.errMsg = ""
			return m, nil
		case key.Matches(k, keys.enter):
			return m, m.submitCmd(m.input.Value())
		case k.Type == tea.KeyRunes && !allDigits(k.Runes):
			return m, nil
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	value := m.input.Value()
	if value != before {
		m.errMsg = ""
		if models.IsCompletePasscode(value) {
			return m, m.submitCmd(value)
		}
	}
	return m, cmd
}

func (m model) updateDecrypting(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, keys.quit):
			return m, tea.Quit
		case key.Matches(k, keys.esc):
			return m, m.resetCmd()
		}
	}
	return m, nil
}

func (m model) updateReveal(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(k, keys.quit):
		return m, tea.Quit
	case key.Matches(k, keys.reset):
		return m, m.resetCmd()
	case key.Matches(k, keys.copy):
		if m.assets == nil {
			return m, nil
		}
		return m, copyCmd(m.assets.Text)
	case key.Matches(k, keys.esc, keys.enter):
		m.skipAnimation = true
	}
	return m, nil
}

// applyState moves the screen to st. States of older attempts and repeats of
// the current one are ignored.
func (m model) applyState(st service.State) (tea.Model, tea.Cmd) {
	if st == nil {
		return m, nil
	}
	if m.state != nil {
		if st.Attempt() < m.state.Attempt() {
			return m, nil
		}
		if st.Attempt() == m.state.Attempt() && st.Phase() == m.state.Phase() {
			return m, nil
		}
	}
	m.state = st

	switch s := st.(type) {
	case service.Idle:
		m.toEntry()
		m.errMsg = ""
		return m, nil

	case service.Verifying:
		m.errMsg = ""
		return m, nil

	case service.Decrypting:
		m.screen = screenDecrypting
		m.decryptStarted = m.now()
		return m, tea.Batch(m.spinner.Tick, m.startFrames())

	case service.Rejected:
		m.toEntry()
		m.errMsg = s.Message()
		return m, nil

	case service.Failed:
		m.toEntry()
		m.errMsg = s.Message()
		return m, nil

	case service.Revealed:
		m.screen = screenReveal
		m.assets = s.Assets
		m.script = animation.NewTextScript(s.Assets.Text)
		m.confetti = animation.NewConfetti(animation.DefaultCanvasWidth, animation.DefaultCanvasHeight, m.rng)
		m.revealStarted = m.now()
		m.skipAnimation = false
		m.errMsg = ""
		return m, m.startFrames()
	}

	return m, nil
}

func (m *model) toEntry() {
	m.screen = screenEntry
	m.assets = nil
	m.confetti = nil
	m.script = animation.TextScript{}
	m.input.Reset()
	m.input.Focus()
}

func (m model) handleSubmitDone(msg submitDoneMsg) (tea.Model, tea.Cmd) {
	switch {
	case errors.Is(msg.err, service.ErrStaleAttempt), errors.Is(msg.err, service.ErrAlreadyRevealed):
		return m, nil
	case errors.Is(msg.err, service.ErrPasscodeLength):
		m.errMsg = service.UserMessage(msg.err)
		return m, nil
	}
	return m.applyState(msg.state)
}

func (m model) handleFrame() (tea.Model, tea.Cmd) {
	switch m.screen {
	case screenDecrypting:
		return m, frameCmd()
	case screenReveal:
		if m.confetti != nil && !m.confetti.Done() {
			m.confetti.Step()
		}
		if !m.animationDone() {
			return m, frameCmd()
		}
	}
	m.ticking = false
	return m, nil
}

func (m model) animationDone() bool {
	if m.skipAnimation {
		return m.confetti == nil || m.confetti.Done()
	}
	return m.script.Done(m.now().Sub(m.revealStarted)) && (m.confetti == nil || m.confetti.Done())
}

func (m *model) startFrames() tea.Cmd {
	if m.ticking {
		return nil
	}
	m.ticking = true
	return frameCmd()
}

func (m model) preloadCmd() tea.Cmd {
	return func() tea.Msg {
		return preloadDoneMsg{err: m.pipeline.Preload(m.ctx)}
	}
}

func (m model) submitCmd(candidate string) tea.Cmd {
	return func() tea.Msg {
		st, err := m.pipeline.Submit(m.ctx, candidate)
		return submitDoneMsg{state: st, err: err}
	}
}

func (m model) resetCmd() tea.Cmd {
	return func() tea.Msg {
		return resetDoneMsg{err: m.pipeline.Reset()}
	}
}

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg{at: t}
	})
}

func copyCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: copyToClipboard(text)}
	}
}

func clearStatusCmd() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func allDigits(rs []rune) bool {
	if len(rs) == 0 {
		return false
	}
	for _, r := range rs {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// codeSlots renders the typed digits followed by blanks for the missing
// ones.
func codeSlots(v string) string {
	var b strings.Builder
	for i := range models.PasscodeLength {
		if i < len(v) {
			b.WriteString(string(v[i]))
		} else {
			b.WriteString("_")
		}
		if i < models.PasscodeLength-1 {
			b.WriteString(" ")
		}
	}
	return b.String()
}
