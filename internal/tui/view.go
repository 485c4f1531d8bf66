package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/MKhiriev/secret-decoder/internal/animation"
	"github.com/MKhiriev/secret-decoder/internal/service"
	"github.com/MKhiriev/secret-decoder/models"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultWidth  = 80
	confettiRows  = 8
	confettiGlyph = "*"
)

func (m model) View() string {
	if m.showInfo {
		return appStyle.Render(renderBuildInfoWindow(m.info))
	}

	var body string
	switch m.screen {
	case screenDecrypting:
		body = m.decryptingView()
	case screenReveal:
		body = m.revealView()
	default:
		body = m.entryView()
	}
	return appStyle.Render(body)
}

func (m model) entryView() string {
	var b strings.Builder

	b.WriteString("Enter the 6-digit code to unlock the message.\n\n")
	b.WriteString(codeBoxStyle.Render(codeSlots(m.input.Value())))
	b.WriteString("\n\n")

	switch {
	case m.errMsg != "":
		b.WriteString(errorStyle.Render(m.errMsg))
	case m.state != nil && service.InFlight(m.state):
		b.WriteString(statusStyle.Render("Checking code..."))
	}

	return renderPage("Secret Decoder", b.String(), "0-9: type │ enter: submit │ esc: clear │ q: quit")
}

func (m model) decryptingView() string {
	msg := animation.MessageAt(m.now().Sub(m.decryptStarted))
	data := m.spinner.View() + " " + msg

	return renderPage("Decrypting", data, "esc: cancel │ q: quit")
}

func (m model) revealView() string {
	var b strings.Builder

	if band := m.confettiView(); band != "" {
		b.WriteString(band)
		b.WriteString("\n")
	}

	rendered := m.renderedText()
	b.WriteString(revealTitle.Render(rendered.Title))
	b.WriteString("\n\n")
	width := m.contentWidth()
	for i, para := range rendered.Paragraphs {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(lipgloss.NewStyle().Width(width).Render(para))
	}

	if m.assets != nil {
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render(assetsSummary(m.assets, width)))
	}

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render(m.status))
	}

	return renderPage("Unlocked", b.String(), "c: copy message │ r: lock again │ esc: skip animation │ q: quit")
}

func (m model) renderedText() animation.RenderedText {
	if m.skipAnimation {
		return m.script.Render(m.script.Duration())
	}
	return m.script.Render(m.now().Sub(m.revealStarted))
}

// confettiView projects the particles onto a band of confettiRows lines
// spanning the content width.
func (m model) confettiView() string {
	if m.confetti == nil || m.confetti.Done() {
		return ""
	}

	cols := m.contentWidth()
	canvasW, canvasH := m.confetti.Size()

	cells := make([][]string, confettiRows)
	for r := range cells {
		cells[r] = make([]string, cols)
	}

	for _, p := range m.confetti.Particles() {
		col := int(math.Floor(p.X / canvasW * float64(cols)))
		row := int(math.Floor(p.Y / canvasH * float64(confettiRows)))
		if col < 0 || col >= cols || row < 0 || row >= confettiRows {
			continue
		}
		cells[row][col] = lipgloss.NewStyle().Foreground(lipgloss.Color(p.Color)).Render(confettiGlyph)
	}

	lines := make([]string, confettiRows)
	for r, row := range cells {
		var b strings.Builder
		for _, cell := range row {
			if cell == "" {
				b.WriteString(" ")
				continue
			}
			b.WriteString(cell)
		}
		lines[r] = b.String()
	}
	return strings.Join(lines, "\n")
}

func (m model) contentWidth() int {
	w := m.width - appStyle.GetHorizontalFrameSize()
	if w <= 0 {
		return defaultWidth
	}
	return w
}

func assetsSummary(set *models.RevealedAssetSet, width int) string {
	lines := make([]string, 0, 3)
	for _, h := range set.Handles() {
		line := fmt.Sprintf("%-10s %-10s %8s  %s", h.Kind, h.MIMEType, humanSize(h.Size), handleLocation(h))
		lines = append(lines, fitText(line, width))
	}
	return strings.Join(lines, "\n")
}

// handleLocation shows file URLs in full and abbreviates data URIs to
// their header.
func handleLocation(h *models.ResourceHandle) string {
	if head, _, ok := strings.Cut(h.URL, ","); ok && strings.HasPrefix(h.URL, "data:") {
		return head + ",..."
	}
	return h.URL
}
