// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package animation

import (
	"iter"
	"strings"
	"time"
)

const (
	// TitleCharDelay is the pause between two title characters.
	TitleCharDelay = 250 * time.Millisecond
	// BodyCharDelay is one step of the paragraph reveal.
	BodyCharDelay = 25 * time.Millisecond
	// WordStride is the number of steps reserved per word, so short and
	// long words start at an even pace.
	WordStride = 5
	// ParagraphDelay separates the start of two consecutive paragraphs.
	ParagraphDelay = 500 * time.Millisecond
)

// Glyph is one character of the message with its reveal time.
type Glyph struct {
	Rune rune
	At   time.Duration
}

// TextScript is the reveal schedule of a message. The first line is the
// title; the rest is split into paragraphs on blank lines.
type TextScript struct {
	Title      []Glyph
	Paragraphs [][]Glyph
}

// NewTextScript schedules text. Title characters appear one every
// [TitleCharDelay]. Paragraph i starts once the title is complete plus
// i*[ParagraphDelay]; inside it, character c of word w appears after
// (w*[WordStride]+c) steps of [BodyCharDelay], and the space after word w
// after (w+1)*[WordStride] steps. Words longer than the stride therefore
// overlap the next word, which is intended.
func NewTextScript(text string) TextScript {
	title, rest, _ := strings.Cut(text, "\n")

	titleRunes := []rune(title)
	script := TextScript{Title: make([]Glyph, len(titleRunes))}
	for i, r := range titleRunes {
		script.Title[i] = Glyph{Rune: r, At: time.Duration(i) * TitleCharDelay}
	}

	if strings.TrimSpace(rest) == "" {
		return script
	}

	titleDone := time.Duration(len(titleRunes)) * TitleCharDelay
	for i, para := range strings.Split(rest, "\n\n") {
		start := titleDone + time.Duration(i)*ParagraphDelay
		script.Paragraphs = append(script.Paragraphs, scheduleParagraph(para, start))
	}

	return script
}

func scheduleParagraph(para string, start time.Duration) []Glyph {
	var glyphs []Glyph

	words := strings.Split(para, " ")
	for w, word := range words {
		c := 0
		for _, r := range word {
			glyphs = append(glyphs, Glyph{Rune: r, At: start + time.Duration(w*WordStride+c)*BodyCharDelay})
			c++
		}
		if w < len(words)-1 {
			glyphs = append(glyphs, Glyph{Rune: ' ', At: start + time.Duration((w+1)*WordStride)*BodyCharDelay})
		}
	}

	return glyphs
}

// Glyphs yields every glyph, title first, in text order.
func (s TextScript) Glyphs() iter.Seq[Glyph] {
	return func(yield func(Glyph) bool) {
		for _, g := range s.Title {
			if !yield(g) {
				return
			}
		}
		for _, para := range s.Paragraphs {
			for _, g := range para {
				if !yield(g) {
					return
				}
			}
		}
	}
}

// Duration is the time at which the last glyph appears.
func (s TextScript) Duration() time.Duration {
	var last time.Duration
	for g := range s.Glyphs() {
		last = max(last, g.At)
	}
	return last
}

// Done reports whether every glyph is visible at elapsed.
func (s TextScript) Done(elapsed time.Duration) bool {
	return elapsed >= s.Duration()
}

// RenderedText is the message as it looks at one moment.
type RenderedText struct {
	Title      string
	Paragraphs []string
}

// Render returns the message at elapsed. Characters not yet visible are
// replaced with spaces, except newlines, so the layout does not shift while
// the text appears.
func (s TextScript) Render(elapsed time.Duration) RenderedText {
	out := RenderedText{
		Title:      renderGlyphs(s.Title, elapsed),
		Paragraphs: make([]string, len(s.Paragraphs)),
	}
	for i, para := range s.Paragraphs {
		out.Paragraphs[i] = renderGlyphs(para, elapsed)
	}
	return out
}

func renderGlyphs(glyphs []Glyph, elapsed time.Duration) string {
	var b strings.Builder
	b.Grow(len(glyphs))

	for _, g := range glyphs {
		if g.At <= elapsed || g.Rune == '\n' {
			b.WriteRune(g.Rune)
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// Frames yields the rendered text every step until the script is done.
// The final frame always shows the whole message.
func (s TextScript) Frames(step time.Duration) iter.Seq2[time.Duration, RenderedText] {
	return func(yield func(time.Duration, RenderedText) bool) {
		if step <= 0 {
			step = BodyCharDelay
		}
		end := s.Duration()
		for elapsed := time.Duration(0); ; elapsed += step {
			if elapsed >= end {
				yield(end, s.Render(end))
				return
			}
			if !yield(elapsed, s.Render(elapsed)) {
				return
			}
		}
	}
}
