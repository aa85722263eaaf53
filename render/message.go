package render

import (
	"strings"
	"sync"

	"github.com/muesli/reflow/wordwrap"
)

// MessageBar is the shared on-screen text line zones write prompts and messages to
type MessageBar struct {
	mu   sync.RWMutex
	text string
}

// NewMessageBar creates an empty bar
func NewMessageBar() *MessageBar {
	return &MessageBar{}
}

// SetText replaces the displayed text, empty clears it
func (m *MessageBar) SetText(text string) {
	m.mu.Lock()
	m.text = text
	m.mu.Unlock()
}

// Text returns the displayed text
func (m *MessageBar) Text() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.text
}

// Lines wraps the text to width, keeping at most rows lines
func (m *MessageBar) Lines(width, rows int) []string {
	text := m.Text()
	if text == "" || width <= 0 || rows <= 0 {
		return nil
	}
	lines := strings.Split(wordwrap.String(text, width), "\n")
	if len(lines) > rows {
		lines = lines[:rows]
	}
	return lines
}

// Render centers the wrapped text in the message rows
func (m *MessageBar) Render(ctx RenderContext, buf *RenderBuffer) {
	top := ctx.MessageTop()
	rows := ctx.ScreenHeight - top
	for y := top; y < ctx.ScreenHeight; y++ {
		buf.Fill(y, ColorStatusBg)
	}

	for i, line := range m.Lines(ctx.ScreenWidth-2, rows) {
		x := max((ctx.ScreenWidth-len([]rune(line)))/2, 0)
		buf.Text(x, top+i, line, ColorMessageFg, ColorStatusBg)
	}
}
