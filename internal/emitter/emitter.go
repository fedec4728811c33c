package emitter

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gg582/hancomb/internal/combiner"
	"github.com/gg582/hancomb/internal/types"
)

var ErrClosed = errors.New("emitter closed")

// Buffer is an in-memory host editor. Committed lines move to Lines when an
// Enter key is forwarded; the line under edit stays in Current.
type Buffer struct {
	line   []rune
	lines  []string
	closed bool
}

func NewBuffer() *Buffer {
	return &Buffer{}
}

func (b *Buffer) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	return nil
}

func (b *Buffer) SendText(text string) error {
	if b.closed {
		return ErrClosed
	}
	if text == "" {
		return nil
	}
	if !utf8.ValidString(text) {
		return fmt.Errorf("invalid utf-8 sequence")
	}
	for _, r := range text {
		b.insert(r)
	}
	return nil
}

func (b *Buffer) SendBackspace(count int) error {
	if b.closed {
		return ErrClosed
	}
	for i := 0; i < count; i++ {
		b.backspace()
	}
	return nil
}

// ForwardKey applies a raw key the way a plain text field would: delete
// erases one character, shift and escape do nothing, anything else inserts
// its code point.
func (b *Buffer) ForwardKey(ev combiner.Event) error {
	if b.closed {
		return ErrClosed
	}
	switch ev.KeyCode {
	case types.KeyDelete:
		b.backspace()
	case types.KeyShift, types.KeyEscape:
	default:
		if ev.CodePoint != 0 {
			b.insert(ev.CodePoint)
		}
	}
	return nil
}

func (b *Buffer) insert(r rune) {
	if r == '\n' {
		b.lines = append(b.lines, string(b.line))
		b.line = b.line[:0]
		return
	}
	b.line = append(b.line, r)
}

func (b *Buffer) backspace() {
	if len(b.line) > 0 {
		b.line = b.line[:len(b.line)-1]
	}
}

// Current is the line under edit.
func (b *Buffer) Current() string { return string(b.line) }

// Lines returns the lines finished with Enter.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

func (b *Buffer) String() string {
	var sb strings.Builder
	for _, line := range b.lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	sb.WriteString(string(b.line))
	return sb.String()
}
