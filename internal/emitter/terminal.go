package emitter

import (
	"bufio"
	"io"

	"github.com/gg582/hancomb/internal/combiner"
)

const clearLine = "\r\033[K"

// Terminal keeps a Buffer and repaints its current line on w after every
// change. Enter finishes the line on screen as well.
type Terminal struct {
	buf    *Buffer
	out    *bufio.Writer
	closed bool
}

func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{buf: NewBuffer(), out: bufio.NewWriter(w)}
}

func (t *Terminal) SendText(text string) error {
	if err := t.buf.SendText(text); err != nil {
		return err
	}
	return t.redraw()
}

func (t *Terminal) SendBackspace(count int) error {
	if err := t.buf.SendBackspace(count); err != nil {
		return err
	}
	return t.redraw()
}

func (t *Terminal) ForwardKey(ev combiner.Event) error {
	finished := len(t.buf.lines)
	if err := t.buf.ForwardKey(ev); err != nil {
		return err
	}
	if len(t.buf.lines) > finished {
		// raw mode: the cursor needs an explicit carriage return
		if _, err := t.out.WriteString(clearLine + t.buf.lines[len(t.buf.lines)-1] + "\r\n"); err != nil {
			return err
		}
	}
	return t.redraw()
}

func (t *Terminal) redraw() error {
	if _, err := t.out.WriteString(clearLine + t.buf.Current()); err != nil {
		return err
	}
	return t.out.Flush()
}

// Buffer exposes the text shown so far.
func (t *Terminal) Buffer() *Buffer { return t.buf }

func (t *Terminal) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	if _, err := t.out.WriteString("\r\n"); err != nil {
		return err
	}
	if err := t.out.Flush(); err != nil {
		return err
	}
	return t.buf.Close()
}
