package engine

import (
	"fmt"
	"log/slog"

	"golang.org/x/text/unicode/norm"

	"github.com/gg582/hancomb/internal/combiner"
	"github.com/gg582/hancomb/internal/emitter"
	"github.com/gg582/hancomb/internal/layout"
	"github.com/gg582/hancomb/internal/types"
)

// Engine drives a Combiner and mirrors its composing region into an
// Output as preedit text.
type Engine struct {
	combiner *combiner.Combiner
	layout   *layout.Layout
	emitter  emitter.Output
	log      *slog.Logger
	preedit  string
}

func NewEngine(keyLayout *layout.Layout, out emitter.Output, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{
		combiner: combiner.New(),
		layout:   keyLayout,
		emitter:  out,
		log:      log.With("layout", keyLayout.Name()),
	}
}

// TypeRune feeds one typed character through the layout.
func (e *Engine) TypeRune(r rune) error {
	for _, ev := range e.layout.Decode(r) {
		if err := e.Process(ev); err != nil {
			return err
		}
	}
	return nil
}

// PressKey feeds a named key.
func (e *Engine) PressKey(code types.KeyCode) error {
	return e.Process(layout.DecodeKey(code))
}

func (e *Engine) Process(ev combiner.Event) error {
	res := e.combiner.ProcessEvent(ev)
	e.log.Debug("processed event", "event", ev.String(), "result", res.Kind.String())

	switch res.Kind {
	case combiner.Consumed:
		return e.replacePreedit(e.combiner.CombiningStateFeedback())
	case combiner.Committed:
		if err := e.commitText(res.Text); err != nil {
			return err
		}
		return e.forwardKey(res.Event)
	case combiner.Synthesized:
		if err := e.replacePreedit(""); err != nil {
			return err
		}
		return e.forwardKey(res.Event)
	case combiner.PassThrough:
		if err := e.replacePreedit(e.combiner.CombiningStateFeedback()); err != nil {
			return err
		}
		return e.forwardKey(res.Event)
	default:
		return fmt.Errorf("unexpected result kind %s", res.Kind)
	}
}

// Flush commits whatever is being composed without forwarding a key.
func (e *Engine) Flush() error {
	text := e.combiner.CombiningStateFeedback()
	e.combiner.Reset()
	return e.commitText(text)
}

// Preedit is the composing text currently shown in the host.
func (e *Engine) Preedit() string { return e.preedit }

func (e *Engine) Close() error {
	if err := e.Flush(); err != nil {
		return err
	}
	return e.emitter.Close()
}

func (e *Engine) commitText(text string) error {
	if err := e.replacePreedit(""); err != nil {
		return err
	}
	if text == "" {
		return nil
	}
	if !norm.NFC.IsNormalString(text) {
		e.log.Debug("committed text is not NFC", "text", text)
	}
	e.log.Debug("commit", "text", text)
	return e.sendText(text)
}

func (e *Engine) replacePreedit(newText string) error {
	if newText == e.preedit {
		return nil
	}
	if e.preedit != "" {
		count := countRunes(e.preedit)
		if count > 0 {
			if err := e.emitter.SendBackspace(count); err != nil {
				return fmt.Errorf("erase preedit: %w", err)
			}
		}
	}
	// the old preedit is gone from the host from here on
	e.preedit = ""
	if newText != "" {
		if err := e.emitter.SendText(newText); err != nil {
			return fmt.Errorf("draw preedit: %w", err)
		}
	}
	e.preedit = newText
	return nil
}

func (e *Engine) sendText(text string) error {
	if err := e.emitter.SendText(text); err != nil {
		return fmt.Errorf("send text: %w", err)
	}
	return nil
}

func (e *Engine) forwardKey(ev combiner.Event) error {
	if err := e.emitter.ForwardKey(ev); err != nil {
		return fmt.Errorf("forward %s: %w", ev, err)
	}
	return nil
}

func countRunes(s string) int {
	count := 0
	for range s {
		count++
	}
	return count
}
