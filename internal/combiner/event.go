package combiner

import (
	"fmt"

	"github.com/gg582/hancomb/internal/types"
)

// Event is a normalized input event as produced by a key decoder.
type Event struct {
	CodePoint    rune
	KeyCode      types.KeyCode
	IsKeyRepeat  bool
	IsFunctional bool
	// IsCombining is set by the decoder when the code point may take part
	// in syllable assembly.
	IsCombining bool
}

// CharEvent builds an ordinary character event.
func CharEvent(cp rune, combining bool) Event {
	return Event{CodePoint: cp, KeyCode: types.KeyNone, IsCombining: combining}
}

// KeyEvent builds the event of a named key. Keys that also produce a
// character carry it as code point.
func KeyEvent(code types.KeyCode) Event {
	ev := Event{KeyCode: code, IsFunctional: code.Functional()}
	switch code {
	case types.KeyEnter:
		ev.CodePoint = '\n'
	case types.KeyTab:
		ev.CodePoint = '\t'
	case types.KeySpace:
		ev.CodePoint = ' '
	case types.KeyEscape:
		ev.CodePoint = 0x1B
	}
	return ev
}

func (e Event) String() string {
	if e.KeyCode != types.KeyNone {
		return fmt.Sprintf("key(%s)", e.KeyCode)
	}
	return fmt.Sprintf("char(%U combining=%t)", e.CodePoint, e.IsCombining)
}

// ResultKind discriminates the outcomes of ProcessEvent.
type ResultKind int

const (
	// Consumed means the event was absorbed; only the feedback changed.
	Consumed ResultKind = iota
	// Committed carries text to insert before Event is delivered.
	Committed
	// Synthesized replaces the input with the raw key in Event.
	Synthesized
	// PassThrough hands the input event back unmodified.
	PassThrough
)

func (k ResultKind) String() string {
	switch k {
	case Consumed:
		return "consumed"
	case Committed:
		return "committed"
	case Synthesized:
		return "synthesized"
	case PassThrough:
		return "pass-through"
	default:
		return "unknown"
	}
}

// Result is the single output of ProcessEvent. Chaining Text with Event is
// left to the caller.
type Result struct {
	Kind  ResultKind
	Text  string
	Event Event
}

// KeyCode is the marker of the result itself: committed text is a
// multi-code-point event, everything else keeps the key of Event.
func (r Result) KeyCode() types.KeyCode {
	if r.Kind == Committed {
		return types.KeyMultipleCodePoints
	}
	return r.Event.KeyCode
}

func consumed(ev Event) Result {
	return Result{Kind: Consumed, Event: ev}
}

func committed(text string, trigger Event) Result {
	return Result{Kind: Committed, Text: text, Event: trigger}
}

func passThrough(ev Event) Result {
	return Result{Kind: PassThrough, Event: ev}
}

// synthesizedSpace is the raw space keypress emitted when a delete empties
// the composing region.
func synthesizedSpace(trigger Event) Result {
	return Result{
		Kind: Synthesized,
		Event: Event{
			CodePoint:   ' ',
			KeyCode:     types.KeySpace,
			IsKeyRepeat: trigger.IsKeyRepeat,
		},
	}
}
