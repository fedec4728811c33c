package combiner

import (
	"unicode"

	"github.com/gg582/hancomb/internal/hangul"
	"github.com/gg582/hancomb/internal/types"
)

// Combiner is the composition state of one word: the characters already
// decided and the syllable still being assembled. With no active syllable
// the combiner is idle.
type Combiner struct {
	flushed []rune
	active  *hangul.Syllable
	table   *hangul.Table
}

func New() *Combiner {
	return &Combiner{
		flushed: make([]rune, 0, 16),
		table:   hangul.Combinations,
	}
}

// ProcessEvent consumes one event and reports what the host has to do
// with it.
func (c *Combiner) ProcessEvent(ev Event) Result {
	if ev.KeyCode == types.KeyShift {
		return passThrough(ev)
	}
	if isWhitespace(ev.CodePoint) {
		return c.commitAndReset(ev)
	}
	if ev.IsFunctional {
		if ev.KeyCode == types.KeyDelete {
			return c.handleDelete(ev)
		}
		return c.commitAndReset(ev)
	}
	c.handleCharacter(ev)
	return consumed(ev)
}

// CombiningStateFeedback is the text of the composing region.
func (c *Combiner) CombiningStateFeedback() string {
	text := string(c.flushed)
	if c.active != nil {
		text += c.active.String()
	}
	return text
}

// Composing reports whether a syllable is under construction.
func (c *Combiner) Composing() bool {
	return c.active != nil
}

// Reset drops all state of the current word.
func (c *Combiner) Reset() {
	c.flushed = c.flushed[:0]
	c.active = nil
}

func (c *Combiner) commitAndReset(trigger Event) Result {
	text := c.CombiningStateFeedback()
	c.Reset()
	tracer().Debugf("combiner: commit %q before %s", text, trigger)
	return committed(text, trigger)
}

func (c *Combiner) handleDelete(ev Event) Result {
	switch {
	case c.active != nil && len(c.flushed) == 0, c.active == nil && len(c.flushed) == 1:
		// The last unit goes away: hand the host a space keypress
		// instead of a delete.
		c.Reset()
		tracer().Debugf("combiner: delete emptied the word, synthesizing space")
		return synthesizedSpace(ev)
	case c.active != nil:
		c.active = nil
		return consumed(ev)
	case len(c.flushed) > 0:
		c.flushed = c.flushed[:len(c.flushed)-1]
		return consumed(ev)
	default:
		return passThrough(ev)
	}
}

func (c *Combiner) handleCharacter(ev Event) {
	current := hangul.Syllable{}
	if c.active != nil {
		current = *c.active
	}

	jamo := hangul.Classify(ev.CodePoint)
	if !ev.IsCombining || jamo.Role == hangul.RoleNonHangul {
		c.flushLiteral(current, ev.CodePoint)
		return
	}

	switch jamo.Role {
	case hangul.RoleInitial:
		if current.Initial == nil {
			c.setActive(current.WithInitial(jamo))
			return
		}
		// A second initial only compounds while nothing follows the first.
		if combined, ok := c.combine(current.Initial.CodePoint, jamo.CodePoint); ok && current.Medial == nil && current.Final == nil {
			c.setActive(current.WithInitial(hangul.Classify(combined)))
			return
		}
		c.restart(current, hangul.Syllable{}.WithInitial(jamo))
	case hangul.RoleMedial:
		if current.Medial == nil {
			c.setActive(current.WithMedial(jamo))
			return
		}
		if combined, ok := c.combine(current.Medial.CodePoint, jamo.CodePoint); ok && current.Final == nil {
			c.setActive(current.WithMedial(hangul.Classify(combined)))
			return
		}
		c.restart(current, hangul.Syllable{}.WithMedial(jamo))
	case hangul.RoleFinal:
		if current.Final == nil {
			c.setActive(current.WithFinal(jamo))
			return
		}
		if combined, ok := c.combine(current.Final.CodePoint, jamo.CodePoint); ok {
			c.setActive(current.WithFinal(hangul.Classify(combined)))
			return
		}
		c.restart(current, hangul.Syllable{}.WithFinal(jamo))
	case hangul.RoleConsonant:
		initial, ok := jamo.ToInitial()
		if !ok {
			c.flushLiteral(current, ev.CodePoint)
			return
		}
		c.restart(current, hangul.Syllable{}.WithInitial(initial))
	case hangul.RoleVowel:
		medial, ok := jamo.ToMedial()
		if !ok {
			c.flushLiteral(current, ev.CodePoint)
			return
		}
		c.restart(current, hangul.Syllable{}.WithMedial(medial))
	}
}

func (c *Combiner) combine(a, b rune) (rune, bool) {
	if c.table == nil {
		return hangul.Combinations.Combine(a, b)
	}
	return c.table.Combine(a, b)
}

func (c *Combiner) setActive(s hangul.Syllable) {
	c.active = &s
}

// restart flushes current and begins next as the active syllable.
func (c *Combiner) restart(current, next hangul.Syllable) {
	c.flushed = append(c.flushed, []rune(current.String())...)
	c.setActive(next)
}

// flushLiteral ends composition: current and cp become plain text.
func (c *Combiner) flushLiteral(current hangul.Syllable, cp rune) {
	c.flushed = append(c.flushed, []rune(current.String())...)
	c.flushed = append(c.flushed, cp)
	c.active = nil
}

// isWhitespace follows the word-breaking notion of whitespace: non-breaking
// spaces keep a word together and do not count.
func isWhitespace(r rune) bool {
	switch r {
	case 0x00A0, 0x2007, 0x202F, 0x0085:
		return false
	case 0x1C, 0x1D, 0x1E, 0x1F:
		return true
	}
	return unicode.IsSpace(r)
}
