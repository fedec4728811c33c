package combiner

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gg582/hancomb/internal/types"
)

func jamo(cp rune) Event { return CharEvent(cp, true) }

func feed(t *testing.T, c *Combiner, events ...Event) {
	t.Helper()
	for _, ev := range events {
		res := c.ProcessEvent(ev)
		require.Equal(t, Consumed, res.Kind, "event %s", ev)
	}
}

func TestComposeInitialMedial(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hancomb.combiner")
	defer teardown()

	c := New()
	feed(t, c, jamo(0x1100), jamo(0x1161))
	assert.Equal(t, "가", c.CombiningStateFeedback())
	assert.True(t, c.Composing())
}

func TestComposeWithFinal(t *testing.T) {
	c := New()
	feed(t, c, jamo(0x1112))
	assert.Equal(t, "ㅎ", c.CombiningStateFeedback())
	feed(t, c, jamo(0x1161))
	assert.Equal(t, "하", c.CombiningStateFeedback())
	feed(t, c, jamo(0x11AB))
	assert.Equal(t, "한", c.CombiningStateFeedback())
}

func TestCompoundInitial(t *testing.T) {
	c := New()
	feed(t, c, jamo(0x1109), jamo(0x1103))
	require.True(t, c.Composing())
	assert.Equal(t, rune(0x1104), c.active.Initial.CodePoint)
	assert.Equal(t, "ㄸ", c.CombiningStateFeedback())

	feed(t, c, jamo(0x1161))
	assert.Equal(t, "따", c.CombiningStateFeedback())
}

func TestCompoundInitialOnlyBeforeMedial(t *testing.T) {
	c := New()
	feed(t, c, jamo(0x1109), jamo(0x1161), jamo(0x1103))
	assert.Equal(t, "사ㄷ", c.CombiningStateFeedback())
	assert.Equal(t, rune(0x1103), c.active.Initial.CodePoint)
}

func TestInitialMissRestarts(t *testing.T) {
	c := New()
	feed(t, c, jamo(0x1100), jamo(0x1100))
	assert.Equal(t, "ㄱㄱ", c.CombiningStateFeedback())
	assert.Equal(t, []rune("ㄱ"), c.flushed)
}

func TestCompoundMedial(t *testing.T) {
	c := New()
	feed(t, c, jamo(0x110B), jamo(0x1169), jamo(0x1175))
	assert.Equal(t, "외", c.CombiningStateFeedback())
}

func TestCompoundMedialBlockedByFinal(t *testing.T) {
	c := New()
	feed(t, c, jamo(0x1100), jamo(0x1169), jamo(0x11A8), jamo(0x1175))
	assert.Equal(t, "곡ㅣ", c.CombiningStateFeedback())
	assert.Nil(t, c.active.Initial)
	assert.Equal(t, rune(0x1175), c.active.Medial.CodePoint)
}

func TestCompoundFinal(t *testing.T) {
	c := New()
	feed(t, c, jamo(0x1100), jamo(0x1161), jamo(0x11A8), jamo(0x11BA))
	assert.Equal(t, "갃", c.CombiningStateFeedback())
}

func TestFinalMissRestarts(t *testing.T) {
	c := New()
	feed(t, c, jamo(0x1100), jamo(0x1161), jamo(0x11A8), jamo(0x11A8))
	assert.Equal(t, "각ㄱ", c.CombiningStateFeedback())
	require.NotNil(t, c.active.Final)
	assert.Nil(t, c.active.Initial)
}

func TestInitialFillsEmptySlot(t *testing.T) {
	c := New()
	feed(t, c, jamo(0x1161), jamo(0x1100))
	assert.Equal(t, "가", c.CombiningStateFeedback())
}

func TestCompatibilityJamoStartNewSyllable(t *testing.T) {
	c := New()
	feed(t, c, jamo(0x1100), jamo('ㅏ'))
	assert.Equal(t, "ㄱㅏ", c.CombiningStateFeedback())
	assert.Equal(t, rune(0x1161), c.active.Medial.CodePoint)

	feed(t, c, jamo('ㄴ'))
	assert.Equal(t, "ㄱㅏㄴ", c.CombiningStateFeedback())
	assert.Equal(t, rune(0x1102), c.active.Initial.CodePoint)

	// A cluster has no initial form and is kept as literal text.
	feed(t, c, jamo('ㄳ'))
	assert.Equal(t, "ㄱㅏㄴㄳ", c.CombiningStateFeedback())
	assert.False(t, c.Composing())
}

func TestNonHangulNeverComposes(t *testing.T) {
	for _, r := range []rune{'a', 'Z', '.', '!', '7'} {
		c := New()
		res := c.ProcessEvent(CharEvent(r, true))
		assert.Equal(t, Consumed, res.Kind)
		assert.False(t, c.Composing(), "%q", r)
		assert.Equal(t, string(r), c.CombiningStateFeedback())
	}
}

func TestNonCombiningJamoIsLiteral(t *testing.T) {
	c := New()
	feed(t, c, jamo(0x1100), jamo(0x1161), CharEvent(0x1102, false))
	assert.False(t, c.Composing())
	assert.Equal(t, "가\u1102", c.CombiningStateFeedback())
}

func TestWhitespaceCommitsFeedback(t *testing.T) {
	c := New()
	feed(t, c, CharEvent('a', false), jamo(0x1112), jamo(0x1161), jamo(0x11AB))
	want := c.CombiningStateFeedback()
	require.Equal(t, "a한", want)

	space := CharEvent(' ', false)
	res := c.ProcessEvent(space)
	assert.Equal(t, Committed, res.Kind)
	assert.Equal(t, want, res.Text)
	assert.Equal(t, space, res.Event)
	assert.Equal(t, types.KeyMultipleCodePoints, res.KeyCode())
	assert.False(t, c.Composing())
	assert.Empty(t, c.CombiningStateFeedback())
}

func TestWhitespaceWhileIdle(t *testing.T) {
	c := New()
	res := c.ProcessEvent(KeyEvent(types.KeyEnter))
	assert.Equal(t, Committed, res.Kind)
	assert.Empty(t, res.Text)
	assert.Equal(t, types.KeyEnter, res.Event.KeyCode)
}

func TestNonBreakingSpaceIsLiteral(t *testing.T) {
	c := New()
	feed(t, c, jamo(0x1100), jamo(0x1161), CharEvent(0x00A0, false))
	assert.Equal(t, "가\u00a0", c.CombiningStateFeedback())
}

func TestFunctionalKeyCommits(t *testing.T) {
	c := New()
	feed(t, c, jamo(0x1100), jamo(0x1161))
	esc := KeyEvent(types.KeyEscape)
	res := c.ProcessEvent(esc)
	assert.Equal(t, Committed, res.Kind)
	assert.Equal(t, "가", res.Text)
	assert.Equal(t, esc, res.Event)
	assert.Empty(t, c.CombiningStateFeedback())
}

func TestShiftPassesThrough(t *testing.T) {
	c := New()
	feed(t, c, jamo(0x1100))
	shift := KeyEvent(types.KeyShift)
	res := c.ProcessEvent(shift)
	assert.Equal(t, PassThrough, res.Kind)
	assert.Equal(t, shift, res.Event)
	assert.Equal(t, "ㄱ", c.CombiningStateFeedback())
}

func TestDeleteLastSyllableSynthesizesSpace(t *testing.T) {
	c := New()
	feed(t, c, jamo(0x1100))

	del := KeyEvent(types.KeyDelete)
	del.IsKeyRepeat = true
	res := c.ProcessEvent(del)
	assert.Equal(t, Synthesized, res.Kind)
	assert.Equal(t, ' ', res.Event.CodePoint)
	assert.Equal(t, types.KeySpace, res.Event.KeyCode)
	assert.True(t, res.Event.IsKeyRepeat)
	assert.False(t, c.Composing())
	assert.Empty(t, c.CombiningStateFeedback())
}

func TestDeleteLastFlushedCharSynthesizesSpace(t *testing.T) {
	c := New()
	feed(t, c, CharEvent('x', false))
	res := c.ProcessEvent(KeyEvent(types.KeyDelete))
	assert.Equal(t, Synthesized, res.Kind)
	assert.Empty(t, c.CombiningStateFeedback())
}

func TestDeleteDropsWholeSyllable(t *testing.T) {
	c := New()
	feed(t, c, CharEvent('a', false), jamo(0x1112), jamo(0x1161), jamo(0x11AB))

	res := c.ProcessEvent(KeyEvent(types.KeyDelete))
	assert.Equal(t, Consumed, res.Kind)
	assert.False(t, c.Composing())
	assert.Equal(t, "a", c.CombiningStateFeedback())

	res = c.ProcessEvent(KeyEvent(types.KeyDelete))
	assert.Equal(t, Synthesized, res.Kind)
}

func TestDeleteFlushedCharacter(t *testing.T) {
	c := New()
	feed(t, c, CharEvent('a', false), CharEvent('b', false), CharEvent('c', false))

	res := c.ProcessEvent(KeyEvent(types.KeyDelete))
	assert.Equal(t, Consumed, res.Kind)
	assert.Equal(t, "ab", c.CombiningStateFeedback())
}

func TestDeleteWhenEmptyPassesThrough(t *testing.T) {
	c := New()
	del := KeyEvent(types.KeyDelete)
	res := c.ProcessEvent(del)
	assert.Equal(t, PassThrough, res.Kind)
	assert.Equal(t, del, res.Event)
}

func TestResetReturnsToIdle(t *testing.T) {
	c := New()
	feed(t, c, CharEvent('a', false), jamo(0x1100), jamo(0x1161))
	c.Reset()
	assert.False(t, c.Composing())
	assert.Empty(t, c.CombiningStateFeedback())

	feed(t, c, jamo(0x1112), jamo(0x1161))
	assert.Equal(t, "하", c.CombiningStateFeedback())
}

func TestZeroValueCombiner(t *testing.T) {
	var c Combiner
	feed(t, &c, jamo(0x1109), jamo(0x1103), jamo(0x1161))
	assert.Equal(t, "따", c.CombiningStateFeedback())
}

func TestFeedbackIsStable(t *testing.T) {
	c := New()
	feed(t, c, jamo(0x1100), jamo(0x1161))
	first := c.CombiningStateFeedback()
	assert.Equal(t, first, c.CombiningStateFeedback())
	feed(t, c, jamo(0x11AB))
	assert.NotEqual(t, first, c.CombiningStateFeedback())
}

func TestSentence(t *testing.T) {
	c := New()
	var committed string
	events := []Event{
		jamo(0x1112), jamo(0x1161), jamo(0x11AB),
		jamo(0x1100), jamo(0x1173), jamo(0x11AF),
		CharEvent(' ', false),
	}
	for _, ev := range events {
		res := c.ProcessEvent(ev)
		if res.Kind == Committed {
			committed += res.Text + string(res.Event.CodePoint)
		}
	}
	assert.Equal(t, "한글 ", committed)
}
