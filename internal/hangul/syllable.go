package hangul

import "strings"

const (
	syllableBase  = 0xAC00
	syllableLast  = 0xD7A3
	medialCount   = 21
	trailingCount = 28
)

// Syllable holds at most one jamo per slot. A nil slot is empty.
type Syllable struct {
	Initial *Jamo
	Medial  *Jamo
	Final   *Jamo
}

func jamoPtr(j Jamo) *Jamo {
	v := j
	return &v
}

// WithInitial returns a copy of s with the initial slot replaced.
func (s Syllable) WithInitial(j Jamo) Syllable {
	s.Initial = jamoPtr(j)
	return s
}

// WithMedial returns a copy of s with the medial slot replaced.
func (s Syllable) WithMedial(j Jamo) Syllable {
	s.Medial = jamoPtr(j)
	return s
}

// WithFinal returns a copy of s with the final slot replaced.
func (s Syllable) WithFinal(j Jamo) Syllable {
	s.Final = jamoPtr(j)
	return s
}

func (s Syllable) Empty() bool {
	return s.Initial == nil && s.Medial == nil && s.Final == nil
}

// Combinable reports whether the slots form a modern precomposed block.
func (s Syllable) Combinable() bool {
	if s.Initial == nil || !s.Initial.Modern() {
		return false
	}
	if s.Medial == nil || !s.Medial.Modern() {
		return false
	}
	return s.Final == nil || s.Final.Modern()
}

// Ordinals returns the slot ordinals used by the block arithmetic. An
// absent final counts as 0.
func (s Syllable) Ordinals() (initial, medial, final int) {
	if s.Initial != nil {
		initial = s.Initial.Ordinal()
	}
	if s.Medial != nil {
		medial = s.Medial.Ordinal()
	}
	if s.Final != nil {
		final = s.Final.Ordinal()
	}
	return initial, medial, final
}

// Combined returns the precomposed syllable block.
func (s Syllable) Combined() (rune, bool) {
	if !s.Combinable() {
		return 0, false
	}
	ini, med, fin := s.Ordinals()
	return rune(syllableBase + ini*medialCount*trailingCount + med*trailingCount + fin), true
}

// Decomposed renders every present slot in its compatibility form. A slot
// without one, such as an archaic jamo, is written as is.
func (s Syllable) Decomposed() string {
	var b strings.Builder
	for _, slot := range []*Jamo{s.Initial, s.Medial, s.Final} {
		if slot == nil {
			continue
		}
		if compat, ok := slot.Compat(); ok {
			b.WriteRune(compat.CodePoint)
		} else {
			b.WriteRune(slot.CodePoint)
		}
	}
	return b.String()
}

func (s Syllable) String() string {
	if r, ok := s.Combined(); ok {
		return string(r)
	}
	return s.Decomposed()
}

// Decompose splits a precomposed syllable block back into its positional
// slots.
func Decompose(r rune) (Syllable, bool) {
	if r < syllableBase || r > syllableLast {
		return Syllable{}, false
	}
	code := int(r - syllableBase)
	fin := code % trailingCount
	med := (code / trailingCount) % medialCount
	ini := code / (trailingCount * medialCount)

	s := Syllable{
		Initial: jamoPtr(Jamo{Role: RoleInitial, CodePoint: rune(modernInitialFirst + ini)}),
		Medial:  jamoPtr(Jamo{Role: RoleMedial, CodePoint: rune(modernMedialFirst + med)}),
	}
	if fin > 0 {
		s.Final = jamoPtr(Jamo{Role: RoleFinal, CodePoint: rune(finalOrdinalBase + fin)})
	}
	return s, true
}
