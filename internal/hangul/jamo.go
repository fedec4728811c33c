package hangul

// Role discriminates the Jamo variants. Initial, Medial and Final are the
// positional (conjoining) forms and only make sense inside a syllable block;
// Consonant and Vowel are the standalone compatibility forms.
type Role int

const (
	RoleNonHangul Role = iota
	RoleInitial
	RoleMedial
	RoleFinal
	RoleConsonant
	RoleVowel
)

func (r Role) String() string {
	switch r {
	case RoleNonHangul:
		return "non-hangul"
	case RoleInitial:
		return "initial"
	case RoleMedial:
		return "medial"
	case RoleFinal:
		return "final"
	case RoleConsonant:
		return "consonant"
	case RoleVowel:
		return "vowel"
	default:
		return "unknown"
	}
}

// Jamo is a classified code point.
type Jamo struct {
	Role      Role
	CodePoint rune
}

// Block boundaries used by Classify.
const (
	compatConsonantFirst = 0x3131
	compatConsonantLast  = 0x314E
	compatVowelFirst     = 0x314F
	compatVowelLast      = 0x3163
	initialBlockFirst    = 0x1100
	initialBlockLast     = 0x115F
	medialBlockFirst     = 0x1160
	medialBlockLast      = 0x11A7
	finalBlockFirst      = 0x11A8
	finalBlockLast       = 0x11FF
)

// Modern subranges, the only ones that take part in syllable arithmetic.
const (
	modernInitialFirst = 0x1100
	modernInitialLast  = 0x1112
	modernMedialFirst  = 0x1161
	modernMedialLast   = 0x1175
	modernFinalFirst   = 0x11A8
	modernFinalLast    = 0x11C2

	// finalOrdinalBase sits one below the first final so that ordinal 0
	// stays free for "no final".
	finalOrdinalBase = 0x11A7
)

// Classify returns the role of cp. It never fails: anything outside the
// jamo blocks is NonHangul.
func Classify(cp rune) Jamo {
	switch {
	case cp >= compatConsonantFirst && cp <= compatConsonantLast:
		return Jamo{Role: RoleConsonant, CodePoint: cp}
	case cp >= compatVowelFirst && cp <= compatVowelLast:
		return Jamo{Role: RoleVowel, CodePoint: cp}
	case cp >= initialBlockFirst && cp <= initialBlockLast:
		return Jamo{Role: RoleInitial, CodePoint: cp}
	case cp >= medialBlockFirst && cp <= medialBlockLast:
		return Jamo{Role: RoleMedial, CodePoint: cp}
	case cp >= finalBlockFirst && cp <= finalBlockLast:
		return Jamo{Role: RoleFinal, CodePoint: cp}
	default:
		return Jamo{Role: RoleNonHangul, CodePoint: cp}
	}
}

// Modern reports whether the jamo lies in the canonical modern subrange of
// its role.
func (j Jamo) Modern() bool {
	cp := j.CodePoint
	switch j.Role {
	case RoleInitial:
		return cp >= modernInitialFirst && cp <= modernInitialLast
	case RoleMedial:
		return cp >= modernMedialFirst && cp <= modernMedialLast
	case RoleFinal:
		return cp >= modernFinalFirst && cp <= modernFinalLast
	case RoleConsonant:
		return cp >= compatConsonantFirst && cp <= compatConsonantLast
	case RoleVowel:
		return cp >= compatVowelFirst && cp <= compatVowelLast
	default:
		return false
	}
}

// Ordinal is the position of the jamo inside its subrange. Finals count
// from 1. NonHangul has no ordinal and reports -1.
func (j Jamo) Ordinal() int {
	cp := int(j.CodePoint)
	switch j.Role {
	case RoleInitial:
		return cp - modernInitialFirst
	case RoleMedial:
		return cp - modernMedialFirst
	case RoleFinal:
		return cp - finalOrdinalBase
	case RoleConsonant:
		return cp - compatConsonantFirst
	case RoleVowel:
		return cp - compatVowelFirst
	default:
		return -1
	}
}

func (j Jamo) String() string {
	return string(j.CodePoint)
}

// ToConsonant converts an initial or final to its compatibility consonant.
func (j Jamo) ToConsonant() (Jamo, bool) {
	var idx int
	switch j.Role {
	case RoleInitial:
		idx = indexOf(consonantInitials, j.CodePoint)
	case RoleFinal:
		idx = indexOf(consonantFinals, j.CodePoint)
	default:
		return Jamo{}, false
	}
	if idx < 0 {
		return Jamo{}, false
	}
	return Jamo{Role: RoleConsonant, CodePoint: compatConsonants[idx]}, true
}

// ToVowel converts a medial to its compatibility vowel.
func (j Jamo) ToVowel() (Jamo, bool) {
	if j.Role != RoleMedial {
		return Jamo{}, false
	}
	idx := indexOf(vowelMedials, j.CodePoint)
	if idx < 0 {
		return Jamo{}, false
	}
	return Jamo{Role: RoleVowel, CodePoint: compatVowels[idx]}, true
}

// ToInitial converts a compatibility consonant to its initial form.
// Clusters such as ㄳ have none.
func (j Jamo) ToInitial() (Jamo, bool) {
	if j.Role != RoleConsonant {
		return Jamo{}, false
	}
	return lookupPositional(compatConsonants, consonantInitials, j.CodePoint, RoleInitial)
}

// ToFinal converts a compatibility consonant to its final form.
func (j Jamo) ToFinal() (Jamo, bool) {
	if j.Role != RoleConsonant {
		return Jamo{}, false
	}
	return lookupPositional(compatConsonants, consonantFinals, j.CodePoint, RoleFinal)
}

// ToMedial converts a compatibility vowel to its medial form.
func (j Jamo) ToMedial() (Jamo, bool) {
	if j.Role != RoleVowel {
		return Jamo{}, false
	}
	return lookupPositional(compatVowels, vowelMedials, j.CodePoint, RoleMedial)
}

// Compat returns the standalone form of j. Compatibility jamo and
// NonHangul are returned unchanged.
func (j Jamo) Compat() (Jamo, bool) {
	switch j.Role {
	case RoleInitial, RoleFinal:
		return j.ToConsonant()
	case RoleMedial:
		return j.ToVowel()
	default:
		return j, true
	}
}

func lookupPositional(from, to []rune, cp rune, role Role) (Jamo, bool) {
	idx := indexOf(from, cp)
	if idx < 0 || idx >= len(to) || to[idx] == 0 {
		return Jamo{}, false
	}
	return Jamo{Role: role, CodePoint: to[idx]}, true
}

func indexOf(list []rune, cp rune) int {
	if cp == 0 {
		return -1
	}
	for i, r := range list {
		if r == cp {
			return i
		}
	}
	return -1
}
