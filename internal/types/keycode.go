package types

// KeyCode identifies functional keys and event markers. Ordinary character
// events carry KeyNone and are described by their code point alone.
type KeyCode int

const (
	KeyNone KeyCode = iota
	KeyShift
	KeyDelete
	KeyEnter
	KeyTab
	KeyEscape
	KeySpace
	// KeyMultipleCodePoints marks a synthetic event whose payload is a
	// string rather than a single code point.
	KeyMultipleCodePoints
)

func (k KeyCode) String() string {
	switch k {
	case KeyNone:
		return "none"
	case KeyShift:
		return "shift"
	case KeyDelete:
		return "delete"
	case KeyEnter:
		return "enter"
	case KeyTab:
		return "tab"
	case KeyEscape:
		return "escape"
	case KeySpace:
		return "space"
	case KeyMultipleCodePoints:
		return "multiple-code-points"
	default:
		return "unknown"
	}
}

// Functional reports whether the key is handled as a functional key rather
// than as text.
func (k KeyCode) Functional() bool {
	switch k {
	case KeyShift, KeyDelete, KeyEnter, KeyTab, KeyEscape:
		return true
	default:
		return false
	}
}
