package layout

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/gg582/hancomb/internal/combiner"
	"github.com/gg582/hancomb/internal/types"
)

type SymbolKind int

const (
	SymbolText SymbolKind = iota
	SymbolJamo
)

// LayoutSymbol is what a typed key produces: a positional jamo that may
// take part in syllable assembly, or literal text.
type LayoutSymbol struct {
	Kind SymbolKind
	Text string
	Jamo rune
}

// Layout maps typed ASCII keys to symbols. Shifted keys are distinct runes,
// so there is no separate shift table.
type Layout struct {
	name    string
	mapping map[rune]*LayoutSymbol
}

func NewLayout(name string) *Layout {
	return &Layout{name: name, mapping: make(map[rune]*LayoutSymbol)}
}

func (l *Layout) Name() string {
	if l == nil {
		return ""
	}
	return l.name
}

func (l *Layout) Translate(key rune) *LayoutSymbol {
	if l == nil {
		return nil
	}
	return l.mapping[key]
}

func NewTextSymbol(value string) *LayoutSymbol {
	return &LayoutSymbol{Kind: SymbolText, Text: value}
}

func NewJamoSymbol(value rune) *LayoutSymbol {
	return &LayoutSymbol{Kind: SymbolJamo, Jamo: value}
}

func (l *Layout) ApplyOverride(key rune, symbol *LayoutSymbol) {
	if l == nil {
		return
	}
	if symbol == nil {
		delete(l.mapping, key)
		return
	}
	l.mapping[key] = symbol
}

// Decode turns one typed key into combiner events. Keys without a mapping
// are passed on as literal, non-combining characters.
func (l *Layout) Decode(key rune) []combiner.Event {
	// a nil layout passes every key through as text
	symbol := l.Translate(key)
	if symbol == nil {
		return []combiner.Event{combiner.CharEvent(key, false)}
	}
	switch symbol.Kind {
	case SymbolJamo:
		return []combiner.Event{combiner.CharEvent(symbol.Jamo, true)}
	default:
		events := make([]combiner.Event, 0, len(symbol.Text))
		for _, r := range symbol.Text {
			events = append(events, combiner.CharEvent(r, false))
		}
		return events
	}
}

// DecodeKey builds the event of a functional or named key.
func DecodeKey(code types.KeyCode) combiner.Event {
	return combiner.KeyEvent(code)
}

func addJamo(mapping map[rune]*LayoutSymbol, keys string, jamo ...rune) {
	for i, key := range []rune(keys) {
		mapping[key] = NewJamoSymbol(jamo[i])
	}
}

// buildSebeolsik390 places initials under the left hand, medials under the
// right hand and finals on the shifted right-hand keys.
func buildSebeolsik390() *Layout {
	layout := NewLayout("sebeolsik-390")
	mapping := layout.mapping

	// initials
	addJamo(mapping, "qwert", 0x1107, 0x110C, 0x1103, 0x1100, 0x1109)
	addJamo(mapping, "QWERT", 0x1108, 0x110D, 0x1104, 0x1101, 0x110A)
	addJamo(mapping, "asdfg", 0x1106, 0x1102, 0x110B, 0x1105, 0x1112)
	addJamo(mapping, "ASDFG", 0x1106, 0x1102, 0x110B, 0x1105, 0x1112)
	addJamo(mapping, "zxcv", 0x110F, 0x1110, 0x110E, 0x1111)
	addJamo(mapping, "ZXCV", 0x110F, 0x1110, 0x110E, 0x1111)

	// medials
	addJamo(mapping, "yuiop[]", 0x116D, 0x1167, 0x1163, 0x1162, 0x1166, 0x1164, 0x1168)
	addJamo(mapping, "hjkl;'", 0x1169, 0x1165, 0x1161, 0x1175, 0x1172, 0x116E)
	addJamo(mapping, "bnm\\", 0x1172, 0x116E, 0x1173, 0x1174)
	addJamo(mapping, ",./", 0x116A, 0x116F, 0x1171)
	addJamo(mapping, "<>", 0x116B, 0x1170)

	// finals
	addJamo(mapping, "YUIOP{}", 0x11BA, 0x11BD, 0x11BE, 0x11BF, 0x11C0, 0x11C1, 0x11C2)
	addJamo(mapping, "HJKL:\"", 0x11A8, 0x11AB, 0x11AE, 0x11AF, 0x11B7, 0x11B8)
	addJamo(mapping, "BNM", 0x11BC, 0x11BA, 0x11C2)

	return layout
}

func buildLatin() *Layout {
	return NewLayout("latin")
}

var builders = map[string]func() *Layout{
	"sebeolsik-390": buildSebeolsik390,
	"latin":         buildLatin,
}

var aliases = map[string]string{
	"":           "sebeolsik-390",
	"sebeolsik":  "sebeolsik-390",
	"3beolsik":   "sebeolsik-390",
	"390":        "sebeolsik-390",
	"none":       "latin",
	"raw":        "latin",
	"english":    "latin",
	"default":    "sebeolsik-390",
	"sebeolsik3": "sebeolsik-390",
}

const DefaultLayoutName = "sebeolsik-390"

func AvailableLayouts() []string {
	names := lo.Keys(builders)
	sort.Strings(names)
	return names
}

// Normalize resolves aliases to a layout name without building it.
func Normalize(name string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := aliases[normalized]; ok {
		normalized = alias
	}
	if _, ok := builders[normalized]; !ok {
		return "", fmt.Errorf("unknown layout %q (available: %s)", name, strings.Join(AvailableLayouts(), ", "))
	}
	return normalized, nil
}

func Load(name string) (*Layout, error) {
	normalized, err := Normalize(name)
	if err != nil {
		return nil, err
	}
	return builders[normalized](), nil
}
