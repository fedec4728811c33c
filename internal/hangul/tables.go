package hangul

// Compatibility jamo in code point order. The positional tables below are
// aligned with them index by index; 0 marks "no positional equivalent".
var (
	compatConsonants = []rune{'ㄱ', 'ㄲ', 'ㄳ', 'ㄴ', 'ㄵ', 'ㄶ', 'ㄷ', 'ㄸ', 'ㄹ', 'ㄺ', 'ㄻ', 'ㄼ', 'ㄽ', 'ㄾ', 'ㄿ', 'ㅀ', 'ㅁ', 'ㅂ', 'ㅃ', 'ㅄ', 'ㅅ', 'ㅆ', 'ㅇ', 'ㅈ', 'ㅉ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ'}
	compatVowels     = []rune{'ㅏ', 'ㅐ', 'ㅑ', 'ㅒ', 'ㅓ', 'ㅔ', 'ㅕ', 'ㅖ', 'ㅗ', 'ㅘ', 'ㅙ', 'ㅚ', 'ㅛ', 'ㅜ', 'ㅝ', 'ㅞ', 'ㅟ', 'ㅠ', 'ㅡ', 'ㅢ', 'ㅣ'}
)

var consonantInitials = []rune{
	0x1100, 0x1101, 0, 0x1102, 0, 0, 0x1103, 0x1104, 0x1105, 0,
	0, 0, 0, 0, 0, 0, 0x1106, 0x1107, 0x1108, 0,
	0x1109, 0x110A, 0x110B, 0x110C, 0x110D, 0x110E, 0x110F, 0x1110, 0x1111, 0x1112,
}

var consonantFinals = []rune{
	0x11A8, 0x11A9, 0x11AA, 0x11AB, 0x11AC, 0x11AD, 0x11AE, 0, 0x11AF, 0x11B0,
	0x11B1, 0x11B2, 0x11B3, 0x11B4, 0x11B5, 0x11B6, 0x11B7, 0x11B8, 0, 0x11B9,
	0x11BA, 0x11BB, 0x11BC, 0x11BD, 0, 0x11BE, 0x11BF, 0x11C0, 0x11C1, 0x11C2,
}

var vowelMedials = []rune{
	0x1161, 0x1162, 0x1163, 0x1164, 0x1165, 0x1166, 0x1167, 0x1168, 0x1169, 0x116A,
	0x116B, 0x116C, 0x116D, 0x116E, 0x116F, 0x1170, 0x1171, 0x1172, 0x1173, 0x1174,
	0x1175,
}

// combination is one entry of the compound jamo lists: a and b in either
// order produce result.
type combination struct {
	a, b, result rune
}

var initialCombinations = []combination{
	{0x1100, 0x1103, 0x1112}, {0x1107, 0x110C, 0x110A}, {0x110B, 0x1100, 0x110F}, {0x110B, 0x1103, 0x1110},
	{0x110B, 0x1107, 0x1111}, {0x110B, 0x110C, 0x110D}, {0x1109, 0x1100, 0x1101}, {0x1109, 0x1103, 0x1104},
	{0x1109, 0x1107, 0x1108}, {0x1109, 0x110C, 0x110E},
}

var medialCombinations = []combination{
	{0x1173, 0x1175, 0x1174}, {0x1173, 0x1162, 0x1166}, {0x1175, 0x1162, 0x1164}, {0x1164, 0x1173, 0x1168},
	{0x1166, 0x1175, 0x1168}, {0x1174, 0x1162, 0x1168}, {0x1169, 0x1175, 0x116C}, {0x1169, 0x1162, 0x116D},
	{0x116C, 0x1162, 0x116B}, {0x116D, 0x1175, 0x116B}, {0x1164, 0x1169, 0x116B}, {0x116E, 0x1175, 0x1171},
	{0x116E, 0x1162, 0x1172}, {0x1171, 0x1162, 0x1170}, {0x1172, 0x1175, 0x1170}, {0x1164, 0x116E, 0x1170},
	{0x1161, 0x1162, 0x1163}, {0x1165, 0x1162, 0x1167},
}

var finalCombinations = []combination{
	{0x11BC, 0x11AB, 0x11AD}, {0x11BC, 0x11AF, 0x11B6}, {0x11BC, 0x11A8, 0x11BF}, {0x11BC, 0x11AE, 0x11C0},
	{0x11BC, 0x11B8, 0x11C1}, {0x11B7, 0x11AB, 0x11C2}, {0x11B7, 0x11AF, 0x11B1}, {0x11B7, 0x11A8, 0x11B0},
	{0x11B7, 0x11AE, 0x11B4}, {0x11B7, 0x11B8, 0x11A9}, {0x11BA, 0x11AB, 0x11BB}, {0x11BA, 0x11AF, 0x11B3},
	{0x11BA, 0x11A8, 0x11AA}, {0x11BA, 0x11B8, 0x11B9}, {0x11BA, 0x11AE, 0x11B5}, {0x11B8, 0x11AF, 0x11B2},
	{0x11AE, 0x11A8, 0x11B2}, {0x11B2, 0x11BC, 0x11BD}, {0x11C1, 0x11AF, 0x11BD}, {0x11B6, 0x11B8, 0x11BD},
	{0x11B2, 0x11BA, 0x11AC}, {0x11B9, 0x11AF, 0x11AC}, {0x11B3, 0x11B8, 0x11AC}, {0x11B2, 0x11B7, 0x11BE},
	{0x11B4, 0x11A8, 0x11BE}, {0x11B0, 0x11AE, 0x11BE},
}

// Table maps an ordered pair of same-role jamo to their compound. It is
// filled once by newTable and only read afterwards, so a single instance
// can be shared freely.
type Table struct {
	pairs map[[2]rune]rune
}

// Combinations holds the compound initials, medials and finals.
var Combinations = newTable(initialCombinations, medialCombinations, finalCombinations)

func newTable(groups ...[]combination) *Table {
	t := &Table{pairs: make(map[[2]rune]rune)}
	for _, group := range groups {
		for _, c := range group {
			t.pairs[[2]rune{c.a, c.b}] = c.result
			t.pairs[[2]rune{c.b, c.a}] = c.result
		}
	}
	return t
}

// Combine looks up the compound of a and b.
func (t *Table) Combine(a, b rune) (rune, bool) {
	if t == nil {
		return 0, false
	}
	combined, ok := t.pairs[[2]rune{a, b}]
	return combined, ok
}

// Len is the number of ordered pairs in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.pairs)
}
