package table

// General punctuation, super/subscripts, currency, letterlike symbols,
// number forms. Spaces and zero width characters are derived in init.
//
//nolint:gochecknoglobals
var blockPunct = map[rune]string{
	'‐': "-", '‑': "-", '‒': "-", '–': "-", '—': "--", '―': "--",
	'‘': "'", '’': "'", '‚': ",", '‛': "'",
	'“': "\"", '”': "\"", '„': ",,", '‟': "\"",
	'†': "+", '‡': "++",
	'•': "*",
	'…': "...",
	'‰': "%0",
	'′': "'", '″': "\"",
	'‹': "<", '›': ">",
	'⁄': "/",
	'⁰': "0", '⁴': "4", '⁵': "5", '⁶': "6", '⁷': "7", '⁸': "8", '⁹': "9",
	'ⁿ': "n",
	'₀': "0", '₁': "1", '₂': "2", '₃': "3", '₄': "4",
	'₅': "5", '₆': "6", '₇': "7", '₈': "8", '₉': "9",
	'€': "EU",
}

//nolint:gochecknoglobals
var blockLetterlike = map[rune]string{
	'\u2103': "degC", // ℃
	'\u2109': "degF", // ℉
	'№':      "No",
	'™':      "(tm)",
	'Ω':      "Ohm", // Ω ohm sign, distinct from Greek omega
	'ℓ':      "l",
}

// Number forms, U+2150..U+217F: vulgar fractions and Roman numerals.
//
//nolint:gochecknoglobals
var blockNumberForms = map[rune]string{
	'⅐': "1/7", '⅑': "1/9", '⅒': "1/10",
	'⅓': "1/3", '⅔': "2/3",
	'⅕': "1/5", '⅖': "2/5", '⅗': "3/5", '⅘': "4/5",
	'⅙': "1/6", '⅚': "5/6",
	'⅛': "1/8", '⅜': "3/8", '⅝': "5/8", '⅞': "7/8",
	'⅟': "1/",
	'Ⅰ': "I", 'Ⅱ': "II", 'Ⅲ': "III", 'Ⅳ': "IV", 'Ⅴ': "V", 'Ⅵ': "VI",
	'Ⅶ': "VII", 'Ⅷ': "VIII", 'Ⅸ': "IX", 'Ⅹ': "X", 'Ⅺ': "XI", 'Ⅻ': "XII",
	'Ⅼ': "L", 'Ⅽ': "C", 'Ⅾ': "D", 'Ⅿ': "M",
	'ⅰ': "i", 'ⅱ': "ii", 'ⅲ': "iii", 'ⅳ': "iv", 'ⅴ': "v", 'ⅵ': "vi",
	'ⅶ': "vii", 'ⅷ': "viii", 'ⅸ': "ix", 'ⅹ': "x", 'ⅺ': "xi", 'ⅻ': "xii",
	'ⅼ': "l", 'ⅽ': "c", 'ⅾ': "d", 'ⅿ': "m",
}

func init() {
	merge(blockPunct)
	merge(blockLetterlike)
	merge(blockNumberForms)

	// U+2000..U+200A are width variants of the plain space.
	for r := rune(0x2000); r <= 0x200A; r++ {
		entries[r] = " "
	}
	// Zero width and directional marks transliterate to nothing.
	for r := rune(0x200B); r <= 0x200F; r++ {
		entries[r] = ""
	}
}
