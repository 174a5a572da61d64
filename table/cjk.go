package table

// CJK symbols and punctuation subset, and the fullwidth forms. Fullwidth
// U+FF01..U+FF5E mirror ASCII U+0021..U+007E exactly, so they are derived
// arithmetically.
//
//nolint:gochecknoglobals
var blockCJK = map[rune]string{
	'\u3000': " ",
	'、':      ", ",
	'。':      ". ",
	'「':      "\"",
	'」':      "\"",
	'・':      "*",
}

func init() {
	merge(blockCJK)

	for r := rune(0xFF01); r <= 0xFF5E; r++ {
		entries[r] = string(r - 0xFEE0)
	}
}
