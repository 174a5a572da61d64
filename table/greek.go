package table

// Greek and Coptic, U+0370..U+03FF subset. The combining diacritical marks
// block just below it maps entirely to nothing and is derived in init.
//
//nolint:gochecknoglobals
var blockGreek = map[rune]string{
	'Ά': "A", 'Έ': "E", 'Ή': "E", 'Ί': "I", 'Ό': "O", 'Ύ': "U", 'Ώ': "O",
	'ΐ': "i",
	'Α': "A", 'Β': "B", 'Γ': "G", 'Δ': "D", 'Ε': "E", 'Ζ': "Z", 'Η': "E",
	'Θ': "Th",
	'Ι': "I", 'Κ': "K", 'Λ': "L", 'Μ': "M", 'Ν': "N", 'Ξ': "X", 'Ο': "O",
	'Π': "P", 'Ρ': "R", 'Σ': "S", 'Τ': "T", 'Υ': "U",
	'Φ': "Ph", 'Χ': "Kh", 'Ψ': "Ps",
	'Ω': "O",
	'Ϊ': "I", 'Ϋ': "U",
	'ά': "a", 'έ': "e", 'ή': "e", 'ί': "i",
	'ΰ': "u",
	'α': "a", 'β': "b", 'γ': "g", 'δ': "d", 'ε': "e", 'ζ': "z", 'η': "e",
	'θ': "th",
	'ι': "i", 'κ': "k", 'λ': "l", 'μ': "m", 'ν': "n", 'ξ': "x", 'ο': "o",
	'π': "p", 'ρ': "r", 'ς': "s", 'σ': "s", 'τ': "t", 'υ': "u",
	'φ': "ph", 'χ': "kh", 'ψ': "ps",
	'ω': "o",
	'ϊ': "i", 'ϋ': "u", 'ό': "o", 'ύ': "u", 'ώ': "o",
}

func init() {
	merge(blockGreek)

	// Combining diacritical marks, U+0300..U+036F. A precomposed letter
	// and its decomposed form collapse to the same output because the
	// marks transliterate to nothing.
	for r := rune(0x0300); r <= 0x036F; r++ {
		entries[r] = ""
	}
}
