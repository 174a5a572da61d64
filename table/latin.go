package table

// Latin-1 supplement, U+0080..U+00FF. C1 controls map to nothing, same as
// the reference data.
//
//nolint:gochecknoglobals
var blockLatin1 = map[rune]string{
	'\u00a0': " ",
	'¡':      "!",
	'¢':      "C/",
	'£':      "PS",
	'¤':      "$?",
	'¥':      "Y=",
	'¦':      "|",
	'§':      "SS",
	'¨':      "\"",
	'©':      "(c)",
	'ª':      "a",
	'«':      "<<",
	'¬':      "!",
	'\u00ad': "",
	'®':      "(r)",
	'¯':      "-",
	'°':      "deg",
	'±':      "+-",
	'²':      "2",
	'³':      "3",
	'´':      "'",
	'µ':      "u",
	'¶':      "P",
	'·':      "*",
	'¸':      ",",
	'¹':      "1",
	'º':      "o",
	'»':      ">>",
	'¼':      "1/4",
	'½':      "1/2",
	'¾':      "3/4",
	'¿':      "?",
	'À':      "A", 'Á': "A", 'Â': "A", 'Ã': "A", 'Ä': "A", 'Å': "A",
	'Æ': "AE",
	'Ç': "C",
	'È': "E", 'É': "E", 'Ê': "E", 'Ë': "E",
	'Ì': "I", 'Í': "I", 'Î': "I", 'Ï': "I",
	'Ð': "D",
	'Ñ': "N",
	'Ò': "O", 'Ó': "O", 'Ô': "O", 'Õ': "O", 'Ö': "O",
	'×': "x",
	'Ø': "O",
	'Ù': "U", 'Ú': "U", 'Û': "U", 'Ü': "U",
	'Ý': "Y",
	'Þ': "Th",
	'ß': "ss",
	'à': "a", 'á': "a", 'â': "a", 'ã': "a", 'ä': "a", 'å': "a",
	'æ': "ae",
	'ç': "c",
	'è': "e", 'é': "e", 'ê': "e", 'ë': "e",
	'ì': "i", 'í': "i", 'î': "i", 'ï': "i",
	'ð': "d",
	'ñ': "n",
	'ò': "o", 'ó': "o", 'ô': "o", 'õ': "o", 'ö': "o",
	'÷': "/",
	'ø': "o",
	'ù': "u", 'ú': "u", 'û': "u", 'ü': "u",
	'ý': "y",
	'þ': "th",
	'ÿ': "y",
}

// Latin Extended-A, U+0100..U+017F, complete.
//
//nolint:gochecknoglobals
var blockLatinExtA = map[rune]string{
	'Ā': "A", 'ā': "a", 'Ă': "A", 'ă': "a", 'Ą': "A", 'ą': "a",
	'Ć': "C", 'ć': "c", 'Ĉ': "C", 'ĉ': "c", 'Ċ': "C", 'ċ': "c", 'Č': "C", 'č': "c",
	'Ď': "D", 'ď': "d", 'Đ': "D", 'đ': "d",
	'Ē': "E", 'ē': "e", 'Ĕ': "E", 'ĕ': "e", 'Ė': "E", 'ė': "e", 'Ę': "E", 'ę': "e", 'Ě': "E", 'ě': "e",
	'Ĝ': "G", 'ĝ': "g", 'Ğ': "G", 'ğ': "g", 'Ġ': "G", 'ġ': "g", 'Ģ': "G", 'ģ': "g",
	'Ĥ': "H", 'ĥ': "h", 'Ħ': "H", 'ħ': "h",
	'Ĩ': "I", 'ĩ': "i", 'Ī': "I", 'ī': "i", 'Ĭ': "I", 'ĭ': "i", 'Į': "I", 'į': "i",
	'İ': "I", 'ı': "i",
	'Ĳ': "IJ", 'ĳ': "ij",
	'Ĵ': "J", 'ĵ': "j",
	'Ķ': "K", 'ķ': "k", 'ĸ': "k",
	'Ĺ': "L", 'ĺ': "l", 'Ļ': "L", 'ļ': "l", 'Ľ': "L", 'ľ': "l", 'Ŀ': "L", 'ŀ': "l", 'Ł': "L", 'ł': "l",
	'Ń': "N", 'ń': "n", 'Ņ': "N", 'ņ': "n", 'Ň': "N", 'ň': "n", 'ŉ': "'n", 'Ŋ': "NG", 'ŋ': "ng",
	'Ō': "O", 'ō': "o", 'Ŏ': "O", 'ŏ': "o", 'Ő': "O", 'ő': "o",
	'Œ': "OE", 'œ': "oe",
	'Ŕ': "R", 'ŕ': "r", 'Ŗ': "R", 'ŗ': "r", 'Ř': "R", 'ř': "r",
	'Ś': "S", 'ś': "s", 'Ŝ': "S", 'ŝ': "s", 'Ş': "S", 'ş': "s", 'Š': "S", 'š': "s",
	'Ţ': "T", 'ţ': "t", 'Ť': "T", 'ť': "t", 'Ŧ': "T", 'ŧ': "t",
	'Ũ': "U", 'ũ': "u", 'Ū': "U", 'ū': "u", 'Ŭ': "U", 'ŭ': "u",
	'Ů': "U", 'ů': "u", 'Ű': "U", 'ű': "u", 'Ų': "U", 'ų': "u",
	'Ŵ': "W", 'ŵ': "w",
	'Ŷ': "Y", 'ŷ': "y", 'Ÿ': "Y",
	'Ź': "Z", 'ź': "z", 'Ż': "Z", 'ż': "z", 'Ž': "Z", 'ž': "z",
	'ſ': "s",
}

// Latin Extended-B subset.
//
//nolint:gochecknoglobals
var blockLatinExtB = map[rune]string{
	'ƒ': "f",
	'Ơ': "O", 'ơ': "o",
	'Ư': "U", 'ư': "u",
	'Ǆ': "DZ", 'ǅ': "Dz", 'ǆ': "dz",
	'Ǉ': "LJ", 'ǈ': "Lj", 'ǉ': "lj",
	'Ǌ': "NJ", 'ǋ': "Nj", 'ǌ': "nj",
	'Ș': "S", 'ș': "s",
	'Ț': "T", 'ț': "t",
}

// Latin Extended Additional subset, mostly Vietnamese. Upper/lower pairs
// alternate through each vowel range so they are derived below. The block
// deliberately stops short of U+1EFF, matching the reference data.
//
//nolint:gochecknoglobals
var blockLatinExtAdditional = map[rune]string{
	'Ḍ': "D", 'ḍ': "d",
	'Ḥ': "H", 'ḥ': "h",
	'Ṃ': "M", 'ṃ': "m",
	'Ṅ': "N", 'ṅ': "n",
	'Ṇ': "N", 'ṇ': "n",
	'Ṛ': "R", 'ṛ': "r",
	'Ṣ': "S", 'ṣ': "s",
	'Ṭ': "T", 'ṭ': "t",
	'Ẁ': "W", 'ẁ': "w", 'Ẃ': "W", 'ẃ': "w", 'Ẅ': "W", 'ẅ': "w",
	'ẞ': "SS",
}

func init() {
	merge(blockLatin1)
	merge(blockLatinExtA)
	merge(blockLatinExtB)
	merge(blockLatinExtAdditional)

	// C1 controls transliterate to nothing.
	for r := rune(0x0080); r <= 0x009F; r++ {
		entries[r] = ""
	}

	// Vietnamese vowel ranges, upper/lower alternating.
	for r, base := range map[rune]string{
		0x1EA0: "A", // Ạ..ặ
		0x1EB8: "E", // Ẹ..ệ
		0x1EC8: "I", // Ỉ..ị
		0x1ECC: "O", // Ọ..ợ
		0x1EE4: "U", // Ụ..ự
		0x1EF2: "Y", // Ỳ..ỹ
	} {
		end := r + vietnameseRangeLen(base)
		for ; r < end; r += 2 {
			entries[r] = base
			entries[r+1] = lower(base)
		}
	}
}

func vietnameseRangeLen(base string) rune {
	switch base {
	case "A", "O":
		return 24
	case "E":
		return 16
	case "U":
		return 14
	case "I":
		return 4
	case "Y":
		return 8
	}
	return 0
}

func lower(s string) string {
	b := []byte(s)
	for i := range b {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}
