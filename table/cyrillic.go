package table

// Cyrillic, U+0400..U+045F subset.
//
//nolint:gochecknoglobals
var blockCyrillic = map[rune]string{
	'Ё': "Io", 'Ђ': "Dj", 'Ѓ': "Gj", 'Є': "Ie", 'Ѕ': "Dz",
	'І': "I", 'Ї': "Yi", 'Ј': "J", 'Љ': "Lj", 'Њ': "Nj",
	'Ћ': "Tsh", 'Ќ': "Kj", 'Ў': "U", 'Џ': "Dzh",
	'А': "A", 'Б': "B", 'В': "V", 'Г': "G", 'Д': "D", 'Е': "E",
	'Ж': "Zh", 'З': "Z", 'И': "I", 'Й': "I", 'К': "K", 'Л': "L",
	'М': "M", 'Н': "N", 'О': "O", 'П': "P", 'Р': "R", 'С': "S",
	'Т': "T", 'У': "U", 'Ф': "F", 'Х': "Kh", 'Ц': "Ts", 'Ч': "Ch",
	'Ш': "Sh", 'Щ': "Shch", 'Ъ': "'", 'Ы': "Y", 'Ь': "'", 'Э': "E",
	'Ю': "Iu", 'Я': "Ia",
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e",
	'ж': "zh", 'з': "z", 'и': "i", 'й': "i", 'к': "k", 'л': "l",
	'м': "m", 'н': "n", 'о': "o", 'п': "p", 'р': "r", 'с': "s",
	'т': "t", 'у': "u", 'ф': "f", 'х': "kh", 'ц': "ts", 'ч': "ch",
	'ш': "sh", 'щ': "shch", 'ъ': "'", 'ы': "y", 'ь': "'", 'э': "e",
	'ю': "iu", 'я': "ia",
	'ё': "io", 'є': "ie", 'і': "i", 'ї': "yi", 'ј': "j",
}

func init() {
	merge(blockCyrillic)
}
