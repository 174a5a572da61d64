package table

import "strconv"

// Enclosed alphanumerics, U+2460..U+24FF. Fully derived: circled and
// parenthesised numbers, numbers with a full stop, circled Latin letters.
func init() {
	for i := 0; i < 20; i++ {
		n := strconv.Itoa(i + 1)
		entries[rune(0x2460+i)] = n             // ①..⑳
		entries[rune(0x2474+i)] = "(" + n + ")" // ⑴..⒇
		entries[rune(0x2488+i)] = n + "."       // ⒈..⒛
	}
	for i := 0; i < 26; i++ {
		entries[rune(0x24B6+i)] = string(rune('A' + i)) // Ⓐ..Ⓩ
		entries[rune(0x24D0+i)] = string(rune('a' + i)) // ⓐ..ⓩ
	}
	entries[0x24EA] = "0" // ⓪
	for i := 0; i < 10; i++ {
		entries[rune(0x24EB+i)] = strconv.Itoa(i + 11) // ⓫..⓴
		entries[rune(0x24F5+i)] = strconv.Itoa(i + 1)  // ⓵..⓾
	}
	entries[0x24FF] = "0" // ⓿
}
