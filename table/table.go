// Package table holds the static codepoint to ASCII mapping consumed by
// package unidec. The data is a curated snapshot organised by Unicode
// block, one source file per group of blocks, merged once at package init
// and never written again. Any number of goroutines may call Lookup with
// no synchronisation.
package table

//nolint:gochecknoglobals
var entries = make(map[rune]string, 4096)

// Lookup returns the ASCII mapping for r. A present empty string means the
// codepoint transliterates to nothing, eg. a combining mark; a missing
// entry means the codepoint is unmapped. ASCII codepoints are never in the
// table, they map to themselves.
func Lookup(r rune) (string, bool) {
	s, ok := entries[r]
	return s, ok
}

// Size returns the number of mapped codepoints.
func Size() int {
	return len(entries)
}

func merge(block map[rune]string) {
	for r, s := range block {
		entries[r] = s
	}
}
