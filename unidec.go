// Package unidec transliterates Unicode text into a best effort ASCII
// approximation, eg. "déjà vu" becomes "deja vu". Codepoints without a
// mapping are resolved by a caller selected policy, see ParsePolicy.
//
// The mapping table is static package data, so calls are pure and safe to
// make from any number of goroutines.
package unidec

import (
	"strings"
	"unicode/utf8"

	"go.senan.xyz/unidec/table"
)

// Unidecode transliterates text to ASCII. The errors token selects the
// policy for unmapped codepoints, see ParsePolicy. The replacement text is
// only used under the replace policy, where empty selects
// DefaultReplacement.
func Unidecode(text, errors, replacement string) (string, error) {
	return UnidecodeExpectASCII(text, errors, replacement)
}

// UnidecodeExpectASCII is Unidecode tuned for input that is mostly ASCII
// already. Contiguous ASCII is copied bytewise and an all ASCII input is
// returned as is.
func UnidecodeExpectASCII(text, errors, replacement string) (string, error) {
	policy, err := ParsePolicy(errors)
	if err != nil {
		return "", err
	}
	return decodeASCIIRuns(text, policy, replacement)
}

// UnidecodeExpectNonASCII is Unidecode tuned for input that is mostly non
// ASCII, decoding rune by rune with no run batching. Output always matches
// UnidecodeExpectASCII exactly.
func UnidecodeExpectNonASCII(text, errors, replacement string) (string, error) {
	policy, err := ParsePolicy(errors)
	if err != nil {
		return "", err
	}
	return decodeRunes(text, policy, replacement)
}

// Transliterate is the parsed policy form of Unidecode, for callers which
// parse an errors token once and decode many times.
func Transliterate(text string, policy Policy, replacement string) (string, error) {
	return decodeASCIIRuns(text, policy, replacement)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func decodeASCIIRuns(text string, policy Policy, replacement string) (string, error) {
	if isASCII(text) {
		return text, nil
	}
	var out strings.Builder
	out.Grow(len(text))
	var index int
	for i := 0; i < len(text); {
		if text[i] < utf8.RuneSelf {
			start := i
			for i < len(text) && text[i] < utf8.RuneSelf {
				i++
				index++
			}
			out.WriteString(text[start:i])
			continue
		}
		r, size := utf8.DecodeRuneInString(text[i:])
		i += size
		if err := resolve(&out, r, index, policy, replacement); err != nil {
			return "", err
		}
		index++
	}
	return out.String(), nil
}

func decodeRunes(text string, policy Policy, replacement string) (string, error) {
	var out strings.Builder
	out.Grow(len(text))
	var index int
	for _, r := range text {
		if r < utf8.RuneSelf {
			out.WriteByte(byte(r))
			index++
			continue
		}
		if err := resolve(&out, r, index, policy, replacement); err != nil {
			return "", err
		}
		index++
	}
	return out.String(), nil
}

func resolve(out *strings.Builder, r rune, index int, policy Policy, replacement string) error {
	if mapped, ok := table.Lookup(r); ok {
		out.WriteString(mapped)
		return nil
	}
	switch policy {
	case PolicyDefault, PolicyIgnore:
	case PolicyReplace:
		if replacement == "" {
			replacement = DefaultReplacement
		}
		out.WriteString(replacement)
	case PolicyPreserve:
		out.WriteRune(r)
	case PolicyStrict:
		return UnmappedRuneError{Rune: r, Index: index}
	}
	return nil
}
