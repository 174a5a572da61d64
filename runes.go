package unidec

import (
	"log"
	"strings"
	"unicode/utf8"
)

// OnSurrogate is called once for each lone surrogate removed from a rune
// slice before transliteration. Set it to nil to suppress the advisory.
// Replace it before first use, the package never writes to it.
//
//nolint:gochecknoglobals
var OnSurrogate = func(r rune) {
	log.Printf("removing lone surrogate %U from input", r)
}

const (
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
)

// UnidecodeRunes transliterates a rune slice to ASCII with the same policy
// semantics as Unidecode. Lone surrogates are stripped before lookup, with
// one OnSurrogate advisory per removed rune. Strict failure indexes count
// positions in the stripped sequence.
//
// The string entry points have no equivalent strip: ill formed bytes decode
// as U+FFFD during iteration, so a Go string can never yield a surrogate
// rune. Only a raw []rune can carry one.
func UnidecodeRunes(rs []rune, errors, replacement string) (string, error) {
	policy, err := ParsePolicy(errors)
	if err != nil {
		return "", err
	}
	rs, _ = stripSurrogates(rs)

	var out strings.Builder
	out.Grow(len(rs))
	for i, r := range rs {
		if r < utf8.RuneSelf {
			out.WriteByte(byte(r))
			continue
		}
		if err := resolve(&out, r, i, policy, replacement); err != nil {
			return "", err
		}
	}
	return out.String(), nil
}

func stripSurrogates(rs []rune) ([]rune, int) {
	var removed int
	for _, r := range rs {
		if r >= surrogateMin && r <= surrogateMax {
			removed++
		}
	}
	if removed == 0 {
		return rs, 0
	}
	out := make([]rune, 0, len(rs)-removed)
	for _, r := range rs {
		if r >= surrogateMin && r <= surrogateMax {
			if OnSurrogate != nil {
				OnSurrogate(r)
			}
			continue
		}
		out = append(out, r)
	}
	return out, removed
}
