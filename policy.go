package unidec

import "fmt"

// Policy decides what happens to codepoints that have no ASCII mapping.
type Policy uint8

const (
	PolicyDefault Policy = iota // same behaviour as PolicyIgnore
	PolicyIgnore
	PolicyReplace
	PolicyPreserve
	PolicyStrict
)

// DefaultReplacement is appended for unmapped codepoints under
// PolicyReplace when the caller didn't provide a replacement.
const DefaultReplacement = "?"

// ParsePolicy maps a caller provided errors token to a Policy. The empty
// token selects PolicyDefault. "invalid" is a historical synonym for
// "preserve" and selects the same behaviour.
func ParsePolicy(token string) (Policy, error) {
	switch token {
	case "":
		return PolicyDefault, nil
	case "ignore":
		return PolicyIgnore, nil
	case "replace":
		return PolicyReplace, nil
	case "preserve", "invalid":
		return PolicyPreserve, nil
	case "strict":
		return PolicyStrict, nil
	}
	return 0, InvalidPolicyError{Token: token}
}

func (p Policy) String() string {
	switch p {
	case PolicyDefault:
		return "default"
	case PolicyIgnore:
		return "ignore"
	case PolicyReplace:
		return "replace"
	case PolicyPreserve:
		return "preserve"
	case PolicyStrict:
		return "strict"
	}
	return fmt.Sprintf("policy(%d)", uint8(p))
}

// InvalidPolicyError is returned when an errors token isn't one of the
// recognised set. It is reported before any input is processed.
type InvalidPolicyError struct {
	Token string
}

func (e InvalidPolicyError) Error() string {
	return fmt.Sprintf("unknown errors policy %q", e.Token)
}

// UnmappedRuneError is returned under PolicyStrict for the first codepoint
// without an ASCII mapping. Index counts codepoints, not bytes.
type UnmappedRuneError struct {
	Rune  rune
	Index int
}

func (e UnmappedRuneError) Error() string {
	return fmt.Sprintf("no ascii mapping for %q at index %d", e.Rune, e.Index)
}
