package unidec_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.senan.xyz/unidec"
)

// not parallel, swaps the package level advisory hook
func TestSurrogateStrip(t *testing.T) {
	var notified []rune
	restore := unidec.OnSurrogate
	unidec.OnSurrogate = func(r rune) { notified = append(notified, r) }
	defer func() { unidec.OnSurrogate = restore }()

	out, err := unidec.UnidecodeRunes([]rune{0xD800, 'a', 0xDFFF, 'b'}, "", "")
	require.NoError(t, err)
	require.Equal(t, "ab", out)
	require.Equal(t, []rune{0xD800, 0xDFFF}, notified)

	// stripping happens before strict mode sees the input
	notified = nil
	out, err = unidec.UnidecodeRunes([]rune{0xD800}, "strict", "")
	require.NoError(t, err)
	require.Empty(t, out)
	require.Len(t, notified, 1)

	// strict failure indexes count positions in the stripped sequence
	notified = nil
	_, err = unidec.UnidecodeRunes([]rune{0xD800, 'a', 0x1F600}, "strict", "")
	var unmappedErr unidec.UnmappedRuneError
	require.ErrorAs(t, err, &unmappedErr)
	require.Equal(t, 1, unmappedErr.Index)
}

// not parallel, swaps the package level advisory hook
func TestSurrogateAdvisorySuppressed(t *testing.T) {
	restore := unidec.OnSurrogate
	unidec.OnSurrogate = nil
	defer func() { unidec.OnSurrogate = restore }()

	out, err := unidec.UnidecodeRunes([]rune{0xD834, 'o', 'k'}, "", "")
	require.NoError(t, err)
	require.Equal(t, "ok", out)
}

func TestUnidecodeRunes(t *testing.T) {
	t.Parallel()

	out, err := unidec.UnidecodeRunes([]rune("déjà vu"), "", "")
	require.NoError(t, err)
	require.Equal(t, "deja vu", out)

	_, err = unidec.UnidecodeRunes([]rune("x"), "nope", "")
	var policyErr unidec.InvalidPolicyError
	require.ErrorAs(t, err, &policyErr)
}
