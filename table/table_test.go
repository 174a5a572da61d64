package table_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.senan.xyz/unidec/table"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	// mapped
	for r, want := range map[rune]string{
		'é':     "e",
		'ß':     "ss",
		'Þ':     "Th",
		'Œ':     "OE",
		'Д':     "D",
		'Ψ':     "Ps",
		'♥':     "hearts",
		'①':     "1",
		'⒇':     "(20)",
		'Ａ':     "A",
		'５':     "5",
		0x1F674: "&",
		'℉':     "degF",
	} {
		got, ok := table.Lookup(r)
		require.True(t, ok, "expected mapping for %U", r)
		require.Equal(t, want, got, "mapping for %U", r)
	}

	// mapped to nothing
	for _, r := range []rune{0x0301, 0x036F, 0x200B, 0x0080, 0x00AD} {
		got, ok := table.Lookup(r)
		require.True(t, ok, "expected empty mapping for %U", r)
		require.Empty(t, got)
	}

	// unmapped
	for _, r := range []rune{0x1F600, 0xA500, 0x1EFF, 0xD800} {
		_, ok := table.Lookup(r)
		require.False(t, ok, "expected no mapping for %U", r)
	}

	// ascii maps to itself and is not in the table
	for r := rune(0); r < 0x80; r++ {
		_, ok := table.Lookup(r)
		require.False(t, ok, "ascii %U should not be in the table", r)
	}

	require.NotZero(t, table.Size())
}
