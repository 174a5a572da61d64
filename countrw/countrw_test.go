package countrw_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.senan.xyz/unidec/countrw"
)

func TestCountReader(t *testing.T) {
	t.Parallel()

	cr := countrw.NewCountReader(strings.NewReader("déjà vu"))
	data, err := io.ReadAll(cr)
	require.NoError(t, err)
	require.Equal(t, uint64(len(data)), cr.Count())

	cr.Reset()
	require.Zero(t, cr.Count())
}

func TestCountWriter(t *testing.T) {
	t.Parallel()

	var buff bytes.Buffer
	cw := countrw.NewCountWriter(&buff)
	n, err := cw.Write([]byte("deja vu"))
	require.NoError(t, err)
	require.Equal(t, uint64(n), cw.Count())
	require.Equal(t, "deja vu", buff.String())
}
