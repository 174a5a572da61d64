// Package countrw wraps readers and writers with atomic byte counters,
// used by the unidec CLI to report how much input shrank or grew after
// transliteration.
package countrw

import (
	"io"
	"sync/atomic"
)

type CountReader struct {
	r io.Reader
	n *uint64
}

func NewCountReader(r io.Reader) *CountReader {
	return &CountReader{r: r, n: new(uint64)}
}

func (c *CountReader) Reset()        { atomic.StoreUint64(c.n, 0) }
func (c *CountReader) Count() uint64 { return atomic.LoadUint64(c.n) }

func (c *CountReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	atomic.AddUint64(c.n, uint64(n))
	return n, err
}

type CountWriter struct {
	w io.Writer
	n *uint64
}

func NewCountWriter(w io.Writer) *CountWriter {
	return &CountWriter{w: w, n: new(uint64)}
}

func (c *CountWriter) Reset()        { atomic.StoreUint64(c.n, 0) }
func (c *CountWriter) Count() uint64 { return atomic.LoadUint64(c.n) }

func (c *CountWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	atomic.AddUint64(c.n, uint64(n))
	return n, err
}

var (
	_ io.Reader = (*CountReader)(nil)
	_ io.Writer = (*CountWriter)(nil)
)
