package unidec_test

import (
	"strings"
	"testing"

	"go.senan.xyz/unidec"
)

func BenchmarkExpectASCIIMostlyASCII(b *testing.B) {
	in := strings.Repeat("the quick brown fox, déjà vu. ", 100)
	b.SetBytes(int64(len(in)))
	for i := 0; i < b.N; i++ {
		if _, err := unidec.UnidecodeExpectASCII(in, "", ""); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkExpectNonASCIIMostlyASCII(b *testing.B) {
	in := strings.Repeat("the quick brown fox, déjà vu. ", 100)
	b.SetBytes(int64(len(in)))
	for i := 0; i < b.N; i++ {
		if _, err := unidec.UnidecodeExpectNonASCII(in, "", ""); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkExpectNonASCIICyrillic(b *testing.B) {
	in := strings.Repeat("Съешь же ещё этих мягких французских булок ", 100)
	b.SetBytes(int64(len(in)))
	for i := 0; i < b.N; i++ {
		if _, err := unidec.UnidecodeExpectNonASCII(in, "", ""); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPureASCIIShortCircuit(b *testing.B) {
	in := strings.Repeat("plain ascii text with nothing to do ", 100)
	b.SetBytes(int64(len(in)))
	for i := 0; i < b.N; i++ {
		if _, err := unidec.UnidecodeExpectASCII(in, "", ""); err != nil {
			b.Fatal(err)
		}
	}
}
