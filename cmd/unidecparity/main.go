// Command unidecparity compares unidec's output against other Go
// transliterators, both over a codepoint sweep and over corpus files. It
// reports where the mapping table disagrees with or lags behind them.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sync"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	mozillazg "github.com/mozillazg/go-unidecode"
	rainycape "github.com/rainycape/unidecode"
	"go.senan.xyz/flagconf"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/unicode/runenames"

	"go.senan.xyz/unidec"
)

func main() {
	set := flag.NewFlagSet("unidecparity", flag.ExitOnError)
	confFrom := set.Int("from", 0x80, "first codepoint of the sweep")
	confTo := set.Int("to", 0xFFFF, "last codepoint of the sweep")
	confShow := set.Int("show", 20, "max coverage gaps to print")
	confConfigPath := set.String("config-path", "", "path to config (optional)")

	if err := set.Parse(os.Args[1:]); err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	if err := flagconf.ParseEnvSet(set, os.Environ()); err != nil {
		log.Fatalf("parse env: %v", err)
	}
	if err := flagconf.ParseConfigSet(set, os.Environ(), *confConfigPath); err != nil {
		log.Fatalf("parse config: %v", err)
	}

	sweep(rune(*confFrom), rune(*confTo), *confShow)

	if args := set.Args(); len(args) > 0 {
		if err := corpus(args); err != nil {
			log.Fatalf("compare corpus: %v", err)
		}
	}
}

// sweep compares every codepoint in [from, to] against the reference
// transliterators. A gap is a codepoint we leave unmapped but at least one
// reference transliterates to something.
func sweep(from, to rune, show int) {
	var agree, differ int
	var gaps []rune
	for r := from; r <= to; r++ {
		if r >= 0xD800 && r <= 0xDFFF {
			continue
		}
		if !utf8.ValidRune(r) {
			continue
		}
		in := string(r)
		ours, err := unidec.Unidecode(in, "", "")
		if err != nil {
			log.Fatalf("transliterate %U: %v", r, err)
		}
		rain := rainycape.Unidecode(in)
		moz := mozillazg.Unidecode(in)
		switch {
		case ours == rain && ours == moz:
			agree++
		case ours == "" && (rain != "" || moz != ""):
			differ++
			gaps = append(gaps, r)
		default:
			differ++
		}
	}
	fmt.Printf("sweep %U..%U: agree %s, differ %s\n",
		from, to, humanize.Comma(int64(agree)), humanize.Comma(int64(differ)))
	for i, r := range gaps {
		if i >= show {
			fmt.Printf("... and %s more gaps\n", humanize.Comma(int64(len(gaps)-show)))
			break
		}
		fmt.Printf("gap %U %s\n", r, runenames.Name(r))
	}
}

func corpus(paths []string) error {
	var mu sync.Mutex
	var group errgroup.Group
	for _, path := range paths {
		path := path
		group.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			in := string(data)
			ours, err := unidec.Unidecode(in, "", "")
			if err != nil {
				return fmt.Errorf("transliterate %s: %w", path, err)
			}
			rain := rainycape.Unidecode(in)
			moz := mozillazg.Unidecode(in)

			mu.Lock()
			defer mu.Unlock()
			fmt.Printf("%s: in %s, out %s, rainycape match %t, mozillazg match %t\n",
				path,
				humanize.Bytes(uint64(len(data))), humanize.Bytes(uint64(len(ours))),
				ours == rain, ours == moz)
			return nil
		})
	}
	return group.Wait()
}
