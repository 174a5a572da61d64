package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dustin/go-humanize"
	"go.senan.xyz/flagconf"

	"go.senan.xyz/unidec"
	"go.senan.xyz/unidec/countrw"
)

func main() {
	set := flag.NewFlagSet(unidec.Name, flag.ExitOnError)
	confErrors := set.String("errors", "", "policy for unmapped codepoints (ignore|replace|preserve|invalid|strict) (optional)")
	confReplaceWith := set.String("replace-with", "", "replacement text for the replace policy, default \"?\" (optional)")
	confExpect := set.String("expect", "ascii", "input profile hint (ascii|nonascii) (optional)")
	confStats := set.Bool("stats", false, "print bytes read and written to stderr (optional)")
	confShowVersion := set.Bool("version", false, "show unidec version")
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

	if *confShowVersion {
		fmt.Println(unidec.Version)
		os.Exit(0)
	}

	// reject a bad policy token before reading any input
	if _, err := unidec.ParsePolicy(*confErrors); err != nil {
		log.Fatalf("parse errors policy: %v", err)
	}

	decode := unidec.UnidecodeExpectASCII
	switch *confExpect {
	case "ascii":
	case "nonascii":
		decode = unidec.UnidecodeExpectNonASCII
	default:
		log.Fatalf("unknown expect profile %q", *confExpect)
	}

	var in io.Reader = os.Stdin
	if args := set.Args(); len(args) > 0 {
		var readers []io.Reader
		for _, path := range args {
			f, err := os.Open(path)
			if err != nil {
				log.Fatalf("open %s: %v", path, err)
			}
			defer f.Close()
			readers = append(readers, f)
		}
		in = io.MultiReader(readers...)
	}

	cr := countrw.NewCountReader(in)
	cw := countrw.NewCountWriter(os.Stdout)
	out := bufio.NewWriter(cw)

	scanner := bufio.NewScanner(cr)
	scanner.Buffer(make([]byte, 0, 1<<20), 1<<20)
	for scanner.Scan() {
		line, err := decode(scanner.Text(), *confErrors, *confReplaceWith)
		if err != nil {
			log.Fatalf("transliterate: %v", err)
		}
		fmt.Fprintln(out, line)
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("read input: %v", err)
	}
	if err := out.Flush(); err != nil {
		log.Fatalf("flush output: %v", err)
	}

	if *confStats {
		log.Printf("read %s, wrote %s", humanize.Bytes(cr.Count()), humanize.Bytes(cw.Count()))
	}
}
