// Command docstruct fuses a PDF page's parser and OCR extraction tracks into
// a provenance-annotated page description (spec §1), exposing the thin CLI
// surface spec §6 documents: convert, batch, and info.
package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "convert":
		err = runConvert(args)
	case "batch":
		err = runBatch(args)
	case "info":
		err = runInfo(args)
	case "help", "-h", "--help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", cmd)
		usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "docstruct: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `docstruct commands:
  convert <input> [--output path] [--format json,html,markdown,text] [--dpi N] [--debug] [--quiet]
  batch <inputs...> [--output path] [--format json,html,markdown,text] [--dpi N] [--debug]
  info <input>
`)
}
