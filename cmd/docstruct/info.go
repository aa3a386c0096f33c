package main

import (
	"flag"
	"fmt"

	"github.com/fulmenhq/docstruct/ascii"
	"github.com/fulmenhq/docstruct/internal/pdfmeta"
)

// runInfo implements `docstruct info <input>` (spec §6, supplemented
// feature #1): prints the page count and binary identity in a boxed
// summary table. Grounded on
// original_source/src/main.rs::show_info.
func runInfo(args []string) error {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("info requires exactly one input file")
	}
	input := fs.Arg(0)

	pages, err := pdfmeta.PageCount(input)
	if err != nil {
		return err
	}

	content := fmt.Sprintf("docstruct %s\nfile:  %s\npages: %d", binaryIdentity.Binary(), input, pages)
	fmt.Println(ascii.DrawBox(content, 0))
	return nil
}
