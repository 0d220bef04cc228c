// Command clean-article turns raw article markdown or HTML into lexically
// clean text.
package main

import (
	"flag"
	"log"

	"github.com/cognicore/lumen/internal/cli"
	"github.com/cognicore/lumen/pkg/lumen/textclean"
)

func main() {
	var (
		inPath   = flag.String("in", "", "Input file (default: stdin)")
		html     = flag.Bool("html", false, "Strip HTML markup before cleaning")
		cutAfter = flag.String("cut-after-heading", "", `Drop everything from this exact heading on (e.g. "## Trans Canada")`)
		outPath  = flag.String("out", "", "Output file (default: stdout)")
	)
	flag.Parse()

	raw, err := cli.ReadInput(*inPath)
	if err != nil {
		log.Fatal(err)
	}
	if *html {
		raw = textclean.StripMarkup(raw)
	}
	cleaned := textclean.Clean(raw, textclean.Options{CutAfterHeading: *cutAfter})
	if err := cli.WriteText(*outPath, cleaned); err != nil {
		log.Fatal(err)
	}
}
