// Command extract-anchors cleans one article and writes its top anchor
// phrases as JSON.
package main

import (
	"flag"
	"log"

	"github.com/cognicore/lumen/internal/cli"
	"github.com/cognicore/lumen/pkg/lumen/extract"
	"github.com/cognicore/lumen/pkg/lumen/lang"
	"github.com/cognicore/lumen/pkg/lumen/taxonomy"
)

type output struct {
	Lang     string `json:"lang"`
	TopK     int    `json:"topk"`
	MaxNGram int    `json:"max_ngram"`
	extract.Result
}

func main() {
	var (
		cfgPath  = flag.String("config", "lumen.yaml", "Config file (optional)")
		code     = flag.String("lang", "", "Article language (default: detected)")
		topK     = flag.Int("topk", 40, "Number of anchors to keep")
		maxNGram = flag.Int("max-ngram", 3, "Maximum n-gram length")
		minChars = flag.Int("min-chars", 4, "Minimum phrase length in characters")
		cutAfter = flag.String("cut-after-heading", "", "Drop everything from this exact heading on")
		taxPath  = flag.String("taxonomy", "", "Taxonomy JSON for presence counts (optional)")
		inPath   = flag.String("in", "", "Input text file (default: stdin)")
		outPath  = flag.String("json", "", "Output JSON file (default: stdout)")
	)
	flag.Parse()

	cfg, logger, err := cli.Setup(*cfgPath, "")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	text, err := cli.ReadInput(*inPath)
	if err != nil {
		log.Fatal(err)
	}
	l := *code
	if l == "" {
		l = lang.Detect(text, cfg.Taxonomy.Lang)
	}
	lex, err := cfg.Lexicon()
	if err != nil {
		log.Fatalf("load stoplists: %v", err)
	}

	ecfg := extract.DefaultConfig(l)
	ecfg.TopK, ecfg.MaxNGram, ecfg.MinChars = *topK, *maxNGram, *minChars
	ecfg.Clean.CutAfterHeading = *cutAfter
	ecfg.Lexicon = lex
	res := extract.Anchors(text, ecfg)

	if *taxPath != "" {
		tax, err := taxonomy.Load(*taxPath, taxonomy.WithLogger(logger))
		if err != nil {
			log.Fatalf("load taxonomy: %v", err)
		}
		res.Anchors = extract.AddPresenceCounts(res.Anchors, tax, l)
	}

	out := output{Lang: l, TopK: *topK, MaxNGram: *maxNGram, Result: res}
	if err := cli.WriteJSON(*outPath, out); err != nil {
		log.Fatal(err)
	}
}
