// Command bm25-classify assigns one article to second-level taxonomy
// categories with BM25 over category profiles and derives their parents.
package main

import (
	"flag"
	"log"

	"github.com/cognicore/lumen/internal/cli"
	"github.com/cognicore/lumen/pkg/lumen/extract"
	"github.com/cognicore/lumen/pkg/lumen/lexical"
	"github.com/cognicore/lumen/pkg/lumen/taxonomy"
)

func main() {
	var (
		cfgPath      = flag.String("config", "lumen.yaml", "Config file (optional)")
		taxPath      = flag.String("taxonomy", "", "Taxonomy JSON (default from config)")
		code         = flag.String("lang", "", "Article language (default from config)")
		title        = flag.String("title", "", "Article title")
		inPath       = flag.String("in", "", "Article body file (default: stdin)")
		anchorsPath  = flag.String("anchors-json", "", "Anchors JSON from extract-anchors (optional)")
		anchorsTop   = flag.Int("anchors-top", 0, "Anchor phrases included in the query")
		topK         = flag.Int("topk", 0, "Candidates to score and report")
		maxLabels    = flag.Int("max-labels", 0, "Maximum labels returned")
		minScore     = flag.Float64("min-score", 0, "Absolute BM25 floor")
		withinBest   = flag.Float64("within-best", 0, "Keep labels scoring at least this fraction of the best")
		bodyTermsCap = flag.Int("body-terms-cap", 0, "Body tokens used in the query")
		outPath      = flag.String("json-out", "", "Output JSON file (default: stdout)")
	)
	flag.Parse()

	cfg, logger, err := cli.Setup(*cfgPath, "")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *taxPath != "" {
		cfg.Taxonomy.Path = *taxPath
	}
	if *code != "" {
		cfg.Taxonomy.Lang = *code
	}
	l := &cfg.Lexical
	override(&l.AnchorsTop, *anchorsTop)
	override(&l.TopK, *topK)
	override(&l.MaxLabels, *maxLabels)
	override(&l.BodyTermsCap, *bodyTermsCap)
	set := cli.Visited(flag.CommandLine)
	if set["min-score"] {
		l.MinScore = *minScore
	}
	if set["within-best"] {
		l.WithinBest = *withinBest
	}

	tax, err := taxonomy.Load(cfg.Taxonomy.Path, taxonomy.WithLogger(logger))
	if err != nil {
		log.Fatalf("load taxonomy: %v", err)
	}
	body, err := cli.ReadInput(*inPath)
	if err != nil {
		log.Fatal(err)
	}
	var anchors []string
	if *anchorsPath != "" {
		if anchors, err = extract.LoadPhrases(*anchorsPath); err != nil {
			log.Fatalf("load anchors: %v", err)
		}
	}
	lex, err := cfg.Lexicon()
	if err != nil {
		log.Fatalf("load stoplists: %v", err)
	}

	lang := cfg.Taxonomy.Lang
	c := lexical.New(lexical.BuildProfiles(tax, lang), lang, lexical.WithLexicon(lex))
	if c.Len() == 0 {
		log.Fatalf("taxonomy %s has no second-level categories", cfg.Taxonomy.Path)
	}
	q := c.BuildQuery(*title, body, anchors, l.AnchorsTop, l.BodyTermsCap)
	if err := cli.WriteJSON(*outPath, c.Classify(q, cfg.Selection())); err != nil {
		log.Fatal(err)
	}
}

func override(dst *int, v int) {
	if v > 0 {
		*dst = v
	}
}
