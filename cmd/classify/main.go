// Command classify assigns each article of a JSONL file to one taxonomy
// category by centroid similarity and writes one JSON result per line.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"io"
	"log"
	"os"

	"github.com/cognicore/lumen/internal/cli"
	"github.com/cognicore/lumen/pkg/lumen"
	"github.com/cognicore/lumen/pkg/lumen/centroid"
	"github.com/cognicore/lumen/pkg/lumen/corpus"
	"github.com/cognicore/lumen/pkg/lumen/lexical"
)

type record struct {
	ID      string          `json:"id"`
	Lang    string          `json:"lang"`
	Result  centroid.Result `json:"result"`
	Lexical *lexical.Result `json:"lexical,omitempty"`
}

func main() {
	var (
		cfgPath   = flag.String("config", "lumen.yaml", "Config file (optional)")
		taxPath   = flag.String("taxonomy", "", "Taxonomy JSON (default from config)")
		inPath    = flag.String("in", "", "Articles JSONL (required)")
		outPath   = flag.String("out", "", "Results JSONL (default: stdout)")
		batchSize = flag.Int("batch-size", 64, "Articles per embedding batch")
		threshold = flag.Float64("threshold", 0, "Override similarity threshold")
		margin    = flag.Float64("margin-threshold", 0, "Override top-two margin threshold")
		minLen    = flag.Int("min-len", 0, "Override minimum text length")
		withLex   = flag.Bool("lexical", false, "Add BM25 multi-label results")
		samples   = flag.Int("print-samples", 0, "Log the first N decisions")
		level     = flag.String("log-level", "", "Log level")
	)
	flag.Parse()

	if *inPath == "" {
		log.Fatal("--in required")
	}
	if *batchSize < 1 {
		*batchSize = 1
	}
	cfg, logger, err := cli.Setup(*cfgPath, *level)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *taxPath != "" {
		cfg.Taxonomy.Path = *taxPath
	}
	set := cli.Visited(flag.CommandLine)
	if set["threshold"] {
		cfg.Classifier.Threshold = *threshold
	}
	if set["margin-threshold"] {
		cfg.Classifier.MarginThreshold = *margin
	}
	if set["min-len"] {
		cfg.Classifier.MinLen = *minLen
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid overrides: %v", err)
	}

	ctx := context.Background()
	eng, err := lumen.New(ctx, lumen.Options{Config: cfg, Logger: logger})
	if err != nil {
		log.Fatalf("start engine: %v", err)
	}
	defer eng.Close()
	if len(eng.Centroid().Categories()) == 0 {
		log.Fatalf("no categories loaded from %s", cfg.Taxonomy.Path)
	}

	articles, err := corpus.LoadJSONL(*inPath, logger)
	if err != nil {
		log.Fatalf("load articles: %v", err)
	}

	var w io.Writer = os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			log.Fatalf("create output: %v", err)
		}
		defer f.Close()
		w = f
	}
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)

	counts := map[centroid.Reason]int{}
	printed := 0
	for start := 0; start < len(articles); start += *batchSize {
		batch := articles[start:min(start+*batchSize, len(articles))]
		texts := make([]string, len(batch))
		for i, a := range batch {
			texts[i] = a.Title + ": " + a.Text
		}
		results, err := eng.ClassifyBatch(texts)
		if err != nil {
			log.Fatalf("classify batch at %d: %v", start, err)
		}
		for i, a := range batch {
			rec := record{ID: a.ID, Lang: a.Lang, Result: results[i]}
			if rec.Lang == "" {
				rec.Lang = eng.DetectLang(texts[i])
			}
			if *withLex {
				lr := eng.ClassifyLexical(a.Title, a.Text, nil)
				rec.Lexical = &lr
			}
			if err := enc.Encode(rec); err != nil {
				log.Fatalf("write result: %v", err)
			}
			counts[rec.Result.Reason]++
			if printed < *samples {
				logger.Info("sample", "id", a.ID, "category", rec.Result.CategoryID,
					"confidence", rec.Result.Confidence, "reason", rec.Result.Reason)
				printed++
			}
		}
		logger.Debug("batch done", "seen", start+len(batch), "total", len(articles))
	}
	if err := bw.Flush(); err != nil {
		log.Fatalf("flush output: %v", err)
	}
	logger.Info("done", "articles", len(articles),
		"ok", counts[centroid.ReasonOK],
		"low_confidence", counts[centroid.ReasonLowConfidence],
		"short_text", counts[centroid.ReasonShortText])
}
