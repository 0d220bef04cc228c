// Command mine-anchors mines distinctive anchor phrases per first-level
// category from a weakly labeled news corpus and writes an anchor patch.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/cognicore/lumen/internal/cli"
	"github.com/cognicore/lumen/pkg/lumen/corpus"
	"github.com/cognicore/lumen/pkg/lumen/corpus/sqlitecorpus"
	"github.com/cognicore/lumen/pkg/lumen/mining"
	"github.com/cognicore/lumen/pkg/lumen/taxonomy"
)

func main() {
	var (
		cfgPath   = flag.String("config", "lumen.yaml", "Config file (optional)")
		taxPath   = flag.String("taxonomy", "", "Taxonomy JSON (default from config)")
		lang      = flag.String("lang", "", "Corpus language (default from config)")
		groupsRaw = flag.String("groups", "", "Group map JSON {group: [l1_id...]} (required)")
		jsonlPath = flag.String("jsonl", "", "Articles JSONL")
		dbPath    = flag.String("db", "", "Articles SQLite database")
		dbTable   = flag.String("db-table", "articles", "Articles table")
		dbLangCol = flag.String("db-lang-col", "lang", "Language column (empty disables filtering)")
		dbWhere   = flag.String("db-where", "", "Extra SQL condition")
		dbLimit   = flag.Int("db-limit", 0, "Max rows (0 = all)")
		outPath   = flag.String("out", "anchor_patch.json", "Patch output path")
		csvPath   = flag.String("csv", "", "Candidate report CSV (optional)")
		minDF     = flag.Int64("min-df", 0, "Override minimum in-category document frequency")
		maxNGram  = flag.Int("max-ngram", 0, "Override maximum n-gram length")
		maxAnch   = flag.Int("max-anchors", 0, "Override anchors kept per category")
		level     = flag.String("log-level", "", "Log level")
	)
	flag.Parse()

	if *groupsRaw == "" {
		log.Fatal("--groups required")
	}
	if (*jsonlPath == "") == (*dbPath == "") {
		log.Fatal("exactly one of --jsonl or --db required")
	}

	cfg, logger, err := cli.Setup(*cfgPath, *level)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *taxPath != "" {
		cfg.Taxonomy.Path = *taxPath
	}
	mcfg := cfg.MiningConfig(*lang)
	if *minDF > 0 {
		mcfg.MinDF = *minDF
	}
	if *maxNGram > 0 {
		mcfg.MaxNGram = *maxNGram
	}
	if *maxAnch > 0 {
		mcfg.MaxAnchors = *maxAnch
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	tax, err := taxonomy.Load(cfg.Taxonomy.Path, taxonomy.WithLogger(logger))
	if err != nil {
		log.Fatalf("load taxonomy: %v", err)
	}
	groups, err := corpus.LoadGroupMap(*groupsRaw)
	if err != nil {
		log.Fatalf("load groups: %v", err)
	}
	for g, ids := range groups {
		for _, id := range ids {
			if _, ok := tax.Node(id); !ok {
				logger.Warn("group maps to unknown category", "group", g, "category", id)
			}
		}
	}

	var articles []corpus.Article
	if *jsonlPath != "" {
		articles, err = corpus.LoadJSONL(*jsonlPath, logger)
	} else {
		var store *sqlitecorpus.Store
		store, err = sqlitecorpus.Open(ctx, *dbPath)
		if err != nil {
			log.Fatalf("open db: %v", err)
		}
		defer store.Close()
		q := sqlitecorpus.DefaultQuery(mcfg.Lang)
		q.Table, q.LangCol, q.Where, q.Limit = *dbTable, *dbLangCol, *dbWhere, *dbLimit
		articles, err = store.Articles(ctx, q)
	}
	if err != nil {
		log.Fatalf("load articles: %v", err)
	}

	docs, stats := corpus.Partition(corpus.FilterLang(articles, mcfg.Lang), groups)
	logger.Info("corpus partitioned", "total", stats.Total, "short", stats.Short,
		"grouped", stats.Grouped, "mapped", stats.Mapped, "categories", len(docs))
	if len(docs) == 0 {
		log.Fatal("no articles mapped to any category; fix the group map keys to match the extracted groups")
	}

	lex, err := cfg.Lexicon()
	if err != nil {
		log.Fatalf("load stoplists: %v", err)
	}
	miner, err := mining.New(mcfg, mining.WithLexicon(lex), mining.WithLogger(logger))
	if err != nil {
		log.Fatalf("configure miner: %v", err)
	}
	res, err := miner.Mine(ctx, docs)
	if err != nil {
		log.Fatalf("mine: %v", err)
	}

	if err := res.Patch().Save(*outPath); err != nil {
		log.Fatalf("write patch: %v", err)
	}
	if *csvPath != "" {
		f, err := os.Create(*csvPath)
		if err != nil {
			log.Fatalf("create csv: %v", err)
		}
		if err := mining.WriteCSV(f, res, tax.Labels(mcfg.Lang)); err != nil {
			f.Close()
			log.Fatalf("write csv: %v", err)
		}
		if err := f.Close(); err != nil {
			log.Fatalf("close csv: %v", err)
		}
	}

	s := res.Summary
	log.Printf("run %s: %d documents, %d categories mined, %d skipped %v; patch written to %s",
		res.RunID, s.Documents, s.Mined, s.Skipped, s.SkippedIDs, *outPath)
}
