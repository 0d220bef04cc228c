// Command merge-anchors merges an anchor patch into a taxonomy file.
package main

import (
	"flag"
	"log"

	"github.com/cognicore/lumen/pkg/lumen/mining"
	"github.com/cognicore/lumen/pkg/lumen/taxonomy"
)

func main() {
	var (
		taxPath   = flag.String("taxonomy", "", "Taxonomy JSON (required)")
		patchPath = flag.String("patch", "", "Anchor patch JSON (required)")
		outPath   = flag.String("out", "", "Output taxonomy path (required)")
		replace   = flag.Bool("replace", false, "Replace anchors[lang] instead of extending them")
	)
	flag.Parse()

	if *taxPath == "" || *patchPath == "" || *outPath == "" {
		log.Fatal("--taxonomy, --patch and --out required")
	}

	tax, err := taxonomy.Load(*taxPath)
	if err != nil {
		log.Fatalf("load taxonomy: %v", err)
	}
	if tax.Len() == 0 {
		log.Fatalf("taxonomy %s is missing or empty", *taxPath)
	}
	patch, err := mining.LoadPatch(*patchPath)
	if err != nil {
		log.Fatalf("load patch: %v", err)
	}

	mode := taxonomy.MergeUnion
	if *replace {
		mode = taxonomy.MergeReplace
	}
	merged, updated := tax.Merge(patch.Lang, patch.Anchors, mode)
	for id := range patch.Anchors {
		if _, ok := tax.Node(id); !ok {
			log.Printf("patch category %q not in taxonomy, ignored", id)
		}
	}
	if err := merged.Save(*outPath); err != nil {
		log.Fatalf("write taxonomy: %v", err)
	}
	log.Printf("updated %d categories for lang=%s; wrote %s", updated, patch.Lang, *outPath)
}
