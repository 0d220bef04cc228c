// Command taxonomy-audit reports label and definition coverage of a
// multilingual taxonomy and flags suspicious nodes.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/cognicore/lumen/internal/cli"
	"github.com/cognicore/lumen/pkg/lumen/taxonomy"
)

func main() {
	var (
		taxPath  = flag.String("taxonomy", "", "Taxonomy JSON (required)")
		langs    = flag.String("langs", "en,fr", "Comma-separated languages to audit")
		outCSV   = flag.String("out-csv", "", "Write flagged nodes to CSV")
		maxPrint = flag.Int("max-print", 25, "Flagged nodes to print")
	)
	flag.Parse()

	if *taxPath == "" {
		log.Fatal("--taxonomy required")
	}
	tax, err := taxonomy.Load(*taxPath)
	if err != nil {
		log.Fatalf("load taxonomy: %v", err)
	}
	codes := cli.SplitList(*langs)
	rep := taxonomy.Audit(tax, codes)

	levels := make([]string, 0, len(rep.ByLevel))
	for lvl, n := range rep.ByLevel {
		levels = append(levels, fmt.Sprintf("L%d=%d", lvl, n))
	}
	sort.Strings(levels)
	fmt.Println("=== Taxonomy Audit ===")
	fmt.Printf("Nodes: total=%d  %s\n", rep.Nodes, strings.Join(levels, "  "))
	fmt.Println("Coverage:")
	for _, kind := range []string{"labels", "definitions"} {
		for _, l := range codes {
			key := kind + "." + l
			fmt.Printf("  %-16s %6.2f%%\n", key+":", rep.Coverage[key])
		}
	}
	fmt.Println("Flags:")
	flags := make([]string, 0, len(rep.Counts))
	for f := range rep.Counts {
		flags = append(flags, f)
	}
	sort.Strings(flags)
	for _, f := range flags {
		fmt.Printf("  %-24s %d\n", f+":", rep.Counts[f])
	}

	if len(rep.Findings) == 0 {
		fmt.Println("\nNo flagged nodes.")
	} else {
		fmt.Printf("\nFlagged nodes: %d (showing up to %d)\n", len(rep.Findings), *maxPrint)
		for i, f := range rep.Findings {
			if i >= *maxPrint {
				break
			}
			n, _ := tax.Node(f.ID)
			fmt.Printf("- L%d %s parent=%s flags=%s %s\n", f.Level, f.ID, f.ParentID, strings.Join(f.Flags, ","), labelsOf(n, codes))
		}
	}

	if *outCSV != "" {
		if err := writeCSV(*outCSV, tax, rep, codes); err != nil {
			log.Fatalf("write csv: %v", err)
		}
		fmt.Printf("\nWrote CSV: %s\n", *outCSV)
	}
}

func labelsOf(n *taxonomy.Node, codes []string) string {
	parts := make([]string, len(codes))
	for i, l := range codes {
		parts[i] = fmt.Sprintf("%s=%q", l, n.Labels[l])
	}
	return strings.Join(parts, " ")
}

func writeCSV(path string, tax *taxonomy.Taxonomy, rep taxonomy.Report, codes []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	header := []string{"level", "id", "parent_id", "flags"}
	for _, l := range codes {
		header = append(header, "label_"+l)
	}
	for _, l := range codes {
		header = append(header, "def_"+l)
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, fd := range rep.Findings {
		n, _ := tax.Node(fd.ID)
		row := []string{fmt.Sprint(fd.Level), fd.ID, fd.ParentID, strings.Join(fd.Flags, ",")}
		for _, l := range codes {
			row = append(row, n.Labels[l])
		}
		for _, l := range codes {
			row = append(row, n.Definitions[l])
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}
