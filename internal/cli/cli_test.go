package cli

import (
	"flag"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestWriteAndReadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	if err := WriteJSON(path, map[string]string{"q": "a<b"}); err != nil {
		t.Fatal(err)
	}
	got, err := ReadInput(path)
	if err != nil {
		t.Fatal(err)
	}
	if want := "{\n  \"q\": \"a<b\"\n}\n"; got != want {
		t.Errorf("file = %q, want %q", got, want)
	}
	if _, err := ReadInput(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("missing input should fail")
	}
}

func TestWriteText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	if err := WriteText(path, "cleaned"); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "cleaned\n" {
		t.Errorf("text = %q", data)
	}
}

func TestSplitList(t *testing.T) {
	if got := SplitList(" en, fr,,de "); !reflect.DeepEqual(got, []string{"en", "fr", "de"}) {
		t.Errorf("SplitList = %v", got)
	}
	if got := SplitList(""); got != nil {
		t.Errorf("empty = %v", got)
	}
}

func TestSetupMissingConfig(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, logger, err := Setup(filepath.Join(t.TempDir(), "lumen.yaml"), "debug")
	if err != nil || logger == nil {
		t.Fatalf("Setup: %v", err)
	}
	if cfg.Log.Level != "debug" || cfg.Taxonomy.Lang != "en" {
		t.Errorf("cfg = %+v", cfg.Log)
	}
}

func TestVisited(t *testing.T) {
	fs := flag.NewFlagSet("classify", flag.ContinueOnError)
	fs.Float64("threshold", 0, "")
	fs.Int("min-len", 0, "")
	fs.String("out", "", "")
	if err := fs.Parse([]string{"-threshold", "0", "-out=x.jsonl"}); err != nil {
		t.Fatal(err)
	}
	if got := Visited(fs); !reflect.DeepEqual(got, map[string]bool{"threshold": true, "out": true}) {
		t.Errorf("Visited = %v", got)
	}
}
