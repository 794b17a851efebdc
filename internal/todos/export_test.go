package todos

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

var fixedTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func TestExportMarkdownCreatesFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "todos.md")
	if err := ExportMarkdown(p, "Todos", sample()); err != nil {
		t.Fatalf("export: %v", err)
	}
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "| 3 | Buy milk | No |") {
		t.Fatalf("unexpected export:\n%s", b)
	}
}

func TestExportMarkdownMissingDir(t *testing.T) {
	p := filepath.Join(t.TempDir(), "absent", "todos.md")
	if err := ExportMarkdown(p, "Todos", sample()); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestSummarize(t *testing.T) {
	st := Summarize(sample())
	if st.Done != 3 || st.Pending != 2 || st.Total() != 5 {
		t.Fatalf("unexpected stats %+v", st)
	}
}
