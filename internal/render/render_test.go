package render

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"todoview/internal/hooks"
	"todoview/internal/pagination"
	"todoview/internal/todos"
)

func TestPagerLine(t *testing.T) {
	tests := []struct {
		name                  string
		current, total, width int
		want                  string
	}{
		{"first of three", 1, 3, 5, "« ‹ [1] 2 3 › »  page 1/3"},
		{"middle with gaps", 6, 20, 5, "« ‹ … 4 5 [6] 7 8 … › »  page 6/20"},
		{"last", 20, 20, 5, "« ‹ … 16 17 18 19 [20] › »  page 20/20"},
		{"single page", 1, 1, 5, ""},
		{"empty", 1, 0, 5, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PagerLine(pagination.NewControls(tt.current, tt.total, tt.width))
			if got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCells(t *testing.T) {
	r := todos.Record{ID: 12, Title: "buy\nmilk  today", Completed: true}
	got := Cells(r, nil, 0)
	want := []string{"12", "buy milk today", "Yes"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("cells = %q, want %q", got, want)
		}
	}
	if got := Cells(r, nil, 3)[1]; got != "buy…" {
		t.Fatalf("truncated title = %q", got)
	}
}

func TestCellsWithHook(t *testing.T) {
	dir := t.TempDir()
	code := `function renderTodoRow(t) { return { title: "* " + t.title, completed: t.completed ? "done" : "" }; }`
	if err := os.WriteFile(filepath.Join(dir, "row.js"), []byte(code), 0o644); err != nil {
		t.Fatal(err)
	}
	env, err := hooks.LoadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	got := Cells(todos.Record{ID: 1, Title: "a", Completed: false}, env, 0)
	if got[1] != "* a" || got[2] != "No" {
		t.Fatalf("cells = %q", got)
	}
	got = Cells(todos.Record{ID: 2, Title: "b", Completed: true}, env, 0)
	if got[2] != "done" {
		t.Fatalf("cells = %q", got)
	}
}

func TestHeaderLabel(t *testing.T) {
	spec := todos.SortSpec{Column: todos.ColumnTitle, Ascending: false}
	if got := HeaderLabel(1, spec, true); got != "Title ▼" {
		t.Fatalf("got %q", got)
	}
	if got := HeaderLabel(0, spec, true); got != "ID" {
		t.Fatalf("got %q", got)
	}
	if got := HeaderLabel(1, spec, false); got != "Title" {
		t.Fatalf("sorting disabled should not decorate, got %q", got)
	}
}

func TestPlainWriteTo(t *testing.T) {
	p := &Plain{Sort: todos.DefaultSort(), Sorting: true}
	p.RenderTable([]todos.Record{{ID: 1, Title: "delectus aut autem"}, {ID: 2, Title: "quis ut nam", Completed: true}})
	p.RenderPagination(pagination.NewControls(1, 2, 5))
	p.ShowWarning("")

	var buf bytes.Buffer
	if _, err := p.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"ID ▲", "Title", "Completed", "delectus aut autem", "quis ut nam", "Yes", "No", "page 1/2"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "!") {
		t.Errorf("no warning expected:\n%s", out)
	}
}

func TestPlainWarning(t *testing.T) {
	p := &Plain{}
	p.RenderTable(nil)
	p.RenderPagination(pagination.NewControls(1, 0, 5))
	p.ShowWarning("Failed to fetch todos.")

	var buf bytes.Buffer
	if _, err := p.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Failed to fetch todos.") {
		t.Fatalf("warning missing:\n%s", buf.String())
	}
	if strings.Contains(buf.String(), "page") {
		t.Fatalf("pager should be hidden:\n%s", buf.String())
	}
}

func TestStatsLine(t *testing.T) {
	got := StatsLine([]todos.Record{{Completed: true}, {}, {}})
	if got != "3 todos · 1 done · 2 pending" {
		t.Fatalf("got %q", got)
	}
}
