package tui

import (
	"path/filepath"
	"testing"
	"time"
)

var fixedNow = time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)

func TestExportPath(t *testing.T) {
	if got := exportPath("", fixedNow); got != "todos-20261017-093000.md" {
		t.Fatalf("got %q", got)
	}
	if got := exportPath("/tmp/out", fixedNow); got != filepath.Join("/tmp/out", "todos-20261017-093000.md") {
		t.Fatalf("got %q", got)
	}
}
