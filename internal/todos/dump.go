package todos

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"
)

const maxExportTitle = 120

// ExportMarkdown writes records to filename as a markdown document. The
// parent directory must exist.
func ExportMarkdown(filename, heading string, records []Record) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteMarkdown(f, heading, records, time.Now())
}

// WriteMarkdown renders a summary line and one table row per record. Titles
// longer than the row limit are followed by a details block with the full
// text.
func WriteMarkdown(w io.Writer, heading string, records []Record, at time.Time) error {
	st := Summarize(records)
	if _, err := fmt.Fprintf(w, "# %s\n\n", heading); err != nil {
		return err
	}
	fmt.Fprintf(w, "- Exported: %s\n", at.Local().Format(time.RFC3339))
	fmt.Fprintf(w, "- Total: %d (done %d, pending %d)\n\n", st.Total(), st.Done, st.Pending)

	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "_No todos._")
		return err
	}

	fmt.Fprintln(w, "| ID | Title | Completed |")
	fmt.Fprintln(w, "| ---: | --- | --- |")
	var long []Record
	for _, r := range records {
		title, truncated := CleanOneLine(r.Title, maxExportTitle)
		if truncated {
			long = append(long, r)
		}
		fmt.Fprintf(w, "| %d | %s | %s |\n", r.ID, escapeCell(title), r.CompletedText())
	}
	for _, r := range long {
		fmt.Fprintf(w, "\n<details><summary>%d</summary>\n\n```\n%s\n```\n\n</details>\n", r.ID, r.Title)
	}
	return nil
}

// DetailMarkdown describes one record, extra fields included, for the
// detail pane.
func DetailMarkdown(r Record) string {
	b := &strings.Builder{}
	title := r.Title
	if strings.TrimSpace(title) == "" {
		title = fmt.Sprintf("Todo %d", r.ID)
	}
	fmt.Fprintf(b, "# %s\n\n", title)
	fmt.Fprintf(b, "- ID: `%d`\n", r.ID)
	fmt.Fprintf(b, "- Completed: %s\n", r.CompletedText())
	if len(r.Extra) > 0 {
		keys := make([]string, 0, len(r.Extra))
		for k := range r.Extra {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fmt.Fprintf(b, "\n## Fields\n\n")
		for _, k := range keys {
			fmt.Fprintf(b, "- %s: `%v`\n", k, r.Extra[k])
		}
	}
	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
