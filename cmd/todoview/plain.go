package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"todoview/internal/config"
	"todoview/internal/hooks"
	"todoview/internal/render"
	"todoview/internal/source"
	"todoview/internal/todos"
	"todoview/internal/viewer"
)

type plainOptions struct {
	search     string
	sortColumn string
	desc       bool
	page       int
	export     string
}

// runPlain loads once, applies the flag state to a viewer and prints the
// resulting page. A failed fetch is shown as a warning, not returned.
func runPlain(ctx context.Context, w io.Writer, cfg config.Config, src source.Source, env *hooks.Env, po plainOptions) error {
	out := &render.Plain{Hooks: env, TitleWidth: 60, Sorting: cfg.Sorting}
	var opts []viewer.Option
	if cfg.Sorting {
		opts = append(opts, viewer.WithSorting())
	}
	if cfg.Pagination {
		opts = append(opts, viewer.WithPagination(out, cfg.PageSize, cfg.WindowSize))
	}
	v := viewer.New(out, out, opts...)

	records, err := src.Load(ctx)
	if err != nil {
		v.FetchFailed(err)
	} else {
		v.SetDataset(records)
	}
	if po.search != "" {
		v.SetSearchTerm(po.search)
	}
	applySort(v, po.sortColumn, po.desc)
	if po.page > 1 {
		v.SetPage(po.page)
	}
	out.Sort = v.Sort()

	if _, err := fmt.Fprintln(w, render.StatsLine(v.ViewCollection())); err != nil {
		return err
	}
	if _, err := out.WriteTo(w); err != nil {
		return err
	}
	if po.export != "" {
		if err := config.EnsureDir(filepath.Dir(po.export)); err != nil {
			return fmt.Errorf("export: %w", err)
		}
		if err := todos.ExportMarkdown(po.export, "Todos", v.ViewCollection()); err != nil {
			return fmt.Errorf("export: %w", err)
		}
		fmt.Fprintf(w, "exported %d todos to %s\n", len(v.ViewCollection()), po.export)
	}
	return nil
}

// applySort clicks the column header until the requested direction is reached.
func applySort(v *viewer.Viewer, column string, desc bool) {
	if column == "" {
		if !desc {
			return
		}
		column = todos.ColumnID
	}
	want := todos.SortSpec{Column: column, Ascending: !desc}
	for i := 0; i < 2 && v.Sort() != want; i++ {
		v.SetSort(column)
	}
}
