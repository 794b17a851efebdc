// Package hooks runs optional JavaScript display hooks.
package hooks

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dop251/goja"

	"todoview/internal/logging"
	"todoview/internal/todos"
)

const (
	FnRenderRow    = "renderTodoRow"
	FnRenderDetail = "renderTodoDetail"
)

// Env is a single goja runtime. It is not safe for concurrent use.
type Env struct {
	rt     *goja.Runtime
	loaded []string
}

// LoadDir evaluates every .js file in dir, in name order. A missing
// directory yields an empty Env; a script that fails to evaluate is logged
// and skipped.
func LoadDir(dir string) (*Env, error) {
	env := &Env{rt: goja.New()}
	if dir == "" {
		return env, nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return env, nil
		}
		return nil, fmt.Errorf("read hooks dir: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".js" {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	for _, name := range names {
		b, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			logging.Warn("hook unreadable", "file", name, "err", err)
			continue
		}
		if _, err := env.rt.RunScript(name, stripExports(string(b))); err != nil {
			logging.Warn("hook failed to evaluate", "file", name, "err", err)
			continue
		}
		env.loaded = append(env.loaded, name)
		logging.Debug("hook loaded", "file", name)
	}
	return env, nil
}

// stripExports turns simple ESM export declarations into plain script ones.
func stripExports(code string) string {
	for _, kw := range []string{"function ", "const ", "let ", "var "} {
		code = strings.ReplaceAll(code, "export "+kw, kw)
	}
	return code
}

// Loaded lists the files that evaluated successfully.
func (e *Env) Loaded() []string {
	if e == nil {
		return nil
	}
	return e.loaded
}

// Has reports whether fn is defined as a function.
func (e *Env) Has(fn string) bool {
	if e == nil || e.rt == nil {
		return false
	}
	_, ok := goja.AssertFunction(e.rt.Get(fn))
	return ok
}

// Call invokes fn with arg. The second result is false when fn is missing,
// not a function, throws, or returns undefined/null.
func (e *Env) Call(fn string, arg any) (goja.Value, bool) {
	if e == nil || e.rt == nil {
		return nil, false
	}
	f, ok := goja.AssertFunction(e.rt.Get(fn))
	if !ok {
		return nil, false
	}
	rv, err := f(goja.Undefined(), e.rt.ToValue(arg))
	if err != nil {
		logging.Warn("hook call failed", "fn", fn, "err", err)
		return nil, false
	}
	if goja.IsUndefined(rv) || goja.IsNull(rv) {
		return nil, false
	}
	return rv, true
}

// Row holds hook overrides for the title and completed cells. Empty fields
// keep the default rendering.
type Row struct {
	Title     string
	Completed string
}

// RenderRow calls renderTodoRow. The hook may return a string (the title) or
// an object with title and/or completed.
func (e *Env) RenderRow(r todos.Record) (Row, bool) {
	rv, ok := e.Call(FnRenderRow, recordArg(r))
	if !ok {
		return Row{}, false
	}
	switch v := rv.Export().(type) {
	case string:
		return Row{Title: v}, true
	case map[string]any:
		var row Row
		if s, ok := v["title"].(string); ok {
			row.Title = s
		}
		switch c := v["completed"].(type) {
		case string:
			row.Completed = c
		case bool:
			row.Completed = todos.Record{Completed: c}.CompletedText()
		}
		return row, row != Row{}
	}
	return Row{}, false
}

// RenderDetail calls renderTodoDetail and returns extra markdown for the
// detail pane.
func (e *Env) RenderDetail(r todos.Record) (string, bool) {
	rv, ok := e.Call(FnRenderDetail, recordArg(r))
	if !ok {
		return "", false
	}
	s := rv.String()
	return s, s != ""
}

func recordArg(r todos.Record) map[string]any {
	m := make(map[string]any, len(r.Extra)+3)
	for k, v := range r.Extra {
		if n, ok := v.(json.Number); ok {
			if f, err := n.Float64(); err == nil {
				v = f
			}
		}
		m[k] = v
	}
	m[todos.ColumnID] = r.ID
	m[todos.ColumnTitle] = r.Title
	m[todos.ColumnCompleted] = r.Completed
	return m
}
