package hooks

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"todoview/internal/todos"
)

func writeHook(t *testing.T, dir, name, code string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(code), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadDirMissing(t *testing.T) {
	env, err := LoadDir(filepath.Join(t.TempDir(), "absent"))
	if err != nil {
		t.Fatalf("missing dir should not fail: %v", err)
	}
	if env.Has(FnRenderRow) {
		t.Fatal("no hooks expected")
	}
	if _, ok := env.RenderRow(todos.Record{ID: 1}); ok {
		t.Fatal("RenderRow should report false without a hook")
	}
}

func TestRenderRowObject(t *testing.T) {
	dir := t.TempDir()
	writeHook(t, dir, "row.js", `
export function renderTodoRow(todo) {
  if (todo.id === 1) return null;
  return { title: "#" + todo.userId + " " + todo.title, completed: todo.completed ? "✔" : "·" };
}`)
	env, err := LoadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got := env.Loaded(); len(got) != 1 || got[0] != "row.js" {
		t.Fatalf("loaded = %v", got)
	}

	r := todos.Record{ID: 2, Title: "walk", Completed: true, Extra: map[string]any{"userId": json.Number("7")}}
	row, ok := env.RenderRow(r)
	if !ok {
		t.Fatal("expected override")
	}
	if row.Title != "#7 walk" || row.Completed != "✔" {
		t.Fatalf("row = %+v", row)
	}
	if _, ok := env.RenderRow(todos.Record{ID: 1}); ok {
		t.Fatal("null result should mean no override")
	}
}

func TestRenderRowStringAndBool(t *testing.T) {
	dir := t.TempDir()
	writeHook(t, dir, "a.js", `function renderTodoRow(t) { return t.title.toUpperCase(); }`)
	env, _ := LoadDir(dir)
	row, ok := env.RenderRow(todos.Record{Title: "milk"})
	if !ok || row.Title != "MILK" || row.Completed != "" {
		t.Fatalf("row = %+v ok=%v", row, ok)
	}

	dir = t.TempDir()
	writeHook(t, dir, "b.js", `function renderTodoRow(t) { return { completed: !t.completed }; }`)
	env, _ = LoadDir(dir)
	row, ok = env.RenderRow(todos.Record{Completed: false})
	if !ok || row.Completed != "Yes" {
		t.Fatalf("row = %+v ok=%v", row, ok)
	}
}

func TestBrokenScriptSkipped(t *testing.T) {
	dir := t.TempDir()
	writeHook(t, dir, "1-bad.js", `function (`)
	writeHook(t, dir, "2-good.js", `function renderTodoDetail(t) { return "extra " + t.id; }`)
	writeHook(t, dir, "notes.txt", `ignored`)
	env, err := LoadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got := env.Loaded(); len(got) != 1 || got[0] != "2-good.js" {
		t.Fatalf("loaded = %v", got)
	}
	s, ok := env.RenderDetail(todos.Record{ID: 9})
	if !ok || s != "extra 9" {
		t.Fatalf("detail = %q ok=%v", s, ok)
	}
}

func TestThrowingHook(t *testing.T) {
	dir := t.TempDir()
	writeHook(t, dir, "throw.js", `function renderTodoRow() { throw new Error("nope"); }`)
	env, _ := LoadDir(dir)
	if _, ok := env.RenderRow(todos.Record{}); ok {
		t.Fatal("a throwing hook should not override")
	}
}

func TestNilEnv(t *testing.T) {
	var env *Env
	if env.Has(FnRenderRow) || env.Loaded() != nil {
		t.Fatal("nil env should be inert")
	}
	if _, ok := env.RenderRow(todos.Record{}); ok {
		t.Fatal("nil env should not render")
	}
}
