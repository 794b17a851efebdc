// Package source loads the todo dataset from an HTTP endpoint, a JSON file
// or a SQLite database. Each Source is read once per session.
package source

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"todoview/internal/todos"
)

// DefaultEndpoint is the public demo collection.
const DefaultEndpoint = "https://jsonplaceholder.typicode.com/todos"

// ErrUnsupportedEndpoint is returned by Open for endpoints no Source handles.
var ErrUnsupportedEndpoint = errors.New("unsupported endpoint")

// Source yields the full todo collection.
type Source interface {
	Load(ctx context.Context) ([]todos.Record, error)
}

// Options tunes the sources built by Open.
type Options struct {
	// Timeout bounds a single Load; zero means no limit beyond ctx.
	Timeout    time.Duration
	SchemaFile string
	UserAgent  string
}

// Open picks a Source by the endpoint's scheme or file extension.
func Open(endpoint string, opts Options) (Source, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	lower := strings.ToLower(endpoint)
	switch {
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		v, err := NewValidator(opts.SchemaFile)
		if err != nil {
			return nil, err
		}
		return NewHTTP(endpoint, opts, v), nil
	case strings.HasPrefix(lower, "sqlite://"):
		return NewSQLite(endpoint[len("sqlite://"):], opts), nil
	case strings.HasPrefix(lower, "file://"):
		return openFile(endpoint[len("file://"):], opts)
	}
	switch strings.ToLower(filepath.Ext(endpoint)) {
	case ".json":
		return openFile(endpoint, opts)
	case ".db", ".sqlite", ".sqlite3":
		return NewSQLite(endpoint, opts), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedEndpoint, endpoint)
}

func openFile(path string, opts Options) (Source, error) {
	v, err := NewValidator(opts.SchemaFile)
	if err != nil {
		return nil, err
	}
	return NewFile(path, opts, v), nil
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d > 0 {
		return context.WithTimeout(ctx, d)
	}
	return context.WithCancel(ctx)
}

// decode validates b when v is set and parses it into records.
func decode(b []byte, v *Validator) ([]todos.Record, error) {
	if v != nil {
		if err := v.Validate(b); err != nil {
			return nil, err
		}
	}
	return todos.Decode(b)
}
