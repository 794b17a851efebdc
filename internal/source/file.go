package source

import (
	"context"
	"fmt"
	"os"

	"todoview/internal/todos"
)

// File reads the collection from a JSON file on disk.
type File struct {
	path      string
	validator *Validator
}

func NewFile(path string, _ Options, v *Validator) *File {
	return &File{path: path, validator: v}
}

func (f *File) Load(ctx context.Context) ([]todos.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.path, err)
	}
	return decode(b, f.validator)
}
