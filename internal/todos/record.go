// Package todos holds the todo record model and the pure functions that
// reduce and order a record collection. Nothing here mutates its input.
package todos

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Column names understood by Field. Any other name is looked up in Extra.
const (
	ColumnID        = "id"
	ColumnTitle     = "title"
	ColumnCompleted = "completed"
)

// Record is one todo item as served by the dataset endpoint.
type Record struct {
	ID        int
	Title     string
	Completed bool
	// Extra carries the remaining fields of the payload untouched.
	Extra map[string]any
}

// UnmarshalJSON decodes a record leniently: a missing or null title becomes
// "", unknown keys land in Extra with numbers kept as json.Number.
func (r *Record) UnmarshalJSON(b []byte) error {
	var raw map[string]any
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	var out Record
	for k, v := range raw {
		switch k {
		case ColumnID:
			n, ok := v.(json.Number)
			if !ok {
				return fmt.Errorf("id: expected number, got %T", v)
			}
			id, err := strconv.Atoi(n.String())
			if err != nil {
				return fmt.Errorf("id: %w", err)
			}
			out.ID = id
		case ColumnTitle:
			if s, ok := v.(string); ok {
				out.Title = s
			}
		case ColumnCompleted:
			if c, ok := v.(bool); ok {
				out.Completed = c
			}
		default:
			if out.Extra == nil {
				out.Extra = map[string]any{}
			}
			out.Extra[k] = v
		}
	}
	*r = out
	return nil
}

// Decode parses a JSON array of records.
func Decode(b []byte) ([]Record, error) {
	var out []Record
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("decode todos: %w", err)
	}
	if out == nil {
		out = []Record{}
	}
	return out, nil
}

// Field returns the value stored under column. The second result is false
// when the record has no such field.
func (r Record) Field(column string) (any, bool) {
	switch column {
	case ColumnID:
		return r.ID, true
	case ColumnTitle:
		return r.Title, true
	case ColumnCompleted:
		return r.Completed, true
	}
	v, ok := r.Extra[column]
	return v, ok
}

// CompletedText is the table cell for the completion flag.
func (r Record) CompletedText() string {
	if r.Completed {
		return "Yes"
	}
	return "No"
}
