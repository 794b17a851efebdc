package todos

import (
	"encoding/json"
	"sort"
	"strings"
)

// SortSpec names the column to order by and its direction.
type SortSpec struct {
	Column    string
	Ascending bool
}

// DefaultSort orders by id, ascending.
func DefaultSort() SortSpec {
	return SortSpec{Column: ColumnID, Ascending: true}
}

// Toggle applies a header click: the same column flips direction, a new
// column always starts ascending.
func (s SortSpec) Toggle(column string) SortSpec {
	if column == s.Column {
		return SortSpec{Column: column, Ascending: !s.Ascending}
	}
	return SortSpec{Column: column, Ascending: true}
}

func (s SortSpec) String() string {
	dir := "asc"
	if !s.Ascending {
		dir = "desc"
	}
	return s.Column + " " + dir
}

// Sort returns a stably ordered copy of records. Ties keep their input order
// in both directions. Records without the column go last in either
// direction, so an unknown column leaves the order unchanged.
func Sort(records []Record, spec SortSpec) []Record {
	out := make([]Record, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		a, okA := out[i].Field(spec.Column)
		b, okB := out[j].Field(spec.Column)
		if !okA || !okB {
			return okA && !okB
		}
		if spec.Ascending {
			return compare(a, b) < 0
		}
		return compare(a, b) > 0
	})
	return out
}

// compare orders two field values of the same runtime kind. Values of
// different kinds, or kinds without a natural order, compare equal.
func compare(a, b any) int {
	if x, ok := number(a); ok {
		if y, ok := number(b); ok {
			switch {
			case x < y:
				return -1
			case x > y:
				return 1
			}
			return 0
		}
		return 0
	}
	switch x := a.(type) {
	case string:
		if y, ok := b.(string); ok {
			return strings.Compare(x, y)
		}
	case bool:
		if y, ok := b.(bool); ok && x != y {
			if !x {
				return -1
			}
			return 1
		}
	}
	return 0
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}
