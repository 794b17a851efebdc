package todos

import "strings"

// NormalizeTerm turns raw search input into the stored search term.
func NormalizeTerm(raw string) string {
	return strings.ToLower(raw)
}

// Filter keeps the records whose lowercased title contains term, in input
// order. term must already be lowercased. An empty term returns records as is.
func Filter(records []Record, term string) []Record {
	if term == "" {
		return records
	}
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Title), term) {
			out = append(out, r)
		}
	}
	return out
}
