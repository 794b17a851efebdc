package todos

// Stats counts a record collection by completion.
type Stats struct {
	Done    int
	Pending int
}

// Total is Done + Pending.
func (s Stats) Total() int { return s.Done + s.Pending }

// Summarize tallies records; used for the header line and the export.
func Summarize(records []Record) Stats {
	var st Stats
	for _, r := range records {
		if r.Completed {
			st.Done++
		} else {
			st.Pending++
		}
	}
	return st
}
