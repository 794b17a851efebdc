// Package pagination computes page windows and button state for a paged
// table, and tracks the current page of a collection.
package pagination

// Range is an inclusive, 1-indexed span of page numbers.
type Range struct {
	Start int
	End   int
}

func (r Range) Len() int { return r.End - r.Start + 1 }

// VisibleRange returns the window of page links to show around current.
// With zero pages it returns {1,1}; callers hide the controls in that case.
func VisibleRange(current, total, window int) Range {
	if window < 1 {
		window = 1
	}
	if current < 1 {
		current = 1
	}
	if total <= window {
		return Range{Start: 1, End: max(total, 1)}
	}
	start := max(1, current-window/2)
	end := start + window - 1
	if end > total {
		end = total
		start = max(1, end-window+1)
	}
	return Range{Start: start, End: end}
}

// TotalPages is ceil(items/pageSize), 0 for an empty collection.
func TotalPages(items, pageSize int) int {
	if items <= 0 || pageSize <= 0 {
		return 0
	}
	return (items + pageSize - 1) / pageSize
}

type Controls struct {
	CurrentPage int
	TotalPages  int
	Window      Range
	Pages       []int

	FirstDisabled bool
	PrevDisabled  bool
	NextDisabled  bool
	LastDisabled  bool
	PrevPage      int
	NextPage      int

	Hidden bool
}

// NewControls derives button state for current of total pages.
func NewControls(current, total, window int) Controls {
	w := VisibleRange(current, total, window)
	c := Controls{
		CurrentPage:   current,
		TotalPages:    total,
		Window:        w,
		FirstDisabled: current == 1,
		PrevDisabled:  current == 1,
		NextDisabled:  current == total,
		LastDisabled:  current == total,
		PrevPage:      max(1, current-1),
		NextPage:      min(total, current+1),
		Hidden:        total <= 1,
	}
	if total > 0 {
		c.Pages = make([]int, 0, w.Len())
		for p := w.Start; p <= w.End; p++ {
			c.Pages = append(c.Pages, p)
		}
	}
	return c
}

func (c Controls) IsCurrent(page int) bool { return page == c.CurrentPage }
