package pagination

import (
	"errors"
	"strconv"
	"strings"
)

const (
	DefaultPageSize   = 10
	DefaultWindowSize = 5
)

// ErrMalformedPage is returned by ParsePage for input that is not a page number.
var ErrMalformedPage = errors.New("malformed page number")

// ParsePage converts page-link text to a page number.
func ParsePage(text string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n < 1 {
		return 0, ErrMalformedPage
	}
	return n, nil
}

// State holds the current page of a collection and notifies onChange when
// the page or the item count moves. It does not clamp pages; callers do.
type State struct {
	currentPage int
	pageSize    int
	totalItems  int
	windowSize  int
	controls    Controls
	onChange    func(Controls)
}

func NewState(pageSize, windowSize int, onChange func(Controls)) *State {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if windowSize <= 0 {
		windowSize = DefaultWindowSize
	}
	s := &State{currentPage: 1, pageSize: pageSize, windowSize: windowSize, onChange: onChange}
	s.controls = NewControls(1, 0, windowSize)
	return s
}

// Update stores a new item count and page. Repeating the current values is a
// no-op and returns false; otherwise the window is recomputed, onChange is
// called and Update returns true.
func (s *State) Update(totalItems, page int) bool {
	if totalItems == s.totalItems && page == s.currentPage {
		return false
	}
	s.totalItems = totalItems
	s.currentPage = page
	s.controls = NewControls(page, s.TotalPages(), s.windowSize)
	if s.onChange != nil {
		s.onChange(s.controls)
	}
	return true
}

func (s *State) CurrentPage() int   { return s.currentPage }
func (s *State) PageSize() int      { return s.pageSize }
func (s *State) TotalItems() int    { return s.totalItems }
func (s *State) WindowSize() int    { return s.windowSize }
func (s *State) Controls() Controls { return s.controls }

func (s *State) TotalPages() int { return TotalPages(s.totalItems, s.pageSize) }

// Bounds returns the [lo, hi) slice indices of the current page within a
// collection of n items. An out-of-range page yields an empty span.
func (s *State) Bounds(n int) (lo, hi int) {
	lo = (s.currentPage - 1) * s.pageSize
	hi = s.currentPage * s.pageSize
	lo = min(max(lo, 0), n)
	hi = min(max(hi, lo), n)
	return lo, hi
}
