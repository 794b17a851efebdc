package pagination

import (
	"errors"
	"reflect"
	"testing"
)

func TestVisibleRange(t *testing.T) {
	tests := []struct {
		name                  string
		current, total, width int
		want                  Range
	}{
		{"collapsed", 1, 3, 5, Range{1, 3}},
		{"exact fit", 4, 5, 5, Range{1, 5}},
		{"centered odd", 6, 20, 5, Range{4, 8}},
		{"centered even", 6, 20, 4, Range{4, 7}},
		{"clamped start", 1, 20, 5, Range{1, 5}},
		{"clamped start 2", 2, 20, 5, Range{1, 5}},
		{"clamped end", 20, 20, 5, Range{16, 20}},
		{"clamped end 2", 19, 20, 5, Range{16, 20}},
		{"zero pages", 1, 0, 5, Range{1, 1}},
		{"window of one", 7, 10, 1, Range{7, 7}},
		{"bad window", 3, 10, 0, Range{3, 3}},
		{"page past end", 30, 10, 3, Range{8, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VisibleRange(tt.current, tt.total, tt.width)
			if got != tt.want {
				t.Fatalf("VisibleRange(%d,%d,%d) = %+v, want %+v", tt.current, tt.total, tt.width, got, tt.want)
			}
		})
	}
}

func TestVisibleRangeBounds(t *testing.T) {
	for total := 0; total <= 25; total++ {
		for window := 1; window <= 8; window++ {
			for current := 1; current <= total+2; current++ {
				r := VisibleRange(current, total, window)
				if r.Start < 1 || r.Start > r.End || r.End > max(total, 1) {
					t.Fatalf("bounds broken for (%d,%d,%d): %+v", current, total, window, r)
				}
				if r.Len() > window {
					t.Fatalf("window too wide for (%d,%d,%d): %+v", current, total, window, r)
				}
			}
		}
	}
}

func TestTotalPages(t *testing.T) {
	cases := map[[2]int]int{{0, 10}: 0, {1, 10}: 1, {10, 10}: 1, {11, 10}: 2, {23, 10}: 3, {5, 0}: 0}
	for in, want := range cases {
		if got := TotalPages(in[0], in[1]); got != want {
			t.Errorf("TotalPages(%d,%d) = %d, want %d", in[0], in[1], got, want)
		}
	}
}

func TestControlsButtons(t *testing.T) {
	c := NewControls(1, 3, 5)
	if !c.FirstDisabled || !c.PrevDisabled || c.NextDisabled || c.LastDisabled {
		t.Fatalf("page 1 of 3: %+v", c)
	}
	if c.PrevPage != 1 || c.NextPage != 2 {
		t.Fatalf("targets: prev=%d next=%d", c.PrevPage, c.NextPage)
	}
	if !reflect.DeepEqual(c.Pages, []int{1, 2, 3}) || c.Hidden {
		t.Fatalf("pages: %v hidden=%v", c.Pages, c.Hidden)
	}
	if !c.IsCurrent(1) || c.IsCurrent(2) {
		t.Fatal("only page 1 should be current")
	}

	c = NewControls(3, 3, 5)
	if c.FirstDisabled || c.PrevDisabled || !c.NextDisabled || !c.LastDisabled {
		t.Fatalf("page 3 of 3: %+v", c)
	}
	if c.PrevPage != 2 || c.NextPage != 3 {
		t.Fatalf("targets: prev=%d next=%d", c.PrevPage, c.NextPage)
	}
}

func TestControlsHiddenForSinglePage(t *testing.T) {
	if c := NewControls(1, 1, 5); !c.Hidden {
		t.Fatal("one page should hide controls")
	}
	if c := NewControls(1, 0, 5); !c.Hidden || len(c.Pages) != 0 {
		t.Fatalf("zero pages: %+v", c)
	}
}

func TestStateUpdateNoop(t *testing.T) {
	calls := 0
	var last Controls
	s := NewState(10, 5, func(c Controls) { calls++; last = c })

	if !s.Update(23, 1) {
		t.Fatal("first update should change state")
	}
	if s.Update(23, 1) {
		t.Fatal("identical update should be a no-op")
	}
	if calls != 1 {
		t.Fatalf("expected exactly one notification, got %d", calls)
	}
	if last.TotalPages != 3 || last.CurrentPage != 1 {
		t.Fatalf("unexpected controls %+v", last)
	}

	s.Update(23, 2)
	s.Update(5, 2)
	if calls != 3 {
		t.Fatalf("expected 3 notifications, got %d", calls)
	}
}

func TestStateDoesNotClamp(t *testing.T) {
	s := NewState(10, 5, nil)
	s.Update(15, 9)
	if s.CurrentPage() != 9 {
		t.Fatalf("state must not clamp, got page %d", s.CurrentPage())
	}
	lo, hi := s.Bounds(15)
	if lo != 15 || hi != 15 {
		t.Fatalf("out of range page should give empty bounds, got [%d,%d)", lo, hi)
	}
}

func TestStateBounds(t *testing.T) {
	s := NewState(10, 5, nil)
	s.Update(23, 3)
	if lo, hi := s.Bounds(23); lo != 20 || hi != 23 {
		t.Fatalf("page 3 of 23: [%d,%d)", lo, hi)
	}
	s.Update(23, 1)
	if lo, hi := s.Bounds(23); lo != 0 || hi != 10 {
		t.Fatalf("page 1 of 23: [%d,%d)", lo, hi)
	}
}

func TestNewStateDefaults(t *testing.T) {
	s := NewState(0, -1, nil)
	if s.PageSize() != DefaultPageSize || s.WindowSize() != DefaultWindowSize || s.CurrentPage() != 1 {
		t.Fatalf("unexpected defaults: size=%d window=%d page=%d", s.PageSize(), s.WindowSize(), s.CurrentPage())
	}
}

func TestParsePage(t *testing.T) {
	good := map[string]int{"1": 1, " 12 ": 12, "007": 7}
	for in, want := range good {
		got, err := ParsePage(in)
		if err != nil || got != want {
			t.Errorf("ParsePage(%q) = %d, %v; want %d", in, got, err, want)
		}
	}
	for _, in := range []string{"", "abc", "1.5", "0", "-2", "Next"} {
		if _, err := ParsePage(in); !errors.Is(err, ErrMalformedPage) {
			t.Errorf("ParsePage(%q) should fail with ErrMalformedPage, got %v", in, err)
		}
	}
}
