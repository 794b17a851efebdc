// Package debounce delays a Bubble Tea action until input goes quiet.
package debounce

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultDelay is the quiet period used when New is given a non-positive delay.
const DefaultDelay = 500 * time.Millisecond

var lastID int64

func nextID() int { return int(atomic.AddInt64(&lastID, 1)) }

type Msg struct {
	id  int
	seq int
}

// Debouncer tags each scheduled tick so stale ones can be told apart.
type Debouncer struct {
	id      int
	seq     int
	delay   time.Duration
	pending bool
}

// New returns a Debouncer with its own id, so several can share a program.
func New(delay time.Duration) Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return Debouncer{id: nextID(), delay: delay}
}

// Trigger schedules a tick after the delay and invalidates any earlier one.
func (d *Debouncer) Trigger() tea.Cmd {
	d.seq++
	d.pending = true
	id, seq := d.id, d.seq
	return tea.Tick(d.delay, func(time.Time) tea.Msg {
		return Msg{id: id, seq: seq}
	})
}

func (d *Debouncer) Cancel() {
	d.seq++
	d.pending = false
}

// Fired reports whether msg is the tick of the latest Trigger. A true result
// consumes it.
func (d *Debouncer) Fired(msg Msg) bool {
	if !d.pending || msg.id != d.id || msg.seq != d.seq {
		return false
	}
	d.pending = false
	return true
}

func (d Debouncer) Pending() bool { return d.pending }

func (d Debouncer) Delay() time.Duration { return d.delay }
