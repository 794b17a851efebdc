package debounce

import (
	"testing"
	"time"
)

func fire(t *testing.T, d *Debouncer) Msg {
	t.Helper()
	msg, ok := d.Trigger()().(Msg)
	if !ok {
		t.Fatal("trigger command did not produce a debounce.Msg")
	}
	return msg
}

func TestLatestTriggerWins(t *testing.T) {
	d := New(time.Millisecond)
	first := fire(t, &d)
	second := fire(t, &d)

	if d.Fired(first) {
		t.Fatal("stale tick reported as fired")
	}
	if !d.Fired(second) {
		t.Fatal("latest tick should fire")
	}
	if d.Fired(second) {
		t.Fatal("a tick fires only once")
	}
	if d.Pending() {
		t.Fatal("nothing should be pending after firing")
	}
}

func TestCancel(t *testing.T) {
	d := New(time.Millisecond)
	msg := fire(t, &d)
	d.Cancel()
	if d.Fired(msg) {
		t.Fatal("cancelled tick fired")
	}
}

func TestDebouncersAreIndependent(t *testing.T) {
	a := New(time.Millisecond)
	b := New(time.Millisecond)
	msg := fire(t, &a)
	b.Trigger()
	if b.Fired(msg) {
		t.Fatal("tick from another debouncer accepted")
	}
	if !a.Fired(msg) {
		t.Fatal("own tick rejected")
	}
}

func TestDefaultDelay(t *testing.T) {
	if d := New(0); d.Delay() != DefaultDelay {
		t.Fatalf("delay = %v", d.Delay())
	}
}
