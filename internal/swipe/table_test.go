package swipe

import (
	"reflect"
	"testing"
	"time"
)

func TestTable_EnsureIsStable(t *testing.T) {
	t.Parallel()

	tb := NewTable()
	a := tb.Ensure(1)
	a.DragStart()
	a.DragMove(-30)
	if b := tb.Ensure(1); b != a {
		t.Fatalf("expected Ensure to return the existing channel")
	}
	if got := tb.Offset(1); got != -30 {
		t.Fatalf("expected offset -30; got %v", got)
	}
	if got := tb.Offset(99); got != 0 {
		t.Fatalf("expected 0 for unknown id; got %v", got)
	}
}

func TestTable_StepReportsDismissedSorted(t *testing.T) {
	t.Parallel()

	tb := NewTable()
	for _, id := range []int{5, 2, 9} {
		tb.Ensure(id)
	}
	tb.Ensure(5).Tap()
	tb.Ensure(2).Tap()
	c9 := tb.Ensure(9)
	c9.DragStart()
	c9.DragEnd(-20)

	if !tb.Animating() {
		t.Fatalf("expected table to be animating")
	}
	got := tb.Step(250 * time.Millisecond)
	if want := []int{2, 5}; !reflect.DeepEqual(got, want) {
		t.Fatalf("dismissed:\n got: %v\nwant: %v", got, want)
	}
}

func TestTable_Remove(t *testing.T) {
	t.Parallel()

	tb := NewTable()
	tb.Ensure(1).Tap()
	tb.Remove(1)
	if _, ok := tb.Get(1); ok {
		t.Fatalf("expected channel to be removed")
	}
	if tb.Animating() {
		t.Fatalf("removed channel must not keep the table animating")
	}
	if got := tb.Step(time.Second); len(got) != 0 {
		t.Fatalf("expected no completions after removal; got %v", got)
	}
}
