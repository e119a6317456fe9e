package event

import (
	"testing"
	"time"
)

func TestPicksDeadlineFollowsStartTime(t *testing.T) {
	start := time.Date(2026, time.March, 14, 22, 0, 0, 0, time.UTC)
	e := Event{ID: "ev-1", Name: "Clash 300", StartTime: start, Status: StatusUpcoming}

	if got := e.PicksDeadline(); !got.Equal(start.Add(-24 * time.Hour)) {
		t.Fatalf("expected deadline 24h before start, got %s", got)
	}

	// Rescheduling the event moves the deadline with it.
	e.StartTime = start.Add(48 * time.Hour)
	if got := e.PicksDeadline(); !got.Equal(start.Add(24 * time.Hour)) {
		t.Fatalf("expected deadline to follow new start time, got %s", got)
	}
}

func TestPicksOpen(t *testing.T) {
	start := time.Date(2026, time.March, 14, 22, 0, 0, 0, time.UTC)
	e := Event{ID: "ev-1", Name: "Clash 300", StartTime: start, Status: StatusUpcoming}

	if !e.PicksOpen(start.Add(-36 * time.Hour)) {
		t.Fatal("expected picks open well before the deadline")
	}
	if e.PicksOpen(start.Add(-24 * time.Hour)) {
		t.Fatal("expected picks closed exactly at the deadline")
	}
	if e.PicksOpen(start.Add(-1 * time.Hour)) {
		t.Fatal("expected picks closed after the deadline")
	}

	e.Status = StatusLive
	if e.PicksOpen(start.Add(-36 * time.Hour)) {
		t.Fatal("expected picks closed for a non-upcoming event")
	}
}
