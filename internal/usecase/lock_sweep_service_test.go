package usecase

import (
	"testing"
	"time"

	"github.com/fightpicks/fight-league/internal/infrastructure/repository/memory"
)

func TestLockSweepService_Sweep(t *testing.T) {
	env := newPickServiceEnv(t)

	submitted, err := env.svc.Submit(t.Context(), SubmitPickInput{
		UserID: "user-1", LeagueID: "lg-1", EventID: "ev-1", FighterIDs: []string{"f-a", "f-b"},
	})
	if err != nil {
		t.Fatalf("submit pick failed: %v", err)
	}

	sweeper := NewLockSweepService(env.pickRepo, env.eventRepo, nil)

	// Before the deadline nothing is eligible.
	sweeper.now = func() time.Time { return testBase }
	result, err := sweeper.Sweep(t.Context())
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if result.PicksLocked != 0 {
		t.Fatalf("expected no picks locked before the deadline, got %d", result.PicksLocked)
	}

	// Past the deadline the pick locks.
	sweeper.now = func() time.Time { return testBase.Add(30 * time.Hour) }
	result, err = sweeper.Sweep(t.Context())
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if result.EventsSwept != 1 || result.PicksLocked != 1 || result.EventsFailed != 0 {
		t.Fatalf("unexpected sweep result: %+v", result)
	}

	locked, exists, err := env.pickRepo.GetByID(t.Context(), submitted.ID)
	if err != nil || !exists {
		t.Fatalf("get locked pick: exists=%v err=%v", exists, err)
	}
	if !locked.Locked {
		t.Fatal("expected pick to be locked after sweep")
	}

	// A second run finds nothing new to lock and never unlocks.
	result, err = sweeper.Sweep(t.Context())
	if err != nil {
		t.Fatalf("repeat sweep failed: %v", err)
	}
	if result.PicksLocked != 0 {
		t.Fatalf("expected idempotent sweep to lock nothing, got %d", result.PicksLocked)
	}
	relocked, _, err := env.pickRepo.GetByID(t.Context(), submitted.ID)
	if err != nil {
		t.Fatalf("get pick after repeat sweep: %v", err)
	}
	if !relocked.Locked {
		t.Fatal("repeat sweep must not unlock a pick")
	}
}

func TestLockSweepService_Sweep_NoEvents(t *testing.T) {
	pickRepo := memory.NewPickRepository()
	eventRepo := memory.NewEventRepository(nil)

	sweeper := NewLockSweepService(pickRepo, eventRepo, nil)
	result, err := sweeper.Sweep(t.Context())
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if result.EventsSwept != 0 || result.PicksLocked != 0 {
		t.Fatalf("expected empty sweep result, got %+v", result)
	}
}
