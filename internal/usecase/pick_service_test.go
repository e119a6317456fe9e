package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/fightpicks/fight-league/internal/domain/event"
	"github.com/fightpicks/fight-league/internal/domain/fighter"
	"github.com/fightpicks/fight-league/internal/domain/league"
	"github.com/fightpicks/fight-league/internal/domain/pick"
	"github.com/fightpicks/fight-league/internal/infrastructure/repository/memory"
)

var testBase = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestFighters() []fighter.Fighter {
	return []fighter.Fighter{
		{ID: "f-a", Name: "Alpha", CardPosition: fighter.CardPositionMainEvent, Price: 30, Active: true},
		{ID: "f-b", Name: "Bravo", CardPosition: fighter.CardPositionMainEvent, Price: 40, Active: true},
		{ID: "f-c", Name: "Charlie", CardPosition: fighter.CardPositionCoMain, Price: 60, Active: true},
		{ID: "f-d", Name: "Delta", CardPosition: fighter.CardPositionCoMain, Price: 61, Active: true},
		{ID: "f-x", Name: "Xray", CardPosition: fighter.CardPositionPrelims, Price: 20, Active: true},
	}
}

func newTestLeagues() []league.League {
	return []league.League{
		{ID: "lg-1", Name: "Test League", BudgetCap: 100, MinFightersPerEvent: 1, MaxFightersPerEvent: 3},
	}
}

func newTestEvents() []event.Event {
	return []event.Event{
		// Deadline is testBase+24h, so picks are open at testBase.
		{ID: "ev-1", Name: "Clash 300", StartTime: testBase.Add(48 * time.Hour), Status: event.StatusUpcoming},
	}
}

type pickServiceEnv struct {
	svc         *PickService
	pickRepo    *memory.PickRepository
	eventRepo   *memory.EventRepository
	leagueRepo  *memory.LeagueRepository
	fighterRepo *memory.FighterRepository
}

func newPickServiceEnv(t *testing.T) *pickServiceEnv {
	t.Helper()

	env := &pickServiceEnv{
		pickRepo:    memory.NewPickRepository(),
		eventRepo:   memory.NewEventRepository(newTestEvents()),
		leagueRepo:  memory.NewLeagueRepository(newTestLeagues()),
		fighterRepo: memory.NewFighterRepository(newTestFighters()),
	}
	if err := env.eventRepo.SetRoster(t.Context(), "ev-1", []string{"f-a", "f-b", "f-c", "f-d"}); err != nil {
		t.Fatalf("seed roster: %v", err)
	}
	for _, userID := range []string{"user-1", "user-2"} {
		if err := env.leagueRepo.AddMember(t.Context(), "lg-1", userID); err != nil {
			t.Fatalf("seed member: %v", err)
		}
	}

	env.svc = NewPickService(env.pickRepo, env.fighterRepo, env.eventRepo, env.leagueRepo, nil, nil)
	env.svc.now = func() time.Time { return testBase }

	return env
}

func TestPickService_Submit_RoundTrip(t *testing.T) {
	env := newPickServiceEnv(t)

	submitted, err := env.svc.Submit(t.Context(), SubmitPickInput{
		UserID:     "user-1",
		LeagueID:   "lg-1",
		EventID:    "ev-1",
		FighterIDs: []string{"f-a", "f-b"},
	})
	if err != nil {
		t.Fatalf("submit pick failed: %v", err)
	}
	if submitted.TotalCost != 70 {
		t.Fatalf("expected total cost 70, got %d", submitted.TotalCost)
	}
	if submitted.RemainingBudget != 30 {
		t.Fatalf("expected remaining budget 30, got %d", submitted.RemainingBudget)
	}

	fetched, err := env.svc.Get(t.Context(), "user-1", "lg-1", "ev-1")
	if err != nil {
		t.Fatalf("get pick failed: %v", err)
	}
	if fetched.ID != submitted.ID {
		t.Fatalf("expected pick id %s, got %s", submitted.ID, fetched.ID)
	}
	if len(fetched.FighterIDs) != 2 || fetched.FighterIDs[0] != "f-a" || fetched.FighterIDs[1] != "f-b" {
		t.Fatalf("unexpected roster after round trip: %v", fetched.FighterIDs)
	}
	if fetched.TotalCost != 70 || fetched.RemainingBudget != 30 {
		t.Fatalf("unexpected cost after round trip: cost=%d remaining=%d", fetched.TotalCost, fetched.RemainingBudget)
	}
}

func TestPickService_Submit_ReplacesRosterWholesale(t *testing.T) {
	env := newPickServiceEnv(t)

	first, err := env.svc.Submit(t.Context(), SubmitPickInput{
		UserID: "user-1", LeagueID: "lg-1", EventID: "ev-1", FighterIDs: []string{"f-a", "f-b"},
	})
	if err != nil {
		t.Fatalf("first submit failed: %v", err)
	}

	second, err := env.svc.Submit(t.Context(), SubmitPickInput{
		UserID: "user-1", LeagueID: "lg-1", EventID: "ev-1", FighterIDs: []string{"f-c"},
	})
	if err != nil {
		t.Fatalf("second submit failed: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("resubmission must update the same pick, got %s then %s", first.ID, second.ID)
	}
	if len(second.FighterIDs) != 1 || second.FighterIDs[0] != "f-c" {
		t.Fatalf("expected roster replaced with [f-c], got %v", second.FighterIDs)
	}
	if second.TotalCost != 60 || second.RemainingBudget != 40 {
		t.Fatalf("expected recomputed cost 60/40, got %d/%d", second.TotalCost, second.RemainingBudget)
	}
}

func TestPickService_Submit_BudgetBoundary(t *testing.T) {
	env := newPickServiceEnv(t)

	// Cost exactly at the cap is accepted.
	if _, err := env.svc.Submit(t.Context(), SubmitPickInput{
		UserID: "user-1", LeagueID: "lg-1", EventID: "ev-1", FighterIDs: []string{"f-b", "f-c"},
	}); err != nil {
		t.Fatalf("expected cost 100 to be accepted, got %v", err)
	}

	_, err := env.svc.Submit(t.Context(), SubmitPickInput{
		UserID: "user-2", LeagueID: "lg-1", EventID: "ev-1", FighterIDs: []string{"f-b", "f-d"},
	})
	if !errors.Is(err, pick.ErrBudgetExceeded) {
		t.Fatalf("expected ErrBudgetExceeded for cost 101, got %v", err)
	}
}

func TestPickService_Submit_RosterSizeBounds(t *testing.T) {
	env := newPickServiceEnv(t)

	_, err := env.svc.Submit(t.Context(), SubmitPickInput{
		UserID: "user-1", LeagueID: "lg-1", EventID: "ev-1", FighterIDs: nil,
	})
	if !errors.Is(err, pick.ErrInvalidRosterSize) {
		t.Fatalf("expected ErrInvalidRosterSize for empty roster, got %v", err)
	}

	_, err = env.svc.Submit(t.Context(), SubmitPickInput{
		UserID: "user-1", LeagueID: "lg-1", EventID: "ev-1", FighterIDs: []string{"f-a", "f-b", "f-c", "f-d"},
	})
	if !errors.Is(err, pick.ErrInvalidRosterSize) {
		t.Fatalf("expected ErrInvalidRosterSize for four fighters, got %v", err)
	}
}

func TestPickService_Submit_FighterNotInEvent(t *testing.T) {
	env := newPickServiceEnv(t)

	// f-x exists in the catalog but is not on the event card.
	_, err := env.svc.Submit(t.Context(), SubmitPickInput{
		UserID: "user-1", LeagueID: "lg-1", EventID: "ev-1", FighterIDs: []string{"f-x"},
	})
	if !errors.Is(err, pick.ErrFighterNotInEvent) {
		t.Fatalf("expected ErrFighterNotInEvent for off-card fighter, got %v", err)
	}

	_, err = env.svc.Submit(t.Context(), SubmitPickInput{
		UserID: "user-1", LeagueID: "lg-1", EventID: "ev-1", FighterIDs: []string{"f-missing"},
	})
	if !errors.Is(err, pick.ErrFighterNotInEvent) {
		t.Fatalf("expected ErrFighterNotInEvent for unknown fighter, got %v", err)
	}
}

func TestPickService_Submit_NotLeagueMember(t *testing.T) {
	env := newPickServiceEnv(t)

	_, err := env.svc.Submit(t.Context(), SubmitPickInput{
		UserID: "user-9", LeagueID: "lg-1", EventID: "ev-1", FighterIDs: []string{"f-a"},
	})
	if !errors.Is(err, pick.ErrNotLeagueMember) {
		t.Fatalf("expected ErrNotLeagueMember, got %v", err)
	}
}

func TestPickService_Submit_PicksClosedAtDeadline(t *testing.T) {
	env := newPickServiceEnv(t)
	env.svc.now = func() time.Time { return testBase.Add(24 * time.Hour) }

	_, err := env.svc.Submit(t.Context(), SubmitPickInput{
		UserID: "user-1", LeagueID: "lg-1", EventID: "ev-1", FighterIDs: []string{"f-a"},
	})
	if !errors.Is(err, pick.ErrPicksClosed) {
		t.Fatalf("expected ErrPicksClosed at the deadline, got %v", err)
	}
}

func TestPickService_Submit_LockedPickRejected(t *testing.T) {
	env := newPickServiceEnv(t)

	submitted, err := env.svc.Submit(t.Context(), SubmitPickInput{
		UserID: "user-1", LeagueID: "lg-1", EventID: "ev-1", FighterIDs: []string{"f-a"},
	})
	if err != nil {
		t.Fatalf("submit pick failed: %v", err)
	}
	if _, err := env.svc.LockByID(t.Context(), submitted.ID); err != nil {
		t.Fatalf("admin lock failed: %v", err)
	}

	// Still before the deadline, but the store gate must reject the write.
	_, err = env.svc.Submit(t.Context(), SubmitPickInput{
		UserID: "user-1", LeagueID: "lg-1", EventID: "ev-1", FighterIDs: []string{"f-b"},
	})
	if !errors.Is(err, pick.ErrLocked) {
		t.Fatalf("expected ErrLocked for a locked pick, got %v", err)
	}
}

func TestPickService_Get_EmptyViewForNewUser(t *testing.T) {
	env := newPickServiceEnv(t)

	view, err := env.svc.Get(t.Context(), "user-2", "lg-1", "ev-1")
	if err != nil {
		t.Fatalf("get empty pick view failed: %v", err)
	}
	if view.ID != "" || len(view.FighterIDs) != 0 {
		t.Fatalf("expected empty transient view, got %+v", view)
	}
	if view.RemainingBudget != 100 {
		t.Fatalf("expected full budget 100 remaining, got %d", view.RemainingBudget)
	}
}

func TestPickService_Delete(t *testing.T) {
	env := newPickServiceEnv(t)

	if err := env.svc.Delete(t.Context(), "user-1", "lg-1", "ev-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound deleting a missing pick, got %v", err)
	}

	submitted, err := env.svc.Submit(t.Context(), SubmitPickInput{
		UserID: "user-1", LeagueID: "lg-1", EventID: "ev-1", FighterIDs: []string{"f-a"},
	})
	if err != nil {
		t.Fatalf("submit pick failed: %v", err)
	}

	if err := env.svc.Delete(t.Context(), "user-1", "lg-1", "ev-1"); err != nil {
		t.Fatalf("delete open pick failed: %v", err)
	}

	// Locked picks are never deleted.
	resubmitted, err := env.svc.Submit(t.Context(), SubmitPickInput{
		UserID: "user-1", LeagueID: "lg-1", EventID: "ev-1", FighterIDs: []string{"f-a"},
	})
	if err != nil {
		t.Fatalf("resubmit pick failed: %v", err)
	}
	if resubmitted.ID == submitted.ID {
		t.Fatalf("expected a fresh pick id after delete")
	}
	if _, err := env.svc.LockByID(t.Context(), resubmitted.ID); err != nil {
		t.Fatalf("admin lock failed: %v", err)
	}
	if err := env.svc.Delete(t.Context(), "user-1", "lg-1", "ev-1"); !errors.Is(err, pick.ErrLocked) {
		t.Fatalf("expected ErrLocked deleting a locked pick, got %v", err)
	}
}
