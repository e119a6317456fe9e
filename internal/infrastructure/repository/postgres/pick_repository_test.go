package postgres

import (
	"errors"
	"testing"
	"time"

	"github.com/fightpicks/fight-league/internal/domain/pick"
)

func TestUpsertRoster_RejectsPastDeadlineBeforeTouchingDB(t *testing.T) {
	repo := NewPickRepository(nil)
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	deadline := now.Add(-time.Minute)

	err := repo.UpsertRoster(t.Context(), pick.Pick{
		ID:         "pick-1",
		UserID:     "user-1",
		LeagueID:   "lg-1",
		EventID:    "ev-1",
		FighterIDs: []string{"f-1"},
	}, deadline, now)
	if !errors.Is(err, pick.ErrLocked) {
		t.Fatalf("expected ErrLocked past deadline, got %v", err)
	}
}

func TestPickToDomain_ClonesFighterIDs(t *testing.T) {
	row := pickTableModel{
		PublicID:   "pick-1",
		UserID:     "user-1",
		FighterIDs: []string{"f-1", "f-2"},
	}

	item := pickToDomain(row)
	row.FighterIDs[0] = "mutated"
	if item.FighterIDs[0] != "f-1" {
		t.Fatalf("expected domain pick to own its fighter id slice")
	}
}
