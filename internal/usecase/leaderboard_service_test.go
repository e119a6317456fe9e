package usecase

import (
	"testing"
	"time"

	"github.com/fightpicks/fight-league/internal/domain/pick"
	"github.com/fightpicks/fight-league/internal/infrastructure/repository/memory"
	"github.com/fightpicks/fight-league/internal/platform/cache"
)

func seedScoredPick(t *testing.T, repo *memory.PickRepository, id, userID, eventID string, points int) {
	t.Helper()

	item := pick.Pick{
		ID:         id,
		UserID:     userID,
		LeagueID:   "lg-1",
		EventID:    eventID,
		FighterIDs: []string{"f-a"},
		TotalCost:  30,
		CreatedAt:  testBase,
		UpdatedAt:  testBase,
	}
	if err := repo.UpsertRoster(t.Context(), item, testBase.Add(24*time.Hour), testBase); err != nil {
		t.Fatalf("seed pick %s: %v", id, err)
	}
	if err := repo.UpdateEventPoints(t.Context(), id, points); err != nil {
		t.Fatalf("seed pick points %s: %v", id, err)
	}
}

func TestLeaderboardService_Global_TieBreak(t *testing.T) {
	pickRepo := memory.NewPickRepository()
	seedScoredPick(t, pickRepo, "p-1", "user-c", "ev-1", 80)
	seedScoredPick(t, pickRepo, "p-2", "user-a", "ev-1", 80)
	seedScoredPick(t, pickRepo, "p-3", "user-b", "ev-1", 50)

	svc := NewLeaderboardService(pickRepo, nil)

	entries, err := svc.Global(t.Context(), "lg-1")
	if err != nil {
		t.Fatalf("global leaderboard failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	// Tied users order by user id ascending; positions are sequential.
	want := []LeaderboardEntry{
		{Position: 1, UserID: "user-a", Points: 80},
		{Position: 2, UserID: "user-c", Points: 80},
		{Position: 3, UserID: "user-b", Points: 50},
	}
	for i, entry := range entries {
		if entry != want[i] {
			t.Fatalf("entry %d: expected %+v, got %+v", i, want[i], entry)
		}
	}

	// Repeated calls over unchanged storage yield an identical order.
	again, err := svc.Global(t.Context(), "lg-1")
	if err != nil {
		t.Fatalf("repeat global leaderboard failed: %v", err)
	}
	for i := range entries {
		if entries[i] != again[i] {
			t.Fatalf("ordering not stable at %d: %+v vs %+v", i, entries[i], again[i])
		}
	}
}

func TestLeaderboardService_Global_SumsAcrossEvents(t *testing.T) {
	pickRepo := memory.NewPickRepository()
	seedScoredPick(t, pickRepo, "p-1", "user-a", "ev-1", 30)
	seedScoredPick(t, pickRepo, "p-2", "user-a", "ev-2", 50)
	seedScoredPick(t, pickRepo, "p-3", "user-b", "ev-1", 60)

	svc := NewLeaderboardService(pickRepo, nil)

	entries, err := svc.Global(t.Context(), "lg-1")
	if err != nil {
		t.Fatalf("global leaderboard failed: %v", err)
	}
	if entries[0].UserID != "user-a" || entries[0].Points != 80 {
		t.Fatalf("expected user-a with 80 cumulative points first, got %+v", entries[0])
	}
	if entries[1].UserID != "user-b" || entries[1].Points != 60 {
		t.Fatalf("expected user-b with 60 points second, got %+v", entries[1])
	}
}

func TestLeaderboardService_PerEvent(t *testing.T) {
	pickRepo := memory.NewPickRepository()
	seedScoredPick(t, pickRepo, "p-1", "user-a", "ev-1", 40)
	seedScoredPick(t, pickRepo, "p-2", "user-b", "ev-1", 70)
	seedScoredPick(t, pickRepo, "p-3", "user-c", "ev-2", 99)

	svc := NewLeaderboardService(pickRepo, nil)

	entries, err := svc.PerEvent(t.Context(), "lg-1", "ev-1")
	if err != nil {
		t.Fatalf("per-event leaderboard failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries for ev-1, got %d", len(entries))
	}
	if entries[0].UserID != "user-b" || entries[0].Position != 1 {
		t.Fatalf("expected user-b first, got %+v", entries[0])
	}
	if entries[1].UserID != "user-a" || entries[1].Position != 2 {
		t.Fatalf("expected user-a second, got %+v", entries[1])
	}
}

func TestLeaderboardService_CacheInvalidation(t *testing.T) {
	pickRepo := memory.NewPickRepository()
	seedScoredPick(t, pickRepo, "p-1", "user-a", "ev-1", 10)

	store := cache.NewStore(time.Minute)
	svc := NewLeaderboardService(pickRepo, store)

	entries, err := svc.Global(t.Context(), "lg-1")
	if err != nil {
		t.Fatalf("global leaderboard failed: %v", err)
	}
	if entries[0].Points != 10 {
		t.Fatalf("expected 10 points, got %d", entries[0].Points)
	}

	if err := pickRepo.UpdateEventPoints(t.Context(), "p-1", 25); err != nil {
		t.Fatalf("update points: %v", err)
	}

	// Still cached until the scoring sweep invalidates.
	cached, err := svc.Global(t.Context(), "lg-1")
	if err != nil {
		t.Fatalf("cached global leaderboard failed: %v", err)
	}
	if cached[0].Points != 10 {
		t.Fatalf("expected cached 10 points, got %d", cached[0].Points)
	}

	svc.InvalidateLeague(t.Context(), "lg-1")
	fresh, err := svc.Global(t.Context(), "lg-1")
	if err != nil {
		t.Fatalf("fresh global leaderboard failed: %v", err)
	}
	if fresh[0].Points != 25 {
		t.Fatalf("expected fresh 25 points after invalidation, got %d", fresh[0].Points)
	}
}
