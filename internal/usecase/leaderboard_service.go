package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/fightpicks/fight-league/internal/domain/pick"
	"github.com/fightpicks/fight-league/internal/platform/cache"
)

type LeaderboardEntry struct {
	Position int
	UserID   string
	Points   int
}

// LeaderboardService ranks league members by fantasy points, per event or
// cumulatively. Results are cached briefly; the scoring sweep invalidates.
type LeaderboardService struct {
	pickRepo pick.Repository
	store    *cache.Store
}

func NewLeaderboardService(pickRepo pick.Repository, store *cache.Store) *LeaderboardService {
	return &LeaderboardService{
		pickRepo: pickRepo,
		store:    store,
	}
}

// PerEvent ranks picks of one event within a league by event points.
func (s *LeaderboardService) PerEvent(ctx context.Context, leagueID, eventID string) ([]LeaderboardEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "LeaderboardService.PerEvent")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	eventID = strings.TrimSpace(eventID)
	if leagueID == "" || eventID == "" {
		return nil, fmt.Errorf("%w: league_id and event_id are required", ErrInvalidInput)
	}

	load := func(ctx context.Context) (any, error) {
		picks, err := s.pickRepo.ListByLeagueAndEvent(ctx, leagueID, eventID)
		if err != nil {
			return nil, fmt.Errorf("list picks by league and event: %w", err)
		}

		entries := make([]LeaderboardEntry, 0, len(picks))
		for _, item := range picks {
			entries = append(entries, LeaderboardEntry{
				UserID: item.UserID,
				Points: item.EventPoints,
			})
		}

		return rankEntries(entries), nil
	}

	return s.cached(ctx, eventLeaderboardKey(leagueID, eventID), load)
}

// Global ranks league members by the sum of their event points across all
// their picks in the league.
func (s *LeaderboardService) Global(ctx context.Context, leagueID string) ([]LeaderboardEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "LeaderboardService.Global")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return nil, fmt.Errorf("%w: league_id is required", ErrInvalidInput)
	}

	load := func(ctx context.Context) (any, error) {
		picks, err := s.pickRepo.ListByLeague(ctx, leagueID)
		if err != nil {
			return nil, fmt.Errorf("list picks by league: %w", err)
		}

		totals := make(map[string]int, len(picks))
		for _, item := range picks {
			totals[item.UserID] += item.EventPoints
		}

		entries := make([]LeaderboardEntry, 0, len(totals))
		for userID, points := range totals {
			entries = append(entries, LeaderboardEntry{
				UserID: userID,
				Points: points,
			})
		}

		return rankEntries(entries), nil
	}

	return s.cached(ctx, globalLeaderboardKey(leagueID), load)
}

// InvalidateLeague drops every cached leaderboard of the league.
func (s *LeaderboardService) InvalidateLeague(ctx context.Context, leagueID string) {
	if s.store == nil {
		return
	}
	s.store.DeletePrefix(ctx, leaderboardKeyPrefix(leagueID))
}

func (s *LeaderboardService) cached(ctx context.Context, key string, load func(context.Context) (any, error)) ([]LeaderboardEntry, error) {
	if s.store == nil {
		value, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return value.([]LeaderboardEntry), nil
	}

	value, err := s.store.GetOrLoad(ctx, key, load)
	if err != nil {
		return nil, err
	}

	entries, ok := value.([]LeaderboardEntry)
	if !ok {
		return nil, fmt.Errorf("unexpected leaderboard cache entry type %T", value)
	}

	return entries, nil
}

// rankEntries orders by points descending with user id ascending as the
// deterministic tie-break, then assigns 1-based sequential positions.
func rankEntries(entries []LeaderboardEntry) []LeaderboardEntry {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Points != entries[j].Points {
			return entries[i].Points > entries[j].Points
		}
		return entries[i].UserID < entries[j].UserID
	})

	for i := range entries {
		entries[i].Position = i + 1
	}

	return entries
}

func leaderboardKeyPrefix(leagueID string) string {
	return "leaderboard:" + leagueID + ":"
}

func eventLeaderboardKey(leagueID, eventID string) string {
	return leaderboardKeyPrefix(leagueID) + "event:" + eventID
}

func globalLeaderboardKey(leagueID string) string {
	return leaderboardKeyPrefix(leagueID) + "global"
}
