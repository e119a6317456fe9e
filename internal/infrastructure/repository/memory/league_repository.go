package memory

import (
	"context"
	"sync"

	"github.com/fightpicks/fight-league/internal/domain/league"
)

type LeagueRepository struct {
	mu      sync.RWMutex
	items   map[string]league.League
	members map[string]map[string]struct{}
}

func NewLeagueRepository(seed []league.League) *LeagueRepository {
	items := make(map[string]league.League, len(seed))
	for _, item := range seed {
		items[item.ID] = item
	}

	return &LeagueRepository{
		items:   items,
		members: make(map[string]map[string]struct{}),
	}
}

func (r *LeagueRepository) GetByID(_ context.Context, id string) (league.League, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return league.League{}, false, nil
	}

	return item, true, nil
}

func (r *LeagueRepository) List(_ context.Context) ([]league.League, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]league.League, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, item)
	}

	return out, nil
}

func (r *LeagueRepository) Upsert(_ context.Context, item league.League) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = item
	return nil
}

func (r *LeagueRepository) IsMember(_ context.Context, userID, leagueID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users, ok := r.members[leagueID]
	if !ok {
		return false, nil
	}
	_, isMember := users[userID]

	return isMember, nil
}

func (r *LeagueRepository) AddMember(_ context.Context, leagueID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, ok := r.members[leagueID]
	if !ok {
		users = make(map[string]struct{})
		r.members[leagueID] = users
	}
	users[userID] = struct{}{}

	return nil
}
