package memory

import (
	"context"
	"sync"

	"github.com/fightpicks/fight-league/internal/domain/fighter"
)

type FighterRepository struct {
	mu    sync.RWMutex
	items map[string]fighter.Fighter
}

func NewFighterRepository(seed []fighter.Fighter) *FighterRepository {
	items := make(map[string]fighter.Fighter, len(seed))
	for _, item := range seed {
		items[item.ID] = item
	}

	return &FighterRepository{items: items}
}

func (r *FighterRepository) GetByID(_ context.Context, id string) (fighter.Fighter, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return fighter.Fighter{}, false, nil
	}

	return item, true, nil
}

func (r *FighterRepository) ListByIDs(_ context.Context, ids []string) ([]fighter.Fighter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]fighter.Fighter, 0, len(ids))
	for _, id := range ids {
		if item, ok := r.items[id]; ok {
			out = append(out, item)
		}
	}

	return out, nil
}

func (r *FighterRepository) List(_ context.Context) ([]fighter.Fighter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]fighter.Fighter, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, item)
	}

	return out, nil
}

func (r *FighterRepository) Upsert(_ context.Context, item fighter.Fighter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = item
	return nil
}
