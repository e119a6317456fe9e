package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fightpicks/fight-league/internal/domain/pick"
)

type PickRepository struct {
	mu    sync.Mutex
	items map[string]pick.Pick
	byRef map[string]string
}

func NewPickRepository() *PickRepository {
	return &PickRepository{
		items: make(map[string]pick.Pick),
		byRef: make(map[string]string),
	}
}

func (r *PickRepository) GetByID(_ context.Context, id string) (pick.Pick, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return pick.Pick{}, false, nil
	}

	return clonePick(item), true, nil
}

func (r *PickRepository) GetByRef(_ context.Context, userID, leagueID, eventID string) (pick.Pick, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byRef[pickRefKey(userID, leagueID, eventID)]
	if !ok {
		return pick.Pick{}, false, nil
	}

	return clonePick(r.items[id]), true, nil
}

func (r *PickRepository) ListByUserAndLeague(_ context.Context, userID, leagueID string) ([]pick.Pick, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []pick.Pick
	for _, item := range r.items {
		if item.UserID == userID && item.LeagueID == leagueID {
			out = append(out, clonePick(item))
		}
	}

	return out, nil
}

func (r *PickRepository) ListByLeagueAndEvent(_ context.Context, leagueID, eventID string) ([]pick.Pick, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []pick.Pick
	for _, item := range r.items {
		if item.LeagueID == leagueID && item.EventID == eventID {
			out = append(out, clonePick(item))
		}
	}

	return out, nil
}

func (r *PickRepository) ListByLeague(_ context.Context, leagueID string) ([]pick.Pick, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []pick.Pick
	for _, item := range r.items {
		if item.LeagueID == leagueID {
			out = append(out, clonePick(item))
		}
	}

	return out, nil
}

func (r *PickRepository) ListByEvent(_ context.Context, eventID string) ([]pick.Pick, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []pick.Pick
	for _, item := range r.items {
		if item.EventID == eventID {
			out = append(out, clonePick(item))
		}
	}

	return out, nil
}

// UpsertRoster re-checks mutability under the same lock as the write, so a
// submit racing the lock sweep observes one consistent deadline comparison.
func (r *PickRepository) UpsertRoster(_ context.Context, item pick.Pick, deadline, now time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	refKey := pickRefKey(item.UserID, item.LeagueID, item.EventID)
	if existingID, ok := r.byRef[refKey]; ok {
		existing := r.items[existingID]
		if !existing.Mutable(deadline, now) {
			return fmt.Errorf("%w: %s", pick.ErrLocked, existingID)
		}
		item.ID = existingID
		item.EventPoints = existing.EventPoints
		item.CreatedAt = existing.CreatedAt
	} else if !now.Before(deadline) {
		return fmt.Errorf("%w: picks deadline passed", pick.ErrLocked)
	}

	r.items[item.ID] = clonePick(item)
	r.byRef[refKey] = item.ID

	return nil
}

func (r *PickRepository) DeleteOpen(_ context.Context, id string, deadline, now time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return nil
	}
	if !item.Mutable(deadline, now) {
		return fmt.Errorf("%w: %s", pick.ErrLocked, id)
	}

	delete(r.items, id)
	delete(r.byRef, pickRefKey(item.UserID, item.LeagueID, item.EventID))

	return nil
}

func (r *PickRepository) LockByEvent(_ context.Context, eventID string, now time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	locked := 0
	for id, item := range r.items {
		if item.EventID != eventID || item.Locked {
			continue
		}
		item.Locked = true
		item.UpdatedAt = now
		r.items[id] = item
		locked++
	}

	return locked, nil
}

func (r *PickRepository) LockByID(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return nil
	}
	if !item.Locked {
		item.Locked = true
		item.UpdatedAt = time.Now()
		r.items[id] = item
	}

	return nil
}

func (r *PickRepository) UpdateEventPoints(_ context.Context, id string, points int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return nil
	}
	item.EventPoints = points
	r.items[id] = item

	return nil
}

func pickRefKey(userID, leagueID, eventID string) string {
	return userID + "::" + leagueID + "::" + eventID
}

func clonePick(item pick.Pick) pick.Pick {
	copied := item
	copied.FighterIDs = append([]string(nil), item.FighterIDs...)
	return copied
}
