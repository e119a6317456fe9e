package memory

import (
	"context"
	"sync"
	"time"

	"github.com/fightpicks/fight-league/internal/domain/event"
)

type EventRepository struct {
	mu      sync.RWMutex
	items   map[string]event.Event
	rosters map[string][]string
}

func NewEventRepository(seed []event.Event) *EventRepository {
	items := make(map[string]event.Event, len(seed))
	for _, item := range seed {
		items[item.ID] = item
	}

	return &EventRepository{
		items:   items,
		rosters: make(map[string][]string),
	}
}

func (r *EventRepository) GetByID(_ context.Context, id string) (event.Event, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return event.Event{}, false, nil
	}

	return item, true, nil
}

func (r *EventRepository) GetByName(_ context.Context, name string) (event.Event, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.Name == name {
			return item, true, nil
		}
	}

	return event.Event{}, false, nil
}

func (r *EventRepository) List(_ context.Context) ([]event.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]event.Event, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, item)
	}

	return out, nil
}

func (r *EventRepository) ListDeadlineElapsed(_ context.Context, now time.Time) ([]event.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]event.Event, 0, len(r.items))
	for _, item := range r.items {
		if !item.PicksDeadline().After(now) {
			out = append(out, item)
		}
	}

	return out, nil
}

func (r *EventRepository) Upsert(_ context.Context, item event.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = item
	return nil
}

func (r *EventRepository) UpdateStatus(_ context.Context, id string, status event.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return nil
	}
	item.Status = status
	item.UpdatedAt = time.Now()
	r.items[id] = item

	return nil
}

func (r *EventRepository) RosterFighterIDs(_ context.Context, eventID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.rosters[eventID]...), nil
}

func (r *EventRepository) SetRoster(_ context.Context, eventID string, fighterIDs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rosters[eventID] = append([]string(nil), fighterIDs...)
	return nil
}
