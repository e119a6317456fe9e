package event

import (
	"context"
	"time"
)

// Repository describes event persistence needs from use cases. Rosters are
// stored as an event-to-fighter mapping keyed by event id.
type Repository interface {
	GetByID(ctx context.Context, id string) (Event, bool, error)
	GetByName(ctx context.Context, name string) (Event, bool, error)
	List(ctx context.Context) ([]Event, error)
	// ListDeadlineElapsed returns events whose picks deadline is at or before
	// now; the lock sweep uses the same comparison as the pick store gate.
	ListDeadlineElapsed(ctx context.Context, now time.Time) ([]Event, error)
	Upsert(ctx context.Context, item Event) error
	UpdateStatus(ctx context.Context, id string, status Status) error
	RosterFighterIDs(ctx context.Context, eventID string) ([]string, error)
	SetRoster(ctx context.Context, eventID string, fighterIDs []string) error
}
