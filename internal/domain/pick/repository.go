package pick

import (
	"context"
	"time"
)

// Repository describes pick persistence needs from use cases. Mutating
// operations that take a deadline re-check mutability inside the same
// critical section as the write and return ErrLocked when it fails, so a
// submit racing the lock sweep sees one consistent deadline comparison.
type Repository interface {
	GetByID(ctx context.Context, id string) (Pick, bool, error)
	GetByRef(ctx context.Context, userID, leagueID, eventID string) (Pick, bool, error)
	ListByUserAndLeague(ctx context.Context, userID, leagueID string) ([]Pick, error)
	ListByLeagueAndEvent(ctx context.Context, leagueID, eventID string) ([]Pick, error)
	ListByLeague(ctx context.Context, leagueID string) ([]Pick, error)
	ListByEvent(ctx context.Context, eventID string) ([]Pick, error)
	UpsertRoster(ctx context.Context, item Pick, deadline, now time.Time) error
	DeleteOpen(ctx context.Context, id string, deadline, now time.Time) error
	// LockByEvent locks every unlocked pick of the event; relocking is a
	// no-op. Returns how many picks transitioned.
	LockByEvent(ctx context.Context, eventID string, now time.Time) (int, error)
	LockByID(ctx context.Context, id string) error
	UpdateEventPoints(ctx context.Context, id string, points int) error
}
