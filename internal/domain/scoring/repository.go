package scoring

import "context"

// Repository describes point record persistence needs from use cases. One
// record exists per (fighter, event); rescoring overwrites it.
type Repository interface {
	Upsert(ctx context.Context, record FighterPointRecord) error
	GetByFighterAndEvent(ctx context.Context, fighterID, eventID string) (FighterPointRecord, bool, error)
	ListByEvent(ctx context.Context, eventID string) ([]FighterPointRecord, error)
}
