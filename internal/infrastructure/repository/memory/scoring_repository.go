package memory

import (
	"context"
	"sync"

	"github.com/fightpicks/fight-league/internal/domain/scoring"
)

type ScoringRepository struct {
	mu    sync.RWMutex
	items map[string]scoring.FighterPointRecord
}

func NewScoringRepository() *ScoringRepository {
	return &ScoringRepository{items: make(map[string]scoring.FighterPointRecord)}
}

func (r *ScoringRepository) Upsert(_ context.Context, record scoring.FighterPointRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[recordKey(record.FighterID, record.EventID)] = record
	return nil
}

func (r *ScoringRepository) GetByFighterAndEvent(_ context.Context, fighterID, eventID string) (scoring.FighterPointRecord, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.items[recordKey(fighterID, eventID)]
	if !ok {
		return scoring.FighterPointRecord{}, false, nil
	}

	return record, true, nil
}

func (r *ScoringRepository) ListByEvent(_ context.Context, eventID string) ([]scoring.FighterPointRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []scoring.FighterPointRecord
	for _, record := range r.items {
		if record.EventID == eventID {
			out = append(out, record)
		}
	}

	return out, nil
}

func recordKey(fighterID, eventID string) string {
	return fighterID + "::" + eventID
}
