package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fightpicks/fight-league/internal/domain/scoring"
	qb "github.com/fightpicks/fight-league/internal/platform/querybuilder"
)

const fighterPointTable = "fighter_point_records"

// Rescoring a fight overwrites the prior record for the same pair.
const upsertFighterPointSuffix = `
ON CONFLICT (fighter_public_id, event_public_id) DO UPDATE SET
	points = EXCLUDED.points`

type ScoringRepository struct {
	db *sqlx.DB
}

func NewScoringRepository(db *sqlx.DB) *ScoringRepository {
	return &ScoringRepository{db: db}
}

func (r *ScoringRepository) Upsert(ctx context.Context, record scoring.FighterPointRecord) error {
	model := fighterPointInsertModel{
		FighterPublicID: record.FighterID,
		EventPublicID:   record.EventID,
		Points:          record.Points,
	}

	query, args, err := qb.InsertModel(fighterPointTable, model, upsertFighterPointSuffix)
	if err != nil {
		return fmt.Errorf("build point record upsert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert point record: %w", err)
	}

	return nil
}

func (r *ScoringRepository) GetByFighterAndEvent(ctx context.Context, fighterID, eventID string) (scoring.FighterPointRecord, bool, error) {
	query, args, err := qb.Select("*").
		From(fighterPointTable).
		Where(qb.Eq("fighter_public_id", fighterID), qb.Eq("event_public_id", eventID)).
		ToSQL()
	if err != nil {
		return scoring.FighterPointRecord{}, false, fmt.Errorf("build point record query: %w", err)
	}

	var row fighterPointTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return scoring.FighterPointRecord{}, false, nil
		}
		return scoring.FighterPointRecord{}, false, fmt.Errorf("get point record: %w", err)
	}

	return fighterPointToDomain(row), true, nil
}

func (r *ScoringRepository) ListByEvent(ctx context.Context, eventID string) ([]scoring.FighterPointRecord, error) {
	query, args, err := qb.Select("*").
		From(fighterPointTable).
		Where(qb.Eq("event_public_id", eventID)).
		OrderBy("fighter_public_id ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build point record list query: %w", err)
	}

	var rows []fighterPointTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list point records: %w", err)
	}

	out := make([]scoring.FighterPointRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, fighterPointToDomain(row))
	}

	return out, nil
}
