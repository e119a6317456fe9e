package postgres

import (
	"time"

	"github.com/fightpicks/fight-league/internal/domain/scoring"
)

type fighterPointTableModel struct {
	FighterPublicID string    `db:"fighter_public_id"`
	EventPublicID   string    `db:"event_public_id"`
	Points          int       `db:"points"`
	CreatedAt       time.Time `db:"created_at"`
}

type fighterPointInsertModel struct {
	FighterPublicID string `db:"fighter_public_id"`
	EventPublicID   string `db:"event_public_id"`
	Points          int    `db:"points"`
}

func fighterPointToDomain(row fighterPointTableModel) scoring.FighterPointRecord {
	return scoring.FighterPointRecord{
		FighterID: row.FighterPublicID,
		EventID:   row.EventPublicID,
		Points:    row.Points,
		CreatedAt: row.CreatedAt,
	}
}
