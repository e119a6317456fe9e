package postgres

import (
	"time"

	"github.com/lib/pq"

	"github.com/fightpicks/fight-league/internal/domain/pick"
)

type pickTableModel struct {
	PublicID        string         `db:"public_id"`
	UserID          string         `db:"user_id"`
	LeaguePublicID  string         `db:"league_public_id"`
	EventPublicID   string         `db:"event_public_id"`
	FighterIDs      pq.StringArray `db:"fighter_ids"`
	TotalCost       int64          `db:"total_cost"`
	RemainingBudget int64          `db:"remaining_budget"`
	EventPoints     int            `db:"event_points"`
	Locked          bool           `db:"locked"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}

type pickInsertModel struct {
	PublicID        string         `db:"public_id"`
	UserID          string         `db:"user_id"`
	LeaguePublicID  string         `db:"league_public_id"`
	EventPublicID   string         `db:"event_public_id"`
	FighterIDs      pq.StringArray `db:"fighter_ids"`
	TotalCost       int64          `db:"total_cost"`
	RemainingBudget int64          `db:"remaining_budget"`
}

func pickToDomain(row pickTableModel) pick.Pick {
	return pick.Pick{
		ID:              row.PublicID,
		UserID:          row.UserID,
		LeagueID:        row.LeaguePublicID,
		EventID:         row.EventPublicID,
		FighterIDs:      append([]string(nil), row.FighterIDs...),
		TotalCost:       row.TotalCost,
		RemainingBudget: row.RemainingBudget,
		EventPoints:     row.EventPoints,
		Locked:          row.Locked,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}

func picksToDomain(rows []pickTableModel) []pick.Pick {
	if len(rows) == 0 {
		return nil
	}
	out := make([]pick.Pick, 0, len(rows))
	for _, row := range rows {
		out = append(out, pickToDomain(row))
	}
	return out
}
