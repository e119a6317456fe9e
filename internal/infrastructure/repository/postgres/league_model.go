package postgres

import (
	"time"

	"github.com/fightpicks/fight-league/internal/domain/league"
)

type leagueTableModel struct {
	PublicID            string    `db:"public_id"`
	Name                string    `db:"name"`
	BudgetCap           int64     `db:"budget_cap"`
	MinFightersPerEvent int       `db:"min_fighters_per_event"`
	MaxFightersPerEvent int       `db:"max_fighters_per_event"`
	CreatedAt           time.Time `db:"created_at"`
	UpdatedAt           time.Time `db:"updated_at"`
}

type leagueInsertModel struct {
	PublicID            string `db:"public_id"`
	Name                string `db:"name"`
	BudgetCap           int64  `db:"budget_cap"`
	MinFightersPerEvent int    `db:"min_fighters_per_event"`
	MaxFightersPerEvent int    `db:"max_fighters_per_event"`
}

func leagueToDomain(row leagueTableModel) league.League {
	return league.League{
		ID:                  row.PublicID,
		Name:                row.Name,
		BudgetCap:           row.BudgetCap,
		MinFightersPerEvent: row.MinFightersPerEvent,
		MaxFightersPerEvent: row.MaxFightersPerEvent,
		CreatedAt:           row.CreatedAt,
		UpdatedAt:           row.UpdatedAt,
	}
}
