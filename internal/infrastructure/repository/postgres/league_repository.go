package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fightpicks/fight-league/internal/domain/league"
	qb "github.com/fightpicks/fight-league/internal/platform/querybuilder"
)

const (
	leagueTable       = "leagues"
	leagueMemberTable = "league_members"
)

const upsertLeagueSuffix = `
ON CONFLICT (public_id) DO UPDATE SET
	name = EXCLUDED.name,
	budget_cap = EXCLUDED.budget_cap,
	min_fighters_per_event = EXCLUDED.min_fighters_per_event,
	max_fighters_per_event = EXCLUDED.max_fighters_per_event,
	updated_at = NOW()`

type LeagueRepository struct {
	db *sqlx.DB
}

func NewLeagueRepository(db *sqlx.DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

func (r *LeagueRepository) GetByID(ctx context.Context, id string) (league.League, bool, error) {
	query, args, err := qb.Select("*").From(leagueTable).Where(qb.Eq("public_id", id)).ToSQL()
	if err != nil {
		return league.League{}, false, fmt.Errorf("build league query: %w", err)
	}

	var row leagueTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return league.League{}, false, nil
		}
		return league.League{}, false, fmt.Errorf("get league: %w", err)
	}

	return leagueToDomain(row), true, nil
}

func (r *LeagueRepository) List(ctx context.Context) ([]league.League, error) {
	query, args, err := qb.Select("*").From(leagueTable).OrderBy("name ASC").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build league list query: %w", err)
	}

	var rows []leagueTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}

	out := make([]league.League, 0, len(rows))
	for _, row := range rows {
		out = append(out, leagueToDomain(row))
	}

	return out, nil
}

func (r *LeagueRepository) Upsert(ctx context.Context, item league.League) error {
	model := leagueInsertModel{
		PublicID:            item.ID,
		Name:                item.Name,
		BudgetCap:           item.BudgetCap,
		MinFightersPerEvent: item.MinFightersPerEvent,
		MaxFightersPerEvent: item.MaxFightersPerEvent,
	}

	query, args, err := qb.InsertModel(leagueTable, model, upsertLeagueSuffix)
	if err != nil {
		return fmt.Errorf("build league upsert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert league: %w", err)
	}

	return nil
}

func (r *LeagueRepository) IsMember(ctx context.Context, userID, leagueID string) (bool, error) {
	query, args, err := qb.Select("user_id").
		From(leagueMemberTable).
		Where(qb.Eq("league_public_id", leagueID), qb.Eq("user_id", userID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build member query: %w", err)
	}

	var found string
	if err := r.db.GetContext(ctx, &found, query, args...); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("check league member: %w", err)
	}

	return true, nil
}

func (r *LeagueRepository) AddMember(ctx context.Context, leagueID, userID string) error {
	query, args, err := qb.InsertInto(leagueMemberTable).
		Columns("league_public_id", "user_id").
		Values(leagueID, userID).
		Suffix("ON CONFLICT (league_public_id, user_id) DO NOTHING").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build member insert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("add league member: %w", err)
	}

	return nil
}
