package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/fightpicks/fight-league/internal/domain/pick"
	qb "github.com/fightpicks/fight-league/internal/platform/querybuilder"
)

const pickTable = "picks"

// upsertPickQuery folds the mutability gate into the write itself: the
// conflict update only fires on unlocked rows, and it never touches
// public_id, event_points or created_at of the existing pick.
const upsertPickQuery = `
INSERT INTO picks (
	public_id, user_id, league_public_id, event_public_id,
	fighter_ids, total_cost, remaining_budget
) VALUES (
	:public_id, :user_id, :league_public_id, :event_public_id,
	:fighter_ids, :total_cost, :remaining_budget
)
ON CONFLICT (user_id, league_public_id, event_public_id) DO UPDATE SET
	fighter_ids = EXCLUDED.fighter_ids,
	total_cost = EXCLUDED.total_cost,
	remaining_budget = EXCLUDED.remaining_budget,
	updated_at = NOW()
WHERE picks.locked = FALSE`

type PickRepository struct {
	db *sqlx.DB
}

func NewPickRepository(db *sqlx.DB) *PickRepository {
	return &PickRepository{db: db}
}

func (r *PickRepository) GetByID(ctx context.Context, id string) (pick.Pick, bool, error) {
	return r.getOne(ctx, qb.Eq("public_id", id))
}

func (r *PickRepository) GetByRef(ctx context.Context, userID, leagueID, eventID string) (pick.Pick, bool, error) {
	return r.getOne(ctx,
		qb.Eq("user_id", userID),
		qb.Eq("league_public_id", leagueID),
		qb.Eq("event_public_id", eventID),
	)
}

func (r *PickRepository) getOne(ctx context.Context, conditions ...qb.Condition) (pick.Pick, bool, error) {
	query, args, err := qb.Select("*").From(pickTable).Where(conditions...).ToSQL()
	if err != nil {
		return pick.Pick{}, false, fmt.Errorf("build pick query: %w", err)
	}

	var row pickTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return pick.Pick{}, false, nil
		}
		return pick.Pick{}, false, fmt.Errorf("get pick: %w", err)
	}

	return pickToDomain(row), true, nil
}

func (r *PickRepository) ListByUserAndLeague(ctx context.Context, userID, leagueID string) ([]pick.Pick, error) {
	return r.list(ctx, qb.Eq("user_id", userID), qb.Eq("league_public_id", leagueID))
}

func (r *PickRepository) ListByLeagueAndEvent(ctx context.Context, leagueID, eventID string) ([]pick.Pick, error) {
	return r.list(ctx, qb.Eq("league_public_id", leagueID), qb.Eq("event_public_id", eventID))
}

func (r *PickRepository) ListByLeague(ctx context.Context, leagueID string) ([]pick.Pick, error) {
	return r.list(ctx, qb.Eq("league_public_id", leagueID))
}

func (r *PickRepository) ListByEvent(ctx context.Context, eventID string) ([]pick.Pick, error) {
	return r.list(ctx, qb.Eq("event_public_id", eventID))
}

func (r *PickRepository) list(ctx context.Context, conditions ...qb.Condition) ([]pick.Pick, error) {
	query, args, err := qb.Select("*").
		From(pickTable).
		Where(conditions...).
		OrderBy("created_at ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build pick list query: %w", err)
	}

	var rows []pickTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list picks: %w", err)
	}

	return picksToDomain(rows), nil
}

// UpsertRoster writes the roster through a conditional upsert so the locked
// check happens in the same statement as the write. A conflicting row that is
// already locked absorbs zero rows and reports ErrLocked.
func (r *PickRepository) UpsertRoster(ctx context.Context, item pick.Pick, deadline, now time.Time) error {
	if !now.Before(deadline) {
		return fmt.Errorf("%w: picks deadline passed", pick.ErrLocked)
	}

	model := pickInsertModel{
		PublicID:        item.ID,
		UserID:          item.UserID,
		LeaguePublicID:  item.LeagueID,
		EventPublicID:   item.EventID,
		FighterIDs:      pq.StringArray(item.FighterIDs),
		TotalCost:       item.TotalCost,
		RemainingBudget: item.RemainingBudget,
	}

	query, args, err := sqlx.Named(upsertPickQuery, model)
	if err != nil {
		return fmt.Errorf("bind pick upsert: %w", err)
	}
	query = r.db.Rebind(query)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("upsert pick: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("upsert pick rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s/%s/%s", pick.ErrLocked, item.UserID, item.LeagueID, item.EventID)
	}

	return nil
}

func (r *PickRepository) DeleteOpen(ctx context.Context, id string, deadline, now time.Time) error {
	if !now.Before(deadline) {
		exists, err := r.exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return nil
		}
		return fmt.Errorf("%w: %s", pick.ErrLocked, id)
	}

	query, args, err := qb.DeleteFrom(pickTable).
		Where(qb.Eq("public_id", id), qb.Eq("locked", false)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build pick delete: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete pick: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete pick rows affected: %w", err)
	}
	if affected > 0 {
		return nil
	}

	// Nothing deleted: either the pick is gone (fine) or it is locked.
	exists, err := r.exists(ctx, id)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %s", pick.ErrLocked, id)
	}

	return nil
}

func (r *PickRepository) exists(ctx context.Context, id string) (bool, error) {
	query, args, err := qb.Select("public_id").From(pickTable).Where(qb.Eq("public_id", id)).ToSQL()
	if err != nil {
		return false, fmt.Errorf("build pick exists query: %w", err)
	}

	var found string
	if err := r.db.GetContext(ctx, &found, query, args...); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("check pick exists: %w", err)
	}

	return true, nil
}

func (r *PickRepository) LockByEvent(ctx context.Context, eventID string, now time.Time) (int, error) {
	query, args, err := qb.Update(pickTable).
		Set("locked", true).
		Set("updated_at", now).
		Where(qb.Eq("event_public_id", eventID), qb.Eq("locked", false)).
		ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build pick lock query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("lock picks by event: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("lock picks rows affected: %w", err)
	}

	return int(affected), nil
}

func (r *PickRepository) LockByID(ctx context.Context, id string) error {
	query, args, err := qb.Update(pickTable).
		Set("locked", true).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("public_id", id), qb.Eq("locked", false)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build pick lock query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("lock pick: %w", err)
	}

	return nil
}

func (r *PickRepository) UpdateEventPoints(ctx context.Context, id string, points int) error {
	query, args, err := qb.Update(pickTable).
		Set("event_points", points).
		Where(qb.Eq("public_id", id)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build pick points query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update pick points: %w", err)
	}

	return nil
}
