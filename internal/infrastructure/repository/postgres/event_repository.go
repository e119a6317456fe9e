package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/fightpicks/fight-league/internal/domain/event"
	qb "github.com/fightpicks/fight-league/internal/platform/querybuilder"
)

const (
	eventTable        = "events"
	eventFighterTable = "event_fighters"
)

const upsertEventSuffix = `
ON CONFLICT (public_id) DO UPDATE SET
	name = EXCLUDED.name,
	start_time = EXCLUDED.start_time,
	status = EXCLUDED.status,
	updated_at = NOW()`

type EventRepository struct {
	db *sqlx.DB
}

func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (event.Event, bool, error) {
	return r.getOne(ctx, qb.Eq("public_id", id))
}

func (r *EventRepository) GetByName(ctx context.Context, name string) (event.Event, bool, error) {
	return r.getOne(ctx, qb.Eq("name", name))
}

func (r *EventRepository) getOne(ctx context.Context, conditions ...qb.Condition) (event.Event, bool, error) {
	query, args, err := qb.Select("*").From(eventTable).Where(conditions...).ToSQL()
	if err != nil {
		return event.Event{}, false, fmt.Errorf("build event query: %w", err)
	}

	var row eventTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return event.Event{}, false, nil
		}
		return event.Event{}, false, fmt.Errorf("get event: %w", err)
	}

	return eventToDomain(row), true, nil
}

func (r *EventRepository) List(ctx context.Context) ([]event.Event, error) {
	query, args, err := qb.Select("*").From(eventTable).OrderBy("start_time ASC").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build event list query: %w", err)
	}

	var rows []eventTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	return eventsToDomain(rows), nil
}

// ListDeadlineElapsed compares against start_time shifted by the picks lead
// time, the same derivation Event.PicksDeadline uses.
func (r *EventRepository) ListDeadlineElapsed(ctx context.Context, now time.Time) ([]event.Event, error) {
	query, args, err := qb.Select("*").
		From(eventTable).
		Where(qb.Lte("start_time", now.Add(event.PicksLeadTime))).
		OrderBy("start_time ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build event deadline query: %w", err)
	}

	var rows []eventTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list deadline elapsed events: %w", err)
	}

	return eventsToDomain(rows), nil
}

func (r *EventRepository) Upsert(ctx context.Context, item event.Event) error {
	model := eventInsertModel{
		PublicID:  item.ID,
		Name:      item.Name,
		StartTime: item.StartTime,
		Status:    string(item.Status),
	}

	query, args, err := qb.InsertModel(eventTable, model, upsertEventSuffix)
	if err != nil {
		return fmt.Errorf("build event upsert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert event: %w", err)
	}

	return nil
}

func (r *EventRepository) UpdateStatus(ctx context.Context, id string, status event.Status) error {
	query, args, err := qb.Update(eventTable).
		Set("status", string(status)).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("public_id", id)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build event status update: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update event status: %w", err)
	}

	return nil
}

func (r *EventRepository) RosterFighterIDs(ctx context.Context, eventID string) ([]string, error) {
	query, args, err := qb.Select("fighter_public_id").
		From(eventFighterTable).
		Where(qb.Eq("event_public_id", eventID)).
		OrderBy("position ASC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build roster query: %w", err)
	}

	var ids []string
	if err := r.db.SelectContext(ctx, &ids, query, args...); err != nil {
		return nil, fmt.Errorf("list roster fighters: %w", err)
	}

	return ids, nil
}

// SetRoster replaces the event's fight card atomically.
func (r *EventRepository) SetRoster(ctx context.Context, eventID string, fighterIDs []string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin roster tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	deleteQuery, deleteArgs, err := qb.DeleteFrom(eventFighterTable).
		Where(qb.Eq("event_public_id", eventID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build roster delete: %w", err)
	}
	if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("clear roster: %w", err)
	}

	if len(fighterIDs) > 0 {
		builder := qb.InsertInto(eventFighterTable).
			Columns("event_public_id", "fighter_public_id", "position")
		for i, fighterID := range fighterIDs {
			builder.Values(eventID, fighterID, i)
		}
		insertQuery, insertArgs, err := builder.ToSQL()
		if err != nil {
			return fmt.Errorf("build roster insert: %w", err)
		}
		if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			return fmt.Errorf("insert roster: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit roster tx: %w", err)
	}

	return nil
}
