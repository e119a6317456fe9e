package postgres

import (
	"time"

	"github.com/fightpicks/fight-league/internal/domain/event"
)

type eventTableModel struct {
	PublicID  string    `db:"public_id"`
	Name      string    `db:"name"`
	StartTime time.Time `db:"start_time"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type eventInsertModel struct {
	PublicID  string    `db:"public_id"`
	Name      string    `db:"name"`
	StartTime time.Time `db:"start_time"`
	Status    string    `db:"status"`
}

func eventToDomain(row eventTableModel) event.Event {
	return event.Event{
		ID:        row.PublicID,
		Name:      row.Name,
		StartTime: row.StartTime,
		Status:    event.Status(row.Status),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func eventsToDomain(rows []eventTableModel) []event.Event {
	out := make([]event.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, eventToDomain(row))
	}
	return out
}
