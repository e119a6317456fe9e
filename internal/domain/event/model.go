package event

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusUpcoming  Status = "UPCOMING"
	StatusLive      Status = "LIVE"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

var AllStatuses = map[Status]struct{}{
	StatusUpcoming:  {},
	StatusLive:      {},
	StatusCompleted: {},
	StatusCancelled: {},
}

// PicksLeadTime is how long before the first fight picks close.
const PicksLeadTime = 24 * time.Hour

// Event is one fight night. The fight card roster lives in a separate
// event-to-fighter mapping owned by the repository, not on the struct.
type Event struct {
	ID        string
	Name      string
	StartTime time.Time
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PicksDeadline derives the cutoff from the current start time, so a
// rescheduled event moves its deadline automatically.
func (e Event) PicksDeadline() time.Time {
	return e.StartTime.Add(-PicksLeadTime)
}

func (e Event) PicksOpen(now time.Time) bool {
	return e.Status == StatusUpcoming && now.Before(e.PicksDeadline())
}

func (e Event) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("event id is required")
	}
	if e.Name == "" {
		return fmt.Errorf("event name is required")
	}
	if e.StartTime.IsZero() {
		return fmt.Errorf("event start time is required")
	}
	if _, ok := AllStatuses[e.Status]; !ok {
		return fmt.Errorf("unknown event status: %s", e.Status)
	}

	return nil
}
