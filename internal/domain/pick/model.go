package pick

import (
	"errors"
	"fmt"
	"time"
)

// ErrLocked marks a mutation attempted on a locked or deadline-passed pick.
var ErrLocked = errors.New("pick is locked")

// Pick is one user's fighter roster for one event within one league. At most
// one exists per (user, league, event).
type Pick struct {
	ID              string
	UserID          string
	LeagueID        string
	EventID         string
	FighterIDs      []string
	TotalCost       int64
	RemainingBudget int64
	EventPoints     int
	Locked          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Mutable reports whether the roster may still change: not locked and the
// picks deadline has not passed. The store re-checks this inside the write.
func (p Pick) Mutable(deadline, now time.Time) bool {
	return !p.Locked && now.Before(deadline)
}

func (p Pick) ValidateBasic() error {
	if p.ID == "" {
		return fmt.Errorf("pick id is required")
	}
	if p.UserID == "" {
		return fmt.Errorf("user id is required")
	}
	if p.LeagueID == "" {
		return fmt.Errorf("league id is required")
	}
	if p.EventID == "" {
		return fmt.Errorf("event id is required")
	}
	if len(p.FighterIDs) == 0 {
		return fmt.Errorf("pick fighters are required")
	}

	return nil
}
