package league

import (
	"fmt"
	"time"
)

const (
	DefaultBudgetCap           = int64(100)
	DefaultMinFightersPerEvent = 1
	DefaultMaxFightersPerEvent = 3
)

// League groups users competing against each other under one budget cap.
type League struct {
	ID                  string
	Name                string
	BudgetCap           int64
	MinFightersPerEvent int
	MaxFightersPerEvent int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Normalized fills zero-valued constraints with defaults.
func (l League) Normalized() League {
	if l.BudgetCap <= 0 {
		l.BudgetCap = DefaultBudgetCap
	}
	if l.MinFightersPerEvent <= 0 {
		l.MinFightersPerEvent = DefaultMinFightersPerEvent
	}
	if l.MaxFightersPerEvent <= 0 {
		l.MaxFightersPerEvent = DefaultMaxFightersPerEvent
	}

	return l
}

func (l League) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("league id is required")
	}
	if l.Name == "" {
		return fmt.Errorf("league name is required")
	}
	if l.BudgetCap <= 0 {
		return fmt.Errorf("league budget cap must be greater than zero")
	}
	if l.MinFightersPerEvent < 1 {
		return fmt.Errorf("min fighters per event must be at least 1")
	}
	if l.MaxFightersPerEvent < l.MinFightersPerEvent {
		return fmt.Errorf("max fighters per event must be at least min fighters per event")
	}

	return nil
}
