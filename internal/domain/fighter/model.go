package fighter

import (
	"fmt"
	"time"
)

// Fighter is one catalog entry selectable into picks.
type Fighter struct {
	ID           string
	Name         string
	WeightClass  string
	CardPosition CardPosition
	Ranking      int
	IsChampion   bool
	IsFavorite   bool
	Price        int64
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (f Fighter) Validate() error {
	if f.ID == "" {
		return fmt.Errorf("fighter id is required")
	}
	if f.Name == "" {
		return fmt.Errorf("fighter name is required")
	}
	if _, ok := AllCardPositions[f.CardPosition]; !ok {
		return fmt.Errorf("unknown card position: %s", f.CardPosition)
	}
	if f.Price < 0 {
		return fmt.Errorf("fighter price must not be negative")
	}

	return nil
}
