package pick

import (
	"errors"
	"fmt"

	"github.com/fightpicks/fight-league/internal/domain/fighter"
)

var (
	ErrInvalidRosterSize = errors.New("invalid roster size")
	ErrFighterNotInEvent = errors.New("fighter not on event card")
	ErrNotLeagueMember   = errors.New("user is not a league member")
	ErrPicksClosed       = errors.New("picks are closed for event")
	ErrBudgetExceeded    = errors.New("league budget cap exceeded")
	ErrDuplicateFighter  = errors.New("duplicate fighter in roster")
)

// Rules stores the per-league roster validation parameters.
type Rules struct {
	BudgetCap   int64
	MinFighters int
	MaxFighters int
}

func ValidateSize(count int, rules Rules) error {
	if count < rules.MinFighters || count > rules.MaxFighters {
		return fmt.Errorf("%w: expected %d..%d, got %d", ErrInvalidRosterSize, rules.MinFighters, rules.MaxFighters, count)
	}

	return nil
}

// ValidateAgainstCard checks that every selected fighter appears on the event
// card exactly once.
func ValidateAgainstCard(selected []fighter.Fighter, card map[string]struct{}) error {
	seen := make(map[string]struct{}, len(selected))
	for _, f := range selected {
		if _, dup := seen[f.ID]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateFighter, f.ID)
		}
		seen[f.ID] = struct{}{}

		if _, ok := card[f.ID]; !ok {
			return fmt.Errorf("%w: %s", ErrFighterNotInEvent, f.ID)
		}
	}

	return nil
}

func TotalCost(selected []fighter.Fighter) int64 {
	var total int64
	for _, f := range selected {
		total += fighter.PriceOf(f)
	}

	return total
}

func ValidateBudget(totalCost int64, rules Rules) error {
	if totalCost > rules.BudgetCap {
		return fmt.Errorf("%w: cap=%d used=%d", ErrBudgetExceeded, rules.BudgetCap, totalCost)
	}

	return nil
}
