package pick

import (
	"errors"
	"testing"

	"github.com/fightpicks/fight-league/internal/domain/fighter"
)

func defaultRules() Rules {
	return Rules{BudgetCap: 100, MinFighters: 1, MaxFighters: 3}
}

func TestValidateSize(t *testing.T) {
	rules := defaultRules()

	if err := ValidateSize(0, rules); !errors.Is(err, ErrInvalidRosterSize) {
		t.Fatalf("expected ErrInvalidRosterSize for empty roster, got %v", err)
	}
	if err := ValidateSize(4, rules); !errors.Is(err, ErrInvalidRosterSize) {
		t.Fatalf("expected ErrInvalidRosterSize for oversized roster, got %v", err)
	}
	if err := ValidateSize(1, rules); err != nil {
		t.Fatalf("expected 1 fighter to be valid, got %v", err)
	}
	if err := ValidateSize(3, rules); err != nil {
		t.Fatalf("expected 3 fighters to be valid, got %v", err)
	}
}

func TestValidateAgainstCard(t *testing.T) {
	card := map[string]struct{}{"f-1": {}, "f-2": {}}
	selected := []fighter.Fighter{{ID: "f-1"}, {ID: "f-2"}}

	if err := ValidateAgainstCard(selected, card); err != nil {
		t.Fatalf("expected card roster to validate, got %v", err)
	}

	offCard := []fighter.Fighter{{ID: "f-1"}, {ID: "f-9"}}
	if err := ValidateAgainstCard(offCard, card); !errors.Is(err, ErrFighterNotInEvent) {
		t.Fatalf("expected ErrFighterNotInEvent, got %v", err)
	}

	dup := []fighter.Fighter{{ID: "f-1"}, {ID: "f-1"}}
	if err := ValidateAgainstCard(dup, card); !errors.Is(err, ErrDuplicateFighter) {
		t.Fatalf("expected ErrDuplicateFighter, got %v", err)
	}
}

func TestValidateBudgetBoundary(t *testing.T) {
	rules := defaultRules()

	if err := ValidateBudget(100, rules); err != nil {
		t.Fatalf("expected cost equal to cap to pass, got %v", err)
	}
	if err := ValidateBudget(101, rules); !errors.Is(err, ErrBudgetExceeded) {
		t.Fatalf("expected ErrBudgetExceeded for cost 101, got %v", err)
	}
}

func TestTotalCostUsesEffectivePrices(t *testing.T) {
	selected := []fighter.Fighter{
		{ID: "f-1", Price: 30},
		{ID: "f-2", Price: 40},
	}

	if got := TotalCost(selected); got != 70 {
		t.Fatalf("expected total cost 70, got %d", got)
	}
}
