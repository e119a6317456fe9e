package scoring

import (
	"fmt"
	"strings"
)

const (
	winPoints = 20

	koBonus         = 15
	submissionBonus = 12
	unanimousBonus  = 5
	majorityBonus   = 4
	splitBonus      = 3

	round1Bonus = 10
	round2Bonus = 7
	round3Bonus = 5

	strikeRateNum   = 3 // significant strikes x 0.3, truncated
	strikeRateDenom = 10
	takedownPoints  = 3
	knockdownPoints = 8
	subAttemptPts   = 2

	accuracyBonus      = 5
	accuracyPctFloor   = 70
	accuracyMinLanded  = 20
	takedownSpreeMin   = 5
	takedownSpreeBonus = 5
	knockdownSpreeMin  = 2
	knockdownSpreePts  = 10
)

// Score converts one raw fight result into fantasy points plus a breakdown
// of the contributing components. The total never goes below zero.
func Score(result FightResult) (int, string) {
	total := 0
	parts := make([]string, 0, 8)

	if result.Win {
		total += winPoints
		parts = append(parts, fmt.Sprintf("win +%d", winPoints))

		bonus, label := methodBonus(result)
		if bonus > 0 {
			total += bonus
			parts = append(parts, fmt.Sprintf("%s +%d", label, bonus))
		}

		if result.Method == MethodKOTKO || result.Method == MethodSubmission {
			if early := earlyFinishBonus(result.Round); early > 0 {
				total += early
				parts = append(parts, fmt.Sprintf("round %d finish +%d", result.Round, early))
			}
		}
	}

	if result.SignificantStrikes > 0 {
		pts := result.SignificantStrikes * strikeRateNum / strikeRateDenom
		if pts > 0 {
			total += pts
			parts = append(parts, fmt.Sprintf("sig strikes %d +%d", result.SignificantStrikes, pts))
		}
	}
	if result.Takedowns > 0 {
		pts := result.Takedowns * takedownPoints
		total += pts
		parts = append(parts, fmt.Sprintf("takedowns %d +%d", result.Takedowns, pts))
	}
	if result.Knockdowns > 0 {
		pts := result.Knockdowns * knockdownPoints
		total += pts
		parts = append(parts, fmt.Sprintf("knockdowns %d +%d", result.Knockdowns, pts))
	}
	if result.SubmissionAttempts > 0 {
		pts := result.SubmissionAttempts * subAttemptPts
		total += pts
		parts = append(parts, fmt.Sprintf("sub attempts %d +%d", result.SubmissionAttempts, pts))
	}

	if accurateStriking(result) {
		total += accuracyBonus
		parts = append(parts, fmt.Sprintf("striking accuracy +%d", accuracyBonus))
	}
	if result.Takedowns >= takedownSpreeMin {
		total += takedownSpreeBonus
		parts = append(parts, fmt.Sprintf("takedown spree +%d", takedownSpreeBonus))
	}
	if result.Knockdowns >= knockdownSpreeMin {
		total += knockdownSpreePts
		parts = append(parts, fmt.Sprintf("knockdown spree +%d", knockdownSpreePts))
	}

	if total < 0 {
		total = 0
	}
	if len(parts) == 0 {
		parts = append(parts, "no scoring contributions")
	}

	return total, strings.Join(parts, ", ")
}

func methodBonus(result FightResult) (int, string) {
	switch result.Method {
	case MethodKOTKO:
		return koBonus, "ko/tko"
	case MethodSubmission:
		return submissionBonus, "submission"
	case MethodDecision:
		switch result.Decision {
		case DecisionMajority:
			return majorityBonus, "majority decision"
		case DecisionSplit:
			return splitBonus, "split decision"
		default:
			// Unspecified decision subtype scores as unanimous.
			return unanimousBonus, "unanimous decision"
		}
	default:
		return 0, ""
	}
}

func earlyFinishBonus(round int) int {
	switch round {
	case 1:
		return round1Bonus
	case 2:
		return round2Bonus
	case 3:
		return round3Bonus
	default:
		return 0
	}
}

func accurateStriking(result FightResult) bool {
	if result.StrikesAttempted <= 0 || result.StrikesLanded < accuracyMinLanded {
		return false
	}

	return result.StrikesLanded*100 >= result.StrikesAttempted*accuracyPctFloor
}
