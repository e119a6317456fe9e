package scoring

import (
	"strings"
	"testing"
)

func TestScoreFirstRoundKO(t *testing.T) {
	result := FightResult{
		FighterID:          "f-1",
		Win:                true,
		Method:             MethodKOTKO,
		Round:              1,
		SignificantStrikes: 25,
	}

	// 20 win + 15 ko + 10 round1 + floor(25*0.3)=7 strikes
	points, breakdown := Score(result)
	if points != 52 {
		t.Fatalf("expected 52 points, got %d (%s)", points, breakdown)
	}
	for _, want := range []string{"win +20", "ko/tko +15", "round 1 finish +10", "sig strikes 25 +7"} {
		if !strings.Contains(breakdown, want) {
			t.Fatalf("expected breakdown to contain %q, got %q", want, breakdown)
		}
	}
}

func TestScoreLossByDecisionIsZero(t *testing.T) {
	result := FightResult{
		FighterID: "f-1",
		Win:       false,
		Method:    MethodDecision,
		Decision:  DecisionUnanimous,
		Round:     3,
	}

	points, _ := Score(result)
	if points != 0 {
		t.Fatalf("expected 0 points for a stat-less loss, got %d", points)
	}
}

func TestScoreDecisionKinds(t *testing.T) {
	cases := []struct {
		name     string
		decision DecisionKind
		want     int
	}{
		{name: "unanimous", decision: DecisionUnanimous, want: 25},
		{name: "majority", decision: DecisionMajority, want: 24},
		{name: "split", decision: DecisionSplit, want: 23},
		{name: "unspecified defaults to unanimous", decision: "", want: 25},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			points, _ := Score(FightResult{
				FighterID: "f-1",
				Win:       true,
				Method:    MethodDecision,
				Decision:  tc.decision,
				Round:     3,
			})
			if points != tc.want {
				t.Fatalf("expected %d points, got %d", tc.want, points)
			}
		})
	}
}

func TestScoreNoEarlyFinishBonusForDecisions(t *testing.T) {
	points, breakdown := Score(FightResult{
		FighterID: "f-1",
		Win:       true,
		Method:    MethodDecision,
		Round:     1,
	})
	if points != 25 {
		t.Fatalf("expected 25 points without early-finish bonus, got %d (%s)", points, breakdown)
	}
}

func TestScoreEarlyFinishRounds(t *testing.T) {
	cases := []struct {
		round int
		want  int
	}{
		{round: 1, want: 42},
		{round: 2, want: 39},
		{round: 3, want: 37},
		{round: 4, want: 32},
		{round: 5, want: 32},
	}

	for _, tc := range cases {
		points, _ := Score(FightResult{
			FighterID: "f-1",
			Win:       true,
			Method:    MethodSubmission,
			Round:     tc.round,
		})
		if points != tc.want {
			t.Fatalf("round %d: expected %d points, got %d", tc.round, tc.want, points)
		}
	}
}

func TestScoreStatPointsApplyOnLoss(t *testing.T) {
	result := FightResult{
		FighterID:          "f-1",
		Win:                false,
		Method:             MethodDecision,
		SignificantStrikes: 40, // +12
		Takedowns:          2,  // +6
		Knockdowns:         1,  // +8
		SubmissionAttempts: 3,  // +6
	}

	points, _ := Score(result)
	if points != 32 {
		t.Fatalf("expected 32 stat points on a loss, got %d", points)
	}
}

func TestScoreSpecialBonuses(t *testing.T) {
	result := FightResult{
		FighterID:          "f-1",
		Win:                false,
		Method:             MethodDecision,
		StrikesLanded:      30,
		StrikesAttempted:   40, // 75% accuracy, +5
		Takedowns:          5,  // +15 base, +5 spree
		Knockdowns:         2,  // +16 base, +10 spree
	}

	points, breakdown := Score(result)
	if points != 51 {
		t.Fatalf("expected 51 points, got %d (%s)", points, breakdown)
	}
}

func TestScoreAccuracyNeedsVolume(t *testing.T) {
	// 90% accuracy but under 20 landed earns no bonus.
	points, _ := Score(FightResult{
		FighterID:        "f-1",
		StrikesLanded:    18,
		StrikesAttempted: 20,
	})
	if points != 0 {
		t.Fatalf("expected no accuracy bonus under the landed floor, got %d", points)
	}
}
