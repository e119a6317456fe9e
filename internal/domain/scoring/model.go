package scoring

import (
	"fmt"
	"time"
)

type Method string

const (
	MethodKOTKO      Method = "KO_TKO"
	MethodSubmission Method = "SUBMISSION"
	MethodDecision   Method = "DECISION"
)

type DecisionKind string

const (
	DecisionUnanimous DecisionKind = "UNANIMOUS"
	DecisionMajority  DecisionKind = "MAJORITY"
	DecisionSplit     DecisionKind = "SPLIT"
)

// FightResult is one fighter's raw stat line for one fight. Missing stats
// are zero, never an error.
type FightResult struct {
	FighterID          string
	Win                bool
	Method             Method
	Decision           DecisionKind
	Round              int
	SignificantStrikes int
	StrikesLanded      int
	StrikesAttempted   int
	Takedowns          int
	Knockdowns         int
	SubmissionAttempts int
}

func (r FightResult) Validate() error {
	if r.FighterID == "" {
		return fmt.Errorf("fighter id is required")
	}

	return nil
}

// FighterPointRecord is the durable outcome of scoring one fight result,
// attributed to its event directly.
type FighterPointRecord struct {
	FighterID string
	EventID   string
	Points    int
	CreatedAt time.Time
}
