package usecase

import (
	"errors"
	"testing"

	"github.com/fightpicks/fight-league/internal/domain/event"
	"github.com/fightpicks/fight-league/internal/domain/scoring"
	"github.com/fightpicks/fight-league/internal/infrastructure/repository/memory"
)

func TestScoringService_IngestEventResults(t *testing.T) {
	env := newPickServiceEnv(t)
	svc := NewScoringService(memory.NewScoringRepository(), env.pickRepo, env.eventRepo, nil)

	first, err := env.svc.Submit(t.Context(), SubmitPickInput{
		UserID: "user-1", LeagueID: "lg-1", EventID: "ev-1", FighterIDs: []string{"f-a", "f-b"},
	})
	if err != nil {
		t.Fatalf("submit first pick failed: %v", err)
	}
	second, err := env.svc.Submit(t.Context(), SubmitPickInput{
		UserID: "user-2", LeagueID: "lg-1", EventID: "ev-1", FighterIDs: []string{"f-a"},
	})
	if err != nil {
		t.Fatalf("submit second pick failed: %v", err)
	}

	results := []scoring.FightResult{
		{FighterID: "f-a", Win: true, Method: scoring.MethodKOTKO, Round: 1, SignificantStrikes: 25},
		{FighterID: "f-b", Win: false, Method: scoring.MethodDecision, Decision: scoring.DecisionUnanimous},
	}

	outcome, err := svc.IngestEventResults(t.Context(), "Clash 300", results)
	if err != nil {
		t.Fatalf("ingest results failed: %v", err)
	}
	if outcome.RecordsProcessed != 2 || outcome.RecordsFailed != 0 {
		t.Fatalf("unexpected record counts: %+v", outcome)
	}
	if outcome.PicksUpdated != 2 || outcome.PicksFailed != 0 {
		t.Fatalf("unexpected pick counts: %+v", outcome)
	}

	// f-a scores 52, f-b scores 0.
	firstAfter, _, err := env.pickRepo.GetByID(t.Context(), first.ID)
	if err != nil {
		t.Fatalf("get first pick: %v", err)
	}
	if firstAfter.EventPoints != 52 {
		t.Fatalf("expected first pick 52 points, got %d", firstAfter.EventPoints)
	}
	secondAfter, _, err := env.pickRepo.GetByID(t.Context(), second.ID)
	if err != nil {
		t.Fatalf("get second pick: %v", err)
	}
	if secondAfter.EventPoints != 52 {
		t.Fatalf("expected second pick 52 points, got %d", secondAfter.EventPoints)
	}

	ev, _, err := env.eventRepo.GetByID(t.Context(), "ev-1")
	if err != nil {
		t.Fatalf("get event: %v", err)
	}
	if ev.Status != event.StatusCompleted {
		t.Fatalf("expected event completed, got %s", ev.Status)
	}

	// Re-running converges to the same totals.
	if _, err := svc.IngestEventResults(t.Context(), "Clash 300", results); err != nil {
		t.Fatalf("repeat ingest failed: %v", err)
	}
	firstAgain, _, err := env.pickRepo.GetByID(t.Context(), first.ID)
	if err != nil {
		t.Fatalf("get first pick after repeat: %v", err)
	}
	if firstAgain.EventPoints != 52 {
		t.Fatalf("expected idempotent rescore to keep 52 points, got %d", firstAgain.EventPoints)
	}
}

func TestScoringService_MissingRecordContributesZero(t *testing.T) {
	env := newPickServiceEnv(t)
	svc := NewScoringService(memory.NewScoringRepository(), env.pickRepo, env.eventRepo, nil)

	submitted, err := env.svc.Submit(t.Context(), SubmitPickInput{
		UserID: "user-1", LeagueID: "lg-1", EventID: "ev-1", FighterIDs: []string{"f-a", "f-b"},
	})
	if err != nil {
		t.Fatalf("submit pick failed: %v", err)
	}

	// Only f-a has a result; f-b contributes zero without failing the batch.
	outcome, err := svc.IngestEventResults(t.Context(), "Clash 300", []scoring.FightResult{
		{FighterID: "f-a", Win: true, Method: scoring.MethodSubmission, Round: 2},
	})
	if err != nil {
		t.Fatalf("ingest results failed: %v", err)
	}
	if outcome.PicksFailed != 0 {
		t.Fatalf("missing record must not count as a failure: %+v", outcome)
	}

	after, _, err := env.pickRepo.GetByID(t.Context(), submitted.ID)
	if err != nil {
		t.Fatalf("get pick: %v", err)
	}
	// 20 win + 12 submission + 7 round 2
	if after.EventPoints != 39 {
		t.Fatalf("expected 39 points, got %d", after.EventPoints)
	}
}

func TestScoringService_IngestUnknownEvent(t *testing.T) {
	env := newPickServiceEnv(t)
	svc := NewScoringService(memory.NewScoringRepository(), env.pickRepo, env.eventRepo, nil)

	_, err := svc.IngestEventResults(t.Context(), "No Such Event", []scoring.FightResult{
		{FighterID: "f-a", Win: true, Method: scoring.MethodKOTKO, Round: 1},
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown event, got %v", err)
	}
}

func TestScoringService_InvalidRecordCounted(t *testing.T) {
	env := newPickServiceEnv(t)
	svc := NewScoringService(memory.NewScoringRepository(), env.pickRepo, env.eventRepo, nil)

	outcome, err := svc.IngestEventResults(t.Context(), "Clash 300", []scoring.FightResult{
		{FighterID: "", Win: true, Method: scoring.MethodKOTKO, Round: 1},
		{FighterID: "f-a", Win: true, Method: scoring.MethodKOTKO, Round: 1},
	})
	if err != nil {
		t.Fatalf("ingest results failed: %v", err)
	}
	if outcome.RecordsProcessed != 1 || outcome.RecordsFailed != 1 {
		t.Fatalf("expected one processed and one failed record, got %+v", outcome)
	}
}
