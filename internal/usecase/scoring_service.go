package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/fightpicks/fight-league/internal/domain/event"
	"github.com/fightpicks/fight-league/internal/domain/pick"
	"github.com/fightpicks/fight-league/internal/domain/scoring"
	"github.com/fightpicks/fight-league/internal/platform/logging"
)

const scoringWorkers = 8

type ScoreIngestResult struct {
	EventID          string
	RecordsProcessed int
	RecordsFailed    int
	PicksUpdated     int
	PicksFailed      int
}

type leaderboardInvalidator interface {
	InvalidateLeague(ctx context.Context, leagueID string)
}

// ScoringService turns raw fight results into point records and rewrites
// pick event points from them. Both passes are safe to re-run: records are
// upserts and pick points are overwritten from a fresh sum.
type ScoringService struct {
	scoringRepo scoring.Repository
	pickRepo    pick.Repository
	eventRepo   event.Repository
	boards      leaderboardInvalidator
	logger      *logging.Logger
	now         func() time.Time
}

func NewScoringService(
	scoringRepo scoring.Repository,
	pickRepo pick.Repository,
	eventRepo event.Repository,
	logger *logging.Logger,
) *ScoringService {
	if logger == nil {
		logger = logging.Default()
	}

	return &ScoringService{
		scoringRepo: scoringRepo,
		pickRepo:    pickRepo,
		eventRepo:   eventRepo,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *ScoringService) SetLeaderboardInvalidator(boards leaderboardInvalidator) {
	s.boards = boards
}

// IngestEventResults scores every result record for the named event, updates
// every pick referencing the event and marks the event completed. Per-item
// failures are counted, never fatal for the batch.
func (s *ScoringService) IngestEventResults(ctx context.Context, eventName string, results []scoring.FightResult) (ScoreIngestResult, error) {
	ctx, span := startUsecaseSpan(ctx, "ScoringService.IngestEventResults")
	defer span.End()

	eventName = strings.TrimSpace(eventName)
	if eventName == "" {
		return ScoreIngestResult{}, fmt.Errorf("%w: event name is required", ErrInvalidInput)
	}
	if len(results) == 0 {
		return ScoreIngestResult{}, fmt.Errorf("%w: at least one fight result is required", ErrInvalidInput)
	}

	ev, exists, err := s.eventRepo.GetByName(ctx, eventName)
	if err != nil {
		return ScoreIngestResult{}, fmt.Errorf("get event by name: %w", err)
	}
	if !exists {
		return ScoreIngestResult{}, fmt.Errorf("%w: event %q", ErrNotFound, eventName)
	}

	out := ScoreIngestResult{EventID: ev.ID}
	now := s.now()

	for _, result := range results {
		if err := result.Validate(); err != nil {
			out.RecordsFailed++
			s.logger.WarnContext(ctx, "skipping invalid fight result", "event_id", ev.ID, "error", err)
			continue
		}

		points, breakdown := scoring.Score(result)
		record := scoring.FighterPointRecord{
			FighterID: result.FighterID,
			EventID:   ev.ID,
			Points:    points,
			CreatedAt: now,
		}
		if err := s.scoringRepo.Upsert(ctx, record); err != nil {
			out.RecordsFailed++
			s.logger.ErrorContext(ctx, "upsert fighter point record failed",
				"event_id", ev.ID,
				"fighter_id", result.FighterID,
				"error", err,
			)
			continue
		}

		out.RecordsProcessed++
		s.logger.DebugContext(ctx, "fighter scored",
			"event_id", ev.ID,
			"fighter_id", result.FighterID,
			"points", points,
			"breakdown", breakdown,
		)
	}

	updated, failed, err := s.RefreshEventPoints(ctx, ev.ID)
	if err != nil {
		return out, err
	}
	out.PicksUpdated = updated
	out.PicksFailed = failed

	if err := s.eventRepo.UpdateStatus(ctx, ev.ID, event.StatusCompleted); err != nil {
		return out, fmt.Errorf("mark event completed: %w", err)
	}

	s.logger.InfoContext(ctx, "event results ingested",
		"event_id", ev.ID,
		"records_processed", out.RecordsProcessed,
		"records_failed", out.RecordsFailed,
		"picks_updated", out.PicksUpdated,
		"picks_failed", out.PicksFailed,
	)

	return out, nil
}

// RefreshEventPoints rewrites eventPoints for every pick of the event from
// the current point records. A fighter without a record contributes zero.
func (s *ScoringService) RefreshEventPoints(ctx context.Context, eventID string) (updated, failed int, err error) {
	ctx, span := startUsecaseSpan(ctx, "ScoringService.RefreshEventPoints")
	defer span.End()

	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return 0, 0, fmt.Errorf("%w: event_id is required", ErrInvalidInput)
	}

	picks, err := s.pickRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return 0, 0, fmt.Errorf("list picks by event: %w", err)
	}
	if len(picks) == 0 {
		return 0, 0, nil
	}

	var updatedCount atomic.Int32
	var failedCount atomic.Int32

	workerPool, err := ants.NewPool(scoringWorkers)
	if err != nil {
		return 0, 0, fmt.Errorf("create worker pool: %w", err)
	}
	defer workerPool.Release()

	leagueIDs := make(map[string]struct{}, 4)
	for _, item := range picks {
		leagueIDs[item.LeagueID] = struct{}{}
	}

	var workers sync.WaitGroup
	for _, item := range picks {
		item := item
		workers.Add(1)
		if submitErr := workerPool.Submit(func() {
			defer workers.Done()

			if refreshErr := s.refreshPickPoints(ctx, item, eventID); refreshErr != nil {
				failedCount.Add(1)
				s.logger.ErrorContext(ctx, "refresh pick points failed",
					"pick_id", item.ID,
					"event_id", eventID,
					"error", refreshErr,
				)
				return
			}
			updatedCount.Add(1)
		}); submitErr != nil {
			workers.Done()
			return int(updatedCount.Load()), int(failedCount.Load()), fmt.Errorf("submit pick to worker pool: %w", submitErr)
		}
	}
	workers.Wait()

	if s.boards != nil {
		for leagueID := range leagueIDs {
			s.boards.InvalidateLeague(ctx, leagueID)
		}
	}

	return int(updatedCount.Load()), int(failedCount.Load()), nil
}

func (s *ScoringService) refreshPickPoints(ctx context.Context, item pick.Pick, eventID string) error {
	total := 0
	for _, fighterID := range item.FighterIDs {
		record, exists, err := s.scoringRepo.GetByFighterAndEvent(ctx, fighterID, eventID)
		if err != nil {
			return fmt.Errorf("get point record fighter=%s: %w", fighterID, err)
		}
		if !exists {
			// Recovered condition: no record means zero points for this slot.
			s.logger.WarnContext(ctx, "fighter has no point record, contributing zero",
				"pick_id", item.ID,
				"fighter_id", fighterID,
				"event_id", eventID,
			)
			continue
		}
		total += record.Points
	}

	if err := s.pickRepo.UpdateEventPoints(ctx, item.ID, total); err != nil {
		return fmt.Errorf("update event points: %w", err)
	}

	return nil
}
