package usecase

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/fightpicks/fight-league/internal/domain/event"
	"github.com/fightpicks/fight-league/internal/domain/pick"
	"github.com/fightpicks/fight-league/internal/platform/logging"
)

const lockSweepWorkers = 4

type LockSweepResult struct {
	EventsSwept  int
	PicksLocked  int
	EventsFailed int
}

// LockSweepService transitions picks from open to locked once their event's
// deadline has passed. Sweeps are idempotent and per-event failures never
// abort the rest of the pass.
type LockSweepService struct {
	pickRepo  pick.Repository
	eventRepo event.Repository
	logger    *logging.Logger
	now       func() time.Time
}

func NewLockSweepService(pickRepo pick.Repository, eventRepo event.Repository, logger *logging.Logger) *LockSweepService {
	if logger == nil {
		logger = logging.Default()
	}

	return &LockSweepService{
		pickRepo:  pickRepo,
		eventRepo: eventRepo,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *LockSweepService) Sweep(ctx context.Context) (LockSweepResult, error) {
	ctx, span := startUsecaseSpan(ctx, "LockSweepService.Sweep")
	defer span.End()

	now := s.now()
	events, err := s.eventRepo.ListDeadlineElapsed(ctx, now)
	if err != nil {
		return LockSweepResult{}, fmt.Errorf("list deadline-elapsed events: %w", err)
	}
	if len(events) == 0 {
		return LockSweepResult{}, nil
	}

	var lockedCount atomic.Int64
	var failedCount atomic.Int64

	workers := pool.New().WithMaxGoroutines(lockSweepWorkers)
	for _, ev := range events {
		ev := ev
		workers.Go(func() {
			locked, lockErr := s.pickRepo.LockByEvent(ctx, ev.ID, now)
			if lockErr != nil {
				failedCount.Add(1)
				s.logger.ErrorContext(ctx, "lock sweep failed for event",
					"event_id", ev.ID,
					"error", lockErr,
				)
				return
			}

			lockedCount.Add(int64(locked))
			if locked > 0 {
				s.logger.InfoContext(ctx, "lock sweep locked picks",
					"event_id", ev.ID,
					"locked", locked,
				)
			}
		})
	}
	workers.Wait()

	return LockSweepResult{
		EventsSwept:  len(events),
		PicksLocked:  int(lockedCount.Load()),
		EventsFailed: int(failedCount.Load()),
	}, nil
}
