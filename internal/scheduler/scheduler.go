package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"

	"github.com/fightpicks/fight-league/internal/platform/logging"
	"github.com/fightpicks/fight-league/internal/usecase"
)

// Scheduler runs the recurring lock sweep on a cron cadence. The sweep logic
// itself lives in the usecase layer and stays clock-injectable for tests.
type Scheduler struct {
	cron   *cron.Cron
	sweep  *usecase.LockSweepService
	logger *logging.Logger
}

func New(sweep *usecase.LockSweepService, logger *logging.Logger) *Scheduler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Scheduler{
		cron:   cron.New(),
		sweep:  sweep,
		logger: logger,
	}
}

// Start registers the sweep under the given cron spec (e.g. "@every 5m")
// and starts the ticker.
func (s *Scheduler) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.runSweep); err != nil {
		return err
	}
	s.cron.Start()

	return nil
}

// Stop halts the ticker and waits for any in-flight sweep to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) runSweep() {
	ctx := context.Background()

	result, err := s.sweep.Sweep(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "scheduled lock sweep failed", "error", err)
		return
	}
	if result.EventsSwept == 0 {
		return
	}

	s.logger.InfoContext(ctx, "scheduled lock sweep completed",
		"events_swept", result.EventsSwept,
		"picks_locked", result.PicksLocked,
		"events_failed", result.EventsFailed,
	)
}
