package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/fightpicks/fight-league/internal/config"
	"github.com/fightpicks/fight-league/internal/domain/event"
	"github.com/fightpicks/fight-league/internal/domain/fighter"
	"github.com/fightpicks/fight-league/internal/domain/league"
	"github.com/fightpicks/fight-league/internal/domain/pick"
	"github.com/fightpicks/fight-league/internal/domain/scoring"
	"github.com/fightpicks/fight-league/internal/infrastructure/account/gatekeeper"
	"github.com/fightpicks/fight-league/internal/infrastructure/repository/memory"
	"github.com/fightpicks/fight-league/internal/infrastructure/repository/postgres"
	"github.com/fightpicks/fight-league/internal/interfaces/httpapi"
	"github.com/fightpicks/fight-league/internal/platform/cache"
	"github.com/fightpicks/fight-league/internal/platform/logging"
	"github.com/fightpicks/fight-league/internal/platform/resilience"
	"github.com/fightpicks/fight-league/internal/scheduler"
	"github.com/fightpicks/fight-league/internal/usecase"
)

type repositories struct {
	picks    pick.Repository
	fighters fighter.Repository
	events   event.Repository
	leagues  league.Repository
	scoring  scoring.Repository
}

// Application wires configuration, storage, use cases and transport into a
// runnable service.
type Application struct {
	Server    *http.Server
	Scheduler *scheduler.Scheduler

	cfg    config.Config
	logger *logging.Logger
	db     *sqlx.DB
}

// New assembles the service. Without DB_URL it runs entirely on seeded
// in-memory stores, which is the local development mode.
func New(cfg config.Config, logger *logging.Logger) (*Application, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	app := &Application{cfg: cfg, logger: logger}

	repos, err := app.buildRepositories()
	if err != nil {
		return nil, err
	}

	var store *cache.Store
	if cfg.CacheEnabled {
		store = cache.NewStore(cfg.CacheTTL)
	}

	pickService := usecase.NewPickService(repos.picks, repos.fighters, repos.events, repos.leagues, nil, logger)
	eventService := usecase.NewEventService(repos.events, repos.fighters, nil, logger)
	leaderboardService := usecase.NewLeaderboardService(repos.picks, store)
	scoringService := usecase.NewScoringService(repos.scoring, repos.picks, repos.events, logger)
	scoringService.SetLeaderboardInvalidator(leaderboardService)
	sweepService := usecase.NewLockSweepService(repos.picks, repos.events, logger)

	verifier := gatekeeper.NewClient(gatekeeper.Config{
		BaseURL:        cfg.GatekeeperBaseURL,
		IntrospectPath: cfg.GatekeeperIntrospectPath,
		Timeout:        cfg.GatekeeperTimeout,
		CacheTTL:       cfg.GatekeeperCacheTTL,
		CacheMaxSize:   cfg.GatekeeperCacheMaxEntries,
		Circuit: resilience.CircuitBreakerConfig{
			Enabled:          cfg.GatekeeperCircuitEnabled,
			FailureThreshold: cfg.GatekeeperCircuitFailureCount,
			OpenTimeout:      cfg.GatekeeperCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.GatekeeperCircuitHalfOpenMaxReq,
		},
	}, nil, logger)

	handler := httpapi.NewHandler(pickService, eventService, leaderboardService, scoringService, sweepService, logger)
	router := httpapi.NewRouter(handler, verifier, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	app.Server = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	app.Scheduler = scheduler.New(sweepService, logger)

	return app, nil
}

// StartScheduler begins the recurring lock sweep when enabled.
func (a *Application) StartScheduler() error {
	if !a.cfg.SweepEnabled {
		a.logger.Info("lock sweep scheduler disabled", "reason", "SWEEP_ENABLED=false")
		return nil
	}
	if err := a.Scheduler.Start(a.cfg.SweepSchedule); err != nil {
		return fmt.Errorf("start lock sweep scheduler: %w", err)
	}
	a.logger.Info("lock sweep scheduler started", "schedule", a.cfg.SweepSchedule)

	return nil
}

// Close stops the scheduler and releases the database connection pool.
func (a *Application) Close() error {
	a.Scheduler.Stop()
	if a.db != nil {
		return a.db.Close()
	}

	return nil
}

func (a *Application) buildRepositories() (repositories, error) {
	if a.cfg.DBURL == "" {
		return a.buildMemoryRepositories()
	}

	dbURL := normalizeDBURL(a.cfg.DBURL, a.cfg.DBDisablePreparedBinary)
	db, err := otelsqlx.Connect("postgres", dbURL,
		otelsql.WithDBName(dbNameFromURL(dbURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return repositories{}, fmt.Errorf("connect database: %w", err)
	}
	a.db = db
	a.logger.Info("database connected", "db_name", dbNameFromURL(dbURL))

	return repositories{
		picks:    postgres.NewPickRepository(db),
		fighters: postgres.NewFighterRepository(db),
		events:   postgres.NewEventRepository(db),
		leagues:  postgres.NewLeagueRepository(db),
		scoring:  postgres.NewScoringRepository(db),
	}, nil
}

func (a *Application) buildMemoryRepositories() (repositories, error) {
	ctx := context.Background()

	leagueRepo := memory.NewLeagueRepository(memory.SeedLeagues())
	for leagueID, userIDs := range memory.SeedMembers() {
		for _, userID := range userIDs {
			if err := leagueRepo.AddMember(ctx, leagueID, userID); err != nil {
				return repositories{}, fmt.Errorf("seed league member: %w", err)
			}
		}
	}

	eventRepo := memory.NewEventRepository(memory.SeedEvents())
	for eventID, fighterIDs := range memory.SeedRosters() {
		if err := eventRepo.SetRoster(ctx, eventID, fighterIDs); err != nil {
			return repositories{}, fmt.Errorf("seed event roster: %w", err)
		}
	}

	a.logger.Info("using in-memory repositories", "reason", "DB_URL empty")

	return repositories{
		picks:    memory.NewPickRepository(),
		fighters: memory.NewFighterRepository(memory.SeedFighters()),
		events:   eventRepo,
		leagues:  leagueRepo,
		scoring:  memory.NewScoringRepository(),
	}, nil
}
