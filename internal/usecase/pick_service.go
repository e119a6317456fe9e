package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fightpicks/fight-league/internal/domain/event"
	"github.com/fightpicks/fight-league/internal/domain/fighter"
	"github.com/fightpicks/fight-league/internal/domain/league"
	"github.com/fightpicks/fight-league/internal/domain/pick"
	"github.com/fightpicks/fight-league/internal/platform/id"
	"github.com/fightpicks/fight-league/internal/platform/logging"
)

type SubmitPickInput struct {
	UserID     string
	LeagueID   string
	EventID    string
	FighterIDs []string
}

// PickService owns the pick lifecycle: validation, submission, retrieval
// and deletion before lock.
type PickService struct {
	pickRepo    pick.Repository
	fighterRepo fighter.Repository
	eventRepo   event.Repository
	leagueRepo  league.Repository
	idGen       id.Generator
	logger      *logging.Logger
	now         func() time.Time
}

func NewPickService(
	pickRepo pick.Repository,
	fighterRepo fighter.Repository,
	eventRepo event.Repository,
	leagueRepo league.Repository,
	idGen id.Generator,
	logger *logging.Logger,
) *PickService {
	if idGen == nil {
		idGen = id.NewRandomGenerator()
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &PickService{
		pickRepo:    pickRepo,
		fighterRepo: fighterRepo,
		eventRepo:   eventRepo,
		leagueRepo:  leagueRepo,
		idGen:       idGen,
		logger:      logger,
		now:         time.Now,
	}
}

// Submit validates a roster and upserts the user's pick for the event. The
// store re-checks mutability inside the write, so a submit racing the lock
// sweep cannot slip past the deadline.
func (s *PickService) Submit(ctx context.Context, input SubmitPickInput) (pick.Pick, error) {
	ctx, span := startUsecaseSpan(ctx, "PickService.Submit")
	defer span.End()

	input.UserID = strings.TrimSpace(input.UserID)
	input.LeagueID = strings.TrimSpace(input.LeagueID)
	input.EventID = strings.TrimSpace(input.EventID)
	if input.UserID == "" || input.LeagueID == "" || input.EventID == "" {
		return pick.Pick{}, fmt.Errorf("%w: user_id, league_id and event_id are required", ErrInvalidInput)
	}

	fighterIDs, err := normalizeIDs(input.FighterIDs)
	if err != nil {
		return pick.Pick{}, err
	}

	lg, ev, err := s.loadLeagueAndEvent(ctx, input.LeagueID, input.EventID)
	if err != nil {
		return pick.Pick{}, err
	}
	rules := pick.Rules{
		BudgetCap:   lg.BudgetCap,
		MinFighters: lg.MinFightersPerEvent,
		MaxFighters: lg.MaxFightersPerEvent,
	}

	_, totalCost, err := s.validateRoster(ctx, input.UserID, lg, ev, fighterIDs, rules)
	if err != nil {
		return pick.Pick{}, err
	}

	now := s.now()
	item, exists, err := s.pickRepo.GetByRef(ctx, input.UserID, input.LeagueID, input.EventID)
	if err != nil {
		return pick.Pick{}, fmt.Errorf("get pick by reference: %w", err)
	}
	if !exists {
		newID, idErr := s.idGen.NewID()
		if idErr != nil {
			return pick.Pick{}, fmt.Errorf("generate pick id: %w", idErr)
		}
		item = pick.Pick{
			ID:        newID,
			UserID:    input.UserID,
			LeagueID:  input.LeagueID,
			EventID:   input.EventID,
			CreatedAt: now,
		}
	}

	item.FighterIDs = fighterIDs
	item.TotalCost = totalCost
	item.RemainingBudget = lg.BudgetCap - totalCost
	item.UpdatedAt = now

	if err := s.pickRepo.UpsertRoster(ctx, item, ev.PicksDeadline(), now); err != nil {
		return pick.Pick{}, fmt.Errorf("upsert pick: %w", err)
	}

	s.logger.InfoContext(ctx, "pick submitted",
		"pick_id", item.ID,
		"user_id", item.UserID,
		"league_id", item.LeagueID,
		"event_id", item.EventID,
		"total_cost", item.TotalCost,
	)

	return item, nil
}

// Get returns the user's pick for the event. A user who has not submitted
// yet gets an empty transient view carrying the full remaining budget.
func (s *PickService) Get(ctx context.Context, userID, leagueID, eventID string) (pick.Pick, error) {
	ctx, span := startUsecaseSpan(ctx, "PickService.Get")
	defer span.End()

	userID = strings.TrimSpace(userID)
	leagueID = strings.TrimSpace(leagueID)
	eventID = strings.TrimSpace(eventID)
	if userID == "" || leagueID == "" || eventID == "" {
		return pick.Pick{}, fmt.Errorf("%w: user_id, league_id and event_id are required", ErrInvalidInput)
	}

	lg, _, err := s.loadLeagueAndEvent(ctx, leagueID, eventID)
	if err != nil {
		return pick.Pick{}, err
	}

	item, exists, err := s.pickRepo.GetByRef(ctx, userID, leagueID, eventID)
	if err != nil {
		return pick.Pick{}, fmt.Errorf("get pick by reference: %w", err)
	}
	if !exists {
		return pick.Pick{
			UserID:          userID,
			LeagueID:        leagueID,
			EventID:         eventID,
			FighterIDs:      []string{},
			RemainingBudget: lg.BudgetCap,
		}, nil
	}

	return item, nil
}

func (s *PickService) ListByUserAndLeague(ctx context.Context, userID, leagueID string) ([]pick.Pick, error) {
	ctx, span := startUsecaseSpan(ctx, "PickService.ListByUserAndLeague")
	defer span.End()

	userID = strings.TrimSpace(userID)
	leagueID = strings.TrimSpace(leagueID)
	if userID == "" || leagueID == "" {
		return nil, fmt.Errorf("%w: user_id and league_id are required", ErrInvalidInput)
	}

	items, err := s.pickRepo.ListByUserAndLeague(ctx, userID, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list picks by user and league: %w", err)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})

	return items, nil
}

func (s *PickService) ListByLeagueAndEvent(ctx context.Context, leagueID, eventID string) ([]pick.Pick, error) {
	ctx, span := startUsecaseSpan(ctx, "PickService.ListByLeagueAndEvent")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	eventID = strings.TrimSpace(eventID)
	if leagueID == "" || eventID == "" {
		return nil, fmt.Errorf("%w: league_id and event_id are required", ErrInvalidInput)
	}

	items, err := s.pickRepo.ListByLeagueAndEvent(ctx, leagueID, eventID)
	if err != nil {
		return nil, fmt.Errorf("list picks by league and event: %w", err)
	}

	return items, nil
}

// Delete removes the user's pick for the event while it is still mutable.
func (s *PickService) Delete(ctx context.Context, userID, leagueID, eventID string) error {
	ctx, span := startUsecaseSpan(ctx, "PickService.Delete")
	defer span.End()

	userID = strings.TrimSpace(userID)
	leagueID = strings.TrimSpace(leagueID)
	eventID = strings.TrimSpace(eventID)
	if userID == "" || leagueID == "" || eventID == "" {
		return fmt.Errorf("%w: user_id, league_id and event_id are required", ErrInvalidInput)
	}

	item, exists, err := s.pickRepo.GetByRef(ctx, userID, leagueID, eventID)
	if err != nil {
		return fmt.Errorf("get pick by reference: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: pick", ErrNotFound)
	}

	ev, exists, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return fmt.Errorf("get event: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: event %s", ErrNotFound, eventID)
	}

	if err := s.pickRepo.DeleteOpen(ctx, item.ID, ev.PicksDeadline(), s.now()); err != nil {
		return fmt.Errorf("delete pick: %w", err)
	}

	s.logger.InfoContext(ctx, "pick deleted", "pick_id", item.ID, "user_id", userID, "event_id", eventID)

	return nil
}

// LockByID locks one pick ahead of the deadline, for administrative use.
func (s *PickService) LockByID(ctx context.Context, pickID string) (pick.Pick, error) {
	ctx, span := startUsecaseSpan(ctx, "PickService.LockByID")
	defer span.End()

	pickID = strings.TrimSpace(pickID)
	if pickID == "" {
		return pick.Pick{}, fmt.Errorf("%w: pick_id is required", ErrInvalidInput)
	}

	item, exists, err := s.pickRepo.GetByID(ctx, pickID)
	if err != nil {
		return pick.Pick{}, fmt.Errorf("get pick: %w", err)
	}
	if !exists {
		return pick.Pick{}, fmt.Errorf("%w: pick %s", ErrNotFound, pickID)
	}

	if err := s.pickRepo.LockByID(ctx, pickID); err != nil {
		return pick.Pick{}, fmt.Errorf("lock pick: %w", err)
	}
	item.Locked = true

	s.logger.InfoContext(ctx, "pick locked by admin", "pick_id", pickID)

	return item, nil
}

func (s *PickService) loadLeagueAndEvent(ctx context.Context, leagueID, eventID string) (league.League, event.Event, error) {
	lg, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return league.League{}, event.Event{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return league.League{}, event.Event{}, fmt.Errorf("%w: league %s", ErrNotFound, leagueID)
	}
	lg = lg.Normalized()

	ev, exists, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return league.League{}, event.Event{}, fmt.Errorf("get event: %w", err)
	}
	if !exists {
		return league.League{}, event.Event{}, fmt.Errorf("%w: event %s", ErrNotFound, eventID)
	}

	return lg, ev, nil
}

// validateRoster applies the submission checks in order, short-circuiting
// on the first failure: size, card membership, league membership, picks
// window, budget.
func (s *PickService) validateRoster(
	ctx context.Context,
	userID string,
	lg league.League,
	ev event.Event,
	fighterIDs []string,
	rules pick.Rules,
) ([]fighter.Fighter, int64, error) {
	if err := pick.ValidateSize(len(fighterIDs), rules); err != nil {
		return nil, 0, err
	}

	selected := make([]fighter.Fighter, 0, len(fighterIDs))
	for _, fighterID := range fighterIDs {
		f, exists, err := s.fighterRepo.GetByID(ctx, fighterID)
		if err != nil {
			return nil, 0, fmt.Errorf("get fighter %s: %w", fighterID, err)
		}
		if !exists || !f.Active {
			return nil, 0, fmt.Errorf("%w: %s", pick.ErrFighterNotInEvent, fighterID)
		}
		selected = append(selected, f)
	}

	rosterIDs, err := s.eventRepo.RosterFighterIDs(ctx, ev.ID)
	if err != nil {
		return nil, 0, fmt.Errorf("get event roster: %w", err)
	}
	card := make(map[string]struct{}, len(rosterIDs))
	for _, fid := range rosterIDs {
		card[fid] = struct{}{}
	}
	if err := pick.ValidateAgainstCard(selected, card); err != nil {
		return nil, 0, err
	}

	isMember, err := s.leagueRepo.IsMember(ctx, userID, lg.ID)
	if err != nil {
		return nil, 0, fmt.Errorf("check league membership: %w", err)
	}
	if !isMember {
		return nil, 0, fmt.Errorf("%w: user=%s league=%s", pick.ErrNotLeagueMember, userID, lg.ID)
	}

	if !ev.PicksOpen(s.now()) {
		return nil, 0, fmt.Errorf("%w: event=%s deadline=%s", pick.ErrPicksClosed, ev.ID, ev.PicksDeadline().Format(time.RFC3339))
	}

	totalCost := pick.TotalCost(selected)
	if err := pick.ValidateBudget(totalCost, rules); err != nil {
		return nil, 0, err
	}

	return selected, totalCost, nil
}

func normalizeIDs(raw []string) ([]string, error) {
	out := make([]string, 0, len(raw))
	for _, value := range raw {
		value = strings.TrimSpace(value)
		if value == "" {
			return nil, fmt.Errorf("%w: fighter id must not be empty", ErrInvalidInput)
		}
		out = append(out, value)
	}

	return out, nil
}
