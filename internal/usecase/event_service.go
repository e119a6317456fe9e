package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fightpicks/fight-league/internal/domain/event"
	"github.com/fightpicks/fight-league/internal/domain/fighter"
	"github.com/fightpicks/fight-league/internal/platform/id"
	"github.com/fightpicks/fight-league/internal/platform/logging"
)

type CardEntry struct {
	FighterID    string
	Name         string
	WeightClass  string
	CardPosition fighter.CardPosition
	Ranking      int
	IsChampion   bool
	IsFavorite   bool
	Price        int64
}

type RegisterEventInput struct {
	Name      string
	StartTime time.Time
	Card      []CardEntry
}

// EventView is an event with its fight card and derived picks deadline.
type EventView struct {
	Event         event.Event
	PicksDeadline time.Time
	Fighters      []fighter.Fighter
}

// EventService exposes the event directory and registers new fight cards,
// pricing fighters through the lookup table when no explicit price is given.
type EventService struct {
	eventRepo   event.Repository
	fighterRepo fighter.Repository
	idGen       id.Generator
	logger      *logging.Logger
	now         func() time.Time
}

func NewEventService(
	eventRepo event.Repository,
	fighterRepo fighter.Repository,
	idGen id.Generator,
	logger *logging.Logger,
) *EventService {
	if idGen == nil {
		idGen = id.NewRandomGenerator()
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &EventService{
		eventRepo:   eventRepo,
		fighterRepo: fighterRepo,
		idGen:       idGen,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *EventService) List(ctx context.Context) ([]event.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "EventService.List")
	defer span.End()

	items, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].StartTime.Before(items[j].StartTime)
	})

	return items, nil
}

func (s *EventService) Get(ctx context.Context, eventID string) (EventView, error) {
	ctx, span := startUsecaseSpan(ctx, "EventService.Get")
	defer span.End()

	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return EventView{}, fmt.Errorf("%w: event_id is required", ErrInvalidInput)
	}

	ev, exists, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return EventView{}, fmt.Errorf("get event: %w", err)
	}
	if !exists {
		return EventView{}, fmt.Errorf("%w: event %s", ErrNotFound, eventID)
	}

	rosterIDs, err := s.eventRepo.RosterFighterIDs(ctx, eventID)
	if err != nil {
		return EventView{}, fmt.Errorf("get event roster: %w", err)
	}

	fighters, err := s.fighterRepo.ListByIDs(ctx, rosterIDs)
	if err != nil {
		return EventView{}, fmt.Errorf("list roster fighters: %w", err)
	}
	sort.SliceStable(fighters, func(i, j int) bool {
		return fighters[i].Name < fighters[j].Name
	})

	return EventView{
		Event:         ev,
		PicksDeadline: ev.PicksDeadline(),
		Fighters:      fighters,
	}, nil
}

// Register creates an upcoming event together with its fight card. Fighters
// without an explicit price get the table price for their slot and rank.
func (s *EventService) Register(ctx context.Context, input RegisterEventInput) (EventView, error) {
	ctx, span := startUsecaseSpan(ctx, "EventService.Register")
	defer span.End()

	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return EventView{}, fmt.Errorf("%w: event name is required", ErrInvalidInput)
	}
	if input.StartTime.IsZero() {
		return EventView{}, fmt.Errorf("%w: event start time is required", ErrInvalidInput)
	}
	if len(input.Card) == 0 {
		return EventView{}, fmt.Errorf("%w: fight card is required", ErrInvalidInput)
	}

	if existing, exists, err := s.eventRepo.GetByName(ctx, input.Name); err != nil {
		return EventView{}, fmt.Errorf("check event name: %w", err)
	} else if exists {
		return EventView{}, fmt.Errorf("%w: event %q already exists (%s)", ErrInvalidInput, input.Name, existing.ID)
	}

	now := s.now()
	eventID, err := s.idGen.NewID()
	if err != nil {
		return EventView{}, fmt.Errorf("generate event id: %w", err)
	}

	ev := event.Event{
		ID:        eventID,
		Name:      input.Name,
		StartTime: input.StartTime,
		Status:    event.StatusUpcoming,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := ev.Validate(); err != nil {
		return EventView{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	fighters := make([]fighter.Fighter, 0, len(input.Card))
	rosterIDs := make([]string, 0, len(input.Card))
	for _, entry := range input.Card {
		f := fighter.Fighter{
			ID:           strings.TrimSpace(entry.FighterID),
			Name:         strings.TrimSpace(entry.Name),
			WeightClass:  strings.TrimSpace(entry.WeightClass),
			CardPosition: entry.CardPosition,
			Ranking:      entry.Ranking,
			IsChampion:   entry.IsChampion,
			IsFavorite:   entry.IsFavorite,
			Price:        entry.Price,
			Active:       true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if f.ID == "" {
			newID, idErr := s.idGen.NewID()
			if idErr != nil {
				return EventView{}, fmt.Errorf("generate fighter id: %w", idErr)
			}
			f.ID = newID
		}
		f.Price = fighter.PriceOf(f)
		if err := f.Validate(); err != nil {
			return EventView{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		fighters = append(fighters, f)
		rosterIDs = append(rosterIDs, f.ID)
	}

	for _, f := range fighters {
		if err := s.fighterRepo.Upsert(ctx, f); err != nil {
			return EventView{}, fmt.Errorf("upsert fighter %s: %w", f.ID, err)
		}
	}
	if err := s.eventRepo.Upsert(ctx, ev); err != nil {
		return EventView{}, fmt.Errorf("upsert event: %w", err)
	}
	if err := s.eventRepo.SetRoster(ctx, ev.ID, rosterIDs); err != nil {
		return EventView{}, fmt.Errorf("set event roster: %w", err)
	}

	s.logger.InfoContext(ctx, "event registered",
		"event_id", ev.ID,
		"name", ev.Name,
		"card_size", len(fighters),
	)

	return EventView{
		Event:         ev,
		PicksDeadline: ev.PicksDeadline(),
		Fighters:      fighters,
	}, nil
}
