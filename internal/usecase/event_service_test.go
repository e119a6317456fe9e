package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/fightpicks/fight-league/internal/domain/fighter"
	"github.com/fightpicks/fight-league/internal/infrastructure/repository/memory"
)

func TestEventService_Register_PricesFromTable(t *testing.T) {
	eventRepo := memory.NewEventRepository(nil)
	fighterRepo := memory.NewFighterRepository(nil)
	svc := NewEventService(eventRepo, fighterRepo, nil, nil)

	view, err := svc.Register(t.Context(), RegisterEventInput{
		Name:      "Clash 302",
		StartTime: testBase.Add(30 * 24 * time.Hour),
		Card: []CardEntry{
			{FighterID: "f-champ", Name: "The Champ", CardPosition: fighter.CardPositionMainEvent, IsChampion: true, IsFavorite: true},
			{FighterID: "f-dog", Name: "The Underdog", CardPosition: fighter.CardPositionMainEvent, Ranking: 2},
			{FighterID: "f-fixed", Name: "Fixed Price", CardPosition: fighter.CardPositionPrelims, Price: 55},
		},
	})
	if err != nil {
		t.Fatalf("register event failed: %v", err)
	}
	if len(view.Fighters) != 3 {
		t.Fatalf("expected 3 fighters on the card, got %d", len(view.Fighters))
	}
	if !view.PicksDeadline.Equal(view.Event.StartTime.Add(-24 * time.Hour)) {
		t.Fatalf("unexpected picks deadline: %s", view.PicksDeadline)
	}

	prices := make(map[string]int64, len(view.Fighters))
	for _, f := range view.Fighters {
		prices[f.ID] = f.Price
	}
	if prices["f-champ"] != 45 {
		t.Fatalf("expected main event favorite champion at 45, got %d", prices["f-champ"])
	}
	if prices["f-dog"] != 38 {
		t.Fatalf("expected main event underdog rank 2 at 38, got %d", prices["f-dog"])
	}
	if prices["f-fixed"] != 55 {
		t.Fatalf("expected explicit price 55 to win, got %d", prices["f-fixed"])
	}
}

func TestEventService_Register_DuplicateName(t *testing.T) {
	eventRepo := memory.NewEventRepository(nil)
	fighterRepo := memory.NewFighterRepository(nil)
	svc := NewEventService(eventRepo, fighterRepo, nil, nil)

	input := RegisterEventInput{
		Name:      "Clash 302",
		StartTime: testBase.Add(30 * 24 * time.Hour),
		Card: []CardEntry{
			{FighterID: "f-1", Name: "Someone", CardPosition: fighter.CardPositionMainCard},
		},
	}
	if _, err := svc.Register(t.Context(), input); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(t.Context(), input); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for duplicate event name, got %v", err)
	}
}

func TestEventService_Get(t *testing.T) {
	eventRepo := memory.NewEventRepository(newTestEvents())
	fighterRepo := memory.NewFighterRepository(newTestFighters())
	if err := eventRepo.SetRoster(t.Context(), "ev-1", []string{"f-a", "f-b"}); err != nil {
		t.Fatalf("seed roster: %v", err)
	}

	svc := NewEventService(eventRepo, fighterRepo, nil, nil)

	view, err := svc.Get(t.Context(), "ev-1")
	if err != nil {
		t.Fatalf("get event failed: %v", err)
	}
	if view.Event.ID != "ev-1" || len(view.Fighters) != 2 {
		t.Fatalf("unexpected event view: %+v", view)
	}

	if _, err := svc.Get(t.Context(), "ev-missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
