package memory

import (
	"time"

	"github.com/fightpicks/fight-league/internal/domain/event"
	"github.com/fightpicks/fight-league/internal/domain/fighter"
	"github.com/fightpicks/fight-league/internal/domain/league"
)

const (
	LeagueIDOctagonOpen = "octagon-open-2026"
	LeagueIDCageKings   = "cage-kings-2026"

	EventIDClash300 = "ev-clash-300"
	EventIDClash301 = "ev-clash-301"
)

func SeedLeagues() []league.League {
	return []league.League{
		{
			ID:                  LeagueIDOctagonOpen,
			Name:                "Octagon Open",
			BudgetCap:           100,
			MinFightersPerEvent: 1,
			MaxFightersPerEvent: 3,
		},
		{
			ID:                  LeagueIDCageKings,
			Name:                "Cage Kings",
			BudgetCap:           120,
			MinFightersPerEvent: 1,
			MaxFightersPerEvent: 3,
		},
	}
}

func SeedMembers() map[string][]string {
	return map[string][]string{
		LeagueIDOctagonOpen: {"user-ari", "user-bima", "user-candra"},
		LeagueIDCageKings:   {"user-ari", "user-dewi"},
	}
}

func SeedFighters() []fighter.Fighter {
	return []fighter.Fighter{
		{ID: "ftr-volkov", Name: "Sergei Volkov", WeightClass: "Heavyweight", CardPosition: fighter.CardPositionMainEvent, IsChampion: true, IsFavorite: true, Active: true},
		{ID: "ftr-silva", Name: "Rafael Silva", WeightClass: "Heavyweight", CardPosition: fighter.CardPositionMainEvent, Ranking: 2, Active: true},
		{ID: "ftr-okafor", Name: "Emeka Okafor", WeightClass: "Welterweight", CardPosition: fighter.CardPositionCoMain, Ranking: 4, IsFavorite: true, Active: true},
		{ID: "ftr-tanaka", Name: "Kenji Tanaka", WeightClass: "Welterweight", CardPosition: fighter.CardPositionCoMain, Ranking: 7, Active: true},
		{ID: "ftr-moreno", Name: "Diego Moreno", WeightClass: "Lightweight", CardPosition: fighter.CardPositionMainCard, Ranking: 12, IsFavorite: true, Active: true},
		{ID: "ftr-hansen", Name: "Lars Hansen", WeightClass: "Lightweight", CardPosition: fighter.CardPositionMainCard, Active: true},
		{ID: "ftr-petrov", Name: "Ivan Petrov", WeightClass: "Featherweight", CardPosition: fighter.CardPositionPrelims, Ranking: 14, Active: true},
		{ID: "ftr-duarte", Name: "Mateus Duarte", WeightClass: "Featherweight", CardPosition: fighter.CardPositionPrelims, IsFavorite: true, Active: true},
		{ID: "ftr-kim", Name: "Kim Min-jun", WeightClass: "Bantamweight", CardPosition: fighter.CardPositionEarlyPrelims, Active: true},
		{ID: "ftr-ortiz", Name: "Luis Ortiz", WeightClass: "Bantamweight", CardPosition: fighter.CardPositionEarlyPrelims, IsFavorite: true, Active: true},
	}
}

func SeedEvents() []event.Event {
	return []event.Event{
		{
			ID:        EventIDClash300,
			Name:      "Clash 300",
			StartTime: time.Date(2026, 10, 17, 22, 0, 0, 0, time.UTC),
			Status:    event.StatusUpcoming,
		},
		{
			ID:        EventIDClash301,
			Name:      "Clash 301",
			StartTime: time.Date(2026, 11, 14, 22, 0, 0, 0, time.UTC),
			Status:    event.StatusUpcoming,
		},
	}
}

func SeedRosters() map[string][]string {
	return map[string][]string{
		EventIDClash300: {"ftr-volkov", "ftr-silva", "ftr-okafor", "ftr-tanaka", "ftr-moreno", "ftr-hansen"},
		EventIDClash301: {"ftr-petrov", "ftr-duarte", "ftr-kim", "ftr-ortiz"},
	}
}
