package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/fightpicks/fight-league/internal/domain/event"
	"github.com/fightpicks/fight-league/internal/domain/fighter"
	"github.com/fightpicks/fight-league/internal/usecase"
)

func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListEvents")
	defer span.End()

	items, err := h.eventService.List(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list events failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]eventDTO, 0, len(items))
	for _, item := range items {
		out = append(out, eventToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetEvent")
	defer span.End()

	eventID := strings.TrimSpace(r.PathValue("eventID"))
	view, err := h.eventService.Get(ctx, eventID)
	if err != nil {
		h.logger.WarnContext(ctx, "get event failed", "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, eventViewToDTO(view))
}

func (h *Handler) RegisterEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RegisterEvent")
	defer span.End()

	var req registerEventRequest
	if err := decodeBody(r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	card := make([]usecase.CardEntry, 0, len(req.Card))
	for _, entry := range req.Card {
		card = append(card, usecase.CardEntry{
			FighterID:    entry.FighterID,
			Name:         entry.Name,
			WeightClass:  entry.WeightClass,
			CardPosition: fighter.CardPosition(entry.CardPosition),
			Ranking:      entry.Ranking,
			IsChampion:   entry.IsChampion,
			IsFavorite:   entry.IsFavorite,
			Price:        entry.Price,
		})
	}

	view, err := h.eventService.Register(ctx, usecase.RegisterEventInput{
		Name:      req.Name,
		StartTime: req.StartTime,
		Card:      card,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "register event failed", "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, eventViewToDTO(view))
}

type registerEventRequest struct {
	Name      string             `json:"name" validate:"required,max=200"`
	StartTime time.Time          `json:"start_time" validate:"required"`
	Card      []cardEntryRequest `json:"card" validate:"required,min=2,dive"`
}

type cardEntryRequest struct {
	FighterID    string `json:"fighter_id"`
	Name         string `json:"name" validate:"required,max=200"`
	WeightClass  string `json:"weight_class"`
	CardPosition string `json:"card_position" validate:"required"`
	Ranking      int    `json:"ranking" validate:"min=0"`
	IsChampion   bool   `json:"is_champion"`
	IsFavorite   bool   `json:"is_favorite"`
	Price        int64  `json:"price" validate:"min=0"`
}

type eventDTO struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	StartTimeUTC  string `json:"start_time_utc"`
	PicksDeadline string `json:"picks_deadline_utc"`
	Status        string `json:"status"`
}

type eventViewDTO struct {
	eventDTO
	Fighters []fighterDTO `json:"fighters"`
}

type fighterDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	WeightClass  string `json:"weight_class,omitempty"`
	CardPosition string `json:"card_position"`
	Ranking      int    `json:"ranking,omitempty"`
	IsChampion   bool   `json:"is_champion,omitempty"`
	IsFavorite   bool   `json:"is_favorite,omitempty"`
	Price        int64  `json:"price"`
	Active       bool   `json:"active"`
}

func eventToDTO(v event.Event) eventDTO {
	return eventDTO{
		ID:            v.ID,
		Name:          v.Name,
		StartTimeUTC:  v.StartTime.UTC().Format(time.RFC3339),
		PicksDeadline: v.PicksDeadline().UTC().Format(time.RFC3339),
		Status:        string(v.Status),
	}
}

func eventViewToDTO(view usecase.EventView) eventViewDTO {
	fighters := make([]fighterDTO, 0, len(view.Fighters))
	for _, f := range view.Fighters {
		fighters = append(fighters, fighterToDTO(f))
	}

	return eventViewDTO{
		eventDTO: eventToDTO(view.Event),
		Fighters: fighters,
	}
}

func fighterToDTO(v fighter.Fighter) fighterDTO {
	return fighterDTO{
		ID:           v.ID,
		Name:         v.Name,
		WeightClass:  v.WeightClass,
		CardPosition: string(v.CardPosition),
		Ranking:      v.Ranking,
		IsChampion:   v.IsChampion,
		IsFavorite:   v.IsFavorite,
		Price:        v.Price,
		Active:       v.Active,
	}
}
