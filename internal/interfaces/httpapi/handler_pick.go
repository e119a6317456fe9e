package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/fightpicks/fight-league/internal/domain/pick"
	"github.com/fightpicks/fight-league/internal/usecase"
)

func (h *Handler) SubmitPick(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitPick")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	eventID := strings.TrimSpace(r.PathValue("eventID"))

	var req submitPickRequest
	if err := decodeBody(r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.pickService.Submit(ctx, usecase.SubmitPickInput{
		UserID:     principal.UserID,
		LeagueID:   leagueID,
		EventID:    eventID,
		FighterIDs: req.FighterIDs,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "submit pick failed",
			"user_id", principal.UserID, "league_id", leagueID, "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, pickToDTO(ctx, item))
}

func (h *Handler) GetMyPick(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMyPick")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	eventID := strings.TrimSpace(r.PathValue("eventID"))

	item, err := h.pickService.Get(ctx, principal.UserID, leagueID, eventID)
	if err != nil {
		h.logger.WarnContext(ctx, "get pick failed",
			"user_id", principal.UserID, "league_id", leagueID, "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, pickToDTO(ctx, item))
}

func (h *Handler) DeleteMyPick(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMyPick")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	eventID := strings.TrimSpace(r.PathValue("eventID"))

	if err := h.pickService.Delete(ctx, principal.UserID, leagueID, eventID); err != nil {
		h.logger.WarnContext(ctx, "delete pick failed",
			"user_id", principal.UserID, "league_id", leagueID, "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) ListMyPicks(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMyPicks")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	items, err := h.pickService.ListByUserAndLeague(ctx, principal.UserID, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "list picks failed",
			"user_id", principal.UserID, "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]pickDTO, 0, len(items))
	for _, item := range items {
		out = append(out, pickToDTO(ctx, item))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

type submitPickRequest struct {
	FighterIDs []string `json:"fighter_ids" validate:"required,min=1,dive,required"`
}

type pickDTO struct {
	ID              string   `json:"id,omitempty"`
	UserID          string   `json:"user_id"`
	LeagueID        string   `json:"league_id"`
	EventID         string   `json:"event_id"`
	FighterIDs      []string `json:"fighter_ids"`
	TotalCost       int64    `json:"total_cost"`
	RemainingBudget int64    `json:"remaining_budget"`
	EventPoints     int      `json:"event_points"`
	Locked          bool     `json:"locked"`
	CreatedAtUTC    string   `json:"created_at_utc,omitempty"`
	UpdatedAtUTC    string   `json:"updated_at_utc,omitempty"`
}

func pickToDTO(ctx context.Context, v pick.Pick) pickDTO {
	dto := pickDTO{
		ID:              v.ID,
		UserID:          v.UserID,
		LeagueID:        v.LeagueID,
		EventID:         v.EventID,
		FighterIDs:      append([]string(nil), v.FighterIDs...),
		TotalCost:       v.TotalCost,
		RemainingBudget: v.RemainingBudget,
		EventPoints:     v.EventPoints,
		Locked:          v.Locked,
	}
	if !v.CreatedAt.IsZero() {
		dto.CreatedAtUTC = v.CreatedAt.UTC().Format(time.RFC3339)
	}
	if !v.UpdatedAt.IsZero() {
		dto.UpdatedAtUTC = v.UpdatedAt.UTC().Format(time.RFC3339)
	}

	return dto
}
