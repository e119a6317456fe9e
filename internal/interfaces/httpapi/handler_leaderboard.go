package httpapi

import (
	"net/http"
	"strings"

	"github.com/fightpicks/fight-league/internal/usecase"
)

func (h *Handler) GetEventLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetEventLeaderboard")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	eventID := strings.TrimSpace(r.PathValue("eventID"))

	entries, err := h.leaderboardService.PerEvent(ctx, leagueID, eventID)
	if err != nil {
		h.logger.WarnContext(ctx, "event leaderboard failed",
			"league_id", leagueID, "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leaderboardToDTO(entries))
}

func (h *Handler) GetGlobalLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGlobalLeaderboard")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))

	entries, err := h.leaderboardService.Global(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "global leaderboard failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leaderboardToDTO(entries))
}

type leaderboardEntryDTO struct {
	Position int    `json:"position"`
	UserID   string `json:"user_id"`
	Points   int    `json:"points"`
}

func leaderboardToDTO(entries []usecase.LeaderboardEntry) []leaderboardEntryDTO {
	out := make([]leaderboardEntryDTO, 0, len(entries))
	for _, entry := range entries {
		out = append(out, leaderboardEntryDTO{
			Position: entry.Position,
			UserID:   entry.UserID,
			Points:   entry.Points,
		})
	}

	return out
}
