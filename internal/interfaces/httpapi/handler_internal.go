package httpapi

import (
	"net/http"
	"strings"

	"github.com/fightpicks/fight-league/internal/domain/scoring"
)

func (h *Handler) IngestEventResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.IngestEventResults")
	defer span.End()

	eventName := strings.TrimSpace(r.PathValue("eventName"))

	var req ingestResultsRequest
	if err := decodeBody(r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	results := make([]scoring.FightResult, 0, len(req.Results))
	for _, item := range req.Results {
		results = append(results, scoring.FightResult{
			FighterID:          item.FighterID,
			Win:                item.Win,
			Method:             scoring.Method(item.Method),
			Decision:           scoring.DecisionKind(item.Decision),
			Round:              item.Round,
			SignificantStrikes: item.SignificantStrikes,
			StrikesLanded:      item.StrikesLanded,
			StrikesAttempted:   item.StrikesAttempted,
			Takedowns:          item.Takedowns,
			Knockdowns:         item.Knockdowns,
			SubmissionAttempts: item.SubmissionAttempts,
		})
	}

	result, err := h.scoringService.IngestEventResults(ctx, eventName, results)
	if err != nil {
		h.logger.WarnContext(ctx, "ingest event results failed", "event_name", eventName, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, ingestResultDTO{
		EventID:          result.EventID,
		RecordsProcessed: result.RecordsProcessed,
		RecordsFailed:    result.RecordsFailed,
		PicksUpdated:     result.PicksUpdated,
		PicksFailed:      result.PicksFailed,
	})
}

func (h *Handler) RunLockSweep(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunLockSweep")
	defer span.End()

	result, err := h.sweepService.Sweep(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "lock sweep failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, lockSweepResultDTO{
		EventsSwept:  result.EventsSwept,
		PicksLocked:  result.PicksLocked,
		EventsFailed: result.EventsFailed,
	})
}

func (h *Handler) LockPick(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LockPick")
	defer span.End()

	pickID := strings.TrimSpace(r.PathValue("pickID"))
	item, err := h.pickService.LockByID(ctx, pickID)
	if err != nil {
		h.logger.WarnContext(ctx, "lock pick failed", "pick_id", pickID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, pickToDTO(ctx, item))
}

type ingestResultsRequest struct {
	Results []fightResultRequest `json:"results" validate:"required,min=1,dive"`
}

type fightResultRequest struct {
	FighterID          string `json:"fighter_id" validate:"required"`
	Win                bool   `json:"win"`
	Method             string `json:"method"`
	Decision           string `json:"decision"`
	Round              int    `json:"round" validate:"min=0"`
	SignificantStrikes int    `json:"significant_strikes" validate:"min=0"`
	StrikesLanded      int    `json:"strikes_landed" validate:"min=0"`
	StrikesAttempted   int    `json:"strikes_attempted" validate:"min=0"`
	Takedowns          int    `json:"takedowns" validate:"min=0"`
	Knockdowns         int    `json:"knockdowns" validate:"min=0"`
	SubmissionAttempts int    `json:"submission_attempts" validate:"min=0"`
}

type ingestResultDTO struct {
	EventID          string `json:"event_id"`
	RecordsProcessed int    `json:"records_processed"`
	RecordsFailed    int    `json:"records_failed"`
	PicksUpdated     int    `json:"picks_updated"`
	PicksFailed      int    `json:"picks_failed"`
}

type lockSweepResultDTO struct {
	EventsSwept  int `json:"events_swept"`
	PicksLocked  int `json:"picks_locked"`
	EventsFailed int `json:"events_failed"`
}
