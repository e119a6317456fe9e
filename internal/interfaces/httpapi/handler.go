package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/fightpicks/fight-league/internal/platform/logging"
	"github.com/fightpicks/fight-league/internal/usecase"
)

type Handler struct {
	pickService        *usecase.PickService
	eventService       *usecase.EventService
	leaderboardService *usecase.LeaderboardService
	scoringService     *usecase.ScoringService
	sweepService       *usecase.LockSweepService
	logger             *logging.Logger
	validator          *validator.Validate
}

func NewHandler(
	pickService *usecase.PickService,
	eventService *usecase.EventService,
	leaderboardService *usecase.LeaderboardService,
	scoringService *usecase.ScoringService,
	sweepService *usecase.LockSweepService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		pickService:        pickService,
		eventService:       eventService,
		leaderboardService: leaderboardService,
		scoringService:     scoringService,
		sweepService:       sweepService,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// decodeBody decodes a strict JSON request body. allowEmpty treats an empty
// body as the zero value instead of an error.
func decodeBody(r *http.Request, out any, allowEmpty bool) error {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(out); err != nil {
		if allowEmpty && errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
