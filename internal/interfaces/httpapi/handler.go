package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/golf-scoring/internal/platform/logging"
	"github.com/riskibarqy/golf-scoring/internal/usecase"
)

const (
	maxJSONBodyBytes      = 1 << 20
	defaultMaxUploadBytes = 2 << 20
)

type Handler struct {
	eventService       *usecase.EventService
	teamService        *usecase.TeamService
	playerService      *usecase.PlayerService
	scoreService       *usecase.ScoreService
	leaderboardService *usecase.LeaderboardService
	logger             *logging.Logger
	validator          *validator.Validate
	maxUploadBytes     int64
}

func NewHandler(
	eventService *usecase.EventService,
	teamService *usecase.TeamService,
	playerService *usecase.PlayerService,
	scoreService *usecase.ScoreService,
	leaderboardService *usecase.LeaderboardService,
	logger *logging.Logger,
	maxUploadBytes int64,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if maxUploadBytes <= 0 {
		maxUploadBytes = defaultMaxUploadBytes
	}

	return &Handler{
		eventService:       eventService,
		teamService:        teamService,
		playerService:      playerService,
		scoreService:       scoreService,
		leaderboardService: leaderboardService,
		logger:             logger.Named("httpapi"),
		validator:          validator.New(validator.WithRequiredStructEnabled()),
		maxUploadBytes:     maxUploadBytes,
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// fail logs at a level matching the mapped status and writes the error
// envelope.
func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error, args ...any) {
	args = append(args, "error", err)
	if mapError(ctx, err).HTTPStatus >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, msg, args...)
	} else {
		h.logger.WarnContext(ctx, msg, args...)
	}
	writeError(ctx, w, err)
}

func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	decoder := sonic.ConfigDefault.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			return err
		case errors.Is(err, io.EOF):
			return fmt.Errorf("%w: request body is required", usecase.ErrInvalidInput)
		default:
			return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
		}
	}
	return nil
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// decodeAndValidate is the common path for JSON request bodies.
func (h *Handler) decodeAndValidate(ctx context.Context, w http.ResponseWriter, r *http.Request, dst any) error {
	if err := h.decodeJSON(w, r, dst); err != nil {
		return err
	}
	return h.validateRequest(ctx, dst)
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}
	return id, nil
}

func queryID(r *http.Request, name string) (*int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}
	return &id, nil
}

func queryInt(r *http.Request, name string, fallback, lo, hi int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < lo || v > hi {
		return 0, fmt.Errorf("%w: %s must be between %d and %d", usecase.ErrInvalidInput, name, lo, hi)
	}
	return v, nil
}
