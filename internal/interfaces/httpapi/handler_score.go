package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/riskibarqy/golf-scoring/internal/domain/score"
	"github.com/riskibarqy/golf-scoring/internal/usecase"
)

const scorecardFormField = "file"

type upsertScoreRequest struct {
	TeamID     *int64 `json:"team_id" validate:"omitempty,gt=0"`
	PlayerID   *int64 `json:"player_id" validate:"omitempty,gt=0"`
	HoleNumber int    `json:"hole_number"`
	Strokes    *int   `json:"strokes" validate:"required"`
	Par        *int   `json:"par" validate:"omitempty,min=1"`
}

type holeStrokesRequest struct {
	Hole    int `json:"hole"`
	Strokes int `json:"strokes"`
}

type scorecardRequest struct {
	TeamID   *int64               `json:"team_id" validate:"omitempty,gt=0"`
	PlayerID *int64               `json:"player_id" validate:"omitempty,gt=0"`
	Holes    []holeStrokesRequest `json:"holes" validate:"required,min=1,max=18"`
}

func (req upsertScoreRequest) toUpsert(eventID int64) score.UpsertRequest {
	return score.UpsertRequest{
		EventID:    eventID,
		TeamID:     req.TeamID,
		PlayerID:   req.PlayerID,
		HoleNumber: req.HoleNumber,
		Strokes:    *req.Strokes,
		Par:        req.Par,
	}
}

func (req scorecardRequest) strokesByHole() (map[int]int, error) {
	out := make(map[int]int, len(req.Holes))
	for _, h := range req.Holes {
		if _, dup := out[h.Hole]; dup {
			return nil, fmt.Errorf("%w: hole %d appears more than once", usecase.ErrInvalidInput, h.Hole)
		}
		out[h.Hole] = h.Strokes
	}
	return out, nil
}

func (h *Handler) ListScores(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListScores")
	defer span.End()

	eventID, err := pathID(r, "eventID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	teamID, err := queryID(r, "team_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	playerID, err := queryID(r, "player_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	scores, err := h.scoreService.List(ctx, eventID, score.Filter{TeamID: teamID, PlayerID: playerID})
	if err != nil {
		h.fail(ctx, w, "list scores failed", err, "event_id", eventID)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, scoresToDTO(scores))
}

func (h *Handler) UpsertScore(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "UpsertScore")
	defer span.End()

	eventID, err := pathID(r, "eventID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	h.upsertScore(w, r.WithContext(ctx), eventID)
}

func (h *Handler) upsertScore(w http.ResponseWriter, r *http.Request, eventID int64) {
	ctx := r.Context()

	var req upsertScoreRequest
	if err := h.decodeAndValidate(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	saved, err := h.scoreService.Upsert(ctx, req.toUpsert(eventID))
	if err != nil {
		h.fail(ctx, w, "upsert score failed", err, "event_id", eventID, "hole", req.HoleNumber)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, scoreToDTO(saved))
}

func (h *Handler) ClearScore(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ClearScore")
	defer span.End()

	eventID, err := pathID(r, "eventID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	teamID, err := queryID(r, "team_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	playerID, err := queryID(r, "player_id")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	hole, err := queryInt(r, "hole", 0, 1, 18)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if hole == 0 {
		writeError(ctx, w, fmt.Errorf("%w: hole is required", usecase.ErrInvalidInput))
		return
	}

	if err := h.scoreService.Clear(ctx, eventID, teamID, playerID, hole); err != nil {
		h.fail(ctx, w, "clear score failed", err, "event_id", eventID, "hole", hole)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) SubmitScorecard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "SubmitScorecard")
	defer span.End()

	eventID, err := pathID(r, "eventID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req scorecardRequest
	if err := h.decodeAndValidate(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	strokes, err := req.strokesByHole()
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	saved, err := h.scoreService.SubmitScorecard(ctx, usecase.ScorecardInput{
		EventID:  eventID,
		TeamID:   req.TeamID,
		PlayerID: req.PlayerID,
		Strokes:  strokes,
	})
	if err != nil {
		h.fail(ctx, w, "submit scorecard failed", err, "event_id", eventID)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, scoresToDTO(saved))
}

// ImportScorecard accepts a multipart upload with the xlsx in the "file"
// field.
func (h *Handler) ImportScorecard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ImportScorecard")
	defer span.End()

	eventID, err := pathID(r, "eventID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if !errors.As(err, &tooLarge) {
			err = fmt.Errorf("%w: invalid multipart payload: %v", usecase.ErrInvalidInput, err)
		}
		h.fail(ctx, w, "parse scorecard upload failed", err, "event_id", eventID)
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, _, err := r.FormFile(scorecardFormField)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: multipart field %q is required", usecase.ErrInvalidInput, scorecardFormField))
		return
	}
	defer file.Close()

	result, err := h.scoreService.ImportScorecard(ctx, eventID, file)
	if err != nil {
		h.fail(ctx, w, "import scorecard failed", err, "event_id", eventID)
		return
	}
	if result.Unmatched == nil {
		result.Unmatched = []string{}
	}
	writeSuccess(ctx, w, http.StatusOK, result)
}
