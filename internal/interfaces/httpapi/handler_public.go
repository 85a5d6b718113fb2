package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/golf-scoring/internal/domain/event"
	"github.com/riskibarqy/golf-scoring/internal/usecase"
)

// Share-code routes let players score without an account. They expose the
// same operations as the event routes, keyed by code instead of id.

func (h *Handler) GetPublicEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetPublicEvent")
	defer span.End()

	ev, err := h.resolveShareCode(ctx, r)
	if err != nil {
		h.fail(ctx, w, "resolve share code failed", err)
		return
	}

	teams, err := h.teamService.ListByEvent(ctx, ev.ID)
	if err != nil {
		h.fail(ctx, w, "list teams failed", err, "event_id", ev.ID)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, publicEventDTO{Event: eventToDTO(ev), Teams: teamsToDTO(teams)})
}

func (h *Handler) UpsertPublicScore(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "UpsertPublicScore")
	defer span.End()

	ev, err := h.resolveShareCode(ctx, r)
	if err != nil {
		h.fail(ctx, w, "resolve share code failed", err)
		return
	}
	h.upsertScore(w, r.WithContext(ctx), ev.ID)
}

func (h *Handler) GetPublicLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetPublicLeaderboard")
	defer span.End()

	ev, err := h.resolveShareCode(ctx, r)
	if err != nil {
		h.fail(ctx, w, "resolve share code failed", err)
		return
	}
	h.writeLeaderboard(w, r.WithContext(ctx), ev.ID)
}

func (h *Handler) resolveShareCode(ctx context.Context, r *http.Request) (event.Event, error) {
	code := r.PathValue("shareCode")
	ev, found, err := h.eventService.GetByShareCode(ctx, code)
	if err != nil {
		return event.Event{}, err
	}
	if !found {
		return event.Event{}, fmt.Errorf("%w: no event for share code %q", usecase.ErrNotFound, event.CanonicalShareCode(code))
	}
	return ev, nil
}
