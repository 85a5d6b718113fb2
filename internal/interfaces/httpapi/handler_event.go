package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/riskibarqy/golf-scoring/internal/domain/event"
	"github.com/riskibarqy/golf-scoring/internal/usecase"
)

type createEventRequest struct {
	Name       string `json:"name" validate:"required,max=200"`
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
	CourseName string `json:"course_name" validate:"max=200"`
	Tees       string `json:"tees" validate:"max=50"`
	Format     string `json:"format"`
	HoleCount  int    `json:"hole_count" validate:"gte=0"`
	ParPerHole []int  `json:"par_per_hole" validate:"max=18"`
	Status     string `json:"status"`
}

type updateEventRequest struct {
	Name       *string `json:"name" validate:"omitempty,max=200"`
	Date       *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	CourseName *string `json:"course_name" validate:"omitempty,max=200"`
	Tees       *string `json:"tees" validate:"omitempty,max=50"`
	Format     *string `json:"format"`
	HoleCount  *int    `json:"hole_count" validate:"omitempty,gte=0"`
	ParPerHole []int   `json:"par_per_hole" validate:"omitempty,max=18"`
	Status     *string `json:"status"`
}

type lockEventRequest struct {
	Locked *bool `json:"locked" validate:"required"`
}

func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListEvents")
	defer span.End()

	items, err := h.eventService.List(ctx)
	if err != nil {
		h.fail(ctx, w, "list events failed", err)
		return
	}

	out := make([]eventDTO, 0, len(items))
	for _, item := range items {
		out = append(out, eventToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetEvent")
	defer span.End()

	eventID, err := pathID(r, "eventID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.eventService.Get(ctx, eventID)
	if err != nil {
		h.fail(ctx, w, "get event failed", err, "event_id", eventID)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, eventToDTO(item))
}

func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "CreateEvent")
	defer span.End()

	var req createEventRequest
	if err := h.decodeAndValidate(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.eventService.Create(ctx, usecase.CreateEventInput{
		Name:       req.Name,
		Date:       date,
		CourseName: req.CourseName,
		Tees:       req.Tees,
		Format:     event.Format(req.Format),
		HoleCount:  req.HoleCount,
		ParPerHole: req.ParPerHole,
		Status:     event.Status(req.Status),
	})
	if err != nil {
		h.fail(ctx, w, "create event failed", err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, eventToDTO(created))
}

func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "UpdateEvent")
	defer span.End()

	eventID, err := pathID(r, "eventID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req updateEventRequest
	if err := h.decodeAndValidate(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	input := usecase.UpdateEventInput{
		Name:       req.Name,
		CourseName: req.CourseName,
		Tees:       req.Tees,
		HoleCount:  req.HoleCount,
		ParPerHole: req.ParPerHole,
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		input.Date = &date
	}
	if req.Format != nil {
		format := event.Format(*req.Format)
		input.Format = &format
	}
	if req.Status != nil {
		status := event.Status(*req.Status)
		input.Status = &status
	}

	updated, err := h.eventService.Update(ctx, eventID, input)
	if err != nil {
		h.fail(ctx, w, "update event failed", err, "event_id", eventID)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, eventToDTO(updated))
}

func (h *Handler) SetEventLock(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "SetEventLock")
	defer span.End()

	eventID, err := pathID(r, "eventID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	var req lockEventRequest
	if err := h.decodeAndValidate(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.eventService.SetLocked(ctx, eventID, *req.Locked)
	if err != nil {
		h.fail(ctx, w, "set event lock failed", err, "event_id", eventID)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, eventToDTO(updated))
}

func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "DeleteEvent")
	defer span.End()

	eventID, err := pathID(r, "eventID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.eventService.Delete(ctx, eventID); err != nil {
		h.fail(ctx, w, "delete event failed", err, "event_id", eventID)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func parseDate(raw string) (time.Time, error) {
	date, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be YYYY-MM-DD", usecase.ErrInvalidInput)
	}
	return date, nil
}
