package usecase

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/riskibarqy/golf-scoring/internal/domain/event"
	idgen "github.com/riskibarqy/golf-scoring/internal/platform/id"
	"github.com/riskibarqy/golf-scoring/internal/platform/logging"
)

const shareCodeAttempts = 5

type CreateEventInput struct {
	Name       string
	Date       time.Time
	CourseName string
	Tees       string
	Format     event.Format
	HoleCount  int
	ParPerHole []int
	Status     event.Status
}

// UpdateEventInput is a patch: nil fields keep the stored value.
type UpdateEventInput struct {
	Name       *string
	Date       *time.Time
	CourseName *string
	Tees       *string
	Format     *event.Format
	HoleCount  *int
	ParPerHole []int
	Status     *event.Status
}

type EventService struct {
	eventRepo event.Repository
	codes     idgen.Generator
	logger    *logging.Logger
}

func NewEventService(eventRepo event.Repository, codes idgen.Generator, logger *logging.Logger) *EventService {
	if codes == nil {
		codes = event.NewShareCodeGenerator()
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &EventService{
		eventRepo: eventRepo,
		codes:     codes,
		logger:    logger,
	}
}

// List returns every event, most recent date first.
func (s *EventService) List(ctx context.Context) ([]event.Event, error) {
	items, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, storeError("list events", err)
	}

	slices.SortStableFunc(items, func(a, b event.Event) int {
		if c := b.Date.Compare(a.Date); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	return items, nil
}

func (s *EventService) Get(ctx context.Context, eventID int64) (event.Event, error) {
	return s.require(ctx, eventID)
}

// GetByShareCode looks a code up case-insensitively. An unknown or malformed
// code is reported as found=false.
func (s *EventService) GetByShareCode(ctx context.Context, code string) (event.Event, bool, error) {
	code = event.CanonicalShareCode(code)
	if !event.ValidShareCode(code) {
		return event.Event{}, false, nil
	}

	item, exists, err := s.eventRepo.GetByShareCode(ctx, code)
	if err != nil {
		return event.Event{}, false, storeError("get event by share code", err)
	}
	return item, exists, nil
}

func (s *EventService) Create(ctx context.Context, input CreateEventInput) (event.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.Create", 0)
	var err error
	defer func() { finishSpan(span, err) }()

	item := event.Event{
		Name:       strings.TrimSpace(input.Name),
		Date:       input.Date,
		CourseName: strings.TrimSpace(input.CourseName),
		Tees:       strings.TrimSpace(input.Tees),
		Format:     input.Format,
		HoleCount:  input.HoleCount,
		ParPerHole: slices.Clone(input.ParPerHole),
		Status:     input.Status,
	}
	if item.Format == "" {
		item.Format = event.FormatStrokePlay
	}
	if item.Status == "" {
		item.Status = event.StatusUpcoming
	}
	if item.HoleCount == 0 {
		item.HoleCount = event.MaxHoles
	}
	if len(item.ParPerHole) == 0 {
		item.ParPerHole = event.DefaultParPerHole(item.HoleCount)
	}

	var created event.Event
	for attempt := 1; ; attempt++ {
		item.ShareCode, err = s.codes.NewID()
		if err != nil {
			err = fmt.Errorf("generate share code: %w", err)
			return event.Event{}, err
		}
		if err = item.Validate(); err != nil {
			err = fmt.Errorf("%w: %v", ErrInvalidInput, err)
			return event.Event{}, err
		}

		created, err = s.eventRepo.Create(ctx, item)
		if err == nil {
			break
		}
		if !errors.Is(err, event.ErrShareCodeTaken) || attempt == shareCodeAttempts {
			err = storeError("create event", err)
			return event.Event{}, err
		}
		s.logger.WarnContext(ctx, "share code collision, retrying", "share_code", item.ShareCode, "attempt", attempt)
	}

	s.logger.InfoContext(ctx, "event created", "event_id", created.ID, "share_code", created.ShareCode)
	return created, nil
}

func (s *EventService) Update(ctx context.Context, eventID int64, input UpdateEventInput) (event.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventService.Update", eventID)
	var err error
	defer func() { finishSpan(span, err) }()

	var item event.Event
	item, err = s.require(ctx, eventID)
	if err != nil {
		return event.Event{}, err
	}

	if input.Name != nil {
		item.Name = strings.TrimSpace(*input.Name)
	}
	if input.Date != nil {
		item.Date = *input.Date
	}
	if input.CourseName != nil {
		item.CourseName = strings.TrimSpace(*input.CourseName)
	}
	if input.Tees != nil {
		item.Tees = strings.TrimSpace(*input.Tees)
	}
	if input.Format != nil {
		item.Format = *input.Format
	}
	if input.Status != nil {
		item.Status = *input.Status
	}
	switch {
	case input.ParPerHole != nil:
		item.ParPerHole = slices.Clone(input.ParPerHole)
		if input.HoleCount != nil {
			item.HoleCount = *input.HoleCount
		}
	case input.HoleCount != nil && *input.HoleCount != item.HoleCount:
		item.HoleCount = *input.HoleCount
		item.ParPerHole = event.NormalizeParPerHole(item.HoleCount, item.ParPerHole)
	}

	if err = item.Validate(); err != nil {
		err = fmt.Errorf("%w: %v", ErrInvalidInput, err)
		return event.Event{}, err
	}

	var updated event.Event
	updated, err = s.eventRepo.Update(ctx, item)
	if err != nil {
		err = storeError("update event", err)
		return event.Event{}, err
	}

	s.logger.InfoContext(ctx, "event updated", "event_id", updated.ID)
	return updated, nil
}

// SetLocked freezes or reopens score entry for an event.
func (s *EventService) SetLocked(ctx context.Context, eventID int64, locked bool) (event.Event, error) {
	item, err := s.require(ctx, eventID)
	if err != nil {
		return event.Event{}, err
	}
	if item.Locked == locked {
		return item, nil
	}

	item.Locked = locked
	updated, err := s.eventRepo.Update(ctx, item)
	if err != nil {
		return event.Event{}, storeError("set event lock", err)
	}

	s.logger.InfoContext(ctx, "event lock changed", "event_id", eventID, "locked", locked)
	return updated, nil
}

// Delete removes the event; its teams and scores go with it.
func (s *EventService) Delete(ctx context.Context, eventID int64) error {
	if _, err := s.require(ctx, eventID); err != nil {
		return err
	}
	if err := s.eventRepo.Delete(ctx, eventID); err != nil {
		return storeError("delete event", err)
	}

	s.logger.InfoContext(ctx, "event deleted", "event_id", eventID)
	return nil
}

func (s *EventService) require(ctx context.Context, eventID int64) (event.Event, error) {
	return requireEvent(ctx, s.eventRepo, eventID)
}

func requireEvent(ctx context.Context, repo event.Repository, eventID int64) (event.Event, error) {
	if eventID <= 0 {
		return event.Event{}, fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}
	item, exists, err := repo.GetByID(ctx, eventID)
	if err != nil {
		return event.Event{}, storeError("get event", err)
	}
	if !exists {
		return event.Event{}, fmt.Errorf("%w: event=%d", ErrNotFound, eventID)
	}
	return item, nil
}

// requireWritableEvent is requireEvent plus the lock check used before any
// score mutation.
func requireWritableEvent(ctx context.Context, repo event.Repository, eventID int64) (event.Event, error) {
	item, err := requireEvent(ctx, repo, eventID)
	if err != nil {
		return event.Event{}, err
	}
	if item.Locked {
		return event.Event{}, fmt.Errorf("%w: event=%d", ErrEventLocked, eventID)
	}
	return item, nil
}
