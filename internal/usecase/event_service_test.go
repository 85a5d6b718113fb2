package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/golf-scoring/internal/domain/event"
	eventmock "github.com/riskibarqy/golf-scoring/internal/mocks/domain/event"
	"github.com/riskibarqy/golf-scoring/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEventService_CreateAppliesDefaults(t *testing.T) {
	r := seededRepos(t)
	svc := NewEventService(r.events, &sequenceCodes{codes: []string{"NEWEV2"}}, logging.NewNop())

	created, err := svc.Create(t.Context(), CreateEventInput{
		Name:       "  Member Guest ",
		Date:       time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC),
		CourseName: "Pebble Creek",
	})
	require.NoError(t, err)

	assert.Equal(t, "Member Guest", created.Name)
	assert.Equal(t, event.FormatStrokePlay, created.Format)
	assert.Equal(t, event.StatusUpcoming, created.Status)
	assert.Equal(t, 18, created.HoleCount)
	assert.Equal(t, event.DefaultParPerHole(18), created.ParPerHole)
	assert.Equal(t, "NEWEV2", created.ShareCode)
	assert.Equal(t, 72, created.TotalPar())
}

func TestEventService_CreateRejectsBadLayout(t *testing.T) {
	r := seededRepos(t)
	svc := NewEventService(r.events, &sequenceCodes{codes: []string{"NEWEV2"}}, logging.NewNop())

	cases := map[string]CreateEventInput{
		"twelve holes": {HoleCount: 12},
		"short par":    {HoleCount: 9, ParPerHole: []int{4, 4, 3}},
		"zero par":     {HoleCount: 9, ParPerHole: []int{4, 4, 3, 0, 4, 4, 3, 4, 5}},
		"bad format":   {Format: "Skins"},
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			input.Name = "Event"
			input.Date = time.Now()
			input.CourseName = "Course"
			_, err := svc.Create(t.Context(), input)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestEventService_CreateRetriesShareCodeCollision(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := eventmock.NewRepository(t)
	codes := &sequenceCodes{codes: []string{"TAKEN2", "FRESH2"}}
	svc := NewEventService(repo, codes, logging.NewNop())

	repo.
		On("Create", ctx, mock.MatchedBy(func(e event.Event) bool { return e.ShareCode == "TAKEN2" })).
		Return(event.Event{}, event.ErrShareCodeTaken).
		Once()
	repo.
		On("Create", ctx, mock.MatchedBy(func(e event.Event) bool { return e.ShareCode == "FRESH2" })).
		Return(func(_ context.Context, e event.Event) (event.Event, error) {
			e.ID = 42
			return e, nil
		}).
		Once()

	created, err := svc.Create(ctx, CreateEventInput{Name: "Open", Date: time.Now(), CourseName: "Links"})
	if err != nil {
		t.Fatalf("create event: %v", err)
	}
	if created.ID != 42 || created.ShareCode != "FRESH2" {
		t.Fatalf("unexpected event: id=%d code=%s", created.ID, created.ShareCode)
	}
}

func TestEventService_UpdateHoleCountRebuildsPar(t *testing.T) {
	r := seededRepos(t)
	svc := NewEventService(r.events, nil, logging.NewNop())

	before, err := svc.Get(t.Context(), seedScrambleID)
	require.NoError(t, err)

	updated, err := svc.Update(t.Context(), seedScrambleID, UpdateEventInput{HoleCount: ptr(9)})
	require.NoError(t, err)
	assert.Equal(t, 9, updated.HoleCount)
	assert.Equal(t, before.ParPerHole[:9], updated.ParPerHole)

	updated, err = svc.Update(t.Context(), seedScrambleID, UpdateEventInput{HoleCount: ptr(18)})
	require.NoError(t, err)
	assert.Len(t, updated.ParPerHole, 18)
	assert.Equal(t, 4, updated.ParPerHole[17])
}

func TestEventService_RenameLegacyTwelveHoleEvent(t *testing.T) {
	r := seededRepos(t)
	svc := NewEventService(r.events, nil, logging.NewNop())

	legacy, err := r.events.Create(t.Context(), event.Event{
		Name:       "Winter League",
		Date:       time.Date(2023, 12, 2, 0, 0, 0, 0, time.UTC),
		CourseName: "Old Course",
		Format:     event.FormatStrokePlay,
		HoleCount:  12,
		ParPerHole: []int{3, 4, 5, 4, 3, 4, 5, 4, 3, 4, 5, 4},
		ShareCode:  "WNTR23",
		Status:     event.StatusCompleted,
	})
	require.NoError(t, err)

	updated, err := svc.Update(t.Context(), legacy.ID, UpdateEventInput{Name: ptr("Winter League 2023")})
	require.NoError(t, err)
	assert.Equal(t, "Winter League 2023", updated.Name)
	assert.Equal(t, 18, updated.HoleCount)
	assert.Equal(t, []int{3, 4, 5, 4, 3, 4, 5, 4, 3, 4, 5, 4, 4, 4, 4, 4, 4, 4}, updated.ParPerHole)
}

func TestEventService_UpdateMissingEvent(t *testing.T) {
	r := seededRepos(t)
	svc := NewEventService(r.events, nil, logging.NewNop())

	_, err := svc.Update(t.Context(), 404, UpdateEventInput{Name: ptr("x")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEventService_GetByShareCode(t *testing.T) {
	r := seededRepos(t)
	svc := NewEventService(r.events, nil, logging.NewNop())

	item, found, err := svc.GetByShareCode(t.Context(), " sprng2 ")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, seedScrambleID, item.ID)

	for _, code := range []string{"", "ZZZZZZ", "SPRNG", "I0I0I0"} {
		_, found, err := svc.GetByShareCode(t.Context(), code)
		require.NoError(t, err)
		assert.False(t, found, code)
	}
}

func TestEventService_GetByShareCodeSkipsStoreForMalformedCode(t *testing.T) {
	t.Parallel()

	repo := eventmock.NewRepository(t)
	svc := NewEventService(repo, nil, logging.NewNop())

	_, found, err := svc.GetByShareCode(context.Background(), "not-a-code")
	if err != nil || found {
		t.Fatalf("expected absent result, got found=%v err=%v", found, err)
	}
}

func TestEventService_ListNewestFirst(t *testing.T) {
	r := seededRepos(t)
	svc := NewEventService(r.events, nil, logging.NewNop())

	items, err := svc.List(t.Context())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, seedStrokeID, items[0].ID)
	assert.Equal(t, seedScrambleID, items[1].ID)
}

func TestEventService_StoreFailureIsMarked(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := eventmock.NewRepository(t)
	svc := NewEventService(repo, nil, logging.NewNop())

	repo.On("GetByID", ctx, int64(7)).Return(event.Event{}, false, errors.New("connection refused")).Once()

	_, err := svc.Get(ctx, 7)
	if !IsStoreFailure(err) {
		t.Fatalf("expected store failure, got %v", err)
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidInput) {
		t.Fatalf("store failure must not look like a caller error: %v", err)
	}
}

func TestEventService_SetLockedAndDelete(t *testing.T) {
	r := seededRepos(t)
	svc := NewEventService(r.events, nil, logging.NewNop())
	ctx := t.Context()

	locked, err := svc.SetLocked(ctx, seedStrokeID, true)
	require.NoError(t, err)
	assert.True(t, locked.Locked)

	require.NoError(t, svc.Delete(ctx, seedStrokeID))
	_, err = svc.Get(ctx, seedStrokeID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, seedStrokeID), ErrNotFound)
}
