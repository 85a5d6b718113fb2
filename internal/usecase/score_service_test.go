package usecase

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/golf-scoring/internal/domain/event"
	"github.com/riskibarqy/golf-scoring/internal/domain/score"
	"github.com/riskibarqy/golf-scoring/internal/domain/team"
	"github.com/riskibarqy/golf-scoring/internal/infrastructure/repository/memory"
	eventmock "github.com/riskibarqy/golf-scoring/internal/mocks/domain/event"
	playermock "github.com/riskibarqy/golf-scoring/internal/mocks/domain/player"
	scoremock "github.com/riskibarqy/golf-scoring/internal/mocks/domain/score"
	teammock "github.com/riskibarqy/golf-scoring/internal/mocks/domain/team"
	"github.com/riskibarqy/golf-scoring/internal/platform/logging"
	"github.com/riskibarqy/golf-scoring/internal/platform/scorecard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestScoreService_UpsertStampsParAndReplaces(t *testing.T) {
	r := seededRepos(t)
	svc := r.scoreService()
	ctx := t.Context()

	for _, strokes := range []int{7, 5} {
		_, err := svc.Upsert(ctx, score.UpsertRequest{EventID: seedScrambleID, TeamID: ptr(int64(1)), HoleNumber: 4, Strokes: strokes})
		require.NoError(t, err)
	}

	rows, err := svc.List(ctx, seedScrambleID, score.Filter{TeamID: ptr(int64(1))})
	require.NoError(t, err)
	var hole4 []score.Score
	for _, row := range rows {
		if row.HoleNumber == 4 {
			hole4 = append(hole4, row)
		}
	}
	require.Len(t, hole4, 1)
	assert.Equal(t, 5, hole4[0].Strokes)
	require.NotNil(t, hole4[0].Par)
	assert.Equal(t, 5, *hole4[0].Par, "hole 4 of the seeded layout is a par 5")

	for i := 1; i < len(rows); i++ {
		assert.LessOrEqual(t, rows[i-1].HoleNumber, rows[i].HoleNumber)
	}
}

func TestScoreService_UpsertRejections(t *testing.T) {
	r := seededRepos(t)
	svc := r.scoreService()
	events := NewEventService(r.events, nil, logging.NewNop())
	_, err := events.SetLocked(t.Context(), seedStrokeID, true)
	require.NoError(t, err)

	cases := []struct {
		name string
		req  score.UpsertRequest
		want error
	}{
		{"locked event", score.UpsertRequest{EventID: seedStrokeID, PlayerID: ptr(int64(1)), HoleNumber: 1, Strokes: 4}, ErrEventLocked},
		{"missing event", score.UpsertRequest{EventID: 404, TeamID: ptr(int64(1)), HoleNumber: 1, Strokes: 4}, ErrNotFound},
		{"player on team format", score.UpsertRequest{EventID: seedScrambleID, PlayerID: ptr(int64(1)), HoleNumber: 1, Strokes: 4}, ErrInvalidInput},
		{"both owners", score.UpsertRequest{EventID: seedScrambleID, TeamID: ptr(int64(1)), PlayerID: ptr(int64(1)), HoleNumber: 1, Strokes: 4}, ErrInvalidInput},
		{"no owner", score.UpsertRequest{EventID: seedScrambleID, HoleNumber: 1, Strokes: 4}, ErrInvalidInput},
		{"hole zero", score.UpsertRequest{EventID: seedScrambleID, TeamID: ptr(int64(1)), HoleNumber: 0, Strokes: 4}, ErrInvalidInput},
		{"hole nineteen", score.UpsertRequest{EventID: seedScrambleID, TeamID: ptr(int64(1)), HoleNumber: 19, Strokes: 4}, ErrInvalidInput},
		{"negative strokes", score.UpsertRequest{EventID: seedScrambleID, TeamID: ptr(int64(1)), HoleNumber: 2, Strokes: -1}, ErrInvalidInput},
		{"team of other event", score.UpsertRequest{EventID: seedScrambleID, TeamID: ptr(int64(3)), HoleNumber: 2, Strokes: 4}, ErrNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Upsert(t.Context(), tc.req)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestScoreService_ClearIsIdempotent(t *testing.T) {
	r := seededRepos(t)
	svc := r.scoreService()
	ctx := t.Context()

	require.NoError(t, svc.Clear(ctx, seedScrambleID, ptr(int64(1)), nil, 1))
	require.NoError(t, svc.Clear(ctx, seedScrambleID, ptr(int64(1)), nil, 1))

	rows, err := svc.List(ctx, seedScrambleID, score.Filter{TeamID: ptr(int64(1))})
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	assert.ErrorIs(t, svc.Clear(ctx, seedScrambleID, nil, nil, 1), ErrInvalidInput)
}

func TestScoreService_SubmitScorecardOneRowPerHole(t *testing.T) {
	r := seededRepos(t)
	svc := r.scoreService()
	ctx := t.Context()

	card := make(map[int]int, 9)
	for hole := 1; hole <= 9; hole++ {
		card[hole] = 4
	}
	for range 2 {
		saved, err := svc.SubmitScorecard(ctx, ScorecardInput{EventID: seedStrokeID, PlayerID: ptr(int64(5)), Strokes: card})
		require.NoError(t, err)
		require.Len(t, saved, 9)
		assert.Equal(t, 1, saved[0].HoleNumber)
		assert.Equal(t, 9, saved[8].HoleNumber)
	}

	rows, err := svc.List(ctx, seedStrokeID, score.Filter{PlayerID: ptr(int64(5))})
	require.NoError(t, err)
	assert.Len(t, rows, 9)
}

func TestScoreService_SubmitScorecardValidatesBeforeWriting(t *testing.T) {
	r := seededRepos(t)
	svc := r.scoreService()
	ctx := t.Context()

	_, err := svc.SubmitScorecard(ctx, ScorecardInput{
		EventID:  seedStrokeID,
		PlayerID: ptr(int64(1)),
		Strokes:  map[int]int{1: 4, 2: 5, 10: 4},
	})
	require.ErrorIs(t, err, ErrInvalidInput)

	rows, err := svc.List(ctx, seedStrokeID, score.Filter{})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestScoreService_SubmitScorecardStoreFailure(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	eventRepo := eventmock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)
	playerRepo := playermock.NewRepository(t)
	scoreRepo := scoremock.NewRepository(t)
	svc := NewScoreService(eventRepo, teamRepo, playerRepo, scoreRepo, 2, logging.NewNop())

	eventRepo.
		On("GetByID", mock.Anything, int64(5)).
		Return(event.Event{ID: 5, Format: event.FormatBestBall, HoleCount: 9, ParPerHole: event.DefaultParPerHole(9)}, true, nil).
		Once()
	teamRepo.
		On("GetByID", mock.Anything, int64(5), int64(8)).
		Return(team.Team{ID: 8, EventID: 5}, true, nil).
		Once()
	scoreRepo.
		On("UpsertMany", mock.Anything, mock.MatchedBy(func(items []score.Resolution) bool { return len(items) == 2 })).
		Return(nil, errors.New("deadlock detected")).
		Once()

	_, err := svc.SubmitScorecard(ctx, ScorecardInput{EventID: 5, TeamID: ptr(int64(8)), Strokes: map[int]int{1: 3, 2: 4}})
	if !IsStoreFailure(err) {
		t.Fatalf("expected store failure, got %v", err)
	}
	scoreRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything)
}

// brokenBatch forwards a scorecard batch with an extra write for a missing
// event, so the underlying store rejects the whole batch.
type brokenBatch struct {
	*memory.ScoreRepository
}

func (b brokenBatch) UpsertMany(ctx context.Context, items []score.Resolution) ([]score.Score, error) {
	orphan := score.Resolve(score.UpsertRequest{EventID: 404, PlayerID: ptr(int64(1)), HoleNumber: 1, Strokes: 4})
	return b.ScoreRepository.UpsertMany(ctx, append(items, orphan))
}

func TestScoreService_SubmitScorecardFailureWritesNothing(t *testing.T) {
	r := seededRepos(t)
	svc := NewScoreService(r.events, r.teams, r.players, brokenBatch{r.scores}, 3, logging.NewNop())
	ctx := t.Context()

	_, err := svc.SubmitScorecard(ctx, ScorecardInput{
		EventID:  seedStrokeID,
		PlayerID: ptr(int64(5)),
		Strokes:  map[int]int{1: 4, 2: 5, 3: 3, 4: 4},
	})
	require.True(t, IsStoreFailure(err), "got %v", err)

	rows, err := r.scoreService().List(ctx, seedStrokeID, score.Filter{})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestScoreService_ImportScorecard(t *testing.T) {
	r := seededRepos(t)
	svc := r.scoreService()

	var buf bytes.Buffer
	err := scorecard.WriteXLSX(&buf, "Card",
		[]string{"Twilight Nine", "1", "2", "3", "4", "5", "6", "7", "8", "9"},
		[][]any{
			{"Par", 4, 4, 4, 4, 4, 4, 4, 4, 4},
			{"Palmer, Arnold", 4, 5, 3, 4, "-", "", 4, 4, 4},
			{"nancy lopez", 3, 4, 4, 4, 4, 4, 4, 4, 4},
			{"Walk-up Guest", 5, 5, 5, 5, 5, 5, 5, 5, 5},
		},
	)
	require.NoError(t, err)

	result, err := svc.ImportScorecard(t.Context(), seedStrokeID, &buf)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Rows)
	assert.Equal(t, 16, result.Scores)
	assert.Equal(t, []string{"Walk-up Guest"}, result.Unmatched)

	rows, err := svc.List(t.Context(), seedStrokeID, score.Filter{PlayerID: ptr(int64(1))})
	require.NoError(t, err)
	assert.Len(t, rows, 7)
}

func TestScoreService_ImportScorecardLaterRowWins(t *testing.T) {
	r := seededRepos(t)
	svc := r.scoreService()

	var buf bytes.Buffer
	err := scorecard.WriteXLSX(&buf, "Card",
		[]string{"Twilight Nine", "1", "2", "3"},
		[][]any{
			{"Par", 4, 4, 4},
			{"Palmer, Arnold", 4, 5, 3},
			{"arnold palmer", 6, "", 7},
		},
	)
	require.NoError(t, err)

	result, err := svc.ImportScorecard(t.Context(), seedStrokeID, &buf)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Scores)
	assert.Empty(t, result.Unmatched)

	rows, err := svc.List(t.Context(), seedStrokeID, score.Filter{PlayerID: ptr(int64(1))})
	require.NoError(t, err)
	got := make(map[int]int, len(rows))
	for _, row := range rows {
		got[row.HoleNumber] = row.Strokes
	}
	assert.Equal(t, map[int]int{1: 6, 2: 5, 3: 7}, got)
}

func TestScoreService_ImportScorecardRejectsOversizedCard(t *testing.T) {
	r := seededRepos(t)
	svc := r.scoreService()

	par := []any{"Par"}
	for range 18 {
		par = append(par, 4)
	}
	var buf bytes.Buffer
	require.NoError(t, scorecard.WriteXLSX(&buf, "Card", []string{"Name"}, [][]any{par}))

	_, err := svc.ImportScorecard(t.Context(), seedStrokeID, &buf)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
