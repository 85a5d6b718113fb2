package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/golf-scoring/internal/domain/event"
	"github.com/riskibarqy/golf-scoring/internal/domain/leaderboard"
	"github.com/riskibarqy/golf-scoring/internal/domain/score"
	eventmock "github.com/riskibarqy/golf-scoring/internal/mocks/domain/event"
	"github.com/riskibarqy/golf-scoring/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRepairLayouts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := eventmock.NewRepository(t)

	short := event.Event{ID: 1, Name: "Short card", HoleCount: 9, ParPerHole: []int{3, 4}}
	clean := event.Event{ID: 2, Name: "Clean card", HoleCount: 9, ParPerHole: event.DefaultParPerHole(9)}
	repo.On("List", mock.Anything).Return([]event.Event{short, clean}, nil).Once()
	repo.
		On("Update", mock.Anything, mock.MatchedBy(func(ev event.Event) bool {
			return ev.ID == 1 && len(ev.ParPerHole) == 9 && ev.ParPerHole[0] == 3
		})).
		Return(short.Normalized(), nil).
		Once()
	repo.
		On("Update", mock.Anything, mock.MatchedBy(func(ev event.Event) bool { return ev.ID == 2 })).
		Return(clean, nil).
		Once()

	rewritten, err := repairLayouts(ctx, repo)
	require.NoError(t, err)
	assert.Equal(t, 2, rewritten, "already consistent events are rewritten and counted too")
}

func TestRepairLayouts_UpdateFailure(t *testing.T) {
	t.Parallel()

	repo := eventmock.NewRepository(t)
	repo.On("List", mock.Anything).Return([]event.Event{{ID: 1, HoleCount: 18}, {ID: 2, HoleCount: 9}}, nil).Once()
	repo.On("Update", mock.Anything, mock.Anything).Return(event.Event{}, errors.New("connection reset")).Once()

	repaired, err := repairLayouts(context.Background(), repo)
	if err == nil {
		t.Fatalf("expected update failure")
	}
	assert.Zero(t, repaired)
}

func TestPrintBoard(t *testing.T) {
	board := usecase.Board{
		Event: event.Event{Name: "Spring Scramble", Format: event.FormatScramble, HoleCount: 9, ParPerHole: event.DefaultParPerHole(9)},
		Scope: event.ScopeTeam,
		Entries: []leaderboard.Entry{
			{Owner: score.Owner{Kind: score.OwnerTeam, ID: 1}, Name: "Fore Play", Position: 1, Tied: true, Stats: leaderboard.Stats{TotalStrokes: 34, ScoreToPar: -2, HolesPlayed: 9}},
			{Owner: score.Owner{Kind: score.OwnerTeam, ID: 2}, Name: "The Bogey Men", Position: 1, Tied: true, Stats: leaderboard.Stats{TotalStrokes: 34, ScoreToPar: -2, HolesPlayed: 9}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, printBoard(&buf, board))

	out := buf.String()
	assert.Contains(t, out, "Spring Scramble")
	assert.Contains(t, out, "T1")
	assert.Contains(t, out, "The Bogey Men")
	assert.Contains(t, out, "-2")
}
