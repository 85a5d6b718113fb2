package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/golf-scoring/internal/domain/event"
	"github.com/riskibarqy/golf-scoring/internal/domain/player"
	"github.com/riskibarqy/golf-scoring/internal/domain/team"
	eventmock "github.com/riskibarqy/golf-scoring/internal/mocks/domain/event"
	playermock "github.com/riskibarqy/golf-scoring/internal/mocks/domain/player"
	teammock "github.com/riskibarqy/golf-scoring/internal/mocks/domain/team"
	"github.com/riskibarqy/golf-scoring/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTeamService_CreateRejectsPlayersOnOtherTeams(t *testing.T) {
	r := seededRepos(t)
	svc := NewTeamService(r.events, r.teams, r.players, logging.NewNop())

	_, err := svc.Create(t.Context(), SaveTeamInput{
		EventID:   seedScrambleID,
		Name:      "Late Entry",
		PlayerIDs: []int64{6, 2, 5},
	})

	var conflict *team.RosterConflictError
	require.True(t, errors.As(err, &conflict), "got %v", err)
	assert.Equal(t, []int64{6, 2, 5}, conflict.PlayerIDs)
	assert.ErrorIs(t, err, team.ErrRosterConflict)
	assert.NotErrorIs(t, err, ErrInvalidInput)
	assert.False(t, IsStoreFailure(err))
}

func TestTeamService_UpdateOwnRosterIsNotAConflict(t *testing.T) {
	r := seededRepos(t)
	svc := NewTeamService(r.events, r.teams, r.players, logging.NewNop())

	updated, err := svc.Update(t.Context(), 1, SaveTeamInput{
		EventID:      seedScrambleID,
		Name:         "The Bogey Men",
		PlayerIDs:    []int64{4, 3, 2, 1},
		StartingHole: ptr(18),
	})
	require.NoError(t, err)
	assert.Equal(t, [team.MaxPlayers]int64{4, 3, 2, 1}, updated.Slots)
}

func TestTeamService_CreateValidation(t *testing.T) {
	r := seededRepos(t)
	svc := NewTeamService(r.events, r.teams, r.players, logging.NewNop())

	cases := []struct {
		name  string
		input SaveTeamInput
		want  error
	}{
		{"blank name", SaveTeamInput{EventID: seedStrokeID, Name: "  ", PlayerIDs: []int64{2}}, ErrInvalidInput},
		{"no players", SaveTeamInput{EventID: seedStrokeID, Name: "Empty"}, ErrInvalidInput},
		{"five players", SaveTeamInput{EventID: seedStrokeID, Name: "Crowd", PlayerIDs: []int64{2, 3, 4, 6, 7}}, ErrInvalidInput},
		{"duplicate player", SaveTeamInput{EventID: seedStrokeID, Name: "Twins", PlayerIDs: []int64{2, 2}}, ErrInvalidInput},
		{"unknown player", SaveTeamInput{EventID: seedStrokeID, Name: "Ghost", PlayerIDs: []int64{2, 999}}, ErrInvalidInput},
		{"starting hole past layout", SaveTeamInput{EventID: seedStrokeID, Name: "Late", PlayerIDs: []int64{2}, StartingHole: ptr(10)}, ErrInvalidInput},
		{"missing event", SaveTeamInput{EventID: 404, Name: "Lost", PlayerIDs: []int64{2}}, ErrNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(t.Context(), tc.input)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestTeamService_CheckRosterAndList(t *testing.T) {
	r := seededRepos(t)
	svc := NewTeamService(r.events, r.teams, r.players, logging.NewNop())
	ctx := t.Context()

	conflicts, err := svc.CheckRoster(ctx, seedScrambleID, 0, []int64{9, 8, 1, 8})
	require.NoError(t, err)
	assert.Equal(t, []int64{8, 1}, conflicts)

	conflicts, err = svc.CheckRoster(ctx, seedScrambleID, 2, []int64{5, 6})
	require.NoError(t, err)
	assert.Empty(t, conflicts)

	teams, err := svc.ListByEvent(ctx, seedScrambleID)
	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.Equal(t, "Fore Play", teams[0].Name)
	assert.Equal(t, "The Bogey Men", teams[1].Name)
}

func TestTeamService_DeleteMissingTeam(t *testing.T) {
	r := seededRepos(t)
	svc := NewTeamService(r.events, r.teams, r.players, logging.NewNop())

	err := svc.Delete(t.Context(), seedStrokeID, 1)
	assert.ErrorIs(t, err, ErrNotFound, "team 1 belongs to another event")
}

func TestTeamService_StoreConflictPassesThroughUnmarked(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	eventRepo := eventmock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)
	playerRepo := playermock.NewRepository(t)
	svc := NewTeamService(eventRepo, teamRepo, playerRepo, logging.NewNop())

	eventRepo.
		On("GetByID", mock.Anything, int64(3)).
		Return(event.Event{ID: 3, HoleCount: 18, ParPerHole: event.DefaultParPerHole(18)}, true, nil).
		Once()
	playerRepo.
		On("GetByIDs", mock.Anything, []int64{11}).
		Return([]player.Player{{ID: 11, FirstName: "Ben", LastName: "Hogan"}}, nil).
		Once()
	teamRepo.
		On("ListByEvent", mock.Anything, int64(3)).
		Return([]team.Team{}, nil).
		Once()
	teamRepo.
		On("Create", mock.Anything, mock.AnythingOfType("team.Team")).
		Return(team.Team{}, &team.RosterConflictError{PlayerIDs: []int64{11}}).
		Once()

	_, err := svc.Create(ctx, SaveTeamInput{EventID: 3, Name: "Racer", PlayerIDs: []int64{11}})
	if !errors.Is(err, team.ErrRosterConflict) {
		t.Fatalf("expected roster conflict, got %v", err)
	}
	if IsStoreFailure(err) {
		t.Fatalf("roster conflict must not be marked as store failure")
	}
}
