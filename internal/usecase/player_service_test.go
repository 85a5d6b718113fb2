package usecase

import (
	"testing"

	"github.com/riskibarqy/golf-scoring/internal/domain/player"
	"github.com/riskibarqy/golf-scoring/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerService_Search(t *testing.T) {
	r := seededRepos(t)
	svc := NewPlayerService(r.players, logging.NewNop())

	got, err := svc.Search(t.Context(), "   ", 10)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got, err = svc.Search(t.Context(), "son", 0)
	require.NoError(t, err)
	names := make([]string, 0, len(got))
	for _, p := range got {
		names = append(names, p.LastName)
	}
	assert.Equal(t, []string{"Watson"}, names)
}

func TestPlayerService_CreateDefaultsHandicap(t *testing.T) {
	r := seededRepos(t)
	svc := NewPlayerService(r.players, logging.NewNop())

	created, err := svc.Create(t.Context(), CreatePlayerInput{FirstName: " Byron ", LastName: "Nelson", Email: ptr("  ")})
	require.NoError(t, err)
	assert.Equal(t, "Byron", created.FirstName)
	require.NotNil(t, created.Handicap)
	assert.Equal(t, player.DefaultHandicap, *created.Handicap)
	assert.Nil(t, created.Email)

	withHandicap, err := svc.Create(t.Context(), CreatePlayerInput{FirstName: "Babe", LastName: "Zaharias", Handicap: ptr(-2.5)})
	require.NoError(t, err)
	assert.Equal(t, -2.5, *withHandicap.Handicap)
}

func TestPlayerService_UpdateContact(t *testing.T) {
	r := seededRepos(t)
	svc := NewPlayerService(r.players, logging.NewNop())
	ctx := t.Context()

	updated, err := svc.UpdateContact(ctx, 2, UpdateContactInput{Email: ptr("jack@example.com")})
	require.NoError(t, err)
	require.NotNil(t, updated.Email)
	assert.Equal(t, "jack@example.com", *updated.Email)

	_, err = svc.UpdateContact(ctx, 2, UpdateContactInput{Email: ptr("jack at example")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	cleared, err := svc.UpdateContact(ctx, 1, UpdateContactInput{Email: ptr("")})
	require.NoError(t, err)
	assert.Nil(t, cleared.Email)

	_, err = svc.UpdateContact(ctx, 404, UpdateContactInput{Phone: ptr("555")})
	assert.ErrorIs(t, err, ErrNotFound)
}
