package usecase

import (
	"testing"

	"github.com/riskibarqy/golf-scoring/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/golf-scoring/internal/platform/logging"
)

// Demo seed layout used across these tests:
//
//	event 1 "Spring Scramble", Scramble, 18 holes, share code SPRNG2
//	  team 1 "The Bogey Men" players 1-4, team 2 "Fore Play" players 5-8
//	event 2 "Twilight Nine", Stroke Play, 9 holes, share code TWLT9A
//	  team 3 "Flight A" players 1 and 5
const (
	seedScrambleID = int64(1)
	seedStrokeID   = int64(2)
)

type repos struct {
	events  *memory.EventRepository
	teams   *memory.TeamRepository
	players *memory.PlayerRepository
	scores  *memory.ScoreRepository
}

func seededRepos(t *testing.T) repos {
	t.Helper()

	seed, err := memory.DemoSeed()
	if err != nil {
		t.Fatalf("load demo seed: %v", err)
	}
	store := memory.NewStore()
	if err := store.Load(seed); err != nil {
		t.Fatalf("apply demo seed: %v", err)
	}

	return repos{
		events:  memory.NewEventRepository(store),
		teams:   memory.NewTeamRepository(store),
		players: memory.NewPlayerRepository(store),
		scores:  memory.NewScoreRepository(store),
	}
}

func (r repos) scoreService() *ScoreService {
	return NewScoreService(r.events, r.teams, r.players, r.scores, 3, logging.NewNop())
}

// sequenceCodes hands out fixed share codes in order.
type sequenceCodes struct {
	codes []string
	next  int
}

func (g *sequenceCodes) NewID() (string, error) {
	code := g.codes[g.next%len(g.codes)]
	g.next++
	return code, nil
}

func ptr[T any](v T) *T { return &v }
