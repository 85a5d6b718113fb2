package memory

import (
	"sync"
	"time"

	"github.com/riskibarqy/golf-scoring/internal/domain/event"
	"github.com/riskibarqy/golf-scoring/internal/domain/player"
	"github.com/riskibarqy/golf-scoring/internal/domain/score"
	"github.com/riskibarqy/golf-scoring/internal/domain/team"
)

// Store holds every table behind one lock so that cross-table rules (event
// cascade, roster exclusivity) hold the same way they do in Postgres.
type Store struct {
	mu sync.RWMutex

	events  map[int64]event.Event
	teams   map[int64]team.Team
	players map[int64]player.Player
	scores  map[score.Key]score.Score

	lastEventID  int64
	lastTeamID   int64
	lastPlayerID int64

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		events:  make(map[int64]event.Event),
		teams:   make(map[int64]team.Team),
		players: make(map[int64]player.Player),
		scores:  make(map[score.Key]score.Score),
		now:     time.Now,
	}
}

func cloneEvent(item event.Event) event.Event {
	out := item
	out.ParPerHole = append([]int(nil), item.ParPerHole...)
	return out
}

func cloneTeam(item team.Team) team.Team {
	out := item
	out.StartingHole = clonePtr(item.StartingHole)
	return out
}

func clonePlayer(item player.Player) player.Player {
	out := item
	out.Email = clonePtr(item.Email)
	out.Phone = clonePtr(item.Phone)
	out.Handicap = clonePtr(item.Handicap)
	return out
}

func cloneScore(item score.Score) score.Score {
	out := item
	out.TeamID = clonePtr(item.TeamID)
	out.PlayerID = clonePtr(item.PlayerID)
	out.Par = clonePtr(item.Par)
	return out
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
