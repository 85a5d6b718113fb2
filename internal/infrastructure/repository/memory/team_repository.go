package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/golf-scoring/internal/domain/event"
	"github.com/riskibarqy/golf-scoring/internal/domain/score"
	"github.com/riskibarqy/golf-scoring/internal/domain/team"
)

var errTeamNotFound = fmt.Errorf("team not found")

type TeamRepository struct {
	store *Store
}

func NewTeamRepository(store *Store) *TeamRepository {
	return &TeamRepository{store: store}
}

func (r *TeamRepository) ListByEvent(_ context.Context, eventID int64) ([]team.Team, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.listLocked(eventID), nil
}

func (r *TeamRepository) GetByID(_ context.Context, eventID, teamID int64) (team.Team, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.teams[teamID]
	if !ok || item.EventID != eventID {
		return team.Team{}, false, nil
	}
	return cloneTeam(item), true, nil
}

func (r *TeamRepository) Create(_ context.Context, item team.Team) (team.Team, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.events[item.EventID]; !ok {
		return team.Team{}, fmt.Errorf("%w: id=%d", event.ErrNotFound, item.EventID)
	}
	if err := team.CheckRoster(r.listLocked(item.EventID), 0, item.PlayerIDs()); err != nil {
		return team.Team{}, err
	}

	r.store.lastTeamID++
	item = cloneTeam(item)
	item.ID = r.store.lastTeamID
	r.store.teams[item.ID] = item
	return cloneTeam(item), nil
}

func (r *TeamRepository) Update(_ context.Context, item team.Team) (team.Team, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	current, ok := r.store.teams[item.ID]
	if !ok || current.EventID != item.EventID {
		return team.Team{}, fmt.Errorf("%w: id=%d event=%d", errTeamNotFound, item.ID, item.EventID)
	}
	if err := team.CheckRoster(r.listLocked(item.EventID), item.ID, item.PlayerIDs()); err != nil {
		return team.Team{}, err
	}

	item = cloneTeam(item)
	r.store.teams[item.ID] = item
	return cloneTeam(item), nil
}

// Delete removes the team and its team-scoped scores.
func (r *TeamRepository) Delete(_ context.Context, eventID, teamID int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	item, ok := r.store.teams[teamID]
	if !ok || item.EventID != eventID {
		return nil
	}
	delete(r.store.teams, teamID)
	for key := range r.store.scores {
		if key.EventID == eventID && key.Owner == score.TeamOwner(teamID) {
			delete(r.store.scores, key)
		}
	}
	return nil
}

func (r *TeamRepository) listLocked(eventID int64) []team.Team {
	out := make([]team.Team, 0)
	for _, item := range r.store.teams {
		if item.EventID == eventID {
			out = append(out, cloneTeam(item))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
