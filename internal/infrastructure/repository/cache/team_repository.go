package cache

import (
	"context"

	"github.com/riskibarqy/golf-scoring/internal/domain/team"
	basecache "github.com/riskibarqy/golf-scoring/internal/platform/cache"
)

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) ListByEvent(ctx context.Context, eventID int64) ([]team.Team, error) {
	v, err := r.cache.GetOrLoad(ctx, teamListKey(eventID), func(ctx context.Context) (any, error) {
		items, err := r.next.ListByEvent(ctx, eventID)
		if err != nil {
			return nil, err
		}
		return cloneTeams(items), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]team.Team)
	return cloneTeams(items), nil
}

func (r *TeamRepository) GetByID(ctx context.Context, eventID, teamID int64) (team.Team, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, teamIDKey(eventID, teamID), func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, eventID, teamID)
		if err != nil {
			return nil, err
		}
		return cachedTeam{value: cloneTeam(item), exists: exists}, nil
	})
	if err != nil {
		return team.Team{}, false, err
	}

	cached, _ := v.(cachedTeam)
	return cloneTeam(cached.value), cached.exists, nil
}

// Create and Update bypass the cache for the roster check: the wrapped
// repository re-reads the roster inside its own write.
func (r *TeamRepository) Create(ctx context.Context, item team.Team) (team.Team, error) {
	created, err := r.next.Create(ctx, item)
	if err != nil {
		return team.Team{}, err
	}

	r.cache.Delete(ctx, teamListKey(created.EventID), teamIDKey(created.EventID, created.ID))
	return created, nil
}

func (r *TeamRepository) Update(ctx context.Context, item team.Team) (team.Team, error) {
	updated, err := r.next.Update(ctx, item)
	if err != nil {
		return team.Team{}, err
	}

	r.cache.Delete(ctx, teamListKey(item.EventID), teamIDKey(item.EventID, item.ID))
	return updated, nil
}

func (r *TeamRepository) Delete(ctx context.Context, eventID, teamID int64) error {
	if err := r.next.Delete(ctx, eventID, teamID); err != nil {
		return err
	}

	r.cache.Delete(ctx, teamListKey(eventID), teamIDKey(eventID, teamID))
	r.cache.DeletePrefix(ctx, scoreListKeyPrefix(eventID))
	return nil
}

type cachedTeam struct {
	value  team.Team
	exists bool
}

func cloneTeam(item team.Team) team.Team {
	if item.StartingHole != nil {
		hole := *item.StartingHole
		item.StartingHole = &hole
	}
	return item
}

func cloneTeams(items []team.Team) []team.Team {
	out := make([]team.Team, len(items))
	for i, item := range items {
		out[i] = cloneTeam(item)
	}
	return out
}
