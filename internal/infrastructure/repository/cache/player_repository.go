package cache

import (
	"context"

	"github.com/riskibarqy/golf-scoring/internal/domain/player"
	basecache "github.com/riskibarqy/golf-scoring/internal/platform/cache"
)

// PlayerRepository caches lookups by id. Searches always hit the store.
type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) Search(ctx context.Context, query string, limit int) ([]player.Player, error) {
	return r.next.Search(ctx, query, limit)
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID int64) (player.Player, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, playerIDKey(playerID), func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, playerID)
		if err != nil {
			return nil, err
		}
		return cachedPlayer{value: clonePlayer(item), exists: exists}, nil
	})
	if err != nil {
		return player.Player{}, false, err
	}

	cached, _ := v.(cachedPlayer)
	return clonePlayer(cached.value), cached.exists, nil
}

// GetByIDs serves cached players and loads the rest in one call.
func (r *PlayerRepository) GetByIDs(ctx context.Context, playerIDs []int64) ([]player.Player, error) {
	found := make(map[int64]player.Player, len(playerIDs))
	var missing []int64
	for _, id := range playerIDs {
		v, ok := r.cache.Get(ctx, playerIDKey(id))
		cached, _ := v.(cachedPlayer)
		if !ok || !cached.exists {
			missing = append(missing, id)
			continue
		}
		found[id] = cached.value
	}

	if len(missing) > 0 {
		loaded, err := r.next.GetByIDs(ctx, missing)
		if err != nil {
			return nil, err
		}
		for _, item := range loaded {
			found[item.ID] = item
			r.cache.Set(ctx, playerIDKey(item.ID), cachedPlayer{value: clonePlayer(item), exists: true})
		}
	}

	out := make([]player.Player, 0, len(found))
	seen := make(map[int64]struct{}, len(found))
	for _, id := range playerIDs {
		item, ok := found[id]
		if _, dup := seen[id]; !ok || dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, clonePlayer(item))
	}
	return out, nil
}

func (r *PlayerRepository) Create(ctx context.Context, item player.Player) (player.Player, error) {
	created, err := r.next.Create(ctx, item)
	if err != nil {
		return player.Player{}, err
	}

	r.cache.Delete(ctx, playerIDKey(created.ID))
	return created, nil
}

func (r *PlayerRepository) Update(ctx context.Context, item player.Player) (player.Player, error) {
	updated, err := r.next.Update(ctx, item)
	if err != nil {
		return player.Player{}, err
	}

	r.cache.Delete(ctx, playerIDKey(item.ID))
	return updated, nil
}

type cachedPlayer struct {
	value  player.Player
	exists bool
}

func clonePlayer(item player.Player) player.Player {
	item.Email = cloneValue(item.Email)
	item.Phone = cloneValue(item.Phone)
	item.Handicap = cloneValue(item.Handicap)
	return item
}

func cloneValue[T any](v *T) *T {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
