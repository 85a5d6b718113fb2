package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/riskibarqy/golf-scoring/internal/domain/player"
)

type PlayerRepository struct {
	store *Store
}

func NewPlayerRepository(store *Store) *PlayerRepository {
	return &PlayerRepository{store: store}
}

func (r *PlayerRepository) Search(_ context.Context, query string, limit int) ([]player.Player, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(query))
	out := make([]player.Player, 0)
	for _, item := range r.store.players {
		if strings.Contains(strings.ToLower(item.FirstName), needle) ||
			strings.Contains(strings.ToLower(item.LastName), needle) {
			out = append(out, clonePlayer(item))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !strings.EqualFold(a.LastName, b.LastName) {
			return strings.ToLower(a.LastName) < strings.ToLower(b.LastName)
		}
		if !strings.EqualFold(a.FirstName, b.FirstName) {
			return strings.ToLower(a.FirstName) < strings.ToLower(b.FirstName)
		}
		return a.ID < b.ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID int64) (player.Player, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.players[playerID]
	if !ok {
		return player.Player{}, false, nil
	}
	return clonePlayer(item), true, nil
}

// GetByIDs returns known players in request order; unknown ids are skipped.
func (r *PlayerRepository) GetByIDs(_ context.Context, playerIDs []int64) ([]player.Player, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]player.Player, 0, len(playerIDs))
	seen := make(map[int64]struct{}, len(playerIDs))
	for _, id := range playerIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if item, ok := r.store.players[id]; ok {
			out = append(out, clonePlayer(item))
		}
	}
	return out, nil
}

func (r *PlayerRepository) Create(_ context.Context, item player.Player) (player.Player, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.lastPlayerID++
	item = clonePlayer(item)
	item.ID = r.store.lastPlayerID
	r.store.players[item.ID] = item
	return clonePlayer(item), nil
}

func (r *PlayerRepository) Update(_ context.Context, item player.Player) (player.Player, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.players[item.ID]; !ok {
		return player.Player{}, fmt.Errorf("player not found: id=%d", item.ID)
	}
	item = clonePlayer(item)
	r.store.players[item.ID] = item
	return clonePlayer(item), nil
}
