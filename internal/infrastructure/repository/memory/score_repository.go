package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/golf-scoring/internal/domain/event"
	"github.com/riskibarqy/golf-scoring/internal/domain/score"
)

type ScoreRepository struct {
	store *Store
}

func NewScoreRepository(store *Store) *ScoreRepository {
	return &ScoreRepository{store: store}
}

func (r *ScoreRepository) ListByEvent(_ context.Context, eventID int64, filter score.Filter) ([]score.Score, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]score.Score, 0)
	for key, item := range r.store.scores {
		if key.EventID != eventID {
			continue
		}
		if filter.TeamID != nil && key.Owner != score.TeamOwner(*filter.TeamID) {
			continue
		}
		if filter.PlayerID != nil && key.Owner != score.PlayerOwner(*filter.PlayerID) {
			continue
		}
		out = append(out, cloneScore(item))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].HoleNumber != out[j].HoleNumber {
			return out[i].HoleNumber < out[j].HoleNumber
		}
		a, b := out[i].Owner(), out[j].Owner()
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		return a.ID < b.ID
	})
	return out, nil
}

func (r *ScoreRepository) Upsert(_ context.Context, key score.Key, payload score.Score) (score.Score, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.events[key.EventID]; !ok {
		return score.Score{}, fmt.Errorf("%w: id=%d", event.ErrNotFound, key.EventID)
	}

	item := cloneScore(payload)
	item.EventID = key.EventID
	item.HoleNumber = key.HoleNumber
	item.UpdatedAt = r.store.now().UTC()
	r.store.scores[key] = item
	return cloneScore(item), nil
}

func (r *ScoreRepository) UpsertMany(_ context.Context, items []score.Resolution) ([]score.Score, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, res := range items {
		if _, ok := r.store.events[res.Key.EventID]; !ok {
			return nil, fmt.Errorf("%w: id=%d", event.ErrNotFound, res.Key.EventID)
		}
	}

	now := r.store.now().UTC()
	out := make([]score.Score, 0, len(items))
	for _, res := range items {
		item := cloneScore(res.Payload)
		item.EventID = res.Key.EventID
		item.HoleNumber = res.Key.HoleNumber
		item.UpdatedAt = now
		r.store.scores[res.Key] = item
		out = append(out, cloneScore(item))
	}
	return out, nil
}

func (r *ScoreRepository) Delete(_ context.Context, key score.Key) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.scores, key)
	return nil
}
