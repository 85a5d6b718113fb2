package cache

import (
	"context"

	"github.com/riskibarqy/golf-scoring/internal/domain/score"
	basecache "github.com/riskibarqy/golf-scoring/internal/platform/cache"
)

type ScoreRepository struct {
	next  score.Repository
	cache *basecache.Store
}

func NewScoreRepository(next score.Repository, cache *basecache.Store) *ScoreRepository {
	return &ScoreRepository{next: next, cache: cache}
}

func (r *ScoreRepository) ListByEvent(ctx context.Context, eventID int64, filter score.Filter) ([]score.Score, error) {
	v, err := r.cache.GetOrLoad(ctx, scoreListKey(eventID, filter), func(ctx context.Context) (any, error) {
		items, err := r.next.ListByEvent(ctx, eventID, filter)
		if err != nil {
			return nil, err
		}
		return cloneScores(items), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]score.Score)
	return cloneScores(items), nil
}

func (r *ScoreRepository) Upsert(ctx context.Context, key score.Key, payload score.Score) (score.Score, error) {
	saved, err := r.next.Upsert(ctx, key, payload)
	if err != nil {
		return score.Score{}, err
	}

	r.cache.DeletePrefix(ctx, scoreListKeyPrefix(key.EventID))
	return saved, nil
}

func (r *ScoreRepository) UpsertMany(ctx context.Context, items []score.Resolution) ([]score.Score, error) {
	saved, err := r.next.UpsertMany(ctx, items)
	if err != nil {
		return nil, err
	}

	invalidated := make(map[int64]struct{}, 1)
	for _, res := range items {
		if _, ok := invalidated[res.Key.EventID]; ok {
			continue
		}
		invalidated[res.Key.EventID] = struct{}{}
		r.cache.DeletePrefix(ctx, scoreListKeyPrefix(res.Key.EventID))
	}
	return saved, nil
}

func (r *ScoreRepository) Delete(ctx context.Context, key score.Key) error {
	if err := r.next.Delete(ctx, key); err != nil {
		return err
	}

	r.cache.DeletePrefix(ctx, scoreListKeyPrefix(key.EventID))
	return nil
}

func cloneScores(items []score.Score) []score.Score {
	out := make([]score.Score, len(items))
	for i, item := range items {
		item.TeamID = cloneValue(item.TeamID)
		item.PlayerID = cloneValue(item.PlayerID)
		item.Par = cloneValue(item.Par)
		out[i] = item
	}
	return out
}
