package cache

import (
	"context"

	"github.com/riskibarqy/golf-scoring/internal/domain/event"
	basecache "github.com/riskibarqy/golf-scoring/internal/platform/cache"
)

type EventRepository struct {
	next  event.Repository
	cache *basecache.Store
}

func NewEventRepository(next event.Repository, cache *basecache.Store) *EventRepository {
	return &EventRepository{next: next, cache: cache}
}

func (r *EventRepository) List(ctx context.Context) ([]event.Event, error) {
	v, err := r.cache.GetOrLoad(ctx, eventListKey, func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return cloneEvents(items), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]event.Event)
	return cloneEvents(items), nil
}

func (r *EventRepository) GetByID(ctx context.Context, eventID int64) (event.Event, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, eventIDKey(eventID), func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, eventID)
		if err != nil {
			return nil, err
		}
		return cachedEvent{value: cloneEvent(item), exists: exists}, nil
	})
	if err != nil {
		return event.Event{}, false, err
	}

	cached, _ := v.(cachedEvent)
	return cloneEvent(cached.value), cached.exists, nil
}

func (r *EventRepository) GetByShareCode(ctx context.Context, shareCode string) (event.Event, bool, error) {
	code := event.CanonicalShareCode(shareCode)
	v, err := r.cache.GetOrLoad(ctx, eventCodeKeyPrefix+code, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByShareCode(ctx, code)
		if err != nil {
			return nil, err
		}
		return cachedEvent{value: cloneEvent(item), exists: exists}, nil
	})
	if err != nil {
		return event.Event{}, false, err
	}

	cached, _ := v.(cachedEvent)
	return cloneEvent(cached.value), cached.exists, nil
}

func (r *EventRepository) Create(ctx context.Context, item event.Event) (event.Event, error) {
	created, err := r.next.Create(ctx, item)
	if err != nil {
		return event.Event{}, err
	}

	r.cache.Delete(ctx, eventListKey, eventIDKey(created.ID), eventCodeKeyPrefix+created.ShareCode)
	return created, nil
}

func (r *EventRepository) Update(ctx context.Context, item event.Event) (event.Event, error) {
	updated, err := r.next.Update(ctx, item)
	if err != nil {
		return event.Event{}, err
	}

	r.cache.Delete(ctx, eventListKey, eventIDKey(item.ID))
	r.cache.DeletePrefix(ctx, eventCodeKeyPrefix)
	return updated, nil
}

func (r *EventRepository) Delete(ctx context.Context, eventID int64) error {
	if err := r.next.Delete(ctx, eventID); err != nil {
		return err
	}

	r.cache.Delete(ctx, eventListKey, eventIDKey(eventID), teamListKey(eventID))
	r.cache.DeletePrefix(ctx, eventCodeKeyPrefix)
	r.cache.DeletePrefix(ctx, teamIDKeyPrefix(eventID))
	r.cache.DeletePrefix(ctx, scoreListKeyPrefix(eventID))
	return nil
}

type cachedEvent struct {
	value  event.Event
	exists bool
}

func cloneEvent(item event.Event) event.Event {
	item.ParPerHole = append([]int(nil), item.ParPerHole...)
	return item
}

func cloneEvents(items []event.Event) []event.Event {
	out := make([]event.Event, len(items))
	for i, item := range items {
		out[i] = cloneEvent(item)
	}
	return out
}
