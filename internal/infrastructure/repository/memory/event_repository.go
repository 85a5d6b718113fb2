package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/golf-scoring/internal/domain/event"
)

type EventRepository struct {
	store *Store
}

func NewEventRepository(store *Store) *EventRepository {
	return &EventRepository{store: store}
}

func (r *EventRepository) List(_ context.Context) ([]event.Event, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]event.Event, 0, len(r.store.events))
	for _, item := range r.store.events {
		out = append(out, cloneEvent(item).Normalized())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *EventRepository) GetByID(_ context.Context, eventID int64) (event.Event, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.events[eventID]
	if !ok {
		return event.Event{}, false, nil
	}
	return cloneEvent(item).Normalized(), true, nil
}

func (r *EventRepository) GetByShareCode(_ context.Context, shareCode string) (event.Event, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	code := event.CanonicalShareCode(shareCode)
	for _, item := range r.store.events {
		if item.ShareCode == code {
			return cloneEvent(item).Normalized(), true, nil
		}
	}
	return event.Event{}, false, nil
}

func (r *EventRepository) Create(_ context.Context, item event.Event) (event.Event, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.shareCodeTakenLocked(item.ShareCode, 0) {
		return event.Event{}, event.ErrShareCodeTaken
	}

	r.store.lastEventID++
	now := r.store.now().UTC()
	item = cloneEvent(item)
	item.ID = r.store.lastEventID
	item.CreatedAt = now
	item.UpdatedAt = now
	r.store.events[item.ID] = item

	return cloneEvent(item).Normalized(), nil
}

func (r *EventRepository) Update(_ context.Context, item event.Event) (event.Event, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	current, ok := r.store.events[item.ID]
	if !ok {
		return event.Event{}, fmt.Errorf("%w: id=%d", event.ErrNotFound, item.ID)
	}
	if r.shareCodeTakenLocked(item.ShareCode, item.ID) {
		return event.Event{}, event.ErrShareCodeTaken
	}

	item = cloneEvent(item)
	item.CreatedAt = current.CreatedAt
	item.UpdatedAt = r.store.now().UTC()
	r.store.events[item.ID] = item

	return cloneEvent(item).Normalized(), nil
}

// Delete removes the event with its teams and scores.
func (r *EventRepository) Delete(_ context.Context, eventID int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.events, eventID)
	for id, item := range r.store.teams {
		if item.EventID == eventID {
			delete(r.store.teams, id)
		}
	}
	for key := range r.store.scores {
		if key.EventID == eventID {
			delete(r.store.scores, key)
		}
	}
	return nil
}

func (r *EventRepository) shareCodeTakenLocked(code string, exceptID int64) bool {
	for id, item := range r.store.events {
		if id != exceptID && item.ShareCode == code {
			return true
		}
	}
	return false
}
