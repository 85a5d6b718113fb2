package score

import "context"

// Repository describes score persistence needs from use cases.
type Repository interface {
	ListByEvent(ctx context.Context, eventID int64, filter Filter) ([]Score, error)
	// Upsert inserts the payload or replaces the row stored under key.
	Upsert(ctx context.Context, key Key, payload Score) (Score, error)
	// UpsertMany applies every write or none of them.
	UpsertMany(ctx context.Context, items []Resolution) ([]Score, error)
	// Delete removes the row under key. A missing row is not an error.
	Delete(ctx context.Context, key Key) error
}
