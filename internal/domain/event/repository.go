package event

import "context"

// Repository describes event persistence needs from use cases.
// Implementations return events already passed through Normalized.
type Repository interface {
	List(ctx context.Context) ([]Event, error)
	GetByID(ctx context.Context, eventID int64) (Event, bool, error)
	GetByShareCode(ctx context.Context, shareCode string) (Event, bool, error)
	Create(ctx context.Context, item Event) (Event, error)
	Update(ctx context.Context, item Event) (Event, error)
	Delete(ctx context.Context, eventID int64) error
}
