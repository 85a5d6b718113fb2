package team

import "context"

// Repository describes team persistence needs from use cases.
//
// Create and Update re-run CheckRoster against the stored roster of the event
// atomically with the write and return a *RosterConflictError on overlap.
type Repository interface {
	ListByEvent(ctx context.Context, eventID int64) ([]Team, error)
	GetByID(ctx context.Context, eventID, teamID int64) (Team, bool, error)
	Create(ctx context.Context, item Team) (Team, error)
	Update(ctx context.Context, item Team) (Team, error)
	Delete(ctx context.Context, eventID, teamID int64) error
}
