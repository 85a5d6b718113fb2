package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	// Search matches query as a case-insensitive substring of the first or
	// last name, ordered by last name.
	Search(ctx context.Context, query string, limit int) ([]Player, error)
	GetByID(ctx context.Context, playerID int64) (Player, bool, error)
	GetByIDs(ctx context.Context, playerIDs []int64) ([]Player, error)
	Create(ctx context.Context, item Player) (Player, error)
	Update(ctx context.Context, item Player) (Player, error)
}
