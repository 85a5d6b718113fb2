package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/golf-scoring/internal/domain/player"
	"github.com/riskibarqy/golf-scoring/internal/platform/logging"
)

const (
	defaultPlayerSearchLimit = 20
	maxPlayerSearchLimit     = 50
)

type CreatePlayerInput struct {
	FirstName string
	LastName  string
	Email     *string
	Phone     *string
	Handicap  *float64
}

// UpdateContactInput replaces the contact fields that are non-nil. An empty
// string clears the field.
type UpdateContactInput struct {
	Email *string
	Phone *string
}

type PlayerService struct {
	playerRepo player.Repository
	logger     *logging.Logger
}

func NewPlayerService(playerRepo player.Repository, logger *logging.Logger) *PlayerService {
	if logger == nil {
		logger = logging.Default()
	}
	return &PlayerService{playerRepo: playerRepo, logger: logger}
}

// Search finds players whose first or last name contains query. A blank query
// matches nobody.
func (s *PlayerService) Search(ctx context.Context, query string, limit int) ([]player.Player, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []player.Player{}, nil
	}
	if limit <= 0 {
		limit = defaultPlayerSearchLimit
	}
	limit = min(limit, maxPlayerSearchLimit)

	items, err := s.playerRepo.Search(ctx, query, limit)
	if err != nil {
		return nil, storeError("search players", err)
	}
	return items, nil
}

func (s *PlayerService) Get(ctx context.Context, playerID int64) (player.Player, error) {
	if playerID <= 0 {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	item, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, storeError("get player", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%d", ErrNotFound, playerID)
	}
	return item, nil
}

// Create registers a new profile. Profiles created without a handicap start
// at the default.
func (s *PlayerService) Create(ctx context.Context, input CreatePlayerInput) (player.Player, error) {
	item := player.Player{
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Email:     optionalString(input.Email),
		Phone:     optionalString(input.Phone),
		Handicap:  input.Handicap,
	}
	if item.Handicap == nil {
		handicap := player.DefaultHandicap
		item.Handicap = &handicap
	}
	if err := item.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.playerRepo.Create(ctx, item)
	if err != nil {
		return player.Player{}, storeError("create player", err)
	}

	s.logger.InfoContext(ctx, "player created", "player_id", created.ID)
	return created, nil
}

func (s *PlayerService) UpdateContact(ctx context.Context, playerID int64, input UpdateContactInput) (player.Player, error) {
	item, err := s.Get(ctx, playerID)
	if err != nil {
		return player.Player{}, err
	}

	if input.Email != nil {
		item.Email = optionalString(input.Email)
	}
	if input.Phone != nil {
		item.Phone = optionalString(input.Phone)
	}
	if err := item.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated, err := s.playerRepo.Update(ctx, item)
	if err != nil {
		return player.Player{}, storeError("update player", err)
	}

	s.logger.InfoContext(ctx, "player contact updated", "player_id", updated.ID)
	return updated, nil
}

func optionalString(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
