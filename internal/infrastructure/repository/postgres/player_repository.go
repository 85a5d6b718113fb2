package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/golf-scoring/internal/domain/player"
	qb "github.com/riskibarqy/golf-scoring/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) Search(ctx context.Context, query string, limit int) ([]player.Player, error) {
	builder := playerBaseSelectBuilder().
		Where(qb.ContainsFold(strings.TrimSpace(query), "first_name", "last_name")).
		OrderBy("lower(last_name)", "lower(first_name)", "id")
	if limit > 0 {
		builder = builder.Limit(limit)
	}
	sqlQuery, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build search players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, sqlQuery, args...); err != nil {
		return nil, fmt.Errorf("search players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}
	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID int64) (player.Player, bool, error) {
	query, args, err := playerBaseSelectBuilder().Where(qb.Eq("id", playerID)).ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build get player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player: %w", err)
	}
	return playerFromRow(row), true, nil
}

// GetByIDs returns known players in request order; unknown ids are skipped.
func (r *PlayerRepository) GetByIDs(ctx context.Context, playerIDs []int64) ([]player.Player, error) {
	if len(playerIDs) == 0 {
		return []player.Player{}, nil
	}

	ids := make([]any, 0, len(playerIDs))
	for _, id := range playerIDs {
		ids = append(ids, id)
	}
	query, args, err := playerBaseSelectBuilder().Where(qb.In("id", ids)).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build get players by ids query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("get players by ids: %w", err)
	}

	byID := make(map[int64]player.Player, len(rows))
	for _, row := range rows {
		byID[row.ID] = playerFromRow(row)
	}
	out := make([]player.Player, 0, len(byID))
	seen := make(map[int64]struct{}, len(playerIDs))
	for _, id := range playerIDs {
		item, ok := byID[id]
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, item)
	}
	return out, nil
}

func (r *PlayerRepository) Create(ctx context.Context, item player.Player) (player.Player, error) {
	query, args, err := qb.InsertModel("players", playerInsertModelFrom(item), "RETURNING "+strings.Join(playerColumns, ", "))
	if err != nil {
		return player.Player{}, fmt.Errorf("build create player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}
	return playerFromRow(row), nil
}

func (r *PlayerRepository) Update(ctx context.Context, item player.Player) (player.Player, error) {
	model := playerInsertModelFrom(item)
	query, args, err := qb.Update("players").
		Set("first_name", model.FirstName).
		Set("last_name", model.LastName).
		Set("email", model.Email).
		Set("phone", model.Phone).
		Set("handicap", model.Handicap).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", item.ID)).
		Suffix("RETURNING " + strings.Join(playerColumns, ", ")).
		ToSQL()
	if err != nil {
		return player.Player{}, fmt.Errorf("build update player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, fmt.Errorf("update player: not found: id=%d", item.ID)
		}
		return player.Player{}, fmt.Errorf("update player: %w", err)
	}
	return playerFromRow(row), nil
}
