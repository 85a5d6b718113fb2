package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/golf-scoring/internal/domain/event"
	"github.com/riskibarqy/golf-scoring/internal/domain/score"
	qb "github.com/riskibarqy/golf-scoring/internal/platform/querybuilder"
)

type ScoreRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewScoreRepository(db *sqlx.DB) *ScoreRepository {
	return &ScoreRepository{db: db, now: time.Now}
}

func (r *ScoreRepository) ListByEvent(ctx context.Context, eventID int64, filter score.Filter) ([]score.Score, error) {
	conditions := []qb.Condition{qb.Eq("event_id", eventID)}
	if filter.TeamID != nil {
		conditions = append(conditions, qb.Eq("team_id", *filter.TeamID), qb.IsNull("player_id"))
	}
	if filter.PlayerID != nil {
		conditions = append(conditions, qb.Eq("player_id", *filter.PlayerID), qb.IsNull("team_id"))
	}

	query, args, err := scoreBaseSelectBuilder().
		Where(conditions...).
		OrderBy("hole_number", "player_id IS NULL", "player_id", "team_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list scores by event query: %w", err)
	}

	var rows []scoreTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list scores by event: %w", err)
	}

	out := make([]score.Score, 0, len(rows))
	for _, row := range rows {
		out = append(out, scoreFromRow(row))
	}
	return out, nil
}

func (r *ScoreRepository) Upsert(ctx context.Context, key score.Key, payload score.Score) (score.Score, error) {
	return upsertScore(ctx, r.db, key, payload, r.now().UTC())
}

// UpsertMany writes the batch in one transaction.
func (r *ScoreRepository) UpsertMany(ctx context.Context, items []score.Resolution) ([]score.Score, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx upsert scores: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	now := r.now().UTC()
	out := make([]score.Score, 0, len(items))
	for _, res := range items {
		saved, err := upsertScore(ctx, tx, res.Key, res.Payload, now)
		if err != nil {
			return nil, err
		}
		out = append(out, saved)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit upsert scores tx: %w", err)
	}
	return out, nil
}

func upsertScore(ctx context.Context, q sqlx.QueryerContext, key score.Key, payload score.Score, now time.Time) (score.Score, error) {
	row := scoreRowFor(key, payload, now)
	query, args, err := qb.InsertInto("scores").
		Columns(scoreColumns...).
		Values(row.EventID, row.TeamID, row.PlayerID, row.HoleNumber, row.Strokes, row.Par, row.UpdatedAt).
		OnConflictUpdate(key.ConflictTarget(), conflictPredicate(key), "strokes", "par", "updated_at").
		Suffix("RETURNING " + strings.Join(scoreColumns, ", ")).
		ToSQL()
	if err != nil {
		return score.Score{}, fmt.Errorf("build upsert score query: %w", err)
	}

	var saved scoreTableModel
	if err := sqlx.GetContext(ctx, q, &saved, query, args...); err != nil {
		if isForeignKeyViolation(err) && pqConstraint(err) == "scores_event_id_fkey" {
			return score.Score{}, fmt.Errorf("%w: id=%d", event.ErrNotFound, key.EventID)
		}
		return score.Score{}, fmt.Errorf("upsert score hole %d: %w", key.HoleNumber, err)
	}
	return scoreFromRow(saved), nil
}

func (r *ScoreRepository) Delete(ctx context.Context, key score.Key) error {
	conditions := append([]qb.Condition{
		qb.Eq("event_id", key.EventID),
		qb.Eq("hole_number", key.HoleNumber),
	}, ownerConditions(key)...)

	query, args, err := qb.DeleteFrom("scores").Where(conditions...).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete score query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete score: %w", err)
	}
	return nil
}
