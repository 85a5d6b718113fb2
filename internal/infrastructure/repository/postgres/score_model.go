package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/golf-scoring/internal/domain/score"
	qb "github.com/riskibarqy/golf-scoring/internal/platform/querybuilder"
)

type scoreTableModel struct {
	EventID    int64         `db:"event_id"`
	TeamID     sql.NullInt64 `db:"team_id"`
	PlayerID   sql.NullInt64 `db:"player_id"`
	HoleNumber int           `db:"hole_number"`
	Strokes    int           `db:"strokes"`
	Par        sql.NullInt64 `db:"par"`
	UpdatedAt  time.Time     `db:"updated_at"`
}

var scoreColumns = qb.ColumnsOf(scoreTableModel{})

func scoreBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select(scoreColumns...).From("scores")
}

func scoreFromRow(row scoreTableModel) score.Score {
	return score.Score{
		EventID:    row.EventID,
		TeamID:     nullInt64ToPtr(row.TeamID),
		PlayerID:   nullInt64ToPtr(row.PlayerID),
		HoleNumber: row.HoleNumber,
		Strokes:    row.Strokes,
		Par:        nullIntToPtr(row.Par),
		UpdatedAt:  row.UpdatedAt,
	}
}

// scoreRowFor builds the stored row for key. The owner column not covered
// by the key stays NULL so the row lands in the matching partial index.
func scoreRowFor(key score.Key, payload score.Score, now time.Time) scoreTableModel {
	row := scoreTableModel{
		EventID:    key.EventID,
		HoleNumber: key.HoleNumber,
		Strokes:    payload.Strokes,
		Par:        intToNull(payload.Par),
		UpdatedAt:  now,
	}
	owner := sql.NullInt64{Int64: key.Owner.ID, Valid: true}
	if key.Owner.Kind == score.OwnerPlayer {
		row.PlayerID = owner
	} else {
		row.TeamID = owner
	}
	return row
}

// ownerConditions matches the rows stored under key.
func ownerConditions(key score.Key) []qb.Condition {
	if key.Owner.Kind == score.OwnerPlayer {
		return []qb.Condition{qb.Eq("player_id", key.Owner.ID), qb.IsNull("team_id")}
	}
	return []qb.Condition{qb.Eq("team_id", key.Owner.ID), qb.IsNull("player_id")}
}

// conflictPredicate names the partial unique index backing key.
func conflictPredicate(key score.Key) string {
	if key.Owner.Kind == score.OwnerPlayer {
		return "team_id IS NULL"
	}
	return "player_id IS NULL"
}
