package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/golf-scoring/internal/domain/event"
	qb "github.com/riskibarqy/golf-scoring/internal/platform/querybuilder"
)

type eventTableModel struct {
	ID         int64          `db:"id"`
	Name       string         `db:"name"`
	EventDate  time.Time      `db:"event_date"`
	CourseName string         `db:"course_name"`
	Tees       sql.NullString `db:"tees"`
	Format     string         `db:"format"`
	HoleCount  int            `db:"hole_count"`
	ParPerHole []byte         `db:"par_per_hole"`
	Locked     bool           `db:"locked"`
	ShareCode  string         `db:"share_code"`
	Status     string         `db:"status"`
	CreatedAt  time.Time      `db:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at"`
}

// eventInsertModel carries par_per_hole as JSON text; lib/pq would send
// []byte as bytea, which jsonb rejects.
type eventInsertModel struct {
	Name       string         `db:"name"`
	EventDate  time.Time      `db:"event_date"`
	CourseName string         `db:"course_name"`
	Tees       sql.NullString `db:"tees"`
	Format     string         `db:"format"`
	HoleCount  int            `db:"hole_count"`
	ParPerHole string         `db:"par_per_hole"`
	Locked     bool           `db:"locked"`
	ShareCode  string         `db:"share_code"`
	Status     string         `db:"status"`
}

var eventColumns = qb.ColumnsOf(eventTableModel{})

func eventBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select(eventColumns...).From("events")
}

func eventFromRow(row eventTableModel) event.Event {
	var tees string
	if row.Tees.Valid {
		tees = row.Tees.String
	}
	return event.Event{
		ID:         row.ID,
		Name:       row.Name,
		Date:       row.EventDate,
		CourseName: row.CourseName,
		Tees:       tees,
		Format:     event.Format(row.Format),
		HoleCount:  row.HoleCount,
		ParPerHole: event.DecodeParPerHole(row.ParPerHole),
		Locked:     row.Locked,
		ShareCode:  row.ShareCode,
		Status:     event.Status(row.Status),
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}.Normalized()
}

func eventInsertModelFrom(item event.Event) (eventInsertModel, error) {
	par, err := event.EncodeParPerHole(item.ParPerHole)
	if err != nil {
		return eventInsertModel{}, err
	}
	var tees sql.NullString
	if item.Tees != "" {
		tees = sql.NullString{String: item.Tees, Valid: true}
	}
	return eventInsertModel{
		Name:       item.Name,
		EventDate:  item.Date,
		CourseName: item.CourseName,
		Tees:       tees,
		Format:     string(item.Format),
		HoleCount:  item.HoleCount,
		ParPerHole: string(par),
		Locked:     item.Locked,
		ShareCode:  item.ShareCode,
		Status:     string(item.Status),
	}, nil
}
