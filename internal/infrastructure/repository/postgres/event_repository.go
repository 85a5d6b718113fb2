package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/golf-scoring/internal/domain/event"
	qb "github.com/riskibarqy/golf-scoring/internal/platform/querybuilder"
)

type EventRepository struct {
	db *sqlx.DB
}

func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) List(ctx context.Context) ([]event.Event, error) {
	query, args, err := eventBaseSelectBuilder().
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list events query: %w", err)
	}

	var rows []eventTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	out := make([]event.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, eventFromRow(row))
	}
	return out, nil
}

func (r *EventRepository) GetByID(ctx context.Context, eventID int64) (event.Event, bool, error) {
	return r.getOne(ctx, "get event", qb.Eq("id", eventID))
}

func (r *EventRepository) GetByShareCode(ctx context.Context, shareCode string) (event.Event, bool, error) {
	return r.getOne(ctx, "get event by share code", qb.Eq("share_code", event.CanonicalShareCode(shareCode)))
}

func (r *EventRepository) getOne(ctx context.Context, op string, cond qb.Condition) (event.Event, bool, error) {
	query, args, err := eventBaseSelectBuilder().Where(cond).ToSQL()
	if err != nil {
		return event.Event{}, false, fmt.Errorf("build %s query: %w", op, err)
	}

	var row eventTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return event.Event{}, false, nil
		}
		return event.Event{}, false, fmt.Errorf("%s: %w", op, err)
	}
	return eventFromRow(row), true, nil
}

func (r *EventRepository) Create(ctx context.Context, item event.Event) (event.Event, error) {
	insertModel, err := eventInsertModelFrom(item)
	if err != nil {
		return event.Event{}, fmt.Errorf("encode event layout: %w", err)
	}
	query, args, err := qb.InsertModel("events", insertModel, "RETURNING "+strings.Join(eventColumns, ", "))
	if err != nil {
		return event.Event{}, fmt.Errorf("build create event query: %w", err)
	}

	var row eventTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isUniqueViolation(err) {
			return event.Event{}, fmt.Errorf("%w: %s", event.ErrShareCodeTaken, item.ShareCode)
		}
		return event.Event{}, fmt.Errorf("create event: %w", err)
	}
	return eventFromRow(row), nil
}

func (r *EventRepository) Update(ctx context.Context, item event.Event) (event.Event, error) {
	model, err := eventInsertModelFrom(item)
	if err != nil {
		return event.Event{}, fmt.Errorf("encode event layout: %w", err)
	}
	query, args, err := qb.Update("events").
		Set("name", model.Name).
		Set("event_date", model.EventDate).
		Set("course_name", model.CourseName).
		Set("tees", model.Tees).
		Set("format", model.Format).
		Set("hole_count", model.HoleCount).
		SetExpr("par_per_hole", "?::jsonb", model.ParPerHole).
		Set("locked", model.Locked).
		Set("share_code", model.ShareCode).
		Set("status", model.Status).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", item.ID)).
		Suffix("RETURNING " + strings.Join(eventColumns, ", ")).
		ToSQL()
	if err != nil {
		return event.Event{}, fmt.Errorf("build update event query: %w", err)
	}

	var row eventTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return event.Event{}, fmt.Errorf("%w: id=%d", event.ErrNotFound, item.ID)
		}
		if isUniqueViolation(err) {
			return event.Event{}, fmt.Errorf("%w: %s", event.ErrShareCodeTaken, item.ShareCode)
		}
		return event.Event{}, fmt.Errorf("update event: %w", err)
	}
	return eventFromRow(row), nil
}

// Delete removes the event; teams and scores go with it through the
// foreign keys.
func (r *EventRepository) Delete(ctx context.Context, eventID int64) error {
	query, args, err := qb.DeleteFrom("events").Where(qb.Eq("id", eventID)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete event query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}
