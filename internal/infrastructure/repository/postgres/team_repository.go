package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/golf-scoring/internal/domain/event"
	"github.com/riskibarqy/golf-scoring/internal/domain/team"
	qb "github.com/riskibarqy/golf-scoring/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) ListByEvent(ctx context.Context, eventID int64) ([]team.Team, error) {
	return listTeamsByEvent(ctx, r.db, eventID)
}

func (r *TeamRepository) GetByID(ctx context.Context, eventID, teamID int64) (team.Team, bool, error) {
	query, args, err := teamBaseSelectBuilder().
		Where(
			qb.Eq("id", teamID),
			qb.Eq("event_id", eventID),
		).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build get team query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("get team: %w", err)
	}
	return teamFromRow(row), true, nil
}

// Create inserts the team after re-checking the roster while holding the
// event row lock, so concurrent roster writes for one event serialize.
func (r *TeamRepository) Create(ctx context.Context, item team.Team) (team.Team, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return team.Team{}, fmt.Errorf("begin tx create team: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := lockRoster(ctx, tx, item.EventID, 0, item.PlayerIDs()); err != nil {
		return team.Team{}, err
	}

	query, args, err := qb.InsertModel("teams", teamInsertModelFrom(item), "RETURNING "+strings.Join(teamColumns, ", "))
	if err != nil {
		return team.Team{}, fmt.Errorf("build create team query: %w", err)
	}
	var row teamTableModel
	if err := tx.GetContext(ctx, &row, query, args...); err != nil {
		return team.Team{}, fmt.Errorf("create team: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return team.Team{}, fmt.Errorf("commit create team tx: %w", err)
	}
	return teamFromRow(row), nil
}

func (r *TeamRepository) Update(ctx context.Context, item team.Team) (team.Team, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return team.Team{}, fmt.Errorf("begin tx update team: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := lockRoster(ctx, tx, item.EventID, item.ID, item.PlayerIDs()); err != nil {
		return team.Team{}, err
	}

	model := teamInsertModelFrom(item)
	query, args, err := qb.Update("teams").
		Set("name", model.Name).
		Set("player1_id", model.Player1ID).
		Set("player2_id", model.Player2ID).
		Set("player3_id", model.Player3ID).
		Set("player4_id", model.Player4ID).
		Set("starting_hole", model.StartingHole).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("id", item.ID),
			qb.Eq("event_id", item.EventID),
		).
		Suffix("RETURNING " + strings.Join(teamColumns, ", ")).
		ToSQL()
	if err != nil {
		return team.Team{}, fmt.Errorf("build update team query: %w", err)
	}
	var row teamTableModel
	if err := tx.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, fmt.Errorf("update team: not found: id=%d event=%d", item.ID, item.EventID)
		}
		return team.Team{}, fmt.Errorf("update team: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return team.Team{}, fmt.Errorf("commit update team tx: %w", err)
	}
	return teamFromRow(row), nil
}

// Delete removes the team; its team-scoped scores cascade.
func (r *TeamRepository) Delete(ctx context.Context, eventID, teamID int64) error {
	query, args, err := qb.DeleteFrom("teams").
		Where(
			qb.Eq("id", teamID),
			qb.Eq("event_id", eventID),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete team query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete team: %w", err)
	}
	return nil
}

// lockRoster locks the event row and checks proposed against every other
// team of the event.
func lockRoster(ctx context.Context, tx *sqlx.Tx, eventID, editingTeamID int64, proposed []int64) error {
	query, args, err := qb.Select("id").From("events").
		Where(qb.Eq("id", eventID)).
		ForUpdate().
		ToSQL()
	if err != nil {
		return fmt.Errorf("build lock event query: %w", err)
	}
	var lockedID int64
	if err := tx.GetContext(ctx, &lockedID, query, args...); err != nil {
		if isNotFound(err) {
			return fmt.Errorf("%w: id=%d", event.ErrNotFound, eventID)
		}
		return fmt.Errorf("lock event: %w", err)
	}

	teams, err := listTeamsByEvent(ctx, tx, eventID)
	if err != nil {
		return err
	}
	return team.CheckRoster(teams, editingTeamID, proposed)
}

func listTeamsByEvent(ctx context.Context, q sqlx.QueryerContext, eventID int64) ([]team.Team, error) {
	query, args, err := teamBaseSelectBuilder().
		Where(qb.Eq("event_id", eventID)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams by event query: %w", err)
	}

	var rows []teamTableModel
	if err := sqlx.SelectContext(ctx, q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams by event: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamFromRow(row))
	}
	return out, nil
}
