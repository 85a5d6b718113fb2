package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/golf-scoring/internal/domain/team"
	qb "github.com/riskibarqy/golf-scoring/internal/platform/querybuilder"
)

type teamTableModel struct {
	ID           int64         `db:"id"`
	EventID      int64         `db:"event_id"`
	Name         string        `db:"name"`
	Player1ID    sql.NullInt64 `db:"player1_id"`
	Player2ID    sql.NullInt64 `db:"player2_id"`
	Player3ID    sql.NullInt64 `db:"player3_id"`
	Player4ID    sql.NullInt64 `db:"player4_id"`
	StartingHole sql.NullInt64 `db:"starting_hole"`
	CreatedAt    time.Time     `db:"created_at"`
	UpdatedAt    time.Time     `db:"updated_at"`
}

type teamInsertModel struct {
	EventID      int64         `db:"event_id"`
	Name         string        `db:"name"`
	Player1ID    sql.NullInt64 `db:"player1_id"`
	Player2ID    sql.NullInt64 `db:"player2_id"`
	Player3ID    sql.NullInt64 `db:"player3_id"`
	Player4ID    sql.NullInt64 `db:"player4_id"`
	StartingHole sql.NullInt64 `db:"starting_hole"`
}

var teamColumns = qb.ColumnsOf(teamTableModel{})

func teamBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select(teamColumns...).From("teams")
}

func teamFromRow(row teamTableModel) team.Team {
	return team.Team{
		ID:      row.ID,
		EventID: row.EventID,
		Name:    row.Name,
		Slots: [team.MaxPlayers]int64{
			row.Player1ID.Int64,
			row.Player2ID.Int64,
			row.Player3ID.Int64,
			row.Player4ID.Int64,
		},
		StartingHole: nullIntToPtr(row.StartingHole),
	}
}

func teamInsertModelFrom(item team.Team) teamInsertModel {
	return teamInsertModel{
		EventID:      item.EventID,
		Name:         item.Name,
		Player1ID:    nullInt64(&item.Slots[0]),
		Player2ID:    nullInt64(&item.Slots[1]),
		Player3ID:    nullInt64(&item.Slots[2]),
		Player4ID:    nullInt64(&item.Slots[3]),
		StartingHole: intToNull(item.StartingHole),
	}
}
