package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/golf-scoring/internal/domain/player"
	qb "github.com/riskibarqy/golf-scoring/internal/platform/querybuilder"
)

type playerTableModel struct {
	ID        int64           `db:"id"`
	FirstName string          `db:"first_name"`
	LastName  string          `db:"last_name"`
	Email     sql.NullString  `db:"email"`
	Phone     sql.NullString  `db:"phone"`
	Handicap  sql.NullFloat64 `db:"handicap"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}

type playerInsertModel struct {
	FirstName string          `db:"first_name"`
	LastName  string          `db:"last_name"`
	Email     sql.NullString  `db:"email"`
	Phone     sql.NullString  `db:"phone"`
	Handicap  sql.NullFloat64 `db:"handicap"`
}

var playerColumns = qb.ColumnsOf(playerTableModel{})

func playerBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select(playerColumns...).From("players")
}

func playerFromRow(row playerTableModel) player.Player {
	return player.Player{
		ID:        row.ID,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Email:     nullStringToPtr(row.Email),
		Phone:     nullStringToPtr(row.Phone),
		Handicap:  nullFloat64ToPtr(row.Handicap),
	}
}

func playerInsertModelFrom(item player.Player) playerInsertModel {
	return playerInsertModel{
		FirstName: item.FirstName,
		LastName:  item.LastName,
		Email:     nullString(item.Email),
		Phone:     nullString(item.Phone),
		Handicap:  nullFloat64(item.Handicap),
	}
}
