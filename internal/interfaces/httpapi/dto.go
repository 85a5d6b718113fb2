package httpapi

import (
	"time"

	"github.com/riskibarqy/golf-scoring/internal/domain/event"
	"github.com/riskibarqy/golf-scoring/internal/domain/leaderboard"
	"github.com/riskibarqy/golf-scoring/internal/domain/player"
	"github.com/riskibarqy/golf-scoring/internal/domain/score"
	"github.com/riskibarqy/golf-scoring/internal/domain/team"
	"github.com/riskibarqy/golf-scoring/internal/usecase"
)

const dateLayout = "2006-01-02"

type eventDTO struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Date         string `json:"date"`
	CourseName   string `json:"course_name"`
	Tees         string `json:"tees,omitempty"`
	Format       string `json:"format"`
	ScoringScope string `json:"scoring_scope"`
	HoleCount    int    `json:"hole_count"`
	ParPerHole   []int  `json:"par_per_hole"`
	TotalPar     int    `json:"total_par"`
	Locked       bool   `json:"locked"`
	ShareCode    string `json:"share_code"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at,omitempty"`
	UpdatedAt    string `json:"updated_at,omitempty"`
}

type teamDTO struct {
	ID           int64   `json:"id"`
	EventID      int64   `json:"event_id"`
	Name         string  `json:"name"`
	PlayerIDs    []int64 `json:"player_ids"`
	StartingHole *int    `json:"starting_hole,omitempty"`
}

type playerDTO struct {
	ID          int64    `json:"id"`
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name"`
	DisplayName string   `json:"display_name"`
	Email       *string  `json:"email,omitempty"`
	Phone       *string  `json:"phone,omitempty"`
	Handicap    *float64 `json:"handicap,omitempty"`
}

type scoreDTO struct {
	EventID    int64  `json:"event_id"`
	TeamID     *int64 `json:"team_id,omitempty"`
	PlayerID   *int64 `json:"player_id,omitempty"`
	HoleNumber int    `json:"hole_number"`
	Strokes    int    `json:"strokes"`
	Par        *int   `json:"par,omitempty"`
	UpdatedAt  string `json:"updated_at,omitempty"`
}

type leaderboardDTO struct {
	Event   eventDTO              `json:"event"`
	Scope   string                `json:"scope"`
	Entries []leaderboardEntryDTO `json:"entries"`
}

type leaderboardEntryDTO struct {
	Position        int    `json:"position"`
	PositionLabel   string `json:"position_label"`
	Tied            bool   `json:"tied"`
	OwnerKind       string `json:"owner_kind"`
	OwnerID         int64  `json:"owner_id"`
	Name            string `json:"name"`
	FrontStrokes    int    `json:"front_strokes"`
	BackStrokes     int    `json:"back_strokes"`
	TotalStrokes    int    `json:"total_strokes"`
	FrontPar        int    `json:"front_par"`
	BackPar         int    `json:"back_par"`
	TotalPar        int    `json:"total_par"`
	ScoreToPar      int    `json:"score_to_par"`
	ScoreToParLabel string `json:"score_to_par_label"`
	Last3Strokes    int    `json:"last3_strokes"`
	HolesPlayed     int    `json:"holes_played"`
	Standing        string `json:"standing"`
}

type publicEventDTO struct {
	Event eventDTO  `json:"event"`
	Teams []teamDTO `json:"teams"`
}

type rosterCheckDTO struct {
	ConflictingPlayerIDs []int64 `json:"conflicting_player_ids"`
}

func eventToDTO(v event.Event) eventDTO {
	return eventDTO{
		ID:           v.ID,
		Name:         v.Name,
		Date:         formatDate(v.Date),
		CourseName:   v.CourseName,
		Tees:         v.Tees,
		Format:       string(v.Format),
		ScoringScope: string(v.Format.ScoringScope()),
		HoleCount:    v.HoleCount,
		ParPerHole:   v.ParPerHole,
		TotalPar:     v.TotalPar(),
		Locked:       v.Locked,
		ShareCode:    v.ShareCode,
		Status:       string(v.Status),
		CreatedAt:    formatTimestamp(v.CreatedAt),
		UpdatedAt:    formatTimestamp(v.UpdatedAt),
	}
}

func teamToDTO(v team.Team) teamDTO {
	return teamDTO{
		ID:           v.ID,
		EventID:      v.EventID,
		Name:         v.Name,
		PlayerIDs:    v.PlayerIDs(),
		StartingHole: v.StartingHole,
	}
}

func teamsToDTO(items []team.Team) []teamDTO {
	out := make([]teamDTO, 0, len(items))
	for _, item := range items {
		out = append(out, teamToDTO(item))
	}
	return out
}

func playerToDTO(v player.Player) playerDTO {
	return playerDTO{
		ID:          v.ID,
		FirstName:   v.FirstName,
		LastName:    v.LastName,
		DisplayName: v.DisplayName(),
		Email:       v.Email,
		Phone:       v.Phone,
		Handicap:    v.Handicap,
	}
}

func scoreToDTO(v score.Score) scoreDTO {
	return scoreDTO{
		EventID:    v.EventID,
		TeamID:     v.TeamID,
		PlayerID:   v.PlayerID,
		HoleNumber: v.HoleNumber,
		Strokes:    v.Strokes,
		Par:        v.Par,
		UpdatedAt:  formatTimestamp(v.UpdatedAt),
	}
}

func scoresToDTO(items []score.Score) []scoreDTO {
	out := make([]scoreDTO, 0, len(items))
	for _, item := range items {
		out = append(out, scoreToDTO(item))
	}
	return out
}

func boardToDTO(board usecase.Board) leaderboardDTO {
	entries := make([]leaderboardEntryDTO, 0, len(board.Entries))
	for _, e := range board.Entries {
		entries = append(entries, leaderboardEntryDTO{
			Position:        e.Position,
			PositionLabel:   usecase.PositionLabel(e),
			Tied:            e.Tied,
			OwnerKind:       string(e.Owner.Kind),
			OwnerID:         e.Owner.ID,
			Name:            e.Name,
			FrontStrokes:    e.Stats.FrontStrokes,
			BackStrokes:     e.Stats.BackStrokes,
			TotalStrokes:    e.Stats.TotalStrokes,
			FrontPar:        e.Stats.FrontPar,
			BackPar:         e.Stats.BackPar,
			TotalPar:        e.Stats.TotalPar,
			ScoreToPar:      e.Stats.ScoreToPar,
			ScoreToParLabel: usecase.ScoreToParLabel(e.Stats.ScoreToPar),
			Last3Strokes:    e.Stats.Last3Strokes,
			HolesPlayed:     e.Stats.HolesPlayed,
			Standing:        string(leaderboard.StandingOf(e.Stats.ScoreToPar)),
		})
	}

	return leaderboardDTO{
		Event:   eventToDTO(board.Event),
		Scope:   string(board.Scope),
		Entries: entries,
	}
}

func formatDate(v time.Time) string {
	if v.IsZero() {
		return ""
	}
	return v.Format(dateLayout)
}

func formatTimestamp(v time.Time) string {
	if v.IsZero() {
		return ""
	}
	return v.UTC().Format(time.RFC3339)
}
