package usecase

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/riskibarqy/golf-scoring/internal/domain/event"
	"github.com/riskibarqy/golf-scoring/internal/domain/leaderboard"
	"github.com/riskibarqy/golf-scoring/internal/domain/player"
	"github.com/riskibarqy/golf-scoring/internal/domain/score"
	"github.com/riskibarqy/golf-scoring/internal/domain/team"
	"github.com/riskibarqy/golf-scoring/internal/platform/scorecard"
	"github.com/sourcegraph/conc/pool"
)

// Board is a ranked leaderboard for one event.
type Board struct {
	Event   event.Event
	Scope   event.Scope
	Entries []leaderboard.Entry
}

type LeaderboardService struct {
	eventRepo  event.Repository
	teamRepo   team.Repository
	playerRepo player.Repository
	scoreRepo  score.Repository
}

func NewLeaderboardService(
	eventRepo event.Repository,
	teamRepo team.Repository,
	playerRepo player.Repository,
	scoreRepo score.Repository,
) *LeaderboardService {
	return &LeaderboardService{
		eventRepo:  eventRepo,
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		scoreRepo:  scoreRepo,
	}
}

// Build snapshots the event, its roster and its scores, then aggregates and
// ranks one entry per team (team formats) or per player. Every rostered owner
// gets an entry, scored or not.
func (s *LeaderboardService) Build(ctx context.Context, eventID int64) (Board, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.Build", eventID)
	var err error
	defer func() { finishSpan(span, err) }()

	if eventID <= 0 {
		err = fmt.Errorf("%w: event id is required", ErrInvalidInput)
		return Board{}, err
	}

	var (
		ev     event.Event
		exists bool
		teams  []team.Team
		scores []score.Score
	)
	snapshot := pool.New().WithErrors().WithContext(ctx)
	snapshot.Go(func(ctx context.Context) error {
		var err error
		ev, exists, err = s.eventRepo.GetByID(ctx, eventID)
		return storeError("get event", err)
	})
	snapshot.Go(func(ctx context.Context) error {
		var err error
		teams, err = s.teamRepo.ListByEvent(ctx, eventID)
		return storeError("list teams by event", err)
	})
	snapshot.Go(func(ctx context.Context) error {
		var err error
		scores, err = s.scoreRepo.ListByEvent(ctx, eventID, score.Filter{})
		return storeError("list scores by event", err)
	})
	if err = snapshot.Wait(); err != nil {
		return Board{}, err
	}
	if !exists {
		err = fmt.Errorf("%w: event=%d", ErrNotFound, eventID)
		return Board{}, err
	}

	board := Board{Event: ev, Scope: ev.Format.ScoringScope()}
	owners, byOwner := groupByOwner(board.Scope, teams, scores)

	names := make(map[score.Owner]string, len(owners))
	if board.Scope == event.ScopeTeam {
		for _, t := range teams {
			names[score.TeamOwner(t.ID)] = t.Name
		}
	} else {
		ids := make([]int64, 0, len(owners))
		for _, owner := range owners {
			ids = append(ids, owner.ID)
		}
		var players []player.Player
		players, err = s.playerRepo.GetByIDs(ctx, ids)
		if err != nil {
			err = storeError("get players by ids", err)
			return Board{}, err
		}
		for _, p := range players {
			names[score.PlayerOwner(p.ID)] = p.DisplayName()
		}
	}

	entries := make([]leaderboard.Entry, 0, len(owners))
	for _, owner := range owners {
		name, ok := names[owner]
		if !ok {
			name = fallbackName(owner)
		}
		entries = append(entries, leaderboard.Entry{
			Owner: owner,
			Name:  name,
			Stats: leaderboard.Aggregate(byOwner[owner], ev.ParPerHole),
		})
	}
	board.Entries = leaderboard.Rank(entries)
	return board, nil
}

// ExportXLSX writes the ranked board as a spreadsheet.
func (s *LeaderboardService) ExportXLSX(ctx context.Context, eventID int64, w io.Writer) error {
	board, err := s.Build(ctx, eventID)
	if err != nil {
		return err
	}

	header := []string{"Pos", "Name", "Out", "In", "Total", "To Par", "Thru"}
	rows := make([][]any, 0, len(board.Entries))
	for _, entry := range board.Entries {
		rows = append(rows, []any{
			PositionLabel(entry),
			entry.Name,
			entry.Stats.FrontStrokes,
			entry.Stats.BackStrokes,
			entry.Stats.TotalStrokes,
			ScoreToParLabel(entry.Stats.ScoreToPar),
			entry.Stats.HolesPlayed,
		})
	}
	if err := scorecard.WriteXLSX(w, "Leaderboard", header, rows); err != nil {
		return fmt.Errorf("write leaderboard xlsx: %w", err)
	}
	return nil
}

// PositionLabel renders "T2" for tied positions.
func PositionLabel(entry leaderboard.Entry) string {
	if entry.Tied {
		return "T" + strconv.Itoa(entry.Position)
	}
	return strconv.Itoa(entry.Position)
}

// ScoreToParLabel renders E, +3 or -2.
func ScoreToParLabel(scoreToPar int) string {
	switch {
	case scoreToPar == 0:
		return "E"
	case scoreToPar > 0:
		return "+" + strconv.Itoa(scoreToPar)
	default:
		return strconv.Itoa(scoreToPar)
	}
}

// groupByOwner lists owners in roster order followed by owners that only
// appear on scores, and buckets scores per owner. Scores whose owner kind does
// not match scope are left out.
func groupByOwner(scope event.Scope, teams []team.Team, scores []score.Score) ([]score.Owner, map[score.Owner][]score.Score) {
	var owners []score.Owner
	seen := make(map[score.Owner]struct{})
	add := func(owner score.Owner) {
		if _, ok := seen[owner]; ok {
			return
		}
		seen[owner] = struct{}{}
		owners = append(owners, owner)
	}

	for _, t := range teams {
		if scope == event.ScopeTeam {
			add(score.TeamOwner(t.ID))
			continue
		}
		for _, id := range t.PlayerIDs() {
			add(score.PlayerOwner(id))
		}
	}

	wantKind := score.OwnerPlayer
	if scope == event.ScopeTeam {
		wantKind = score.OwnerTeam
	}
	byOwner := make(map[score.Owner][]score.Score)
	for _, item := range scores {
		owner := item.Owner()
		if owner.Kind != wantKind {
			continue
		}
		add(owner)
		byOwner[owner] = append(byOwner[owner], item)
	}
	return owners, byOwner
}

func fallbackName(owner score.Owner) string {
	if owner.Kind == score.OwnerTeam {
		return "Team #" + strconv.FormatInt(owner.ID, 10)
	}
	return "Player #" + strconv.FormatInt(owner.ID, 10)
}
