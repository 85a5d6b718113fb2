package usecase

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/golf-scoring/internal/domain/event"
	"github.com/riskibarqy/golf-scoring/internal/domain/player"
	"github.com/riskibarqy/golf-scoring/internal/domain/score"
	"github.com/riskibarqy/golf-scoring/internal/domain/team"
	"github.com/riskibarqy/golf-scoring/internal/platform/logging"
	"github.com/riskibarqy/golf-scoring/internal/platform/scorecard"
)

const defaultScorecardWorkers = 4

// ScorecardInput is a batch of hole scores for one owner.
type ScorecardInput struct {
	EventID  int64
	TeamID   *int64
	PlayerID *int64
	// Strokes maps hole number to strokes.
	Strokes map[int]int
}

type ImportResult struct {
	Rows      int      `json:"rows"`
	Scores    int      `json:"scores"`
	Unmatched []string `json:"unmatched"`
}

type ScoreService struct {
	eventRepo  event.Repository
	teamRepo   team.Repository
	playerRepo player.Repository
	scoreRepo  score.Repository
	workers    int
	logger     *logging.Logger
}

func NewScoreService(
	eventRepo event.Repository,
	teamRepo team.Repository,
	playerRepo player.Repository,
	scoreRepo score.Repository,
	workers int,
	logger *logging.Logger,
) *ScoreService {
	if workers <= 0 {
		workers = defaultScorecardWorkers
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &ScoreService{
		eventRepo:  eventRepo,
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		scoreRepo:  scoreRepo,
		workers:    workers,
		logger:     logger,
	}
}

// List returns the event's scores, optionally for one owner, by hole.
func (s *ScoreService) List(ctx context.Context, eventID int64, filter score.Filter) ([]score.Score, error) {
	if _, err := requireEvent(ctx, s.eventRepo, eventID); err != nil {
		return nil, err
	}

	items, err := s.scoreRepo.ListByEvent(ctx, eventID, filter)
	if err != nil {
		return nil, storeError("list scores by event", err)
	}
	slices.SortStableFunc(items, func(a, b score.Score) int {
		return cmp.Compare(a.HoleNumber, b.HoleNumber)
	})
	return items, nil
}

// Upsert records strokes for one hole, replacing any earlier entry under the
// same key.
func (s *ScoreService) Upsert(ctx context.Context, req score.UpsertRequest) (score.Score, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoreService.Upsert", req.EventID)
	var err error
	defer func() { finishSpan(span, err) }()

	var ev event.Event
	ev, err = requireWritableEvent(ctx, s.eventRepo, req.EventID)
	if err != nil {
		return score.Score{}, err
	}
	if err = s.checkOwner(ctx, ev, req.TeamID, req.PlayerID); err != nil {
		return score.Score{}, err
	}

	var res score.Resolution
	res, err = resolveWrite(ev, req)
	if err != nil {
		return score.Score{}, err
	}

	var saved score.Score
	saved, err = s.scoreRepo.Upsert(ctx, res.Key, res.Payload)
	if err != nil {
		err = storeError("upsert score", err)
		return score.Score{}, err
	}

	s.logger.DebugContext(ctx, "score recorded",
		"event_id", ev.ID,
		"owner", string(res.Key.Owner.Kind),
		"owner_id", res.Key.Owner.ID,
		"hole", res.Key.HoleNumber,
		"strokes", saved.Strokes,
	)
	return saved, nil
}

// Clear deletes the entry for one hole. Clearing an empty hole succeeds.
func (s *ScoreService) Clear(ctx context.Context, eventID int64, teamID, playerID *int64, hole int) error {
	ev, err := requireWritableEvent(ctx, s.eventRepo, eventID)
	if err != nil {
		return err
	}
	if err := checkSingleOwner(teamID, playerID); err != nil {
		return err
	}
	if hole < 1 || hole > ev.HoleCount {
		return fmt.Errorf("%w: hole number must be between 1 and %d", ErrInvalidInput, ev.HoleCount)
	}

	key := score.DeleteKey(eventID, teamID, playerID, hole)
	if err := s.scoreRepo.Delete(ctx, key); err != nil {
		return storeError("delete score", err)
	}

	s.logger.DebugContext(ctx, "score cleared", "event_id", eventID, "owner", string(key.Owner.Kind), "owner_id", key.Owner.ID, "hole", hole)
	return nil
}

// SubmitScorecard validates every hole before writing any, then stores them
// all or none. Returned scores are ordered by hole.
func (s *ScoreService) SubmitScorecard(ctx context.Context, input ScorecardInput) ([]score.Score, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoreService.SubmitScorecard", input.EventID)
	var err error
	defer func() { finishSpan(span, err) }()

	var ev event.Event
	ev, err = requireWritableEvent(ctx, s.eventRepo, input.EventID)
	if err != nil {
		return nil, err
	}
	if err = s.checkOwner(ctx, ev, input.TeamID, input.PlayerID); err != nil {
		return nil, err
	}
	if len(input.Strokes) == 0 {
		err = fmt.Errorf("%w: scorecard has no holes", ErrInvalidInput)
		return nil, err
	}

	resolutions := make([]score.Resolution, 0, len(input.Strokes))
	for hole, strokes := range input.Strokes {
		var res score.Resolution
		res, err = resolveWrite(ev, score.UpsertRequest{
			EventID:    ev.ID,
			TeamID:     input.TeamID,
			PlayerID:   input.PlayerID,
			HoleNumber: hole,
			Strokes:    strokes,
		})
		if err != nil {
			return nil, err
		}
		resolutions = append(resolutions, res)
	}

	var saved []score.Score
	saved, err = s.writeAll(ctx, resolutions)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "scorecard submitted", "event_id", ev.ID, "holes", len(saved))
	return saved, nil
}

// ImportScorecard reads a paper scorecard exported as xlsx and records every
// filled hole. Rows are matched to teams by name for team formats and to
// rostered players ("Last, First" or "First Last") otherwise. Rows that match
// nobody are reported back, not rejected. Nothing is written unless every
// matched row is valid.
func (s *ScoreService) ImportScorecard(ctx context.Context, eventID int64, r io.Reader) (ImportResult, error) {
	ev, err := requireWritableEvent(ctx, s.eventRepo, eventID)
	if err != nil {
		return ImportResult{}, err
	}

	card, err := scorecard.ParseXLSX(r)
	if err != nil {
		return ImportResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if len(card.Par) > ev.HoleCount {
		return ImportResult{}, fmt.Errorf("%w: scorecard has %d holes, event has %d", ErrInvalidInput, len(card.Par), ev.HoleCount)
	}

	owners, err := s.ownersByName(ctx, ev)
	if err != nil {
		return ImportResult{}, err
	}

	result := ImportResult{Rows: len(card.Rows), Unmatched: []string{}}
	perRow, err := s.resolveRows(ev, card.Rows, owners)
	if err != nil {
		return ImportResult{}, err
	}

	// A later row for the same owner and hole replaces the earlier one.
	var resolutions []score.Resolution
	at := make(map[score.Key]int)
	for i, row := range card.Rows {
		if _, ok := owners[nameKey(row.Name)]; !ok {
			result.Unmatched = append(result.Unmatched, row.Name)
			continue
		}
		for _, res := range perRow[i] {
			if idx, seen := at[res.Key]; seen {
				resolutions[idx] = res
				continue
			}
			at[res.Key] = len(resolutions)
			resolutions = append(resolutions, res)
		}
	}

	if len(resolutions) > 0 {
		saved, err := s.writeAll(ctx, resolutions)
		if err != nil {
			return ImportResult{}, err
		}
		result.Scores = len(saved)
	}

	s.logger.InfoContext(ctx, "scorecard imported",
		"event_id", ev.ID,
		"rows", result.Rows,
		"scores", result.Scores,
		"unmatched", len(result.Unmatched),
	)
	return result, nil
}

// resolveRows validates the matched rows on the worker pool. The result is
// indexed like rows; unmatched rows stay nil. The error of the earliest
// failing row wins.
func (s *ScoreService) resolveRows(ev event.Event, rows []scorecard.Row, owners map[string]score.Owner) ([][]score.Resolution, error) {
	out := make([][]score.Resolution, len(rows))
	if len(rows) == 0 {
		return out, nil
	}
	errs := make([]error, len(rows))

	pool, err := ants.NewPool(min(s.workers, len(rows)))
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for i, row := range rows {
		owner, ok := owners[nameKey(row.Name)]
		if !ok {
			continue
		}
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			out[i], errs[i] = resolveRow(ev, row, owner)
		}); err != nil {
			workers.Done()
			workers.Wait()
			return nil, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}
	workers.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("line %d (%s): %w", rows[i].Line, rows[i].Name, err)
		}
	}
	return out, nil
}

func resolveRow(ev event.Event, row scorecard.Row, owner score.Owner) ([]score.Resolution, error) {
	req := score.UpsertRequest{EventID: ev.ID}
	id := owner.ID
	if owner.Kind == score.OwnerTeam {
		req.TeamID = &id
	} else {
		req.PlayerID = &id
	}

	holes := make([]int, 0, len(row.Strokes))
	for hole := range row.Strokes {
		holes = append(holes, hole)
	}
	slices.Sort(holes)

	out := make([]score.Resolution, 0, len(holes))
	for _, hole := range holes {
		req.HoleNumber = hole
		req.Strokes = row.Strokes[hole]
		res, err := resolveWrite(ev, req)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}

// writeAll stores the batch atomically. Returned scores are ordered by hole.
func (s *ScoreService) writeAll(ctx context.Context, resolutions []score.Resolution) ([]score.Score, error) {
	saved, err := s.scoreRepo.UpsertMany(ctx, resolutions)
	if err != nil {
		return nil, storeError("upsert scores", err)
	}
	sort.SliceStable(saved, func(i, j int) bool {
		return saved[i].HoleNumber < saved[j].HoleNumber
	})
	return saved, nil
}

// checkOwner enforces the owner shape for the event format and that the owner
// exists: a team of the event, or a known player.
func (s *ScoreService) checkOwner(ctx context.Context, ev event.Event, teamID, playerID *int64) error {
	if err := checkSingleOwner(teamID, playerID); err != nil {
		return err
	}

	scope := ev.Format.ScoringScope()
	switch {
	case teamID != nil:
		if scope != event.ScopeTeam {
			return fmt.Errorf("%w: %s events are scored per player", ErrInvalidInput, ev.Format)
		}
		_, exists, err := s.teamRepo.GetByID(ctx, ev.ID, *teamID)
		if err != nil {
			return storeError("get team", err)
		}
		if !exists {
			return fmt.Errorf("%w: team=%d event=%d", ErrNotFound, *teamID, ev.ID)
		}
	default:
		if scope != event.ScopePlayer {
			return fmt.Errorf("%w: %s events are scored per team", ErrInvalidInput, ev.Format)
		}
		_, exists, err := s.playerRepo.GetByID(ctx, *playerID)
		if err != nil {
			return storeError("get player", err)
		}
		if !exists {
			return fmt.Errorf("%w: player=%d", ErrNotFound, *playerID)
		}
	}
	return nil
}

func (s *ScoreService) ownersByName(ctx context.Context, ev event.Event) (map[string]score.Owner, error) {
	teams, err := s.teamRepo.ListByEvent(ctx, ev.ID)
	if err != nil {
		return nil, storeError("list teams by event", err)
	}

	owners := make(map[string]score.Owner)
	if ev.Format.ScoringScope() == event.ScopeTeam {
		for _, t := range teams {
			owners[nameKey(t.Name)] = score.TeamOwner(t.ID)
		}
		return owners, nil
	}

	var ids []int64
	for _, t := range teams {
		ids = append(ids, t.PlayerIDs()...)
	}
	players, err := s.playerRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, storeError("get players by ids", err)
	}
	for _, p := range players {
		owners[nameKey(p.DisplayName())] = score.PlayerOwner(p.ID)
		owners[nameKey(p.FirstName+" "+p.LastName)] = score.PlayerOwner(p.ID)
	}
	return owners, nil
}

// resolveWrite validates a single hole write against the event layout and
// stamps the hole par when the caller did not send one.
func resolveWrite(ev event.Event, req score.UpsertRequest) (score.Resolution, error) {
	res := score.Resolve(req)
	if res.Payload.Par == nil && req.HoleNumber >= 1 && req.HoleNumber <= ev.HoleCount {
		par := ev.ParForHole(req.HoleNumber)
		res.Payload.Par = &par
	}
	if err := res.Payload.Validate(ev.HoleCount); err != nil {
		return score.Resolution{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return res, nil
}

func checkSingleOwner(teamID, playerID *int64) error {
	if (teamID == nil) == (playerID == nil) {
		return fmt.Errorf("%w: exactly one of team_id or player_id is required", ErrInvalidInput)
	}
	return nil
}

func nameKey(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
