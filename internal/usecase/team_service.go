package usecase

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/riskibarqy/golf-scoring/internal/domain/event"
	"github.com/riskibarqy/golf-scoring/internal/domain/player"
	"github.com/riskibarqy/golf-scoring/internal/domain/team"
	"github.com/riskibarqy/golf-scoring/internal/platform/logging"
)

type SaveTeamInput struct {
	EventID      int64
	Name         string
	PlayerIDs    []int64
	StartingHole *int
}

type TeamService struct {
	eventRepo  event.Repository
	teamRepo   team.Repository
	playerRepo player.Repository
	logger     *logging.Logger
}

func NewTeamService(
	eventRepo event.Repository,
	teamRepo team.Repository,
	playerRepo player.Repository,
	logger *logging.Logger,
) *TeamService {
	if logger == nil {
		logger = logging.Default()
	}
	return &TeamService{
		eventRepo:  eventRepo,
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		logger:     logger,
	}
}

// ListByEvent returns the event's teams ordered by name.
func (s *TeamService) ListByEvent(ctx context.Context, eventID int64) ([]team.Team, error) {
	if _, err := requireEvent(ctx, s.eventRepo, eventID); err != nil {
		return nil, err
	}

	teams, err := s.teamRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, storeError("list teams by event", err)
	}
	sortTeams(teams)
	return teams, nil
}

// CheckRoster reports which of playerIDs already play for another team of the
// event. teamID is the team being edited, or 0 for a new team.
func (s *TeamService) CheckRoster(ctx context.Context, eventID, teamID int64, playerIDs []int64) ([]int64, error) {
	if _, err := requireEvent(ctx, s.eventRepo, eventID); err != nil {
		return nil, err
	}

	teams, err := s.teamRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, storeError("list teams by event", err)
	}
	return team.FindRosterConflicts(teams, teamID, playerIDs), nil
}

func (s *TeamService) Create(ctx context.Context, input SaveTeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Create", input.EventID)
	var err error
	defer func() { finishSpan(span, err) }()

	var item team.Team
	item, err = s.prepare(ctx, 0, input)
	if err != nil {
		return team.Team{}, err
	}

	var created team.Team
	created, err = s.teamRepo.Create(ctx, item)
	if err != nil {
		err = storeError("create team", err)
		return team.Team{}, err
	}

	s.logger.InfoContext(ctx, "team created", "event_id", created.EventID, "team_id", created.ID, "players", created.PlayerIDs())
	return created, nil
}

func (s *TeamService) Update(ctx context.Context, teamID int64, input SaveTeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Update", input.EventID)
	var err error
	defer func() { finishSpan(span, err) }()

	if _, err = s.require(ctx, input.EventID, teamID); err != nil {
		return team.Team{}, err
	}

	var item team.Team
	item, err = s.prepare(ctx, teamID, input)
	if err != nil {
		return team.Team{}, err
	}

	var updated team.Team
	updated, err = s.teamRepo.Update(ctx, item)
	if err != nil {
		err = storeError("update team", err)
		return team.Team{}, err
	}

	s.logger.InfoContext(ctx, "team updated", "event_id", updated.EventID, "team_id", updated.ID, "players", updated.PlayerIDs())
	return updated, nil
}

func (s *TeamService) Delete(ctx context.Context, eventID, teamID int64) error {
	if _, err := s.require(ctx, eventID, teamID); err != nil {
		return err
	}
	if err := s.teamRepo.Delete(ctx, eventID, teamID); err != nil {
		return storeError("delete team", err)
	}

	s.logger.InfoContext(ctx, "team deleted", "event_id", eventID, "team_id", teamID)
	return nil
}

func (s *TeamService) require(ctx context.Context, eventID, teamID int64) (team.Team, error) {
	if teamID <= 0 {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	item, exists, err := s.teamRepo.GetByID(ctx, eventID, teamID)
	if err != nil {
		return team.Team{}, storeError("get team", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%d event=%d", ErrNotFound, teamID, eventID)
	}
	return item, nil
}

// prepare validates input against the event layout, the player directory and
// the current roster snapshot. The repository repeats the roster check
// atomically with the write.
func (s *TeamService) prepare(ctx context.Context, teamID int64, input SaveTeamInput) (team.Team, error) {
	ev, err := requireEvent(ctx, s.eventRepo, input.EventID)
	if err != nil {
		return team.Team{}, err
	}

	slots, err := team.SlotsFromIDs(input.PlayerIDs)
	if err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	item := team.Team{
		ID:           teamID,
		EventID:      ev.ID,
		Name:         strings.TrimSpace(input.Name),
		Slots:        slots,
		StartingHole: input.StartingHole,
	}
	if err := item.Validate(ev.HoleCount); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	ids := item.PlayerIDs()
	known, err := s.playerRepo.GetByIDs(ctx, ids)
	if err != nil {
		return team.Team{}, storeError("get players by ids", err)
	}
	if missing := missingPlayers(ids, known); len(missing) > 0 {
		return team.Team{}, fmt.Errorf("%w: unknown player ids %v", ErrInvalidInput, missing)
	}

	teams, err := s.teamRepo.ListByEvent(ctx, ev.ID)
	if err != nil {
		return team.Team{}, storeError("list teams by event", err)
	}
	if err := team.CheckRoster(teams, teamID, ids); err != nil {
		return team.Team{}, err
	}

	return item, nil
}

func missingPlayers(ids []int64, known []player.Player) []int64 {
	found := make(map[int64]struct{}, len(known))
	for _, p := range known {
		found[p.ID] = struct{}{}
	}
	var missing []int64
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

func sortTeams(teams []team.Team) {
	slices.SortStableFunc(teams, func(a, b team.Team) int {
		if c := strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}
