package team

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrRosterConflict = errors.New("player already on another team")

// RosterConflictError lists every proposed player already rostered elsewhere
// in the event.
type RosterConflictError struct {
	PlayerIDs []int64
}

func (e *RosterConflictError) Error() string {
	ids := make([]string, 0, len(e.PlayerIDs))
	for _, id := range e.PlayerIDs {
		ids = append(ids, strconv.FormatInt(id, 10))
	}
	return fmt.Sprintf("%s: players %s", ErrRosterConflict, strings.Join(ids, ", "))
}

func (e *RosterConflictError) Is(target error) bool {
	return target == ErrRosterConflict
}

// FindRosterConflicts returns the proposed players already assigned to a team
// other than editingTeamID, in proposed order and without repeats. Pass
// editingTeamID 0 when creating a team.
func FindRosterConflicts(teams []Team, editingTeamID int64, proposed []int64) []int64 {
	owner := make(map[int64]int64, len(teams)*MaxPlayers)
	for _, item := range teams {
		if editingTeamID != 0 && item.ID == editingTeamID {
			continue
		}
		for _, id := range item.PlayerIDs() {
			owner[id] = item.ID
		}
	}

	conflicts := make([]int64, 0)
	reported := make(map[int64]struct{})
	for _, id := range proposed {
		teamID, ok := owner[id]
		if !ok || teamID == editingTeamID {
			continue
		}
		if _, done := reported[id]; done {
			continue
		}
		reported[id] = struct{}{}
		conflicts = append(conflicts, id)
	}
	return conflicts
}

// CheckRoster wraps FindRosterConflicts into an error for write paths.
func CheckRoster(teams []Team, editingTeamID int64, proposed []int64) error {
	conflicts := FindRosterConflicts(teams, editingTeamID, proposed)
	if len(conflicts) == 0 {
		return nil
	}
	return &RosterConflictError{PlayerIDs: conflicts}
}
