package score

import (
	"fmt"
	"time"
)

// Score is the stroke count for one hole, owned by exactly one team or player.
type Score struct {
	EventID    int64
	TeamID     *int64
	PlayerID   *int64
	HoleNumber int
	Strokes    int
	Par        *int
	UpdatedAt  time.Time
}

// Owner identifies the team or player a score belongs to.
type Owner struct {
	Kind OwnerKind
	ID   int64
}

type OwnerKind string

const (
	OwnerTeam   OwnerKind = "team"
	OwnerPlayer OwnerKind = "player"
)

func TeamOwner(id int64) Owner   { return Owner{Kind: OwnerTeam, ID: id} }
func PlayerOwner(id int64) Owner { return Owner{Kind: OwnerPlayer, ID: id} }

// Owner reports the row owner. The team reference wins when both are set,
// mirroring the key selection in Resolve.
func (s Score) Owner() Owner {
	if s.TeamID != nil {
		return TeamOwner(*s.TeamID)
	}
	if s.PlayerID != nil {
		return PlayerOwner(*s.PlayerID)
	}
	return Owner{}
}

func (s Score) Validate(holeCount int) error {
	if s.EventID <= 0 {
		return fmt.Errorf("score event id is required")
	}
	if (s.TeamID == nil) == (s.PlayerID == nil) {
		return fmt.Errorf("score must reference exactly one of team or player")
	}
	if s.TeamID != nil && *s.TeamID <= 0 {
		return fmt.Errorf("score team id must be positive")
	}
	if s.PlayerID != nil && *s.PlayerID <= 0 {
		return fmt.Errorf("score player id must be positive")
	}
	if s.HoleNumber < 1 || s.HoleNumber > holeCount {
		return fmt.Errorf("hole number must be between 1 and %d, got %d", holeCount, s.HoleNumber)
	}
	if s.Strokes < 0 {
		return fmt.Errorf("strokes cannot be negative")
	}
	if s.Par != nil && *s.Par <= 0 {
		return fmt.Errorf("par must be greater than zero")
	}

	return nil
}

// Filter narrows ListByEvent to one owner; a nil field means no filter.
type Filter struct {
	TeamID   *int64
	PlayerID *int64
}
