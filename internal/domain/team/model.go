package team

import (
	"fmt"
	"strings"
)

// MaxPlayers is the number of roster slots on a team.
const MaxPlayers = 4

// Team is a group of up to four players entered into one event.
// Slots keeps the player1..player4 layout; zero marks an empty slot.
type Team struct {
	ID           int64
	EventID      int64
	Name         string
	Slots        [MaxPlayers]int64
	StartingHole *int
}

// PlayerIDs returns the filled slots in slot order.
func (t Team) PlayerIDs() []int64 {
	out := make([]int64, 0, MaxPlayers)
	for _, id := range t.Slots {
		if id != 0 {
			out = append(out, id)
		}
	}
	return out
}

func (t Team) HasPlayer(playerID int64) bool {
	if playerID == 0 {
		return false
	}
	for _, id := range t.Slots {
		if id == playerID {
			return true
		}
	}
	return false
}

// SlotsFromIDs packs ids into slot order. It fails when more than MaxPlayers
// ids are given.
func SlotsFromIDs(ids []int64) ([MaxPlayers]int64, error) {
	var slots [MaxPlayers]int64
	if len(ids) > MaxPlayers {
		return slots, fmt.Errorf("a team holds at most %d players, got %d", MaxPlayers, len(ids))
	}
	copy(slots[:], ids)
	return slots, nil
}

// Validate checks the team on its own. holeCount bounds the starting hole.
func (t Team) Validate(holeCount int) error {
	if t.EventID <= 0 {
		return fmt.Errorf("team event id is required")
	}
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("team name is required")
	}

	ids := t.PlayerIDs()
	if len(ids) == 0 {
		return fmt.Errorf("team needs at least one player")
	}
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if id < 0 {
			return fmt.Errorf("invalid player id %d", id)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("player %d appears twice on the team", id)
		}
		seen[id] = struct{}{}
	}

	if t.StartingHole != nil && (*t.StartingHole < 1 || *t.StartingHole > holeCount) {
		return fmt.Errorf("starting hole must be between 1 and %d", holeCount)
	}

	return nil
}
