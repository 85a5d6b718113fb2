package event

import (
	"fmt"
	"strings"
	"time"
)

// Format is the competition format played at an event.
type Format string

const (
	FormatScramble   Format = "Scramble"
	FormatBestBall   Format = "Best Ball"
	FormatStrokePlay Format = "Stroke Play"
	FormatMatchPlay  Format = "Match Play"
)

var AllFormats = map[Format]struct{}{
	FormatScramble:   {},
	FormatBestBall:   {},
	FormatStrokePlay: {},
	FormatMatchPlay:  {},
}

// Scope says who owns a score row for a given format.
type Scope string

const (
	ScopeTeam   Scope = "team"
	ScopePlayer Scope = "player"
)

// ScoringScope reports whether scores are kept per team or per player.
func (f Format) ScoringScope() Scope {
	switch f {
	case FormatScramble, FormatBestBall:
		return ScopeTeam
	default:
		return ScopePlayer
	}
}

type Status string

const (
	StatusUpcoming   Status = "Upcoming"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
)

var AllStatuses = map[Status]struct{}{
	StatusUpcoming:   {},
	StatusInProgress: {},
	StatusCompleted:  {},
}

// Event is a single golf outing with its course layout.
type Event struct {
	ID         int64
	Name       string
	Date       time.Time
	CourseName string
	Tees       string
	Format     Format
	HoleCount  int
	ParPerHole []int
	Locked     bool
	ShareCode  string
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Normalized returns a copy whose layout satisfies len(ParPerHole) == HoleCount.
func (e Event) Normalized() Event {
	out := e
	out.HoleCount = NormalizeHoleCount(e.HoleCount)
	out.ParPerHole = NormalizeParPerHole(out.HoleCount, e.ParPerHole)
	return out
}

// ParForHole returns the layout par for a 1-based hole, or DefaultPar when
// the hole is outside the layout.
func (e Event) ParForHole(hole int) int {
	if hole < 1 || hole > len(e.ParPerHole) {
		return DefaultPar
	}
	return e.ParPerHole[hole-1]
}

func (e Event) TotalPar() int {
	total := 0
	for _, par := range e.ParPerHole {
		total += par
	}
	return total
}

func (e Event) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("event name is required")
	}
	if e.Date.IsZero() {
		return fmt.Errorf("event date is required")
	}
	if strings.TrimSpace(e.CourseName) == "" {
		return fmt.Errorf("event course name is required")
	}
	if _, ok := AllFormats[e.Format]; !ok {
		return fmt.Errorf("invalid event format: %s", e.Format)
	}
	if _, ok := AllStatuses[e.Status]; !ok {
		return fmt.Errorf("invalid event status: %s", e.Status)
	}
	if e.HoleCount != NineHoles && e.HoleCount != MaxHoles {
		return fmt.Errorf("event hole count must be %d or %d, got %d", NineHoles, MaxHoles, e.HoleCount)
	}
	if len(e.ParPerHole) != e.HoleCount {
		return fmt.Errorf("event par list has %d entries, expected %d", len(e.ParPerHole), e.HoleCount)
	}
	for i, par := range e.ParPerHole {
		if par <= 0 {
			return fmt.Errorf("par for hole %d must be greater than zero", i+1)
		}
	}
	if !ValidShareCode(e.ShareCode) {
		return fmt.Errorf("invalid share code %q", e.ShareCode)
	}

	return nil
}
