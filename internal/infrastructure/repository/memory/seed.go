package memory

import (
	_ "embed"
	"fmt"
	"time"

	"github.com/riskibarqy/golf-scoring/internal/domain/event"
	"github.com/riskibarqy/golf-scoring/internal/domain/player"
	"github.com/riskibarqy/golf-scoring/internal/domain/score"
	"github.com/riskibarqy/golf-scoring/internal/domain/team"
	"gopkg.in/yaml.v3"
)

//go:embed seeddata/demo.yaml
var demoSeed []byte

// Seed is a fixture set loaded into a Store.
type Seed struct {
	Players []seedPlayer `yaml:"players"`
	Events  []seedEvent  `yaml:"events"`
	Teams   []seedTeam   `yaml:"teams"`
	Scores  []seedScore  `yaml:"scores"`
}

type seedPlayer struct {
	ID        int64    `yaml:"id"`
	FirstName string   `yaml:"first_name"`
	LastName  string   `yaml:"last_name"`
	Email     *string  `yaml:"email"`
	Phone     *string  `yaml:"phone"`
	Handicap  *float64 `yaml:"handicap"`
}

type seedEvent struct {
	ID         int64  `yaml:"id"`
	Name       string `yaml:"name"`
	Date       string `yaml:"date"`
	CourseName string `yaml:"course_name"`
	Tees       string `yaml:"tees"`
	Format     string `yaml:"format"`
	HoleCount  int    `yaml:"hole_count"`
	ParPerHole []int  `yaml:"par_per_hole"`
	Locked     bool   `yaml:"locked"`
	ShareCode  string `yaml:"share_code"`
	Status     string `yaml:"status"`
}

type seedTeam struct {
	ID           int64   `yaml:"id"`
	EventID      int64   `yaml:"event_id"`
	Name         string  `yaml:"name"`
	Players      []int64 `yaml:"players"`
	StartingHole *int    `yaml:"starting_hole"`
}

type seedScore struct {
	EventID  int64  `yaml:"event_id"`
	TeamID   *int64 `yaml:"team_id"`
	PlayerID *int64 `yaml:"player_id"`
	Hole     int    `yaml:"hole"`
	Strokes  int    `yaml:"strokes"`
}

// DemoSeed returns the bundled demo fixtures.
func DemoSeed() (Seed, error) {
	return ParseSeed(demoSeed)
}

func ParseSeed(raw []byte) (Seed, error) {
	var seed Seed
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return Seed{}, fmt.Errorf("decode seed: %w", err)
	}
	return seed, nil
}

// Load inserts seed rows as-is, keeping their ids. Events are normalized on
// read like any other stored row, so seeds may omit par lists.
func (s *Store) Load(seed Seed) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	for _, p := range seed.Players {
		s.players[p.ID] = player.Player{
			ID:        p.ID,
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Email:     p.Email,
			Phone:     p.Phone,
			Handicap:  p.Handicap,
		}
		s.lastPlayerID = max(s.lastPlayerID, p.ID)
	}

	for _, e := range seed.Events {
		date, err := time.Parse(time.DateOnly, e.Date)
		if err != nil {
			return fmt.Errorf("seed event %d: parse date: %w", e.ID, err)
		}
		s.events[e.ID] = event.Event{
			ID:         e.ID,
			Name:       e.Name,
			Date:       date,
			CourseName: e.CourseName,
			Tees:       e.Tees,
			Format:     event.Format(e.Format),
			HoleCount:  e.HoleCount,
			ParPerHole: e.ParPerHole,
			Locked:     e.Locked,
			ShareCode:  event.CanonicalShareCode(e.ShareCode),
			Status:     event.Status(e.Status),
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		s.lastEventID = max(s.lastEventID, e.ID)
	}

	for _, t := range seed.Teams {
		slots, err := team.SlotsFromIDs(t.Players)
		if err != nil {
			return fmt.Errorf("seed team %d: %w", t.ID, err)
		}
		s.teams[t.ID] = team.Team{
			ID:           t.ID,
			EventID:      t.EventID,
			Name:         t.Name,
			Slots:        slots,
			StartingHole: t.StartingHole,
		}
		s.lastTeamID = max(s.lastTeamID, t.ID)
	}

	for _, sc := range seed.Scores {
		ev := s.events[sc.EventID].Normalized()
		par := ev.ParForHole(sc.Hole)
		res := score.Resolve(score.UpsertRequest{
			EventID:    sc.EventID,
			TeamID:     sc.TeamID,
			PlayerID:   sc.PlayerID,
			HoleNumber: sc.Hole,
			Strokes:    sc.Strokes,
			Par:        &par,
		})
		res.Payload.UpdatedAt = now
		s.scores[res.Key] = res.Payload
	}

	return nil
}
