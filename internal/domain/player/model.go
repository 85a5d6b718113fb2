package player

import (
	"fmt"
	"net/mail"
	"strings"
)

// DefaultHandicap is assigned to profiles created without one.
const DefaultHandicap = 18.0

// Player is a golfer profile. Players exist independently of events.
type Player struct {
	ID        int64
	FirstName string
	LastName  string
	Email     *string
	Phone     *string
	Handicap  *float64
}

// DisplayName renders "Last, First" as used on leaderboards.
func (p Player) DisplayName() string {
	first := strings.TrimSpace(p.FirstName)
	last := strings.TrimSpace(p.LastName)
	switch {
	case last == "":
		return first
	case first == "":
		return last
	default:
		return last + ", " + first
	}
}

func (p Player) Validate() error {
	if strings.TrimSpace(p.FirstName) == "" {
		return fmt.Errorf("player first name is required")
	}
	if strings.TrimSpace(p.LastName) == "" {
		return fmt.Errorf("player last name is required")
	}
	if p.Email != nil {
		if err := ValidateEmail(*p.Email); err != nil {
			return err
		}
	}
	if p.Handicap != nil && (*p.Handicap < -10 || *p.Handicap > 54) {
		return fmt.Errorf("player handicap %.1f is out of range", *p.Handicap)
	}

	return nil
}

func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || !strings.Contains(email[strings.LastIndex(email, "@")+1:], ".") {
		return fmt.Errorf("invalid email address %q", email)
	}
	return nil
}
