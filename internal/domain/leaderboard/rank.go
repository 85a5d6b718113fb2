package leaderboard

import (
	"cmp"
	"slices"

	"github.com/riskibarqy/golf-scoring/internal/domain/score"
)

// Entry is one row of a leaderboard.
type Entry struct {
	Owner    score.Owner
	Name     string
	Stats    Stats
	Position int
	Tied     bool
}

// Standing is a presentation hint for a score relative to par.
type Standing string

const (
	StandingUnder Standing = "under"
	StandingEven  Standing = "even"
	StandingOver  Standing = "over"
)

func StandingOf(scoreToPar int) Standing {
	switch {
	case scoreToPar < 0:
		return StandingUnder
	case scoreToPar > 0:
		return StandingOver
	default:
		return StandingEven
	}
}

// Compare orders by score to par, then back nine strokes, then strokes over
// the last three holes. Lower is better.
func Compare(a, b Stats) int {
	if c := cmp.Compare(a.ScoreToPar, b.ScoreToPar); c != 0 {
		return c
	}
	if c := cmp.Compare(a.BackStrokes, b.BackStrokes); c != 0 {
		return c
	}
	return cmp.Compare(a.Last3Strokes, b.Last3Strokes)
}

// Rank returns a sorted copy of entries with competition positions
// (1, 2, 2, 4). Ties keep their input order.
func Rank(entries []Entry) []Entry {
	out := slices.Clone(entries)
	slices.SortStableFunc(out, func(a, b Entry) int {
		return Compare(a.Stats, b.Stats)
	})

	for i := range out {
		out[i].Position = i + 1
		out[i].Tied = false
		if i > 0 && Compare(out[i-1].Stats, out[i].Stats) == 0 {
			out[i].Position = out[i-1].Position
			out[i].Tied = true
			out[i-1].Tied = true
		}
	}
	return out
}
