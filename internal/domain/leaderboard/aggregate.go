package leaderboard

import (
	"github.com/riskibarqy/golf-scoring/internal/domain/event"
	"github.com/riskibarqy/golf-scoring/internal/domain/score"
)

const frontNine = 9

// Stats is the per-owner stroke summary used for ranking.
type Stats struct {
	FrontStrokes int
	BackStrokes  int
	TotalStrokes int
	FrontPar     int
	BackPar      int
	TotalPar     int
	ScoreToPar   int
	Last3Strokes int
	HolesPlayed  int
}

type holeResult struct {
	strokes int
	par     *int
}

// Aggregate summarises one owner's scores against the event layout.
// Holes without a score count as zero strokes.
func Aggregate(scores []score.Score, parPerHole []int) Stats {
	holeCount := len(parPerHole)
	byHole := make(map[int]holeResult, len(scores))
	for _, item := range scores {
		byHole[item.HoleNumber] = holeResult{strokes: item.Strokes, par: item.Par}
	}

	frontEnd := min(frontNine, holeCount)
	backStart, backEnd := frontNine+1, event.MaxHoles
	if holeCount != event.MaxHoles {
		backStart, backEnd = 1, 0
	}

	var stats Stats
	stats.FrontStrokes = strokesOver(byHole, 1, frontEnd)
	stats.BackStrokes = strokesOver(byHole, backStart, backEnd)
	stats.FrontPar = parOver(byHole, parPerHole, 1, frontEnd)
	stats.BackPar = parOver(byHole, parPerHole, backStart, backEnd)
	stats.TotalStrokes = stats.FrontStrokes + stats.BackStrokes
	stats.TotalPar = stats.FrontPar + stats.BackPar
	stats.ScoreToPar = stats.TotalStrokes - stats.TotalPar
	if holeCount >= 3 {
		stats.Last3Strokes = strokesOver(byHole, holeCount-2, holeCount)
	}
	for hole := range byHole {
		if hole >= 1 && hole <= holeCount {
			stats.HolesPlayed++
		}
	}

	return stats
}

func strokesOver(byHole map[int]holeResult, from, to int) int {
	total := 0
	for hole := from; hole <= to; hole++ {
		total += byHole[hole].strokes
	}
	return total
}

// parOver prefers the par recorded with the score, then the layout par, then
// the default.
func parOver(byHole map[int]holeResult, parPerHole []int, from, to int) int {
	total := 0
	for hole := from; hole <= to; hole++ {
		switch {
		case byHole[hole].par != nil:
			total += *byHole[hole].par
		case hole-1 < len(parPerHole):
			total += parPerHole[hole-1]
		default:
			total += event.DefaultPar
		}
	}
	return total
}
