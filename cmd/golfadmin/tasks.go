package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/riskibarqy/golf-scoring/internal/domain/event"
	"github.com/riskibarqy/golf-scoring/internal/usecase"
)

// repairLayouts writes every event back in its normalized form and returns
// how many rows it rewrote. Repositories already normalize on read, so the
// stored difference is not visible here and every event is rewritten.
func repairLayouts(ctx context.Context, events event.Repository) (int, error) {
	items, err := events.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list events: %w", err)
	}

	rewritten := 0
	for _, ev := range items {
		if _, err := events.Update(ctx, ev.Normalized()); err != nil {
			return rewritten, fmt.Errorf("update event %d: %w", ev.ID, err)
		}
		rewritten++
	}
	return rewritten, nil
}

func printBoard(w io.Writer, board usecase.Board) error {
	fmt.Fprintf(w, "%s (%s, par %d)\n", board.Event.Name, board.Event.Format, board.Event.TotalPar())

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "POS\tNAME\tOUT\tIN\tTOTAL\tTO PAR\tTHRU")
	for _, entry := range board.Entries {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%s\t%d\n",
			usecase.PositionLabel(entry),
			entry.Name,
			entry.Stats.FrontStrokes,
			entry.Stats.BackStrokes,
			entry.Stats.TotalStrokes,
			usecase.ScoreToParLabel(entry.Stats.ScoreToPar),
			entry.Stats.HolesPlayed,
		)
	}
	return tw.Flush()
}
