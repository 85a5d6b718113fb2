package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/valyala/bytebufferpool"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetLeaderboard")
	defer span.End()

	eventID, err := pathID(r, "eventID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	h.writeLeaderboard(w, r.WithContext(ctx), eventID)
}

func (h *Handler) writeLeaderboard(w http.ResponseWriter, r *http.Request, eventID int64) {
	ctx := r.Context()

	board, err := h.leaderboardService.Build(ctx, eventID)
	if err != nil {
		h.fail(ctx, w, "build leaderboard failed", err, "event_id", eventID)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, boardToDTO(board))
}

// ExportLeaderboard renders the whole workbook before the first byte goes
// out, so failures still get a JSON error.
func (h *Handler) ExportLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ExportLeaderboard")
	defer span.End()

	eventID, err := pathID(r, "eventID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := h.leaderboardService.ExportXLSX(ctx, eventID, buf); err != nil {
		h.fail(ctx, w, "export leaderboard failed", err, "event_id", eventID)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "leaderboard-"+strconv.FormatInt(eventID, 10)+".xlsx"))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.B)
}
