package httpapi

import (
	"net/http"

	"github.com/riskibarqy/golf-scoring/internal/observability"
)

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, metrics *observability.Metrics) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if metrics != nil {
		mux.Handle("GET /metrics", metrics.Handler())
	}
}

func registerEventRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/events", handler.ListEvents)
	mux.HandleFunc("POST /v1/events", handler.CreateEvent)
	mux.HandleFunc("GET /v1/events/{eventID}", handler.GetEvent)
	mux.HandleFunc("PATCH /v1/events/{eventID}", handler.UpdateEvent)
	mux.HandleFunc("DELETE /v1/events/{eventID}", handler.DeleteEvent)
	mux.HandleFunc("PUT /v1/events/{eventID}/lock", handler.SetEventLock)
	mux.HandleFunc("GET /v1/events/{eventID}/leaderboard", handler.GetLeaderboard)
	mux.HandleFunc("GET /v1/events/{eventID}/leaderboard/export", handler.ExportLeaderboard)
}

func registerTeamRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/events/{eventID}/teams", handler.ListTeams)
	mux.HandleFunc("POST /v1/events/{eventID}/teams", handler.CreateTeam)
	mux.HandleFunc("POST /v1/events/{eventID}/teams/roster-check", handler.CheckRoster)
	mux.HandleFunc("PUT /v1/events/{eventID}/teams/{teamID}", handler.UpdateTeam)
	mux.HandleFunc("DELETE /v1/events/{eventID}/teams/{teamID}", handler.DeleteTeam)
}

func registerScoreRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/events/{eventID}/scores", handler.ListScores)
	mux.HandleFunc("PUT /v1/events/{eventID}/scores", handler.UpsertScore)
	mux.HandleFunc("DELETE /v1/events/{eventID}/scores", handler.ClearScore)
	mux.HandleFunc("PUT /v1/events/{eventID}/scorecards", handler.SubmitScorecard)
	mux.HandleFunc("POST /v1/events/{eventID}/scorecards/import", handler.ImportScorecard)
}

func registerPlayerRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/players", handler.SearchPlayers)
	mux.HandleFunc("POST /v1/players", handler.CreatePlayer)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("PATCH /v1/players/{playerID}/contact", handler.UpdatePlayerContact)
}

func registerPublicScoringRoutes(mux *http.ServeMux, handler *Handler, limiter *ClientRateLimiter, metrics *observability.Metrics) {
	limit := func(next http.HandlerFunc) http.HandlerFunc {
		return PublicRateLimit(limiter, metrics, next)
	}

	mux.HandleFunc("GET /v1/scoring/{shareCode}", limit(handler.GetPublicEvent))
	mux.HandleFunc("PUT /v1/scoring/{shareCode}/scores", limit(handler.UpsertPublicScore))
	mux.HandleFunc("GET /v1/scoring/{shareCode}/leaderboard", limit(handler.GetPublicLeaderboard))
}
