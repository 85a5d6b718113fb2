package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/golf-scoring/internal/config"
	"github.com/riskibarqy/golf-scoring/internal/domain/event"
	"github.com/riskibarqy/golf-scoring/internal/interfaces/httpapi"
	"github.com/riskibarqy/golf-scoring/internal/observability"
	"github.com/riskibarqy/golf-scoring/internal/platform/logging"
	"github.com/riskibarqy/golf-scoring/internal/usecase"
)

// Services groups the usecase layer built over one set of repositories.
type Services struct {
	Events      *usecase.EventService
	Teams       *usecase.TeamService
	Players     *usecase.PlayerService
	Scores      *usecase.ScoreService
	Leaderboard *usecase.LeaderboardService
}

func NewServices(cfg config.Config, repos Repositories, logger *logging.Logger) Services {
	return Services{
		Events:      usecase.NewEventService(repos.Events, event.NewShareCodeGenerator(), logger.Named("events")),
		Teams:       usecase.NewTeamService(repos.Events, repos.Teams, repos.Players, logger.Named("teams")),
		Players:     usecase.NewPlayerService(repos.Players, logger.Named("players")),
		Scores:      usecase.NewScoreService(repos.Events, repos.Teams, repos.Players, repos.Scores, cfg.ScorecardWorkers, logger.Named("scores")),
		Leaderboard: usecase.NewLeaderboardService(repos.Events, repos.Teams, repos.Players, repos.Scores),
	}
}

// NewHTTPServer wires store, services and router. The returned close func
// must run after the server has shut down.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	repos, closeRepos, err := OpenRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	services := NewServices(cfg, repos, logger)

	var metrics *observability.Metrics
	if cfg.MetricsEnabled {
		metrics = observability.NewMetrics()
		metrics.RegisterCache(repos.Cache)
	}

	handler := httpapi.NewHandler(
		services.Events,
		services.Teams,
		services.Players,
		services.Scores,
		services.Leaderboard,
		logger,
		int64(cfg.ScorecardMaxUploadBytes),
	)
	router := httpapi.NewRouter(handler, logger, httpapi.RouterOptions{
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		Metrics:            metrics,
		PublicLimiter:      httpapi.NewClientRateLimiter(cfg.PublicScoringRate, cfg.PublicScoringBurst),
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, closeRepos, nil
}
