package httpapi

import (
	"net/http"

	"github.com/riskibarqy/golf-scoring/internal/observability"
	"github.com/riskibarqy/golf-scoring/internal/platform/logging"
)

type RouterOptions struct {
	CORSAllowedOrigins []string
	// Metrics is optional; nil disables /metrics and request metrics.
	Metrics *observability.Metrics
	// PublicLimiter throttles the share-code routes; nil leaves them open.
	PublicLimiter *ClientRateLimiter
}

func NewRouter(handler *Handler, logger *logging.Logger, opts RouterOptions) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, opts.Metrics)
	registerEventRoutes(mux, handler)
	registerTeamRoutes(mux, handler)
	registerScoreRoutes(mux, handler)
	registerPlayerRoutes(mux, handler)
	registerPublicScoringRoutes(mux, handler, opts.PublicLimiter, opts.Metrics)

	return RequestTracing(
		RequestID(
			RequestLogging(logger,
				CORS(opts.CORSAllowedOrigins,
					recoverPanic(logger,
						RequestMetrics(opts.Metrics, mux))))))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec, "path", r.URL.Path, "request_id", requestIDFromContext(ctx))
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
