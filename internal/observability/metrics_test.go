package observability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	basecache "github.com/riskibarqy/golf-scoring/internal/platform/cache"
)

func TestMetrics_ObserveRequest(t *testing.T) {
	m := NewMetrics()
	m.ObserveRequest(http.MethodGet, "GET /v1/events/{eventID}/leaderboard", http.StatusOK, 12*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "GET /v1/events/{eventID}/leaderboard", http.StatusOK, 8*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "", http.StatusNotFound, time.Millisecond)

	got := testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "GET /v1/events/{eventID}/leaderboard", "200"))
	if got != 2 {
		t.Fatalf("expected 2 leaderboard requests, got %v", got)
	}
	if got := testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "unmatched", "404")); got != 1 {
		t.Fatalf("expected unmatched route label, got %v", got)
	}
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveRequest(http.MethodGet, "/", http.StatusOK, time.Millisecond)
	m.ObserveRateLimited("/")
	m.RegisterCache(basecache.NewStore(time.Minute))
}

func TestMetrics_HandlerExposesCacheStats(t *testing.T) {
	m := NewMetrics()
	store := basecache.NewStore(time.Minute)
	m.RegisterCache(store)

	ctx := context.Background()
	load := func(context.Context) (any, error) { return 1, nil }
	for range 2 {
		if _, err := store.GetOrLoad(ctx, "event:1", load); err != nil {
			t.Fatalf("load: %v", err)
		}
	}

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := rec.Body.String()
	for _, want := range []string{
		"golf_scoring_cache_hits_total 1",
		"golf_scoring_cache_misses_total 1",
		"golf_scoring_cache_entries 1",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %q in metrics output", want)
		}
	}
}
