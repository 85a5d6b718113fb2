package httpapi

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClientRateLimiter_PerClientBuckets(t *testing.T) {
	limiter := NewClientRateLimiter(1, 2)
	now := time.Date(2026, 4, 18, 8, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	for i := range 2 {
		if !limiter.Allow("203.0.113.7") {
			t.Fatalf("request %d should fit in the burst", i+1)
		}
	}
	if limiter.Allow("203.0.113.7") {
		t.Fatalf("third request should be limited")
	}
	if !limiter.Allow("198.51.100.1") {
		t.Fatalf("other clients keep their own bucket")
	}

	now = now.Add(time.Second)
	if !limiter.Allow("203.0.113.7") {
		t.Fatalf("bucket should refill after a second")
	}
}

func TestClientRateLimiter_SweepsIdleClients(t *testing.T) {
	limiter := NewClientRateLimiter(1, 1)
	now := time.Date(2026, 4, 18, 8, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	for i := range limiterSweepThreshold + 1 {
		limiter.Allow(fmt.Sprintf("client-%d", i))
	}
	now = now.Add(2 * limiterMaxIdle)
	limiter.Allow("203.0.113.7")

	if got := len(limiter.clients); got != 1 {
		t.Fatalf("expected idle clients swept, %d remain", got)
	}
}

func TestPublicRateLimit_Rejects(t *testing.T) {
	limiter := NewClientRateLimiter(0.001, 1)
	calls := 0
	handler := PublicRateLimit(limiter, nil, func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	})

	codes := make([]int, 0, 2)
	for range 2 {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/scoring/SPRNG2", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
		handler(rec, req)
		codes = append(codes, rec.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusTooManyRequests {
		t.Fatalf("unexpected status codes %v", codes)
	}
	if calls != 1 {
		t.Fatalf("limited request reached the handler")
	}
}

func TestResolveClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{name: "fly header wins", headers: map[string]string{"Fly-Client-IP": "203.0.113.9", "X-Forwarded-For": "198.51.100.1"}, remote: "10.0.0.1:5000", want: "203.0.113.9"},
		{name: "first forwarded hop", headers: map[string]string{"X-Forwarded-For": "198.51.100.1, 10.0.0.2"}, remote: "10.0.0.1:5000", want: "198.51.100.1"},
		{name: "garbage header falls through", headers: map[string]string{"X-Real-IP": "not-an-ip"}, remote: "192.0.2.4:443", want: "192.0.2.4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			if got := resolveClientIP(req); got != tt.want {
				t.Fatalf("resolveClientIP=%q want %q", got, tt.want)
			}
		})
	}
}
