package observability

import (
	"context"
	"errors"
	"net/http"
	"net/http/pprof"
	"runtime"
	"time"

	"github.com/riskibarqy/golf-scoring/internal/config"
	"github.com/riskibarqy/golf-scoring/internal/platform/logging"
)

// mutexProfileFraction samples one in n contended lock events. The memory
// store serializes writes behind a single RWMutex, so contention shows up here.
const mutexProfileFraction = 5

var namedProfiles = []string{"heap", "allocs", "goroutine", "mutex", "threadcreate"}

// DebugServer serves pprof on its own listener, away from the public API.
type DebugServer struct {
	srv    *http.Server
	logger *logging.Logger
}

// StartDebugServer returns nil when PPROF_ENABLED is false. A nil server is
// safe to Stop.
func StartDebugServer(cfg config.Config, logger *logging.Logger) *DebugServer {
	if logger == nil {
		logger = logging.Default()
	}
	logger = logger.Named("pprof")

	if !cfg.PprofEnabled {
		logger.Info("pprof disabled", "reason", "PPROF_ENABLED=false")
		return nil
	}

	runtime.SetMutexProfileFraction(mutexProfileFraction)

	d := &DebugServer{
		srv: &http.Server{
			Addr:              cfg.PprofAddr,
			Handler:           debugMux(),
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}

	go func() {
		logger.Info("pprof server starting", "addr", cfg.PprofAddr)
		if err := d.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("pprof server failed", "error", err)
		}
	}()

	return d
}

func (d *DebugServer) Stop(timeout time.Duration) error {
	if d == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	runtime.SetMutexProfileFraction(0)
	if err := d.srv.Shutdown(ctx); err != nil {
		return err
	}
	d.logger.Info("pprof server stopped")
	return nil
}

func debugMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /debug/pprof/", pprof.Index)
	mux.HandleFunc("GET /debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("GET /debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("GET /debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("POST /debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("GET /debug/pprof/trace", pprof.Trace)
	for _, name := range namedProfiles {
		mux.Handle("GET /debug/pprof/"+name, pprof.Handler(name))
	}
	return mux
}
