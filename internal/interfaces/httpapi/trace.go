package httpapi

import (
	"context"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var apiTracer = otel.Tracer("golf-scoring/internal/interfaces/httpapi")
var noopSpan = trace.SpanFromContext(context.Background())

// spanPathValues are the route wildcards copied onto handler spans. Share
// codes grant write access and stay out of traces.
var spanPathValues = []string{"eventID", "teamID", "playerID"}

func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		// Filtered routes such as /healthz carry no parent span.
		return ctx, noopSpan
	}
	if !shouldCreateHTTPAPISpan(name) {
		return ctx, noopSpan
	}
	return apiTracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// startHandlerSpan opens the span for one handler, tagged with the matched
// route and the ids in its path.
func startHandlerSpan(r *http.Request, handler string) (context.Context, trace.Span) {
	return startSpan(r.Context(), "httpapi.Handler."+handler, handlerSpanAttributes(r)...)
}

func handlerSpanAttributes(r *http.Request) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, len(spanPathValues)+1)
	if r.Pattern != "" {
		attrs = append(attrs, attribute.String("http.route", r.Pattern))
	}
	for _, name := range spanPathValues {
		if v := strings.TrimSpace(r.PathValue(name)); v != "" {
			attrs = append(attrs, attribute.String("golf."+name, v))
		}
	}
	return attrs
}

func shouldCreateHTTPAPISpan(name string) bool {
	return strings.HasPrefix(name, "httpapi.Handler.")
}
