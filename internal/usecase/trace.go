package usecase

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	usecaseTracer   = otel.Tracer("golf-scoring/internal/usecase")
	usecaseNoopSpan = trace.SpanFromContext(context.Background())
)

// startUsecaseSpan only starts a child span; calls outside a traced request
// get a no-op span.
func startUsecaseSpan(ctx context.Context, name string, eventID int64) (context.Context, trace.Span) {
	if name == "" || !trace.SpanFromContext(ctx).SpanContext().IsValid() {
		return ctx, usecaseNoopSpan
	}
	ctx, span := usecaseTracer.Start(ctx, name)
	if eventID > 0 {
		span.SetAttributes(attribute.Int64("golf.event_id", eventID))
	}
	return ctx, span
}

// finishSpan records err, if any, and ends span.
func finishSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
