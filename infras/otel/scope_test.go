package otel_test

import (
	"context"
	"drivent/infras/otel"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestScope(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := trace.NewTracerProvider(trace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("test").Start(context.Background(), "service.Make")
	scope := otel.NewScope(span)

	scope.SetAttributes(map[string]any{
		"booking.room_id": 4,
		"booking.trade":   true,
		"booking.user":    "ana",
	})
	scope.AddEvent("room locked")
	scope.TraceIfError(nil)
	scope.TraceIfError(errors.New("room without capacity"))
	scope.End()

	spans := recorder.Ended()
	assert.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "room without capacity", spans[0].Status().Description)
	assert.Len(t, spans[0].Attributes(), 3)
	assert.Len(t, spans[0].Events(), 2)
}
