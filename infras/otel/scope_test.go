package otel_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"stayops/infras/otel"
	"stayops/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func record(t *testing.T, fn func(scope otel.Scope)) sdktrace.ReadOnlySpan {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("test").Start(context.Background(), "service.availability.CheckAvailability")
	scope := otel.NewScope(span)

	fn(scope)
	scope.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)

	return ended[0]
}

func attributes(span sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	values := map[attribute.Key]attribute.Value{}
	for _, kv := range span.Attributes() {
		values[kv.Key] = kv.Value
	}

	return values
}

func TestScope_TraceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantKind   string
		wantStatus codes.Code
	}{
		{name: "conflict is an answer", err: failure.Conflict("property is already booked"), wantKind: "conflict", wantStatus: codes.Unset},
		{name: "validation is an answer", err: failure.BadRequestFromString("check_out must be after check_in"), wantKind: "validation", wantStatus: codes.Unset},
		{name: "store failure is a fault", err: errors.New("connection refused"), wantKind: "internal", wantStatus: codes.Error},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			span := record(t, func(scope otel.Scope) {
				scope.TraceIfError(nil)
				scope.TraceError(tt.err)
			})

			assert.Equal(t, tt.wantStatus, span.Status().Code)
			assert.Equal(t, tt.wantKind, attributes(span)["error.kind"].AsString())
			assert.Len(t, span.Events(), 1)
		})
	}
}

func TestScope_SetAttributes(t *testing.T) {
	checkIn := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	span := record(t, func(scope otel.Scope) {
		scope.SetAttribute("property.id", "p1")
		scope.SetAttributes(map[string]any{
			"quote.nights":   7,
			"quote.total":    1141.5,
			"stay.check_in":  checkIn,
			"stay.available": true,
			"booking.count":  int64(3),
			"booking.ids":    []string{"b1", "b2"},
			"other":          struct{ N int }{N: 1},
		})
	})

	got := attributes(span)

	assert.Equal(t, "p1", got["property.id"].AsString())
	assert.Equal(t, int64(7), got["quote.nights"].AsInt64())
	assert.InDelta(t, 1141.5, got["quote.total"].AsFloat64(), 0.0001)
	assert.Equal(t, "2025-06-01T00:00:00Z", got["stay.check_in"].AsString())
	assert.True(t, got["stay.available"].AsBool())
	assert.Equal(t, int64(3), got["booking.count"].AsInt64())
	assert.Equal(t, []string{"b1", "b2"}, got["booking.ids"].AsStringSlice())
	assert.Equal(t, "{1}", got["other"].AsString())
}
