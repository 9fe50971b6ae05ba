package observability

import (
	"context"
	"errors"
	"testing"
)

func TestDefaultTracingConfig(t *testing.T) {
	cfg := DefaultTracingConfig()
	if cfg == nil {
		t.Fatal("expected non-nil config")
	}
	if cfg.ServiceName != "ugg" {
		t.Fatalf("expected service name 'ugg', got %s", cfg.ServiceName)
	}
	if cfg.SampleRate != 1.0 {
		t.Fatalf("expected sample rate 1.0, got %f", cfg.SampleRate)
	}
}

func TestInitTracing_NoEndpoint(t *testing.T) {
	ctx := context.Background()
	tp, err := InitTracing(ctx, &TracingConfig{
		ServiceName: "test",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tp == nil {
		t.Fatal("expected non-nil tracer provider")
	}
	if tp.Tracer() == nil {
		t.Fatal("expected non-nil tracer")
	}
	// Should be no-op, shutdown should succeed
	if err := tp.Shutdown(ctx); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestInitTracing_NilConfig(t *testing.T) {
	ctx := context.Background()
	tp, err := InitTracing(ctx, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tp == nil {
		t.Fatal("expected non-nil tracer provider")
	}
}

func TestStartGenerateSpan(t *testing.T) {
	ctx := context.Background()
	_, span := StartGenerateSpan(ctx, "sample_edges", 100, 400, 4)
	if span == nil {
		t.Fatal("expected non-nil span")
	}
	RecordSamplerResult(span, 400, 450, 10, 40)
	span.End()
}

func TestStartWriteSpan(t *testing.T) {
	ctx := context.Background()
	_, span := StartWriteSpan(ctx, "out/example")
	if span == nil {
		t.Fatal("expected non-nil span")
	}
	span.End()
}

func TestStartExportSpan(t *testing.T) {
	ctx := context.Background()
	_, span := StartExportSpan(ctx, "neo4j", 100, 400)
	if span == nil {
		t.Fatal("expected non-nil span")
	}
	RecordError(span, errors.New("connection refused"))
	span.End()
}

func TestRecordError_NilError(t *testing.T) {
	ctx := context.Background()
	_, span := StartWriteSpan(ctx, "out/example")
	RecordError(span, nil)
	span.End()
}
