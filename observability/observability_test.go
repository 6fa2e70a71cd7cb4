package observability

import (
	"context"
	"testing"
)

func TestNopTracer(t *testing.T) {
	tracer := NopTracer()
	ctx := context.Background()
	ctx2, span := tracer.StartSpan(ctx, "test")
	if ctx2 != ctx {
		t.Fatalf("nop tracer should return same context")
	}
	span.SetTag("key", "value")
	span.SetError(nil)
	span.Finish()
}

func TestFields(t *testing.T) {
	if f := String("name", "JOHN"); f.Key() != "name" || f.Value() != "JOHN" {
		t.Fatalf("unexpected string field: %s=%v", f.Key(), f.Value())
	}
	if f := Int("row", 3); f.Value() != 3 {
		t.Fatalf("unexpected int field value: %v", f.Value())
	}
	if f := Float64("hours", 8.25); f.Value() != 8.25 {
		t.Fatalf("unexpected float field value: %v", f.Value())
	}
}
