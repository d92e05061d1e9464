package observability

import (
	"context"
	"testing"
	"time"
)

type recordingHooks struct {
	starts    int
	completes int
	lastCount int
	lastErr   error
}

func (r *recordingHooks) OnGenerateStart(_ context.Context, edgeCount int) {
	r.starts++
	r.lastCount = edgeCount
}

func (r *recordingHooks) OnGenerateComplete(_ context.Context, edgeCount int, _ time.Duration, err error) {
	r.completes++
	r.lastCount = edgeCount
	r.lastErr = err
}

func TestDefaultIsNoop(t *testing.T) {
	SetGeneratorHooks(nil)
	if _, ok := Generator().(NoopGeneratorHooks); !ok {
		t.Errorf("default hooks = %T, want NoopGeneratorHooks", Generator())
	}
	// Must not panic.
	Generator().OnGenerateStart(context.Background(), 3)
	Generator().OnGenerateComplete(context.Background(), 3, time.Millisecond, nil)
}

func TestSetGeneratorHooks(t *testing.T) {
	rec := &recordingHooks{}
	SetGeneratorHooks(rec)
	defer SetGeneratorHooks(nil)

	Generator().OnGenerateStart(context.Background(), 7)
	Generator().OnGenerateComplete(context.Background(), 7, time.Millisecond, nil)

	if rec.starts != 1 || rec.completes != 1 {
		t.Errorf("starts = %d, completes = %d, want 1 each", rec.starts, rec.completes)
	}
	if rec.lastCount != 7 {
		t.Errorf("lastCount = %d, want 7", rec.lastCount)
	}
}

func TestSetNilRestoresNoop(t *testing.T) {
	SetGeneratorHooks(&recordingHooks{})
	SetGeneratorHooks(nil)
	if _, ok := Generator().(NoopGeneratorHooks); !ok {
		t.Errorf("hooks after reset = %T, want NoopGeneratorHooks", Generator())
	}
}
