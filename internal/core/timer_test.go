package core

import (
	"testing"
	"time"
)

func TestFixedStepPacing(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatalf("first call should step")
	}
	if fs.ShouldStep() {
		t.Fatalf("no time elapsed, should not step")
	}
	clock = clock.Add(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatalf("half an interval elapsed, should not step")
	}
	clock = clock.Add(60 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatalf("interval elapsed, should step")
	}
}

func TestFixedStepRate(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.TPS() != 60 {
		t.Fatalf("default tps = %d, want 60", fs.TPS())
	}
	fs.SetTPS(4)
	if fs.TPS() != 4 || fs.step != 250*time.Millisecond {
		t.Fatalf("tps %d interval %v", fs.TPS(), fs.step)
	}
	fs.SetTPS(-3)
	if fs.TPS() != 60 {
		t.Fatalf("non-positive rate should reset to 60, got %d", fs.TPS())
	}
}

func TestFixedStepClampsHugeRate(t *testing.T) {
	fs := NewFixedStep(2_000_000_000)
	if fs.step <= 0 {
		t.Fatalf("interval must stay positive, got %v", fs.step)
	}
	if fs.TPS() != int(time.Second) {
		t.Fatalf("tps = %d, want %d", fs.TPS(), int(time.Second))
	}
}
