package engine

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestReadyGateImmediate(t *testing.T) {
	forced, err := NewReadyGate(func() bool { return true }).Wait(context.Background())
	if err != nil || forced {
		t.Fatalf("Wait = %v, %v", forced, err)
	}
	forced, err = NewReadyGate(nil).Wait(context.Background())
	if err != nil || forced {
		t.Fatalf("nil probe Wait = %v, %v", forced, err)
	}
}

func TestReadyGateBecomesReady(t *testing.T) {
	var calls atomic.Int32
	g := NewReadyGate(func() bool { return calls.Add(1) >= 3 }).WithTimeout(time.Second, time.Millisecond)
	forced, err := g.Wait(context.Background())
	if err != nil || forced {
		t.Fatalf("Wait = %v, %v", forced, err)
	}
}

func TestReadyGateForcedStart(t *testing.T) {
	g := NewReadyGate(func() bool { return false }).WithTimeout(20*time.Millisecond, 5*time.Millisecond)
	forced, err := g.Wait(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !forced {
		t.Error("expected forced start after timeout")
	}
}

func TestReadyGateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := NewReadyGate(func() bool { return false }).WithTimeout(time.Minute, time.Minute)
	if _, err := g.Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Wait = %v, want context.Canceled", err)
	}
}
