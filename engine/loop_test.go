package engine

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lixenwraith/reef-arcade/event"
)

// countingGame advances a counter and never terminates unless told to
type countingGame struct {
	advanced atomic.Int64
	terminal atomic.Bool
	pending  []event.Event
}

func (g *countingGame) Advance() { g.advanced.Add(1) }

func (g *countingGame) Drain() []event.Event {
	out := g.pending
	g.pending = nil
	return out
}

func (g *countingGame) Terminal() bool { return g.terminal.Load() }

func (g *countingGame) Score() int { return int(g.advanced.Load()) }

func runLoop(t *testing.T, l *Loop) (cancel func(), done <-chan error) {
	t.Helper()
	ctx, c := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- l.Run(ctx) }()
	return c, errc
}

func TestLoopTicksFromChannel(t *testing.T) {
	game := &countingGame{}
	ticks := make(chan time.Time)
	frames := make(chan struct{}, 16)

	l := NewLoop(NewSession(game, HostFuncs{}),
		WithTicks(ticks),
		WithFrame(func(*Session) { frames <- struct{}{} }),
	)
	cancel, done := runLoop(t, l)
	defer cancel()

	for range 3 {
		ticks <- time.Now()
		<-frames
	}
	if got := game.advanced.Load(); got != 3 {
		t.Errorf("advanced = %d, want 3", got)
	}
	if l.Ticks() != 3 {
		t.Errorf("Ticks() = %d", l.Ticks())
	}

	close(ticks)
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run = %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("loop did not stop on closed tick channel")
	}
}

func TestLoopPausedStillRunsCommands(t *testing.T) {
	game := &countingGame{}
	ticks := make(chan time.Time)
	frames := make(chan struct{}, 16)

	l := NewLoop(NewSession(game, HostFuncs{}),
		WithTicks(ticks),
		WithFrame(func(*Session) { frames <- struct{}{} }),
	)
	l.SetPaused(true)
	cancel, _ := runLoop(t, l)
	defer cancel()

	ticks <- time.Now()
	<-frames
	if game.advanced.Load() != 0 {
		t.Fatal("paused loop advanced the game")
	}

	var ran atomic.Bool
	if !l.Submit(func(*Session) { ran.Store(true) }) {
		t.Fatal("Submit rejected on empty queue")
	}
	<-frames
	if !ran.Load() {
		t.Error("command did not run while paused")
	}
	if !l.Paused() {
		t.Error("Paused() = false")
	}
}

func TestLoopCommandDispatchesEvents(t *testing.T) {
	game := &countingGame{}
	var unlocked atomic.Int32
	host := HostFuncs{Unlock: func(string, string, string) { unlocked.Add(1) }}
	frames := make(chan struct{}, 4)

	l := NewLoop(NewSession(game, host),
		WithTicks(make(chan time.Time)),
		WithFrame(func(*Session) { frames <- struct{}{} }),
	)
	cancel, _ := runLoop(t, l)
	defer cancel()

	l.Submit(func(*Session) {
		game.pending = append(game.pending, event.Event{Type: event.EventAchievement, Payload: event.Achievement{ID: "x"}})
	})
	<-frames
	if unlocked.Load() != 1 {
		t.Errorf("unlocks = %d, want 1", unlocked.Load())
	}
}

func TestLoopStopsOnCancel(t *testing.T) {
	l := NewLoop(NewSession(&countingGame{}, HostFuncs{}), WithInterval(time.Millisecond))
	cancel, done := runLoop(t, l)
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run = %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("loop ignored cancellation")
	}
}

func TestLoopSubmitFull(t *testing.T) {
	l := NewLoop(NewSession(&countingGame{}, HostFuncs{}))
	accepted := 0
	for range cap(l.cmds) + 5 {
		if l.Submit(func(*Session) {}) {
			accepted++
		}
	}
	if accepted != cap(l.cmds) {
		t.Errorf("accepted = %d, want %d", accepted, cap(l.cmds))
	}
}
