package engine

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/reef-arcade/parameter"
)

// Command mutates the engine between ticks; it runs on the loop goroutine
type Command func(*Session)

// Loop serializes ticks and player commands onto one goroutine
type Loop struct {
	session  *Session
	interval time.Duration
	ticks    <-chan time.Time
	cmds     chan Command
	frame    func(*Session)
	paused   atomic.Bool
	count    atomic.Uint64
}

type LoopOption func(*Loop)

// WithInterval sets the tick spacing
func WithInterval(d time.Duration) LoopOption { return func(l *Loop) { l.interval = d } }

// WithTicks drives the loop from an external channel instead of a ticker
func WithTicks(c <-chan time.Time) LoopOption { return func(l *Loop) { l.ticks = c } }

// WithFrame registers the per-frame hook (render, publish) run after every tick and command
func WithFrame(fn func(*Session)) LoopOption { return func(l *Loop) { l.frame = fn } }

func NewLoop(s *Session, opts ...LoopOption) *Loop {
	l := &Loop{
		session:  s,
		interval: parameter.TickInterval,
		cmds:     make(chan Command, parameter.CommandQueueSize),
	}
	for _, o := range opts {
		o(l)
	}
	return l
}

// Submit queues a command without blocking; false when the queue is full
func (l *Loop) Submit(cmd Command) bool {
	select {
	case l.cmds <- cmd:
		return true
	default:
		return false
	}
}

// SetPaused stops or resumes ticking; commands still apply while paused
func (l *Loop) SetPaused(p bool) { l.paused.Store(p) }

func (l *Loop) Paused() bool { return l.paused.Load() }

// Ticks returns the number of ticks delivered to the session
func (l *Loop) Ticks() uint64 { return l.count.Load() }

// Run blocks until ctx is cancelled; pending commands are dropped on exit
func (l *Loop) Run(ctx context.Context) error {
	tick := l.ticks
	if tick == nil {
		t := time.NewTicker(l.interval)
		defer t.Stop()
		tick = t.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case cmd := <-l.cmds:
			cmd(l.session)
			l.session.Dispatch()
			l.render()

		case _, ok := <-tick:
			if !ok {
				return nil
			}
			if !l.paused.Load() {
				l.session.Tick()
				l.count.Add(1)
			}
			l.render()
		}
	}
}

func (l *Loop) render() {
	if l.frame != nil {
		l.frame(l.session)
	}
}
