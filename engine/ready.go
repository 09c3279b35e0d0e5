package engine

import (
	"context"
	"time"

	"github.com/lixenwraith/reef-arcade/parameter"
)

// ReadyGate holds a session until assets report ready or the timeout forces a start
type ReadyGate struct {
	probe   func() bool
	timeout time.Duration
	poll    time.Duration
}

func NewReadyGate(probe func() bool) *ReadyGate {
	return &ReadyGate{probe: probe, timeout: parameter.ReadyTimeout, poll: parameter.ReadyPollInterval}
}

// WithTimeout overrides the forced-start deadline
func (g *ReadyGate) WithTimeout(timeout, poll time.Duration) *ReadyGate {
	g.timeout = timeout
	g.poll = poll
	return g
}

// Wait returns forced=true when the deadline passed before the probe reported ready
func (g *ReadyGate) Wait(ctx context.Context) (forced bool, err error) {
	if g.probe == nil || g.probe() {
		return false, nil
	}
	deadline := time.NewTimer(g.timeout)
	defer deadline.Stop()
	poll := time.NewTicker(g.poll)
	defer poll.Stop()

	for {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-deadline.C:
			return true, nil
		case <-poll.C:
			if g.probe() {
				return false, nil
			}
		}
	}
}
