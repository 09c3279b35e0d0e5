package status

import (
	"sync"
	"testing"
)

func TestRegistryCountersAreShared(t *testing.T) {
	r := NewRegistry()
	c := r.Counters.Get(SurvivalKills)
	r.Inc(SurvivalKills)
	c.Add(2)

	if got := r.Counters.Get(SurvivalKills).Load(); got != 3 {
		t.Errorf("kills = %d, want 3", got)
	}
}

func TestRegistryConcurrentInc(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				r.Inc(PuzzlePicks)
			}
		}()
	}
	wg.Wait()
	if got := r.Counters.Get(PuzzlePicks).Load(); got != 8000 {
		t.Errorf("picks = %d, want 8000", got)
	}
}

func TestSnapshot(t *testing.T) {
	r := NewRegistry()
	r.Inc(PuzzleMatches)
	r.Gauges.Get(SurvivalActors).Set(12)

	snap := r.Snapshot()
	if snap[PuzzleMatches] != 1 || snap[SurvivalActors] != 12 {
		t.Errorf("snapshot = %v", snap)
	}
	if len(snap) != 2 {
		t.Errorf("snapshot has %d keys, want 2", len(snap))
	}
}
