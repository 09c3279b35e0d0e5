package status

import "sync/atomic"

// Metric keys shared by engines, HUD and the spectator feed
const (
	PuzzleMatches  = "puzzle.matches"
	PuzzlePicks    = "puzzle.picks"
	PuzzleRejected = "puzzle.rejected"
	PuzzleTools    = "puzzle.tools_used"

	SurvivalTicks       = "survival.ticks"
	SurvivalKills       = "survival.kills"
	SurvivalGems        = "survival.gems"
	SurvivalBosses      = "survival.bosses_defeated"
	SurvivalActors      = "survival.actors"
	SurvivalProjectiles = "survival.projectiles"

	SpectateClients = "spectate.clients"
	SpectateDropped = "spectate.frames_dropped"
)

// Registry is the process-wide metrics facade
// Counters are monotonic totals; gauges hold the latest sample
type Registry struct {
	Counters *MetricMap[atomic.Int64]
	Gauges   *MetricMap[Gauge]
}

func NewRegistry() *Registry {
	return &Registry{
		Counters: newMetricMap[atomic.Int64](),
		Gauges:   newMetricMap[Gauge](),
	}
}

// Inc adds one to a counter
func (r *Registry) Inc(key string) {
	r.Counters.Get(key).Add(1)
}

// Snapshot flattens all metrics into a map for display and export
func (r *Registry) Snapshot() map[string]float64 {
	out := make(map[string]float64, r.Counters.Len()+r.Gauges.Len())
	r.Counters.Each(func(k string, c *atomic.Int64) {
		out[k] = float64(c.Load())
	})
	r.Gauges.Each(func(k string, g *Gauge) {
		out[k] = g.Get()
	})
	return out
}
