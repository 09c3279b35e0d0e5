package event

import (
	"testing"

	"github.com/lixenwraith/reef-arcade/parameter"
)

func TestQueueFIFO(t *testing.T) {
	var q Queue
	q.Push(Event{Type: EventMatch, Payload: "🐟"})
	q.Sound(CueMatch)

	if q.Len() != 2 {
		t.Fatalf("Len = %d, want 2", q.Len())
	}
	got := q.Consume()
	if len(got) != 2 || got[0].Type != EventMatch || got[1].Payload != CueMatch {
		t.Errorf("unexpected drain order: %+v", got)
	}
	if q.Len() != 0 || q.Consume() != nil {
		t.Error("queue not empty after consume")
	}
}

func TestQueueOverflowDropsOldest(t *testing.T) {
	var q Queue
	total := parameter.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(Event{Type: EventKill, Payload: i})
	}
	got := q.Consume()
	if len(got) != parameter.EventQueueSize {
		t.Fatalf("drained %d events, want %d", len(got), parameter.EventQueueSize)
	}
	if got[0].Payload.(int) != 10 {
		t.Errorf("oldest retained = %v, want 10", got[0].Payload)
	}
	if got[len(got)-1].Payload.(int) != total-1 {
		t.Errorf("newest = %v, want %d", got[len(got)-1].Payload, total-1)
	}
}

func TestTypeStrings(t *testing.T) {
	if EventBossEscape.String() != "boss_escape" {
		t.Errorf("got %q", EventBossEscape.String())
	}
	if Type(999).String() != "unknown" {
		t.Error("out of range type should be unknown")
	}
	if CueLevelUp.String() != "level_up" {
		t.Errorf("got %q", CueLevelUp.String())
	}
}
