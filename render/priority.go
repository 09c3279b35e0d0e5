package render

// Priority determines render order. Lower values render first
type Priority int

const (
	PriorityBackground Priority = iota
	PriorityGrid
	PriorityPickups
	PriorityEffects
	PriorityEntities
	PriorityPlayer
	PriorityPopups
	PriorityMarker
	PriorityUI
	PriorityOverlay
	PriorityDebug
)
