package parameter

// Puzzle Board Geometry
const (
	// TileOverlapWidth is the horizontal span inside which a higher tile covers a lower one
	TileOverlapWidth = 12.0

	// TileOverlapHeight is the vertical span inside which a higher tile covers a lower one
	TileOverlapHeight = 14.0

	// BoardCenter is the midpoint of the normalized 0..100 board
	BoardCenter = 50.0

	// BoardSpread is the placement jitter span at layer 0
	BoardSpread = 80.0

	// BoardSpreadPerLayer narrows jitter per layer, clustering higher layers
	BoardSpreadPerLayer = 5.0

	// LayerZStride separates render keys of adjacent layers
	LayerZStride = 10

	// ShuffleLayers is the layer range used by reshuffle
	ShuffleLayers = 10

	// ShuffleZJitter is the render-key jitter added by reshuffle
	ShuffleZJitter = 100
)

// Slot and Tools
const (
	// SlotCapacity is the slot length at which the board fails
	SlotCapacity = 7

	// MatchSize is the number of identical tiles cleared per match
	MatchSize = 3

	// ReviveKeep is the slot length kept by revive
	ReviveKeep = 4

	// ToolStartCount is each tool's counter at level start
	ToolStartCount = 1

	// ToolRefillCount is the count granted by the refill collaborator
	ToolRefillCount = 1

	// ReturnRowY is the bottom-anchored row forced-removal places tiles on
	ReturnRowY = 80.0

	// ReturnMinX and ReturnSpanX bound forced-removal horizontal placement
	ReturnMinX  = 20.0
	ReturnSpanX = 60.0

	// ReturnZ renders returned tiles above everything else
	ReturnZ = 1000
)

// Level Tiers
const (
	TutorialTypes    = 3
	TutorialLayers   = 3
	TutorialTriplets = 10

	HardTypes    = 12
	HardLayers   = 12
	HardTriplets = 60

	TutorialRewardGold     = 50
	TutorialRewardDiamonds = 1
	HardRewardGold         = 500
	HardRewardDiamonds     = 5
)
