package event

// Cue identifies a synthesized sound effect
type Cue int

const (
	CueClick Cue = iota
	CueMatch
	CueShuffle
	CueSuccess
	CueError
	CueShoot
	CueZap
	CueWhoosh
	CueEnemyHit
	CueExplosion
	CueLevelUp

	CueCount
)

var cueNames = [...]string{
	CueClick:     "click",
	CueMatch:     "match",
	CueShuffle:   "shuffle",
	CueSuccess:   "success",
	CueError:     "error",
	CueShoot:     "shoot",
	CueZap:       "zap",
	CueWhoosh:    "whoosh",
	CueEnemyHit:  "enemy_hit",
	CueExplosion: "explosion",
	CueLevelUp:   "level_up",
}

func (c Cue) String() string {
	if c >= 0 && c < CueCount {
		return cueNames[c]
	}
	return "unknown"
}
