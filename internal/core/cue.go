package core

// Cue identifies a sound effect requested by the simulation.
// The platform decides whether and how to play it.
type Cue int

const (
	CueNone Cue = iota
	CueShoot
	CueHit
	CueCrit
	CueExplosion
	CueCollect
	CueLevelUp
	CueChest
	CueBossAlarm
	CueGameOver
)

var cueNames = [...]string{
	CueNone:      "none",
	CueShoot:     "shoot",
	CueHit:       "hit",
	CueCrit:      "crit",
	CueExplosion: "explosion",
	CueCollect:   "collect",
	CueLevelUp:   "level_up",
	CueChest:     "chest",
	CueBossAlarm: "boss_alarm",
	CueGameOver:  "game_over",
}

// String returns the cue's config key.
func (c Cue) String() string {
	if c < 0 || int(c) >= len(cueNames) {
		return "unknown"
	}
	return cueNames[c]
}

// AllCues returns every playable cue.
func AllCues() []Cue {
	return []Cue{CueShoot, CueHit, CueCrit, CueExplosion, CueCollect, CueLevelUp, CueChest, CueBossAlarm, CueGameOver}
}
