package sim

import "github.com/vovakirdan/core-defense/internal/core"

// Event is emitted by the simulation and drained by the host after a tick.
type Event interface {
	simEvent()
}

// GameOverEvent is emitted exactly once when the core's hp reaches zero.
type GameOverEvent struct {
	Score float64
}

func (GameOverEvent) simEvent() {}

// UpgradeOfferEvent is emitted on each level-up. The host pauses the
// simulation, presents RollOffers and answers with ApplySelection.
type UpgradeOfferEvent struct {
	Level int
}

func (UpgradeOfferEvent) simEvent() {}

// RelicFoundEvent is emitted when a chest yields an unowned relic.
type RelicFoundEvent struct {
	RelicID string
}

func (RelicFoundEvent) simEvent() {}

// SynergyEvent announces a completed tag combination. Reserved: the
// simulation does not emit it yet.
type SynergyEvent struct {
	Name string
	Desc string
}

func (SynergyEvent) simEvent() {}

// SyncEvent carries the periodic HUD snapshot.
type SyncEvent struct {
	Snapshot Snapshot
}

func (SyncEvent) simEvent() {}

// CueEvent requests a sound effect.
type CueEvent struct {
	Cue core.Cue
}

func (CueEvent) simEvent() {}

// BossSpawnedEvent is emitted when a boss enters the field.
type BossSpawnedEvent struct {
	Number int
	Tier   BossTier
}

func (BossSpawnedEvent) simEvent() {}

// UltimateReadyEvent is emitted when the ultimate charge reaches max.
type UltimateReadyEvent struct{}

func (UltimateReadyEvent) simEvent() {}
