package config

import (
	_ "embed"
)

//go:embed defaults/coredefense.yaml
var defaultCoreDefenseYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultCoreDefenseYAML))
	copy(out, defaultCoreDefenseYAML)
	return out
}

// DefaultCoreDefenseConfig returns the default Core Defense configuration.
func DefaultCoreDefenseConfig() CoreDefenseConfig {
	return CoreDefenseConfig{
		Field: FieldConfig{
			CellWidth:  8,
			CellHeight: 16,
		},
		Core: CoreConfig{
			HP:          100,
			Atk:         10,
			FireRate:    15,
			ProjSpeed:   8,
			CritRate:    0.05,
			CritDmg:     1.5,
			Luck:        1,
			XPMult:      1,
			MissileCd:   120,
			PickupRange: 100,
		},
		Difficulty: DifficultyConfig{
			Base:        1.0,
			RampSeconds: 45,
			RampAmount:  0.5,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.3,
			SampleRate:   44100,
		},
		Shop: ShopConfig{
			Hull:       ShopItem{Base: 100, Scale: 1.5, Bonus: 20},
			Power:      ShopItem{Base: 150, Scale: 1.5, Bonus: 2},
			Mining:     ShopItem{Base: 200, Scale: 1.6, Bonus: 0.1},
			Precision:  ShopItem{Base: 200, Scale: 1.6, Bonus: 0.02},
			Overcharge: ShopItem{Base: 150, Scale: 1.5, Bonus: 0.2},
			Entropy:    ShopItem{Base: 300, Scale: 1.7, Bonus: 0.1},
		},
	}
}
