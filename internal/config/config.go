// Package config provides YAML and TOML configuration loading and
// difficulty presets for Core Defense.
package config

// CoreDefenseConfig contains all configuration for a Core Defense run.
type CoreDefenseConfig struct {
	Field      FieldConfig      `yaml:"field" toml:"field"`
	Core       CoreConfig       `yaml:"core" toml:"core"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
	Audio      AudioConfig      `yaml:"audio" toml:"audio"`
	Shop       ShopConfig       `yaml:"shop" toml:"shop"`
}

// FieldConfig maps terminal cells to simulation units.
type FieldConfig struct {
	CellWidth  float64 `yaml:"cell_width" toml:"cell_width"`
	CellHeight float64 `yaml:"cell_height" toml:"cell_height"`
}

// CoreConfig holds the base stats every run starts from.
type CoreConfig struct {
	HP          float64 `yaml:"hp" toml:"hp"`
	Atk         float64 `yaml:"atk" toml:"atk"`
	FireRate    float64 `yaml:"fire_rate" toml:"fire_rate"` // frames between shots
	ProjSpeed   float64 `yaml:"proj_speed" toml:"proj_speed"`
	CritRate    float64 `yaml:"crit_rate" toml:"crit_rate"`
	CritDmg     float64 `yaml:"crit_dmg" toml:"crit_dmg"`
	Luck        float64 `yaml:"luck" toml:"luck"`
	XPMult      float64 `yaml:"xp_mult" toml:"xp_mult"`
	MissileCd   int     `yaml:"missile_cd" toml:"missile_cd"`
	PickupRange float64 `yaml:"pickup_range" toml:"pickup_range"`
}

// DifficultyConfig defines the difficulty curve:
// base + (elapsed seconds / ramp_seconds) * ramp_amount.
type DifficultyConfig struct {
	Base        float64 `yaml:"base" toml:"base"`
	RampSeconds float64 `yaml:"ramp_seconds" toml:"ramp_seconds"`
	RampAmount  float64 `yaml:"ramp_amount" toml:"ramp_amount"`
}

// AudioConfig controls sound cue synthesis.
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled" toml:"enabled"`
	MasterVolume float64 `yaml:"master_volume" toml:"master_volume"` // 0.0 - 1.0
	SampleRate   int     `yaml:"sample_rate" toml:"sample_rate"`
}

// ShopItem is the cost curve and per-level bonus of one meta upgrade.
// Cost of the next level is floor(base * scale^level).
type ShopItem struct {
	Base  float64 `yaml:"base" toml:"base"`
	Scale float64 `yaml:"scale" toml:"scale"`
	Bonus float64 `yaml:"bonus" toml:"bonus"`
}

// ShopConfig lists the six meta upgrade categories.
type ShopConfig struct {
	Hull       ShopItem `yaml:"hull" toml:"hull"`
	Power      ShopItem `yaml:"power" toml:"power"`
	Mining     ShopItem `yaml:"mining" toml:"mining"`
	Precision  ShopItem `yaml:"precision" toml:"precision"`
	Overcharge ShopItem `yaml:"overcharge" toml:"overcharge"`
	Entropy    ShopItem `yaml:"entropy" toml:"entropy"`
}
