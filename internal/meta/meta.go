// Package meta implements meta-progression: currency banked across runs
// and permanent upgrades bought with it.
package meta

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/core-defense/internal/config"
	"github.com/vovakirdan/core-defense/internal/games/coredefense/sim"
)

var (
	// ErrInsufficientFunds is returned when a purchase costs more than the
	// banked currency.
	ErrInsufficientFunds = errors.New("meta: insufficient funds")
	// ErrUnknownCategory is returned for category names outside the shop.
	ErrUnknownCategory = errors.New("meta: unknown category")
)

// RewardRate is the share of a run's score banked as currency.
const RewardRate = 0.2

// Category names a permanent upgrade line.
type Category string

const (
	Hull       Category = "hull"
	Power      Category = "power"
	Mining     Category = "mining"
	Precision  Category = "precision"
	Overcharge Category = "overcharge"
	Entropy    Category = "entropy"
)

// Categories returns every category in shop order.
func Categories() []Category {
	return []Category{Hull, Power, Mining, Precision, Overcharge, Entropy}
}

// Describe returns a short label for the stat a category improves.
func (c Category) Describe() string {
	switch c {
	case Hull:
		return "Max HP"
	case Power:
		return "Attack"
	case Mining:
		return "XP gain"
	case Precision:
		return "Crit rate"
	case Overcharge:
		return "Crit damage"
	case Entropy:
		return "Luck"
	default:
		return string(c)
	}
}

// ParseCategory resolves a category name.
func ParseCategory(name string) (Category, error) {
	for _, c := range Categories() {
		if string(c) == name {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}

// Profile is the persisted meta-progression record of one player.
type Profile struct {
	Name      string
	Currency  int
	BestScore int
	Levels    map[Category]int
}

// NewProfile returns an empty profile.
func NewProfile(name string) *Profile {
	return &Profile{Name: name, Levels: make(map[Category]int)}
}

// Level returns the purchased level of a category.
func (p *Profile) Level(c Category) int {
	return p.Levels[c]
}

// Award banks the reward for a finished run and tracks the best score.
// It returns the currency gained.
func (p *Profile) Award(score float64) int {
	gained := int(math.Floor(score * RewardRate))
	p.Currency += gained
	if s := int(score); s > p.BestScore {
		p.BestScore = s
	}
	return gained
}

// Shop prices categories and converts levels into run bonuses.
type Shop struct {
	items map[Category]config.ShopItem
}

// NewShop builds a shop from configuration.
func NewShop(cfg config.ShopConfig) *Shop {
	return &Shop{items: map[Category]config.ShopItem{
		Hull:       cfg.Hull,
		Power:      cfg.Power,
		Mining:     cfg.Mining,
		Precision:  cfg.Precision,
		Overcharge: cfg.Overcharge,
		Entropy:    cfg.Entropy,
	}}
}

// Cost returns floor(base * scale^level), the price of the next level
// when level levels are already owned.
func (s *Shop) Cost(c Category, level int) (int, error) {
	item, ok := s.items[c]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, c)
	}
	return int(math.Floor(item.Base * math.Pow(item.Scale, float64(level)))), nil
}

// Purchase buys the next level of c for p.
func (s *Shop) Purchase(p *Profile, c Category) error {
	cost, err := s.Cost(c, p.Level(c))
	if err != nil {
		return err
	}
	if p.Currency < cost {
		return fmt.Errorf("%w: %s costs %d, have %d", ErrInsufficientFunds, c, cost, p.Currency)
	}
	p.Currency -= cost
	if p.Levels == nil {
		p.Levels = make(map[Category]int)
	}
	p.Levels[c]++
	return nil
}

// Bonus returns the per-level bonus of a category.
func (s *Shop) Bonus(c Category) float64 {
	return s.items[c].Bonus
}

// Bonuses converts purchased levels into additive run bonuses.
func (s *Shop) Bonuses(p *Profile) sim.StatBonuses {
	bonus := func(c Category) float64 {
		return s.items[c].Bonus * float64(p.Level(c))
	}
	return sim.StatBonuses{
		MaxHP:    bonus(Hull),
		Atk:      bonus(Power),
		XPMult:   bonus(Mining),
		CritRate: bonus(Precision),
		CritDmg:  bonus(Overcharge),
		Luck:     bonus(Entropy),
	}
}
