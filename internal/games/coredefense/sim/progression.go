package sim

import (
	"math"

	"github.com/vovakirdan/core-defense/internal/core"
)

const (
	orbCaptureDist   = 20
	orbFastPull      = 15
	orbDriftPull     = 2
	chestCaptureDist = 30
	chestXPBonus     = 500
	xpGrowth         = 1.4
	luckyBonus       = 0.5
)

// gainXP adds experience and levels up at most once per call.
func (s *Sim) gainXP(amount float64) {
	s.core.XP += amount
	if s.core.XP < s.core.NextXP {
		return
	}
	s.core.XP -= s.core.NextXP
	s.core.Level++
	s.core.NextXP = math.Floor(s.core.NextXP * xpGrowth)
	s.cue(core.CueLevelUp)
	s.emit(UpgradeOfferEvent{Level: s.core.Level})
}

func (s *Sim) addUltCharge(n int) {
	if s.ult.Charge >= s.ult.MaxCharge {
		return
	}
	s.ult.Charge += n
	if s.ult.Charge >= s.ult.MaxCharge {
		s.ult.Charge = s.ult.MaxCharge
		s.emit(UltimateReadyEvent{})
	}
}

// pullToward moves pos toward target by speed units. A zero distance
// leaves pos untouched.
func pullToward(pos, target core.Vec2, speed float64) core.Vec2 {
	dir, _ := target.Sub(pos).Normalize()
	return pos.Add(dir.Scale(speed))
}

func (s *Sim) updateOrbs() {
	s.store.Orbs.Each(func(h Handle, o *XPOrb) bool {
		speed := float64(orbDriftPull)
		if o.Pos.Dist(s.core.Pos) < s.stats.PickupRange {
			speed = orbFastPull
		}
		o.Pos = pullToward(o.Pos, s.core.Pos, speed)
		if o.Pos.Dist(s.core.Pos) < orbCaptureDist {
			value := o.Value
			s.store.Orbs.Remove(h)
			s.cue(core.CueCollect)
			s.gainXP(value * s.stats.XPMult)
		}
		return true
	})
}

func chestPull(dist float64) float64 {
	switch {
	case dist > 500:
		return 2
	case dist > 200:
		return 6
	default:
		return 20
	}
}

func (s *Sim) updateChests() {
	s.store.Chests.Each(func(h Handle, c *Chest) bool {
		c.Pos = c.Pos.Add(c.Vel)
		c.Vel = c.Vel.Scale(0.9)
		c.Pos = pullToward(c.Pos, s.core.Pos, chestPull(c.Pos.Dist(s.core.Pos)))
		if c.Pos.Dist(s.core.Pos) < chestCaptureDist {
			s.store.Chests.Remove(h)
			s.openChest()
		}
		return true
	})
}

// openChest yields a random unowned relic, or flat xp once every relic
// is owned.
func (s *Sim) openChest() {
	var unowned []string
	for _, r := range relics {
		if !s.core.HasRelic(r.ID) {
			unowned = append(unowned, r.ID)
		}
	}
	if len(unowned) == 0 {
		s.text(s.core.Pos, "+500 XP", core.ColorBrightYellow, 20, false)
		s.gainXP(chestXPBonus)
		return
	}
	id := unowned[int(s.rng.Float64()*float64(len(unowned)))]
	s.cue(core.CueChest)
	s.emit(RelicFoundEvent{RelicID: id})
}

// SelectionKind says which catalog a Selection refers to.
type SelectionKind int

const (
	SelectStat SelectionKind = iota
	SelectTag
	SelectRelic
)

func (k SelectionKind) String() string {
	switch k {
	case SelectStat:
		return "stat"
	case SelectTag:
		return "tag"
	case SelectRelic:
		return "relic"
	default:
		return "unknown"
	}
}

// Selection is the host's answer to an upgrade offer or a found relic.
type Selection struct {
	Kind SelectionKind
	ID   string
}

// ApplySelection applies a stat upgrade, tag or relic. It reports false
// and changes nothing when the id is unknown, the tag is already held,
// the relic is already owned or no run is live.
func (s *Sim) ApplySelection(sel Selection) bool {
	if !s.live() {
		return false
	}
	switch sel.Kind {
	case SelectStat:
		u, ok := lookupStat(sel.ID)
		if !ok {
			return false
		}
		u.apply(&s.stats)
		s.stats.clampHP()

	case SelectTag:
		t, ok := LookupTag(sel.ID)
		if !ok || !s.core.addTag(t) {
			return false
		}
		switch t {
		case TagOrbit:
			s.addOrbital()
		case TagLucky:
			s.stats.Luck += luckyBonus
		}

	case SelectRelic:
		r, ok := LookupRelic(sel.ID)
		if !ok || s.core.HasRelic(r.ID) {
			return false
		}
		r.apply(&s.stats)
		s.stats.clampHP()
		s.core.Relics = append(s.core.Relics, r.ID)
		if r.ID == relicVamp || r.ID == "R_ARMOR" {
			s.text(s.core.Pos, "UPGRADE!", core.ColorGreen, 24, false)
		}
		s.cue(core.CueChest)

	default:
		return false
	}
	return true
}
