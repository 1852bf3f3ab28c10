package sim

// OfferCount is the number of distinct choices presented per level-up.
const OfferCount = 3

// Upgrade is one presented level-up choice.
type Upgrade struct {
	Kind   SelectionKind
	ID     string
	Name   string
	Desc   string
	Rarity int
}

// Selection returns the command that applies u.
func (u Upgrade) Selection() Selection {
	return Selection{Kind: u.Kind, ID: u.ID}
}

// rollRarity maps a uniform roll to rarity 1-4.
func rollRarity(r float64) int {
	switch {
	case r < 0.6:
		return 1
	case r < 0.85:
		return 2
	case r < 0.95:
		return 3
	default:
		return 4
	}
}

// RollOffers draws OfferCount distinct upgrades. Tags the core already
// holds are never offered. It returns nil when no run is live.
func (s *Sim) RollOffers() []Upgrade {
	if !s.live() {
		return nil
	}

	seen := make(map[string]bool, OfferCount)
	offers := make([]Upgrade, 0, OfferCount)
	for len(offers) < OfferCount {
		u := s.rollOffer()
		if seen[u.ID] {
			continue
		}
		seen[u.ID] = true
		offers = append(offers, u)
	}
	return offers
}

func (s *Sim) rollOffer() Upgrade {
	rarity := rollRarity(s.rng.Float64())

	if rarity > 1 {
		var pool []TagDef
		for _, d := range tagDefs {
			if d.Offerable && d.Rarity == rarity && !s.core.HasTag(d.Tag) {
				pool = append(pool, d)
			}
		}
		if len(pool) > 0 && s.rng.Float64() > 0.3 {
			d := pool[int(s.rng.Float64()*float64(len(pool)))]
			return Upgrade{Kind: SelectTag, ID: d.ID, Name: d.Name, Desc: d.Desc, Rarity: d.Rarity}
		}
	}

	st := statUpgrades[int(s.rng.Float64()*float64(len(statUpgrades)))]
	return Upgrade{Kind: SelectStat, ID: st.ID, Name: st.Name, Desc: st.Desc, Rarity: rarity}
}
