package sim

import (
	"testing"

	"github.com/vovakirdan/core-defense/internal/core"
)

func TestLevelUpCarriesOverflow(t *testing.T) {
	s := newRun(t)
	s.core.XP = 90
	s.core.NextXP = 100
	s.store.Orbs.Add(XPOrb{Body: Body{Pos: s.core.Pos, Radius: 4}, Value: 20})

	s.updateOrbs()
	c := s.Core()
	if c.XP != 10 || c.Level != 2 || c.NextXP != 140 {
		t.Errorf("xp/level/next = %v/%d/%v, want 10/2/140", c.XP, c.Level, c.NextXP)
	}
	events := s.Drain()
	if n := countEvents[UpgradeOfferEvent](events); n != 1 {
		t.Errorf("UpgradeOfferEvent count = %d, want 1", n)
	}
	if !hasCue(events, core.CueCollect) || !hasCue(events, core.CueLevelUp) {
		t.Error("missing collect or level-up cue")
	}
}

func TestOrbPull(t *testing.T) {
	s := newRun(t)
	near := s.store.Orbs.Add(XPOrb{Body: Body{Pos: s.core.Pos.Add(core.V(50, 0))}, Value: 10})
	far := s.store.Orbs.Add(XPOrb{Body: Body{Pos: s.core.Pos.Add(core.V(300, 0))}, Value: 10})

	s.updateOrbs()
	o, _ := s.store.Orbs.Get(near)
	if got := o.Pos.Dist(s.core.Pos); got != 35 {
		t.Errorf("near orb distance = %v, want 35", got)
	}
	o, _ = s.store.Orbs.Get(far)
	if got := o.Pos.Dist(s.core.Pos); got != 298 {
		t.Errorf("far orb distance = %v, want 298", got)
	}
}

func TestXPMultiplier(t *testing.T) {
	s := newRun(t)
	s.stats.XPMult = 1.5
	s.store.Orbs.Add(XPOrb{Body: Body{Pos: s.core.Pos}, Value: 10})
	s.updateOrbs()
	if s.Core().XP != 15 {
		t.Errorf("xp = %v, want 15", s.Core().XP)
	}
}

func TestChestYieldsUnownedRelic(t *testing.T) {
	s := newRun(t)
	for _, r := range Relics()[1:] {
		s.core.Relics = append(s.core.Relics, r.ID)
	}
	s.store.Chests.Add(Chest{Body: Body{Pos: s.core.Pos, Radius: 10}})

	s.updateChests()
	var found []RelicFoundEvent
	for _, e := range s.Drain() {
		if rf, ok := e.(RelicFoundEvent); ok {
			found = append(found, rf)
		}
	}
	if len(found) != 1 || found[0].RelicID != Relics()[0].ID {
		t.Errorf("relic events = %v, want the single unowned relic", found)
	}
}

func TestChestXPWhenAllRelicsOwned(t *testing.T) {
	s := newRun(t)
	for _, r := range Relics() {
		s.core.Relics = append(s.core.Relics, r.ID)
	}
	s.store.Chests.Add(Chest{Body: Body{Pos: s.core.Pos, Radius: 10}})

	s.updateChests()
	events := s.Drain()
	if n := countEvents[RelicFoundEvent](events); n != 0 {
		t.Errorf("RelicFoundEvent emitted with every relic owned")
	}
	// 500 xp against a 20 xp requirement: one level, overflow kept
	c := s.Core()
	if c.Level != 2 || c.XP != 480 {
		t.Errorf("level/xp = %d/%v, want 2/480", c.Level, c.XP)
	}
}

func TestApplySelection(t *testing.T) {
	s := newRun(t)

	if !s.ApplySelection(Selection{Kind: SelectTag, ID: "LUCKY"}) {
		t.Fatal("LUCKY rejected")
	}
	if s.Stats().Luck != 1.5 {
		t.Errorf("luck = %v, want 1.5", s.Stats().Luck)
	}
	if s.ApplySelection(Selection{Kind: SelectTag, ID: "LUCKY"}) {
		t.Error("held tag applied twice")
	}
	if len(s.Core().Tags) != 1 {
		t.Errorf("tags = %v", s.Core().Tags)
	}

	if !s.ApplySelection(Selection{Kind: SelectRelic, ID: "R_ARMOR"}) {
		t.Fatal("R_ARMOR rejected")
	}
	if st := s.Stats(); st.MaxHP != 150 || st.HP != 150 {
		t.Errorf("hp = %v/%v, want 150/150", st.HP, st.MaxHP)
	}
	if s.ApplySelection(Selection{Kind: SelectRelic, ID: "R_ARMOR"}) {
		t.Error("owned relic applied twice")
	}

	s.stats.HP = 100
	if !s.ApplySelection(Selection{Kind: SelectStat, ID: "HP"}) {
		t.Fatal("HP upgrade rejected")
	}
	if s.Stats().HP != 145 {
		t.Errorf("hp after repair = %v, want 145", s.Stats().HP)
	}
	s.ApplySelection(Selection{Kind: SelectStat, ID: "HP"})
	if s.Stats().HP != 150 {
		t.Errorf("repair overhealed: %v", s.Stats().HP)
	}

	for _, sel := range []Selection{
		{Kind: SelectTag, ID: "NOPE"},
		{Kind: SelectRelic, ID: "R_NOPE"},
		{Kind: SelectStat, ID: "NOPE"},
		{Kind: SelectionKind(9), ID: "DMG"},
	} {
		if s.ApplySelection(sel) {
			t.Errorf("unknown selection %+v applied", sel)
		}
	}
}

func TestStatUpgradeFloor(t *testing.T) {
	s := newRun(t)
	for i := 0; i < 50; i++ {
		s.ApplySelection(Selection{Kind: SelectStat, ID: "SPD"})
	}
	if s.Stats().FireRate != 2 {
		t.Errorf("fire rate = %v, want floor 2", s.Stats().FireRate)
	}
}

func TestOffersExcludeHeldTags(t *testing.T) {
	s := newRun(t)
	for _, id := range []string{"ORBIT", "VAMP", "HOMING", "GIANT", "CHAIN", "SPLIT"} {
		s.ApplySelection(Selection{Kind: SelectTag, ID: id})
	}
	held := make(map[string]bool)
	for _, tag := range s.Core().Tags {
		held[tag.String()] = true
	}

	for i := 0; i < 500; i++ {
		offers := s.RollOffers()
		if len(offers) != OfferCount {
			t.Fatalf("got %d offers, want %d", len(offers), OfferCount)
		}
		ids := make(map[string]bool)
		for _, o := range offers {
			if ids[o.ID] {
				t.Fatalf("duplicate offer %s in %v", o.ID, offers)
			}
			ids[o.ID] = true
			if o.Kind == SelectTag && held[o.ID] {
				t.Fatalf("offered held tag %s", o.ID)
			}
			if o.ID == "OMNI" {
				t.Fatal("offered the auto-aim tag")
			}
			if o.Rarity < 1 || o.Rarity > 4 {
				t.Fatalf("rarity %d out of range", o.Rarity)
			}
		}
	}
}

func TestRollRarity(t *testing.T) {
	tests := []struct {
		r    float64
		want int
	}{
		{0, 1},
		{0.59, 1},
		{0.6, 2},
		{0.849, 2},
		{0.85, 3},
		{0.95, 4},
		{0.999, 4},
	}
	for _, tt := range tests {
		if got := rollRarity(tt.r); got != tt.want {
			t.Errorf("rollRarity(%v) = %d, want %d", tt.r, got, tt.want)
		}
	}
}
