package sim

import "math"

// Tag is a run-long behavioral modifier held by the core.
type Tag uint8

const (
	TagSplit Tag = iota
	TagPierce
	TagGiant
	TagDouble
	TagRear
	TagOrbit
	TagVamp
	TagKnock
	TagHoming
	TagBlast
	TagChain
	TagFreeze
	TagLucky
	// TagOmni is the auto-aim modifier. It is never offered as an upgrade.
	TagOmni

	numTags
)

// TagSet is a bitmask of tags, copied onto projectiles at fire time.
type TagSet uint16

// Has reports whether t is in the set.
func (s TagSet) Has(t Tag) bool {
	return s&(1<<t) != 0
}

// With returns the set with t added.
func (s TagSet) With(t Tag) TagSet {
	return s | 1<<t
}

// TagDef is the static catalog entry for a tag.
type TagDef struct {
	Tag       Tag
	ID        string
	Name      string
	Desc      string
	Rarity    int
	Offerable bool
}

var tagDefs = [numTags]TagDef{
	TagSplit:  {TagSplit, "SPLIT", "Multishot", "Fire +2 bullets", 2, true},
	TagPierce: {TagPierce, "PIERCE", "Piercing", "Bullets penetrate enemies", 2, true},
	TagGiant:  {TagGiant, "GIANT", "Giant", "Larger bullets, more dmg", 3, true},
	TagDouble: {TagDouble, "DOUBLE", "Double Barrel", "Fire 2 at once", 3, true},
	TagRear:   {TagRear, "REAR", "Rear Shot", "Shoot backwards", 2, true},
	TagOrbit:  {TagOrbit, "ORBIT", "Shield Bot", "Orbital guard", 4, true},
	TagVamp:   {TagVamp, "VAMP", "Leech", "Heal on kill", 4, true},
	TagKnock:  {TagKnock, "KNOCK", "Pushback", "Knock enemies back", 2, true},
	TagHoming: {TagHoming, "HOMING", "Missile", "Periodic homing missile", 4, true},
	TagBlast:  {TagBlast, "BLAST", "Explosive", "Area damage on hit", 3, true},
	TagChain:  {TagChain, "CHAIN", "Lightning", "Chain damage", 3, true},
	TagFreeze: {TagFreeze, "FREEZE", "Ice", "Slow enemies", 2, true},
	TagLucky:  {TagLucky, "LUCKY", "Lucky", "Better drops", 4, true},
	TagOmni:   {TagOmni, "OMNI", "Omniscient", "Auto-aim, faster fire", 4, false},
}

var tagsByID = func() map[string]Tag {
	m := make(map[string]Tag, numTags)
	for _, d := range tagDefs {
		m[d.ID] = d.Tag
	}
	return m
}()

// Def returns the catalog entry for t.
func (t Tag) Def() TagDef {
	if t >= numTags {
		return TagDef{Tag: t, ID: "UNKNOWN"}
	}
	return tagDefs[t]
}

// String returns the tag identifier.
func (t Tag) String() string {
	return t.Def().ID
}

// LookupTag resolves a tag identifier.
func LookupTag(id string) (Tag, bool) {
	t, ok := tagsByID[id]
	return t, ok
}

// Tags returns every catalog tag in declaration order.
func Tags() []TagDef {
	out := make([]TagDef, len(tagDefs))
	copy(out, tagDefs[:])
	return out
}

// StatUpgrade is a one-shot stat mutation offered on level-up.
type StatUpgrade struct {
	ID     string
	Name   string
	Desc   string
	Rarity int
	apply  func(*Stats)
}

var statUpgrades = []StatUpgrade{
	{"DMG", "Damage Up", "Attack +15%", 1, func(s *Stats) { s.Atk *= 1.15 }},
	{"SPD", "Rapid Fire", "Fire Rate +10%", 1, func(s *Stats) { s.FireRate = math.Max(2, s.FireRate*0.9) }},
	{"HP", "Repair", "Heal 30% HP", 1, func(s *Stats) { s.HP = math.Min(s.MaxHP, s.HP+s.MaxHP*0.3) }},
	{"CRIT", "Critical", "Crit Rate +5%", 2, func(s *Stats) { s.CritRate += 0.05 }},
}

func lookupStat(id string) (StatUpgrade, bool) {
	for _, u := range statUpgrades {
		if u.ID == id {
			return u, true
		}
	}
	return StatUpgrade{}, false
}

// StatUpgrades returns the stat upgrade catalog.
func StatUpgrades() []StatUpgrade {
	out := make([]StatUpgrade, len(statUpgrades))
	copy(out, statUpgrades)
	return out
}

// Relic is a persistent item found in chests.
type Relic struct {
	ID    string
	Name  string
	Desc  string
	apply func(*Stats)
}

const relicVamp = "R_VAMP"

var relics = []Relic{
	// Leech is checked on kill rather than applied to stats.
	{relicVamp, "Vampire Tooth", "Heal +2 HP on kill (10% chance)", func(*Stats) {}},
	{"R_ENGINE", "Turbo Engine", "Fire Rate +20%", func(s *Stats) { s.FireRate = math.Max(2, s.FireRate*0.8) }},
	{"R_SCOPE", "Sniper Scope", "Crit Rate +10%", func(s *Stats) { s.CritRate += 0.10 }},
	{"R_MAGNET", "Super Magnet", "Pickup Range +50%", func(s *Stats) { s.PickupRange += 50 }},
	{"R_ARMOR", "Iron Plating", "Max HP +50", func(s *Stats) { s.MaxHP += 50; s.HP += 50 }},
	{"R_AMMO", "Heavy Ammo", "Damage +20%", func(s *Stats) { s.Atk *= 1.2 }},
}

// LookupRelic resolves a relic identifier.
func LookupRelic(id string) (Relic, bool) {
	for _, r := range relics {
		if r.ID == id {
			return r, true
		}
	}
	return Relic{}, false
}

// Relics returns the relic catalog.
func Relics() []Relic {
	out := make([]Relic, len(relics))
	copy(out, relics)
	return out
}

// Synergy is a named tag combination. Synergies are catalog data only;
// holding the required tags has no gameplay effect yet.
type Synergy struct {
	Key      string
	Name     string
	Desc     string
	Requires [2]Tag
}

var synergies = []Synergy{
	{"OMNI", "THE OMNISCIENT", "Auto-Aim + 360 Attack", [2]Tag{TagHoming, TagRear}},
	{"BLOOD", "BLOOD LORD", "Kills increase Damage", [2]Tag{TagVamp, TagGiant}},
	{"FROST", "ABSOLUTE ZERO", "Freeze Nova on Kill", [2]Tag{TagFreeze, TagBlast}},
	{"THOR", "THUNDER GOD", "Super Chain Lightning", [2]Tag{TagChain, TagDouble}},
}

// Synergies returns the synergy catalog.
func Synergies() []Synergy {
	out := make([]Synergy, len(synergies))
	copy(out, synergies)
	return out
}
