package catalog

// Catalog entities are loaded once at startup and never mutated afterwards,
// so they are safe for unlimited concurrent reads. Entity names double as
// identifiers; lookups are case-insensitive.
//
// Every entity carries an Ext map for optional attributes introduced by
// rulebook supplements. Known fields stay typed; only genuinely open-ended
// extras land in Ext.

// StatPools holds a type's base pool values and its bonus point allotment
type StatPools struct {
	Might       int `toml:"might"`
	Speed       int `toml:"speed"`
	Intellect   int `toml:"intellect"`
	BonusPoints int `toml:"bonus_points"`
}

// EdgeValues holds per-attribute edge granted by a type
type EdgeValues struct {
	Might     int `toml:"might"`
	Speed     int `toml:"speed"`
	Intellect int `toml:"intellect"`
}

// StartingTier holds the tier-1 derived values for a type
type StartingTier struct {
	Effort      int `toml:"effort"`
	CypherLimit int `toml:"cypher_limit"`
}

// Ability is a named ability with an activation cost and descriptive text
type Ability struct {
	Name        string `toml:"name"`
	Cost        string `toml:"cost"`
	Type        string `toml:"type"`
	Description string `toml:"description"`
}

// TierAbilities lists the abilities available at a tier and how many a
// character picks from them
type TierAbilities struct {
	Tier      int       `toml:"tier"`
	Count     int       `toml:"count"`
	Abilities []Ability `toml:"abilities"`
}

// TypeEquipment is the starting equipment granted by a type
type TypeEquipment struct {
	Weapons      []string `toml:"weapons"`
	Armor        string   `toml:"armor"`
	ExplorerPack bool     `toml:"explorer_pack"`
	Shins        int      `toml:"shins"`
	Other        []string `toml:"other"`
}

// SkillSet groups skills by proficiency
type SkillSet struct {
	Trained     []string `toml:"trained"`
	Specialized []string `toml:"specialized"`
	Inabilities []string `toml:"inabilities"`
}

// CharacterType is a playable character type (Glaive, Nano, Jack, ...)
type CharacterType struct {
	Name             string          `toml:"name"`
	Source           string          `toml:"source"`
	Tagline          string          `toml:"tagline"`
	StatPools        StatPools       `toml:"stat_pools"`
	Edge             EdgeValues      `toml:"edge"`
	StartingTier     StartingTier    `toml:"starting_tier"`
	Equipment        TypeEquipment   `toml:"equipment"`
	Skills           SkillSet        `toml:"skills"`
	SpecialAbilities []string        `toml:"special_abilities"`
	TierAbilities    []TierAbilities `toml:"tier_abilities"`
	Ext              map[string]any  `toml:"ext"`
}

// TierOneAbilities returns the tier-1 ability block, or nil if the type has none
func (t *CharacterType) TierOneAbilities() *TierAbilities {
	for i := range t.TierAbilities {
		if t.TierAbilities[i].Tier == 1 {
			return &t.TierAbilities[i]
		}
	}
	return nil
}

// StatModifiers holds pool adjustments from a descriptor or species
type StatModifiers struct {
	Might     int `toml:"might"`
	Speed     int `toml:"speed"`
	Intellect int `toml:"intellect"`
}

// NamedText is a name/description pair
type NamedText struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`
}

// DescriptorEquipment is the starting equipment granted by a descriptor
type DescriptorEquipment struct {
	Shins   int      `toml:"shins"`
	Weapons []string `toml:"weapons"`
	Armor   []string `toml:"armor"`
	Other   []string `toml:"other"`
}

// Descriptor is the adjective of the character sentence
type Descriptor struct {
	Name             string              `toml:"name"`
	Source           string              `toml:"source"`
	Tagline          string              `toml:"tagline"`
	StatModifiers    StatModifiers       `toml:"stat_modifiers"`
	Skills           SkillSet            `toml:"skills"`
	SpecialAbilities []NamedText         `toml:"special_abilities"`
	Equipment        DescriptorEquipment `toml:"equipment"`
	InitialLinks     []string            `toml:"initial_links"`
	Ext              map[string]any      `toml:"ext"`
}

// SpeciesStatModifiers extends StatModifiers with an optional bonus point
// override; when set it replaces the type's allotment
type SpeciesStatModifiers struct {
	Might              int  `toml:"might"`
	Speed              int  `toml:"speed"`
	Intellect          int  `toml:"intellect"`
	InitialBonusPoints *int `toml:"initial_bonus_points"`
}

// SpeciesEquipment is the starting equipment granted by a species
type SpeciesEquipment struct {
	StartingShins int      `toml:"starting_shins"`
	Items         []string `toml:"items"`
}

// Species replaces a descriptor for non-human characters
type Species struct {
	Name          string               `toml:"name"`
	Category      string               `toml:"category"`
	Tagline       string               `toml:"tagline"`
	StatModifiers SpeciesStatModifiers `toml:"stat_modifiers"`
	Abilities     []Ability            `toml:"abilities"`
	Skills        SkillSet             `toml:"skills"`
	Equipment     SpeciesEquipment     `toml:"equipment"`
	Ext           map[string]any       `toml:"ext"`
}

// Focus is the verb of the character sentence, restricted to suitable types
type Focus struct {
	Name          string         `toml:"name"`
	Source        string         `toml:"source"`
	Theme         string         `toml:"theme"`
	SuitableTypes []string       `toml:"suitable_types"`
	Connections   []string       `toml:"connections"`
	Equipment     []string       `toml:"equipment"`
	Tier1Ability  Ability        `toml:"tier_1_ability"`
	Ext           map[string]any `toml:"ext"`
}

// Cypher is a single-use item whose level is rolled from a formula
type Cypher struct {
	Name         string         `toml:"name"`
	LevelFormula string         `toml:"level_formula"`
	Type         string         `toml:"type"`
	Category     string         `toml:"category"`
	Effect       string         `toml:"effect"`
	Form         string         `toml:"form"`
	Ext          map[string]any `toml:"ext"`
}

// Artifact is a permanent numenera device with a depletion condition
type Artifact struct {
	Name         string         `toml:"name"`
	LevelFormula string         `toml:"level_formula"`
	Depletion    string         `toml:"depletion"`
	FormType     string         `toml:"form_type"`
	Effect       string         `toml:"effect"`
	Form         string         `toml:"form"`
	Ext          map[string]any `toml:"ext"`
}

// Oddity is a purely flavorful curiosity; every character carries exactly one
type Oddity struct {
	Name        string         `toml:"name"`
	ValueShins  int            `toml:"value_shins"`
	Description string         `toml:"description"`
	Ext         map[string]any `toml:"ext"`
}

// Weapon is a purchasable weapon
type Weapon struct {
	Name     string         `toml:"name"`
	Category string         `toml:"category"`
	Damage   int            `toml:"damage"`
	Cost     int            `toml:"cost"`
	Range    string         `toml:"range"`
	Notes    string         `toml:"notes"`
	Ext      map[string]any `toml:"ext"`
}

// Armor is purchasable armor
type Armor struct {
	Name            string         `toml:"name"`
	Category        string         `toml:"category"`
	ArmorBonus      int            `toml:"armor_bonus"`
	SpeedEffortCost int            `toml:"speed_effort_cost"`
	Cost            int            `toml:"cost"`
	Notes           string         `toml:"notes"`
	Ext             map[string]any `toml:"ext"`
}

// Shield is a purchasable shield
type Shield struct {
	Name              string         `toml:"name"`
	ArmorBonus        int            `toml:"armor_bonus"`
	SpeedDefenseAsset bool           `toml:"speed_defense_asset"`
	Cost              int            `toml:"cost"`
	Notes             string         `toml:"notes"`
	Ext               map[string]any `toml:"ext"`
}

// GearItem is general purchasable gear, consumables or clothing
type GearItem struct {
	Name     string         `toml:"name"`
	Category string         `toml:"category"`
	Cost     int            `toml:"cost"`
	Notes    string         `toml:"notes"`
	Ext      map[string]any `toml:"ext"`
}

// Equipment holds all purchasable items grouped by shop category
type Equipment struct {
	Weapons     []Weapon   `toml:"weapons"`
	Armor       []Armor    `toml:"armor"`
	Shields     []Shield   `toml:"shields"`
	Gear        []GearItem `toml:"gear"`
	Consumables []GearItem `toml:"consumables"`
	Clothing    []GearItem `toml:"clothing"`
}
