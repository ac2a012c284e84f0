package character

import (
	"fmt"
	"strings"
	"time"
)

// Skills groups a finished character's skills by proficiency, merged and
// deduplicated across type, origin and focus
type Skills struct {
	Trained     []string `toml:"trained"`
	Specialized []string `toml:"specialized"`
	Inabilities []string `toml:"inabilities"`
}

// GrantedEquipment is the starting gear handed out by type, origin and
// focus, as opposed to shop purchases
type GrantedEquipment struct {
	Weapons      []string `toml:"weapons"`
	Armor        []string `toml:"armor"`
	ExplorerPack bool     `toml:"explorer_pack"`
	Other        []string `toml:"other"`
}

// SpecialAbility is an ability on the finished sheet
type SpecialAbility struct {
	Name        string `toml:"name"`
	Cost        string `toml:"cost"`
	Source      string `toml:"source"`
	Description string `toml:"description"`
}

// Background captures flavor text attached to the character
type Background struct {
	Origin      string   `toml:"origin"`
	Connections []string `toml:"connections"`
}

// Sheet is a finished, immutable character. It is the unit of
// persistence: encoding and decoding a sheet must reproduce it exactly.
type Sheet struct {
	ID     string `toml:"id"`
	Name   string `toml:"name"`
	Gender Gender `toml:"gender"`
	Tier   int    `toml:"tier"`

	TypeName   string `toml:"type"`
	Descriptor string `toml:"descriptor,omitempty"`
	Species    string `toml:"species,omitempty"`
	FocusName  string `toml:"focus"`

	Pools       PoolPair    `toml:"pools"`
	Edge        Edge        `toml:"edge"`
	Effort      int         `toml:"effort"`
	ArmorRating int         `toml:"armor_rating"`
	DamageTrack DamageTrack `toml:"damage_track"`

	Skills           Skills           `toml:"skills"`
	SpecialAbilities []SpecialAbility `toml:"special_abilities"`

	CypherLimit int                `toml:"cypher_limit"`
	Cyphers     []CypherInstance   `toml:"cyphers"`
	Artifacts   []ArtifactInstance `toml:"artifacts,omitempty"`
	Oddity      OddityInstance     `toml:"oddity"`

	Granted   GrantedEquipment `toml:"granted_equipment"`
	Purchases []LineItem       `toml:"purchases,omitempty"`
	Shins     int              `toml:"shins"`

	Background Background `toml:"background"`

	CreatedAt time.Time `toml:"created_at"`
}

// Normalize replaces empty slices with nil. TOML cannot distinguish an
// empty list from an absent one, so a sheet must be normalized before
// encoding for the decoded copy to compare equal to it.
func (s *Sheet) Normalize() {
	s.Skills.Trained = dropEmpty(s.Skills.Trained)
	s.Skills.Specialized = dropEmpty(s.Skills.Specialized)
	s.Skills.Inabilities = dropEmpty(s.Skills.Inabilities)
	s.SpecialAbilities = dropEmpty(s.SpecialAbilities)
	s.Cyphers = dropEmpty(s.Cyphers)
	s.Artifacts = dropEmpty(s.Artifacts)
	s.Granted.Weapons = dropEmpty(s.Granted.Weapons)
	s.Granted.Armor = dropEmpty(s.Granted.Armor)
	s.Granted.Other = dropEmpty(s.Granted.Other)
	s.Purchases = dropEmpty(s.Purchases)
	s.Background.Connections = dropEmpty(s.Background.Connections)
}

func dropEmpty[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	return s
}

// Origin returns the descriptor or species name, whichever is set
func (s *Sheet) Origin() string {
	if s.Species != "" {
		return s.Species
	}
	return s.Descriptor
}

// Sentence renders the traditional character summary:
// "I am a ORIGIN TYPE who FOCUS"
func (s *Sheet) Sentence() string {
	return fmt.Sprintf("I am a %s %s who %s", s.Origin(), s.TypeName, s.FocusName)
}

func (s *Sheet) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", s.Name)
	fmt.Fprintf(&b, "%s\n", s.Sentence())
	fmt.Fprintf(&b, "Tier %d  Effort %d  Armor %d\n", s.Tier, s.Effort, s.ArmorRating)
	fmt.Fprintf(&b, "Pools: %s\n", s.Pools.Maximum.String())
	fmt.Fprintf(&b, "Edge: Might %d, Speed %d, Intellect %d\n", s.Edge.Might, s.Edge.Speed, s.Edge.Intellect)
	fmt.Fprintf(&b, "Shins: %d\n", s.Shins)
	return b.String()
}
