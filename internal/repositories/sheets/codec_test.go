package sheets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ninthworld/chargen/internal/domain/catalog"
	"github.com/ninthworld/chargen/internal/domain/character"
	cherr "github.com/ninthworld/chargen/internal/errors"
)

// testSheet builds a fully populated sheet for round-trip tests
func testSheet(id string) *character.Sheet {
	return &character.Sheet{
		ID:         id,
		Name:       "Talia Veth",
		Gender:     character.GenderFemale,
		Tier:       1,
		TypeName:   "Glaive",
		Descriptor: "Strong",
		FocusName:  "Masters Weaponry",
		Pools: character.NewPoolPair(character.Pools{
			Might: 18, Speed: 12, Intellect: 8,
		}),
		Edge:        character.Edge{Might: 1},
		Effort:      1,
		ArmorRating: 2,
		DamageTrack: character.DamageTrackHale,
		Skills: character.Skills{
			Trained:     []string{"Might defense", "Jumping"},
			Specialized: []string{"Breaking things"},
			Inabilities: []string{"Lore"},
		},
		SpecialAbilities: []character.SpecialAbility{
			{Name: "Bash", Cost: "1 Might", Source: "Glaive", Description: "A pummeling strike"},
			{Name: "Weapon Master", Source: "Masters Weaponry", Description: "+1 damage with your weapon"},
		},
		CypherLimit: 2,
		Cyphers: []character.CypherInstance{
			{Name: "Stim", Level: 6, Type: "anoetic", Effect: "Restores pool points"},
			{Name: "Detonation", Level: 4, Type: "occultic", Effect: "Explodes"},
		},
		Artifacts: []character.ArtifactInstance{
			{Name: "Lightning Rod", Level: 5, Depletion: "1 in 1d20", Effect: "Hurls lightning"},
		},
		Oddity: character.OddityInstance{
			Name: "Singing Cube", ValueShins: 3, Description: "A cube that hums old songs",
		},
		Granted: character.GrantedEquipment{
			Weapons:      []string{"Broadsword"},
			Armor:        []string{"Brigandine"},
			ExplorerPack: true,
			Other:        []string{"A masterwork weapon"},
		},
		Purchases: []character.LineItem{
			{Name: "Rope", Category: catalog.CategoryGear, Cost: 2},
			{Name: "Rations", Category: catalog.CategoryConsumables, Cost: 5},
		},
		Shins: 8,
		Background: character.Background{
			Origin:      "a warrior",
			Connections: []string{"Pick one other PC; you trained together"},
		},
		CreatedAt: time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC),
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	original := testSheet("sheet-1")

	data, err := Encode(original)
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)

	assert.Equal(t, original, decoded)
}

func TestCodec_RoundTripSpeciesCharacter(t *testing.T) {
	original := testSheet("sheet-2")
	original.Descriptor = ""
	original.Species = "Varjellen"

	data, err := Encode(original)
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
	assert.Equal(t, "Varjellen", decoded.Origin())
}

func TestCodec_RoundTripNoPurchases(t *testing.T) {
	original := testSheet("sheet-frugal")
	original.Purchases = nil
	original.Artifacts = nil
	original.Skills.Specialized = nil
	original.Granted.Other = nil
	original.Background.Connections = nil
	original.Shins = 15

	data, err := Encode(original)
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
	assert.Nil(t, decoded.Purchases)
}

func TestCodec_RoundTripNormalizesEmptySlices(t *testing.T) {
	original := testSheet("sheet-empties")
	original.Purchases = []character.LineItem{}
	original.Skills.Specialized = nil

	data, err := Encode(original)
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)

	// the decoded copy matches the normalized original
	original.Normalize()
	assert.Equal(t, original, decoded)
	assert.Nil(t, decoded.Purchases)
	assert.Nil(t, decoded.Skills.Specialized)
}

func TestEncode_NilSheet(t *testing.T) {
	_, err := Encode(nil)
	assert.Error(t, err)
}

func TestDecode_Garbage(t *testing.T) {
	_, err := Decode([]byte("not toml at {{{ all"))
	require.Error(t, err)
	assert.True(t, cherr.IsCorruptData(err))
}

func TestDecode_TruncatedDocument(t *testing.T) {
	data, err := Encode(testSheet("sheet-3"))
	require.NoError(t, err)

	_, err = Decode(data[:len(data)/3])
	require.Error(t, err)
	assert.True(t, cherr.IsCorruptData(err))
}

func TestDecode_ValidTOMLBrokenSheet(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*character.Sheet)
	}{
		{"missing id", func(s *character.Sheet) { s.ID = "" }},
		{"missing name", func(s *character.Sheet) { s.Name = "" }},
		{"missing type", func(s *character.Sheet) { s.TypeName = "" }},
		{"missing focus", func(s *character.Sheet) { s.FocusName = "" }},
		{"missing origin", func(s *character.Sheet) { s.Descriptor = "" }},
		{"zero pool maximum", func(s *character.Sheet) { s.Pools.Maximum.Speed = 0 }},
		{"missing oddity", func(s *character.Sheet) { s.Oddity = character.OddityInstance{} }},
		{"zero cypher level", func(s *character.Sheet) { s.Cyphers[0].Level = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sheet := testSheet("sheet-4")
			tt.mutate(sheet)

			data, err := Encode(sheet)
			require.NoError(t, err)

			_, err = Decode(data)
			require.Error(t, err)
			assert.True(t, cherr.IsCorruptData(err), "got %v", err)
		})
	}
}
