package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cherr "github.com/ninthworld/chargen/internal/errors"
)

func writeDataDir(t *testing.T, overrides map[string]string) string {
	t.Helper()

	files := map[string]string{
		"types.toml": `
[[types]]
name = "Glaive"
tagline = "a warrior"

[types.stat_pools]
might = 11
speed = 10
intellect = 7
bonus_points = 6

[types.edge]
might = 1

[types.starting_tier]
effort = 1
cypher_limit = 2

[types.equipment]
weapons = ["Broadsword"]
shins = 5

[types.skills]
trained = ["Might defense"]

[[types.tier_abilities]]
tier = 1
count = 2

[[types.tier_abilities.abilities]]
name = "Bash"
cost = "1 Might"
description = "A pummeling strike"

[[types.tier_abilities.abilities]]
name = "Pierce"
cost = "1 Speed"
description = "A precise stab"
`,
		"descriptors.toml": `
[[descriptors]]
name = "Strong"

[descriptors.stat_modifiers]
might = 4

[descriptors.equipment]
shins = 10
`,
		"foci.toml": `
[[foci]]
name = "Masters Weaponry"
suitable_types = ["Glaive"]

[foci.tier_1_ability]
name = "Weapon Master"
description = "+1 damage"
`,
		"species.toml": `
[[species]]
name = "Varjellen"

[species.stat_modifiers]
might = -2
intellect = 2
initial_bonus_points = 8

[species.equipment]
starting_shins = 8
`,
		"equipment.toml": `
[[weapons]]
name = "Broadsword"
category = "medium"
damage = 4
cost = 10

[[gear]]
name = "Rope"
cost = 2
`,
		"cyphers.toml": `
[[cyphers]]
name = "Stim"
level_formula = "1d6+2"
type = "anoetic"
`,
		"artifacts.toml": `
[[artifacts]]
name = "Lightning Rod"
level_formula = "1d6+2"
depletion = "1 in 1d20"
`,
		"oddities.toml": `
[[oddities]]
name = "Singing Cube"
value_shins = 3
description = "A cube that hums old songs"
`,
	}
	for name, content := range overrides {
		files[name] = content
	}

	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestLoad(t *testing.T) {
	dir := writeDataDir(t, nil)

	cat, err := Load(dir)
	require.NoError(t, err)

	require.Len(t, cat.Types, 1)
	glaive := cat.Type("Glaive")
	require.NotNil(t, glaive)
	assert.Equal(t, 11, glaive.StatPools.Might)
	assert.Equal(t, 6, glaive.StatPools.BonusPoints)
	assert.Equal(t, 2, glaive.StartingTier.CypherLimit)

	tier1 := glaive.TierOneAbilities()
	require.NotNil(t, tier1)
	assert.Equal(t, 2, tier1.Count)
	assert.Len(t, tier1.Abilities, 2)

	sp := cat.SpeciesByName("Varjellen")
	require.NotNil(t, sp)
	require.NotNil(t, sp.StatModifiers.InitialBonusPoints)
	assert.Equal(t, 8, *sp.StatModifiers.InitialBonusPoints)
	assert.Equal(t, -2, sp.StatModifiers.Might)

	assert.Len(t, cat.Equipment.Weapons, 1)
	assert.Len(t, cat.Equipment.Gear, 1)
	assert.Len(t, cat.Cyphers, 1)
	assert.Len(t, cat.Artifacts, 1)
	assert.Len(t, cat.Oddities, 1)
}

func TestLoad_MissingFile(t *testing.T) {
	dir := writeDataDir(t, nil)
	require.NoError(t, os.Remove(filepath.Join(dir, "oddities.toml")))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoad_MalformedTOML(t *testing.T) {
	dir := writeDataDir(t, map[string]string{
		"cyphers.toml": "[[cyphers]\nname = broken",
	})

	_, err := Load(dir)
	require.Error(t, err)
	assert.True(t, cherr.IsCorruptData(err))
}

func TestLoad_MissingDir(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
