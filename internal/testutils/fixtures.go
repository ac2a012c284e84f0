package testutils

import (
	"github.com/ninthworld/chargen/internal/domain/catalog"
)

// CreateTestCatalog builds a small but complete catalog that passes
// catalog validation. Tests that need broken data start from this and
// damage it.
func CreateTestCatalog() *catalog.Catalog {
	varjellenBonus := 8

	return &catalog.Catalog{
		Types: []catalog.CharacterType{
			{
				Name:    "Glaive",
				Tagline: "a warrior",
				StatPools: catalog.StatPools{
					Might: 11, Speed: 10, Intellect: 7, BonusPoints: 6,
				},
				Edge:         catalog.EdgeValues{Might: 1},
				StartingTier: catalog.StartingTier{Effort: 1, CypherLimit: 2},
				Equipment: catalog.TypeEquipment{
					Weapons:      []string{"Broadsword"},
					Armor:        "Brigandine",
					ExplorerPack: true,
					Shins:        5,
				},
				Skills: catalog.SkillSet{
					Trained: []string{"Might defense"},
				},
				TierAbilities: []catalog.TierAbilities{
					{
						Tier:  1,
						Count: 2,
						Abilities: []catalog.Ability{
							{Name: "Bash", Cost: "1 Might", Description: "A pummeling strike"},
							{Name: "Pierce", Cost: "1 Speed", Description: "A precise stab"},
							{Name: "Thrust", Cost: "1 Might", Description: "A powerful jab"},
						},
					},
				},
			},
			{
				Name:    "Nano",
				Tagline: "a master of the numenera",
				StatPools: catalog.StatPools{
					Might: 7, Speed: 9, Intellect: 12, BonusPoints: 6,
				},
				Edge:         catalog.EdgeValues{Intellect: 1},
				StartingTier: catalog.StartingTier{Effort: 1, CypherLimit: 3},
				Equipment: catalog.TypeEquipment{
					Shins: 4,
					Other: []string{"A book about the numenera"},
				},
				Skills: catalog.SkillSet{
					Trained: []string{"Numenera"},
				},
				TierAbilities: []catalog.TierAbilities{
					{
						Tier:  1,
						Count: 2,
						Abilities: []catalog.Ability{
							{Name: "Onslaught", Cost: "1 Intellect", Description: "A bolt of force"},
							{Name: "Ward", Cost: "", Description: "+1 Armor"},
							{Name: "Scan", Cost: "2 Intellect", Description: "Scan an object"},
						},
					},
				},
			},
		},
		Descriptors: []catalog.Descriptor{
			{
				Name:          "Strong",
				StatModifiers: catalog.StatModifiers{Might: 4},
				Skills:        catalog.SkillSet{Trained: []string{"Jumping"}},
				Equipment:     catalog.DescriptorEquipment{Shins: 10},
			},
			{
				Name:          "Clever",
				StatModifiers: catalog.StatModifiers{Intellect: 2},
				Skills: catalog.SkillSet{
					Trained:     []string{"Deception", "Intimidation"},
					Inabilities: []string{"Lore"},
				},
				Equipment: catalog.DescriptorEquipment{Shins: 10},
			},
		},
		Species: []catalog.Species{
			{
				Name:     "Varjellen",
				Category: "species",
				StatModifiers: catalog.SpeciesStatModifiers{
					Might:              -2,
					Intellect:          2,
					InitialBonusPoints: &varjellenBonus,
				},
				Skills:    catalog.SkillSet{Trained: []string{"Numenera"}},
				Equipment: catalog.SpeciesEquipment{StartingShins: 8},
			},
		},
		Foci: []catalog.Focus{
			{
				Name:          "Masters Weaponry",
				SuitableTypes: []string{"Glaive"},
				Equipment:     []string{"A masterwork weapon"},
				Connections:   []string{"Pick one other PC; you trained together"},
				Tier1Ability:  catalog.Ability{Name: "Weapon Master", Description: "+1 damage with your weapon"},
			},
			{
				Name:          "Talks to Machines",
				SuitableTypes: []string{"Nano", "Glaive"},
				Tier1Ability:  catalog.Ability{Name: "Distant Activation", Cost: "1 Intellect", Description: "Activate a machine at range"},
			},
		},
		Equipment: catalog.Equipment{
			Weapons: []catalog.Weapon{
				{Name: "Broadsword", Category: "medium", Damage: 4, Cost: 10},
				{Name: "Dagger", Category: "light", Damage: 2, Cost: 2},
			},
			Armor: []catalog.Armor{
				{Name: "Brigandine", Category: "medium", ArmorBonus: 2, SpeedEffortCost: 2, Cost: 8},
			},
			Shields: []catalog.Shield{
				{Name: "Shield", ArmorBonus: 1, SpeedDefenseAsset: true, Cost: 3},
			},
			Gear: []catalog.GearItem{
				{Name: "Rope", Cost: 2, Notes: "15 meters"},
				{Name: "Glowglobe", Cost: 10},
			},
			Consumables: []catalog.GearItem{
				{Name: "Rations", Cost: 5, Notes: "one week"},
			},
			Clothing: []catalog.GearItem{
				{Name: "Sturdy Clothing", Cost: 5},
			},
		},
		Cyphers: []catalog.Cypher{
			{Name: "Stim", LevelFormula: "1d6+2", Type: "anoetic", Effect: "Restores pool points"},
			{Name: "Detonation", LevelFormula: "1d6+1", Type: "occultic", Effect: "Explodes"},
			{Name: "Phase Changer", LevelFormula: "1d6", Type: "occultic", Effect: "Walk through walls"},
		},
		Artifacts: []catalog.Artifact{
			{Name: "Lightning Rod", LevelFormula: "1d6+2", Depletion: "1 in 1d20", Effect: "Hurls lightning"},
		},
		Oddities: []catalog.Oddity{
			{Name: "Singing Cube", ValueShins: 3, Description: "A cube that hums old songs"},
			{Name: "Glass Flower", ValueShins: 1, Description: "Never wilts, never breaks"},
		},
	}
}
