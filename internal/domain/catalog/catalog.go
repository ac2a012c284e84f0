package catalog

import (
	"strings"
)

// Category is a shop category the budget ledger partitions purchases by
type Category string

const (
	CategoryWeapons     Category = "weapons"
	CategoryArmor       Category = "armor"
	CategoryShields     Category = "shields"
	CategoryGear        Category = "gear"
	CategoryConsumables Category = "consumables"
	CategoryClothing    Category = "clothing"
)

// Categories lists every shop category in display order
func Categories() []Category {
	return []Category{
		CategoryWeapons,
		CategoryArmor,
		CategoryShields,
		CategoryGear,
		CategoryConsumables,
		CategoryClothing,
	}
}

// ShopItem is the flattened view of a purchasable item used by the
// equipment shop step and the budget ledger
type ShopItem struct {
	Name     string
	Category Category
	Cost     int
	Notes    string
}

// Catalog is the immutable collection of game data records. It is built
// once by the loader, validated, and then only read.
type Catalog struct {
	Types       []CharacterType
	Descriptors []Descriptor
	Species     []Species
	Foci        []Focus
	Equipment   Equipment
	Cyphers     []Cypher
	Artifacts   []Artifact
	Oddities    []Oddity
}

// Type finds a character type by name
func (c *Catalog) Type(name string) *CharacterType {
	for i := range c.Types {
		if strings.EqualFold(c.Types[i].Name, name) {
			return &c.Types[i]
		}
	}
	return nil
}

// Descriptor finds a descriptor by name
func (c *Catalog) Descriptor(name string) *Descriptor {
	for i := range c.Descriptors {
		if strings.EqualFold(c.Descriptors[i].Name, name) {
			return &c.Descriptors[i]
		}
	}
	return nil
}

// SpeciesByName finds a species by name
func (c *Catalog) SpeciesByName(name string) *Species {
	for i := range c.Species {
		if strings.EqualFold(c.Species[i].Name, name) {
			return &c.Species[i]
		}
	}
	return nil
}

// Focus finds a focus by name
func (c *Catalog) Focus(name string) *Focus {
	for i := range c.Foci {
		if strings.EqualFold(c.Foci[i].Name, name) {
			return &c.Foci[i]
		}
	}
	return nil
}

// Cypher finds a cypher by name
func (c *Catalog) Cypher(name string) *Cypher {
	for i := range c.Cyphers {
		if strings.EqualFold(c.Cyphers[i].Name, name) {
			return &c.Cyphers[i]
		}
	}
	return nil
}

// Artifact finds an artifact by name
func (c *Catalog) Artifact(name string) *Artifact {
	for i := range c.Artifacts {
		if strings.EqualFold(c.Artifacts[i].Name, name) {
			return &c.Artifacts[i]
		}
	}
	return nil
}

// Oddity finds an oddity by name
func (c *Catalog) Oddity(name string) *Oddity {
	for i := range c.Oddities {
		if strings.EqualFold(c.Oddities[i].Name, name) {
			return &c.Oddities[i]
		}
	}
	return nil
}

// SuitableFoci returns the foci whose suitable-type list contains the
// given type. This drives the focus step's candidate list.
func (c *Catalog) SuitableFoci(typeName string) []*Focus {
	var result []*Focus
	for i := range c.Foci {
		for _, t := range c.Foci[i].SuitableTypes {
			if strings.EqualFold(t, typeName) {
				result = append(result, &c.Foci[i])
				break
			}
		}
	}
	return result
}

// Weapon finds a purchasable weapon by name
func (c *Catalog) Weapon(name string) *Weapon {
	for i := range c.Equipment.Weapons {
		if strings.EqualFold(c.Equipment.Weapons[i].Name, name) {
			return &c.Equipment.Weapons[i]
		}
	}
	return nil
}

// ArmorItem finds purchasable armor by name
func (c *Catalog) ArmorItem(name string) *Armor {
	for i := range c.Equipment.Armor {
		if strings.EqualFold(c.Equipment.Armor[i].Name, name) {
			return &c.Equipment.Armor[i]
		}
	}
	return nil
}

// ShopItems flattens every purchasable item into one list for the shop step
func (c *Catalog) ShopItems() []ShopItem {
	var items []ShopItem
	for _, w := range c.Equipment.Weapons {
		items = append(items, ShopItem{Name: w.Name, Category: CategoryWeapons, Cost: w.Cost, Notes: w.Notes})
	}
	for _, a := range c.Equipment.Armor {
		items = append(items, ShopItem{Name: a.Name, Category: CategoryArmor, Cost: a.Cost, Notes: a.Notes})
	}
	for _, s := range c.Equipment.Shields {
		items = append(items, ShopItem{Name: s.Name, Category: CategoryShields, Cost: s.Cost, Notes: s.Notes})
	}
	for _, g := range c.Equipment.Gear {
		items = append(items, ShopItem{Name: g.Name, Category: CategoryGear, Cost: g.Cost, Notes: g.Notes})
	}
	for _, g := range c.Equipment.Consumables {
		items = append(items, ShopItem{Name: g.Name, Category: CategoryConsumables, Cost: g.Cost, Notes: g.Notes})
	}
	for _, g := range c.Equipment.Clothing {
		items = append(items, ShopItem{Name: g.Name, Category: CategoryClothing, Cost: g.Cost, Notes: g.Notes})
	}
	return items
}

// ShopItem finds a purchasable item by name across all categories
func (c *Catalog) ShopItem(name string) *ShopItem {
	for _, item := range c.ShopItems() {
		if strings.EqualFold(item.Name, name) {
			found := item
			return &found
		}
	}
	return nil
}

// StartingShins computes the shin budget for the shop step. It is a pure
// function of the chosen type and descriptor-or-species.
func StartingShins(t *CharacterType, d *Descriptor, s *Species) int {
	shins := t.Equipment.Shins
	if s != nil {
		return shins + s.Equipment.StartingShins
	}
	if d != nil {
		return shins + d.Equipment.Shins
	}
	return shins
}

// BonusAllotment resolves the bonus point total for stat allocation. A
// species may override the type's allotment.
func BonusAllotment(t *CharacterType, s *Species) int {
	if s != nil && s.StatModifiers.InitialBonusPoints != nil {
		return *s.StatModifiers.InitialBonusPoints
	}
	return t.StatPools.BonusPoints
}
