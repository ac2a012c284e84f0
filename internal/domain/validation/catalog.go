package validation

import (
	"strings"

	"github.com/ninthworld/chargen/internal/dice"
	"github.com/ninthworld/chargen/internal/domain/catalog"
)

// CheckCatalog verifies that loaded game data is internally consistent
// and that a character can actually be assembled from it. Catalog
// violations carry no assembly step; they are fixed in the data files.
func CheckCatalog(cat *catalog.Catalog) *Report {
	report := &Report{}

	checkCatalogDuplicates(cat, report)
	checkCatalogCollections(cat, report)
	checkLevelFormulas(cat, report)
	checkFocusSuitability(cat, report)
	checkTierOneFeasibility(cat, report)
	checkGrantedEquipmentRefs(cat, report)

	return report
}

func checkCatalogDuplicates(cat *catalog.Catalog, report *Report) {
	checkDuplicates := func(kind string, names []string) {
		seen := make(map[string]bool)
		for _, name := range names {
			key := strings.ToLower(name)
			if seen[key] {
				report.errorf(CodeDuplicateEntry, "", kind, "duplicate %s %q", kind, name)
			}
			seen[key] = true
		}
	}

	var names []string
	for _, t := range cat.Types {
		names = append(names, t.Name)
	}
	checkDuplicates("type", names)

	names = nil
	for _, d := range cat.Descriptors {
		names = append(names, d.Name)
	}
	checkDuplicates("descriptor", names)

	names = nil
	for _, s := range cat.Species {
		names = append(names, s.Name)
	}
	checkDuplicates("species", names)

	names = nil
	for _, f := range cat.Foci {
		names = append(names, f.Name)
	}
	checkDuplicates("focus", names)

	names = nil
	for _, c := range cat.Cyphers {
		names = append(names, c.Name)
	}
	checkDuplicates("cypher", names)

	names = nil
	for _, a := range cat.Artifacts {
		names = append(names, a.Name)
	}
	checkDuplicates("artifact", names)

	names = nil
	for _, o := range cat.Oddities {
		names = append(names, o.Name)
	}
	checkDuplicates("oddity", names)

	names = nil
	for _, item := range cat.ShopItems() {
		names = append(names, item.Name)
	}
	checkDuplicates("shop item", names)
}

func checkCatalogCollections(cat *catalog.Catalog, report *Report) {
	if len(cat.Types) == 0 {
		report.errorf(CodeEmptyCollection, "", "types", "no character types defined")
	}
	if len(cat.Descriptors) == 0 && len(cat.Species) == 0 {
		report.errorf(CodeEmptyCollection, "", "descriptors", "no descriptors or species defined")
	}
	if len(cat.Foci) == 0 {
		report.errorf(CodeEmptyCollection, "", "foci", "no foci defined")
	}
	if len(cat.Cyphers) == 0 {
		report.errorf(CodeEmptyCollection, "", "cyphers", "no cyphers defined")
	}
	if len(cat.Oddities) == 0 {
		report.errorf(CodeEmptyCollection, "", "oddities", "no oddities defined")
	}
}

func checkLevelFormulas(cat *catalog.Catalog, report *Report) {
	for _, c := range cat.Cyphers {
		if _, err := dice.ParseFormula(c.LevelFormula); err != nil {
			report.errorf(CodeBadLevelFormula, "", "cypher "+c.Name,
				"level formula %q does not parse: %v", c.LevelFormula, err)
		}
	}
	for _, a := range cat.Artifacts {
		if _, err := dice.ParseFormula(a.LevelFormula); err != nil {
			report.errorf(CodeBadLevelFormula, "", "artifact "+a.Name,
				"level formula %q does not parse: %v", a.LevelFormula, err)
		}
	}
}

func checkFocusSuitability(cat *catalog.Catalog, report *Report) {
	for _, f := range cat.Foci {
		for _, typeName := range f.SuitableTypes {
			if cat.Type(typeName) == nil {
				report.errorf(CodeUnknownSuitableType, "", "focus "+f.Name,
					"suitable type %q is not a known type", typeName)
			}
		}
	}

	for _, t := range cat.Types {
		if len(cat.SuitableFoci(t.Name)) == 0 {
			report.errorf(CodeNoSuitableFocus, "", "type "+t.Name,
				"no focus lists %q as a suitable type", t.Name)
		}
	}
}

func checkTierOneFeasibility(cat *catalog.Catalog, report *Report) {
	for _, t := range cat.Types {
		if t.StartingTier.CypherLimit < 1 {
			report.errorf(CodeInsufficientOptions, "", "type "+t.Name,
				"cypher limit is %d but every character carries at least one cypher", t.StartingTier.CypherLimit)
		}

		tier1 := t.TierOneAbilities()
		if tier1 == nil {
			continue
		}
		if tier1.Count > len(tier1.Abilities) {
			report.errorf(CodeInsufficientOptions, "", "type "+t.Name,
				"tier 1 asks for %d abilities but only offers %d", tier1.Count, len(tier1.Abilities))
		}
	}
}

// Granted equipment entries in source material are often free text
// ("a piece of jewelry"), so unresolved names are warnings, not errors.
func checkGrantedEquipmentRefs(cat *catalog.Catalog, report *Report) {
	for _, t := range cat.Types {
		for _, w := range t.Equipment.Weapons {
			if cat.Weapon(w) == nil {
				report.warnf(CodeDanglingReference, "", "type "+t.Name,
					"granted weapon %q is not in the equipment list", w)
			}
		}
		if t.Equipment.Armor != "" && cat.ArmorItem(t.Equipment.Armor) == nil {
			report.warnf(CodeDanglingReference, "", "type "+t.Name,
				"granted armor %q is not in the equipment list", t.Equipment.Armor)
		}
	}

	for _, d := range cat.Descriptors {
		for _, w := range d.Equipment.Weapons {
			if cat.Weapon(w) == nil {
				report.warnf(CodeDanglingReference, "", "descriptor "+d.Name,
					"granted weapon %q is not in the equipment list", w)
			}
		}
		for _, a := range d.Equipment.Armor {
			if cat.ArmorItem(a) == nil {
				report.warnf(CodeDanglingReference, "", "descriptor "+d.Name,
					"granted armor %q is not in the equipment list", a)
			}
		}
	}
}
