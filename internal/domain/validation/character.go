package validation

import (
	"strings"

	"github.com/ninthworld/chargen/internal/domain/catalog"
	"github.com/ninthworld/chargen/internal/domain/character"
)

// CheckDraft validates an in-progress character. Mid-assembly only the
// completed steps are checked, so a half-built draft is not drowned in
// errors about choices it has not made yet. With final set, every rule
// applies regardless of completion state.
func CheckDraft(draft *character.Draft, cat *catalog.Catalog, final bool) *Report {
	report := &Report{}

	applies := func(step character.Step) bool {
		return final || draft.IsComplete(step)
	}

	if applies(character.StepNameEntry) && strings.TrimSpace(draft.Name) == "" {
		report.errorf(CodeMissingName, character.StepNameEntry, "", "character has no name")
	}

	var chosenType *catalog.CharacterType
	if applies(character.StepTypeSelect) {
		if draft.TypeName == "" {
			report.errorf(CodeMissingType, character.StepTypeSelect, "", "no character type chosen")
		} else if chosenType = cat.Type(draft.TypeName); chosenType == nil {
			report.errorf(CodeUnknownReference, character.StepTypeSelect, draft.TypeName,
				"type %q is not in the catalog", draft.TypeName)
		}
	}

	var species *catalog.Species
	if applies(character.StepOriginSelect) {
		checkOrigin(draft, cat, report)
		if draft.Species != "" {
			species = cat.SpeciesByName(draft.Species)
		}
	}

	if applies(character.StepFocusSelect) {
		checkFocus(draft, cat, report)
	}

	if applies(character.StepStatAllocation) && chosenType != nil {
		checkStatAllocation(draft, cat, chosenType, species, report)
	}

	if applies(character.StepAbilitySelect) && chosenType != nil {
		checkAbilities(draft, chosenType, report)
	}

	if applies(character.StepCypherSelect) {
		checkCyphers(draft, cat, chosenType, report)
	}

	if applies(character.StepOdditySelect) {
		if draft.Oddity == nil {
			report.errorf(CodeOddityCountMismatch, character.StepOdditySelect, "",
				"every character carries exactly one oddity")
		} else if cat.Oddity(draft.Oddity.Name) == nil {
			report.errorf(CodeUnknownReference, character.StepOdditySelect, draft.Oddity.Name,
				"oddity %q is not in the catalog", draft.Oddity.Name)
		}
	}

	if applies(character.StepEquipmentShop) {
		checkLedger(draft, cat, report)
	}

	return report
}

func checkOrigin(draft *character.Draft, cat *catalog.Catalog, report *Report) {
	switch {
	case draft.Descriptor == "" && draft.Species == "":
		report.errorf(CodeMissingOrigin, character.StepOriginSelect, "",
			"character needs a descriptor or a species")
	case draft.Descriptor != "" && draft.Species != "":
		report.errorf(CodeConflictingOrigin, character.StepOriginSelect, "",
			"descriptor %q and species %q are mutually exclusive", draft.Descriptor, draft.Species)
	case draft.Descriptor != "":
		if cat.Descriptor(draft.Descriptor) == nil {
			report.errorf(CodeUnknownReference, character.StepOriginSelect, draft.Descriptor,
				"descriptor %q is not in the catalog", draft.Descriptor)
		}
	default:
		if cat.SpeciesByName(draft.Species) == nil {
			report.errorf(CodeUnknownReference, character.StepOriginSelect, draft.Species,
				"species %q is not in the catalog", draft.Species)
		}
	}
}

func checkFocus(draft *character.Draft, cat *catalog.Catalog, report *Report) {
	if draft.FocusName == "" {
		report.errorf(CodeMissingFocus, character.StepFocusSelect, "", "no focus chosen")
		return
	}

	focus := cat.Focus(draft.FocusName)
	if focus == nil {
		report.errorf(CodeUnknownReference, character.StepFocusSelect, draft.FocusName,
			"focus %q is not in the catalog", draft.FocusName)
		return
	}

	if draft.TypeName == "" {
		return
	}
	for _, t := range focus.SuitableTypes {
		if strings.EqualFold(t, draft.TypeName) {
			return
		}
	}
	report.errorf(CodeUnsuitableFocus, character.StepFocusSelect, draft.FocusName,
		"focus %q does not suit a %s", draft.FocusName, draft.TypeName)
}

func checkStatAllocation(draft *character.Draft, cat *catalog.Catalog, chosenType *catalog.CharacterType, species *catalog.Species, report *Report) {
	allotment := catalog.BonusAllotment(chosenType, species)
	if spent := draft.BonusPools.Total(); spent != allotment {
		report.errorf(CodeBonusPointMismatch, character.StepStatAllocation, "",
			"bonus points must be spent exactly: spent %d of %d", spent, allotment)
	}

	if !draft.BonusPools.NonNegative() {
		report.errorf(CodeBonusPointMismatch, character.StepStatAllocation, "",
			"bonus point assignments cannot be negative")
	}

	pools := character.Pools{
		Might:     chosenType.StatPools.Might,
		Speed:     chosenType.StatPools.Speed,
		Intellect: chosenType.StatPools.Intellect,
	}
	if draft.Descriptor != "" {
		if d := cat.Descriptor(draft.Descriptor); d != nil {
			pools.Add(character.Pools{
				Might:     d.StatModifiers.Might,
				Speed:     d.StatModifiers.Speed,
				Intellect: d.StatModifiers.Intellect,
			})
		}
	}
	if species != nil {
		pools.Add(character.Pools{
			Might:     species.StatModifiers.Might,
			Speed:     species.StatModifiers.Speed,
			Intellect: species.StatModifiers.Intellect,
		})
	}
	pools.Add(draft.BonusPools)

	if !pools.AllPositive() {
		report.errorf(CodeNonPositivePool, character.StepStatAllocation, "",
			"every pool must end above zero, got %s", pools.String())
	}
}

func checkAbilities(draft *character.Draft, chosenType *catalog.CharacterType, report *Report) {
	tier1 := chosenType.TierOneAbilities()
	if tier1 == nil {
		if len(draft.ChosenAbilities) > 0 {
			report.errorf(CodeAbilityCountMismatch, character.StepAbilitySelect, "",
				"type %s offers no tier 1 ability choices", chosenType.Name)
		}
		return
	}

	if len(draft.ChosenAbilities) != tier1.Count {
		report.errorf(CodeAbilityCountMismatch, character.StepAbilitySelect, "",
			"type %s picks %d tier 1 abilities, got %d", chosenType.Name, tier1.Count, len(draft.ChosenAbilities))
	}

	offered := make(map[string]bool)
	for _, a := range tier1.Abilities {
		offered[strings.ToLower(a.Name)] = true
	}
	seen := make(map[string]bool)
	for _, name := range draft.ChosenAbilities {
		key := strings.ToLower(name)
		if !offered[key] {
			report.errorf(CodeUnknownReference, character.StepAbilitySelect, name,
				"ability %q is not offered at tier 1 by %s", name, chosenType.Name)
		}
		if seen[key] {
			report.errorf(CodeAbilityCountMismatch, character.StepAbilitySelect, name,
				"ability %q chosen more than once", name)
		}
		seen[key] = true
	}
}

func checkCyphers(draft *character.Draft, cat *catalog.Catalog, chosenType *catalog.CharacterType, report *Report) {
	if chosenType != nil {
		limit := chosenType.StartingTier.CypherLimit
		if len(draft.Cyphers) > limit {
			report.errorf(CodeCypherLimitExceeded, character.StepCypherSelect, "",
				"carrying %d cyphers but the limit is %d", len(draft.Cyphers), limit)
		}
	}

	for _, c := range draft.Cyphers {
		if cat.Cypher(c.Name) == nil {
			report.errorf(CodeUnknownReference, character.StepCypherSelect, c.Name,
				"cypher %q is not in the catalog", c.Name)
		}
	}

	if len(draft.Artifacts) > 2 {
		report.warnf(CodeInsufficientOptions, character.StepCypherSelect, "",
			"characters usually start with at most two artifacts, got %d", len(draft.Artifacts))
	}
	for _, a := range draft.Artifacts {
		if cat.Artifact(a.Name) == nil {
			report.errorf(CodeUnknownReference, character.StepCypherSelect, a.Name,
				"artifact %q is not in the catalog", a.Name)
		}
	}
}

func checkLedger(draft *character.Draft, cat *catalog.Catalog, report *Report) {
	if draft.Ledger == nil {
		return
	}

	if draft.Ledger.Total() > draft.Ledger.Cap() {
		report.errorf(CodeBudgetExceeded, character.StepEquipmentShop, "",
			"spent %d shins of a %d shin budget", draft.Ledger.Total(), draft.Ledger.Cap())
	}

	for _, item := range draft.Ledger.Purchases() {
		if cat.ShopItem(item.Name) == nil {
			report.errorf(CodeUnknownReference, character.StepEquipmentShop, item.Name,
				"purchased item %q is not in the catalog", item.Name)
		}
	}
}
