package character

// Step is one stage of the character assembly sequence. Steps complete
// strictly in order; revisiting an earlier step invalidates every step
// that depends on it.
type Step string

const (
	StepNameEntry      Step = "name_entry"
	StepGenderSelect   Step = "gender_select"
	StepTypeSelect     Step = "type_select"
	StepOriginSelect   Step = "origin_select"
	StepFocusSelect    Step = "focus_select"
	StepStatAllocation Step = "stat_allocation"
	StepAbilitySelect  Step = "ability_select"
	StepCypherSelect   Step = "cypher_select"
	StepOdditySelect   Step = "oddity_select"
	StepEquipmentShop  Step = "equipment_shop"
	StepFinalize       Step = "finalize"
)

// Steps returns every step in assembly order
func Steps() []Step {
	return []Step{
		StepNameEntry,
		StepGenderSelect,
		StepTypeSelect,
		StepOriginSelect,
		StepFocusSelect,
		StepStatAllocation,
		StepAbilitySelect,
		StepCypherSelect,
		StepOdditySelect,
		StepEquipmentShop,
		StepFinalize,
	}
}

// Index returns the step's position in assembly order, or -1 for an
// unknown step
func (s Step) Index() int {
	for i, step := range Steps() {
		if step == s {
			return i
		}
	}
	return -1
}

// stepDependents maps each step to the steps whose choices are derived
// from it. Name, gender and oddity feed nothing downstream; the focus
// candidate list depends on type, stat allocation depends on both type
// and origin, and the shop budget depends on type and origin shins.
var stepDependents = map[Step][]Step{
	StepTypeSelect: {
		StepFocusSelect,
		StepStatAllocation,
		StepAbilitySelect,
		StepCypherSelect,
		StepEquipmentShop,
	},
	StepOriginSelect: {
		StepStatAllocation,
		StepEquipmentShop,
	},
}

// DependentsOf returns the transitive closure of steps invalidated by
// redoing the given step, in assembly order
func DependentsOf(s Step) []Step {
	seen := make(map[Step]bool)

	var visit func(Step)
	visit = func(step Step) {
		for _, dep := range stepDependents[step] {
			if !seen[dep] {
				seen[dep] = true
				visit(dep)
			}
		}
	}
	visit(s)

	var out []Step
	for _, step := range Steps() {
		if seen[step] {
			out = append(out, step)
		}
	}
	return out
}
