package character

// Gender is the character's gender selection
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Genders lists the selectable genders
func Genders() []Gender {
	return []Gender{GenderMale, GenderFemale, GenderOther}
}

// CypherInstance is a cypher resolved to a concrete level
type CypherInstance struct {
	Name   string `toml:"name"`
	Level  int    `toml:"level"`
	Type   string `toml:"type"`
	Effect string `toml:"effect"`
	Form   string `toml:"form"`
}

// ArtifactInstance is an artifact resolved to a concrete level
type ArtifactInstance struct {
	Name      string `toml:"name"`
	Level     int    `toml:"level"`
	Depletion string `toml:"depletion"`
	Effect    string `toml:"effect"`
	Form      string `toml:"form"`
}

// OddityInstance is the character's single oddity
type OddityInstance struct {
	Name        string `toml:"name"`
	ValueShins  int    `toml:"value_shins"`
	Description string `toml:"description"`
}

// Draft accumulates choices while a character is being assembled. Fields
// are only meaningful once the step that sets them is marked complete.
type Draft struct {
	Cursor    Step
	Completed map[Step]bool

	Name   string
	Gender Gender

	TypeName string

	// Exactly one of Descriptor or Species is set after the origin step
	Descriptor string
	Species    string

	FocusName string

	// BonusPools is the player's distribution of bonus points on top of
	// base pools; BonusAllotment is the total they must spend exactly.
	BonusPools     Pools
	BonusAllotment int

	ChosenAbilities []string

	Cyphers   []CypherInstance
	Artifacts []ArtifactInstance
	Oddity    *OddityInstance

	Ledger *Ledger

	consumed bool
}

// NewDraft creates an empty draft positioned at the first step
func NewDraft() *Draft {
	return &Draft{
		Cursor:    StepNameEntry,
		Completed: make(map[Step]bool),
	}
}

// Complete marks a step done and advances the cursor to the next
// incomplete step. After a back-navigation the steps in between may
// still be complete; they are skipped rather than redone.
func (d *Draft) Complete(step Step) {
	d.Completed[step] = true

	steps := Steps()
	for i := step.Index() + 1; i < len(steps); i++ {
		if !d.Completed[steps[i]] {
			d.Cursor = steps[i]
			return
		}
	}
	d.Cursor = StepFinalize
}

// IsComplete reports whether a step has been completed
func (d *Draft) IsComplete(step Step) bool {
	return d.Completed[step]
}

// Consumed reports whether the draft has already produced a final sheet
func (d *Draft) Consumed() bool {
	return d.consumed
}

// MarkConsumed seals the draft after finalization
func (d *Draft) MarkConsumed() {
	d.consumed = true
}

// ClearFrom un-completes the given step and everything that depends on
// it, erasing the affected choices, and moves the cursor back
func (d *Draft) ClearFrom(step Step) {
	d.clearStep(step)
	for _, dep := range DependentsOf(step) {
		d.clearStep(dep)
	}
	d.Cursor = step
}

func (d *Draft) clearStep(step Step) {
	delete(d.Completed, step)

	switch step {
	case StepNameEntry:
		d.Name = ""
	case StepGenderSelect:
		d.Gender = ""
	case StepTypeSelect:
		d.TypeName = ""
	case StepOriginSelect:
		d.Descriptor = ""
		d.Species = ""
	case StepFocusSelect:
		d.FocusName = ""
	case StepStatAllocation:
		d.BonusPools = Pools{}
		d.BonusAllotment = 0
	case StepAbilitySelect:
		d.ChosenAbilities = nil
	case StepCypherSelect:
		d.Cyphers = nil
		d.Artifacts = nil
	case StepOdditySelect:
		d.Oddity = nil
	case StepEquipmentShop:
		d.Ledger = nil
	}
}
