package assembly

import (
	"strings"
	"time"

	"github.com/ninthworld/chargen/internal/dice"
	"github.com/ninthworld/chargen/internal/domain/catalog"
	"github.com/ninthworld/chargen/internal/domain/character"
	"github.com/ninthworld/chargen/internal/domain/validation"
	cherr "github.com/ninthworld/chargen/internal/errors"
	"github.com/ninthworld/chargen/internal/uuid"
)

// Session drives one character through the assembly sequence. Steps
// complete strictly in order; going back to a completed step wipes the
// choices that depended on it. A session is not safe for concurrent
// use; each character gets its own.
type Session struct {
	catalog *catalog.Catalog
	roller  dice.Roller
	idGen   uuid.Generator
	draft   *character.Draft
}

// SessionConfig holds the dependencies for a session
type SessionConfig struct {
	Catalog     *catalog.Catalog
	Roller      dice.Roller
	IDGenerator uuid.Generator
}

// NewSession creates a session positioned at the first step
func NewSession(cfg *SessionConfig) (*Session, error) {
	if cfg == nil {
		return nil, cherr.InvalidArgument("config is required")
	}
	if cfg.Catalog == nil {
		return nil, cherr.InvalidArgument("catalog is required")
	}
	if cfg.Roller == nil {
		return nil, cherr.InvalidArgument("roller is required")
	}
	if cfg.IDGenerator == nil {
		return nil, cherr.InvalidArgument("id generator is required")
	}

	return &Session{
		catalog: cfg.Catalog,
		roller:  cfg.Roller,
		idGen:   cfg.IDGenerator,
		draft:   character.NewDraft(),
	}, nil
}

// Draft exposes the in-progress character for display
func (s *Session) Draft() *character.Draft {
	return s.draft
}

// Cursor returns the step the session is waiting on
func (s *Session) Cursor() character.Step {
	return s.draft.Cursor
}

// atStep guards every mutation: the draft must be live and the cursor
// must sit on the step being set
func (s *Session) atStep(step character.Step) error {
	if s.draft.Consumed() {
		return cherr.InvalidArgument("draft has already been finalized")
	}
	if s.draft.Cursor != step {
		return cherr.InvalidArgumentf("session is at step %s, not %s", s.draft.Cursor, step)
	}
	return nil
}

// SetName completes the name entry step
func (s *Session) SetName(name string) error {
	if err := s.atStep(character.StepNameEntry); err != nil {
		return err
	}
	if strings.TrimSpace(name) == "" {
		return cherr.InvalidArgument("name cannot be empty")
	}

	s.draft.Name = strings.TrimSpace(name)
	s.draft.Complete(character.StepNameEntry)
	return nil
}

// SetGender completes the gender step
func (s *Session) SetGender(gender character.Gender) error {
	if err := s.atStep(character.StepGenderSelect); err != nil {
		return err
	}

	switch gender {
	case character.GenderMale, character.GenderFemale, character.GenderOther:
	default:
		return cherr.InvalidArgumentf("unknown gender %q", gender)
	}

	s.draft.Gender = gender
	s.draft.Complete(character.StepGenderSelect)
	return nil
}

// SetType completes the type step
func (s *Session) SetType(name string) error {
	if err := s.atStep(character.StepTypeSelect); err != nil {
		return err
	}

	t := s.catalog.Type(name)
	if t == nil {
		return cherr.NotFoundf("type %q is not in the catalog", name)
	}

	s.draft.TypeName = t.Name
	s.draft.Complete(character.StepTypeSelect)
	return nil
}

// SetDescriptor completes the origin step with a descriptor
func (s *Session) SetDescriptor(name string) error {
	if err := s.atStep(character.StepOriginSelect); err != nil {
		return err
	}

	d := s.catalog.Descriptor(name)
	if d == nil {
		return cherr.NotFoundf("descriptor %q is not in the catalog", name)
	}

	s.draft.Descriptor = d.Name
	s.draft.Species = ""
	s.draft.Complete(character.StepOriginSelect)
	return nil
}

// SetSpecies completes the origin step with a species instead of a
// descriptor
func (s *Session) SetSpecies(name string) error {
	if err := s.atStep(character.StepOriginSelect); err != nil {
		return err
	}

	sp := s.catalog.SpeciesByName(name)
	if sp == nil {
		return cherr.NotFoundf("species %q is not in the catalog", name)
	}

	s.draft.Species = sp.Name
	s.draft.Descriptor = ""
	s.draft.Complete(character.StepOriginSelect)
	return nil
}

// SuitableFoci lists the foci the chosen type may take
func (s *Session) SuitableFoci() []*catalog.Focus {
	return s.catalog.SuitableFoci(s.draft.TypeName)
}

// SetFocus completes the focus step; the focus must suit the chosen type
func (s *Session) SetFocus(name string) error {
	if err := s.atStep(character.StepFocusSelect); err != nil {
		return err
	}

	f := s.catalog.Focus(name)
	if f == nil {
		return cherr.NotFoundf("focus %q is not in the catalog", name)
	}

	suits := false
	for _, t := range f.SuitableTypes {
		if strings.EqualFold(t, s.draft.TypeName) {
			suits = true
			break
		}
	}
	if !suits {
		return cherr.InvalidArgumentf("focus %q does not suit a %s", f.Name, s.draft.TypeName)
	}

	s.draft.FocusName = f.Name
	s.draft.Complete(character.StepFocusSelect)
	return nil
}

// BonusAllotment returns the bonus points the stat step must spend
func (s *Session) BonusAllotment() int {
	t := s.catalog.Type(s.draft.TypeName)
	if t == nil {
		return 0
	}
	var sp *catalog.Species
	if s.draft.Species != "" {
		sp = s.catalog.SpeciesByName(s.draft.Species)
	}
	return catalog.BonusAllotment(t, sp)
}

// BasePools returns the pool values before bonus points: type base plus
// origin modifiers
func (s *Session) BasePools() character.Pools {
	t := s.catalog.Type(s.draft.TypeName)
	if t == nil {
		return character.Pools{}
	}

	pools := character.Pools{
		Might:     t.StatPools.Might,
		Speed:     t.StatPools.Speed,
		Intellect: t.StatPools.Intellect,
	}
	if s.draft.Descriptor != "" {
		if d := s.catalog.Descriptor(s.draft.Descriptor); d != nil {
			pools.Add(character.Pools{
				Might:     d.StatModifiers.Might,
				Speed:     d.StatModifiers.Speed,
				Intellect: d.StatModifiers.Intellect,
			})
		}
	}
	if s.draft.Species != "" {
		if sp := s.catalog.SpeciesByName(s.draft.Species); sp != nil {
			pools.Add(character.Pools{
				Might:     sp.StatModifiers.Might,
				Speed:     sp.StatModifiers.Speed,
				Intellect: sp.StatModifiers.Intellect,
			})
		}
	}
	return pools
}

// AllocateStats completes the stat step. The bonus allotment must be
// spent exactly and every resulting pool must end above zero.
func (s *Session) AllocateStats(bonus character.Pools) error {
	if err := s.atStep(character.StepStatAllocation); err != nil {
		return err
	}

	if !bonus.NonNegative() {
		return cherr.InvalidArgument("bonus point assignments cannot be negative")
	}

	allotment := s.BonusAllotment()
	if bonus.Total() != allotment {
		return cherr.Invariantf("bonus points must be spent exactly: spent %d of %d", bonus.Total(), allotment)
	}

	pools := s.BasePools()
	pools.Add(bonus)
	if !pools.AllPositive() {
		return cherr.Invariantf("every pool must end above zero, got %s", pools.String())
	}

	s.draft.BonusPools = bonus
	s.draft.BonusAllotment = allotment
	s.draft.Complete(character.StepStatAllocation)
	return nil
}

// ChooseAbilities completes the ability step with the type's tier 1
// picks
func (s *Session) ChooseAbilities(names []string) error {
	if err := s.atStep(character.StepAbilitySelect); err != nil {
		return err
	}

	t := s.catalog.Type(s.draft.TypeName)
	tier1 := t.TierOneAbilities()
	if tier1 == nil {
		if len(names) > 0 {
			return cherr.InvalidArgumentf("type %s offers no tier 1 ability choices", t.Name)
		}
		s.draft.ChosenAbilities = nil
		s.draft.Complete(character.StepAbilitySelect)
		return nil
	}

	if len(names) != tier1.Count {
		return cherr.InvalidArgumentf("type %s picks %d tier 1 abilities, got %d", t.Name, tier1.Count, len(names))
	}

	chosen := make([]string, 0, len(names))
	seen := make(map[string]bool)
	for _, name := range names {
		ability := findAbility(tier1.Abilities, name)
		if ability == nil {
			return cherr.NotFoundf("ability %q is not offered at tier 1 by %s", name, t.Name)
		}
		key := strings.ToLower(ability.Name)
		if seen[key] {
			return cherr.InvalidArgumentf("ability %q chosen more than once", ability.Name)
		}
		seen[key] = true
		chosen = append(chosen, ability.Name)
	}

	s.draft.ChosenAbilities = chosen
	s.draft.Complete(character.StepAbilitySelect)
	return nil
}

func findAbility(abilities []catalog.Ability, name string) *catalog.Ability {
	for i := range abilities {
		if strings.EqualFold(abilities[i].Name, name) {
			return &abilities[i]
		}
	}
	return nil
}

// CypherLimit returns how many cyphers the chosen type may carry
func (s *Session) CypherLimit() int {
	if t := s.catalog.Type(s.draft.TypeName); t != nil {
		return t.StartingTier.CypherLimit
	}
	return 0
}

// ChooseNumenera completes the cypher step. Each cypher's level is
// rolled from its formula at selection time; artifacts are optional,
// at most two.
func (s *Session) ChooseNumenera(cyphers, artifacts []string) error {
	if err := s.atStep(character.StepCypherSelect); err != nil {
		return err
	}

	if len(cyphers) == 0 {
		return cherr.InvalidArgument("at least one cypher is required")
	}
	if limit := s.CypherLimit(); len(cyphers) > limit {
		return cherr.Invariantf("carrying %d cyphers but the limit is %d", len(cyphers), limit)
	}
	if len(artifacts) > 2 {
		return cherr.InvalidArgumentf("at most two starting artifacts, got %d", len(artifacts))
	}

	resolvedCyphers := make([]character.CypherInstance, 0, len(cyphers))
	for _, name := range cyphers {
		c := s.catalog.Cypher(name)
		if c == nil {
			return cherr.NotFoundf("cypher %q is not in the catalog", name)
		}
		level, err := s.rollLevel(c.LevelFormula)
		if err != nil {
			return err
		}
		resolvedCyphers = append(resolvedCyphers, character.CypherInstance{
			Name:   c.Name,
			Level:  level,
			Type:   c.Type,
			Effect: c.Effect,
			Form:   c.Form,
		})
	}

	resolvedArtifacts := make([]character.ArtifactInstance, 0, len(artifacts))
	for _, name := range artifacts {
		a := s.catalog.Artifact(name)
		if a == nil {
			return cherr.NotFoundf("artifact %q is not in the catalog", name)
		}
		level, err := s.rollLevel(a.LevelFormula)
		if err != nil {
			return err
		}
		resolvedArtifacts = append(resolvedArtifacts, character.ArtifactInstance{
			Name:      a.Name,
			Level:     level,
			Depletion: a.Depletion,
			Effect:    a.Effect,
			Form:      a.Form,
		})
	}

	s.draft.Cyphers = resolvedCyphers
	if len(resolvedArtifacts) > 0 {
		s.draft.Artifacts = resolvedArtifacts
	} else {
		s.draft.Artifacts = nil
	}
	s.draft.Complete(character.StepCypherSelect)
	return nil
}

func (s *Session) rollLevel(formula string) (int, error) {
	f, err := dice.ParseFormula(formula)
	if err != nil {
		return 0, err
	}
	return f.Roll(s.roller)
}

// ChooseOddity completes the oddity step; every character carries
// exactly one
func (s *Session) ChooseOddity(name string) error {
	if err := s.atStep(character.StepOdditySelect); err != nil {
		return err
	}

	o := s.catalog.Oddity(name)
	if o == nil {
		return cherr.NotFoundf("oddity %q is not in the catalog", name)
	}

	s.draft.Oddity = &character.OddityInstance{
		Name:        o.Name,
		ValueShins:  o.ValueShins,
		Description: o.Description,
	}
	s.draft.Complete(character.StepOdditySelect)
	return nil
}

// StartingShins returns the shop budget for the chosen type and origin
func (s *Session) StartingShins() int {
	t := s.catalog.Type(s.draft.TypeName)
	if t == nil {
		return 0
	}
	var d *catalog.Descriptor
	if s.draft.Descriptor != "" {
		d = s.catalog.Descriptor(s.draft.Descriptor)
	}
	var sp *catalog.Species
	if s.draft.Species != "" {
		sp = s.catalog.SpeciesByName(s.draft.Species)
	}
	return catalog.StartingShins(t, d, sp)
}

// Ledger returns the shop ledger, creating it on first use
func (s *Session) Ledger() *character.Ledger {
	if s.draft.Ledger == nil {
		s.draft.Ledger = character.NewLedger(s.StartingShins())
	}
	return s.draft.Ledger
}

// Purchase buys one shop item against the budget
func (s *Session) Purchase(name string) error {
	if err := s.atStep(character.StepEquipmentShop); err != nil {
		return err
	}

	item := s.catalog.ShopItem(name)
	if item == nil {
		return cherr.NotFoundf("item %q is not in the shop", name)
	}

	return s.Ledger().Add(character.LineItem{
		Name:     item.Name,
		Category: item.Category,
		Cost:     item.Cost,
	})
}

// UndoPurchase removes the most recent purchase
func (s *Session) UndoPurchase() (character.LineItem, error) {
	if err := s.atStep(character.StepEquipmentShop); err != nil {
		return character.LineItem{}, err
	}
	return s.Ledger().RemoveLast()
}

// FinishShopping completes the shop step; leftover shins stay with the
// character
func (s *Session) FinishShopping() error {
	if err := s.atStep(character.StepEquipmentShop); err != nil {
		return err
	}

	s.Ledger() // an untouched shop still records its budget
	s.draft.Complete(character.StepEquipmentShop)
	return nil
}

// Back reopens a completed step, wiping every choice derived from it
func (s *Session) Back(step character.Step) error {
	if s.draft.Consumed() {
		return cherr.InvalidArgument("draft has already been finalized")
	}
	if step.Index() < 0 {
		return cherr.InvalidArgumentf("unknown step %q", step)
	}
	if !s.draft.IsComplete(step) {
		return cherr.InvalidArgumentf("step %s has not been completed", step)
	}

	s.draft.ClearFrom(step)
	return nil
}

// Validate checks the draft so far; mid-assembly only completed steps
// are judged
func (s *Session) Validate() *validation.Report {
	return validation.CheckDraft(s.draft, s.catalog, false)
}

// Finalize runs the full rule check and, if it passes, builds the
// immutable sheet. The draft is consumed: a session finalizes at most
// once.
func (s *Session) Finalize() (*character.Sheet, error) {
	if s.draft.Consumed() {
		return nil, cherr.InvalidArgument("draft has already been finalized")
	}
	if s.draft.Cursor != character.StepFinalize {
		return nil, cherr.InvalidArgumentf("session is at step %s, not %s", s.draft.Cursor, character.StepFinalize)
	}

	report := validation.CheckDraft(s.draft, s.catalog, true)
	if report.HasErrors() {
		step, _ := report.FirstErrorStep()
		messages := make([]string, 0, len(report.Errors()))
		for _, v := range report.Errors() {
			messages = append(messages, v.String())
		}
		return nil, cherr.Invariantf("character breaks %d rules", len(report.Errors())).
			WithMeta("step", string(step)).
			WithMeta("violations", messages)
	}

	sheet := s.buildSheet()
	s.draft.MarkConsumed()
	return sheet, nil
}

func (s *Session) buildSheet() *character.Sheet {
	t := s.catalog.Type(s.draft.TypeName)
	var d *catalog.Descriptor
	if s.draft.Descriptor != "" {
		d = s.catalog.Descriptor(s.draft.Descriptor)
	}
	var sp *catalog.Species
	if s.draft.Species != "" {
		sp = s.catalog.SpeciesByName(s.draft.Species)
	}
	f := s.catalog.Focus(s.draft.FocusName)

	pools := s.BasePools()
	pools.Add(s.draft.BonusPools)

	granted := buildGrantedEquipment(t, d, sp, f)

	sheet := &character.Sheet{
		ID:          s.idGen.New(),
		Name:        s.draft.Name,
		Gender:      s.draft.Gender,
		Tier:        1,
		TypeName:    t.Name,
		Descriptor:  s.draft.Descriptor,
		Species:     s.draft.Species,
		FocusName:   f.Name,
		Pools:       character.NewPoolPair(pools),
		Edge:        character.Edge{Might: t.Edge.Might, Speed: t.Edge.Speed, Intellect: t.Edge.Intellect},
		Effort:      t.StartingTier.Effort,
		ArmorRating: s.armorRating(granted),
		DamageTrack: character.DetermineDamageTrack(pools),
		Skills:      buildSkills(t, d, sp),
		CypherLimit: t.StartingTier.CypherLimit,
		Cyphers:     s.draft.Cyphers,
		Artifacts:   s.draft.Artifacts,
		Oddity:      *s.draft.Oddity,
		Granted:     granted,
		Purchases:   s.draft.Ledger.Purchases(),
		Shins:       s.draft.Ledger.Remaining(),
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	}

	sheet.SpecialAbilities = buildAbilities(s.draft.ChosenAbilities, t, d, sp, f)

	if f != nil {
		sheet.Background.Connections = f.Connections
	}
	if d != nil {
		sheet.Background.Origin = d.Tagline
	} else if sp != nil {
		sheet.Background.Origin = sp.Tagline
	}

	sheet.Normalize()
	return sheet
}

// armorRating is the bonus of the best armor the character owns, worn
// or bought, plus any shield bonus
func (s *Session) armorRating(granted character.GrantedEquipment) int {
	best := 0
	for _, name := range granted.Armor {
		if a := s.catalog.ArmorItem(name); a != nil && a.ArmorBonus > best {
			best = a.ArmorBonus
		}
	}

	shield := 0
	for _, item := range s.draft.Ledger.Purchases() {
		switch item.Category {
		case catalog.CategoryArmor:
			if a := s.catalog.ArmorItem(item.Name); a != nil && a.ArmorBonus > best {
				best = a.ArmorBonus
			}
		case catalog.CategoryShields:
			for i := range s.catalog.Equipment.Shields {
				sh := &s.catalog.Equipment.Shields[i]
				if strings.EqualFold(sh.Name, item.Name) && sh.ArmorBonus > shield {
					shield = sh.ArmorBonus
				}
			}
		}
	}

	return best + shield
}

func buildGrantedEquipment(t *catalog.CharacterType, d *catalog.Descriptor, sp *catalog.Species, f *catalog.Focus) character.GrantedEquipment {
	granted := character.GrantedEquipment{
		Weapons:      append([]string(nil), t.Equipment.Weapons...),
		ExplorerPack: t.Equipment.ExplorerPack,
		Other:        append([]string(nil), t.Equipment.Other...),
	}
	if t.Equipment.Armor != "" {
		granted.Armor = append(granted.Armor, t.Equipment.Armor)
	}

	if d != nil {
		granted.Weapons = append(granted.Weapons, d.Equipment.Weapons...)
		granted.Armor = append(granted.Armor, d.Equipment.Armor...)
		granted.Other = append(granted.Other, d.Equipment.Other...)
	}
	if sp != nil {
		granted.Other = append(granted.Other, sp.Equipment.Items...)
	}
	if f != nil {
		granted.Other = append(granted.Other, f.Equipment...)
	}

	return granted
}

// buildSkills merges skills from type, origin and species, removing
// case-insensitive duplicates while keeping first-seen order
func buildSkills(t *catalog.CharacterType, d *catalog.Descriptor, sp *catalog.Species) character.Skills {
	sets := []catalog.SkillSet{t.Skills}
	if d != nil {
		sets = append(sets, d.Skills)
	}
	if sp != nil {
		sets = append(sets, sp.Skills)
	}

	var skills character.Skills
	for _, set := range sets {
		skills.Trained = appendUnique(skills.Trained, set.Trained)
		skills.Specialized = appendUnique(skills.Specialized, set.Specialized)
		skills.Inabilities = appendUnique(skills.Inabilities, set.Inabilities)
	}
	return skills
}

func appendUnique(dst, src []string) []string {
	for _, s := range src {
		dup := false
		for _, existing := range dst {
			if strings.EqualFold(existing, s) {
				dup = true
				break
			}
		}
		if !dup {
			dst = append(dst, s)
		}
	}
	return dst
}

func buildAbilities(chosen []string, t *catalog.CharacterType, d *catalog.Descriptor, sp *catalog.Species, f *catalog.Focus) []character.SpecialAbility {
	var abilities []character.SpecialAbility

	if tier1 := t.TierOneAbilities(); tier1 != nil {
		for _, name := range chosen {
			if a := findAbility(tier1.Abilities, name); a != nil {
				abilities = append(abilities, character.SpecialAbility{
					Name:        a.Name,
					Cost:        a.Cost,
					Source:      t.Name,
					Description: a.Description,
				})
			}
		}
	}

	if d != nil {
		for _, a := range d.SpecialAbilities {
			abilities = append(abilities, character.SpecialAbility{
				Name:        a.Name,
				Source:      d.Name,
				Description: a.Description,
			})
		}
	}
	if sp != nil {
		for _, a := range sp.Abilities {
			abilities = append(abilities, character.SpecialAbility{
				Name:        a.Name,
				Cost:        a.Cost,
				Source:      sp.Name,
				Description: a.Description,
			})
		}
	}
	if f != nil && f.Tier1Ability.Name != "" {
		abilities = append(abilities, character.SpecialAbility{
			Name:        f.Tier1Ability.Name,
			Cost:        f.Tier1Ability.Cost,
			Source:      f.Name,
			Description: f.Tier1Ability.Description,
		})
	}

	return abilities
}
