package assembly

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/ninthworld/chargen/internal/dice"
	mockdice "github.com/ninthworld/chargen/internal/dice/mock"
	"github.com/ninthworld/chargen/internal/domain/character"
	cherr "github.com/ninthworld/chargen/internal/errors"
	"github.com/ninthworld/chargen/internal/testutils"
	"github.com/ninthworld/chargen/internal/uuid"
)

type SessionTestSuite struct {
	suite.Suite
	roller  *dice.MockRoller
	session *Session
}

func (s *SessionTestSuite) SetupTest() {
	s.roller = dice.NewMockRoller()

	session, err := NewSession(&SessionConfig{
		Catalog:     testutils.CreateTestCatalog(),
		Roller:      s.roller,
		IDGenerator: uuid.NewGoogleUUIDGenerator(),
	})
	s.Require().NoError(err)
	s.session = session
}

// advanceToStats walks the session through the choices up to stat
// allocation
func (s *SessionTestSuite) advanceToStats() {
	s.Require().NoError(s.session.SetName("Talia"))
	s.Require().NoError(s.session.SetGender(character.GenderFemale))
	s.Require().NoError(s.session.SetType("Glaive"))
	s.Require().NoError(s.session.SetDescriptor("Strong"))
	s.Require().NoError(s.session.SetFocus("Masters Weaponry"))
}

func (s *SessionTestSuite) advanceToFinalize() {
	s.advanceToStats()
	s.Require().NoError(s.session.AllocateStats(character.Pools{Might: 3, Speed: 2, Intellect: 1}))
	s.Require().NoError(s.session.ChooseAbilities([]string{"Bash", "Pierce"}))

	s.roller.SetRolls([]int{4, 3})
	s.Require().NoError(s.session.ChooseNumenera([]string{"Stim", "Detonation"}, nil))
	s.Require().NoError(s.session.ChooseOddity("Singing Cube"))
	s.Require().NoError(s.session.FinishShopping())
}

func (s *SessionTestSuite) TestStepsCompleteInOrder() {
	s.Equal(character.StepNameEntry, s.session.Cursor())

	err := s.session.SetType("Glaive")
	s.Require().Error(err)
	s.Equal(cherr.CodeInvalidArgument, cherr.GetCode(err))

	s.Require().NoError(s.session.SetName("Talia"))
	s.Equal(character.StepGenderSelect, s.session.Cursor())
}

func (s *SessionTestSuite) TestNameCannotBeBlank() {
	err := s.session.SetName("   ")
	s.Require().Error(err)
}

func (s *SessionTestSuite) TestUnknownChoicesAreRejected() {
	s.Require().NoError(s.session.SetName("Talia"))
	s.Require().NoError(s.session.SetGender(character.GenderOther))

	err := s.session.SetType("Arkus")
	s.Require().Error(err)
	s.True(cherr.IsNotFound(err))

	s.Require().NoError(s.session.SetType("Nano"))

	err = s.session.SetDescriptor("Lucky")
	s.True(cherr.IsNotFound(err))
}

func (s *SessionTestSuite) TestFocusMustSuitType() {
	s.Require().NoError(s.session.SetName("Vex"))
	s.Require().NoError(s.session.SetGender(character.GenderMale))
	s.Require().NoError(s.session.SetType("Nano"))
	s.Require().NoError(s.session.SetDescriptor("Clever"))

	err := s.session.SetFocus("Masters Weaponry")
	s.Require().Error(err)
	s.Equal(cherr.CodeInvalidArgument, cherr.GetCode(err))

	s.Require().NoError(s.session.SetFocus("Talks to Machines"))
}

func (s *SessionTestSuite) TestAllocateStatsExactSpend() {
	s.advanceToStats()
	s.Equal(6, s.session.BonusAllotment())

	err := s.session.AllocateStats(character.Pools{Might: 3})
	s.Require().Error(err)
	s.True(cherr.IsInvariant(err))

	err = s.session.AllocateStats(character.Pools{Might: 4, Speed: 4})
	s.True(cherr.IsInvariant(err))

	s.Require().NoError(s.session.AllocateStats(character.Pools{Might: 6}))
}

func (s *SessionTestSuite) TestSpeciesOverridesBonusAllotment() {
	s.Require().NoError(s.session.SetName("Vex"))
	s.Require().NoError(s.session.SetGender(character.GenderOther))
	s.Require().NoError(s.session.SetType("Nano"))
	s.Require().NoError(s.session.SetSpecies("Varjellen"))

	s.Equal(8, s.session.BonusAllotment())
	// Nano 7/9/12 with Varjellen -2 Might, +2 Intellect
	s.Equal(character.Pools{Might: 5, Speed: 9, Intellect: 14}, s.session.BasePools())
}

func (s *SessionTestSuite) TestCypherLevelsRolledFromFormula() {
	s.advanceToStats()
	s.Require().NoError(s.session.AllocateStats(character.Pools{Might: 6}))
	s.Require().NoError(s.session.ChooseAbilities([]string{"Bash", "Thrust"}))

	// Stim is 1d6+2, Detonation is 1d6+1
	s.roller.SetRolls([]int{4, 6})
	s.Require().NoError(s.session.ChooseNumenera([]string{"Stim", "Detonation"}, nil))

	cyphers := s.session.Draft().Cyphers
	s.Require().Len(cyphers, 2)
	s.Equal(6, cyphers[0].Level)
	s.Equal(7, cyphers[1].Level)
}

func (s *SessionTestSuite) TestCypherLimitEnforced() {
	s.advanceToStats()
	s.Require().NoError(s.session.AllocateStats(character.Pools{Might: 6}))
	s.Require().NoError(s.session.ChooseAbilities([]string{"Bash", "Pierce"}))

	err := s.session.ChooseNumenera([]string{"Stim", "Detonation", "Phase Changer"}, nil)
	s.Require().Error(err)
	s.True(cherr.IsInvariant(err))
}

func (s *SessionTestSuite) TestShoppingAgainstBudget() {
	s.advanceToStats()
	s.Require().NoError(s.session.AllocateStats(character.Pools{Might: 6}))
	s.Require().NoError(s.session.ChooseAbilities([]string{"Bash", "Pierce"}))
	s.roller.SetRolls([]int{4})
	s.Require().NoError(s.session.ChooseNumenera([]string{"Stim"}, nil))
	s.Require().NoError(s.session.ChooseOddity("Glass Flower"))

	// Glaive 5 + Strong 10
	s.Equal(15, s.session.StartingShins())

	s.Require().NoError(s.session.Purchase("Broadsword")) // 10
	err := s.session.Purchase("Brigandine")               // 8
	s.Require().Error(err)
	s.True(cherr.IsOverBudget(err))

	removed, err := s.session.UndoPurchase()
	s.Require().NoError(err)
	s.Equal("Broadsword", removed.Name)

	s.Require().NoError(s.session.Purchase("Brigandine"))
	s.Require().NoError(s.session.FinishShopping())
	s.Equal(character.StepFinalize, s.session.Cursor())
}

func (s *SessionTestSuite) TestBackInvalidatesDependents() {
	s.advanceToFinalize()

	s.Require().NoError(s.session.Back(character.StepTypeSelect))

	draft := s.session.Draft()
	s.Equal(character.StepTypeSelect, s.session.Cursor())
	s.Empty(draft.TypeName)
	s.Empty(draft.FocusName)
	s.Empty(draft.Cyphers)
	s.Nil(draft.Ledger)

	// untouched by the type dependency chain
	s.Equal("Talia", draft.Name)
	s.Equal("Strong", draft.Descriptor)
	s.NotNil(draft.Oddity)
}

func (s *SessionTestSuite) TestBackToIncompleteStepFails() {
	err := s.session.Back(character.StepTypeSelect)
	s.Require().Error(err)
}

func (s *SessionTestSuite) TestFinalizeBuildsSheet() {
	s.advanceToFinalize()

	sheet, err := s.session.Finalize()
	s.Require().NoError(err)

	s.NotEmpty(sheet.ID)
	s.Equal("Talia", sheet.Name)
	s.Equal(1, sheet.Tier)
	// Glaive 11/10/7, Strong +4 Might, bonus 3/2/1
	s.Equal(character.Pools{Might: 18, Speed: 12, Intellect: 8}, sheet.Pools.Maximum)
	s.Equal(sheet.Pools.Maximum, sheet.Pools.Current)
	s.Equal(character.Edge{Might: 1}, sheet.Edge)
	s.Equal(1, sheet.Effort)
	s.Equal(2, sheet.CypherLimit)
	s.Equal(character.DamageTrackHale, sheet.DamageTrack)
	s.Equal("I am a Strong Glaive who Masters Weaponry", sheet.Sentence())
	s.Equal(15, sheet.Shins)

	// nothing was bought, so the purchase list is absent, not empty
	s.Nil(sheet.Purchases)

	// Brigandine granted by the type
	s.Equal(2, sheet.ArmorRating)

	// skills merged without duplicates
	s.Contains(sheet.Skills.Trained, "Might defense")
	s.Contains(sheet.Skills.Trained, "Jumping")

	// Weapon Master comes from the focus
	names := make([]string, 0, len(sheet.SpecialAbilities))
	for _, a := range sheet.SpecialAbilities {
		names = append(names, a.Name)
	}
	s.Equal([]string{"Bash", "Pierce", "Weapon Master"}, names)
}

func (s *SessionTestSuite) TestFinalizeConsumesDraft() {
	s.advanceToFinalize()

	_, err := s.session.Finalize()
	s.Require().NoError(err)

	_, err = s.session.Finalize()
	s.Require().Error(err)

	err = s.session.Back(character.StepNameEntry)
	s.Require().Error(err)
}

func (s *SessionTestSuite) TestFinalizeRequiresShoppingDone() {
	s.advanceToStats()

	_, err := s.session.Finalize()
	s.Require().Error(err)
	s.Equal(cherr.CodeInvalidArgument, cherr.GetCode(err))
}

func (s *SessionTestSuite) TestFinalizeAfterBackReportsInvariants() {
	s.advanceToFinalize()
	s.Require().NoError(s.session.Back(character.StepOriginSelect))
	s.Require().NoError(s.session.SetSpecies("Varjellen"))

	// stat allocation and shop were wiped by the origin change
	s.Equal(character.StepStatAllocation, s.session.Cursor())

	report := s.session.Validate()
	s.False(report.HasErrors(), "mid-assembly validation judges only completed steps")
}

func TestSessionTestSuite(t *testing.T) {
	suite.Run(t, new(SessionTestSuite))
}

// sessionAtCypherStep walks a fresh session up to cypher selection
func sessionAtCypherStep(t *testing.T, roller dice.Roller) *Session {
	t.Helper()

	session, err := NewSession(&SessionConfig{
		Catalog:     testutils.CreateTestCatalog(),
		Roller:      roller,
		IDGenerator: uuid.NewGoogleUUIDGenerator(),
	})
	require.NoError(t, err)

	require.NoError(t, session.SetName("Talia"))
	require.NoError(t, session.SetGender(character.GenderFemale))
	require.NoError(t, session.SetType("Glaive"))
	require.NoError(t, session.SetDescriptor("Strong"))
	require.NoError(t, session.SetFocus("Masters Weaponry"))
	require.NoError(t, session.AllocateStats(character.Pools{Might: 6}))
	require.NoError(t, session.ChooseAbilities([]string{"Bash", "Pierce"}))
	return session
}

func TestChooseNumenera_DelegatesToRoller(t *testing.T) {
	ctrl := gomock.NewController(t)
	roller := mockdice.NewMockRoller(ctrl)
	session := sessionAtCypherStep(t, roller)

	// Stim is 1d6+2
	roller.EXPECT().Roll(1, 6, 2).Return(&dice.RollResult{Total: 5}, nil)

	require.NoError(t, session.ChooseNumenera([]string{"Stim"}, nil))
	require.Equal(t, 5, session.Draft().Cyphers[0].Level)
}

func TestChooseNumenera_RollerFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	roller := mockdice.NewMockRoller(ctrl)
	session := sessionAtCypherStep(t, roller)

	roller.EXPECT().Roll(1, 6, 2).Return(nil, cherr.Internalf("roller unavailable"))

	err := session.ChooseNumenera([]string{"Stim"}, nil)
	require.Error(t, err)
	require.Empty(t, session.Draft().Cyphers)
}
