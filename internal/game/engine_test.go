package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/ba-career-quest/internal/catalog"
	"github.com/user/ba-career-quest/internal/types"
)

func testCatalog() *catalog.Catalog {
	skills := []types.Skill{
		{ID: "requirements", Name: "Requirements Gathering", Level: 1, MaxLevel: 10},
		{ID: "analysis", Name: "Data Analysis", Level: 1, MaxLevel: 10},
	}
	tools := []types.Tool{
		{ID: "whiteboard", Name: "Whiteboard", LevelRequired: 1},
		{ID: "sql-console", Name: "SQL Console", LevelRequired: 3},
	}

	return &catalog.Catalog{
		Characters: []types.Character{
			{ID: "tester", Name: "Test Analyst", Sprite: "T", Level: 1, Skills: skills, Tools: tools},
		},
		Scenarios: []types.Scenario{
			{
				ID:    "intro",
				Title: "Intro",
				Level: 1,
				Choices: []types.ScenarioChoice{
					{
						ID:   "big",
						Text: "Big win",
						Outcomes: types.ChoiceOutcome{
							Experience: 30,
							SkillIncrease: []types.SkillIncrease{
								{SkillID: "requirements", Amount: 3},
								{SkillID: "analysis", Amount: 1},
							},
							ResultText: "Great",
						},
					},
					{
						ID:   "gated",
						Text: "Needs analysis 5",
						SkillRequirements: []types.SkillRequirement{
							{SkillID: "analysis", MinLevel: 5},
						},
						Outcomes: types.ChoiceOutcome{Experience: 10, ResultText: "Gated"},
					},
				},
				ToolReward: "whiteboard",
			},
			{ID: "second", Title: "Second", Level: 1},
			{ID: "senior", Title: "Senior", Level: 2},
		},
		SkillCategories: []types.SkillCategory{
			{ID: "core", Name: "Core", Skills: []string{"requirements", "analysis"}},
		},
	}
}

// inScenario returns a strict engine and a state in the scenario stage of
// the intro scenario with the character at the given experience
func inScenario(t *testing.T, experience int) (*Engine, types.GameState) {
	cat := testCatalog()
	engine := NewEngine(cat.SkillCategories, nil)

	character := cat.Characters[0]
	character.Experience = experience

	state := engine.InitialState()
	state = engine.Apply(state, StartGame{})
	state = engine.Apply(state, SelectCharacter{Character: character})
	state = engine.Apply(state, StartScenario{Scenario: cat.Scenarios[0]})
	require.Equal(t, types.StageScenario, state.Stage())
	return engine, state
}

func assertLevelInvariant(t *testing.T, state types.GameState) {
	t.Helper()
	if state.Character == nil {
		return
	}
	assert.Equal(t, state.Character.Experience/100+1, state.Character.Level)
	for _, skill := range state.Character.Skills {
		assert.GreaterOrEqual(t, skill.Level, 0)
		assert.LessOrEqual(t, skill.Level, skill.MaxLevel)
	}
}

func TestInitialState(t *testing.T) {
	cat := testCatalog()
	state := NewEngine(cat.SkillCategories, nil).InitialState()

	assert.Equal(t, types.StageStart, state.Stage())
	assert.Nil(t, state.Character)
	assert.Nil(t, state.CurrentScenario())
	assert.Nil(t, state.ChoiceResult())
	assert.Empty(t, state.CompletedScenarios)
	assert.Equal(t, cat.SkillCategories, state.SkillCategories)
}

func TestHappyPath(t *testing.T) {
	cat := testCatalog()
	engine := NewEngine(cat.SkillCategories, nil)

	state := engine.Apply(engine.InitialState(), StartGame{})
	assert.Equal(t, types.StageCharacter, state.Stage())

	state = engine.Apply(state, SelectCharacter{Character: cat.Characters[0]})
	assert.Equal(t, types.StageMap, state.Stage())
	require.NotNil(t, state.Character)
	assert.Equal(t, "tester", state.Character.ID)

	state = engine.Apply(state, StartScenario{Scenario: cat.Scenarios[0]})
	assert.Equal(t, types.StageScenario, state.Stage())
	assert.Equal(t, "intro", state.CurrentScenario().ID)
	assert.Nil(t, state.ChoiceResult())

	state = engine.Apply(state, MakeChoice{Choice: cat.Scenarios[0].Choices[0]})
	assert.Equal(t, types.StageResult, state.Stage())
	require.NotNil(t, state.ChoiceResult())
	assert.Equal(t, "Great", state.ChoiceResult().Text)
	assert.Equal(t, []string{"intro"}, state.CompletedScenarios)
	assertLevelInvariant(t, state)

	state = engine.Apply(state, ContinueToMap{})
	assert.Equal(t, types.StageMap, state.Stage())
	assert.Nil(t, state.CurrentScenario())

	state = engine.Apply(state, OpenSkillTree{})
	assert.Equal(t, types.StageSkillTree, state.Stage())

	state = engine.Apply(state, ReturnToMap{})
	assert.Equal(t, types.StageMap, state.Stage())

	state = engine.Apply(state, OpenJournal{})
	assert.Equal(t, types.StageJournal, state.Stage())

	state = engine.Apply(state, ReturnToMap{})
	assert.Equal(t, types.StageMap, state.Stage())
}

func TestSelectCharacterCopiesTemplate(t *testing.T) {
	cat := testCatalog()
	engine := NewEngine(cat.SkillCategories, nil)
	template := cat.Characters[0]
	template.Experience = 250
	template.Level = 1

	state := engine.Apply(engine.Apply(engine.InitialState(), StartGame{}), SelectCharacter{Character: template})
	require.NotNil(t, state.Character)

	// Level is rebuilt from experience
	assert.Equal(t, 3, state.Character.Level)

	state.Character.Skills[0].Level = 7
	assert.Equal(t, 1, template.Skills[0].Level)
	assert.Equal(t, 1, cat.Characters[0].Skills[0].Level)
}

func TestMakeChoiceLevelUp(t *testing.T) {
	// 90 + 30 crosses into level 2
	engine, state := inScenario(t, 90)
	choice := state.CurrentScenario().Choices[0]

	next := engine.Apply(state, MakeChoice{Choice: choice})

	require.NotNil(t, next.Character)
	assert.Equal(t, 120, next.Character.Experience)
	assert.Equal(t, 2, next.Character.Level)
	assert.Equal(t, 2, next.Character.SkillPoints)

	result := next.ChoiceResult()
	require.NotNil(t, result)
	assert.Equal(t, 30, result.Experience)
	assert.True(t, result.LeveledUp)
	assert.Equal(t, 2, result.NewLevel)
	assert.Equal(t, 2, result.SkillPointsAwarded)
	assertLevelInvariant(t, next)
}

func TestMakeChoiceWithinBandGrantsNoPoints(t *testing.T) {
	engine, state := inScenario(t, 10)

	next := engine.Apply(state, MakeChoice{Choice: state.CurrentScenario().Choices[0]})

	assert.Equal(t, 40, next.Character.Experience)
	assert.Equal(t, 1, next.Character.Level)
	assert.Equal(t, 0, next.Character.SkillPoints)
	assert.False(t, next.ChoiceResult().LeveledUp)
}

func TestMakeChoiceCrossingSeveralBandsGrantsFixedBonus(t *testing.T) {
	_, state := inScenario(t, 0)
	choice := types.ScenarioChoice{
		ID:       "windfall",
		Outcomes: types.ChoiceOutcome{Experience: 350, ResultText: "Promoted"},
	}

	next := NewEngine(nil, PermissiveGuard{}).Apply(state, MakeChoice{Choice: choice})

	assert.Equal(t, 4, next.Character.Level)
	assert.Equal(t, LevelUpSkillPoints, next.Character.SkillPoints)
}

func TestMakeChoiceBaselineIsExperienceNotStoredLevel(t *testing.T) {
	engine, state := inScenario(t, 90)
	// A stale stored level must not suppress the level-up
	state.Character.Level = 5

	next := engine.Apply(state, MakeChoice{Choice: state.CurrentScenario().Choices[0]})

	assert.Equal(t, 2, next.Character.Level)
	assert.Equal(t, 2, next.Character.SkillPoints)
}

func TestMakeChoiceClampsSkillButReportsRequestedAmount(t *testing.T) {
	engine, state := inScenario(t, 0)
	skill, _ := state.Character.Skill("requirements")
	skill.Level = 9

	next := engine.Apply(state, MakeChoice{Choice: state.CurrentScenario().Choices[0]})

	clamped, _ := next.Character.Skill("requirements")
	assert.Equal(t, 10, clamped.Level)

	result := next.ChoiceResult()
	require.Len(t, result.SkillsIncreased, 2)
	assert.Equal(t, types.SkillGain{SkillID: "requirements", Name: "Requirements Gathering", Amount: 3}, result.SkillsIncreased[0])
	assert.Equal(t, types.SkillGain{SkillID: "analysis", Name: "Data Analysis", Amount: 1}, result.SkillsIncreased[1])

	// The input state is untouched
	original, _ := state.Character.Skill("requirements")
	assert.Equal(t, 9, original.Level)
	assert.Equal(t, 0, state.Character.Experience)
}

func TestMakeChoiceSkipsUnknownSkills(t *testing.T) {
	engine, state := inScenario(t, 0)
	choice := types.ScenarioChoice{
		ID: "odd",
		Outcomes: types.ChoiceOutcome{
			Experience:    5,
			SkillIncrease: []types.SkillIncrease{{SkillID: "juggling", Amount: 2}},
			ResultText:    "Odd",
		},
	}

	next := NewEngine(nil, PermissiveGuard{}).Apply(state, MakeChoice{Choice: choice})
	assert.Equal(t, types.StageResult, next.Stage())
	assert.Empty(t, next.ChoiceResult().SkillsIncreased)
	assert.Equal(t, state.Character.Skills, next.Character.Skills)

	// The strict guard only accepts choices of the current scenario
	assert.Equal(t, state, engine.Apply(state, MakeChoice{Choice: choice}))
}

func TestCompletedScenariosAllowDuplicates(t *testing.T) {
	engine, state := inScenario(t, 0)
	choice := state.CurrentScenario().Choices[0]
	scenario := *state.CurrentScenario()

	state = engine.Apply(state, MakeChoice{Choice: choice})
	state = engine.Apply(state, ContinueToMap{})
	state = engine.Apply(state, StartScenario{Scenario: scenario})
	before := len(state.CompletedScenarios)
	state = engine.Apply(state, MakeChoice{Choice: choice})

	assert.Len(t, state.CompletedScenarios, before+1)
	assert.Equal(t, []string{"intro", "intro"}, state.CompletedScenarios)
}

func TestStartScenarioClearsChoiceResult(t *testing.T) {
	engine, state := inScenario(t, 0)
	cat := testCatalog()

	state = engine.Apply(state, MakeChoice{Choice: state.CurrentScenario().Choices[0]})
	require.NotNil(t, state.ChoiceResult())
	state = engine.Apply(state, ContinueToMap{})
	state = engine.Apply(state, StartScenario{Scenario: cat.Scenarios[1]})

	assert.Equal(t, "second", state.CurrentScenario().ID)
	assert.Nil(t, state.ChoiceResult())
}

func TestAllocateSkillPoint(t *testing.T) {
	engine, state := inScenario(t, 0)
	state = engine.Apply(state, ContinueToMap{})
	state.Character.SkillPoints = 2

	next := engine.Apply(state, AllocateSkillPoint{SkillID: "analysis"})
	skill, _ := next.Character.Skill("analysis")
	assert.Equal(t, 2, skill.Level)
	assert.Equal(t, 1, next.Character.SkillPoints)
	assert.Equal(t, state.Stage(), next.Stage())
}

func TestAllocateSkillPointNoOps(t *testing.T) {
	engine, state := inScenario(t, 0)
	state = engine.Apply(state, ContinueToMap{})

	// No points
	assert.Equal(t, state, engine.Apply(state, AllocateSkillPoint{SkillID: "analysis"}))

	// Unknown skill
	state.Character.SkillPoints = 1
	assert.Equal(t, state, engine.Apply(state, AllocateSkillPoint{SkillID: "juggling"}))

	// Skill at max
	skill, _ := state.Character.Skill("analysis")
	skill.Level = skill.MaxLevel
	assert.Equal(t, state, engine.Apply(state, AllocateSkillPoint{SkillID: "analysis"}))

	// No character
	fresh := engine.InitialState()
	assert.Equal(t, fresh, engine.Apply(fresh, AllocateSkillPoint{SkillID: "analysis"}))
}

func TestUnlockTool(t *testing.T) {
	engine, state := inScenario(t, 150)
	state = engine.Apply(state, ContinueToMap{})
	require.Equal(t, 2, state.Character.Level)

	next := engine.Apply(state, UnlockTool{ToolID: "whiteboard"})
	tool, _ := next.Character.Tool("whiteboard")
	assert.True(t, tool.Unlocked)

	// Already unlocked
	assert.Equal(t, next, engine.Apply(next, UnlockTool{ToolID: "whiteboard"}))

	// Level 3 required while level 2
	locked := engine.Apply(next, UnlockTool{ToolID: "sql-console"})
	sql, _ := locked.Character.Tool("sql-console")
	assert.False(t, sql.Unlocked)

	// Unknown tool
	assert.Equal(t, next, engine.Apply(next, UnlockTool{ToolID: "time-machine"}))
}

func TestResetGame(t *testing.T) {
	engine, state := inScenario(t, 90)
	state = engine.Apply(state, MakeChoice{Choice: state.CurrentScenario().Choices[0]})

	reset := engine.Apply(state, ResetGame{})
	assert.Equal(t, engine.InitialState(), reset)

	// From the initial state too
	assert.Equal(t, engine.InitialState(), engine.Apply(engine.InitialState(), ResetGame{}))
}

func TestApplyNilActionIsNoOp(t *testing.T) {
	_, state := inScenario(t, 0)
	for _, engine := range []*Engine{NewEngine(nil, StrictGuard{}), NewEngine(nil, PermissiveGuard{})} {
		assert.Equal(t, state, engine.Apply(state, nil))
	}
}

func TestLevelInvariantOverLongRun(t *testing.T) {
	engine, state := inScenario(t, 0)
	cat := testCatalog()
	choice := state.CurrentScenario().Choices[0]

	for i := 0; i < 25; i++ {
		state = engine.Apply(state, MakeChoice{Choice: choice})
		assertLevelInvariant(t, state)
		state = engine.Apply(state, ContinueToMap{})
		state = engine.Apply(state, AllocateSkillPoint{SkillID: "analysis"})
		assertLevelInvariant(t, state)
		state = engine.Apply(state, StartScenario{Scenario: cat.Scenarios[0]})
	}

	assert.Equal(t, 25*30, state.Character.Experience)
	assert.Len(t, state.CompletedScenarios, 25)
}

func TestMakeChoiceRepeatedSkillIsCumulative(t *testing.T) {
	_, state := inScenario(t, 0)
	choice := types.ScenarioChoice{
		ID: "twice",
		Outcomes: types.ChoiceOutcome{
			SkillIncrease: []types.SkillIncrease{
				{SkillID: "analysis", Amount: 2},
				{SkillID: "analysis", Amount: 3},
			},
		},
	}

	next := NewEngine(nil, PermissiveGuard{}).Apply(state, MakeChoice{Choice: choice})
	skill, ok := next.Character.Skill("analysis")
	require.True(t, ok)
	assert.Equal(t, 6, skill.Level)
	assert.Len(t, next.ChoiceResult().SkillsIncreased, 2)
}

func TestNegativeExperienceNeverLowersExperience(t *testing.T) {
	_, state := inScenario(t, 150)
	choice := types.ScenarioChoice{
		ID:       "penalty",
		Outcomes: types.ChoiceOutcome{Experience: -80},
	}

	next := NewEngine(nil, PermissiveGuard{}).Apply(state, MakeChoice{Choice: choice})
	assert.Equal(t, 150, next.Character.Experience)
	assert.Equal(t, 0, next.ChoiceResult().Experience)
	assertLevelInvariant(t, next)

	template := testCatalog().Characters[0]
	template.Experience = -20
	template.Skills[0].Level = 42
	engine := NewEngine(nil, nil)
	selected := engine.Apply(engine.Apply(engine.InitialState(), StartGame{}), SelectCharacter{Character: template})
	assert.Equal(t, 0, selected.Character.Experience)
	assert.Equal(t, 1, selected.Character.Level)
	assert.Equal(t, 10, selected.Character.Skills[0].Level)
}
