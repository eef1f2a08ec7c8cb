package game

import "github.com/user/ba-career-quest/internal/types"

// Engine is the progression state machine. It holds no game state of its
// own; Apply is a pure function of its inputs.
type Engine struct {
	skillCategories []types.SkillCategory
	guard           Guard
}

// NewEngine creates an engine whose initial state carries the given skill
// categories. A nil guard means StrictGuard.
func NewEngine(skillCategories []types.SkillCategory, guard Guard) *Engine {
	if guard == nil {
		guard = StrictGuard{}
	}
	return &Engine{
		skillCategories: skillCategories,
		guard:           guard,
	}
}

// InitialState returns the fixed state a new or reset game starts from
func (e *Engine) InitialState() types.GameState {
	return types.NewGameState(e.skillCategories)
}

// Apply returns the state after action. Rejected or malformed actions return
// state unchanged. The input state is never modified.
func (e *Engine) Apply(state types.GameState, action Action) types.GameState {
	next, _ := e.transition(state, action)
	return next
}

// transition applies action and reports whether it took effect
func (e *Engine) transition(state types.GameState, action Action) (types.GameState, bool) {
	if !e.guard.Allow(state, action) {
		return state, false
	}

	switch a := action.(type) {
	case StartGame:
		return withPhase(state, types.CharacterSelectPhase{}), true

	case SelectCharacter:
		next := withPhase(state, types.MapPhase{})
		next.Character = newCareer(a.Character)
		return next, true

	case StartScenario:
		if state.Character == nil {
			return state, false
		}
		return withPhase(state, types.ScenarioPhase{Scenario: a.Scenario}), true

	case MakeChoice:
		return resolveChoice(state, a.Choice)

	case ContinueToMap, ReturnToMap:
		return withPhase(state, types.MapPhase{}), true

	case OpenSkillTree:
		if state.Character == nil {
			return state, false
		}
		return withPhase(state, types.SkillTreePhase{}), true

	case OpenJournal:
		if state.Character == nil {
			return state, false
		}
		return withPhase(state, types.JournalPhase{}), true

	case AllocateSkillPoint:
		return allocateSkillPoint(state, a.SkillID)

	case UnlockTool:
		return unlockTool(state, a.ToolID)

	case ResetGame:
		return e.InitialState(), true
	}

	return state, false
}

func withPhase(state types.GameState, phase types.Phase) types.GameState {
	next := state.Clone()
	next.Phase = phase
	return next
}

// newCareer copies a character template and restores its invariants
func newCareer(template types.Character) *types.Character {
	character := template.Clone()
	character.Experience = max(character.Experience, 0)
	character.SkillPoints = max(character.SkillPoints, 0)
	character.Level = LevelForExperience(character.Experience)
	for i := range character.Skills {
		skill := &character.Skills[i]
		skill.Level = clampSkillLevel(skill.Level, skill.MaxLevel)
	}
	return character
}

func resolveChoice(state types.GameState, choice types.ScenarioChoice) (types.GameState, bool) {
	scenario := state.CurrentScenario()
	if state.Character == nil || scenario == nil {
		return state, false
	}

	// A choice of the current scenario resolves with the scenario's own outcomes
	if own, ok := scenario.Choice(choice.ID); ok {
		choice = *own
	}

	next := state.Clone()
	character := next.Character
	experienceGain := max(choice.Outcomes.Experience, 0)

	// The summary reports the requested amount even when clamping cut it
	gains := make([]types.SkillGain, 0, len(choice.Outcomes.SkillIncrease))
	for _, inc := range choice.Outcomes.SkillIncrease {
		skill, ok := character.Skill(inc.SkillID)
		if !ok {
			continue
		}
		skill.Level = clampSkillLevel(skill.Level+inc.Amount, skill.MaxLevel)
		gains = append(gains, types.SkillGain{
			SkillID: skill.ID,
			Name:    skill.Name,
			Amount:  inc.Amount,
		})
	}

	// Level baseline is the pre-gain experience, not the stored level
	previousLevel := LevelForExperience(character.Experience)
	character.Experience += experienceGain
	newLevel := LevelForExperience(character.Experience)
	character.Level = newLevel

	awarded := 0
	if newLevel > previousLevel {
		awarded = LevelUpSkillPoints
		character.SkillPoints += awarded
	}

	next.CompletedScenarios = append(next.CompletedScenarios, scenario.ID)
	next.Phase = types.ResultPhase{
		Scenario: *scenario,
		Result: types.ChoiceResult{
			Text:               choice.Outcomes.ResultText,
			Experience:         experienceGain,
			SkillsIncreased:    gains,
			LeveledUp:          awarded > 0,
			NewLevel:           newLevel,
			SkillPointsAwarded: awarded,
		},
	}
	return next, true
}

func allocateSkillPoint(state types.GameState, skillID string) (types.GameState, bool) {
	if !CanAllocateSkillPoint(state.Character, skillID) {
		return state, false
	}

	next := state.Clone()
	skill, _ := next.Character.Skill(skillID)
	skill.Level++
	next.Character.SkillPoints--
	return next, true
}

func unlockTool(state types.GameState, toolID string) (types.GameState, bool) {
	if state.Character == nil {
		return state, false
	}
	tool, ok := state.Character.Tool(toolID)
	if !ok || !IsUnlockable(*tool, state.Character) {
		return state, false
	}

	next := state.Clone()
	unlocked, _ := next.Character.Tool(toolID)
	unlocked.Unlocked = true
	return next, true
}
