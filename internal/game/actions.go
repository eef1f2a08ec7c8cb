package game

import "github.com/user/ba-career-quest/internal/types"

// Action is a player intent submitted to the engine
type Action interface {
	// Name returns the action tag used in logs and on the wire
	Name() string
}

// StartGame leaves the title screen for character selection
type StartGame struct{}

// SelectCharacter starts a career with a copy of the given template
type SelectCharacter struct {
	Character types.Character
}

// StartScenario enters a scenario from the map
type StartScenario struct {
	Scenario types.Scenario
}

// MakeChoice resolves a choice of the current scenario
type MakeChoice struct {
	Choice types.ScenarioChoice
}

// ContinueToMap leaves the result screen
type ContinueToMap struct{}

// ReturnToMap goes back to the map from any screen
type ReturnToMap struct{}

// OpenSkillTree shows the skill point allocation screen
type OpenSkillTree struct{}

// OpenJournal shows the knowledge journal
type OpenJournal struct{}

// AllocateSkillPoint spends one skill point on a skill
type AllocateSkillPoint struct {
	SkillID string
}

// UnlockTool unlocks a tool the character has reached the level for
type UnlockTool struct {
	ToolID string
}

// ResetGame discards the career and the saved game
type ResetGame struct{}

func (StartGame) Name() string          { return "START_GAME" }
func (SelectCharacter) Name() string    { return "SELECT_CHARACTER" }
func (StartScenario) Name() string      { return "START_SCENARIO" }
func (MakeChoice) Name() string         { return "MAKE_CHOICE" }
func (ContinueToMap) Name() string      { return "CONTINUE_TO_MAP" }
func (ReturnToMap) Name() string        { return "RETURN_TO_MAP" }
func (OpenSkillTree) Name() string      { return "OPEN_SKILL_TREE" }
func (OpenJournal) Name() string        { return "OPEN_JOURNAL" }
func (AllocateSkillPoint) Name() string { return "ALLOCATE_SKILL_POINT" }
func (UnlockTool) Name() string         { return "UNLOCK_TOOL" }
func (ResetGame) Name() string          { return "RESET_GAME" }
