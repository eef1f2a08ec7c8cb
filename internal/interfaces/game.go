package interfaces

import "github.com/user/ba-career-quest/internal/types"

// GameManager defines the interface for game operations. Every action
// method returns the state after the action and whether it took effect.
type GameManager interface {
	State() types.GameState
	Characters() []types.Character

	StartGame() (types.GameState, bool)
	SelectCharacter(characterID string) (types.GameState, bool, error)
	StartScenario(scenarioID string) (types.GameState, bool, error)
	MakeChoice(choiceID string) (types.GameState, bool, error)
	ContinueToMap() (types.GameState, bool)
	ReturnToMap() (types.GameState, bool)
	OpenSkillTree() (types.GameState, bool)
	OpenJournal() (types.GameState, bool)
	AllocateSkillPoint(skillID string) (types.GameState, bool)
	UnlockTool(toolID string) (types.GameState, bool)
	ResetGame() (types.GameState, bool)

	AvailableScenarios() []types.Scenario
	CurrentChoices() ([]types.ChoiceView, error)
	Progress() (types.Progress, bool)
	Tools() []types.ToolView
	SkillTree() []types.SkillGroup
}
