package game

import (
	"errors"
	"sync"

	"github.com/user/ba-career-quest/config"
	"github.com/user/ba-career-quest/internal/catalog"
	"github.com/user/ba-career-quest/internal/interfaces"
	"github.com/user/ba-career-quest/internal/types"
	"go.uber.org/zap"
)

// ErrNoScenario is returned when a choice is made outside a scenario
var ErrNoScenario = errors.New("no scenario in progress")

// StateStore is the persistence port of the game manager
type StateStore interface {
	LoadGameState() (*types.GameState, error)
	SaveGameState(state types.GameState) error
	ClearGameState() error
}

// GameManager owns the game state and persists it after every transition
type GameManager struct {
	state     types.GameState
	stateLock sync.RWMutex
	storage   StateStore
	engine    *Engine
	catalog   *catalog.Catalog
	config    config.Config
	Logger    *zap.Logger
}

// Ensure GameManager satisfies the interfaces.GameManager interface
var _ interfaces.GameManager = (*GameManager)(nil)

// NewGameManager creates a game manager, resuming the saved game if there is
// a readable one. A nil logger discards output.
func NewGameManager(cfg config.Config, cat *catalog.Catalog, store StateStore, logger *zap.Logger) *GameManager {
	if logger == nil {
		logger = zap.NewNop()
	}

	var guard Guard = StrictGuard{}
	if !cfg.Game.StrictTransitions {
		guard = PermissiveGuard{}
	}

	gm := &GameManager{
		storage: store,
		engine:  NewEngine(cat.SkillCategories, guard),
		catalog: cat,
		config:  cfg,
		Logger:  logger,
	}
	gm.state = gm.loadState()

	return gm
}

// loadState returns the saved game, or the initial state when there is none
// or it cannot be read
func (gm *GameManager) loadState() types.GameState {
	saved, err := gm.storage.LoadGameState()
	if err != nil {
		gm.Logger.Warn("Failed to load saved game, starting fresh", zap.Error(err))
		return gm.engine.InitialState()
	}
	if saved == nil {
		return gm.engine.InitialState()
	}

	gm.Logger.Info("Resumed saved game",
		zap.String("stage", string(saved.Stage())),
		zap.Int("completed_scenarios", len(saved.CompletedScenarios)))
	return *saved
}

// State returns a snapshot of the current state
func (gm *GameManager) State() types.GameState {
	gm.stateLock.RLock()
	defer gm.stateLock.RUnlock()

	return gm.state.Clone()
}

// Catalog returns the reference data the game runs on
func (gm *GameManager) Catalog() *catalog.Catalog {
	return gm.catalog
}

// Characters returns copies of the selectable character templates
func (gm *GameManager) Characters() []types.Character {
	characters := make([]types.Character, 0, len(gm.catalog.Characters))
	for i := range gm.catalog.Characters {
		characters = append(characters, *gm.catalog.Characters[i].Clone())
	}
	return characters
}

// Dispatch applies action, persists the result and returns the new state
// snapshot and whether the action took effect
func (gm *GameManager) Dispatch(action Action) (types.GameState, bool) {
	gm.stateLock.Lock()
	defer gm.stateLock.Unlock()

	return gm.dispatch(action)
}

func (gm *GameManager) dispatch(action Action) (types.GameState, bool) {
	from := gm.state.Stage()
	next, applied := gm.engine.transition(gm.state, action)

	name := "<nil>"
	if action != nil {
		name = action.Name()
	}
	gm.Logger.Debug("Action dispatched",
		zap.String("action", name),
		zap.String("from_stage", string(from)),
		zap.String("to_stage", string(next.Stage())),
		zap.Bool("applied", applied))

	if !applied {
		return gm.state.Clone(), false
	}

	gm.state = next
	gm.persist(action)

	return gm.state.Clone(), true
}

// persist writes the state back, or erases it on reset. Failures are logged
// and the in-memory state stays authoritative.
func (gm *GameManager) persist(action Action) {
	if _, ok := action.(ResetGame); ok {
		if err := gm.storage.ClearGameState(); err != nil {
			gm.Logger.Error("Failed to clear saved game", zap.Error(err))
		}
		return
	}

	if err := gm.storage.SaveGameState(gm.state); err != nil {
		gm.Logger.Error("Failed to save game state",
			zap.String("action", action.Name()),
			zap.Error(err))
	}
}

// StartGame moves from the title screen to character selection
func (gm *GameManager) StartGame() (types.GameState, bool) {
	return gm.Dispatch(StartGame{})
}

// SelectCharacter starts a career with the catalog character characterID
func (gm *GameManager) SelectCharacter(characterID string) (types.GameState, bool, error) {
	template, err := gm.catalog.Character(characterID)
	if err != nil {
		return gm.State(), false, err
	}

	state, applied := gm.Dispatch(SelectCharacter{Character: *template})
	return state, applied, nil
}

// StartScenario enters the catalog scenario scenarioID
func (gm *GameManager) StartScenario(scenarioID string) (types.GameState, bool, error) {
	scenario, err := gm.catalog.Scenario(scenarioID)
	if err != nil {
		return gm.State(), false, err
	}

	state, applied := gm.Dispatch(StartScenario{Scenario: *scenario})
	return state, applied, nil
}

// MakeChoice resolves choiceID of the current scenario. When the scenario
// rewards a tool, the tool is unlocked right after if the character
// qualifies.
func (gm *GameManager) MakeChoice(choiceID string) (types.GameState, bool, error) {
	gm.stateLock.Lock()
	defer gm.stateLock.Unlock()

	scenario := gm.state.CurrentScenario()
	if scenario == nil {
		return gm.state.Clone(), false, ErrNoScenario
	}
	choice, ok := scenario.Choice(choiceID)
	if !ok {
		return gm.state.Clone(), false, catalog.ErrUnknownChoice
	}
	reward := scenario.ToolReward

	state, applied := gm.dispatch(MakeChoice{Choice: *choice})
	if applied && reward != "" {
		if unlocked, ok := gm.dispatch(UnlockTool{ToolID: reward}); ok {
			gm.Logger.Info("Tool unlocked",
				zap.String("tool_id", reward),
				zap.Int("level", unlocked.Character.Level))
			state = unlocked
		}
	}

	return state, applied, nil
}

// ContinueToMap leaves the result screen
func (gm *GameManager) ContinueToMap() (types.GameState, bool) {
	return gm.Dispatch(ContinueToMap{})
}

// ReturnToMap goes back to the map
func (gm *GameManager) ReturnToMap() (types.GameState, bool) {
	return gm.Dispatch(ReturnToMap{})
}

// OpenSkillTree opens the skill tree
func (gm *GameManager) OpenSkillTree() (types.GameState, bool) {
	return gm.Dispatch(OpenSkillTree{})
}

// OpenJournal opens the knowledge journal
func (gm *GameManager) OpenJournal() (types.GameState, bool) {
	return gm.Dispatch(OpenJournal{})
}

// AllocateSkillPoint spends a skill point on skillID
func (gm *GameManager) AllocateSkillPoint(skillID string) (types.GameState, bool) {
	return gm.Dispatch(AllocateSkillPoint{SkillID: skillID})
}

// UnlockTool unlocks toolID
func (gm *GameManager) UnlockTool(toolID string) (types.GameState, bool) {
	return gm.Dispatch(UnlockTool{ToolID: toolID})
}

// ResetGame discards the career and the saved game
func (gm *GameManager) ResetGame() (types.GameState, bool) {
	return gm.Dispatch(ResetGame{})
}

// AvailableScenarios returns the catalog scenarios open to the character
func (gm *GameManager) AvailableScenarios() []types.Scenario {
	gm.stateLock.RLock()
	defer gm.stateLock.RUnlock()

	return AvailableScenarios(gm.catalog.Scenarios, gm.state.Character)
}

// CurrentChoices returns the choices of the current scenario
func (gm *GameManager) CurrentChoices() ([]types.ChoiceView, error) {
	gm.stateLock.RLock()
	defer gm.stateLock.RUnlock()

	scenario := gm.state.CurrentScenario()
	if scenario == nil {
		return nil, ErrNoScenario
	}

	views := make([]types.ChoiceView, 0, len(scenario.Choices))
	for _, choice := range scenario.Choices {
		views = append(views, types.ChoiceView{
			ScenarioChoice: choice,
			Selectable:     CanSelectChoice(choice, gm.state.Character),
		})
	}
	return views, nil
}

// Progress reports where the character stands in its level band. ok is false
// before a character is selected.
func (gm *GameManager) Progress() (types.Progress, bool) {
	gm.stateLock.RLock()
	defer gm.stateLock.RUnlock()

	character := gm.state.Character
	if character == nil {
		return types.Progress{}, false
	}

	into := ExperienceIntoLevel(character.Experience)
	return types.Progress{
		Level:               LevelForExperience(character.Experience),
		Experience:          character.Experience,
		ExperienceIntoLevel: into,
		ExperienceToNext:    ExperiencePerLevel - into,
		SkillPoints:         character.SkillPoints,
		CompletedScenarios:  len(gm.state.CompletedScenarios),
	}, true
}

// Tools returns the character's tools
func (gm *GameManager) Tools() []types.ToolView {
	gm.stateLock.RLock()
	defer gm.stateLock.RUnlock()

	if gm.state.Character == nil {
		return nil
	}

	views := make([]types.ToolView, 0, len(gm.state.Character.Tools))
	for _, tool := range gm.state.Character.Tools {
		views = append(views, types.ToolView{
			Tool:       tool,
			Unlockable: IsUnlockable(tool, gm.state.Character),
		})
	}
	return views
}

// SkillTree groups the character's skills by category. Category entries
// naming skills the character lacks are skipped.
func (gm *GameManager) SkillTree() []types.SkillGroup {
	gm.stateLock.RLock()
	defer gm.stateLock.RUnlock()

	character := gm.state.Character
	if character == nil {
		return nil
	}

	groups := make([]types.SkillGroup, 0, len(gm.state.SkillCategories))
	for _, category := range gm.state.SkillCategories {
		group := types.SkillGroup{ID: category.ID, Name: category.Name, Skills: []types.SkillView{}}
		for _, skillID := range category.Skills {
			skill, ok := character.Skill(skillID)
			if !ok {
				continue
			}
			group.Skills = append(group.Skills, types.SkillView{
				Skill:      *skill,
				Upgradable: CanAllocateSkillPoint(character, skillID),
			})
		}
		groups = append(groups, group)
	}
	return groups
}
