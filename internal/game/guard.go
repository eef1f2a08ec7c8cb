package game

import "github.com/user/ba-career-quest/internal/types"

// Guard decides whether an action may run against a state. A rejected
// action is a no-op.
type Guard interface {
	Allow(state types.GameState, action Action) bool
}

// PermissiveGuard only rejects actions that would have nothing to act on.
// Stage ordering is left to the caller.
type PermissiveGuard struct{}

// Allow checks the data each action needs is present
func (PermissiveGuard) Allow(state types.GameState, action Action) bool {
	switch a := action.(type) {
	case nil:
		return false
	case SelectCharacter:
		return a.Character.ID != ""
	case StartScenario, OpenSkillTree, OpenJournal, AllocateSkillPoint, UnlockTool:
		return state.Character != nil
	case MakeChoice:
		return state.Character != nil && state.CurrentScenario() != nil
	default:
		return true
	}
}

// StrictGuard additionally enforces the stage table, so a character must
// exist before any scenario, result or skill tree stage is reachable
type StrictGuard struct {
	PermissiveGuard
}

// Allow checks presence and stage ordering
func (g StrictGuard) Allow(state types.GameState, action Action) bool {
	if !g.PermissiveGuard.Allow(state, action) {
		return false
	}

	stage := state.Stage()
	switch a := action.(type) {
	case SelectCharacter:
		return stage == types.StageCharacter
	case StartScenario:
		return stage == types.StageMap && a.Scenario.Level <= state.Character.Level
	case MakeChoice:
		if stage != types.StageScenario {
			return false
		}
		// The choice must belong to the scenario being played
		current := state.CurrentScenario()
		own, ok := current.Choice(a.Choice.ID)
		return ok && CanSelectChoice(*own, state.Character)
	case ContinueToMap, ReturnToMap:
		return state.Character != nil
	case OpenSkillTree:
		return stage == types.StageMap || stage == types.StageResult
	case OpenJournal:
		return stage == types.StageMap
	default:
		return true
	}
}
