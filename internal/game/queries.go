package game

import "github.com/user/ba-career-quest/internal/types"

// AvailableScenarios returns the scenarios whose level the character has
// reached, in catalog order
func AvailableScenarios(scenarios []types.Scenario, character *types.Character) []types.Scenario {
	if character == nil {
		return nil
	}

	available := make([]types.Scenario, 0, len(scenarios))
	for _, scenario := range scenarios {
		if scenario.Level <= character.Level {
			available = append(available, scenario)
		}
	}
	return available
}

// CanSelectChoice reports whether the character meets every skill
// requirement of the choice
func CanSelectChoice(choice types.ScenarioChoice, character *types.Character) bool {
	if len(choice.SkillRequirements) == 0 {
		return true
	}
	if character == nil {
		return false
	}

	for _, req := range choice.SkillRequirements {
		skill, ok := character.Skill(req.SkillID)
		if !ok || skill.Level < req.MinLevel {
			return false
		}
	}
	return true
}

// IsUnlockable reports whether the tool is still locked and the character
// has reached its level
func IsUnlockable(tool types.Tool, character *types.Character) bool {
	if character == nil {
		return false
	}
	return !tool.Unlocked && character.Level >= tool.LevelRequired
}

// CanAllocateSkillPoint reports whether a skill point can be spent on skillID
func CanAllocateSkillPoint(character *types.Character, skillID string) bool {
	if character == nil || character.SkillPoints <= 0 {
		return false
	}
	skill, ok := character.Skill(skillID)
	return ok && skill.Level < skill.MaxLevel
}
