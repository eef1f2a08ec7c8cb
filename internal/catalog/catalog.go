package catalog

import (
	"errors"
	"fmt"

	"github.com/user/ba-career-quest/internal/types"
)

var (
	ErrUnknownCharacter = errors.New("character not found")
	ErrUnknownScenario  = errors.New("scenario not found")
	ErrUnknownChoice    = errors.New("choice not found")
)

// Catalog is the static reference data the engine is built against
type Catalog struct {
	Characters      []types.Character     `json:"characters" toml:"characters"`
	Scenarios       []types.Scenario      `json:"scenarios" toml:"scenarios"`
	SkillCategories []types.SkillCategory `json:"skill_categories" toml:"skill_categories"`
}

// Character returns a deep copy of the character template with the given id
func (c *Catalog) Character(id string) (*types.Character, error) {
	for i := range c.Characters {
		if c.Characters[i].ID == id {
			return c.Characters[i].Clone(), nil
		}
	}
	return nil, ErrUnknownCharacter
}

// Scenario returns the scenario with the given id
func (c *Catalog) Scenario(id string) (*types.Scenario, error) {
	for i := range c.Scenarios {
		if c.Scenarios[i].ID == id {
			return &c.Scenarios[i], nil
		}
	}
	return nil, ErrUnknownScenario
}

// Validate checks ids are unique and every reference resolves. Skill
// references must name a skill of at least one character. It also
// drops empty requirement lists so they serialize the same way they load.
func (c *Catalog) Validate() error {
	characterIDs := make(map[string]bool)
	knownSkills := make(map[string]bool)
	for i := range c.Characters {
		ch := &c.Characters[i]
		if ch.ID == "" {
			return fmt.Errorf("character %d: missing id", i)
		}
		if characterIDs[ch.ID] {
			return fmt.Errorf("character %s: duplicate id", ch.ID)
		}
		characterIDs[ch.ID] = true

		if ch.Experience < 0 || ch.SkillPoints < 0 {
			return fmt.Errorf("character %s: negative experience or skill points", ch.ID)
		}

		skillIDs := make(map[string]bool)
		for _, skill := range ch.Skills {
			if skillIDs[skill.ID] {
				return fmt.Errorf("character %s: duplicate skill %s", ch.ID, skill.ID)
			}
			skillIDs[skill.ID] = true
			knownSkills[skill.ID] = true
			if skill.MaxLevel < 0 || skill.Level < 0 || skill.Level > skill.MaxLevel {
				return fmt.Errorf("character %s: skill %s level %d outside [0, %d]", ch.ID, skill.ID, skill.Level, skill.MaxLevel)
			}
		}

		toolIDs := make(map[string]bool)
		for _, tool := range ch.Tools {
			if toolIDs[tool.ID] {
				return fmt.Errorf("character %s: duplicate tool %s", ch.ID, tool.ID)
			}
			toolIDs[tool.ID] = true
		}
	}

	scenarioIDs := make(map[string]bool)
	for i := range c.Scenarios {
		sc := &c.Scenarios[i]
		if sc.ID == "" {
			return fmt.Errorf("scenario %d: missing id", i)
		}
		if scenarioIDs[sc.ID] {
			return fmt.Errorf("scenario %s: duplicate id", sc.ID)
		}
		scenarioIDs[sc.ID] = true

		choiceIDs := make(map[string]bool)
		for j := range sc.Choices {
			choice := &sc.Choices[j]
			if choiceIDs[choice.ID] {
				return fmt.Errorf("scenario %s: duplicate choice %s", sc.ID, choice.ID)
			}
			choiceIDs[choice.ID] = true

			if choice.Outcomes.Experience < 0 {
				return fmt.Errorf("scenario %s choice %s: negative experience", sc.ID, choice.ID)
			}
			for _, inc := range choice.Outcomes.SkillIncrease {
				if inc.Amount < 0 {
					return fmt.Errorf("scenario %s choice %s: negative increase for %s", sc.ID, choice.ID, inc.SkillID)
				}
				if !knownSkills[inc.SkillID] {
					return fmt.Errorf("scenario %s choice %s: increase for unknown skill %s", sc.ID, choice.ID, inc.SkillID)
				}
			}
			for _, req := range choice.SkillRequirements {
				if !knownSkills[req.SkillID] {
					return fmt.Errorf("scenario %s choice %s: requirement on unknown skill %s", sc.ID, choice.ID, req.SkillID)
				}
			}
			if len(choice.SkillRequirements) == 0 {
				choice.SkillRequirements = nil
			}
		}
	}

	// Cross references
	for _, sc := range c.Scenarios {
		for _, choice := range sc.Choices {
			if next := choice.Outcomes.NextScenarioID; next != "" && !scenarioIDs[next] {
				return fmt.Errorf("scenario %s choice %s: unknown next scenario %s", sc.ID, choice.ID, next)
			}
		}
		if sc.ToolReward != "" && !c.anyCharacterHasTool(sc.ToolReward) {
			return fmt.Errorf("scenario %s: unknown tool reward %s", sc.ID, sc.ToolReward)
		}
	}

	categoryIDs := make(map[string]bool)
	for _, cat := range c.SkillCategories {
		if categoryIDs[cat.ID] {
			return fmt.Errorf("skill category %s: duplicate id", cat.ID)
		}
		categoryIDs[cat.ID] = true
		for _, skillID := range cat.Skills {
			if !knownSkills[skillID] {
				return fmt.Errorf("skill category %s: unknown skill %s", cat.ID, skillID)
			}
		}
	}

	return nil
}

func (c *Catalog) anyCharacterHasTool(id string) bool {
	for i := range c.Characters {
		if _, ok := c.Characters[i].Tool(id); ok {
			return true
		}
	}
	return false
}
