package types

// Stage is the top-level mode the game is in
type Stage string

const (
	StageStart     Stage = "start"
	StageCharacter Stage = "character"
	StageMap       Stage = "map"
	StageScenario  Stage = "scenario"
	StageResult    Stage = "result"
	StageSkillTree Stage = "skilltree"
	StageJournal   Stage = "journal"
)

// Valid reports whether s is one of the known stages
func (s Stage) Valid() bool {
	switch s {
	case StageStart, StageCharacter, StageMap, StageScenario, StageResult, StageSkillTree, StageJournal:
		return true
	}
	return false
}

// Skill represents a single character skill
type Skill struct {
	ID          string `json:"id" toml:"id"`
	Name        string `json:"name" toml:"name"`
	Level       int    `json:"level" toml:"level"`
	MaxLevel    int    `json:"max_level" toml:"max_level"`
	Description string `json:"description,omitempty" toml:"description"`
}

// SkillCategory groups skill ids for presentation
type SkillCategory struct {
	ID     string   `json:"id" toml:"id"`
	Name   string   `json:"name" toml:"name"`
	Skills []string `json:"skills" toml:"skills"`
}

// Tool represents an unlockable tool of the trade
type Tool struct {
	ID            string `json:"id" toml:"id"`
	Name          string `json:"name" toml:"name"`
	Description   string `json:"description" toml:"description"`
	LevelRequired int    `json:"level_required" toml:"level_required"`
	Unlocked      bool   `json:"unlocked" toml:"unlocked"`
}

// Character represents the player's analyst
type Character struct {
	ID          string  `json:"id" toml:"id"`
	Name        string  `json:"name" toml:"name"`
	Sprite      string  `json:"sprite" toml:"sprite"`
	Level       int     `json:"level" toml:"level"`
	Experience  int     `json:"experience" toml:"experience"`
	SkillPoints int     `json:"skill_points" toml:"skill_points"`
	Skills      []Skill `json:"skills" toml:"skills"`
	Tools       []Tool  `json:"tools" toml:"tools"`
}

// Skill returns the character skill with the given id
func (c *Character) Skill(id string) (*Skill, bool) {
	for i := range c.Skills {
		if c.Skills[i].ID == id {
			return &c.Skills[i], true
		}
	}
	return nil, false
}

// Tool returns the character tool with the given id
func (c *Character) Tool(id string) (*Tool, bool) {
	for i := range c.Tools {
		if c.Tools[i].ID == id {
			return &c.Tools[i], true
		}
	}
	return nil, false
}

// Clone returns a deep copy of the character
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}
	clone := *c
	if c.Skills != nil {
		clone.Skills = make([]Skill, len(c.Skills))
		copy(clone.Skills, c.Skills)
	}
	if c.Tools != nil {
		clone.Tools = make([]Tool, len(c.Tools))
		copy(clone.Tools, c.Tools)
	}
	return &clone
}

// SkillRequirement gates a choice on a minimum skill level
type SkillRequirement struct {
	SkillID  string `json:"skill_id" toml:"skill_id"`
	MinLevel int    `json:"min_level" toml:"min_level"`
}

// SkillIncrease is a skill reward granted by a choice
type SkillIncrease struct {
	SkillID string `json:"skill_id" toml:"skill_id"`
	Amount  int    `json:"amount" toml:"amount"`
}

// ChoiceOutcome represents the deterministic result of a choice
type ChoiceOutcome struct {
	Experience     int             `json:"experience" toml:"experience"`
	SkillIncrease  []SkillIncrease `json:"skill_increase" toml:"skill_increase"`
	ResultText     string          `json:"result_text" toml:"result_text"`
	NextScenarioID string          `json:"next_scenario_id,omitempty" toml:"next_scenario_id"`
}

// ScenarioChoice represents a selectable option within a scenario
type ScenarioChoice struct {
	ID                string             `json:"id" toml:"id"`
	Text              string             `json:"text" toml:"text"`
	SkillRequirements []SkillRequirement `json:"skill_requirements,omitempty" toml:"skill_requirements"`
	Outcomes          ChoiceOutcome      `json:"outcomes" toml:"outcomes"`
}

// Scenario represents a branching encounter on the career map
type Scenario struct {
	ID          string           `json:"id" toml:"id"`
	Title       string           `json:"title" toml:"title"`
	Description string           `json:"description" toml:"description"`
	Level       int              `json:"level" toml:"level"`
	NPCName     string           `json:"npc_name,omitempty" toml:"npc_name"`
	NPCSprite   string           `json:"npc_sprite,omitempty" toml:"npc_sprite"`
	Choices     []ScenarioChoice `json:"choices" toml:"choices"`
	ToolReward  string           `json:"tool_reward,omitempty" toml:"tool_reward"`
}

// Choice returns the scenario choice with the given id
func (s *Scenario) Choice(id string) (*ScenarioChoice, bool) {
	for i := range s.Choices {
		if s.Choices[i].ID == id {
			return &s.Choices[i], true
		}
	}
	return nil, false
}

// SkillGain is one line of the choice result summary
type SkillGain struct {
	SkillID string `json:"skill_id"`
	Name    string `json:"name"`
	Amount  int    `json:"amount"`
}

// ChoiceResult represents the last resolved choice
type ChoiceResult struct {
	Text               string      `json:"text"`
	Experience         int         `json:"experience"`
	SkillsIncreased    []SkillGain `json:"skills_increased"`
	LeveledUp          bool        `json:"leveled_up"`
	NewLevel           int         `json:"new_level"`
	SkillPointsAwarded int         `json:"skill_points_awarded"`
}
