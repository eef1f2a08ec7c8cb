package types

// ChoiceView is a scenario choice with its eligibility for the character
type ChoiceView struct {
	ScenarioChoice
	Selectable bool `json:"selectable"`
}

// ToolView is a tool with whether it can be unlocked now
type ToolView struct {
	Tool
	Unlockable bool `json:"unlockable"`
}

// SkillView is a skill with whether a point can be spent on it now
type SkillView struct {
	Skill
	Upgradable bool `json:"upgradable"`
}

// Progress is the character's standing in its current level band
type Progress struct {
	Level               int `json:"level"`
	Experience          int `json:"experience"`
	ExperienceIntoLevel int `json:"experience_into_level"`
	ExperienceToNext    int `json:"experience_to_next"`
	SkillPoints         int `json:"skill_points"`
	CompletedScenarios  int `json:"completed_scenarios"`
}

// SkillGroup is a skill category resolved against the character's skills
type SkillGroup struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Skills []SkillView `json:"skills"`
}
