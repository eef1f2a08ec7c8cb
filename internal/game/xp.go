package game

const (
	// ExperiencePerLevel is the width of one level band
	ExperiencePerLevel = 100

	// LevelUpSkillPoints is granted once per choice that crosses a band
	LevelUpSkillPoints = 2
)

// LevelForExperience returns the character level for a total experience.
// Negative experience is treated as zero.
func LevelForExperience(experience int) int {
	if experience < 0 {
		experience = 0
	}
	return experience/ExperiencePerLevel + 1
}

// ExperienceIntoLevel returns how far into the current band experience is
func ExperienceIntoLevel(experience int) int {
	if experience < 0 {
		return 0
	}
	return experience % ExperiencePerLevel
}

func clampSkillLevel(level, maxLevel int) int {
	return max(0, min(level, maxLevel))
}
