package journal

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Content is the on-disk form of a journal
type Content struct {
	Categories []Category `json:"categories"`
	Entries    []Entry    `json:"entries"`
}

// Load reads journal content from a JSON file
func Load(path string) (*Journal, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read journal file: %w", err)
	}

	var content Content
	if err := json.Unmarshal(data, &content); err != nil {
		return nil, fmt.Errorf("failed to parse journal data: %w", err)
	}

	return New(content.Categories, content.Entries)
}

// LoadOrDefault loads the journal at path, or the built-in mentor articles
// when path is empty
func LoadOrDefault(path string) (*Journal, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// DefaultCategories returns the built-in journal sections
func DefaultCategories() []Category {
	return []Category{
		{
			ID:          "stk",
			Name:        "Stakeholder Management",
			Description: "Techniques for stakeholder analysis and engagement",
			Icon:        "👥",
			Subcategories: []Subcategory{
				{ID: "stk-1", Name: "Stakeholder Analysis", Description: "Methods to identify and analyze stakeholders"},
				{ID: "stk-2", Name: "Communication Plans", Description: "Creating effective communication strategies"},
			},
		},
		{
			ID:          "agile",
			Name:        "Agile Practices",
			Description: "Agile methodologies and ceremonies",
			Icon:        "🔄",
			Subcategories: []Subcategory{
				{ID: "agile-1", Name: "User Stories", Description: "Writing effective user stories"},
				{ID: "agile-2", Name: "Backlog Management", Description: "Prioritization and refinement techniques"},
			},
		},
	}
}

// Default returns a journal seeded with mentor articles
func Default() *Journal {
	published := time.Date(2024, time.January, 15, 9, 0, 0, 0, time.UTC)

	entries := []Entry{
		{
			ID:              "power-interest-grid",
			Title:           "The Power/Interest Grid",
			Content:         "Plot each stakeholder by how much influence they hold and how much the outcome affects them. Manage closely the ones high on both axes, keep the powerful but disinterested satisfied, and keep the interested but powerless informed.",
			Category:        "stk",
			Subcategory:     "stk-1",
			Status:          StatusPublished,
			CreatedAt:       published,
			UpdatedAt:       published,
			Tags:            []string{"stakeholders", "mapping"},
			XPReward:        10,
			AuthorType:      AuthorMentor,
			AuthorName:      "Senior BA Maria",
			RelatedSkills:   []string{"communication"},
			Difficulty:      DifficultyBeginner,
			ReadTimeMinutes: 3,
		},
		{
			ID:              "raci-communication",
			Title:           "Communication Plans with RACI",
			Content:         "A RACI matrix tells you who is responsible, accountable, consulted and informed for each deliverable. Derive your communication cadence from it instead of sending every update to everyone.",
			Category:        "stk",
			Subcategory:     "stk-2",
			Status:          StatusPublished,
			CreatedAt:       published,
			UpdatedAt:       published.Add(24 * time.Hour),
			Tags:            []string{"stakeholders", "communication"},
			XPReward:        10,
			AuthorType:      AuthorMentor,
			AuthorName:      "Senior BA Maria",
			RelatedSkills:   []string{"communication", "documentation"},
			Difficulty:      DifficultyIntermediate,
			ReadTimeMinutes: 4,
			References:      []string{"BABOK Guide v3, Stakeholder Engagement"},
		},
		{
			ID:              "invest-user-stories",
			Title:           "Writing INVEST User Stories",
			Content:         "Good user stories are independent, negotiable, valuable, estimable, small and testable. Start from the user's goal and attach acceptance criteria before the story enters a sprint.",
			Category:        "agile",
			Subcategory:     "agile-1",
			Status:          StatusPublished,
			CreatedAt:       published,
			UpdatedAt:       published.Add(48 * time.Hour),
			Tags:            []string{"user-stories", "requirements"},
			XPReward:        15,
			AuthorType:      AuthorMentor,
			AuthorName:      "Agile Coach Tom",
			RelatedSkills:   []string{"requirements"},
			Difficulty:      DifficultyBeginner,
			ReadTimeMinutes: 5,
		},
		{
			ID:              "moscow-prioritization",
			Title:           "MoSCoW Prioritization",
			Content:         "Sort backlog items into must have, should have, could have and won't have this time. Agree the definitions with the product owner before the session, not during it.",
			Category:        "agile",
			Subcategory:     "agile-2",
			Status:          StatusPublished,
			CreatedAt:       published,
			UpdatedAt:       published.Add(72 * time.Hour),
			Tags:            []string{"backlog", "prioritization", "requirements"},
			XPReward:        15,
			AuthorType:      AuthorMentor,
			AuthorName:      "Agile Coach Tom",
			RelatedSkills:   []string{"requirements", "analysis"},
			Difficulty:      DifficultyIntermediate,
			ReadTimeMinutes: 4,
		},
	}

	j, err := New(DefaultCategories(), entries)
	if err != nil {
		// Built-in content is static
		panic(err)
	}
	return j
}
