package catalog

import "github.com/user/ba-career-quest/internal/types"

func defaultSkills() []types.Skill {
	return []types.Skill{
		{ID: "requirements", Name: "Requirements Gathering", Level: 1, MaxLevel: 10, Description: "Eliciting and refining what stakeholders actually need"},
		{ID: "analysis", Name: "Data Analysis", Level: 1, MaxLevel: 10, Description: "Turning raw data into decisions"},
		{ID: "communication", Name: "Stakeholder Communication", Level: 1, MaxLevel: 10, Description: "Keeping every party aligned"},
		{ID: "documentation", Name: "Documentation", Level: 1, MaxLevel: 10, Description: "Writing specs people read"},
		{ID: "technical", Name: "Technical Knowledge", Level: 1, MaxLevel: 10, Description: "Understanding the systems behind the process"},
	}
}

func defaultTools() []types.Tool {
	return []types.Tool{
		{ID: "sticky-notes", Name: "Sticky Notes", Description: "Affinity mapping on any wall", LevelRequired: 1},
		{ID: "process-modeler", Name: "Process Modeler", Description: "BPMN diagrams for as-is and to-be flows", LevelRequired: 2},
		{ID: "sql-console", Name: "SQL Console", Description: "Query production data yourself", LevelRequired: 3},
	}
}

// Default returns the built-in BA Career Quest content
func Default() *Catalog {
	return &Catalog{
		Characters: []types.Character{
			{
				ID:         "rookie",
				Name:       "Rookie Analyst",
				Sprite:     "👨‍💼",
				Level:      1,
				Experience: 0,
				Skills:     defaultSkills(),
				Tools:      defaultTools(),
			},
			{
				ID:         "veteran",
				Name:       "Veteran Analyst",
				Sprite:     "👩‍💼",
				Level:      1,
				Experience: 0,
				Skills:     defaultSkills(),
				Tools:      defaultTools(),
			},
		},
		Scenarios: []types.Scenario{
			{
				ID:          "junior-requirements",
				Title:       "The Missing Requirements",
				Description: "The development team is waiting for requirements, but stakeholders are giving conflicting information. How do you proceed?",
				Level:       1,
				NPCName:     "Project Manager",
				NPCSprite:   "👨‍💼",
				ToolReward:  "sticky-notes",
				Choices: []types.ScenarioChoice{
					{
						ID:   "document",
						Text: "Document everything and present conflicts back to stakeholders",
						Outcomes: types.ChoiceOutcome{
							Experience: 30,
							SkillIncrease: []types.SkillIncrease{
								{SkillID: "documentation", Amount: 2},
								{SkillID: "communication", Amount: 1},
							},
							ResultText: "You carefully documented the conflicting requirements and presented them to stakeholders. This helped identify misunderstandings and led to clearer requirements.",
						},
					},
					{
						ID:   "workshop",
						Text: "Organize a requirements workshop with all stakeholders",
						Outcomes: types.ChoiceOutcome{
							Experience: 40,
							SkillIncrease: []types.SkillIncrease{
								{SkillID: "communication", Amount: 2},
								{SkillID: "requirements", Amount: 2},
							},
							ResultText: "Your workshop was a success! By bringing everyone together, you helped stakeholders align on their needs and produced clear requirements.",
						},
					},
					{
						ID:   "assume",
						Text: "Make assumptions and move forward to meet the deadline",
						Outcomes: types.ChoiceOutcome{
							Experience: 10,
							SkillIncrease: []types.SkillIncrease{
								{SkillID: "technical", Amount: 1},
							},
							ResultText: "Your assumptions led to rework later when stakeholders saw the result. While you met the deadline, the quality suffered.",
						},
					},
				},
			},
			{
				ID:          "data-analysis",
				Title:       "The Data Dilemma",
				Description: "You need to analyze customer data to identify patterns, but the data is messy and incomplete. What approach do you take?",
				Level:       1,
				NPCName:     "Data Scientist",
				NPCSprite:   "👩‍🔬",
				Choices: []types.ScenarioChoice{
					{
						ID:   "clean-analyze",
						Text: "Spend time cleaning the data before analyzing",
						Outcomes: types.ChoiceOutcome{
							Experience: 35,
							SkillIncrease: []types.SkillIncrease{
								{SkillID: "analysis", Amount: 2},
								{SkillID: "technical", Amount: 1},
							},
							ResultText: "Your clean data set produced reliable insights. The extra time invested paid off with trustworthy recommendations.",
						},
					},
					{
						ID:   "partial-analysis",
						Text: "Analyze only the complete records to save time",
						Outcomes: types.ChoiceOutcome{
							Experience: 20,
							SkillIncrease: []types.SkillIncrease{
								{SkillID: "analysis", Amount: 1},
							},
							ResultText: "Your analysis was quick but missed important patterns from the incomplete data. The partial view gave some insight but wasn't comprehensive.",
						},
					},
					{
						ID:   "outsource",
						Text: "Ask the data team to prepare the data for you",
						Outcomes: types.ChoiceOutcome{
							Experience: 15,
							SkillIncrease: []types.SkillIncrease{
								{SkillID: "communication", Amount: 1},
							},
							ResultText: "The data team helped, but they had their own priorities. Your analysis was delayed, but the data quality was good.",
						},
					},
				},
			},
			{
				ID:          "process-mapping",
				Title:       "The Tangled Process",
				Description: "Operations wants to automate order handling, but nobody agrees on how orders flow today. Where do you start?",
				Level:       2,
				NPCName:     "Operations Lead",
				NPCSprite:   "👷",
				ToolReward:  "process-modeler",
				Choices: []types.ScenarioChoice{
					{
						ID:   "shadow",
						Text: "Shadow the team for a week and map the as-is flow",
						SkillRequirements: []types.SkillRequirement{
							{SkillID: "requirements", MinLevel: 2},
						},
						Outcomes: types.ChoiceOutcome{
							Experience: 50,
							SkillIncrease: []types.SkillIncrease{
								{SkillID: "requirements", Amount: 2},
								{SkillID: "documentation", Amount: 1},
							},
							ResultText: "Watching the real work exposed three undocumented workarounds. Your as-is map became the baseline for the automation design.",
						},
					},
					{
						ID:   "logs",
						Text: "Reconstruct the flow from system event logs",
						SkillRequirements: []types.SkillRequirement{
							{SkillID: "analysis", MinLevel: 3},
							{SkillID: "technical", MinLevel: 2},
						},
						Outcomes: types.ChoiceOutcome{
							Experience: 60,
							SkillIncrease: []types.SkillIncrease{
								{SkillID: "analysis", Amount: 2},
								{SkillID: "technical", Amount: 2},
							},
							ResultText: "The logs told a story nobody had admitted to. Your data-backed process map settled the debate in one meeting.",
						},
					},
					{
						ID:   "template",
						Text: "Adopt an industry reference process and adjust later",
						Outcomes: types.ChoiceOutcome{
							Experience: 20,
							SkillIncrease: []types.SkillIncrease{
								{SkillID: "documentation", Amount: 1},
							},
							ResultText: "The reference model was a decent start, but the team spent weeks explaining why their orders are different.",
						},
					},
				},
			},
		},
		SkillCategories: []types.SkillCategory{
			{ID: "elicitation", Name: "Elicitation & Collaboration", Skills: []string{"requirements", "communication"}},
			{ID: "analysis", Name: "Analysis & Design", Skills: []string{"analysis", "technical"}},
			{ID: "delivery", Name: "Delivery", Skills: []string{"documentation"}},
		},
	}
}
