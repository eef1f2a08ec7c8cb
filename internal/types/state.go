package types

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Phase is the stage-specific part of the game state. Each variant carries
// exactly the data valid in its stage.
type Phase interface {
	Stage() Stage
}

// StartPhase is the title screen
type StartPhase struct{}

// CharacterSelectPhase is the character selection screen
type CharacterSelectPhase struct{}

// MapPhase is the career map
type MapPhase struct{}

// ScenarioPhase is an encounter in progress
type ScenarioPhase struct {
	Scenario Scenario
}

// ResultPhase shows the outcome of the last choice
type ResultPhase struct {
	Scenario Scenario
	Result   ChoiceResult
}

// SkillTreePhase is the skill point allocation screen
type SkillTreePhase struct{}

// JournalPhase is the knowledge journal
type JournalPhase struct{}

func (StartPhase) Stage() Stage           { return StageStart }
func (CharacterSelectPhase) Stage() Stage { return StageCharacter }
func (MapPhase) Stage() Stage             { return StageMap }
func (ScenarioPhase) Stage() Stage        { return StageScenario }
func (ResultPhase) Stage() Stage          { return StageResult }
func (SkillTreePhase) Stage() Stage       { return StageSkillTree }
func (JournalPhase) Stage() Stage         { return StageJournal }

// GameState is the aggregate root of a play session
type GameState struct {
	Phase              Phase
	Character          *Character
	CompletedScenarios []string
	SkillCategories    []SkillCategory
}

// NewGameState returns the initial state for the given skill categories
func NewGameState(categories []SkillCategory) GameState {
	return GameState{
		Phase:              StartPhase{},
		CompletedScenarios: []string{},
		SkillCategories:    categories,
	}
}

// Stage returns the current stage
func (s GameState) Stage() Stage {
	if s.Phase == nil {
		return StageStart
	}
	return s.Phase.Stage()
}

// CurrentScenario returns the scenario being played or whose result is shown
func (s GameState) CurrentScenario() *Scenario {
	switch p := s.Phase.(type) {
	case ScenarioPhase:
		return &p.Scenario
	case ResultPhase:
		return &p.Scenario
	}
	return nil
}

// ChoiceResult returns the last resolved outcome while in the result stage
func (s GameState) ChoiceResult() *ChoiceResult {
	if p, ok := s.Phase.(ResultPhase); ok {
		return &p.Result
	}
	return nil
}

// Clone returns a deep copy of the mutable parts of the state. Scenario and
// category reference data is shared.
func (s GameState) Clone() GameState {
	clone := s
	clone.Character = s.Character.Clone()
	clone.CompletedScenarios = make([]string, len(s.CompletedScenarios))
	copy(clone.CompletedScenarios, s.CompletedScenarios)
	return clone
}

// snapshot is the flat wire form of GameState
type snapshot struct {
	Stage              Stage           `json:"stage"`
	Character          *Character      `json:"character"`
	CurrentScenario    *Scenario       `json:"current_scenario"`
	CompletedScenarios []string        `json:"completed_scenarios"`
	ChoiceResult       *ChoiceResult   `json:"choice_result"`
	SkillCategories    []SkillCategory `json:"skill_categories"`
}

// MarshalJSON flattens the phase into stage, current_scenario and choice_result
func (s GameState) MarshalJSON() ([]byte, error) {
	completed := s.CompletedScenarios
	if completed == nil {
		completed = []string{}
	}
	return json.Marshal(snapshot{
		Stage:              s.Stage(),
		Character:          s.Character,
		CurrentScenario:    s.CurrentScenario(),
		CompletedScenarios: completed,
		ChoiceResult:       s.ChoiceResult(),
		SkillCategories:    s.SkillCategories,
	})
}

// UnmarshalJSON rebuilds the phase from the flat wire form and rejects
// snapshots whose stage data is inconsistent
func (s *GameState) UnmarshalJSON(data []byte) error {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return err
	}

	phase, err := phaseFromSnapshot(snap)
	if err != nil {
		return err
	}

	completed := snap.CompletedScenarios
	if completed == nil {
		completed = []string{}
	}

	*s = GameState{
		Phase:              phase,
		Character:          snap.Character,
		CompletedScenarios: completed,
		SkillCategories:    snap.SkillCategories,
	}
	return nil
}

func phaseFromSnapshot(snap snapshot) (Phase, error) {
	if !snap.Stage.Valid() {
		return nil, fmt.Errorf("unknown stage %q", snap.Stage)
	}

	switch snap.Stage {
	case StageStart:
		return StartPhase{}, nil
	case StageCharacter:
		return CharacterSelectPhase{}, nil
	case StageScenario:
		if snap.CurrentScenario == nil {
			return nil, errors.New("scenario stage without current scenario")
		}
		return ScenarioPhase{Scenario: *snap.CurrentScenario}, nil
	case StageResult:
		if snap.CurrentScenario == nil || snap.ChoiceResult == nil {
			return nil, errors.New("result stage without scenario or choice result")
		}
		return ResultPhase{Scenario: *snap.CurrentScenario, Result: *snap.ChoiceResult}, nil
	case StageSkillTree:
		return SkillTreePhase{}, nil
	case StageJournal:
		return JournalPhase{}, nil
	default:
		return MapPhase{}, nil
	}
}
