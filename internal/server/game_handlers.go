package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/skip2/go-qrcode"
	"github.com/user/ba-career-quest/internal/catalog"
	"github.com/user/ba-career-quest/internal/game"
	"github.com/user/ba-career-quest/internal/types"
	"go.uber.org/zap"
)

// actionRequest is the body of POST /actions
type actionRequest struct {
	Type        string `json:"type"`
	CharacterID string `json:"character_id,omitempty"`
	ScenarioID  string `json:"scenario_id,omitempty"`
	ChoiceID    string `json:"choice_id,omitempty"`
	SkillID     string `json:"skill_id,omitempty"`
	ToolID      string `json:"tool_id,omitempty"`
}

// actionResponse reports the state after an action
type actionResponse struct {
	State   types.GameState `json:"state"`
	Applied bool            `json:"applied"`
}

var errUnknownAction = errors.New("unknown action type")

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.game.State())
}

func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	var req actionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	state, applied, err := s.dispatch(req)
	switch {
	case errors.Is(err, errUnknownAction):
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, catalog.ErrUnknownCharacter),
		errors.Is(err, catalog.ErrUnknownScenario),
		errors.Is(err, catalog.ErrUnknownChoice):
		s.writeError(w, http.StatusNotFound, err.Error())
		return
	case errors.Is(err, game.ErrNoScenario):
		s.writeError(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		s.logger.Error("Failed to apply action", zap.String("type", req.Type), zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "Failed to apply action")
		return
	}

	s.logger.Info("Action processed",
		zap.String("type", req.Type),
		zap.Bool("applied", applied),
		zap.String("stage", string(state.Stage())))

	s.writeJSON(w, http.StatusOK, actionResponse{State: state, Applied: applied})
}

// dispatch routes a wire action to the game manager
func (s *Server) dispatch(req actionRequest) (types.GameState, bool, error) {
	var (
		state   types.GameState
		applied bool
	)

	switch req.Type {
	case "START_GAME":
		state, applied = s.game.StartGame()
	case "SELECT_CHARACTER":
		return s.game.SelectCharacter(req.CharacterID)
	case "START_SCENARIO":
		return s.game.StartScenario(req.ScenarioID)
	case "MAKE_CHOICE":
		return s.game.MakeChoice(req.ChoiceID)
	case "CONTINUE_TO_MAP":
		state, applied = s.game.ContinueToMap()
	case "RETURN_TO_MAP":
		state, applied = s.game.ReturnToMap()
	case "OPEN_SKILL_TREE":
		state, applied = s.game.OpenSkillTree()
	case "OPEN_JOURNAL":
		state, applied = s.game.OpenJournal()
	case "ALLOCATE_SKILL_POINT":
		state, applied = s.game.AllocateSkillPoint(req.SkillID)
	case "UNLOCK_TOOL":
		state, applied = s.game.UnlockTool(req.ToolID)
	case "RESET_GAME":
		state, applied = s.game.ResetGame()
	default:
		return types.GameState{}, false, fmt.Errorf("%w: %q", errUnknownAction, req.Type)
	}

	return state, applied, nil
}

func (s *Server) handleCharacters(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.game.Characters())
}

func (s *Server) handleScenarios(w http.ResponseWriter, r *http.Request) {
	scenarios := s.game.AvailableScenarios()
	if scenarios == nil {
		scenarios = []types.Scenario{}
	}
	s.writeJSON(w, http.StatusOK, scenarios)
}

func (s *Server) handleChoices(w http.ResponseWriter, r *http.Request) {
	choices, err := s.game.CurrentChoices()
	if err != nil {
		s.writeError(w, http.StatusConflict, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, choices)
}

func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	progress, ok := s.game.Progress()
	if !ok {
		s.writeError(w, http.StatusConflict, "no career in progress")
		return
	}
	s.writeJSON(w, http.StatusOK, progress)
}

func (s *Server) handleTools(w http.ResponseWriter, r *http.Request) {
	tools := s.game.Tools()
	if tools == nil {
		tools = []types.ToolView{}
	}
	s.writeJSON(w, http.StatusOK, tools)
}

func (s *Server) handleSkills(w http.ResponseWriter, r *http.Request) {
	groups := s.game.SkillTree()
	if groups == nil {
		groups = []types.SkillGroup{}
	}
	s.writeJSON(w, http.StatusOK, groups)
}

// handleShare renders the career summary as a QR code PNG
func (s *Server) handleShare(w http.ResponseWriter, r *http.Request) {
	state := s.game.State()
	if state.Character == nil {
		s.writeError(w, http.StatusConflict, "no career in progress")
		return
	}

	png, err := qrcode.Encode(ShareText(state), qrcode.Medium, 256)
	if err != nil {
		s.logger.Error("Failed to generate QR code", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// ShareText summarizes a career for sharing
func ShareText(state types.GameState) string {
	c := state.Character
	if c == nil {
		return "BA Career Quest: no career yet"
	}

	unlocked := 0
	for _, tool := range c.Tools {
		if tool.Unlocked {
			unlocked++
		}
	}

	return fmt.Sprintf("BA Career Quest: %s is a level %d analyst with %d XP, %d scenarios completed and %d/%d tools unlocked",
		c.Name, c.Level, c.Experience, len(state.CompletedScenarios), unlocked, len(c.Tools))
}
