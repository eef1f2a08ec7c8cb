package server

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/ba-career-quest/config"
	"github.com/user/ba-career-quest/internal/catalog"
	"github.com/user/ba-career-quest/internal/game"
	"github.com/user/ba-career-quest/internal/journal"
	"github.com/user/ba-career-quest/internal/storage"
	"github.com/user/ba-career-quest/internal/types"
)

func postAction(t *testing.T, handler http.Handler, body string) (types.GameState, bool) {
	t.Helper()
	rec := do(t, handler, http.MethodPost, "/actions", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		State   types.GameState `json:"state"`
		Applied bool            `json:"applied"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.State, resp.Applied
}

func TestPlaythroughOverHTTP(t *testing.T) {
	store := storage.NewMemoryStore()
	gm := game.NewGameManager(config.DefaultConfig(), catalog.Default(), game.NewGameStateStorage(store, ""), nil)
	handler := New(gm, journal.Default(), nil).Router()

	state, applied := postAction(t, handler, `{"type":"START_GAME"}`)
	require.True(t, applied)
	assert.Equal(t, types.StageCharacter, state.Stage())

	state, applied = postAction(t, handler, `{"type":"SELECT_CHARACTER","character_id":"rookie"}`)
	require.True(t, applied)
	assert.Equal(t, types.StageMap, state.Stage())

	// Senior scenarios are out of reach at level 1
	rec := do(t, handler, http.MethodPost, "/actions", `{"type":"START_SCENARIO","scenario_id":"process-mapping"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"applied":false`)

	state, applied = postAction(t, handler, `{"type":"START_SCENARIO","scenario_id":"junior-requirements"}`)
	require.True(t, applied)
	assert.Equal(t, types.StageScenario, state.Stage())

	rec = do(t, handler, http.MethodGet, "/scenarios/current/choices", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var choices []types.ChoiceView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &choices))
	assert.Len(t, choices, 3)

	state, applied = postAction(t, handler, `{"type":"MAKE_CHOICE","choice_id":"workshop"}`)
	require.True(t, applied)
	require.Equal(t, types.StageResult, state.Stage())
	assert.Equal(t, 40, state.Character.Experience)
	assert.Equal(t, 40, state.ChoiceResult().Experience)
	assert.Equal(t, []string{"junior-requirements"}, state.CompletedScenarios)

	tool, ok := state.Character.Tool("sticky-notes")
	require.True(t, ok)
	assert.True(t, tool.Unlocked)

	state, applied = postAction(t, handler, `{"type":"CONTINUE_TO_MAP"}`)
	require.True(t, applied)
	assert.Equal(t, types.StageMap, state.Stage())
	assert.Nil(t, state.CurrentScenario())

	state, applied = postAction(t, handler, `{"type":"OPEN_JOURNAL"}`)
	require.True(t, applied)
	assert.Equal(t, types.StageJournal, state.Stage())

	rec = do(t, handler, http.MethodGet, "/share.png", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	// The save follows every applied action
	saved, err := game.NewGameStateStorage(store, "").LoadGameState()
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, types.StageJournal, saved.Stage())

	state, applied = postAction(t, handler, `{"type":"RESET_GAME"}`)
	require.True(t, applied)
	assert.Equal(t, types.StageStart, state.Stage())
	assert.Nil(t, state.Character)
}
