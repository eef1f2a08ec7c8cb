package game

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/user/ba-career-quest/internal/storage"
	"github.com/user/ba-career-quest/internal/types"
)

// DefaultStateKey is the key the saved game lives under
const DefaultStateKey = "ba-career-quest:game-state"

// GameStateStorage handles persistence of game state as one JSON blob
type GameStateStorage struct {
	store storage.Store
	key   string
}

// NewGameStateStorage creates a game state storage over a key-value store
func NewGameStateStorage(store storage.Store, key string) *GameStateStorage {
	if key == "" {
		key = DefaultStateKey
	}

	return &GameStateStorage{
		store: store,
		key:   key,
	}
}

// SaveGameState overwrites the saved game with state
func (gss *GameStateStorage) SaveGameState(state types.GameState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal game state: %w", err)
	}

	if err := gss.store.Put(gss.key, data); err != nil {
		return fmt.Errorf("failed to write game state: %w", err)
	}

	return nil
}

// LoadGameState loads the saved game. It returns nil without error when no
// game has been saved.
func (gss *GameStateStorage) LoadGameState() (*types.GameState, error) {
	data, err := gss.store.Get(gss.key)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read game state: %w", err)
	}

	var state types.GameState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse game state: %w", err)
	}

	return &state, nil
}

// ClearGameState erases the saved game
func (gss *GameStateStorage) ClearGameState() error {
	if err := gss.store.Delete(gss.key); err != nil {
		return fmt.Errorf("failed to delete game state: %w", err)
	}
	return nil
}
