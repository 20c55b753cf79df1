package mazestore

import (
	"encoding/json"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
)

const keyPrefix = "maze:"

// storedMaze is the wire form of a MazeRecord. Passages are kept instead of
// cells so decoding rebuilds the grid through the normal linking path.
type storedMaze struct {
	ID        uuid.UUID      `json:"id"`
	Recipe    dmn.Recipe     `json:"recipe"`
	Passages  []maze.Passage `json:"passages"`
	CreatedAt time.Time      `json:"created_at"`
}

// mazeKey returns the storage key for a maze ID.
func mazeKey(id uuid.UUID) string {
	return keyPrefix + id.String()
}

// lockKey returns the key of the write lock guarding a maze.
func lockKey(id uuid.UUID) string {
	return mazeKey(id) + ":lock"
}

func encodeRecord(record *dmn.MazeRecord) ([]byte, error) {
	return json.Marshal(storedMaze{
		ID:        record.ID,
		Recipe:    record.Recipe,
		Passages:  record.Grid.Passages(),
		CreatedAt: record.CreatedAt,
	})
}

func decodeRecord(data []byte) (*dmn.MazeRecord, error) {
	var sm storedMaze
	if err := json.Unmarshal(data, &sm); err != nil {
		return nil, fmt.Errorf("decoding stored maze: %w", err)
	}
	grid, err := maze.FromPassages(sm.Recipe.Rows, sm.Recipe.Cols, sm.Passages)
	if err != nil {
		return nil, fmt.Errorf("decoding stored maze %s: %w", sm.ID, err)
	}
	return &dmn.MazeRecord{
		ID:        sm.ID,
		Recipe:    sm.Recipe,
		Grid:      grid,
		CreatedAt: sm.CreatedAt,
	}, nil
}
