package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/google/uuid"
)

// MazeStore defines the interface for keeping generated mazes retrievable by ID.
type MazeStore interface {
	// Save inserts or replaces a maze record.
	Save(ctx context.Context, record *dmn.MazeRecord) error

	// ByID retrieves a maze by its unique ID.
	// Returns domain.ErrMazeNotFound if the maze is unknown or expired.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error)

	// Delete removes a maze. Returns domain.ErrMazeNotFound if nothing was stored.
	Delete(ctx context.Context, id uuid.UUID) error
}
