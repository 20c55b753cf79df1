package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
)

// MazeService generates, stores and solves mazes.
type MazeService interface {
	Create(ctx context.Context, recipe dmn.Recipe) (*dmn.MazeRecord, error)
	Get(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error)
	Solve(ctx context.Context, id uuid.UUID, origin maze.Location) (*maze.Grid, error)
	Path(ctx context.Context, id uuid.UUID, origin, target maze.Location) ([]maze.Location, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ShareToken(record *dmn.MazeRecord) (string, error)
	FromToken(ctx context.Context, token string) (*dmn.MazeRecord, error)
}
