// Package domain holds the records shared between the maze service and its adapters.
package domain

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/maze/generator"
	"github.com/google/uuid"
)

// ErrMazeNotFound indicates no maze is stored under the requested ID.
var ErrMazeNotFound = errors.New("maze not found")

// Recipe is everything needed to regenerate a maze exactly.
type Recipe struct {
	Rows      int                 `json:"rows"`
	Cols      int                 `json:"cols"`
	Algorithm generator.Algorithm `json:"algorithm"`
	Seed      int64               `json:"seed"`
}

// Build constructs the grid and carves it with the recipe's algorithm and
// seed. Validation errors are returned before any link is added.
func (r Recipe) Build() (*maze.Grid, error) {
	if !r.Algorithm.Valid() {
		return nil, fmt.Errorf("%w: %v", generator.ErrUnknownAlgorithm, r.Algorithm)
	}
	g, err := maze.New(r.Rows, r.Cols)
	if err != nil {
		return nil, err
	}
	if err := generator.Generate(g, r.Algorithm, rand.New(rand.NewSource(r.Seed))); err != nil {
		return nil, err
	}
	return g, nil
}

// MazeRecord is a generated maze together with the recipe that produced it.
type MazeRecord struct {
	ID        uuid.UUID
	Recipe    Recipe
	Grid      *maze.Grid
	CreatedAt time.Time
}
