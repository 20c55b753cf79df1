// Package mazeapi exposes maze generation and solving over HTTP.
package mazeapi

import (
	"time"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
)

// CreateMazeRequest represents a request to generate a new maze.
type CreateMazeRequest struct {
	Rows      int    `json:"rows" binding:"required,min=1"`
	Cols      int    `json:"cols" binding:"required,min=1"`
	Algorithm string `json:"algorithm"`
	Seed      int64  `json:"seed"`
}

// RecipeResponse describes how a maze was generated.
type RecipeResponse struct {
	Rows      int    `json:"rows"`
	Cols      int    `json:"cols"`
	Algorithm string `json:"algorithm"`
	Seed      int64  `json:"seed"`
}

// MazeResponse represents a generated maze.
type MazeResponse struct {
	ID         uuid.UUID      `json:"id"`
	ShareToken string         `json:"share_token,omitempty"`
	Recipe     RecipeResponse `json:"recipe"`
	CreatedAt  time.Time      `json:"created_at"`
	Snapshot   maze.Snapshot  `json:"snapshot"`
}

// PathResponse represents the route between two cells.
type PathResponse struct {
	From maze.Location   `json:"from"`
	To   maze.Location   `json:"to"`
	Path []maze.Location `json:"path"`
}
