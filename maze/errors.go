package maze

import "errors"

var (
	// ErrInvalidDimensions indicates a grid was requested with zero or negative rows or columns.
	ErrInvalidDimensions = errors.New("maze: rows and columns must be at least 1")
	// ErrInvalidOrigin indicates a location outside the grid bounds was given to the solver.
	ErrInvalidOrigin = errors.New("maze: location out of grid bounds")
	// ErrNotSolved indicates an operation that needs distances was called before Solve.
	ErrNotSolved = errors.New("maze: grid has not been solved")
	// ErrUnreachable indicates the target is not connected to the solved origin.
	ErrUnreachable = errors.New("maze: location unreachable from origin")
	// ErrNotPerfect indicates the link relation is not a spanning tree.
	ErrNotPerfect = errors.New("maze: links do not form a spanning tree")
	// ErrInvalidPassage indicates a passage joins cells that are not structural neighbors.
	ErrInvalidPassage = errors.New("maze: passage must join two adjacent in-bound cells")
)
