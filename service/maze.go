package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/maze/generator"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
)

const (
	defaultMaxDimension  = 100
	defaultShareTokenTTL = 24 * time.Hour

	claimMazeID    = "maze_id"
	claimRows      = "rows"
	claimCols      = "cols"
	claimAlgorithm = "algorithm"
	claimSeed      = "seed"
)

var (
	// ErrDimensionTooLarge indicates rows or columns above the configured limit.
	ErrDimensionTooLarge = errors.New("maze dimension exceeds limit")
	// ErrInvalidShareToken indicates a share token that cannot be decoded into a recipe.
	ErrInvalidShareToken = errors.New("invalid share token")
)

var _ i.MazeService = &MazeService{}

// MazeService generates, stores and solves mazes.
type MazeService struct {
	store         i.MazeStore
	tokenizer     i.Tokenizer
	logger        i.Logger
	maxDimension  int
	shareTokenTTL time.Duration
	now           func() time.Time
}

// Config holds the dependencies and limits for a MazeService.
type Config struct {
	Store         i.MazeStore
	Tokenizer     i.Tokenizer
	Logger        i.Logger
	MaxDimension  int           // Upper bound for rows and columns; zero uses the default
	ShareTokenTTL time.Duration // Lifetime of share tokens; zero uses the default
}

// NewMazeService creates a MazeService from the given configuration.
func NewMazeService(c *Config) (*MazeService, error) {
	if c.Store == nil {
		return nil, errors.New("maze store is required")
	}
	if c.Tokenizer == nil {
		return nil, errors.New("tokenizer is required")
	}
	if c.Logger == nil {
		return nil, errors.New("logger is required")
	}

	ms := &MazeService{
		store:         c.Store,
		tokenizer:     c.Tokenizer,
		logger:        c.Logger,
		maxDimension:  c.MaxDimension,
		shareTokenTTL: c.ShareTokenTTL,
		now:           time.Now,
	}
	if ms.maxDimension <= 0 {
		ms.maxDimension = defaultMaxDimension
	}
	if ms.shareTokenTTL <= 0 {
		ms.shareTokenTTL = defaultShareTokenTTL
	}
	return ms, nil
}

// validate rejects a recipe before anything is generated.
func (ms *MazeService) validate(r dmn.Recipe) error {
	if r.Rows <= 0 || r.Cols <= 0 {
		return fmt.Errorf("%w: got %dx%d", maze.ErrInvalidDimensions, r.Rows, r.Cols)
	}
	if r.Rows > ms.maxDimension || r.Cols > ms.maxDimension {
		return fmt.Errorf("%w: %dx%d, max %d", ErrDimensionTooLarge, r.Rows, r.Cols, ms.maxDimension)
	}
	if !r.Algorithm.Valid() {
		return fmt.Errorf("%w: %v", generator.ErrUnknownAlgorithm, r.Algorithm)
	}
	return nil
}

// Create generates a maze from the recipe and stores it. A seed that is not
// positive is replaced by a time-based one, recorded in the returned recipe.
func (ms *MazeService) Create(ctx context.Context, r dmn.Recipe) (*dmn.MazeRecord, error) {
	if err := ms.validate(r); err != nil {
		return nil, err
	}
	_, r.Seed = generator.NewRand(r.Seed)

	return ms.build(ctx, uuid.New(), r)
}

func (ms *MazeService) build(ctx context.Context, id uuid.UUID, r dmn.Recipe) (*dmn.MazeRecord, error) {
	start := ms.now()
	grid, err := r.Build()
	if err != nil {
		return nil, err
	}
	if err := grid.Verify(); err != nil {
		ms.logger.Error(fmt.Sprintf("Generated maze %s is not perfect: %v", id, err))
		return nil, err
	}

	record := &dmn.MazeRecord{
		ID:        id,
		Recipe:    r,
		Grid:      grid,
		CreatedAt: start.UTC(),
	}
	if err := ms.store.Save(ctx, record); err != nil {
		return nil, fmt.Errorf("saving maze %s: %w", id, err)
	}

	ms.logger.Info(fmt.Sprintf("Generated %dx%d maze %s with %s (seed %d) in %v",
		r.Rows, r.Cols, id, r.Algorithm, r.Seed, ms.now().Sub(start)))
	return record, nil
}

// Get retrieves a stored maze.
func (ms *MazeService) Get(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	return ms.store.ByID(ctx, id)
}

// Solve returns a solved copy of the stored maze with distances measured
// from origin. The stored maze itself is left unsolved.
func (ms *MazeService) Solve(ctx context.Context, id uuid.UUID, origin maze.Location) (*maze.Grid, error) {
	record, err := ms.store.ByID(ctx, id)
	if err != nil {
		return nil, err
	}

	solved := record.Grid.Clone()
	if err := solved.Solve(origin); err != nil {
		return nil, err
	}
	ms.logger.Debug(fmt.Sprintf("Solved maze %s from %v, max distance %d", id, origin, solved.MaxDistance()))
	return solved, nil
}

// Path returns the cells on the route from origin to target.
func (ms *MazeService) Path(ctx context.Context, id uuid.UUID, origin, target maze.Location) ([]maze.Location, error) {
	solved, err := ms.Solve(ctx, id, origin)
	if err != nil {
		return nil, err
	}
	return solved.PathTo(target)
}

// Delete removes a stored maze.
func (ms *MazeService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ms.store.Delete(ctx, id); err != nil {
		return err
	}
	ms.logger.Info(fmt.Sprintf("Deleted maze %s", id))
	return nil
}

// ShareToken signs the record's recipe so the maze can be regenerated later
// without the store.
func (ms *MazeService) ShareToken(record *dmn.MazeRecord) (string, error) {
	claims := map[string]interface{}{
		claimMazeID:    record.ID.String(),
		claimRows:      record.Recipe.Rows,
		claimCols:      record.Recipe.Cols,
		claimAlgorithm: record.Recipe.Algorithm.String(),
		// Seeds exceed float64 precision, so they travel as strings.
		claimSeed: strconv.FormatInt(record.Recipe.Seed, 10),
	}
	return ms.tokenizer.Generate(claims, ms.shareTokenTTL)
}

// FromToken regenerates the maze described by a share token and stores it
// again under its original ID.
func (ms *MazeService) FromToken(ctx context.Context, token string) (*dmn.MazeRecord, error) {
	claims, err := ms.tokenizer.Decode(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidShareToken, err)
	}

	id, r, err := recipeFromClaims(claims)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidShareToken, err)
	}
	if err := ms.validate(r); err != nil {
		return nil, err
	}
	return ms.build(ctx, id, r)
}

func recipeFromClaims(claims map[string]interface{}) (uuid.UUID, dmn.Recipe, error) {
	var r dmn.Recipe

	idStr, ok := claims[claimMazeID].(string)
	if !ok {
		return uuid.Nil, r, errors.New("missing maze id")
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, r, err
	}

	rows, ok := claims[claimRows].(float64)
	if !ok {
		return uuid.Nil, r, errors.New("missing rows")
	}
	cols, ok := claims[claimCols].(float64)
	if !ok {
		return uuid.Nil, r, errors.New("missing cols")
	}

	algoStr, ok := claims[claimAlgorithm].(string)
	if !ok {
		return uuid.Nil, r, errors.New("missing algorithm")
	}
	algo, err := generator.Parse(algoStr)
	if err != nil {
		return uuid.Nil, r, err
	}

	seedStr, ok := claims[claimSeed].(string)
	if !ok {
		return uuid.Nil, r, errors.New("missing seed")
	}
	seed, err := strconv.ParseInt(seedStr, 10, 64)
	if err != nil {
		return uuid.Nil, r, err
	}

	r = dmn.Recipe{Rows: int(rows), Cols: int(cols), Algorithm: algo, Seed: seed}
	return id, r, nil
}
