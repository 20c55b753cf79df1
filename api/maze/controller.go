package mazeapi

import (
	"errors"
	"net/http"
	"strconv"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/maze/generator"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MazeController serves maze generation, retrieval and solving.
type MazeController struct {
	mazeService      i.MazeService
	defaultAlgorithm generator.Algorithm
}

// NewMazeController initializes a MazeController. Requests that name no
// algorithm use defaultAlgorithm.
func NewMazeController(ms i.MazeService, defaultAlgorithm generator.Algorithm) (*MazeController, error) {
	if ms == nil {
		return nil, errors.New("maze service is required")
	}
	if !defaultAlgorithm.Valid() {
		return nil, generator.ErrUnknownAlgorithm
	}
	return &MazeController{
		mazeService:      ms,
		defaultAlgorithm: defaultAlgorithm,
	}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/algorithms", mc.algorithms)
	route.GET("/shared-mazes/:token", mc.shared)

	mazes := route.Group("/mazes")
	{
		mazes.POST("", mc.create)
		mazes.GET("/:ID", mc.get)
		mazes.GET("/:ID/text", mc.text)
		mazes.GET("/:ID/solution", mc.solution)
		mazes.GET("/:ID/path", mc.path)
		mazes.DELETE("/:ID", mc.delete)
	}
}

// algorithms lists the supported algorithm identifiers.
func (mc *MazeController) algorithms(ctx *gin.Context) {
	names := make([]string, 0, len(generator.Algorithms()))
	for _, a := range generator.Algorithms() {
		names = append(names, a.String())
	}
	ctx.JSON(http.StatusOK, gin.H{"algorithms": names, "default": mc.defaultAlgorithm.String()})
}

// create handles maze generation requests.
func (mc *MazeController) create(ctx *gin.Context) {
	var request CreateMazeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	algo := mc.defaultAlgorithm
	if request.Algorithm != "" {
		var err error
		if algo, err = generator.Parse(request.Algorithm); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	record, err := mc.mazeService.Create(ctx, dmn.Recipe{
		Rows:      request.Rows,
		Cols:      request.Cols,
		Algorithm: algo,
		Seed:      request.Seed,
	})
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	token, err := mc.mazeService.ShareToken(record)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, toMazeResponse(record, record.Grid, token))
}

// get returns the snapshot of a stored maze.
func (mc *MazeController) get(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	record, err := mc.mazeService.Get(ctx, id)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toMazeResponse(record, record.Grid, ""))
}

// text returns the ASCII dump of a stored maze. With ?distances=true the
// maze is solved from the given origin and cell bodies show distances.
func (mc *MazeController) text(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if ctx.Query("distances") != "true" {
		record, err := mc.mazeService.Get(ctx, id)
		if err != nil {
			abortWithError(ctx, err)
			return
		}
		ctx.String(http.StatusOK, record.Grid.String())
		return
	}

	origin, ok := parseLocation(ctx, "row", "col")
	if !ok {
		return
	}
	solved, err := mc.mazeService.Solve(ctx, id, origin)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.String(http.StatusOK, solved.DistanceString())
}

// solution returns the maze with distances from ?row=&col= (default 0,0).
func (mc *MazeController) solution(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	origin, ok := parseLocation(ctx, "row", "col")
	if !ok {
		return
	}

	record, err := mc.mazeService.Get(ctx, id)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	solved, err := mc.mazeService.Solve(ctx, id, origin)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toMazeResponse(record, solved, ""))
}

// path returns the route from ?from_row=&from_col= (default 0,0) to
// ?to_row=&to_col= (default the south-east corner).
func (mc *MazeController) path(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	record, err := mc.mazeService.Get(ctx, id)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	from, ok := parseLocation(ctx, "from_row", "from_col")
	if !ok {
		return
	}
	to := maze.Location{Row: record.Recipe.Rows - 1, Col: record.Recipe.Cols - 1}
	if ctx.Query("to_row") != "" || ctx.Query("to_col") != "" {
		if to, ok = parseLocation(ctx, "to_row", "to_col"); !ok {
			return
		}
	}

	path, err := mc.mazeService.Path(ctx, id, from, to)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, PathResponse{From: from, To: to, Path: path})
}

// shared regenerates a maze from its share token.
func (mc *MazeController) shared(ctx *gin.Context) {
	record, err := mc.mazeService.FromToken(ctx, ctx.Param("token"))
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toMazeResponse(record, record.Grid, ctx.Param("token")))
}

// delete removes a stored maze.
func (mc *MazeController) delete(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	if err := mc.mazeService.Delete(ctx, id); err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func parseID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return uuid.Nil, false
	}
	return id, true
}

// parseLocation reads a location from two optional integer query
// parameters; a missing parameter counts as zero.
func parseLocation(ctx *gin.Context, rowKey, colKey string) (maze.Location, bool) {
	row, err := strconv.Atoi(ctx.DefaultQuery(rowKey, "0"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + rowKey})
		return maze.Location{}, false
	}
	col, err := strconv.Atoi(ctx.DefaultQuery(colKey, "0"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + colKey})
		return maze.Location{}, false
	}
	return maze.Location{Row: row, Col: col}, true
}

func abortWithError(ctx *gin.Context, err error) {
	ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, dmn.ErrMazeNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidShareToken):
		return http.StatusUnauthorized
	case errors.Is(err, maze.ErrInvalidDimensions),
		errors.Is(err, maze.ErrInvalidOrigin),
		errors.Is(err, service.ErrDimensionTooLarge),
		errors.Is(err, generator.ErrUnknownAlgorithm):
		return http.StatusBadRequest
	case errors.Is(err, maze.ErrUnreachable):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func toMazeResponse(record *dmn.MazeRecord, grid *maze.Grid, token string) *MazeResponse {
	return &MazeResponse{
		ID:         record.ID,
		ShareToken: token,
		Recipe: RecipeResponse{
			Rows:      record.Recipe.Rows,
			Cols:      record.Recipe.Cols,
			Algorithm: record.Recipe.Algorithm.String(),
			Seed:      record.Recipe.Seed,
		},
		CreatedAt: record.CreatedAt,
		Snapshot:  grid.Snapshot(),
	}
}
