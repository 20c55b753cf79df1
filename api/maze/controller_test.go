package mazeapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/beka-birhanu/vinom-maze/infrastruture/mazestore"
	"github.com/beka-birhanu/vinom-maze/infrastruture/token"
	"github.com/beka-birhanu/vinom-maze/logger"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/maze/generator"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l, err := logger.New("TEST", "", &bytes.Buffer{})
	require.NoError(t, err)
	tokenizer, err := token.NewJwtService("test-secret", "vinom-maze")
	require.NoError(t, err)
	svc, err := service.NewMazeService(&service.Config{
		Store:        mazestore.NewMemoryStore(60),
		Tokenizer:    tokenizer,
		Logger:       l,
		MaxDimension: 20,
	})
	require.NoError(t, err)

	mc, err := NewMazeController(svc, generator.Sidewinder)
	require.NoError(t, err)

	engine := gin.New()
	mc.RegisterPublic(engine.Group("/v1"))
	return engine
}

func do(t *testing.T, engine *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func createMaze(t *testing.T, engine *gin.Engine, body string) MazeResponse {
	t.Helper()
	w := do(t, engine, http.MethodPost, "/v1/mazes", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp MazeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestNewMazeController(t *testing.T) {
	_, err := NewMazeController(nil, generator.BinaryTree)
	assert.Error(t, err)
}

func TestCreateMaze(t *testing.T) {
	engine := newTestEngine(t)

	t.Run("Uses the default algorithm", func(t *testing.T) {
		resp := createMaze(t, engine, `{"rows":4,"cols":6,"seed":9}`)
		assert.NotEqual(t, uuid.Nil, resp.ID)
		assert.NotEmpty(t, resp.ShareToken)
		assert.Equal(t, "sidewinder", resp.Recipe.Algorithm)
		assert.Equal(t, int64(9), resp.Recipe.Seed)
		assert.Equal(t, 4, resp.Snapshot.Rows)
		assert.Equal(t, 6, resp.Snapshot.Cols)
		assert.Len(t, resp.Snapshot.Cells, 24)
		assert.False(t, resp.Snapshot.Solved)
	})

	t.Run("Accepts hyphenated algorithm names", func(t *testing.T) {
		resp := createMaze(t, engine, `{"rows":3,"cols":3,"algorithm":"hunt-and-kill","seed":2}`)
		assert.Equal(t, "hunt_and_kill", resp.Recipe.Algorithm)
	})

	t.Run("Rejects bad requests", func(t *testing.T) {
		for _, body := range []string{
			`{"rows":0,"cols":3}`,
			`{"rows":3}`,
			`{"rows":3,"cols":3,"algorithm":"prim"}`,
			`{"rows":21,"cols":3}`,
			`not json`,
		} {
			w := do(t, engine, http.MethodPost, "/v1/mazes", body)
			assert.Equal(t, http.StatusBadRequest, w.Code, body)
		}
	})
}

func TestGetMaze(t *testing.T) {
	engine := newTestEngine(t)
	created := createMaze(t, engine, `{"rows":5,"cols":5,"algorithm":"aldous_broder","seed":4}`)

	t.Run("Returns the stored snapshot", func(t *testing.T) {
		w := do(t, engine, http.MethodGet, "/v1/mazes/"+created.ID.String(), "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp MazeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, created.ID, resp.ID)
		assert.Equal(t, created.Snapshot, resp.Snapshot)
		assert.Empty(t, resp.ShareToken)
	})

	t.Run("Unknown id is not found", func(t *testing.T) {
		w := do(t, engine, http.MethodGet, "/v1/mazes/"+uuid.NewString(), "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Malformed id is a bad request", func(t *testing.T) {
		w := do(t, engine, http.MethodGet, "/v1/mazes/not-a-uuid", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestMazeText(t *testing.T) {
	engine := newTestEngine(t)
	created := createMaze(t, engine, `{"rows":3,"cols":4,"algorithm":"binary_tree","seed":1}`)

	w := do(t, engine, http.MethodGet, "/v1/mazes/"+created.ID.String()+"/text", "")
	require.Equal(t, http.StatusOK, w.Code)
	lines := strings.Split(strings.TrimSuffix(w.Body.String(), "\n"), "\n")
	assert.Len(t, lines, 7)
	assert.Equal(t, "+---+---+---+---+", lines[0])

	w = do(t, engine, http.MethodGet, "/v1/mazes/"+created.ID.String()+"/text?distances=true", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), " 0 ")
}

func TestSolution(t *testing.T) {
	engine := newTestEngine(t)
	created := createMaze(t, engine, `{"rows":4,"cols":4,"algorithm":"hunt_and_kill","seed":6}`)
	base := "/v1/mazes/" + created.ID.String()

	t.Run("Solves from the requested origin", func(t *testing.T) {
		w := do(t, engine, http.MethodGet, base+"/solution?row=2&col=1", "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp MazeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Snapshot.Solved)
		assert.Equal(t, maze.Location{Row: 2, Col: 1}, resp.Snapshot.Origin)
		assert.Equal(t, 0, resp.Snapshot.Cells[2*4+1].Distance)
	})

	t.Run("Stored maze stays unsolved", func(t *testing.T) {
		w := do(t, engine, http.MethodGet, base, "")
		var resp MazeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Snapshot.Solved)
	})

	t.Run("Rejects bad origins", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, do(t, engine, http.MethodGet, base+"/solution?row=9", "").Code)
		assert.Equal(t, http.StatusBadRequest, do(t, engine, http.MethodGet, base+"/solution?col=x", "").Code)
	})
}

func TestPath(t *testing.T) {
	engine := newTestEngine(t)
	created := createMaze(t, engine, `{"rows":6,"cols":6,"algorithm":"sidewinder","seed":8}`)
	base := "/v1/mazes/" + created.ID.String()

	t.Run("Defaults to corner to corner", func(t *testing.T) {
		w := do(t, engine, http.MethodGet, base+"/path", "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp PathResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotEmpty(t, resp.Path)
		assert.Equal(t, maze.Location{}, resp.Path[0])
		assert.Equal(t, maze.Location{Row: 5, Col: 5}, resp.Path[len(resp.Path)-1])
		for k := 1; k < len(resp.Path); k++ {
			dr := resp.Path[k].Row - resp.Path[k-1].Row
			dc := resp.Path[k].Col - resp.Path[k-1].Col
			assert.Equal(t, 1, dr*dr+dc*dc)
		}
	})

	t.Run("Honours explicit endpoints", func(t *testing.T) {
		w := do(t, engine, http.MethodGet, base+"/path?from_row=3&from_col=3&to_row=3&to_col=3", "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp PathResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, []maze.Location{{Row: 3, Col: 3}}, resp.Path)
	})

	t.Run("Out of bounds target is a bad request", func(t *testing.T) {
		w := do(t, engine, http.MethodGet, base+"/path?to_row=6&to_col=0", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSharedMaze(t *testing.T) {
	engine := newTestEngine(t)
	created := createMaze(t, engine, `{"rows":5,"cols":7,"algorithm":"aldous_broder","seed":31}`)

	w := do(t, engine, http.MethodGet, "/v1/shared-mazes/"+created.ShareToken, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp MazeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, created.ID, resp.ID)
	assert.Equal(t, created.Recipe, resp.Recipe)
	assert.Equal(t, created.Snapshot, resp.Snapshot)

	w = do(t, engine, http.MethodGet, "/v1/shared-mazes/garbage", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDeleteMaze(t *testing.T) {
	engine := newTestEngine(t)
	created := createMaze(t, engine, `{"rows":2,"cols":2,"seed":3}`)
	target := "/v1/mazes/" + created.ID.String()

	assert.Equal(t, http.StatusNoContent, do(t, engine, http.MethodDelete, target, "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, engine, http.MethodDelete, target, "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, engine, http.MethodGet, target, "").Code)
}

func TestAlgorithms(t *testing.T) {
	engine := newTestEngine(t)

	w := do(t, engine, http.MethodGet, "/v1/algorithms", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Algorithms []string `json:"algorithms"`
		Default    string   `json:"default"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"binary_tree", "sidewinder", "aldous_broder", "hunt_and_kill"}, resp.Algorithms)
	assert.Equal(t, "sidewinder", resp.Default)
}
