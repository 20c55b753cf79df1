// Package generator carves perfect mazes into a freshly built maze.Grid.
//
// Four algorithms are provided: binary tree, sidewinder, Aldous-Broder and
// hunt-and-kill. Each draws from an explicit *rand.Rand so that a maze is
// reproducible from its seed.
package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/beka-birhanu/vinom-maze/maze"
)

var (
	// ErrUnknownAlgorithm indicates an unrecognized algorithm identifier.
	ErrUnknownAlgorithm = errors.New("generator: unknown algorithm")
	// ErrGridNotEmpty indicates the grid already carries links.
	ErrGridNotEmpty = errors.New("generator: grid must be unlinked")
)

// Algorithm selects a generation strategy.
type Algorithm int

const (
	BinaryTree Algorithm = iota
	Sidewinder
	AldousBroder
	HuntAndKill
)

var algorithmNames = [...]string{
	BinaryTree:   "binary_tree",
	Sidewinder:   "sidewinder",
	AldousBroder: "aldous_broder",
	HuntAndKill:  "hunt_and_kill",
}

// Algorithms lists every supported algorithm.
func Algorithms() []Algorithm {
	return []Algorithm{BinaryTree, Sidewinder, AldousBroder, HuntAndKill}
}

// Valid reports whether a is one of the supported algorithms.
func (a Algorithm) Valid() bool {
	return a >= BinaryTree && a <= HuntAndKill
}

// String returns the identifier used by Parse.
func (a Algorithm) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// Parse maps an identifier such as "hunt_and_kill" or "Hunt-And-Kill" to
// its Algorithm.
func Parse(s string) (Algorithm, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for a, n := range algorithmNames {
		if n == name {
			return Algorithm(a), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// NewRand returns a random source for seed. A seed that is not positive is
// replaced with one based on the current time; the seed actually used is
// returned so the maze can be regenerated.
func NewRand(seed int64) (*rand.Rand, int64) {
	if seed <= 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}

// Generate carves g with algo. The algorithm and the grid are validated
// before any link is added. A nil rng is replaced with a time-seeded one.
func Generate(g *maze.Grid, algo Algorithm, rng *rand.Rand) error {
	if !algo.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(algo))
	}
	if g.LinkCount() > 0 {
		return ErrGridNotEmpty
	}
	if rng == nil {
		rng, _ = NewRand(0)
	}

	switch algo {
	case BinaryTree:
		GenerateBinaryTree(g, rng)
	case Sidewinder:
		GenerateSidewinder(g, rng)
	case AldousBroder:
		GenerateAldousBroder(g, rng)
	case HuntAndKill:
		GenerateHuntAndKill(g, rng)
	}
	return nil
}

// randomLocation picks a cell uniformly.
func randomLocation(g *maze.Grid, rng *rand.Rand) maze.Location {
	return maze.Location{Row: rng.Intn(g.Rows()), Col: rng.Intn(g.Cols())}
}

// mustNeighbor returns the neighbor of loc on side d. Callers only ask for
// sides they have already checked, so a missing neighbor is a defect.
func mustNeighbor(g *maze.Grid, loc maze.Location, d maze.Direction) maze.Location {
	n, ok := g.NeighborOf(loc, d)
	if !ok {
		panic(fmt.Sprintf("generator: %v has no %v neighbor", loc, d))
	}
	return n
}

// filter keeps the locations for which keep returns true.
func filter(locs []maze.Location, keep func(maze.Location) bool) []maze.Location {
	result := locs[:0:0]
	for _, l := range locs {
		if keep(l) {
			result = append(result, l)
		}
	}
	return result
}
