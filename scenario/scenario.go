package scenario

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mazepath"
	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/search"
)

// Sentinel errors for scenario validation.
var (
	// ErrMissingGrid is returned when neither maze nor cells is given.
	ErrMissingGrid = errors.New("scenario: no grid given")

	// ErrAmbiguousGrid is returned when both maze and cells are given.
	ErrAmbiguousGrid = errors.New("scenario: maze and cells are mutually exclusive")

	// ErrBadCell reports a cell value other than 0/1, or a start/goal that
	// is missing or outside the grid.
	ErrBadCell = errors.New("scenario: invalid cell")

	// ErrBadDelay reports an unparsable or negative delay.
	ErrBadDelay = errors.New("scenario: invalid delay")

	// ErrNotFound is returned by Builtin for an unknown name.
	ErrNotFound = errors.New("scenario: not found")
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Scenario is the document form of a run, as read from YAML or JSON.
type Scenario struct {
	Name      string     `yaml:"name,omitempty" json:"name,omitempty"`
	Algorithm string     `yaml:"algorithm,omitempty" json:"algorithm,omitempty"`
	Speed     string     `yaml:"speed,omitempty" json:"speed,omitempty"`
	Delay     string     `yaml:"delay,omitempty" json:"delay,omitempty"`
	Start     *grid.Cell `yaml:"start,omitempty" json:"start,omitempty"`
	Goal      *grid.Cell `yaml:"goal,omitempty" json:"goal,omitempty"`
	Maze      []string   `yaml:"maze,omitempty" json:"maze,omitempty"`
	Cells     [][]int    `yaml:"cells,omitempty" json:"cells,omitempty"`
}

// Problem is a validated Scenario, ready to hand to mazepath.Run.
type Problem struct {
	Name      string
	Grid      *grid.Grid
	Start     grid.Cell
	Goal      grid.Cell
	Algorithm mazepath.Algorithm
	Delay     time.Duration
}

// Options returns the search options implied by the problem.
func (p *Problem) Options() []search.Option {
	return []search.Option{search.WithDelay(p.Delay)}
}

// Parse decodes a scenario document. JSON input is accepted as YAML.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}

	return &s, nil
}

// LoadFile reads and decodes the scenario at path.
func LoadFile(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Builtin returns one of the embedded scenarios by name.
func Builtin(name string) (*Scenario, error) {
	data, err := builtinFS.ReadFile("builtin/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrNotFound, name, strings.Join(Builtins(), ", "))
	}

	return Parse(data)
}

// Builtins lists the names of the embedded scenarios, sorted.
func Builtins() []string {
	entries, _ := builtinFS.ReadDir("builtin")
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if n, ok := strings.CutSuffix(e.Name(), ".yaml"); ok {
			names = append(names, n)
		}
	}
	sort.Strings(names)

	return names
}

// Sample returns the default 10×10 maze, start (0,0), goal (8,9).
func Sample() *Scenario {
	s, err := Builtin("sample")
	if err != nil {
		panic(err)
	}

	return s
}

// Marshal encodes s as YAML.
func (s *Scenario) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}

// Problem validates s and resolves it into a Problem.
func (s *Scenario) Problem() (*Problem, error) {
	p := &Problem{Name: s.Name}

	var start, goal *grid.Cell
	switch {
	case len(s.Maze) == 0 && len(s.Cells) == 0:
		return nil, ErrMissingGrid
	case len(s.Maze) > 0 && len(s.Cells) > 0:
		return nil, ErrAmbiguousGrid
	case len(s.Maze) > 0:
		l, err := grid.Parse(s.Maze)
		if err != nil {
			return nil, fmt.Errorf("scenario maze: %w", err)
		}
		p.Grid = l.Grid
		if l.HasStart {
			start = &l.Start
		}
		if l.HasGoal {
			goal = &l.Goal
		}
	default:
		for y, row := range s.Cells {
			for x, v := range row {
				if v != 0 && v != 1 {
					return nil, fmt.Errorf("%w: value %d at (%d,%d)", ErrBadCell, v, y, x)
				}
			}
		}
		g, err := grid.New(s.Cells)
		if err != nil {
			return nil, fmt.Errorf("scenario cells: %w", err)
		}
		p.Grid = g
	}

	if s.Start != nil {
		start = s.Start
	}
	if s.Goal != nil {
		goal = s.Goal
	}
	var err error
	if p.Start, err = endpoint(p.Grid, "start", start); err != nil {
		return nil, err
	}
	if p.Goal, err = endpoint(p.Grid, "goal", goal); err != nil {
		return nil, err
	}

	if p.Algorithm, err = mazepath.ParseAlgorithm(s.Algorithm); err != nil {
		return nil, err
	}
	if p.Delay, err = s.delay(); err != nil {
		return nil, err
	}

	return p, nil
}

// endpoint checks that c is present and inside g. Walls are allowed;
// the search reports those as no-path.
func endpoint(g *grid.Grid, what string, c *grid.Cell) (grid.Cell, error) {
	if c == nil {
		return grid.Cell{}, fmt.Errorf("%w: %s missing", ErrBadCell, what)
	}
	if !g.InBounds(*c) {
		return grid.Cell{}, fmt.Errorf("%w: %s %s outside %dx%d grid", ErrBadCell, what, *c, g.Height(), g.Width())
	}

	return *c, nil
}

func (s *Scenario) delay() (time.Duration, error) {
	if s.Delay == "" {
		return ParseSpeed(s.Speed)
	}
	d, err := time.ParseDuration(s.Delay)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBadDelay, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: %s is negative", ErrBadDelay, d)
	}

	return d, nil
}
