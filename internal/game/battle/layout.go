package battle

import (
	"fmt"
	"strings"
)

// Tile is the static terrain at one position.
type Tile int

const (
	Open Tile = iota
	Wall
)

// Grid is the immutable terrain of a battlefield.
//
// Invariant: every row has width Cols.
type Grid struct {
	tiles [][]Tile
	rows  int
	cols  int
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Tile returns the terrain at p. Positions outside the grid are walls.
func (g *Grid) Tile(p Position) Tile {
	if p.Row < 0 || p.Row >= g.rows || p.Col < 0 || p.Col >= g.cols {
		return Wall
	}
	return g.tiles[p.Row][p.Col]
}

// Open reports whether p is open floor inside the grid.
func (g *Grid) Open(p Position) bool { return g.Tile(p) == Open }

// Spawn is a unit starting point recorded at parse time.
type Spawn struct {
	Team Team
	Pos  Position
}

// Layout is a parsed battlefield: terrain plus starting units in reading order.
// A Layout is never mutated; every battle built from it starts from the same state.
type Layout struct {
	grid   *Grid
	spawns []Spawn
}

// Grid returns the layout terrain.
func (l *Layout) Grid() *Grid { return l.grid }

// Spawns returns a copy of the starting units in reading order.
func (l *Layout) Spawns() []Spawn {
	out := make([]Spawn, len(l.spawns))
	copy(out, l.spawns)
	return out
}

// Count returns the number of starting units of team t.
func (l *Layout) Count(t Team) int {
	n := 0
	for _, s := range l.spawns {
		if s.Team == t {
			n++
		}
	}
	return n
}

// ParseError describes malformed layout text.
type ParseError struct {
	// Line and Column are 1-based; Column is 0 for whole-line errors.
	Line   int
	Column int
	Msg    string
}

func (e *ParseError) Error() string {
	if e.Column > 0 {
		return fmt.Sprintf("layout line %d column %d: %s", e.Line, e.Column, e.Msg)
	}
	return fmt.Sprintf("layout line %d: %s", e.Line, e.Msg)
}

// ParseLayout parses a textual battlefield. '#' is wall, '.' is open floor,
// 'E' and 'G' are elf and goblin units standing on open floor. Trailing
// carriage returns and a trailing blank line are ignored.
//
// Postcondition: Returns a rectangular Layout or a *ParseError.
func ParseLayout(text string) (*Layout, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, &ParseError{Line: 1, Msg: "empty layout"}
	}

	cols := len(lines[0])
	grid := &Grid{tiles: make([][]Tile, len(lines)), rows: len(lines), cols: cols}
	var spawns []Spawn
	for r, line := range lines {
		if len(line) != cols {
			return nil, &ParseError{
				Line: r + 1,
				Msg:  fmt.Sprintf("row width %d differs from first row width %d", len(line), cols),
			}
		}
		row := make([]Tile, cols)
		for c := 0; c < cols; c++ {
			ch := line[c]
			switch ch {
			case '#':
				row[c] = Wall
			case '.':
				row[c] = Open
			default:
				team, ok := teamForMarker(ch)
				if !ok {
					return nil, &ParseError{Line: r + 1, Column: c + 1, Msg: fmt.Sprintf("invalid character %q", ch)}
				}
				row[c] = Open
				spawns = append(spawns, Spawn{Team: team, Pos: Position{Row: r, Col: c}})
			}
		}
		grid.tiles[r] = row
	}

	return &Layout{grid: grid, spawns: spawns}, nil
}
