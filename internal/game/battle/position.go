package battle

import (
	"cmp"
	"fmt"
)

// Direction is one of the four orthogonal steps a unit can take.
//
// The numeric order North < West < East < South is the step tie-break order.
type Direction int

const (
	North Direction = iota
	West
	East
	South
)

// Directions lists every direction in tie-break order.
var Directions = [4]Direction{North, West, East, South}

// String returns the compass name of the direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case West:
		return "west"
	case East:
		return "east"
	case South:
		return "south"
	default:
		return "unknown"
	}
}

// Position is a (row, column) coordinate on the battlefield.
type Position struct {
	Row int
	Col int
}

// Compare orders positions in reading order: row first, then column.
//
// Postcondition: Returns -1, 0 or +1 like cmp.Compare.
func (p Position) Compare(o Position) int {
	if c := cmp.Compare(p.Row, o.Row); c != 0 {
		return c
	}
	return cmp.Compare(p.Col, o.Col)
}

// Less reports whether p comes before o in reading order.
func (p Position) Less(o Position) bool { return p.Compare(o) < 0 }

// Step returns the position one tile away in direction d.
func (p Position) Step(d Direction) Position {
	switch d {
	case North:
		return Position{Row: p.Row - 1, Col: p.Col}
	case West:
		return Position{Row: p.Row, Col: p.Col - 1}
	case East:
		return Position{Row: p.Row, Col: p.Col + 1}
	case South:
		return Position{Row: p.Row + 1, Col: p.Col}
	default:
		return p
	}
}

// Neighbors returns the four orthogonal neighbors in tie-break order.
func (p Position) Neighbors() [4]Position {
	var out [4]Position
	for i, d := range Directions {
		out[i] = p.Step(d)
	}
	return out
}

// Adjacent reports whether o is exactly one orthogonal step from p.
func (p Position) Adjacent(o Position) bool {
	dr, dc := p.Row-o.Row, p.Col-o.Col
	return dr*dr+dc*dc == 1
}

// String formats the position as "row,col".
func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.Row, p.Col)
}

// dirSet is a bit set of first-step directions.
type dirSet uint8

func (s dirSet) with(d Direction) dirSet { return s | 1<<uint(d) }

// min returns the lowest direction in s in tie-break order.
//
// Precondition: s is non-empty.
func (s dirSet) min() Direction {
	for _, d := range Directions {
		if s&(1<<uint(d)) != 0 {
			return d
		}
	}
	panic("battle: min of empty direction set")
}
