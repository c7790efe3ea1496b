package battle

// Route is the pathfinder's answer for one moving unit.
type Route struct {
	// Target is the chosen in-range tile.
	Target Position
	// Step is the first move toward Target.
	Step Direction
	// Distance is the number of steps to Target.
	Distance int
	// Path lists the tiles from the first step to Target inclusive.
	Path []Position
}

// node is one arena entry of the breadth-first search.
type node struct {
	pos Position
	// parent indexes the first node of the previous layer that reached pos; -1 for the root.
	parent int
	// first holds the first-step directions of every shortest path to pos.
	first   dirSet
	inRange bool
}

// FindRoute searches breadth-first from u for the nearest open tile adjacent
// to a living enemy. Walls and tiles held by living units are never entered.
// Among in-range tiles at the minimal distance the reading-order first wins;
// among shortest paths to it, the first step lowest in North, West, East,
// South order wins.
//
// Postcondition: Returns (route, true) when a move is needed and possible, or
// (Route{}, false) when u has no reachable target or is already in range.
func (b *Battle) FindRoute(u *Unit) (Route, bool) {
	enemy := u.Team.Opposite()
	if b.inRange(u.Pos, enemy) {
		return Route{}, false
	}

	arena := []node{{pos: u.Pos, parent: -1}}
	depthOf := map[Position]int{u.Pos: 0}
	index := map[Position]int{}
	layer := []int{0}

	for depth := 1; len(layer) > 0; depth++ {
		var next []int
		found := false
		for _, pi := range layer {
			parent := arena[pi]
			for _, d := range Directions {
				pos := parent.pos.Step(d)
				if !b.passable(pos) {
					continue
				}
				first := parent.first
				if depth == 1 {
					first = dirSet(0).with(d)
				}
				if seen, ok := depthOf[pos]; ok {
					if seen == depth {
						// Tied path at the same depth: keep its first steps.
						i := index[pos]
						arena[i].first |= first
					}
					continue
				}
				depthOf[pos] = depth
				index[pos] = len(arena)
				in := b.inRange(pos, enemy)
				if in {
					found = true
				}
				next = append(next, len(arena))
				arena = append(arena, node{pos: pos, parent: pi, first: first, inRange: in})
			}
		}

		if found {
			return route(arena, next, depth), true
		}
		layer = next
	}
	return Route{}, false
}

// route picks the target among the in-range nodes of the final layer and
// traces its parent chain back to the root.
func route(arena []node, last []int, depth int) Route {
	target := -1
	for _, i := range last {
		if !arena[i].inRange {
			continue
		}
		if target < 0 || arena[i].pos.Less(arena[target].pos) {
			target = i
		}
	}

	t := arena[target]
	step := t.first.min()

	path := make([]Position, depth)
	for i, k := target, depth-1; k >= 0; i, k = arena[i].parent, k-1 {
		path[k] = arena[i].pos
	}

	return Route{Target: t.pos, Step: step, Distance: depth, Path: path}
}

// passable reports whether a unit may step onto p.
func (b *Battle) passable(p Position) bool {
	return b.grid.Open(p) && b.unitAt(p) == nil
}

// inRange reports whether p is orthogonally adjacent to a living unit of team t.
func (b *Battle) inRange(p Position, t Team) bool {
	for _, u := range b.Units {
		if u.Alive() && u.Team == t && u.Pos.Adjacent(p) {
			return true
		}
	}
	return false
}

// unitAt returns the living unit standing on p, or nil.
func (b *Battle) unitAt(p Position) *Unit {
	for _, u := range b.Units {
		if u.Alive() && u.Pos == p {
			return u
		}
	}
	return nil
}
