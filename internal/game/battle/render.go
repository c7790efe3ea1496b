package battle

import (
	"fmt"
	"strings"
)

// String renders the battlefield with living units, each row followed by its
// units' hit points, e.g. "#G.E#   G(200), E(197)".
func (b *Battle) String() string {
	var sb strings.Builder
	for r := 0; r < b.grid.Rows(); r++ {
		var annot []string
		for c := 0; c < b.grid.Cols(); c++ {
			p := Position{Row: r, Col: c}
			if u := b.unitAt(p); u != nil {
				sb.WriteByte(u.Team.Marker())
				annot = append(annot, fmt.Sprintf("%c(%d)", u.Team.Marker(), u.HitPoints))
				continue
			}
			if b.grid.Tile(p) == Wall {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		if len(annot) > 0 {
			sb.WriteString("   ")
			sb.WriteString(strings.Join(annot, ", "))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
