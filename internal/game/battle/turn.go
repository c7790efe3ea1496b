package battle

import "go.uber.org/zap"

// takeTurn moves u toward the nearest enemy unless one is already adjacent,
// then attacks.
//
// Precondition: u is alive and at least one enemy is alive.
// Postcondition: Returns true if u moved or attacked.
func (b *Battle) takeTurn(u *Unit) bool {
	moved := b.move(u)
	return b.attack(u) || moved
}

// move steps u one tile along its route, if it has one.
func (b *Battle) move(u *Unit) bool {
	r, ok := b.FindRoute(u)
	if !ok {
		return false
	}
	from := u.Pos
	u.Pos = u.Pos.Step(r.Step)
	b.logger.Debug("unit moved",
		zap.Int("round", b.Round),
		zap.Stringer("team", u.Team),
		zap.Stringer("from", from),
		zap.Stringer("to", u.Pos),
		zap.Stringer("target", r.Target),
		zap.Int("distance", r.Distance),
	)
	return true
}

// Target returns the adjacent living enemy u would attack: the one with the
// fewest hit points, ties broken by reading order.
//
// Postcondition: Returns nil when no enemy is adjacent.
func (b *Battle) Target(u *Unit) *Unit {
	var target *Unit
	enemy := u.Team.Opposite()
	for _, p := range u.Pos.Neighbors() {
		e := b.unitAt(p)
		if e == nil || e.Team != enemy {
			continue
		}
		if target == nil ||
			e.HitPoints < target.HitPoints ||
			(e.HitPoints == target.HitPoints && e.Pos.Less(target.Pos)) {
			target = e
		}
	}
	return target
}

// attack hits the selected adjacent enemy with u's attack power. A unit
// reduced to zero stays in the registry until the round ends.
func (b *Battle) attack(u *Unit) bool {
	target := b.Target(u)
	if target == nil {
		return false
	}
	target.TakeDamage(u.AttackPower)
	b.logger.Debug("unit attacked",
		zap.Int("round", b.Round),
		zap.Stringer("attacker", u),
		zap.Stringer("target", target),
		zap.Bool("killed", !target.Alive()),
	)
	return true
}
