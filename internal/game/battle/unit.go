package battle

import "fmt"

// Team identifies which side of the fight a unit belongs to.
type Team int

const (
	Elves Team = iota
	Goblins
)

// Teams lists both teams.
var Teams = [2]Team{Elves, Goblins}

// Opposite returns the enemy team.
func (t Team) Opposite() Team {
	if t == Elves {
		return Goblins
	}
	return Elves
}

// Marker returns the layout character for the team.
func (t Team) Marker() byte {
	if t == Elves {
		return 'E'
	}
	return 'G'
}

// String returns the plural team name.
func (t Team) String() string {
	switch t {
	case Elves:
		return "elves"
	case Goblins:
		return "goblins"
	default:
		return "unknown"
	}
}

// ParseTeam maps a team name or layout marker to a Team.
//
// Postcondition: Returns a Team or a non-nil error for unknown names.
func ParseTeam(s string) (Team, error) {
	switch s {
	case "elves", "elf", "E":
		return Elves, nil
	case "goblins", "goblin", "G":
		return Goblins, nil
	default:
		return 0, fmt.Errorf("unknown team %q", s)
	}
}

func teamForMarker(c byte) (Team, bool) {
	switch c {
	case 'E':
		return Elves, true
	case 'G':
		return Goblins, true
	default:
		return 0, false
	}
}

// Unit is one combatant on the battlefield.
type Unit struct {
	Team        Team
	Pos         Position
	HitPoints   int
	AttackPower int
}

// Alive reports whether the unit still has hit points.
func (u *Unit) Alive() bool { return u.HitPoints > 0 }

// TakeDamage reduces HitPoints by amount, flooring at zero.
//
// Precondition: amount must be >= 0.
// Postcondition: HitPoints >= 0.
func (u *Unit) TakeDamage(amount int) {
	u.HitPoints -= amount
	if u.HitPoints < 0 {
		u.HitPoints = 0
	}
}

func (u *Unit) String() string {
	return fmt.Sprintf("%c(%d)@%s", u.Team.Marker(), u.HitPoints, u.Pos)
}
