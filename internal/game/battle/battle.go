// Package battle simulates the elf and goblin grid fight: breadth-first
// movement with reading-order tie-breaks, turn-based attacks in rounds, and
// a search for the smallest elf attack power that wins without losses.
package battle

import (
	"errors"
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// DefaultHitPoints is the starting hit points of every unit.
	DefaultHitPoints = 200
	// DefaultAttackPower is the attack power of every unit unless overridden.
	DefaultAttackPower = 3
)

// ErrStalemate is returned by Run when a full round passes without any unit
// moving or attacking, so the battle can never be decided.
var ErrStalemate = errors.New("battle: stalemate, no unit can move or attack")

// State is the battle state machine position.
type State int

const (
	// Running means the battle has not been decided.
	Running State = iota
	// Decided means one team has no living units left.
	Decided
	// Aborted means the casualty guard was breached.
	Aborted
)

// String returns a human-readable state label.
func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Decided:
		return "decided"
	case Aborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Stats are the starting values given to every unit.
type Stats struct {
	HitPoints   int
	AttackPower int
}

// DefaultStats returns the standard unit stats.
func DefaultStats() Stats {
	return Stats{HitPoints: DefaultHitPoints, AttackPower: DefaultAttackPower}
}

type settings struct {
	stats  Stats
	power  map[Team]int
	guard  *Team
	logger *zap.Logger
}

// Option configures a Battle built by Layout.NewBattle.
type Option func(*settings)

// WithStats overrides the starting stats of every unit.
//
// Precondition: HitPoints >= 1 and AttackPower >= 1.
func WithStats(s Stats) Option {
	return func(o *settings) { o.stats = s }
}

// WithTeamPower overrides the attack power of every unit of team t.
//
// Precondition: power >= 1.
func WithTeamPower(t Team, power int) Option {
	return func(o *settings) { o.power[t] = power }
}

// WithCasualtyGuard aborts the battle as soon as a round ends with a dead
// member of team t, or victory is reached in a round where one died.
func WithCasualtyGuard(t Team) Option {
	return func(o *settings) {
		g := t
		o.guard = &g
	}
}

// WithLogger sets the logger used for turn, round and outcome events.
func WithLogger(l *zap.Logger) Option {
	return func(o *settings) { o.logger = l }
}

// Battle is one simulation run. It owns its Units exclusively.
//
// Invariant: between rounds, Units holds only living units in reading order.
type Battle struct {
	// ID distinguishes this run in logs.
	ID string
	// Round counts completed rounds.
	Round int
	// Units is the unit registry in turn order for the current round.
	Units []*Unit

	grid   *Grid
	state  State
	winner Team
	guard  *Team
	logger *zap.Logger
}

// NewBattle builds a fresh, independent battle from the layout.
//
// Postcondition: Round == 0, state is Running, each spawn has a new Unit.
func (l *Layout) NewBattle(opts ...Option) *Battle {
	s := settings{
		stats:  DefaultStats(),
		power:  make(map[Team]int),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&s)
	}

	units := make([]*Unit, 0, len(l.spawns))
	for _, sp := range l.spawns {
		power := s.stats.AttackPower
		if p, ok := s.power[sp.Team]; ok {
			power = p
		}
		units = append(units, &Unit{
			Team:        sp.Team,
			Pos:         sp.Pos,
			HitPoints:   s.stats.HitPoints,
			AttackPower: power,
		})
	}

	b := &Battle{
		ID:    uuid.NewString(),
		Units: units,
		grid:  l.grid,
		state: Running,
		guard: s.guard,
	}
	b.logger = s.logger.With(zap.String("battle_id", b.ID))
	b.sortUnits()
	return b
}

// State returns the current state.
func (b *Battle) State() State { return b.state }

// Winner returns the winning team and whether the battle is decided.
func (b *Battle) Winner() (Team, bool) {
	return b.winner, b.state == Decided
}

// Grid returns the battlefield terrain.
func (b *Battle) Grid() *Grid { return b.grid }

// Living returns the number of living units of team t.
func (b *Battle) Living(t Team) int {
	n := 0
	for _, u := range b.Units {
		if u.Alive() && u.Team == t {
			n++
		}
	}
	return n
}

// TotalHitPoints sums the hit points of all living units.
func (b *Battle) TotalHitPoints() int {
	total := 0
	for _, u := range b.Units {
		if u.Alive() {
			total += u.HitPoints
		}
	}
	return total
}

// Outcome summarizes a battle after Run.
type Outcome struct {
	BattleID string
	State    State
	// Winner is meaningful only when State is Decided.
	Winner    Team
	Rounds    int
	HitPoints int
	Survivors map[Team]int
}

// Score returns completed rounds times remaining hit points.
func (o Outcome) Score() int { return o.Rounds * o.HitPoints }

// Outcome snapshots the current battle result.
func (b *Battle) Outcome() Outcome {
	survivors := make(map[Team]int, len(Teams))
	for _, t := range Teams {
		survivors[t] = b.Living(t)
	}
	return Outcome{
		BattleID:  b.ID,
		State:     b.state,
		Winner:    b.winner,
		Rounds:    b.Round,
		HitPoints: b.TotalHitPoints(),
		Survivors: survivors,
	}
}

// PlayRound runs one round: each unit, in the order the round started with,
// takes its turn against the live state left by earlier turns. The round is
// counted only if every unit got its turn.
//
// Postcondition: Returns the resulting state. ErrStalemate is returned when
// nothing moved or attacked during the round; the state stays Running.
func (b *Battle) PlayRound() (State, error) {
	if b.state != Running {
		return b.state, nil
	}

	for _, t := range Teams {
		if b.Living(t) == 0 {
			b.decide(t.Opposite())
			return b.state, nil
		}
	}

	acted := false
	for _, u := range b.Units {
		// Victory is checked at every turn slot, including those of units
		// that died earlier in the round.
		if !b.hasEnemies(u) {
			b.decide(u.Team)
			return b.state, nil
		}
		if !u.Alive() {
			continue
		}
		if b.takeTurn(u) {
			acted = true
		}
	}

	if b.guardBreached() {
		b.abort()
		return b.state, nil
	}

	b.Units = slices.DeleteFunc(b.Units, func(u *Unit) bool { return !u.Alive() })
	b.sortUnits()
	b.Round++

	if ce := b.logger.Check(zap.DebugLevel, "round complete"); ce != nil {
		ce.Write(
			zap.Int("round", b.Round),
			zap.Int("units", len(b.Units)),
			zap.String("map", "\n"+b.String()),
		)
	}

	if !acted {
		return b.state, ErrStalemate
	}
	return b.state, nil
}

// Run plays rounds until the battle is decided or aborted.
//
// Postcondition: Returns the final Outcome, or ErrStalemate with the outcome so far.
func (b *Battle) Run() (Outcome, error) {
	for b.state == Running {
		if _, err := b.PlayRound(); err != nil {
			b.logger.Warn("battle stalled", zap.Int("round", b.Round), zap.Error(err))
			return b.Outcome(), err
		}
	}
	out := b.Outcome()
	b.logger.Debug("battle over",
		zap.Stringer("state", out.State),
		zap.Stringer("winner", out.Winner),
		zap.Int("rounds", out.Rounds),
		zap.Int("hit_points", out.HitPoints),
	)
	return out, nil
}

func (b *Battle) decide(winner Team) {
	if b.guardBreached() {
		b.abort()
		return
	}
	b.state = Decided
	b.winner = winner
}

func (b *Battle) abort() {
	b.state = Aborted
	b.logger.Debug("casualty guard breached",
		zap.Stringer("team", *b.guard),
		zap.Int("round", b.Round),
	)
}

// guardBreached reports whether the guarded team has a dead unit still in
// the registry. Dead units survive only until the end of the round they die in.
func (b *Battle) guardBreached() bool {
	if b.guard == nil {
		return false
	}
	for _, u := range b.Units {
		if u.Team == *b.guard && !u.Alive() {
			return true
		}
	}
	return false
}

func (b *Battle) hasEnemies(u *Unit) bool {
	return b.Living(u.Team.Opposite()) > 0
}

func (b *Battle) sortUnits() {
	slices.SortStableFunc(b.Units, func(x, y *Unit) int { return x.Pos.Compare(y.Pos) })
}
