package battle

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrNoWinningPower is returned by TunePower when no attack power up to the
// bound gives the team a win without losses.
var ErrNoWinningPower = errors.New("battle: no winning attack power found")

// Tuning is the result of a successful power search.
type Tuning struct {
	// Power is the smallest attack power that won cleanly.
	Power int
	// Trials is the number of battles simulated.
	Trials int
	// Outcome is the result of the winning battle.
	Outcome Outcome
}

// TunePower finds the smallest attack power above the base attack power for
// which team wins with zero casualties. Each trial is a fresh battle built
// from the layout with opts, the team's power override and a casualty guard.
//
// maxPower is the last power tried.
//
// Postcondition: Returns a Tuning whose Outcome is Decided for team, or an
// error wrapping ErrNoWinningPower.
func (l *Layout) TunePower(team Team, maxPower int, opts ...Option) (Tuning, error) {
	s := settings{stats: DefaultStats(), power: make(map[Team]int), logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&s)
	}
	logger := s.logger.With(zap.Stringer("team", team))

	trials := 0
	for power := s.stats.AttackPower + 1; power <= maxPower; power++ {
		trials++
		trialOpts := append(opts[:len(opts):len(opts)], WithTeamPower(team, power), WithCasualtyGuard(team))
		b := l.NewBattle(trialOpts...)
		out, err := b.Run()
		if err != nil && !errors.Is(err, ErrStalemate) {
			return Tuning{}, fmt.Errorf("trial at power %d: %w", power, err)
		}

		won := err == nil && out.State == Decided && out.Winner == team
		logger.Info("tuning trial",
			zap.String("battle_id", out.BattleID),
			zap.Int("power", power),
			zap.Stringer("state", out.State),
			zap.Int("rounds", out.Rounds),
			zap.Bool("won", won),
		)
		if won {
			return Tuning{Power: power, Trials: trials, Outcome: out}, nil
		}
	}

	return Tuning{}, fmt.Errorf("%w: %s lost or took casualties at every power up to %d", ErrNoWinningPower, team, maxPower)
}
