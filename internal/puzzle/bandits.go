package puzzle

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/cory-johannsen/advent/internal/game/battle"
)

// BanditsDay is the day of the elf and goblin battle.
const BanditsDay = 15

// Bandits solves the elf and goblin battle. Part one scores the battle at
// default stats; part two scores the battle won by the weakest elf attack
// power that loses no elves.
type Bandits struct {
	Stats    battle.Stats
	MaxPower int
	Logger   *zap.Logger
}

// Solve parses input as a battlefield and returns the score as text.
func (s *Bandits) Solve(part Part, input string) (string, error) {
	layout, err := battle.ParseLayout(input)
	if err != nil {
		return "", err
	}
	logger := s.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	opts := []battle.Option{battle.WithStats(s.Stats), battle.WithLogger(logger)}

	switch part {
	case PartOne:
		out, err := layout.NewBattle(opts...).Run()
		if err != nil {
			return "", err
		}
		logger.Info("battle decided",
			zap.Stringer("winner", out.Winner),
			zap.Int("rounds", out.Rounds),
			zap.Int("hit_points", out.HitPoints),
		)
		return strconv.Itoa(out.Score()), nil
	case PartTwo:
		tuning, err := layout.TunePower(battle.Elves, s.MaxPower, opts...)
		if err != nil {
			return "", err
		}
		logger.Info("elf power tuned",
			zap.Int("power", tuning.Power),
			zap.Int("trials", tuning.Trials),
			zap.Int("rounds", tuning.Outcome.Rounds),
			zap.Int("hit_points", tuning.Outcome.HitPoints),
		)
		return strconv.Itoa(tuning.Outcome.Score()), nil
	default:
		return "", fmt.Errorf("unknown part %d", part)
	}
}

// DefaultEntries returns every implemented day.
func DefaultEntries(stats battle.Stats, maxPower int, logger *zap.Logger) []Entry {
	return []Entry{
		{
			Day:    BanditsDay,
			Title:  "Beverage Bandits",
			Solver: &Bandits{Stats: stats, MaxPower: maxPower, Logger: logger.Named("bandits")},
		},
	}
}
