package puzzle

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/advent/internal/game/scenario"
)

// MismatchError reports a sample whose answer differs from the expected one.
type MismatchError struct {
	Sample string
	Got    string
	Want   string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("sample %q: got %s, want %s", e.Sample, e.Got, e.Want)
}

// VerifySamples solves every sample of day and part and compares answers.
//
// Postcondition: Returns the number of samples checked, and a *MismatchError
// or solver error for the first failing sample.
func (r *Registry) VerifySamples(cat *scenario.Catalog, day int, part Part, logger *zap.Logger) (int, error) {
	samples := cat.For(day, int(part))
	for _, s := range samples {
		got, err := r.Solve(day, part, s.Input)
		if err != nil {
			return 0, fmt.Errorf("sample %q: %w", s.Name, err)
		}
		if got != s.Want {
			return 0, &MismatchError{Sample: s.Name, Got: got, Want: s.Want}
		}
		logger.Debug("sample ok", zap.String("sample", s.Name), zap.String("answer", got))
	}
	return len(samples), nil
}
