package simulation

import (
	"errors"
	"fmt"
	"math"

	"github.com/abhisek/crittersort/internal/dataset"
	"github.com/abhisek/crittersort/internal/stacking"
)

// ErrInvalidConfig wraps every Config.Validate failure.
var ErrInvalidConfig = errors.New("invalid simulation config")

// ScoreSet selects which points the scoreboard counts when the stack cap
// drops overflow critters from the layout.
type ScoreSet int

const (
	// ScoreFull scores every generated point, including overflow.
	ScoreFull ScoreSet = iota
	// ScoreKept scores only points that made it into the layout.
	ScoreKept
)

func (s ScoreSet) String() string {
	switch s {
	case ScoreFull:
		return "full"
	case ScoreKept:
		return "kept"
	default:
		return fmt.Sprintf("ScoreSet(%d)", int(s))
	}
}

// ParseScoreSet converts a flag value into a ScoreSet.
func ParseScoreSet(s string) (ScoreSet, error) {
	switch s {
	case "full":
		return ScoreFull, nil
	case "kept":
		return ScoreKept, nil
	default:
		return 0, fmt.Errorf("%w: unknown score set %q (want full or kept)", ErrInvalidConfig, s)
	}
}

// Params are the per-class generation parameters.
type Params struct {
	A dataset.ClassParams
	B dataset.ClassParams
}

// Config holds the behavioral knobs of the engine. It is fixed for the
// lifetime of an Engine.
type Config struct {
	Domain         dataset.Domain
	MaxStackHeight int
	ScoreSet       ScoreSet
	Rounding       dataset.Rounding
	TieBreak       stacking.TieBreak

	// StepSize is the optimizer's threshold increment.
	StepSize float64

	DefaultParams    Params
	DefaultThreshold float64
}

const (
	defaultDomainHi       = 30
	defaultMaxStackHeight = 12
	defaultCountPerClass  = 50
	defaultSpread         = 3
)

// DefaultConfig returns the classic setup: 30 integer columns, stacks
// capped at 12, 50 critters per class centered at the quartiles.
func DefaultConfig() Config {
	hi := float64(defaultDomainHi)
	return Config{
		Domain:         dataset.Domain{Lo: 0, Hi: hi},
		MaxStackHeight: defaultMaxStackHeight,
		ScoreSet:       ScoreFull,
		Rounding:       dataset.RoundInteger,
		TieBreak:       stacking.TieBreakInput,
		StepSize:       1,
		DefaultParams: Params{
			A: dataset.ClassParams{Center: math.Floor(hi * 0.25), Spread: defaultSpread, Count: defaultCountPerClass},
			B: dataset.ClassParams{Center: math.Floor(hi * 0.75), Spread: defaultSpread, Count: defaultCountPerClass},
		},
		DefaultThreshold: math.Floor(hi * 0.5),
	}
}

// Validate fails fast on configurations the engine cannot honor.
func (c Config) Validate() error {
	if err := c.Domain.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.MaxStackHeight <= 0 {
		return fmt.Errorf("%w: max stack height must be positive, got %d", ErrInvalidConfig, c.MaxStackHeight)
	}
	if c.StepSize <= 0 || math.IsNaN(c.StepSize) || math.IsInf(c.StepSize, 0) {
		return fmt.Errorf("%w: step size must be positive and finite, got %g", ErrInvalidConfig, c.StepSize)
	}
	if math.IsNaN(c.DefaultThreshold) || math.IsInf(c.DefaultThreshold, 0) {
		return fmt.Errorf("%w: default threshold must be finite, got %g", ErrInvalidConfig, c.DefaultThreshold)
	}
	if c.ScoreSet != ScoreFull && c.ScoreSet != ScoreKept {
		return fmt.Errorf("%w: unknown score set %d", ErrInvalidConfig, int(c.ScoreSet))
	}
	if err := c.DefaultParams.A.Validate(); err != nil {
		return fmt.Errorf("%w: class A: %w", ErrInvalidConfig, err)
	}
	if err := c.DefaultParams.B.Validate(); err != nil {
		return fmt.Errorf("%w: class B: %w", ErrInvalidConfig, err)
	}
	return nil
}

// DomainForWidth derives an integer domain from the available rendering
// width and the size of one unit. At least one unit is always available.
func DomainForWidth(width, unit int) dataset.Domain {
	if unit <= 0 {
		unit = 1
	}
	n := width / unit
	if n < 1 {
		n = 1
	}
	return dataset.Domain{Lo: 0, Hi: float64(n)}
}

// WithDomain returns c rescaled to d: class centers move to the quartiles
// and the default threshold to the midpoint, as in DefaultConfig.
func (c Config) WithDomain(d dataset.Domain) Config {
	w := d.Width()
	c.Domain = d
	c.DefaultParams.A.Center = d.Lo + math.Floor(w*0.25)
	c.DefaultParams.B.Center = d.Lo + math.Floor(w*0.75)
	c.DefaultThreshold = d.Lo + math.Floor(w*0.5)
	return c
}
