package panzoom

import (
	"fmt"
	"time"
)

// Default configuration values.
const (
	DefaultMaxScale       = 70.0
	DefaultMomentumPower  = 0.035
	DefaultBoundsDuration = 166 * time.Millisecond
	DefaultPanDuration    = 833 * time.Millisecond
	DefaultScrollDuration = 166 * time.Millisecond
)

// Config holds the tunables for a Viewer. The zero value is not usable;
// start from DefaultConfig.
type Config struct {
	// MaxScale is the upper zoom limit.
	MaxScale float64
	// MomentumPower is the per-tick scale step a wheel notch starts with.
	MomentumPower float64
	// BoundsDuration is how long the ease back into bounds takes.
	BoundsDuration time.Duration
	// PanDuration is how long a released drag keeps gliding.
	PanDuration time.Duration
	// ScrollDuration is how long wheel momentum takes to settle.
	ScrollDuration time.Duration
	// UseConstraint keeps the image covering the viewport.
	UseConstraint bool
	// EaseOutOfBounds eases back into bounds instead of snapping.
	EaseOutOfBounds bool
	// Debug enables [panzoom] log lines.
	Debug bool
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		MaxScale:        DefaultMaxScale,
		MomentumPower:   DefaultMomentumPower,
		BoundsDuration:  DefaultBoundsDuration,
		PanDuration:     DefaultPanDuration,
		ScrollDuration:  DefaultScrollDuration,
		UseConstraint:   true,
		EaseOutOfBounds: true,
	}
}

// Validate reports the first invalid field, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case !(c.MaxScale > 0):
		return fmt.Errorf("%w: maxScale %v must be positive", ErrInvalidConfig, c.MaxScale)
	case !(c.MomentumPower > 0 && c.MomentumPower < 1):
		return fmt.Errorf("%w: momentumPower %v must be in (0, 1)", ErrInvalidConfig, c.MomentumPower)
	case c.BoundsDuration < 0:
		return fmt.Errorf("%w: boundsDuration %v is negative", ErrInvalidConfig, c.BoundsDuration)
	case c.PanDuration < 0:
		return fmt.Errorf("%w: panDuration %v is negative", ErrInvalidConfig, c.PanDuration)
	case c.ScrollDuration < 0:
		return fmt.Errorf("%w: scrollDuration %v is negative", ErrInvalidConfig, c.ScrollDuration)
	}
	return nil
}
