package panzoom

import (
	"errors"
	"testing"
	"time"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"zero durations", func(c *Config) { c.BoundsDuration, c.PanDuration, c.ScrollDuration = 0, 0, 0 }, true},
		{"zero max scale", func(c *Config) { c.MaxScale = 0 }, false},
		{"negative max scale", func(c *Config) { c.MaxScale = -2 }, false},
		{"zero momentum", func(c *Config) { c.MomentumPower = 0 }, false},
		{"momentum of one", func(c *Config) { c.MomentumPower = 1 }, false},
		{"negative bounds duration", func(c *Config) { c.BoundsDuration = -time.Millisecond }, false},
		{"negative pan duration", func(c *Config) { c.PanDuration = -time.Millisecond }, false},
		{"negative scroll duration", func(c *Config) { c.ScrollDuration = -time.Millisecond }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}
