package vm

import (
	"runtime"
)

const (
	DEFAULT_HARD_STEP_LIMIT = 200000 // Steps before a run is stopped.
	DEFAULT_YIELD_EVERY     = 1500   // Steps between cooperative yields.
)

// Config bounds a single execution.
type Config struct {
	HardStepLimit int    // Maximum number of steps; <= 0 selects the default.
	YieldEvery    int    // Steps between yields; <= 0 selects the default.
	Yield         func() // Called every YieldEvery steps; nil is runtime.Gosched.
}

// DefaultConfig returns the default execution bounds.
func DefaultConfig() Config {
	return Config{}.Normalized()
}

// Normalized returns a copy with every unset or invalid value defaulted.
func (cfg Config) Normalized() Config {
	if cfg.HardStepLimit <= 0 {
		cfg.HardStepLimit = DEFAULT_HARD_STEP_LIMIT
	}
	if cfg.YieldEvery <= 0 {
		cfg.YieldEvery = DEFAULT_YIELD_EVERY
	}
	if cfg.Yield == nil {
		cfg.Yield = runtime.Gosched
	}
	return cfg
}
