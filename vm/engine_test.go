package vm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig(t *testing.T) {
	assert := assert.New(t)

	cfg := DefaultConfig()
	assert.Equal(DEFAULT_HARD_STEP_LIMIT, cfg.HardStepLimit)
	assert.Equal(DEFAULT_YIELD_EVERY, cfg.YieldEvery)
	assert.NotNil(cfg.Yield)

	cfg = Config{HardStepLimit: -5, YieldEvery: 0}.Normalized()
	assert.Equal(DEFAULT_HARD_STEP_LIMIT, cfg.HardStepLimit)
	assert.Equal(DEFAULT_YIELD_EVERY, cfg.YieldEvery)

	cfg = Config{HardStepLimit: 10, YieldEvery: 3}.Normalized()
	assert.Equal(10, cfg.HardStepLimit)
	assert.Equal(3, cfg.YieldEvery)
}

func TestRun(t *testing.T) {
	assert := assert.New(t)

	var trace []int
	out := Run(3, Config{}, func(pc int) (int, error) {
		trace = append(trace, pc)
		return pc + 1, nil
	})

	assert.Equal(STATUS_OK, out.Status)
	assert.Equal(3, out.Steps)
	assert.Equal(3, out.Pc)
	assert.NoError(out.Err)
	assert.Equal([]int{0, 1, 2}, trace)

	out = Run(0, Config{}, func(pc int) (int, error) {
		t.Fatal("empty program must not step")
		return 0, nil
	})
	assert.Equal(STATUS_OK, out.Status)
	assert.Equal(0, out.Steps)
}

func TestRun_Limit(t *testing.T) {
	assert := assert.New(t)

	executed := 0
	out := Run(2, Config{HardStepLimit: 7}, func(pc int) (int, error) {
		executed++
		return 1 - pc, nil
	})

	assert.Equal(STATUS_LIMIT, out.Status)
	assert.Equal(7, out.Steps)
	assert.Equal(7, executed)
	assert.Equal(1, out.Pc, "instruction at the limit is not executed")

	// Finishing exactly at the limit is not a limit.
	out = Run(3, Config{HardStepLimit: 3}, func(pc int) (int, error) {
		return pc + 1, nil
	})
	assert.Equal(STATUS_OK, out.Status)
	assert.Equal(3, out.Steps)
}

func TestRun_Error(t *testing.T) {
	assert := assert.New(t)

	boom := errors.New("boom")
	out := Run(5, Config{}, func(pc int) (int, error) {
		if pc == 2 {
			return 0, boom
		}
		return pc + 1, nil
	})

	assert.Equal(STATUS_ERROR, out.Status)
	assert.Equal(3, out.Steps)
	assert.Equal(2, out.Pc)
	assert.ErrorIs(out.Err, boom)

	out = Run(2, Config{}, func(pc int) (int, error) {
		return 5, nil
	})
	assert.Equal(STATUS_ERROR, out.Status)
	assert.ErrorIs(out.Err, ErrJumpInvalid)
}

func TestRun_Yield(t *testing.T) {
	assert := assert.New(t)

	yields := 0
	var at []int
	steps := 0
	cfg := Config{
		HardStepLimit: 100,
		YieldEvery:    10,
		Yield: func() {
			yields++
			at = append(at, steps)
		},
	}

	out := Run(1, cfg, func(pc int) (int, error) {
		steps++
		return 0, nil
	})

	assert.Equal(STATUS_LIMIT, out.Status)
	assert.Equal(100, out.Steps)
	assert.Equal(10, yields)
	assert.Equal([]int{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}, at)
}
