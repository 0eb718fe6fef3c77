package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimerTick(t *testing.T) {
	timer := &Timer{Name: "enemy_spawn", Target: 3}

	fired := make([]bool, 0, 6)
	for i := 0; i < 6; i++ {
		fired = append(fired, timer.Tick())
	}
	assert.Equal(t, []bool{false, false, true, false, false, true}, fired)

	timer.Tick()
	timer.Reset()
	assert.Equal(t, 0, timer.Current)
}

func TestTimerZeroTargetFiresEveryTick(t *testing.T) {
	timer := &Timer{Target: 0}
	assert.True(t, timer.Tick())
	assert.True(t, timer.Tick())
}
