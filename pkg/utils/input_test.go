package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gonewx/fishio/pkg/vec"
)

func TestSteerFromKeys(t *testing.T) {
	tests := []struct {
		name                  string
		up, down, left, right bool
		want                  vec.Vec
	}{
		{"无输入", false, false, false, false, vec.Zero},
		{"上", true, false, false, false, vec.New(0, 1)},
		{"下", false, true, false, false, vec.New(0, -1)},
		{"左上", true, false, true, false, vec.New(-1, 1)},
		{"相反抵消", true, true, false, false, vec.Zero},
		{"全部按下", true, true, true, true, vec.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SteerFromKeys(tt.up, tt.down, tt.left, tt.right))
		})
	}
}

func TestSteerTowards(t *testing.T) {
	steer := SteerTowards(vec.New(0, 0), vec.New(30, 40))
	assert.InDelta(t, 0.6, steer.X, 1e-9)
	assert.InDelta(t, 0.8, steer.Y, 1e-9)

	// 死区内不转向
	assert.Equal(t, vec.Zero, SteerTowards(vec.New(10, 10), vec.New(11, 12)))
}
