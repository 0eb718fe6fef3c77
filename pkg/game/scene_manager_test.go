package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockScene 记录调用情况的场景
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
}

func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

// saveableScene 实现 Saveable 的场景
type saveableScene struct {
	MockScene
	saved bool
}

func (s *saveableScene) SaveOnExit() bool {
	s.saved = true
	return true
}

func TestSceneManagerSwitchAndUpdate(t *testing.T) {
	sm := NewSceneManager()
	assert.Nil(t, sm.GetCurrentScene())

	// 没有场景时不会 panic
	sm.Update(0.016)

	scene1, scene2 := &MockScene{}, &MockScene{}
	sm.SwitchTo(scene1)
	sm.Update(0.016)
	assert.True(t, scene1.updateCalled)
	assert.Equal(t, 0.016, scene1.deltaTime)
	assert.False(t, scene2.updateCalled)

	sm.SwitchTo(scene2)
	sm.Update(0.016)
	assert.True(t, scene2.updateCalled)
	assert.Same(t, scene2, sm.GetCurrentScene())
}

func TestSceneManagerDraw(t *testing.T) {
	sm := NewSceneManager()
	screen := ebiten.NewImage(800, 600)
	sm.Draw(screen)

	scene := &MockScene{}
	sm.SwitchTo(scene)
	sm.Draw(screen)
	assert.True(t, scene.drawCalled)
}

func TestSceneManagerRestart(t *testing.T) {
	sm := NewSceneManager()
	assert.False(t, sm.Restart(), "no factory")

	created := 0
	sm.SetSceneFactory(func() Scene {
		created++
		return &MockScene{}
	})

	require.True(t, sm.Restart())
	first := sm.GetCurrentScene()
	require.True(t, sm.Restart())
	assert.NotSame(t, first, sm.GetCurrentScene())
	assert.Equal(t, 2, created)
	assert.Equal(t, 2, sm.Rounds())

	// 创建失败时保留当前场景
	current := sm.GetCurrentScene()
	sm.SetSceneFactory(func() Scene { return nil })
	assert.False(t, sm.Restart())
	assert.Same(t, current, sm.GetCurrentScene())
}

func TestSceneManagerSaveOnExit(t *testing.T) {
	sm := NewSceneManager()
	assert.True(t, sm.SaveOnExit())

	sm.SwitchTo(&MockScene{})
	assert.True(t, sm.SaveOnExit())

	scene := &saveableScene{}
	sm.SwitchTo(scene)
	assert.True(t, sm.SaveOnExit())
	assert.True(t, scene.saved)
}
