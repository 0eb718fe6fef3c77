package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/gonewx/fishio/pkg/logger"
)

// SceneFactory 场景工厂函数类型
// 用于创建新一局的场景，避免 game 包依赖 scenes 包
type SceneFactory func() Scene

// SceneManager 管理当前活动的场景
// 任何时刻只有一个场景的 Update 和 Draw 会被调用
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory
	rounds       int
	log          *zap.Logger
}

// NewSceneManager 创建场景管理器，初始没有活动场景
func NewSceneManager() *SceneManager {
	return &SceneManager{log: logger.Named("scenes")}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo 切换到指定场景
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Restart 用工厂函数开始新的一局
// 返回: 是否成功创建新场景（失败时保留当前场景）
func (sm *SceneManager) Restart() bool {
	if sm.sceneFactory == nil {
		sm.log.Error("scene factory not set")
		return false
	}

	scene := sm.sceneFactory()
	if scene == nil {
		sm.log.Error("failed to create scene", zap.Int("round", sm.rounds+1))
		return false
	}

	sm.rounds++
	sm.SwitchTo(scene)
	sm.log.Info("new round started", zap.Int("round", sm.rounds))
	return true
}

// Rounds 已开始的局数
func (sm *SceneManager) Rounds() int {
	return sm.rounds
}

// Update 更新当前场景
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw 绘制当前场景
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}

// SaveOnExit 当前场景实现 Saveable 时调用其 SaveOnExit
func (sm *SceneManager) SaveOnExit() bool {
	if s, ok := sm.currentScene.(Saveable); ok {
		return s.SaveOnExit()
	}
	return true
}
