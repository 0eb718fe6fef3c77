package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 游戏场景（例如一局游戏）
// 每个场景有自己的更新和绘制逻辑
type Scene interface {
	// Update 更新场景逻辑
	// deltaTime 距上一次更新的时间（秒）
	Update(deltaTime float64)

	// Draw 绘制场景
	Draw(screen *ebiten.Image)
}

// Saveable 可选接口，场景在程序退出时保存状态
//
// 实现此接口的场景会在以下时机被调用 SaveOnExit()：
//   - 游戏窗口关闭
//   - 按下 Esc 退出
type Saveable interface {
	// SaveOnExit 返回 true 表示保存成功或无需保存
	SaveOnExit() bool
}
