package utils

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/fishio/pkg/vec"
)

// pointerDeadZone 指针距离玩家中心小于该值时不再转向，避免原地抖动
const pointerDeadZone = 4.0

// SteerFromKeys 由方向键状态得到转向（世界坐标，y 轴向上）
// 相反的两个键同时按下时互相抵消
func SteerFromKeys(up, down, left, right bool) vec.Vec {
	var steer vec.Vec
	if up {
		steer = steer.Add(vec.Up.Normal())
	}
	if down {
		steer = steer.Add(vec.Down.Normal())
	}
	if left {
		steer = steer.Add(vec.Left.Normal())
	}
	if right {
		steer = steer.Add(vec.Right.Normal())
	}
	return steer
}

// SteerTowards 朝目标点转向，进入死区后返回零向量
func SteerTowards(from, target vec.Vec) vec.Vec {
	delta := target.Sub(from)
	if delta.Length() < pointerDeadZone {
		return vec.Zero
	}
	return delta.Normalize()
}

// SteeringInput 玩家转向输入：方向键 / WASD，或按住鼠标 / 触摸朝指针方向游动
//
// 实现 entities.Input。Position 返回玩家当前位置，用于指针转向。
type SteeringInput struct {
	FieldHeight float64
	Position    func() vec.Vec
}

// Steer 读取当前帧的输入
func (in *SteeringInput) Steer() vec.Vec {
	keys := SteerFromKeys(
		ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
	)
	if !keys.IsZero() || in.Position == nil {
		return keys
	}

	pressed, x, y := GetPointerState()
	if !pressed {
		return vec.Zero
	}
	return SteerTowards(in.Position(), ScreenToWorld(float64(x), float64(y), in.FieldHeight))
}

// GetPointerState 获取指针的完整状态，优先使用触摸
// 返回：是否按下、X坐标、Y坐标（屏幕坐标）
func GetPointerState() (pressed bool, x, y int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y = ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	x, y = ebiten.CursorPosition()
	pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	return pressed, x, y
}
