package components

import "github.com/gonewx/fishio/pkg/vec"

// Movable 可移动对象
//
// 每帧的调用顺序（由 MovementSystem 保证）:
//  1. BeforeMove()：实体可以调整自己的速度（AI、玩家输入）
//  2. position += velocity
//  3. 检查是否越出场地
//  4. 越界且 CanPassThroughWalls() 为 false 时调用 OnWallHit()，
//     之后实体才会被放置到最终位置（不会停留在场地外）
type Movable interface {
	// Position 当前位置（碰撞区域中心）
	Position() vec.Vec

	// Velocity 速度向量，长度即速度大小
	// 例如 (0, 2) 表示以速度 2 向上移动
	Velocity() vec.Vec

	// SetVelocity 设置速度向量
	SetVelocity(v vec.Vec)

	// CanPassThroughWalls 是否可以穿过场地边界
	CanPassThroughWalls() bool

	// OnWallHit 撞墙时调用，在 BeforeMove 之后、最终位置确定之前
	OnWallHit()

	// BeforeMove 移动前调用
	BeforeMove()
}

// Speed 速度大小（速度向量的长度）
func Speed(m Movable) float64 {
	return m.Velocity().Length()
}

// Heading 当前运动方向（单位向量），静止时为零向量
func Heading(m Movable) vec.Vec {
	return m.Velocity().Normalize()
}

// SetSpeed 保持方向，设置速度大小
//
// 当前速度为零时方向未定义，结果保持零向量（不会凭空推断方向）
func SetSpeed(m Movable, speed float64) {
	m.SetVelocity(m.Velocity().Normalize().Scale(speed))
}

// SetDirection 保持速度大小，设置运动方向
//
// 新速度 = normalize(direction) * Speed(m)。
// direction 为零向量时 normalize 回退为零向量，因此速度会变成零；
// 这是既定行为，调用方需要自行避免。
func SetDirection(m Movable, direction vec.Vec) {
	speed := Speed(m)
	m.SetVelocity(direction.Normalize().Scale(speed))
}

// SetDirectionTo 按基本方向设置运动方向
func SetDirectionTo(m Movable, dir vec.Direction) {
	SetDirection(m, dir.Normal())
}
