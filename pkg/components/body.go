package components

import (
	"github.com/gonewx/fishio/pkg/collision"
	"github.com/gonewx/fishio/pkg/vec"
)

// Body 实体的运动学状态，可嵌入到具体实体中
//
// Body 独占自己的碰撞区域，位置始终等于碰撞区域的中心，
// 修改位置即平移碰撞区域。
type Body struct {
	area     collision.Area
	velocity vec.Vec
}

// NewBody 创建 Body
//
// 参数:
//   - area: 碰撞区域，所有权转移给 Body
//   - velocity: 初始速度
func NewBody(area collision.Area, velocity vec.Vec) Body {
	if area == nil {
		panic("components: body requires a collision area")
	}
	return Body{area: area, velocity: velocity}
}

// BoundingArea 碰撞区域
func (b *Body) BoundingArea() collision.Area { return b.area }

// Position 碰撞区域中心
func (b *Body) Position() vec.Vec { return b.area.Center() }

// SetPosition 移动到新位置（平移碰撞区域）
func (b *Body) SetPosition(p vec.Vec) {
	b.area.Translate(p.Sub(b.area.Center()))
}

// Velocity 速度向量
func (b *Body) Velocity() vec.Vec { return b.velocity }

// SetVelocity 设置速度向量
func (b *Body) SetVelocity(v vec.Vec) { b.velocity = v }

// Integrate position += velocity
func (b *Body) Integrate() {
	b.area.Translate(b.velocity)
}
