package components

import (
	"reflect"

	"github.com/gonewx/fishio/pkg/collision"
)

// Collidable 可碰撞对象
//
// 只需要实现 BoundingArea 和 OnCollide，是否相交由 CollidesWith 统一判断，
// 具体实体不要重复实现相交委托逻辑。
type Collidable interface {
	// BoundingArea 用于碰撞检测的区域
	BoundingArea() collision.Area

	// OnCollide 与另一个对象发生碰撞后的反应（死亡、反弹、成长等）
	// 只会在 CollidesWith 返回 true 之后被调用
	OnCollide(other Collidable)
}

// CollidesWith 检查 a 是否与 b 碰撞
//
// 参数:
//   - a, b: 可碰撞对象，任一为 nil（包括带类型的 nil 指针）时返回 false
//
// 返回:
//   - bool: a.BoundingArea().Intersects(b.BoundingArea())
func CollidesWith(a, b Collidable) bool {
	if isNil(a) || isNil(b) {
		return false
	}
	return a.BoundingArea().Intersects(b.BoundingArea())
}

func isNil(c Collidable) bool {
	if c == nil {
		return true
	}
	v := reflect.ValueOf(c)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
