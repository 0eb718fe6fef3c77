package entities

import "github.com/gonewx/fishio/pkg/components"

// Fish 场地上的鱼（玩家或敌方）
type Fish interface {
	components.Collidable
	components.Movable

	// Size 特征尺寸，用于判断谁吃谁
	Size() float64

	// IsDead 是否已死亡（等待被移除）
	IsDead() bool
}

// Eats 判断 a 是否能吃掉 b：严格比 b 大
func Eats(a, b Fish) bool {
	return a.Size() > b.Size()
}
