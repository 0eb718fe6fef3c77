package components

import "github.com/gonewx/fishio/pkg/collision"

// Sprite 精灵的碰撞相关数据
// 图像本身（绘制用）由 SpriteCache 按名称另外管理
type Sprite struct {
	// Name 资源路径，例如 "sprites/fish/fish3.png"
	Name string

	// Alpha 不透明像素网格，多条鱼共享，只读
	Alpha *collision.Grid

	// AlphaRatio 不透明像素占比
	AlphaRatio float64

	// Aspect 宽高比 (width / height)
	Aspect float64
}
