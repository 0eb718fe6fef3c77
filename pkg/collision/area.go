// Package collision 提供碰撞区域（矩形与像素蒙板）以及它们之间的相交检测。
//
// 形状变体是一个封闭集合（Box、Mask），相交检测通过 (Kind, Kind) 分派表完成，
// 因此 a.Intersects(b) 与 b.Intersects(a) 在构造上就是对称的。
package collision

import "github.com/gonewx/fishio/pkg/vec"

// Kind 碰撞区域变体
type Kind uint8

const (
	KindBox Kind = iota
	KindMask
	kindCount
)

// String 用于日志
func (k Kind) String() string {
	switch k {
	case KindBox:
		return "box"
	case KindMask:
		return "mask"
	default:
		return "unknown"
	}
}

// Area 碰撞区域能力
//
// 每个实体独占自己的 Area，不同实体之间不共享可变的形状状态。
type Area interface {
	// Kind 变体标签，用于分派
	Kind() Kind
	// Size 特征尺寸（类面积），用于按大小比较和随机化
	Size() float64
	// Center 中心点
	Center() vec.Vec
	// Bounds 外接矩形（副本）
	Bounds() Box
	// Intersects 是否与另一个区域相交，必须对称
	Intersects(other Area) bool
	// Translate 平移
	Translate(delta vec.Vec)
}

type intersectFunc func(a, b Area) bool

// dispatch[a.Kind()][b.Kind()]
var dispatch = [kindCount][kindCount]intersectFunc{
	KindBox: {
		KindBox:  boundsOverlap,
		KindMask: boundsOverlap,
	},
	KindMask: {
		KindBox:  boundsOverlap,
		KindMask: maskOverlap,
	},
}

// Intersects 检测两个碰撞区域是否相交
//
// 参数:
//   - a, b: 任意碰撞区域，nil 视为不相交
//
// 规则:
//   - Box/Box、Box/Mask、Mask/Box: 外接矩形开区间重叠
//   - Mask/Mask: 先做外接矩形粗检测，再逐格采样两张蒙板
func Intersects(a, b Area) bool {
	if a == nil || b == nil {
		return false
	}
	ka, kb := a.Kind(), b.Kind()
	if ka >= kindCount || kb >= kindCount {
		return false
	}
	return dispatch[ka][kb](a, b)
}

func boundsOverlap(a, b Area) bool {
	return a.Bounds().Overlaps(b.Bounds())
}

func maskOverlap(a, b Area) bool {
	return overlapMasks(a.(*Mask), b.(*Mask))
}
