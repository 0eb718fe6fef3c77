package collision

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/gonewx/fishio/pkg/vec"
)

// Box 轴对齐矩形碰撞区域（AABB）
//
// 不变量: MinX <= MaxX, MinY <= MaxY
// 按角度移动时只平移位置，矩形本身始终保持轴对齐
type Box struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

var _ Area = (*Box)(nil)

// NewBox 根据四条边界创建矩形
//
// 参数:
//   - minX, minY: 左下角
//   - maxX, maxY: 右上角
//
// 如果 min > max 直接 panic（调用方编程错误，不是运行时错误）
func NewBox(minX, minY, maxX, maxY float64) *Box {
	if minX > maxX || minY > maxY {
		panic(fmt.Sprintf("collision: invalid box bounds (%.2f, %.2f, %.2f, %.2f)", minX, minY, maxX, maxY))
	}
	return &Box{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

// NewBoxAt 以中心点和宽高创建矩形
func NewBoxAt(center vec.Vec, width, height float64) *Box {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("collision: negative box size %.2fx%.2f", width, height))
	}
	return &Box{
		MinX: center.X - width/2,
		MinY: center.Y - height/2,
		MaxX: center.X + width/2,
		MaxY: center.Y + height/2,
	}
}

// Kind 实现 Area
func (b *Box) Kind() Kind { return KindBox }

// Width 宽度
func (b *Box) Width() float64 { return b.MaxX - b.MinX }

// Height 高度
func (b *Box) Height() float64 { return b.MaxY - b.MinY }

// CenterX 中心点 X
func (b *Box) CenterX() float64 { return (b.MinX + b.MaxX) / 2 }

// CenterY 中心点 Y
func (b *Box) CenterY() float64 { return (b.MinY + b.MaxY) / 2 }

// Center 中心点
func (b *Box) Center() vec.Vec { return vec.New(b.CenterX(), b.CenterY()) }

// Size 面积
func (b *Box) Size() float64 { return b.Width() * b.Height() }

// Bounds 返回自身的副本
func (b *Box) Bounds() Box { return *b }

// Intersects 实现 Area，分派见 Intersects()
func (b *Box) Intersects(other Area) bool {
	return Intersects(b, other)
}

// Overlaps 开区间矩形重叠检测
// 仅共享一条边（刚好接触）不算相交
func (b Box) Overlaps(o Box) bool {
	return b.MinX < o.MaxX &&
		b.MaxX > o.MinX &&
		b.MinY < o.MaxY &&
		b.MaxY > o.MinY
}

// Intersection 返回两个矩形的重叠区域
// 不重叠时第二个返回值为 false
func (b Box) Intersection(o Box) (Box, bool) {
	if !b.Overlaps(o) {
		return Box{}, false
	}
	return Box{
		MinX: math.Max(b.MinX, o.MinX),
		MinY: math.Max(b.MinY, o.MinY),
		MaxX: math.Min(b.MaxX, o.MaxX),
		MaxY: math.Min(b.MaxY, o.MaxY),
	}, true
}

// Contains 闭区间包含检测（o 完全位于 b 内部，贴边也算）
func (b Box) Contains(o Box) bool {
	return o.MinX >= b.MinX &&
		o.MaxX <= b.MaxX &&
		o.MinY >= b.MinY &&
		o.MaxY <= b.MaxY
}

// Expand 向四周各扩展 dx, dy
func (b Box) Expand(dx, dy float64) Box {
	return Box{
		MinX: b.MinX - dx,
		MinY: b.MinY - dy,
		MaxX: b.MaxX + dx,
		MaxY: b.MaxY + dy,
	}
}

// ClampOffset 返回把 b 平移进 field 所需的位移
// 如果 b 比 field 还大，则对齐 field 的左下角
func (b Box) ClampOffset(field Box) vec.Vec {
	var dx, dy float64
	switch {
	case b.MinX < field.MinX:
		dx = field.MinX - b.MinX
	case b.MaxX > field.MaxX:
		dx = field.MaxX - b.MaxX
	}
	switch {
	case b.MinY < field.MinY:
		dy = field.MinY - b.MinY
	case b.MaxY > field.MaxY:
		dy = field.MaxY - b.MaxY
	}
	return vec.New(dx, dy)
}

// Translate 平移两个角点
func (b *Box) Translate(delta vec.Vec) {
	b.MinX += delta.X
	b.MinY += delta.Y
	b.MaxX += delta.X
	b.MaxY += delta.Y
}

// Move 沿基本方向移动 distance
func (b *Box) Move(dir vec.Direction, distance float64) {
	b.Translate(dir.Normal().Scale(distance))
}

// MoveAngle 沿角度（弧度）移动 distance
//
// 位移为 (distance·cos(angle), distance·sin(angle))。
// 注意：矩形本身不旋转，只有位置按旋转后的位移平移，
// 下游物理依赖这一点，不要改成真正的旋转矩形。
func (b *Box) MoveAngle(angle, distance float64) {
	b.Translate(vec.FromAngle(angle, distance))
}

// Equal 结构相等（四条边界都相等）
func (b Box) Equal(o Box) bool {
	return b == o
}

// Hash 基于四条边界的结构哈希，Equal 的两个矩形哈希相同
func (b Box) Hash() uint64 {
	var buf [32]byte
	binary.LittleEndian.PutUint64(buf[0:], math.Float64bits(normalizeZero(b.MinX)))
	binary.LittleEndian.PutUint64(buf[8:], math.Float64bits(normalizeZero(b.MinY)))
	binary.LittleEndian.PutUint64(buf[16:], math.Float64bits(normalizeZero(b.MaxX)))
	binary.LittleEndian.PutUint64(buf[24:], math.Float64bits(normalizeZero(b.MaxY)))
	return xxhash.Sum64(buf[:])
}

// String 用于日志
func (b Box) String() string {
	return fmt.Sprintf("Box(%.2f, %.2f, %.2f, %.2f)", b.MinX, b.MinY, b.MaxX, b.MaxY)
}

// -0 与 +0 相等，哈希也必须相同
func normalizeZero(f float64) float64 {
	if f == 0 {
		return 0
	}
	return f
}
