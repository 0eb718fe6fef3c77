package collision

import (
	"fmt"
	"math"

	"github.com/gonewx/fishio/pkg/vec"
)

// Mask 像素蒙板碰撞区域
//
// 由外接矩形和二值占用网格组成。网格按蒙板自身的宽高拉伸，
// 与精灵图片的分辨率无关。
type Mask struct {
	box        Box
	grid       *Grid
	alphaRatio float64
}

var _ Area = (*Mask)(nil)

// NewMask 创建像素蒙板
//
// 参数:
//   - center: 中心点
//   - width, height: 外接矩形尺寸
//   - grid: 占用网格（不可为 nil），多个蒙板可以共享同一个只读网格
//   - alphaRatio: 不透明部分占外接矩形的比例 (0.0 ~ 1.0)
func NewMask(center vec.Vec, width, height float64, grid *Grid, alphaRatio float64) *Mask {
	if grid == nil {
		panic("collision: mask requires a grid")
	}
	if alphaRatio < 0 || alphaRatio > 1 {
		panic(fmt.Sprintf("collision: alpha ratio %.3f out of range", alphaRatio))
	}
	return &Mask{
		box:        *NewBoxAt(center, width, height),
		grid:       grid,
		alphaRatio: alphaRatio,
	}
}

// Kind 实现 Area
func (m *Mask) Kind() Kind { return KindMask }

// Width 宽度
func (m *Mask) Width() float64 { return m.box.Width() }

// Height 高度
func (m *Mask) Height() float64 { return m.box.Height() }

// AlphaRatio 不透明比例
func (m *Mask) AlphaRatio() float64 { return m.alphaRatio }

// Grid 占用网格（只读）
func (m *Mask) Grid() *Grid { return m.grid }

// Size 返回 width*height*alphaRatio
// 透明边距很大的精灵不会因为外接矩形大而被高估
func (m *Mask) Size() float64 {
	return m.box.Size() * m.alphaRatio
}

// Center 中心点
func (m *Mask) Center() vec.Vec { return m.box.Center() }

// Bounds 外接矩形
func (m *Mask) Bounds() Box { return m.box }

// Intersects 实现 Area
func (m *Mask) Intersects(other Area) bool {
	return Intersects(m, other)
}

// Translate 平移
func (m *Mask) Translate(delta vec.Vec) {
	m.box.Translate(delta)
}

// OpaqueAt 世界坐标点 p 是否落在不透明像素上
func (m *Mask) OpaqueAt(p vec.Vec) bool {
	if p.X < m.box.MinX || p.X > m.box.MaxX || p.Y < m.box.MinY || p.Y > m.box.MaxY {
		return false
	}
	return m.grid.At(m.cellCol(p.X), m.cellRow(p.Y))
}

func (m *Mask) cellCol(x float64) int {
	w := m.box.Width()
	if w == 0 {
		return 0
	}
	return clampIndex(int(math.Floor((x-m.box.MinX)/w*float64(m.grid.cols))), m.grid.cols)
}

// 网格第 0 行在上方，世界坐标 Y 向上
func (m *Mask) cellRow(y float64) int {
	h := m.box.Height()
	if h == 0 {
		return 0
	}
	return clampIndex(int(math.Floor((m.box.MaxY-y)/h*float64(m.grid.rows))), m.grid.rows)
}

func (m *Mask) cellWidth() float64  { return m.box.Width() / float64(m.grid.cols) }
func (m *Mask) cellHeight() float64 { return m.box.Height() / float64(m.grid.rows) }

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// overlapMasks 两张蒙板的精细检测
//
// 1. 粗检测：外接矩形不重叠直接返回 false
// 2. 细检测：在重叠区域内以两张蒙板中较细的格子尺寸为步长采样，
//    任一采样点在两张蒙板中都不透明即相交
//
// 采样格点只依赖重叠区域和两者步长的最小值，因此交换参数结果不变。
func overlapMasks(a, b *Mask) bool {
	region, ok := a.box.Intersection(b.box)
	if !ok {
		return false
	}

	stepX := math.Min(a.cellWidth(), b.cellWidth())
	stepY := math.Min(a.cellHeight(), b.cellHeight())
	nx := sampleCount(region.Width(), stepX)
	ny := sampleCount(region.Height(), stepY)

	dx := region.Width() / float64(nx)
	dy := region.Height() / float64(ny)
	for j := 0; j < ny; j++ {
		y := region.MinY + (float64(j)+0.5)*dy
		for i := 0; i < nx; i++ {
			p := vec.New(region.MinX+(float64(i)+0.5)*dx, y)
			if a.OpaqueAt(p) && b.OpaqueAt(p) {
				return true
			}
		}
	}
	return false
}

func sampleCount(extent, step float64) int {
	if step <= 0 {
		return 1
	}
	n := int(math.Ceil(extent / step))
	if n < 1 {
		return 1
	}
	return n
}
