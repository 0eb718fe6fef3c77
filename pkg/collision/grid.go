package collision

import (
	"fmt"
	"image"
)

// Grid 二值占用网格（精灵的不透明像素）
// 第 0 行对应图片最上方的像素行
type Grid struct {
	cols  int
	rows  int
	cells []bool
}

// NewGrid 创建全透明网格
func NewGrid(cols, rows int) *Grid {
	if cols <= 0 || rows <= 0 {
		panic(fmt.Sprintf("collision: invalid grid size %dx%d", cols, rows))
	}
	return &Grid{
		cols:  cols,
		rows:  rows,
		cells: make([]bool, cols*rows),
	}
}

// NewFilledGrid 创建全不透明网格
func NewFilledGrid(cols, rows int) *Grid {
	g := NewGrid(cols, rows)
	for i := range g.cells {
		g.cells[i] = true
	}
	return g
}

// GridFromImage 从图片的 alpha 通道生成网格
// alpha > 0 的像素视为不透明
func GridFromImage(img image.Image) *Grid {
	bounds := img.Bounds()
	g := NewGrid(bounds.Dx(), bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			_, _, _, a := img.At(x, y).RGBA()
			if a > 0 {
				g.Set(x-bounds.Min.X, y-bounds.Min.Y, true)
			}
		}
	}
	return g
}

// Cols 列数
func (g *Grid) Cols() int { return g.cols }

// Rows 行数
func (g *Grid) Rows() int { return g.rows }

// At 读取格子，越界返回 false
func (g *Grid) At(col, row int) bool {
	if col < 0 || col >= g.cols || row < 0 || row >= g.rows {
		return false
	}
	return g.cells[row*g.cols+col]
}

// Set 写入格子，越界忽略
func (g *Grid) Set(col, row int, opaque bool) {
	if col < 0 || col >= g.cols || row < 0 || row >= g.rows {
		return
	}
	g.cells[row*g.cols+col] = opaque
}

// Ratio 不透明格子占比 (0.0 ~ 1.0)
func (g *Grid) Ratio() float64 {
	opaque := 0
	for _, c := range g.cells {
		if c {
			opaque++
		}
	}
	return float64(opaque) / float64(len(g.cells))
}
