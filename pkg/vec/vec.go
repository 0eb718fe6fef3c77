package vec

import "math"

// Vec 二维向量（值类型）
// 所有运算都返回新的向量，不修改接收者
type Vec struct {
	X float64
	Y float64
}

// Zero 零向量
var Zero = Vec{}

// New 创建向量
func New(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// FromAngle 根据角度（弧度）和长度创建向量
// 角度 0 指向 +X，π/2 指向 +Y（向上）
func FromAngle(angle, length float64) Vec {
	return Vec{
		X: length * math.Cos(angle),
		Y: length * math.Sin(angle),
	}
}

// Length 返回欧几里得长度
func (v Vec) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize 返回同方向的单位向量
// 零向量没有方向，返回零向量（不会除以零）
func (v Vec) Normalize() Vec {
	length := v.Length()
	if length == 0 {
		return Zero
	}
	return Vec{X: v.X / length, Y: v.Y / length}
}

// Scale 向量数乘
func (v Vec) Scale(factor float64) Vec {
	return Vec{X: v.X * factor, Y: v.Y * factor}
}

// Add 向量加法
func (v Vec) Add(other Vec) Vec {
	return Vec{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub 向量减法
func (v Vec) Sub(other Vec) Vec {
	return Vec{X: v.X - other.X, Y: v.Y - other.Y}
}

// Dot 点积
func (v Vec) Dot(other Vec) float64 {
	return v.X*other.X + v.Y*other.Y
}

// IsZero 是否为零向量
func (v Vec) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Distance 两点之间的距离
func (v Vec) Distance(other Vec) float64 {
	return v.Sub(other).Length()
}
