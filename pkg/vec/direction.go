package vec

// Direction 四个基本方向
// 世界坐标系 Y 轴向上，因此 Up 对应 (0, +1)
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Normal 返回该方向的单位向量
func (d Direction) Normal() Vec {
	switch d {
	case Up:
		return Vec{X: 0, Y: 1}
	case Down:
		return Vec{X: 0, Y: -1}
	case Left:
		return Vec{X: -1, Y: 0}
	case Right:
		return Vec{X: 1, Y: 0}
	default:
		return Zero
	}
}

// Opposite 返回相反方向
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// String 方向名称（用于日志）
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}
