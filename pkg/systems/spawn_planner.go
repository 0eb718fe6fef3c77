package systems

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/gonewx/fishio/pkg/collision"
	"github.com/gonewx/fishio/pkg/vec"
)

// Edge 场地的四条边
type Edge int

const (
	EdgeLeft Edge = iota
	EdgeTop
	EdgeRight
	EdgeBottom
	edgeCount
)

// String 用于日志
func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeTop:
		return "top"
	case EdgeRight:
		return "right"
	case EdgeBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// Inward 从该边指向场地内部的单位向量（Y 轴向上，上边在 y = H）
func (e Edge) Inward() vec.Vec {
	switch e {
	case EdgeLeft:
		return vec.Right.Normal()
	case EdgeTop:
		return vec.Down.Normal()
	case EdgeRight:
		return vec.Left.Normal()
	default:
		return vec.Up.Normal()
	}
}

const (
	// DefaultMinSizeFactor 新鱼尺寸下限 = weight * 0.2
	DefaultMinSizeFactor = 0.2
	// DefaultMaxSizeFactor 新鱼尺寸上限 = weight * 4.5
	DefaultMaxSizeFactor = 4.5
	// DefaultMinSpeed 速度分量的最小绝对值，保证鱼一定在动
	DefaultMinSpeed = 1.0
)

// SpawnPlan 生成计划：新实体的位置、尺寸和速度
type SpawnPlan struct {
	// Edge 选中的边
	Edge Edge
	// Position 碰撞区域中心，位于场地外
	Position vec.Vec
	// Width, Height 碰撞区域尺寸
	Width  float64
	Height float64
	// Size 目标特征尺寸（≈ Width*Height）
	Size float64
	// Velocity 初始速度，垂直于边的分量指向场地内部
	Velocity vec.Vec
}

// Bounds 生成位置对应的外接矩形
func (p SpawnPlan) Bounds() collision.Box {
	return *collision.NewBoxAt(p.Position, p.Width, p.Height)
}

// SpawnPlanner 无状态的生成算法：把新鱼放在随机一条边的外侧，并让它朝场地内游
//
// 唯一的内部状态是随机数源，测试时可以注入固定种子。
type SpawnPlanner struct {
	rng *rand.Rand

	MinSizeFactor float64
	MaxSizeFactor float64
	MinSpeed      float64
}

// NewSpawnPlanner 创建生成器
//
// 参数:
//   - rng: 随机数源，nil 时使用随机种子
func NewSpawnPlanner(rng *rand.Rand) *SpawnPlanner {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &SpawnPlanner{
		rng:           rng,
		MinSizeFactor: DefaultMinSizeFactor,
		MaxSizeFactor: DefaultMaxSizeFactor,
		MinSpeed:      DefaultMinSpeed,
	}
}

// Spawn 生成一条新鱼的位置、尺寸和速度
//
// 参数:
//   - weightHint: 尺寸参考（通常是玩家碰撞区域的 Size()），必须 > 0
//   - fieldWidth, fieldHeight: 场地尺寸 W, H
//   - maxSpeed: 速度分量的最大绝对值，必须 >= MinSpeed
//   - aspectRatio: 精灵宽高比 (width/height)，必须 > 0
//
// 步骤:
//  1. size ~ U[MinSizeFactor*weight, MaxSizeFactor*weight]
//  2. width = sqrt(size*aspect), height = size/width
//  3. 随机选择一条边
//  4. 中心点放在该边外侧（左边 x = -width，右边 x = W+width，下边 y = -height，上边 y = H+height），
//     整个矩形都在场地外
//  5. 垂直分量 |RandomSpeed| 指向场地内，平行分量 RandomSpeed
//
// 参数不满足前置条件时 panic（编程错误）。
func (p *SpawnPlanner) Spawn(weightHint, fieldWidth, fieldHeight, maxSpeed, aspectRatio float64) SpawnPlan {
	if weightHint <= 0 {
		panic(fmt.Sprintf("systems: spawn weight must be positive, got %f", weightHint))
	}
	if fieldWidth <= 0 || fieldHeight <= 0 {
		panic(fmt.Sprintf("systems: invalid field size %fx%f", fieldWidth, fieldHeight))
	}
	if maxSpeed < p.MinSpeed {
		panic(fmt.Sprintf("systems: max speed %f below minimum %f", maxSpeed, p.MinSpeed))
	}
	if aspectRatio <= 0 {
		panic(fmt.Sprintf("systems: aspect ratio must be positive, got %f", aspectRatio))
	}

	minSize := weightHint * p.MinSizeFactor
	maxSize := weightHint * p.MaxSizeFactor
	size := minSize + p.rng.Float64()*(maxSize-minSize)

	width := math.Sqrt(size * aspectRatio)
	height := size / width

	edge := Edge(p.rng.IntN(int(edgeCount)))
	perpendicular := math.Abs(p.RandomSpeed(maxSpeed))
	parallel := p.RandomSpeed(maxSpeed)

	plan := SpawnPlan{
		Edge:   edge,
		Width:  width,
		Height: height,
		Size:   size,
	}
	switch edge {
	case EdgeLeft:
		plan.Position = vec.New(-width, p.rng.Float64()*fieldHeight)
		plan.Velocity = vec.New(perpendicular, parallel)
	case EdgeTop:
		plan.Position = vec.New(p.rng.Float64()*fieldWidth, fieldHeight+height)
		plan.Velocity = vec.New(parallel, -perpendicular)
	case EdgeRight:
		plan.Position = vec.New(fieldWidth+width, p.rng.Float64()*fieldHeight)
		plan.Velocity = vec.New(-perpendicular, parallel)
	default:
		plan.Position = vec.New(p.rng.Float64()*fieldWidth, -height)
		plan.Velocity = vec.New(parallel, perpendicular)
	}
	return plan
}

// RandomSpeed 随机速度分量
//
// 先在 [-maxSpeed, maxSpeed] 中均匀采样，再把 (-MinSpeed, MinSpeed) 内的值推到边界：
// 负数取 min(s, -MinSpeed)，否则取 max(s, MinSpeed)。
func (p *SpawnPlanner) RandomSpeed(maxSpeed float64) float64 {
	speed := (p.rng.Float64()*2 - 1) * maxSpeed

	if speed < 0 {
		return math.Min(speed, -p.MinSpeed)
	}
	return math.Max(speed, p.MinSpeed)
}
