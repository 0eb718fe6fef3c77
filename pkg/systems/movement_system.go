package systems

import (
	"go.uber.org/zap"

	"github.com/gonewx/fishio/pkg/collision"
	"github.com/gonewx/fishio/pkg/components"
	"github.com/gonewx/fishio/pkg/ecs"
	"github.com/gonewx/fishio/pkg/logger"
	"github.com/gonewx/fishio/pkg/vec"
)

// movingBody 可移动且有碰撞区域的实体
// 位置由碰撞区域决定，移动即平移碰撞区域
type movingBody interface {
	components.Movable
	BoundingArea() collision.Area
}

// MovementSystem 每帧移动所有可移动实体
//
// 调用顺序（对每个实体）:
//  1. BeforeMove()
//  2. 计算 position + velocity
//  3. 检查新位置是否完全在场地内
//  4. 越界且不能穿墙: 调用 OnWallHit()，用新的速度从原位置重新计算，
//     并把结果推回场地内，实体不会停留在场地外
type MovementSystem struct {
	em    *ecs.EntityManager
	field collision.Box
	log   *zap.Logger
}

// NewMovementSystem 创建移动系统
//
// 参数:
//   - em: 实体管理器
//   - field: 场地矩形
func NewMovementSystem(em *ecs.EntityManager, field collision.Box) *MovementSystem {
	return &MovementSystem{
		em:    em,
		field: field,
		log:   logger.Named("movement"),
	}
}

// Update 移动所有实体，返回本帧撞墙的实体数
func (s *MovementSystem) Update() int {
	wallHits := 0
	for _, entry := range ecs.Query[movingBody](s.em) {
		if s.em.IsMarked(entry.ID) {
			continue
		}
		if s.move(entry.Entity) {
			wallHits++
			s.log.Debug("wall hit", zap.Uint64("entity", uint64(entry.ID)))
		}
	}
	return wallHits
}

// move 移动单个实体，撞墙时返回 true
func (s *MovementSystem) move(m movingBody) bool {
	m.BeforeMove()

	area := m.BoundingArea()
	start := area.Bounds()
	next := start
	next.Translate(m.Velocity())

	hitWall := false
	if !m.CanPassThroughWalls() && !s.field.Contains(next) {
		hitWall = true
		m.OnWallHit()

		next = start
		next.Translate(m.Velocity())
		next.Translate(next.ClampOffset(s.field))
	}

	area.Translate(vec.New(next.MinX-start.MinX, next.MinY-start.MinY))
	return hitWall
}
