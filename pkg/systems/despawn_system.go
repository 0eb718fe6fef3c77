package systems

import (
	"go.uber.org/zap"

	"github.com/gonewx/fishio/pkg/collision"
	"github.com/gonewx/fishio/pkg/ecs"
	"github.com/gonewx/fishio/pkg/entities"
	"github.com/gonewx/fishio/pkg/logger"
)

// DespawnSystem 标记需要移除的鱼
//
//   - 已死亡的鱼
//   - 可以穿墙、且已经离开场地超过自身尺寸两倍的鱼
//
// 只做标记，真正的删除由 EntityManager.RemoveMarkedEntities 在帧末完成。
type DespawnSystem struct {
	em    *ecs.EntityManager
	field collision.Box
	log   *zap.Logger
}

// NewDespawnSystem 创建移除系统
func NewDespawnSystem(em *ecs.EntityManager, field collision.Box) *DespawnSystem {
	return &DespawnSystem{
		em:    em,
		field: field,
		log:   logger.Named("despawn"),
	}
}

// Update 返回本帧标记的实体数
func (s *DespawnSystem) Update() int {
	marked := 0
	for _, entry := range ecs.Query[entities.Fish](s.em) {
		fish := entry.Entity
		if fish.IsDead() || (fish.CanPassThroughWalls() && s.leftField(fish.BoundingArea().Bounds())) {
			s.em.DestroyEntity(entry.ID)
			marked++
		}
	}
	if marked > 0 {
		s.log.Debug("despawned fish", zap.Int("count", marked), zap.Int("remaining", s.em.Count()-marked))
	}
	return marked
}

func (s *DespawnSystem) leftField(b collision.Box) bool {
	margin := s.field.Expand(2*b.Width(), 2*b.Height())
	return !margin.Overlaps(b)
}
