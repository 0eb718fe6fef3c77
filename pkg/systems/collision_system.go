package systems

import (
	"github.com/gonewx/fishio/pkg/components"
	"github.com/gonewx/fishio/pkg/ecs"
)

// Contact 一对相交的实体
type Contact struct {
	A ecs.EntityID
	B ecs.EntityID
}

// CollisionSystem 两两检测可碰撞实体
//
// 先完成本帧所有相交检测，再统一触发 OnCollide，
// 反应（死亡、成长）不会影响本帧其他实体对的检测结果。
type CollisionSystem struct {
	em *ecs.EntityManager
}

// NewCollisionSystem 创建碰撞系统
func NewCollisionSystem(em *ecs.EntityManager) *CollisionSystem {
	return &CollisionSystem{em: em}
}

// Update 检测并处理碰撞
// 返回: 本帧相交的实体对（按ID排序）
func (s *CollisionSystem) Update() []Contact {
	entries := ecs.Query[components.Collidable](s.em)

	// 1. 检测
	contacts := make([]Contact, 0)
	pairs := make([][2]components.Collidable, 0)
	for i := 0; i < len(entries); i++ {
		if s.em.IsMarked(entries[i].ID) {
			continue
		}
		for j := i + 1; j < len(entries); j++ {
			if s.em.IsMarked(entries[j].ID) {
				continue
			}
			a, b := entries[i].Entity, entries[j].Entity
			if components.CollidesWith(a, b) {
				contacts = append(contacts, Contact{A: entries[i].ID, B: entries[j].ID})
				pairs = append(pairs, [2]components.Collidable{a, b})
			}
		}
	}

	// 2. 反应
	for _, p := range pairs {
		p[0].OnCollide(p[1])
		p[1].OnCollide(p[0])
	}

	return contacts
}
