package ecs

import (
	"reflect"
	"slices"
)

// EntityID 是实体的唯一标识符
type EntityID uint64

// EntityManager 管理场地上的所有实体
//
// 实体本身就是能力的载体（Collidable、Movable 等接口），
// 查询按接口类型进行。删除是延迟的：一帧内的所有碰撞检测完成之后
// 才会调用 RemoveMarkedEntities，避免在迭代中途改变实体集合。
type EntityManager struct {
	nextID   uint64
	entities map[EntityID]any
	// 待删除的实体ID列表
	entitiesToDestroy []EntityID
	marked            map[EntityID]struct{}
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:            1, // ID从1开始,0保留为无效ID
		entities:          make(map[EntityID]any),
		entitiesToDestroy: make([]EntityID, 0),
		marked:            make(map[EntityID]struct{}),
	}
}

// CreateEntity 注册实体并返回唯一ID
func (em *EntityManager) CreateEntity(entity any) EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.entities[id] = entity
	return id
}

// DestroyEntity 标记实体待删除(不立即删除)
// 同一帧内重复标记只记录一次
func (em *EntityManager) DestroyEntity(id EntityID) {
	if _, exists := em.entities[id]; !exists {
		return
	}
	if _, dup := em.marked[id]; dup {
		return
	}
	em.marked[id] = struct{}{}
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// IsMarked 实体是否已被标记删除
func (em *EntityManager) IsMarked(id EntityID) bool {
	_, ok := em.marked[id]
	return ok
}

// RemoveMarkedEntities 清理所有标记删除的实体，返回删除数量
func (em *EntityManager) RemoveMarkedEntities() int {
	removed := len(em.entitiesToDestroy)
	for _, id := range em.entitiesToDestroy {
		delete(em.entities, id)
		delete(em.marked, id)
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0] // 清空切片
	return removed
}

// GetEntity 获取实体
func (em *EntityManager) GetEntity(id EntityID) (any, bool) {
	e, ok := em.entities[id]
	return e, ok
}

// Count 当前实体数量（包括已标记但尚未删除的）
func (em *EntityManager) Count() int {
	return len(em.entities)
}

// IDs 按创建顺序返回所有实体ID
// map 遍历顺序不确定，排序后保证每帧处理顺序一致
func (em *EntityManager) IDs() []EntityID {
	ids := make([]EntityID, 0, len(em.entities))
	for id := range em.entities {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// GetEntitiesWith 查询实现了全部指定能力（接口类型）的实体
// 参数: capabilities ...reflect.Type - 接口类型，例如 CapabilityOf[components.Movable]()
// 返回: []EntityID - 按ID排序
func (em *EntityManager) GetEntitiesWith(capabilities ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)

	for _, id := range em.IDs() {
		t := reflect.TypeOf(em.entities[id])
		hasAll := t != nil
		for _, c := range capabilities {
			if !hasAll {
				break
			}
			hasAll = t.Implements(c)
		}
		if hasAll {
			result = append(result, id)
		}
	}

	return result
}

// CapabilityOf 返回接口 T 的 reflect.Type
func CapabilityOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Entry 查询结果：实体ID + 以能力类型表示的实体
type Entry[T any] struct {
	ID     EntityID
	Entity T
}

// Query 返回所有实现了 T 的实体（按ID排序）
func Query[T any](em *EntityManager) []Entry[T] {
	result := make([]Entry[T], 0)
	for _, id := range em.IDs() {
		if e, ok := em.entities[id].(T); ok {
			result = append(result, Entry[T]{ID: id, Entity: e})
		}
	}
	return result
}
