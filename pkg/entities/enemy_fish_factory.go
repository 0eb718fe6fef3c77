package entities

import (
	"github.com/gonewx/fishio/pkg/collision"
	"github.com/gonewx/fishio/pkg/components"
	"github.com/gonewx/fishio/pkg/ecs"
	"github.com/gonewx/fishio/pkg/vec"
)

// EnemyFish 敌方鱼
//
// 从场地外生成，沿直线游动，可以穿过边界；
// 碰到比自己大的玩家鱼时被吃掉。
type EnemyFish struct {
	components.Body

	// Sprite 精灵名称，绘制时使用，没有精灵时为空
	Sprite string

	dead bool
}

var _ Fish = (*EnemyFish)(nil)

// NewEnemyFish 创建敌方鱼
//
// 参数:
//   - area: 碰撞区域（通常是像素蒙板），所有权转移给鱼
//   - velocity: 初始速度
//   - sprite: 精灵名称
func NewEnemyFish(area collision.Area, velocity vec.Vec, sprite string) *EnemyFish {
	return &EnemyFish{
		Body:   components.NewBody(area, velocity),
		Sprite: sprite,
	}
}

// SpawnEnemyFish 创建敌方鱼并注册到 EntityManager
//
// 参数:
//   - manager: EntityManager 实例
//   - center, width, height: 碰撞区域
//   - velocity: 初始速度
//   - sprite: 精灵数据，nil 时使用实心矩形碰撞区域
//
// 返回: 创建的实体ID 和鱼本身
func SpawnEnemyFish(manager *ecs.EntityManager, center vec.Vec, width, height float64, velocity vec.Vec, sprite *components.Sprite) (ecs.EntityID, *EnemyFish) {
	var (
		area collision.Area
		name string
	)
	if sprite != nil && sprite.Alpha != nil {
		area = collision.NewMask(center, width, height, sprite.Alpha, sprite.AlphaRatio)
		name = sprite.Name
	} else {
		area = collision.NewBoxAt(center, width, height)
	}

	fish := NewEnemyFish(area, velocity, name)
	id := manager.CreateEntity(fish)
	return id, fish
}

// Size 碰撞区域的特征尺寸
func (e *EnemyFish) Size() float64 { return e.BoundingArea().Size() }

// IsDead 是否已被吃掉
func (e *EnemyFish) IsDead() bool { return e.dead }

// Kill 标记死亡
func (e *EnemyFish) Kill() { e.dead = true }

// OnCollide 被更大的玩家鱼吃掉
// 同一帧内已经死亡的玩家不再吃鱼，与 PlayerFish.OnCollide 保持一致
func (e *EnemyFish) OnCollide(other components.Collidable) {
	if player, ok := other.(*PlayerFish); ok && !player.IsDead() && Eats(player, e) {
		e.dead = true
	}
}

// CanPassThroughWalls 敌方鱼从场地外游进来，也会游出去
func (e *EnemyFish) CanPassThroughWalls() bool { return true }

// OnWallHit 不会被调用
func (e *EnemyFish) OnWallHit() {}

// BeforeMove 直线游动，不调整速度
func (e *EnemyFish) BeforeMove() {}
