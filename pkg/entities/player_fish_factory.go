package entities

import (
	"math"

	"github.com/gonewx/fishio/pkg/collision"
	"github.com/gonewx/fishio/pkg/components"
	"github.com/gonewx/fishio/pkg/config"
	"github.com/gonewx/fishio/pkg/ecs"
	"github.com/gonewx/fishio/pkg/vec"
)

// Input 玩家输入
type Input interface {
	// Steer 期望的移动方向，零向量表示没有输入
	Steer() vec.Vec
}

// InputFunc 函数适配 Input
type InputFunc func() vec.Vec

// Steer 实现 Input
func (f InputFunc) Steer() vec.Vec { return f() }

// PlayerFish 玩家鱼
//
// 碰撞区域是普通矩形；按输入加速，无输入时按摩擦系数减速；
// 撞墙时停下。吃掉比自己小的鱼后按比例长大，碰到不比自己小的鱼则死亡。
type PlayerFish struct {
	components.Body

	box   *collision.Box
	input Input
	cfg   config.PlayerConfig

	dead  bool
	eaten int
	score float64
}

var _ Fish = (*PlayerFish)(nil)

// NewPlayerFish 按配置创建玩家鱼
//
// 参数:
//   - cfg: 玩家配置（初始位置、尺寸、加速度等）
//   - input: 输入源，nil 时玩家不主动移动
func NewPlayerFish(cfg config.PlayerConfig, input Input) *PlayerFish {
	if input == nil {
		input = InputFunc(func() vec.Vec { return vec.Zero })
	}
	box := collision.NewBoxAt(vec.New(cfg.X, cfg.Y), cfg.Width, cfg.Height)
	return &PlayerFish{
		Body:  components.NewBody(box, vec.Zero),
		box:   box,
		input: input,
		cfg:   cfg,
	}
}

// SpawnPlayerFish 创建玩家鱼并注册到 EntityManager
//
// 返回: 创建的实体ID 和玩家鱼
func SpawnPlayerFish(manager *ecs.EntityManager, cfg config.PlayerConfig, input Input) (ecs.EntityID, *PlayerFish) {
	player := NewPlayerFish(cfg, input)
	return manager.CreateEntity(player), player
}

// Size 矩形面积
func (p *PlayerFish) Size() float64 { return p.box.Size() }

// IsDead 是否死亡
func (p *PlayerFish) IsDead() bool { return p.dead }

// Eaten 已吃掉的鱼数量
func (p *PlayerFish) Eaten() int { return p.eaten }

// Score 得分：吃掉的鱼的尺寸之和 / 100
func (p *PlayerFish) Score() int { return int(p.score) }

// OnCollide 与敌方鱼碰撞：比对方大就吃掉，否则死亡
// 已死亡（等待移除）的鱼不再参与
func (p *PlayerFish) OnCollide(other components.Collidable) {
	fish, ok := other.(Fish)
	if !ok || p.dead || fish.IsDead() {
		return
	}
	if Eats(p, fish) {
		p.eat(fish.Size())
		return
	}
	p.dead = true
}

// eat 面积增加 growth*eatenSize，保持宽高比和中心点
func (p *PlayerFish) eat(size float64) {
	p.eaten++
	p.score += size / 100

	oldArea := p.box.Size()
	if oldArea <= 0 {
		return
	}
	factor := math.Sqrt((oldArea + p.cfg.Growth*size) / oldArea)
	*p.box = *collision.NewBoxAt(p.box.Center(), p.box.Width()*factor, p.box.Height()*factor)
}

// CanPassThroughWalls 玩家不能离开场地
func (p *PlayerFish) CanPassThroughWalls() bool { return false }

// OnWallHit 撞墙后停下
func (p *PlayerFish) OnWallHit() {
	p.SetVelocity(vec.Zero)
}

// BeforeMove 根据输入调整速度
func (p *PlayerFish) BeforeMove() {
	if p.dead {
		p.SetVelocity(vec.Zero)
		return
	}

	steer := p.input.Steer()
	if steer.IsZero() {
		p.SetVelocity(p.Velocity().Scale(p.cfg.Friction))
		return
	}

	p.SetVelocity(p.Velocity().Add(steer.Normalize().Scale(p.cfg.Acceleration)))
	if components.Speed(p) > p.cfg.MaxSpeed {
		components.SetSpeed(p, p.cfg.MaxSpeed)
	}
}
