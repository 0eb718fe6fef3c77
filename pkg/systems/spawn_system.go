package systems

import (
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/gonewx/fishio/pkg/components"
	"github.com/gonewx/fishio/pkg/config"
	"github.com/gonewx/fishio/pkg/ecs"
	"github.com/gonewx/fishio/pkg/entities"
	"github.com/gonewx/fishio/pkg/logger"
)

// SpriteProvider 提供精灵的碰撞数据
type SpriteProvider interface {
	Sprite(name string) (*components.Sprite, error)
}

// SpawnSystem 定时生成敌方鱼
//
// 每 SpawnInterval 帧尝试生成一条，场上敌方鱼达到 MaxEnemies 时跳过。
// 新鱼的尺寸以 weight()（通常是玩家当前尺寸）为参考。
type SpawnSystem struct {
	em      *ecs.EntityManager
	planner *SpawnPlanner
	rng     *rand.Rand
	field   config.FieldSize
	enemy   config.EnemyConfig
	sprites SpriteProvider
	names   []string
	weight  func() float64
	timer   components.Timer
	enabled bool // 是否启用自动生成
	log     *zap.Logger
}

// NewSpawnSystem 创建敌方鱼生成系统
//
// 参数:
//   - em: 实体管理器
//   - planner: 生成算法
//   - rng: 选择精灵用的随机数源
//   - cfg: 场地配置
//   - sprites: 精灵来源，nil 时生成实心矩形鱼
//   - names: 可选精灵名称
//   - weight: 尺寸参考
func NewSpawnSystem(
	em *ecs.EntityManager,
	planner *SpawnPlanner,
	rng *rand.Rand,
	cfg *config.FieldConfig,
	sprites SpriteProvider,
	names []string,
	weight func() float64,
) *SpawnSystem {
	log := logger.Named("spawn")
	log.Info("spawn system initialized",
		zap.Int("interval", cfg.Enemy.SpawnInterval),
		zap.Int("maxEnemies", cfg.Enemy.MaxEnemies),
		zap.Int("sprites", len(names)))

	return &SpawnSystem{
		em:      em,
		planner: planner,
		rng:     rng,
		field:   cfg.Field,
		enemy:   cfg.Enemy,
		sprites: sprites,
		names:   names,
		weight:  weight,
		timer:   components.Timer{Name: "enemy_spawn", Target: cfg.Enemy.SpawnInterval},
		enabled: true,
		log:     log,
	}
}

// Update 累加计时器，到达间隔时生成一条鱼
func (s *SpawnSystem) Update() {
	if !s.enabled {
		return
	}

	if !s.timer.Tick() {
		return
	}

	if len(ecs.Query[*entities.EnemyFish](s.em)) >= s.enemy.MaxEnemies {
		return
	}
	s.SpawnOne()
}

// SpawnOne 立即生成一条敌方鱼
func (s *SpawnSystem) SpawnOne() (ecs.EntityID, *entities.EnemyFish) {
	sprite := s.pickSprite()
	aspect := s.enemy.DefaultAspect
	if sprite != nil && sprite.Aspect > 0 {
		aspect = sprite.Aspect
	}

	plan := s.planner.Spawn(s.weight(), s.field.Width, s.field.Height, s.enemy.MaxSpeed, aspect)
	id, fish := entities.SpawnEnemyFish(s.em, plan.Position, plan.Width, plan.Height, plan.Velocity, sprite)

	s.log.Debug("spawned enemy fish",
		zap.Uint64("entity", uint64(id)),
		zap.Stringer("edge", plan.Edge),
		zap.Float64("size", fish.Size()),
		zap.Float64("vx", plan.Velocity.X),
		zap.Float64("vy", plan.Velocity.Y))
	return id, fish
}

// pickSprite 随机选择精灵，加载失败时退回矩形鱼
func (s *SpawnSystem) pickSprite() *components.Sprite {
	if s.sprites == nil || len(s.names) == 0 {
		return nil
	}
	name := s.names[s.rng.IntN(len(s.names))]
	sprite, err := s.sprites.Sprite(name)
	if err != nil {
		s.log.Warn("failed to load sprite, using plain box", zap.String("sprite", name), zap.Error(err))
		return nil
	}
	return sprite
}

// Enable 启用自动生成
func (s *SpawnSystem) Enable() {
	s.enabled = true
}

// Disable 禁用自动生成
func (s *SpawnSystem) Disable() {
	s.enabled = false
}
