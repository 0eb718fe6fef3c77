package game

import (
	"fmt"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/gonewx/fishio/pkg/collision"
	"github.com/gonewx/fishio/pkg/config"
	"github.com/gonewx/fishio/pkg/ecs"
	"github.com/gonewx/fishio/pkg/entities"
	"github.com/gonewx/fishio/pkg/logger"
	"github.com/gonewx/fishio/pkg/systems"
)

// PlayingField 游戏场地
//
// 持有实体管理器、玩家鱼和所有系统。每次 Update 推进一帧:
//
//	spawn -> movement -> collision -> despawn -> RemoveMarkedEntities
//
// 玩家死亡后 Update 不再推进。
type PlayingField struct {
	cfg   *config.FieldConfig
	field collision.Box
	em    *ecs.EntityManager

	player   *entities.PlayerFish
	playerID ecs.EntityID

	spawnSystem     *systems.SpawnSystem
	movementSystem  *systems.MovementSystem
	collisionSystem *systems.CollisionSystem
	despawnSystem   *systems.DespawnSystem

	ticks int
	log   *zap.Logger
}

// FieldOptions 创建场地的可选依赖
type FieldOptions struct {
	// Input 玩家输入，nil 时玩家不主动移动
	Input entities.Input

	// Sprites 敌方鱼精灵来源，nil 时敌方鱼使用实心矩形
	Sprites systems.SpriteProvider

	// SpriteNames 可选精灵名称
	SpriteNames []string

	// Rand 随机数源，nil 时使用随机种子
	Rand *rand.Rand
}

// NewPlayingField 创建场地并放置玩家鱼
//
// 参数:
//   - cfg: 场地配置（会先校验）
//   - opts: 可选依赖
//
// 返回:
//   - *PlayingField: 场地
//   - error: 配置无效
func NewPlayingField(cfg *config.FieldConfig, opts FieldOptions) (*PlayingField, error) {
	if cfg == nil {
		return nil, fmt.Errorf("playing field requires a config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid field config: %w", err)
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	em := ecs.NewEntityManager()
	field := *collision.NewBox(0, 0, cfg.Field.Width, cfg.Field.Height)
	playerID, player := entities.SpawnPlayerFish(em, cfg.Player, opts.Input)

	planner := systems.NewSpawnPlanner(rng)
	planner.MinSpeed = cfg.Enemy.MinSpeed
	planner.MinSizeFactor = cfg.Enemy.MinSizeFactor
	planner.MaxSizeFactor = cfg.Enemy.MaxSizeFactor

	pf := &PlayingField{
		cfg:             cfg,
		field:           field,
		em:              em,
		player:          player,
		playerID:        playerID,
		movementSystem:  systems.NewMovementSystem(em, field),
		collisionSystem: systems.NewCollisionSystem(em),
		despawnSystem:   systems.NewDespawnSystem(em, field),
		log:             logger.Named("field"),
	}
	pf.spawnSystem = systems.NewSpawnSystem(em, planner, rng, cfg, opts.Sprites, opts.SpriteNames, player.Size)

	pf.log.Info("playing field created",
		zap.Float64("width", cfg.Field.Width),
		zap.Float64("height", cfg.Field.Height),
		zap.Int("sprites", len(opts.SpriteNames)))
	return pf, nil
}

// Update 推进一帧
// 返回: 本帧结束时玩家是否存活
func (pf *PlayingField) Update() bool {
	if pf.player.IsDead() {
		return false
	}

	pf.spawnSystem.Update()
	pf.movementSystem.Update()
	pf.collisionSystem.Update()
	pf.despawnSystem.Update()
	pf.em.RemoveMarkedEntities()
	pf.ticks++

	if pf.player.IsDead() {
		pf.log.Info("player died",
			zap.Int("score", pf.player.Score()),
			zap.Int("eaten", pf.player.Eaten()),
			zap.Int("ticks", pf.ticks))
		return false
	}
	return true
}

// Fishes 场上所有鱼（按创建顺序），用于绘制
func (pf *PlayingField) Fishes() []entities.Fish {
	entries := ecs.Query[entities.Fish](pf.em)
	fishes := make([]entities.Fish, 0, len(entries))
	for _, e := range entries {
		fishes = append(fishes, e.Entity)
	}
	return fishes
}

// SpawnSystem 敌方鱼生成系统
func (pf *PlayingField) SpawnSystem() *systems.SpawnSystem { return pf.spawnSystem }

// EntityManager 实体管理器
func (pf *PlayingField) EntityManager() *ecs.EntityManager { return pf.em }

// Player 玩家鱼
func (pf *PlayingField) Player() *entities.PlayerFish { return pf.player }

// PlayerDead 玩家是否死亡
func (pf *PlayingField) PlayerDead() bool { return pf.player.IsDead() }

// Score 当前得分
func (pf *PlayingField) Score() int { return pf.player.Score() }

// Ticks 已推进的帧数
func (pf *PlayingField) Ticks() int { return pf.ticks }

// Field 场地矩形
func (pf *PlayingField) Field() collision.Box { return pf.field }

// Config 场地配置
func (pf *PlayingField) Config() *config.FieldConfig { return pf.cfg }
