package entities

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gonewx/fishio/pkg/collision"
	"github.com/gonewx/fishio/pkg/components"
	"github.com/gonewx/fishio/pkg/config"
	"github.com/gonewx/fishio/pkg/ecs"
	"github.com/gonewx/fishio/pkg/vec"
)

func testPlayerConfig() config.PlayerConfig {
	return config.DefaultFieldConfig().Player
}

func TestSpawnPlayerFish(t *testing.T) {
	em := ecs.NewEntityManager()
	id, player := SpawnPlayerFish(em, testPlayerConfig(), nil)

	got, ok := em.GetEntity(id)
	require.True(t, ok)
	assert.Same(t, player, got)

	assert.Equal(t, vec.New(640, 335), player.Position())
	assert.InDelta(t, 6400.0, player.Size(), 1e-9)
	assert.False(t, player.CanPassThroughWalls())
}

func TestSpawnEnemyFishUsesMaskWhenSpriteHasAlpha(t *testing.T) {
	em := ecs.NewEntityManager()
	sprite := &components.Sprite{
		Name:       "sprites/fish/fish1.png",
		Alpha:      collision.NewFilledGrid(4, 2),
		AlphaRatio: 0.5,
		Aspect:     2,
	}

	_, fish := SpawnEnemyFish(em, vec.New(-20, 100), 20, 10, vec.New(2, 1), sprite)
	assert.Equal(t, collision.KindMask, fish.BoundingArea().Kind())
	assert.InDelta(t, 100.0, fish.Size(), 1e-9)
	assert.Equal(t, "sprites/fish/fish1.png", fish.Sprite)
	assert.True(t, fish.CanPassThroughWalls())

	_, plain := SpawnEnemyFish(em, vec.New(0, 0), 20, 10, vec.New(1, 1), nil)
	assert.Equal(t, collision.KindBox, plain.BoundingArea().Kind())
	assert.InDelta(t, 200.0, plain.Size(), 1e-9)
	assert.Equal(t, 2, em.Count())
}

func TestPlayerEatsSmallerFish(t *testing.T) {
	player := NewPlayerFish(testPlayerConfig(), nil)
	small := NewEnemyFish(collision.NewBoxAt(vec.New(640, 335), 10, 10), vec.Zero, "")

	require.True(t, components.CollidesWith(player, small))
	before := player.Size()
	aspect := player.box.Width() / player.box.Height()

	// 反应顺序不影响结果
	small.OnCollide(player)
	player.OnCollide(small)

	assert.True(t, small.IsDead())
	assert.False(t, player.IsDead())
	assert.Equal(t, 1, player.Eaten())
	assert.InDelta(t, before+0.1*100, player.Size(), 1e-9)
	assert.InDelta(t, aspect, player.box.Width()/player.box.Height(), 1e-9)
	assert.InDelta(t, 0, player.Position().Distance(vec.New(640, 335)), 1e-9)
}

func TestPlayerDiesOnBiggerFish(t *testing.T) {
	tests := []struct {
		name string
		size float64 // 敌方鱼边长
	}{
		{"更大", 200},
		{"一样大", 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testPlayerConfig()
			cfg.Width, cfg.Height = 80, 80
			player := NewPlayerFish(cfg, nil)
			big := NewEnemyFish(collision.NewBoxAt(vec.New(640, 335), tt.size, tt.size), vec.Zero, "")

			player.OnCollide(big)
			big.OnCollide(player)

			assert.True(t, player.IsDead())
			assert.False(t, big.IsDead())
			assert.Equal(t, 0, player.Eaten())
		})
	}
}

func TestPlayerSteering(t *testing.T) {
	cfg := testPlayerConfig()
	steer := vec.Right.Normal()
	player := NewPlayerFish(cfg, InputFunc(func() vec.Vec { return steer }))

	player.BeforeMove()
	assert.InDelta(t, cfg.Acceleration, player.Velocity().X, 1e-9)

	// 速度不会超过上限
	for i := 0; i < 100; i++ {
		player.BeforeMove()
	}
	assert.InDelta(t, cfg.MaxSpeed, components.Speed(player), 1e-9)

	// 无输入时减速
	steer = vec.Zero
	player.BeforeMove()
	assert.InDelta(t, cfg.MaxSpeed*cfg.Friction, components.Speed(player), 1e-9)

	// 撞墙停下
	player.OnWallHit()
	assert.Equal(t, vec.Zero, player.Velocity())
}

func TestDeadPlayerStopsMoving(t *testing.T) {
	player := NewPlayerFish(testPlayerConfig(), InputFunc(func() vec.Vec { return vec.New(1, 1) }))
	player.SetVelocity(vec.New(3, 0))
	player.dead = true
	player.BeforeMove()
	assert.Equal(t, vec.Zero, player.Velocity())
}

func TestEnemyIgnoresOtherEnemies(t *testing.T) {
	a := NewEnemyFish(collision.NewBoxAt(vec.Zero, 10, 10), vec.Zero, "")
	b := NewEnemyFish(collision.NewBoxAt(vec.Zero, 100, 100), vec.Zero, "")
	a.OnCollide(b)
	b.OnCollide(a)
	assert.False(t, a.IsDead())
	assert.False(t, b.IsDead())
}

func TestPlayerScore(t *testing.T) {
	player := NewPlayerFish(testPlayerConfig(), nil)
	for i := 0; i < 3; i++ {
		player.OnCollide(NewEnemyFish(collision.NewBoxAt(vec.Zero, 20, 20), vec.Zero, ""))
	}
	assert.Equal(t, 3, player.Eaten())
	assert.Equal(t, int(math.Floor(3*400.0/100)), player.Score())
}

func TestPlayerIgnoresDeadFish(t *testing.T) {
	player := NewPlayerFish(testPlayerConfig(), nil)
	big := NewEnemyFish(collision.NewBoxAt(vec.Zero, 200, 200), vec.Zero, "")
	big.Kill()

	player.OnCollide(big)
	assert.False(t, player.IsDead())
	assert.Equal(t, 0, player.Eaten())
}

func TestDeadPlayerDoesNotEat(t *testing.T) {
	player := NewPlayerFish(testPlayerConfig(), nil)
	big := NewEnemyFish(collision.NewBoxAt(vec.New(640, 335), 200, 200), vec.Zero, "")
	small := NewEnemyFish(collision.NewBoxAt(vec.New(640, 335), 10, 10), vec.Zero, "")

	// 同一帧: 先撞上大鱼死亡，再碰到小鱼
	player.OnCollide(big)
	big.OnCollide(player)
	player.OnCollide(small)
	small.OnCollide(player)

	require.True(t, player.IsDead())
	assert.False(t, small.IsDead(), "small fish survives a dead player")
	assert.Equal(t, 0, player.Eaten())
}
