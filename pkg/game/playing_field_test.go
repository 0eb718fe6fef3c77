package game

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gonewx/fishio/pkg/collision"
	"github.com/gonewx/fishio/pkg/config"
	"github.com/gonewx/fishio/pkg/entities"
	"github.com/gonewx/fishio/pkg/vec"
)

func newTestField(t *testing.T, cfg *config.FieldConfig, opts FieldOptions) *PlayingField {
	t.Helper()
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(42, 1024))
	}
	pf, err := NewPlayingField(cfg, opts)
	require.NoError(t, err)
	return pf
}

func TestNewPlayingFieldRejectsInvalidConfig(t *testing.T) {
	_, err := NewPlayingField(nil, FieldOptions{})
	assert.Error(t, err)

	cfg := config.DefaultFieldConfig()
	cfg.Field.Width = 0
	_, err = NewPlayingField(cfg, FieldOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid field config")
}

func TestPlayingFieldStartsWithPlayer(t *testing.T) {
	pf := newTestField(t, config.DefaultFieldConfig(), FieldOptions{})

	fishes := pf.Fishes()
	require.Len(t, fishes, 1)
	assert.Same(t, pf.Player(), fishes[0])
	assert.False(t, pf.PlayerDead())
	assert.Equal(t, 0, pf.Score())
	assert.True(t, pf.Field().Equal(*collision.NewBox(0, 0, 1280, 670)))
}

func TestPlayingFieldSpawnsEnemiesOverTime(t *testing.T) {
	cfg := config.DefaultFieldConfig()
	cfg.Enemy.SpawnInterval = 5
	pf := newTestField(t, cfg, FieldOptions{})

	for i := 0; i < 4; i++ {
		require.True(t, pf.Update())
	}
	assert.Len(t, pf.Fishes(), 1)

	pf.Update()
	assert.Len(t, pf.Fishes(), 2)
	assert.Equal(t, 5, pf.Ticks())
}

func TestPlayingFieldPlayerEatsAndDies(t *testing.T) {
	cfg := config.DefaultFieldConfig()
	pf := newTestField(t, cfg, FieldOptions{})
	pf.SpawnSystem().Disable()

	// 小鱼放在玩家正中间
	_, small := entities.SpawnEnemyFish(pf.EntityManager(), vec.New(640, 335), 10, 10, vec.Zero, nil)
	require.True(t, pf.Update())
	assert.True(t, small.IsDead())
	assert.Equal(t, 1, pf.Player().Eaten())
	assert.Len(t, pf.Fishes(), 1, "eaten fish is removed at the end of the tick")

	// 大鱼从右侧游进来
	_, _ = entities.SpawnEnemyFish(pf.EntityManager(), vec.New(800, 335), 200, 200, vec.New(-4, 0), nil)
	alive := true
	for i := 0; i < 100 && alive; i++ {
		alive = pf.Update()
	}
	assert.False(t, alive)
	assert.True(t, pf.PlayerDead())

	// 死亡后不再推进
	ticks := pf.Ticks()
	assert.False(t, pf.Update())
	assert.Equal(t, ticks, pf.Ticks())
}

func TestPlayingFieldDespawnsFishThatLeft(t *testing.T) {
	pf := newTestField(t, config.DefaultFieldConfig(), FieldOptions{})
	pf.SpawnSystem().Disable()

	_, fish := entities.SpawnEnemyFish(pf.EntityManager(), vec.New(20, 600), 10, 10, vec.New(-4, 0), nil)
	for i := 0; i < 20; i++ {
		pf.Update()
	}
	assert.Less(t, fish.Position().X, -25.0)
	assert.Len(t, pf.Fishes(), 1)
}

func TestPlayingFieldUsesSprites(t *testing.T) {
	cfg := config.DefaultFieldConfig()
	cfg.Enemy.SpawnInterval = 1
	cache := NewSpriteCache(testSpriteFS(t))

	pf := newTestField(t, cfg, FieldOptions{
		Sprites:     cache,
		SpriteNames: []string{FishSpriteName(0)},
	})
	pf.Update()

	fishes := pf.Fishes()
	require.Len(t, fishes, 2)
	enemy, ok := fishes[1].(*entities.EnemyFish)
	require.True(t, ok)
	assert.Equal(t, FishSpriteName(0), enemy.Sprite)
	assert.Equal(t, collision.KindMask, enemy.BoundingArea().Kind())
	assert.Equal(t, 1, cache.Len())
}

func TestPlayingFieldPlayerStaysInside(t *testing.T) {
	cfg := config.DefaultFieldConfig()
	steer := vec.Up.Normal()
	pf := newTestField(t, cfg, FieldOptions{
		Input: entities.InputFunc(func() vec.Vec { return steer }),
	})
	pf.SpawnSystem().Disable()

	for i := 0; i < 300; i++ {
		pf.Update()
		require.True(t, pf.Field().Contains(pf.Player().BoundingArea().Bounds()))
	}
	// 撞墙后停下，距离上边界不超过一帧的加速度
	maxY := pf.Player().BoundingArea().Bounds().MaxY
	assert.Greater(t, maxY, cfg.Field.Height-cfg.Player.Acceleration-1e-9)
}
