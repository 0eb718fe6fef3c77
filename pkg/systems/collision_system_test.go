package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gonewx/fishio/pkg/ecs"
	"github.com/gonewx/fishio/pkg/entities"
	"github.com/gonewx/fishio/pkg/vec"
)

func TestCollisionSystemPlayerEatsSmallerFish(t *testing.T) {
	em := ecs.NewEntityManager()
	playerID, player := entities.SpawnPlayerFish(em, playerAt(640, 335), nil)
	smallID, small := entities.SpawnEnemyFish(em, vec.New(640, 335), 10, 10, vec.Zero, nil)
	_, far := entities.SpawnEnemyFish(em, vec.New(100, 100), 10, 10, vec.Zero, nil)

	contacts := NewCollisionSystem(em).Update()
	require.Len(t, contacts, 1)
	assert.Equal(t, Contact{A: playerID, B: smallID}, contacts[0])

	assert.True(t, small.IsDead())
	assert.False(t, far.IsDead())
	assert.False(t, player.IsDead())
	assert.Equal(t, 1, player.Eaten())
}

func TestCollisionSystemPlayerDiesOnBiggerFish(t *testing.T) {
	em := ecs.NewEntityManager()
	_, player := entities.SpawnPlayerFish(em, playerAt(640, 335), nil)
	_, big := entities.SpawnEnemyFish(em, vec.New(700, 335), 200, 200, vec.Zero, nil)

	NewCollisionSystem(em).Update()
	assert.True(t, player.IsDead())
	assert.False(t, big.IsDead())
}

func TestCollisionSystemEatenCountMatchesDeadFish(t *testing.T) {
	em := ecs.NewEntityManager()
	_, player := entities.SpawnPlayerFish(em, playerAt(640, 335), nil)
	// 大鱼先于小鱼创建，同一帧内玩家先死
	_, big := entities.SpawnEnemyFish(em, vec.New(700, 335), 200, 200, vec.Zero, nil)
	_, small := entities.SpawnEnemyFish(em, vec.New(640, 335), 10, 10, vec.Zero, nil)

	contacts := NewCollisionSystem(em).Update()
	assert.Len(t, contacts, 3)
	assert.True(t, player.IsDead())
	assert.False(t, big.IsDead())
	assert.False(t, small.IsDead())
	assert.Equal(t, 0, player.Eaten())
}

func TestCollisionSystemDetectsBeforeReacting(t *testing.T) {
	em := ecs.NewEntityManager()
	_, player := entities.SpawnPlayerFish(em, playerAt(640, 335), nil)
	smallID, small := entities.SpawnEnemyFish(em, vec.New(640, 335), 10, 10, vec.Zero, nil)
	// 玩家右边界在 690，这条鱼左边界在 690.01：只有玩家长大后才会相交
	_, edge := entities.SpawnEnemyFish(em, vec.New(695.01, 335), 10, 10, vec.Zero, nil)

	sys := NewCollisionSystem(em)
	assert.Len(t, sys.Update(), 1)
	assert.True(t, small.IsDead())
	assert.False(t, edge.IsDead())
	assert.Greater(t, player.BoundingArea().Bounds().MaxX, 690.01)

	// 下一帧才会检测到
	em.DestroyEntity(smallID)
	em.RemoveMarkedEntities()
	contacts := sys.Update()
	assert.Len(t, contacts, 1)
	assert.True(t, edge.IsDead())
	assert.Equal(t, 2, player.Eaten())
}

func TestCollisionSystemSkipsMarkedEntities(t *testing.T) {
	em := ecs.NewEntityManager()
	_, player := entities.SpawnPlayerFish(em, playerAt(640, 335), nil)
	id, big := entities.SpawnEnemyFish(em, vec.New(640, 335), 200, 200, vec.Zero, nil)
	em.DestroyEntity(id)

	assert.Empty(t, NewCollisionSystem(em).Update())
	assert.False(t, player.IsDead())
	assert.False(t, big.IsDead())
}
