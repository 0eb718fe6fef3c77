package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gonewx/fishio/pkg/collision"
	"github.com/gonewx/fishio/pkg/ecs"
	"github.com/gonewx/fishio/pkg/entities"
	"github.com/gonewx/fishio/pkg/vec"
)

func TestDespawnSystem(t *testing.T) {
	field := *collision.NewBox(0, 0, 100, 100)

	tests := []struct {
		name   string
		center vec.Vec
		dead   bool
		want   bool
	}{
		{"场内存活", vec.New(50, 50), false, false},
		{"场内死亡", vec.New(50, 50), true, true},
		{"刚生成在场外", vec.New(-10, 50), false, false},
		{"离场不远", vec.New(-15, 50), false, false},
		{"远离左侧", vec.New(-50, 50), false, true},
		{"远离上方", vec.New(50, 160), false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			id, fish := entities.SpawnEnemyFish(em, tt.center, 10, 10, vec.Zero, nil)
			if tt.dead {
				fish.Kill()
			}

			marked := NewDespawnSystem(em, field).Update()
			assert.Equal(t, tt.want, em.IsMarked(id))
			if tt.want {
				assert.Equal(t, 1, marked)
				assert.Equal(t, 1, em.RemoveMarkedEntities())
				assert.Equal(t, 0, em.Count())
			} else {
				assert.Equal(t, 0, marked)
			}
		})
	}
}

func TestDespawnSystemKeepsLivePlayer(t *testing.T) {
	em := ecs.NewEntityManager()
	id, _ := entities.SpawnPlayerFish(em, playerAt(-500, -500), nil)

	NewDespawnSystem(em, testField()).Update()
	assert.False(t, em.IsMarked(id))
}
