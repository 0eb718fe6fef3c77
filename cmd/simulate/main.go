// simulate 无界面运行若干局游戏
//
// 玩家鱼由一个简单的策略控制：朝最近的可以吃掉的鱼游，同时躲开最近的危险鱼。
// 用于在调整 data/fishio.yaml 后快速检查难度。
//
// 用法:
//
//	go run ./cmd/simulate -rounds 20 -ticks 18000 -seed 1
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand/v2"

	"github.com/gonewx/fishio/pkg/config"
	"github.com/gonewx/fishio/pkg/entities"
	"github.com/gonewx/fishio/pkg/game"
	"github.com/gonewx/fishio/pkg/logger"
	"github.com/gonewx/fishio/pkg/vec"
)

// threatRadius 危险鱼进入该距离后开始躲避
const threatRadius = 300.0

func main() {
	configPath := flag.String("config", "data/fishio.yaml", "场地配置文件")
	rounds := flag.Int("rounds", 10, "模拟局数")
	maxTicks := flag.Int("ticks", 60*60*5, "每局最多帧数")
	seed := flag.Uint64("seed", 1, "随机种子")
	verbose := flag.Bool("verbose", false, "输出系统日志")
	flag.Parse()

	if *verbose {
		if err := logger.Init(true); err != nil {
			log.Fatalf("logger init failed: %v", err)
		}
		defer logger.Sync()
	}

	cfg, err := config.LoadFieldConfig(*configPath)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	scores := game.NewScoreManager(nil)
	rng := rand.New(rand.NewPCG(*seed, *seed))

	for round := 1; round <= *rounds; round++ {
		bot := &greedyBot{}
		field, err := game.NewPlayingField(cfg, game.FieldOptions{Input: bot, Rand: rng})
		if err != nil {
			log.Fatalf("创建场地失败: %v", err)
		}
		bot.field = field

		for field.Ticks() < *maxTicks && field.Update() {
		}

		player := field.Player()
		rank, _ := scores.Submit(player.Score(), player.Eaten(), field.Ticks())
		fmt.Printf("第 %2d 局: 得分 %5d  吃掉 %3d  存活 %6d 帧  尺寸 %8.0f  死亡 %-5v 排名 %d\n",
			round, player.Score(), player.Eaten(), field.Ticks(), player.Size(), player.IsDead(), rank)
	}

	fmt.Printf("最高分: %d\n", scores.Best())
}

// greedyBot 实现 entities.Input
type greedyBot struct {
	field *game.PlayingField
}

func (b *greedyBot) Steer() vec.Vec {
	if b.field == nil {
		return vec.Zero
	}
	player := b.field.Player()
	pos := player.Position()

	var prey, threat entities.Fish
	preyDist, threatDist := math.Inf(1), math.Inf(1)
	for _, fish := range b.field.Fishes() {
		if fish == entities.Fish(player) {
			continue
		}
		d := pos.Distance(fish.Position())
		if entities.Eats(player, fish) {
			if d < preyDist {
				prey, preyDist = fish, d
			}
		} else if d < threatDist {
			threat, threatDist = fish, d
		}
	}

	steer := vec.Zero
	if prey != nil {
		steer = steer.Add(prey.Position().Sub(pos).Normalize())
	}
	// 危险鱼越近，躲避权重越大
	if threat != nil && threatDist < threatRadius {
		away := pos.Sub(threat.Position()).Normalize()
		steer = steer.Add(away.Scale(threatRadius / math.Max(threatDist, 1)))
	}
	return steer
}
