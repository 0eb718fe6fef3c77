package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/gonewx/fishio/pkg/app"
	"github.com/gonewx/fishio/pkg/embedded"
	"github.com/gonewx/fishio/pkg/logger"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用调试日志")
	configPath := flag.String("config", "", "场地配置文件（默认使用内置的 data/fishio.yaml）")
	spriteDir := flag.String("sprites", "", "精灵目录，包含 sprites/fish/fishN.png（默认使用内置资源）")
	seed := flag.Uint64("seed", 0, "随机种子，0 表示随机")
	flag.Parse()

	if err := logger.Init(*verbose); err != nil {
		fmt.Fprintf(os.Stderr, "logger init failed: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Named("main")

	embedded.Init(assetsFS, dataFS)

	gameApp, err := app.NewApp(app.Config{
		ConfigPath: *configPath,
		SpriteDir:  *spriteDir,
		Seed:       *seed,
	})
	if err != nil {
		log.Fatal("游戏初始化失败", zap.Error(err))
	}

	w, h := gameApp.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Fish.io")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(gameApp.Settings().GetSettings().Fullscreen)

	if err := ebiten.RunGame(gameApp); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("game loop exited with error", zap.Error(err))
	}

	// 窗口关闭时保存进行中的一局
	if !gameApp.SaveOnExit() {
		log.Warn("failed to save score on exit")
	}
}
