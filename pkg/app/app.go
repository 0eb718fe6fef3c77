// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"context"
	"fmt"
	"image/color"
	"io/fs"
	"math/rand/v2"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
	"go.uber.org/zap"

	"github.com/gonewx/fishio/pkg/config"
	"github.com/gonewx/fishio/pkg/embedded"
	"github.com/gonewx/fishio/pkg/game"
	"github.com/gonewx/fishio/pkg/logger"
	"github.com/gonewx/fishio/pkg/scenes"
	"github.com/gonewx/fishio/pkg/utils"
)

// AppName gdata 存储使用的应用名
const AppName = "fishio"

// DefaultConfigPath 嵌入的默认场地配置
const DefaultConfigPath = "data/fishio.yaml"

// preloadTimeout 启动时预加载精灵的超时
const preloadTimeout = 10 * time.Second

// Config 定义应用启动配置
type Config struct {
	// ConfigPath 场地配置文件，为空时使用嵌入的 data/fishio.yaml
	ConfigPath string
	// SpriteDir 精灵目录（包含 sprites/fish/），为空时使用嵌入的 assets/
	SpriteDir string
	// Seed 随机种子，0 表示随机
	Seed uint64
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	settings                 *game.SettingsManager
	fieldConfig              *config.FieldConfig
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
	log                      *zap.Logger
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	log := logger.Named("app")

	fieldConfig, err := loadFieldConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("场地配置加载失败: %w", err)
	}

	spriteFS, err := openSpriteFS(cfg.SpriteDir)
	if err != nil {
		return nil, fmt.Errorf("精灵目录打开失败: %w", err)
	}
	sprites := game.NewSpriteCache(spriteFS)
	spriteNames := game.FishSpriteNames(spriteFS, fieldConfig.Enemy.SpriteCount)

	ctx, cancel := context.WithTimeout(context.Background(), preloadTimeout)
	defer cancel()
	if err := sprites.Preload(ctx, spriteNames); err != nil {
		return nil, fmt.Errorf("精灵加载失败: %w", err)
	}
	if len(spriteNames) == 0 {
		log.Warn("no fish sprites found, enemies will be drawn as boxes")
	}

	storage := openStorage(log)
	scores := game.NewScoreManager(storage)
	settings := game.NewSettingsManager(storage)

	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func() game.Scene {
		input := &utils.SteeringInput{FieldHeight: fieldConfig.Field.Height}
		field, err := game.NewPlayingField(fieldConfig, game.FieldOptions{
			Input:       input,
			Sprites:     sprites,
			SpriteNames: spriteNames,
			Rand:        rng,
		})
		if err != nil {
			log.Error("failed to create playing field", zap.Error(err))
			return nil
		}
		input.Position = field.Player().Position
		return scenes.NewPlayScene(field, sprites, scores, settings, sceneManager)
	})
	if !sceneManager.Restart() {
		return nil, fmt.Errorf("无法创建游戏场景")
	}

	log.Info("app initialized",
		zap.Int("sprites", len(spriteNames)),
		zap.Int("bestScore", scores.Best()),
		zap.Bool("mobile", utils.IsMobile()))

	return &App{
		sceneManager: sceneManager,
		settings:     settings,
		fieldConfig:  fieldConfig,
		log:          log,
	}, nil
}

// loadFieldConfig 优先读取磁盘上的配置，否则使用嵌入的默认配置
func loadFieldConfig(path string) (*config.FieldConfig, error) {
	if path != "" {
		return config.LoadFieldConfig(path)
	}
	data, err := embedded.ReadFile(DefaultConfigPath)
	if err != nil {
		return nil, err
	}
	return config.ParseFieldConfig(data)
}

// openSpriteFS 精灵文件系统，根目录下是 sprites/fish/
func openSpriteFS(dir string) (fs.FS, error) {
	if dir == "" {
		return embedded.Sub("assets")
	}
	if _, err := os.Stat(dir); err != nil {
		return nil, err
	}
	return os.DirFS(dir), nil
}

// openStorage 打开 gdata，失败时返回 nil（排行榜降级为仅内存）
func openStorage(log *zap.Logger) *gdata.Manager {
	if err := utils.EnsureStorageDir(AppName); err != nil {
		log.Warn("failed to prepare storage directory", zap.Error(err))
	}
	manager, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Warn("gdata unavailable, high scores will not be saved", zap.Error(err))
		return nil
	}
	return manager
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			w, h := a.Layout(0, 0)
			ebiten.SetWindowSize(w, h)
			a.pendingWindowSizeReset = false
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.SaveOnExit()
		return ebiten.Termination
	}

	// F3 切换碰撞区域显示
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		a.settings.ToggleHitboxes()
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		fullscreen := !ebiten.IsFullscreen()
		a.settings.SetFullscreen(fullscreen)
		if err := a.settings.Save(); err != nil {
			a.log.Warn("failed to save settings", zap.Error(err))
		}
		if !fullscreen {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	a.sceneManager.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时左右留黑边，并用线性滤波缩放
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 逻辑屏幕尺寸等于场地尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(a.fieldConfig.Field.Width), int(a.fieldConfig.Field.Height)
}

// Settings 显示设置
func (a *App) Settings() *game.SettingsManager {
	return a.settings
}

// SaveOnExit 退出前保存进行中的一局
func (a *App) SaveOnExit() bool {
	return a.sceneManager.SaveOnExit()
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}
