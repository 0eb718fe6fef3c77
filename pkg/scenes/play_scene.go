// Package scenes 实现游戏中的各个场景
package scenes

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"github.com/gonewx/fishio/pkg/collision"
	"github.com/gonewx/fishio/pkg/entities"
	"github.com/gonewx/fishio/pkg/game"
	"github.com/gonewx/fishio/pkg/logger"
	"github.com/gonewx/fishio/pkg/utils"
)

var (
	waterColor      = color.RGBA{R: 18, G: 64, B: 110, A: 255}
	playerColor     = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	deadPlayerColor = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	smallerColor    = color.RGBA{R: 90, G: 200, B: 120, A: 255} // 可以吃掉
	biggerColor     = color.RGBA{R: 220, G: 60, B: 60, A: 255}  // 危险
	overlayColor    = color.RGBA{R: 0, G: 0, B: 0, A: 120}
	hitboxColor     = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	maskHitboxColor = color.RGBA{R: 0, G: 255, B: 255, A: 255}
)

// PlayScene 一局游戏
//
// 每次 Update 推进场地一帧；玩家死亡后提交成绩，按 R / 点击开始新的一局。
type PlayScene struct {
	field        *game.PlayingField
	sprites      *game.SpriteCache // 可为 nil，敌方鱼绘制为矩形
	scores       *game.ScoreManager
	settings     *game.SettingsManager // 可为 nil
	sceneManager *game.SceneManager

	submitted bool
	rank      int

	// restartRequested 检测重新开始的输入，测试中可以替换
	restartRequested func() bool

	log *zap.Logger
}

// NewPlayScene 创建游戏场景
//
// 参数:
//   - field: 场地
//   - sprites: 精灵缓存，可为 nil
//   - scores: 排行榜
//   - settings: 显示设置，可为 nil
//   - sceneManager: 用于重新开始
func NewPlayScene(field *game.PlayingField, sprites *game.SpriteCache, scores *game.ScoreManager, settings *game.SettingsManager, sceneManager *game.SceneManager) *PlayScene {
	return &PlayScene{
		field:            field,
		sprites:          sprites,
		scores:           scores,
		settings:         settings,
		sceneManager:     sceneManager,
		restartRequested: restartPressed,
		log:              logger.Named("play"),
	}
}

// restartPressed R 键、鼠标点击或触摸
func restartPressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	return len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
}

// Update 推进一帧
func (s *PlayScene) Update(deltaTime float64) {
	if !s.field.PlayerDead() {
		if s.field.Update() {
			return
		}
		s.submit()
		return
	}

	if s.restartRequested() {
		s.sceneManager.Restart()
	}
}

// submit 提交本局成绩（只提交一次）
func (s *PlayScene) submit() {
	if s.submitted {
		return
	}
	s.submitted = true

	player := s.field.Player()
	rank, err := s.scores.Submit(player.Score(), player.Eaten(), s.field.Ticks())
	if err != nil {
		s.log.Warn("failed to save score", zap.Error(err))
	}
	s.rank = rank
}

// SaveOnExit 退出时提交进行中的一局
func (s *PlayScene) SaveOnExit() bool {
	if s.submitted || s.field.Ticks() == 0 {
		return true
	}
	player := s.field.Player()
	s.submitted = true
	if _, err := s.scores.Submit(player.Score(), player.Eaten(), s.field.Ticks()); err != nil {
		s.log.Warn("failed to save score on exit", zap.Error(err))
		return false
	}
	return true
}

// Draw 绘制场地、所有鱼和 HUD
func (s *PlayScene) Draw(screen *ebiten.Image) {
	screen.Fill(waterColor)

	player := s.field.Player()
	for _, fish := range s.field.Fishes() {
		s.drawFish(screen, fish, player)
	}
	if player.IsDead() {
		// 死亡后玩家已从场地移除，单独绘制
		s.drawFish(screen, player, player)
	}

	if s.settings != nil && s.settings.GetSettings().ShowHitboxes {
		s.drawHitboxes(screen)
	}

	ebitenutil.DebugPrintAt(screen, hudText(player.Score(), player.Eaten(), s.scores.Best()), 10, 10)

	if player.IsDead() {
		w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
		vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), overlayColor, false)
		ebitenutil.DebugPrintAt(screen, gameOverText(player.Score(), s.rank), w/2-80, h/2-10)
	}
}

func (s *PlayScene) drawFish(screen *ebiten.Image, fish entities.Fish, player *entities.PlayerFish) {
	bounds := fish.BoundingArea().Bounds()
	x, y, w, h := utils.BoxToScreenRect(bounds, s.field.Field().MaxY)

	if enemy, ok := fish.(*entities.EnemyFish); ok && enemy.Sprite != "" && s.sprites != nil {
		texture, err := s.sprites.Texture(enemy.Sprite)
		if err == nil {
			tw, th := texture.Bounds().Dx(), texture.Bounds().Dy()
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(w/float64(tw), h/float64(th))
			op.GeoM.Translate(x, y)
			op.Filter = ebiten.FilterLinear
			if entities.Eats(fish, player) {
				op.ColorScale.ScaleWithColor(color.RGBA{R: 255, G: 180, B: 180, A: 255})
			}
			screen.DrawImage(texture, op)
			return
		}
	}

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), fishColor(fish, player), true)
}

// drawHitboxes 绘制碰撞区域轮廓（F3）
func (s *PlayScene) drawHitboxes(screen *ebiten.Image) {
	for _, fish := range s.field.Fishes() {
		area := fish.BoundingArea()
		x, y, w, h := utils.BoxToScreenRect(area.Bounds(), s.field.Field().MaxY)
		clr := hitboxColor
		if area.Kind() == collision.KindMask {
			clr = maskHitboxColor
		}
		vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, clr, false)
	}
}

// fishColor 没有精灵时的填充色
func fishColor(fish entities.Fish, player *entities.PlayerFish) color.Color {
	switch {
	case fish == entities.Fish(player) && player.IsDead():
		return deadPlayerColor
	case fish == entities.Fish(player):
		return playerColor
	case entities.Eats(player, fish):
		return smallerColor
	default:
		return biggerColor
	}
}

func hudText(score, eaten, best int) string {
	return fmt.Sprintf("Score: %d  Eaten: %d  Best: %d", score, eaten, best)
}

func gameOverText(score, rank int) string {
	if rank > 0 {
		return fmt.Sprintf("GAME OVER  score %d  rank #%d\npress R to play again", score, rank)
	}
	return fmt.Sprintf("GAME OVER  score %d\npress R to play again", score)
}
