package game

import (
	"context"
	"fmt"
	"image"
	_ "image/png" // Register PNG decoder
	"io/fs"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/gonewx/fishio/pkg/collision"
	"github.com/gonewx/fishio/pkg/components"
	"github.com/gonewx/fishio/pkg/logger"
)

// preloadConcurrency 预加载时同时解码的精灵数量
const preloadConcurrency = 4

// FishSpriteName 第 i 条鱼的精灵路径 (从 0 开始)
func FishSpriteName(i int) string {
	return fmt.Sprintf("sprites/fish/fish%d.png", i)
}

// FishSpriteNames 返回 fsys 中实际存在的鱼精灵路径
//
// 参数:
//   - fsys: 精灵所在的文件系统
//   - count: 最多探测的精灵数量
func FishSpriteNames(fsys fs.FS, count int) []string {
	names := make([]string, 0, count)
	if fsys == nil {
		return names
	}
	for i := 0; i < count; i++ {
		name := FishSpriteName(i)
		if _, err := fs.Stat(fsys, name); err == nil {
			names = append(names, name)
		}
	}
	return names
}

// spriteEntry 缓存的精灵：碰撞数据 + 原始图片 + 延迟创建的纹理
type spriteEntry struct {
	sprite  *components.Sprite
	img     image.Image
	texture *ebiten.Image
}

// SpriteCache 精灵缓存
//
// 从 fs.FS 加载 PNG，计算 alpha 网格、不透明比例和宽高比并缓存。
// 同一精灵的并发加载只会解码一次；ebiten 纹理在第一次绘制时才创建。
//
// 并发安全：GetOrLoad / Preload 可以在多个 goroutine 中调用，
// Texture 只应在 ebiten 的 Draw 中调用。
type SpriteCache struct {
	fsys fs.FS

	mu      sync.RWMutex
	entries map[string]*spriteEntry
	group   singleflight.Group

	log *zap.Logger
}

// NewSpriteCache 创建精灵缓存
//
// 参数:
//   - fsys: 精灵所在的文件系统（embed.FS、os.DirFS 或测试用的 fstest.MapFS）
func NewSpriteCache(fsys fs.FS) *SpriteCache {
	return &SpriteCache{
		fsys:    fsys,
		entries: make(map[string]*spriteEntry),
		log:     logger.Named("sprites"),
	}
}

// Sprite 实现 systems.SpriteProvider
func (c *SpriteCache) Sprite(name string) (*components.Sprite, error) {
	return c.GetOrLoad(name)
}

// GetOrLoad 返回精灵的碰撞数据，首次访问时从文件系统加载
//
// 返回:
//   - *components.Sprite: 精灵数据
//   - error: 文件不存在或解码失败
func (c *SpriteCache) GetOrLoad(name string) (*components.Sprite, error) {
	if entry, ok := c.lookup(name); ok {
		return entry.sprite, nil
	}

	v, err, _ := c.group.Do(name, func() (any, error) {
		if entry, ok := c.lookup(name); ok {
			return entry, nil
		}
		entry, err := c.load(name)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[name] = entry
		c.mu.Unlock()
		return entry, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*spriteEntry).sprite, nil
}

// Preload 并发加载一组精灵，任意一个失败时返回第一个错误
func (c *SpriteCache) Preload(ctx context.Context, names []string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(preloadConcurrency)

	for _, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			_, err := c.GetOrLoad(name)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to preload sprites: %w", err)
	}
	c.log.Info("sprites preloaded", zap.Int("count", len(names)))
	return nil
}

// Texture 返回用于绘制的 ebiten 纹理，首次调用时创建
func (c *SpriteCache) Texture(name string) (*ebiten.Image, error) {
	if _, err := c.GetOrLoad(name); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	entry := c.entries[name]
	if entry.texture == nil {
		entry.texture = ebiten.NewImageFromImage(entry.img)
	}
	return entry.texture, nil
}

// Len 已缓存的精灵数量
func (c *SpriteCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *SpriteCache) lookup(name string) (*spriteEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[name]
	return entry, ok
}

// load 解码 PNG 并计算碰撞数据
func (c *SpriteCache) load(name string) (*spriteEntry, error) {
	if c.fsys == nil {
		return nil, fmt.Errorf("failed to load sprite %s: no sprite filesystem", name)
	}

	f, err := c.fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open sprite %s: %w", name, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode sprite %s: %w", name, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, fmt.Errorf("failed to load sprite %s: empty image", name)
	}

	grid := collision.GridFromImage(img)
	sprite := &components.Sprite{
		Name:       name,
		Alpha:      grid,
		AlphaRatio: grid.Ratio(),
		Aspect:     float64(bounds.Dx()) / float64(bounds.Dy()),
	}

	c.log.Debug("sprite loaded",
		zap.String("sprite", name),
		zap.Int("width", bounds.Dx()),
		zap.Int("height", bounds.Dy()),
		zap.Float64("alphaRatio", sprite.AlphaRatio))

	return &spriteEntry{sprite: sprite, img: img}, nil
}
