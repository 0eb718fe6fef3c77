// sprite_hitbox 打印鱼精灵的碰撞数据
//
// 对每个精灵输出像素尺寸、宽高比、不透明比例和不透明像素的紧凑包围盒，
// 用于检查新加入的精灵是否适合做像素蒙板碰撞。
//
// 用法:
//
//	go run ./cmd/sprite_hitbox -dir assets -count 6
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gonewx/fishio/pkg/collision"
	"github.com/gonewx/fishio/pkg/game"
)

func main() {
	dir := flag.String("dir", "assets", "精灵根目录（包含 sprites/fish/）")
	count := flag.Int("count", 6, "最多探测的精灵数量")
	flag.Parse()

	fsys := os.DirFS(*dir)
	names := game.FishSpriteNames(fsys, *count)
	if len(names) == 0 {
		log.Fatalf("在 %s 下没有找到鱼精灵", *dir)
	}

	cache := game.NewSpriteCache(fsys)
	if err := cache.Preload(context.Background(), names); err != nil {
		log.Fatalf("加载精灵失败: %v", err)
	}

	fmt.Println("==========================================================")
	fmt.Println("鱼精灵碰撞数据")
	fmt.Println("==========================================================")

	for _, name := range names {
		sprite, err := cache.GetOrLoad(name)
		if err != nil {
			log.Fatalf("加载精灵失败: %v", err)
		}

		grid := sprite.Alpha
		minCol, minRow, maxCol, maxRow, ok := opaqueBounds(grid)

		fmt.Printf("%s\n", name)
		fmt.Printf("  尺寸: %dx%d  宽高比: %.3f  不透明比例: %.3f\n",
			grid.Cols(), grid.Rows(), sprite.Aspect, sprite.AlphaRatio)
		if !ok {
			fmt.Println("  ⚠️  完全透明，永远不会与其他蒙板相交")
			continue
		}
		fmt.Printf("  不透明包围盒: 列 %d..%d, 行 %d..%d (覆盖 %.1f%%)\n",
			minCol, maxCol, minRow, maxRow,
			100*float64((maxCol-minCol+1)*(maxRow-minRow+1))/float64(grid.Cols()*grid.Rows()))
	}
}

// opaqueBounds 不透明格子的紧凑包围盒（行从图片顶部开始）
func opaqueBounds(g *collision.Grid) (minCol, minRow, maxCol, maxRow int, ok bool) {
	minCol, minRow = g.Cols(), g.Rows()
	maxCol, maxRow = -1, -1
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			if !g.At(col, row) {
				continue
			}
			minCol, maxCol = min(minCol, col), max(maxCol, col)
			minRow, maxRow = min(minRow, row), max(maxRow, row)
		}
	}
	return minCol, minRow, maxCol, maxRow, maxCol >= 0
}
