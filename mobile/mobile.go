//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包，
// 仅在使用 -tags mobile 时编译：
//
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.gonewx.fishio -o build/android/fishio.aar ./mobile
//	ebitenmobile bind -target ios -tags mobile -o build/ios/FishIO.xcframework ./mobile
package mobile

import (
	"github.com/hajimehoshi/ebiten/v2/mobile"
	"go.uber.org/zap"

	"github.com/gonewx/fishio/pkg/app"
	"github.com/gonewx/fishio/pkg/embedded"
	"github.com/gonewx/fishio/pkg/logger"
)

func init() {
	if err := logger.Init(true); err != nil {
		panic(err)
	}
	embedded.Init(assetsFS, dataFS)

	gameApp, err := app.NewApp(app.Config{})
	if err != nil {
		logger.L().Fatal("游戏初始化失败", zap.Error(err))
	}

	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
