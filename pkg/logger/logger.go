// Package logger 全局结构化日志（zap）
//
// 未调用 Init 之前使用 Nop logger，测试默认保持安静。
package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu       sync.RWMutex
	root     = zap.NewNop()
	initOnce sync.Once
)

// Init 初始化全局 logger，只有第一次调用生效
//
// 参数:
//   - debug: true 时使用控制台编码和 Debug 级别，否则 JSON 编码和 Info 级别
//
// 返回:
//   - error: zap 构建失败时返回错误
func Init(debug bool) error {
	var err error
	initOnce.Do(func() {
		level := zapcore.InfoLevel
		encoding := "json"
		encoderConfig := zap.NewProductionEncoderConfig()
		if debug {
			level = zapcore.DebugLevel
			encoding = "console"
			encoderConfig = zap.NewDevelopmentEncoderConfig()
		}

		config := zap.Config{
			Level:            zap.NewAtomicLevelAt(level),
			Development:      debug,
			Encoding:         encoding,
			EncoderConfig:    encoderConfig,
			OutputPaths:      []string{"stderr"},
			ErrorOutputPaths: []string{"stderr"},
			DisableCaller:    true,
		}

		var l *zap.Logger
		l, err = config.Build()
		if err != nil {
			return
		}
		Set(l)
	})
	return err
}

// Set 替换全局 logger（测试中可以注入 zaptest/observer）
func Set(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	mu.Lock()
	root = l
	mu.Unlock()
}

// L 返回全局 logger
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return root
}

// Named 返回带子系统名称的 logger，例如 Named("spawn")
func Named(name string) *zap.Logger {
	return L().Named(name)
}

// Sync 刷新缓冲
func Sync() {
	_ = L().Sync()
}
