// Package embedded 提供嵌入资源的统一访问接口
//
// //go:embed 只能嵌入声明所在目录及其子目录的文件，
// 因此 embed.FS 变量声明在项目根目录（embed.go），启动时通过 Init 交给本包。
// 路径以 "assets/" 或 "data/" 开头，分别对应两个文件系统。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"
)

// ErrNotInitialized Init 之前访问资源
var ErrNotInitialized = errors.New("embedded package not initialized, call Init() first")

const (
	assetsPrefix = "assets/"
	dataPrefix   = "data/"
)

var (
	mu       sync.RWMutex
	assetsFS fs.FS
	dataFS   fs.FS
)

// Init 设置嵌入的文件系统
// 必须在 main() 开始时、任何资源加载之前调用
//
// 参数:
//   - assets: 根目录包含 assets/ 的文件系统
//   - data: 根目录包含 data/ 的文件系统
func Init(assets, data fs.FS) {
	mu.Lock()
	defer mu.Unlock()
	assetsFS = assets
	dataFS = data
}

// Reset 清除已设置的文件系统（测试用）
func Reset() {
	Init(nil, nil)
}

// IsInitialized 是否已经调用过 Init
func IsInitialized() bool {
	mu.RLock()
	defer mu.RUnlock()
	return assetsFS != nil && dataFS != nil
}

// route 标准化路径并选择对应的文件系统
func route(path string) (fs.FS, string, error) {
	mu.RLock()
	assets, data := assetsFS, dataFS
	mu.RUnlock()

	if assets == nil || data == nil {
		return nil, "", ErrNotInitialized
	}

	// embed.FS 使用正斜杠
	path = strings.TrimPrefix(filepath.ToSlash(path), "./")

	switch {
	case strings.HasPrefix(path, assetsPrefix):
		return assets, path, nil
	case strings.HasPrefix(path, dataPrefix):
		return data, path, nil
	}
	return nil, "", fmt.Errorf("unknown resource path prefix: %s (must start with '%s' or '%s')", path, assetsPrefix, dataPrefix)
}

// ReadFile 读取文件内容
func ReadFile(path string) ([]byte, error) {
	fsys, name, err := route(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(fsys, name)
}

// Exists 文件是否存在
func Exists(path string) bool {
	fsys, name, err := route(path)
	if err != nil {
		return false
	}
	_, err = fs.Stat(fsys, name)
	return err == nil
}

// Sub 返回指定目录的子文件系统
// 例如 Sub("assets") 得到以精灵目录为根的文件系统
func Sub(dir string) (fs.FS, error) {
	fsys, name, err := route(strings.TrimSuffix(dir, "/") + "/")
	if err != nil {
		return nil, err
	}
	return fs.Sub(fsys, strings.TrimSuffix(name, "/"))
}
