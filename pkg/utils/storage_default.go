//go:build !android

package utils

// EnsureStorageDir 桌面平台上 gdata 会自己创建存储目录
func EnsureStorageDir(appName string) error {
	return nil
}
