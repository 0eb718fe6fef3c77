//go:build mobile

package utils

// IsMobile 移动端构建始终返回 true，玩家通过触摸转向
func IsMobile() bool {
	return true
}
