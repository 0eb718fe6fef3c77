// Package utils 提供游戏开发中常用的工具函数
//
// coordinates.go 处理世界坐标和屏幕坐标之间的转换。
//
// # 坐标系统概述
//
//   - **世界坐标**：原点在场地左下角，y 轴向上，场地范围 [0, W] x [0, H]
//   - **屏幕坐标**：原点在窗口左上角，y 轴向下（Ebiten 默认行为）
//   - **实体锚点**：碰撞区域中心
//
// 场地与窗口一样大（Layout 返回场地尺寸），因此转换只需要翻转 y 轴：
//
//	screenX = worldX
//	screenY = H - worldY
package utils

import (
	"github.com/gonewx/fishio/pkg/collision"
	"github.com/gonewx/fishio/pkg/vec"
)

// WorldToScreen 世界坐标转换为屏幕坐标
//
// 参数:
//   - p: 世界坐标
//   - fieldHeight: 场地高度 H
func WorldToScreen(p vec.Vec, fieldHeight float64) (screenX, screenY float64) {
	return p.X, fieldHeight - p.Y
}

// ScreenToWorld 屏幕坐标转换为世界坐标（WorldToScreen 的逆变换）
func ScreenToWorld(screenX, screenY, fieldHeight float64) vec.Vec {
	return vec.New(screenX, fieldHeight-screenY)
}

// BoxToScreenRect 世界矩形转换为屏幕矩形
//
// 返回:
//   - x, y: 屏幕上的左上角（对应世界矩形的 MinX, MaxY）
//   - w, h: 宽高
func BoxToScreenRect(b collision.Box, fieldHeight float64) (x, y, w, h float64) {
	x, y = WorldToScreen(vec.New(b.MinX, b.MaxY), fieldHeight)
	return x, y, b.Width(), b.Height()
}
