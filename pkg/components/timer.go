package components

// Timer 按帧计数的计时器
// 用于周期性行为（如敌方鱼的生成间隔）
type Timer struct {
	Name    string // 计时器名称，如 "enemy_spawn"
	Target  int    // 目标帧数
	Current int    // 当前已过帧数
}

// Tick 前进一帧，到达目标时归零并返回 true
func (t *Timer) Tick() bool {
	t.Current++
	if t.Current < t.Target {
		return false
	}
	t.Current = 0
	return true
}

// Reset 归零
func (t *Timer) Reset() {
	t.Current = 0
}
