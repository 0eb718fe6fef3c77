package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FieldConfig 游戏场地配置
//
// 包含场地尺寸、敌方鱼的生成参数和玩家鱼的初始参数。
// 所有速度单位都是"世界单位/帧"，时间间隔单位是帧。
//
// 配置文件位置: data/fishio.yaml
type FieldConfig struct {
	// Field 场地尺寸
	Field FieldSize `yaml:"field"`

	// Enemy 敌方鱼生成参数
	Enemy EnemyConfig `yaml:"enemy"`

	// Player 玩家鱼参数
	Player PlayerConfig `yaml:"player"`
}

// FieldSize 场地尺寸，场地范围为 [0, Width] x [0, Height]
type FieldSize struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// EnemyConfig 敌方鱼生成参数
type EnemyConfig struct {
	// MaxSpeed 单个速度分量的最大绝对值
	MaxSpeed float64 `yaml:"maxSpeed"`

	// MinSpeed 单个速度分量的最小绝对值，保证鱼不会停滞
	MinSpeed float64 `yaml:"minSpeed"`

	// MinSizeFactor / MaxSizeFactor 新鱼尺寸相对于玩家尺寸的范围
	MinSizeFactor float64 `yaml:"minSizeFactor"`
	MaxSizeFactor float64 `yaml:"maxSizeFactor"`

	// SpriteCount 鱼精灵数量 (sprites/fish/fish0.png ... fishN-1.png)
	SpriteCount int `yaml:"spriteCount"`

	// SpawnInterval 生成间隔（帧）
	SpawnInterval int `yaml:"spawnInterval"`

	// MaxEnemies 场上最多同时存在的敌方鱼数量
	MaxEnemies int `yaml:"maxEnemies"`

	// DefaultAspect 没有精灵时使用的宽高比
	DefaultAspect float64 `yaml:"defaultAspect"`
}

// PlayerConfig 玩家鱼参数
type PlayerConfig struct {
	// X, Y 初始中心点
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`

	// Width, Height 初始尺寸
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Acceleration 每帧加速度
	Acceleration float64 `yaml:"acceleration"`

	// MaxSpeed 最大速度
	MaxSpeed float64 `yaml:"maxSpeed"`

	// Friction 无输入时每帧速度衰减系数 (0.0 ~ 1.0)
	Friction float64 `yaml:"friction"`

	// Growth 吃掉一条鱼后，按被吃鱼尺寸的比例增加的面积
	Growth float64 `yaml:"growth"`
}

// DefaultFieldConfig 返回默认配置（与原版 Fish.io 一致）
func DefaultFieldConfig() *FieldConfig {
	return &FieldConfig{
		Field: FieldSize{Width: 1280, Height: 670},
		Enemy: EnemyConfig{
			MaxSpeed:      4,
			MinSpeed:      1,
			MinSizeFactor: 0.2,
			MaxSizeFactor: 4.5,
			SpriteCount:   6,
			SpawnInterval: 30,
			MaxEnemies:    40,
			DefaultAspect: 1.6,
		},
		Player: PlayerConfig{
			X:            640,
			Y:            335,
			Width:        100,
			Height:       64,
			Acceleration: 0.3,
			MaxSpeed:     6,
			Friction:     0.92,
			Growth:       0.1,
		},
	}
}

// LoadFieldConfig 加载场地配置
//
// 从指定路径加载 YAML 格式的配置文件，未出现的字段保留默认值。
//
// 参数:
//   - path: 配置文件路径（如 "data/fishio.yaml"）
//
// 返回:
//   - *FieldConfig: 加载成功后的配置结构
//   - error: 加载失败时返回错误
func LoadFieldConfig(path string) (*FieldConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read field config: %w", err)
	}
	return ParseFieldConfig(data)
}

// ParseFieldConfig 解析 YAML 数据并验证
func ParseFieldConfig(data []byte) (*FieldConfig, error) {
	config := DefaultFieldConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse field config: %w", err)
	}

	// 验证配置
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid field config: %w", err)
	}

	return config, nil
}

// Validate 验证配置有效性
//
// 检查:
//   - 场地尺寸为正
//   - 敌方鱼 MinSpeed >= 1 且 MaxSpeed >= MinSpeed（垂直速度至少为 1，鱼才能游进场地）
//   - 尺寸系数为正且 min <= max
//   - 玩家初始尺寸为正，初始矩形完全位于场地内
//
// 返回:
//   - error: 验证失败时返回错误，成功返回 nil
func (c *FieldConfig) Validate() error {
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		return fmt.Errorf("field size must be positive, got %.1fx%.1f", c.Field.Width, c.Field.Height)
	}

	e := c.Enemy
	if e.MinSpeed < 1 {
		return fmt.Errorf("enemy minSpeed must be >= 1, got %.2f", e.MinSpeed)
	}
	if e.MaxSpeed < e.MinSpeed {
		return fmt.Errorf("enemy speed range invalid: min(%.2f) > max(%.2f)", e.MinSpeed, e.MaxSpeed)
	}
	if e.MinSizeFactor <= 0 || e.MaxSizeFactor < e.MinSizeFactor {
		return fmt.Errorf("enemy size factors invalid: min(%.2f) max(%.2f)", e.MinSizeFactor, e.MaxSizeFactor)
	}
	if e.SpriteCount < 0 {
		return fmt.Errorf("enemy spriteCount must be >= 0, got %d", e.SpriteCount)
	}
	if e.SpawnInterval <= 0 {
		return fmt.Errorf("enemy spawnInterval must be positive, got %d", e.SpawnInterval)
	}
	if e.MaxEnemies < 0 {
		return fmt.Errorf("enemy maxEnemies must be >= 0, got %d", e.MaxEnemies)
	}
	if e.DefaultAspect <= 0 {
		return fmt.Errorf("enemy defaultAspect must be positive, got %.2f", e.DefaultAspect)
	}

	p := c.Player
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("player size must be positive, got %.1fx%.1f", p.Width, p.Height)
	}
	halfW, halfH := p.Width/2, p.Height/2
	if p.X-halfW < 0 || p.X+halfW > c.Field.Width || p.Y-halfH < 0 || p.Y+halfH > c.Field.Height {
		return fmt.Errorf("player start box (%.1f, %.1f, %.1fx%.1f) outside field", p.X, p.Y, p.Width, p.Height)
	}
	if p.Friction < 0 || p.Friction > 1 {
		return fmt.Errorf("player friction must be within [0, 1], got %.2f", p.Friction)
	}
	if p.MaxSpeed < 0 || p.Acceleration < 0 || p.Growth < 0 {
		return fmt.Errorf("player maxSpeed, acceleration and growth must be >= 0")
	}

	return nil
}
