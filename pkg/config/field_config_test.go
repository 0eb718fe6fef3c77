package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFieldConfigIsValid(t *testing.T) {
	cfg := DefaultFieldConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1280.0, cfg.Field.Width)
	assert.Equal(t, 670.0, cfg.Field.Height)
	assert.Equal(t, 4.0, cfg.Enemy.MaxSpeed)
	assert.Equal(t, 6, cfg.Enemy.SpriteCount)
}

func TestLoadFieldConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *FieldConfig)
	}{
		{
			name: "valid config",
			yamlContent: `
field:
  width: 800
  height: 600
enemy:
  maxSpeed: 3
  spawnInterval: 10
player:
  x: 400
  y: 300
`,
			validate: func(t *testing.T, cfg *FieldConfig) {
				assert.Equal(t, 800.0, cfg.Field.Width)
				assert.Equal(t, 3.0, cfg.Enemy.MaxSpeed)
				assert.Equal(t, 10, cfg.Enemy.SpawnInterval)
				// 未配置的字段保留默认值
				assert.Equal(t, 1.0, cfg.Enemy.MinSpeed)
				assert.Equal(t, 100.0, cfg.Player.Width)
			},
		},
		{
			name: "invalid speed range",
			yamlContent: `
enemy:
  maxSpeed: 0.5
  minSpeed: 1
`,
			wantErr:     true,
			errContains: "enemy speed range invalid",
		},
		{
			name: "player outside field",
			yamlContent: `
field:
  width: 100
  height: 100
`,
			wantErr:     true,
			errContains: "outside field",
		},
		{
			name: "zero enemy speed",
			yamlContent: `
enemy:
  minSpeed: 0
  maxSpeed: 0
`,
			wantErr:     true,
			errContains: "enemy minSpeed must be >= 1",
		},
		{
			name: "enemy minSpeed below one",
			yamlContent: `
enemy:
  minSpeed: 0.5
  maxSpeed: 4
`,
			wantErr:     true,
			errContains: "enemy minSpeed must be >= 1",
		},
		{
			name: "enemy speed exactly one",
			yamlContent: `
enemy:
  minSpeed: 1
  maxSpeed: 1
`,
			validate: func(t *testing.T, cfg *FieldConfig) {
				assert.Equal(t, 1.0, cfg.Enemy.MaxSpeed)
			},
		},
		{
			name:        "malformed yaml",
			yamlContent: "field: [",
			wantErr:     true,
			errContains: "failed to parse field config",
		},
		{
			name: "non-positive field",
			yamlContent: `
field:
  width: 0
`,
			wantErr:     true,
			errContains: "field size must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "fishio.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yamlContent), 0o644))

			cfg, err := LoadFieldConfig(path)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadFieldConfigMissingFile(t *testing.T) {
	_, err := LoadFieldConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestShippedConfigIsValid(t *testing.T) {
	cfg, err := LoadFieldConfig(filepath.Join("..", "..", "data", "fishio.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultFieldConfig(), cfg)
}

func TestValidatePlayerStartBox(t *testing.T) {
	// 默认玩家 100x64，场地 1280x670
	tests := []struct {
		name    string
		x, y    float64
		wantErr bool
	}{
		{"居中", 640, 335, false},
		{"贴左墙", 50, 335, false},
		{"贴右上角", 1230, 638, false},
		{"中心在场内但越过左墙", 10, 335, true},
		{"越过右墙", 1250, 335, true},
		{"越过下墙", 640, 20, true},
		{"越过上墙", 640, 650, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultFieldConfig()
			cfg.Player.X, cfg.Player.Y = tt.x, tt.y
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "outside field")
				return
			}
			assert.NoError(t, err)
		})
	}
}
