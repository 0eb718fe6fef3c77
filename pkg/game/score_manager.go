package game

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/quasilyte/gdata/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/gonewx/fishio/pkg/logger"
)

// MaxHighScores 排行榜保留的记录数
const MaxHighScores = 10

// 存储路径常量
const (
	scoresObject   = "scores"
	scoresProperty = "high"
)

// ScoreRecord 一局游戏的成绩
type ScoreRecord struct {
	Session  string    `yaml:"session"`  // 会话ID（每次启动生成）
	Score    int       `yaml:"score"`    // 得分
	Eaten    int       `yaml:"eaten"`    // 吃掉的鱼数量
	Ticks    int       `yaml:"ticks"`    // 存活帧数
	PlayedAt time.Time `yaml:"playedAt"` // 结束时间
}

// HighScores 排行榜（按得分从高到低）
type HighScores struct {
	Records []ScoreRecord `yaml:"records"`
}

// ScoreManager 排行榜管理器
// 负责成绩的加载、提交和保存
type ScoreManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	scores       *HighScores
	session      string
	now          func() time.Time
	log          *zap.Logger
}

// NewScoreManager 创建排行榜管理器
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存排行榜）
//
// 返回：
//   - *ScoreManager: 排行榜管理器实例，加载失败时使用空排行榜
func NewScoreManager(gdataManager *gdata.Manager) *ScoreManager {
	sm := &ScoreManager{
		gdataManager: gdataManager,
		scores:       &HighScores{},
		session:      uuid.NewString(),
		now:          time.Now,
		log:          logger.Named("score"),
	}

	if err := sm.Load(); err != nil {
		// 加载失败不是致命错误
		sm.log.Warn("failed to load high scores, starting empty", zap.Error(err))
	}

	return sm
}

// Load 从 gdata 加载排行榜
//
// 如果 gdataManager 为 nil 或文件不存在，使用空排行榜
func (sm *ScoreManager) Load() error {
	if sm.gdataManager == nil || !sm.gdataManager.ObjectPropExists(scoresObject, scoresProperty) {
		sm.scores = &HighScores{}
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(scoresObject, scoresProperty)
	if err != nil {
		sm.scores = &HighScores{}
		return fmt.Errorf("failed to load high scores: %w", err)
	}

	var loaded HighScores
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		sm.scores = &HighScores{}
		return fmt.Errorf("failed to unmarshal high scores: %w", err)
	}

	sortRecords(loaded.Records)
	if len(loaded.Records) > MaxHighScores {
		loaded.Records = loaded.Records[:MaxHighScores]
	}
	sm.scores = &loaded
	sm.log.Info("high scores loaded", zap.Int("records", len(loaded.Records)))
	return nil
}

// Save 保存排行榜到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *ScoreManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.scores)
	if err != nil {
		return fmt.Errorf("failed to marshal high scores: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(scoresObject, scoresProperty, data); err != nil {
		return fmt.Errorf("failed to save high scores: %w", err)
	}
	return nil
}

// Submit 提交一局成绩并保存
//
// 参数：
//   - score, eaten, ticks: 本局得分、吃掉的鱼数量、存活帧数
//
// 返回：
//   - int: 排名（从 1 开始），未进入排行榜返回 0
//   - error: 保存失败（成绩仍保留在内存中）
func (sm *ScoreManager) Submit(score, eaten, ticks int) (int, error) {
	record := ScoreRecord{
		Session:  sm.session,
		Score:    score,
		Eaten:    eaten,
		Ticks:    ticks,
		PlayedAt: sm.now().UTC(),
	}

	// 同分时先提交的排在前面
	pos, _ := slices.BinarySearchFunc(sm.scores.Records, score, func(r ScoreRecord, s int) int {
		if r.Score >= s {
			return -1
		}
		return 1
	})
	if pos >= MaxHighScores {
		return 0, nil
	}

	sm.scores.Records = slices.Insert(sm.scores.Records, pos, record)
	if len(sm.scores.Records) > MaxHighScores {
		sm.scores.Records = sm.scores.Records[:MaxHighScores]
	}

	rank := pos + 1
	sm.log.Info("score submitted", zap.Int("score", score), zap.Int("rank", rank), zap.String("session", sm.session))
	return rank, sm.Save()
}

// Best 最高分，排行榜为空时返回 0
func (sm *ScoreManager) Best() int {
	if len(sm.scores.Records) == 0 {
		return 0
	}
	return sm.scores.Records[0].Score
}

// Records 返回排行榜副本
func (sm *ScoreManager) Records() []ScoreRecord {
	return slices.Clone(sm.scores.Records)
}

// Session 本次启动的会话ID
func (sm *ScoreManager) Session() string {
	return sm.session
}

// sortRecords 按得分降序，同分保持原顺序
func sortRecords(records []ScoreRecord) {
	slices.SortStableFunc(records, func(a, b ScoreRecord) int {
		return b.Score - a.Score
	})
}
