package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lifelog/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrSettingKeyMissing 在未提供设置键时返回。
var ErrSettingKeyMissing = errors.New("setting key is required")

// SettingService 提供应用设置的读取与更新能力。
// 读取不存在的键返回空字符串而不是错误，调用方自行决定默认值。
type SettingService struct {
	db *gorm.DB
}

// NewSettingService 构造 SettingService。
func NewSettingService(gdb *gorm.DB) *SettingService {
	return &SettingService{db: gdb}
}

// Get 读取设置值，键不存在时返回空字符串。
func (s *SettingService) Get(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", ErrSettingKeyMissing
	}

	var record db.AppSetting
	if err := s.db.Where("key = ?", key).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("get setting %s: %w", key, err)
	}

	return record.Value, nil
}

// Set 写入设置值，存在即覆盖。
func (s *SettingService) Set(key, value string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrSettingKeyMissing
	}

	setting := db.AppSetting{Key: key, Value: value}
	if err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value":      value,
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(&setting).Error; err != nil {
		return fmt.Errorf("upsert setting %s: %w", key, err)
	}

	return nil
}

// GraceMode 报告宽限模式是否开启，决定连胜计算采用哪种策略。
func (s *SettingService) GraceMode() bool {
	value, err := s.Get(db.SettingKeyGraceMode)
	if err != nil {
		return false
	}
	return value == "1"
}
