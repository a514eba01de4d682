package service

import (
	"fmt"

	"github.com/lifelog/internal/db"
	"gorm.io/gorm"
)

// ResetService 负责清空跟踪数据。
// 只清日志类表并复位缓存的派生字段；支柱、锚点、习惯名、
// 项目等参考数据一律保留。
type ResetService struct {
	db *gorm.DB
}

// NewResetService 构造 ResetService。
func NewResetService(gdb *gorm.DB) *ResetService {
	return &ResetService{db: gdb}
}

// ResetTrackerData 在单个事务内清空全部日志表，
// 并把每个习惯的 streak/grace_left 重置为初始值 0/2。
func (s *ResetService) ResetTrackerData() error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		// 物理删除，避免软删除行残留在唯一索引里
		if err := tx.Unscoped().Where("1 = 1").Delete(&db.WinLog{}).Error; err != nil {
			return fmt.Errorf("clear win logs: %w", err)
		}
		if err := tx.Unscoped().Where("1 = 1").Delete(&db.HabitLog{}).Error; err != nil {
			return fmt.Errorf("clear habit logs: %w", err)
		}
		if err := tx.Where("1 = 1").Delete(&db.JournalEntry{}).Error; err != nil {
			return fmt.Errorf("clear journal entries: %w", err)
		}
		if err := tx.Unscoped().Where("1 = 1").Delete(&db.PrintLog{}).Error; err != nil {
			return fmt.Errorf("clear print logs: %w", err)
		}

		if err := tx.Model(&db.Habit{}).Where("1 = 1").
			Updates(map[string]interface{}{"streak": 0, "grace_left": 2}).Error; err != nil {
			return fmt.Errorf("reset habit stats: %w", err)
		}

		return nil
	})
}
