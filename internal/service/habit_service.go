package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lifelog/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrHabitNotFound 在指定习惯不存在时返回
	ErrHabitNotFound = errors.New("habit not found")
	// ErrInvalidStatus 在状态取值不是 done/grace/miss 时返回
	ErrInvalidStatus = errors.New("invalid habit status")
	// ErrInvalidDate 在日期不是 YYYY-MM-DD 格式时返回
	ErrInvalidDate = errors.New("invalid entry date")
)

// HabitService 负责习惯的读取、打卡与派生字段维护。
// Streak/GraceLeft 永远在打卡写入的同一事务内整体重算，
// 不做增量维护，避免缓存值与日志漂移。
type HabitService struct {
	db       *gorm.DB
	settings *SettingService
	now      func() time.Time
}

// HabitToday 汇总列表页需要的习惯视图：基础字段加当天状态。
type HabitToday struct {
	ID          uint
	Name        string
	PillarName  string
	Streak      int
	GraceLeft   int
	TodayStatus string
}

// NewHabitService 构造 HabitService。
func NewHabitService(gdb *gorm.DB, settings *SettingService) *HabitService {
	return &HabitService{db: gdb, settings: settings, now: time.Now}
}

// SetNow 替换时间源，主要面向测试场景。
func (s *HabitService) SetNow(now func() time.Time) {
	if now == nil {
		s.now = time.Now
		return
	}
	s.now = now
}

// List 返回全部习惯及其当天状态。
// 当天状态用一次批量查询取回，不对每个习惯单独查询。
func (s *HabitService) List() ([]HabitToday, error) {
	var habits []db.Habit
	if err := s.db.Preload("Pillar").Order("id ASC").Find(&habits).Error; err != nil {
		return nil, fmt.Errorf("list habits: %w", err)
	}

	today := DateKey(s.now())

	var logs []db.HabitLog
	if err := s.db.Where("entry_date = ?", today).Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("list today statuses: %w", err)
	}

	statusByHabit := make(map[uint]string, len(logs))
	for _, log := range logs {
		statusByHabit[log.HabitID] = log.Status
	}

	items := make([]HabitToday, 0, len(habits))
	for _, habit := range habits {
		items = append(items, HabitToday{
			ID:          habit.ID,
			Name:        habit.Name,
			PillarName:  habit.Pillar.Name,
			Streak:      habit.Streak,
			GraceLeft:   habit.GraceLeft,
			TodayStatus: statusByHabit[habit.ID],
		})
	}

	return items, nil
}

// Get 根据 ID 获取习惯。
func (s *HabitService) Get(id uint) (*db.Habit, error) {
	var habit db.Habit
	if err := s.db.First(&habit, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHabitNotFound
		}
		return nil, fmt.Errorf("get habit: %w", err)
	}
	return &habit, nil
}

// LogStatus 写入某天的习惯状态并重算派生字段。
// habit_id + entry_date 唯一，重复写入覆盖旧状态；日志写入、
// 连胜重算和习惯行更新在同一事务内完成，重算失败则整体回滚。
func (s *HabitService) LogStatus(habitID uint, date, status string) (*db.Habit, error) {
	if !db.ValidHabitStatus(status) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}
	if err := validateDateKey(date); err != nil {
		return nil, err
	}

	habit, err := s.Get(habitID)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		record := db.HabitLog{HabitID: habitID, EntryDate: date, Status: status}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "habit_id"}, {Name: "entry_date"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
		}).Create(&record).Error; err != nil {
			return fmt.Errorf("upsert habit log: %w", err)
		}

		return s.recompute(tx, habit)
	})
	if err != nil {
		return nil, err
	}

	return s.Get(habitID)
}

// RemoveLog 删除某天的状态记录；记录不存在是无操作而不是错误。
// 删除同样会改变连胜，所以也要在事务内重算。
func (s *HabitService) RemoveLog(habitID uint, date string) error {
	if err := validateDateKey(date); err != nil {
		return err
	}

	habit, err := s.Get(habitID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		// 物理删除：软删除的行仍占用 (habit_id, entry_date) 唯一索引，
		// 会阻止同一天重新打卡
		if err := tx.Unscoped().Where("habit_id = ? AND entry_date = ?", habitID, date).
			Delete(&db.HabitLog{}).Error; err != nil {
			return fmt.Errorf("remove habit log: %w", err)
		}
		return s.recompute(tx, habit)
	})
}

// History 返回习惯的完整状态历史，按日期降序。
func (s *HabitService) History(habitID uint) ([]db.HabitLog, error) {
	if _, err := s.Get(habitID); err != nil {
		return nil, err
	}

	var logs []db.HabitLog
	if err := s.db.Where("habit_id = ?", habitID).
		Order("entry_date DESC").
		Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("list habit logs: %w", err)
	}

	return logs, nil
}

// recompute 从日志整体重算连胜和本周剩余宽限，并写回习惯行。
// 宽限模式开启时采用回看容错策略，关闭时采用严格连续策略。
func (s *HabitService) recompute(tx *gorm.DB, habit *db.Habit) error {
	var logs []db.HabitLog
	if err := tx.Where("habit_id = ?", habit.ID).
		Order("entry_date DESC").
		Find(&logs).Error; err != nil {
		return fmt.Errorf("load habit logs: %w", err)
	}

	today := s.now()

	var streak int
	if s.settings.GraceMode() {
		completed := make(map[string]bool, len(logs))
		for _, log := range logs {
			if log.Status == db.HabitStatusDone || log.Status == db.HabitStatusGrace {
				completed[log.EntryDate] = true
			}
		}
		streak = lookbackStreak(completed, today, true)
	} else {
		streak = runStreak(logs)
	}

	var graceUsed int64
	if err := tx.Model(&db.HabitLog{}).
		Where("habit_id = ? AND status = ? AND entry_date >= ?",
			habit.ID, db.HabitStatusGrace, weekStartKey(today)).
		Count(&graceUsed).Error; err != nil {
		return fmt.Errorf("count grace usage: %w", err)
	}

	if err := tx.Model(&db.Habit{}).Where("id = ?", habit.ID).
		Updates(map[string]interface{}{
			"streak":     streak,
			"grace_left": graceLeftFrom(int(graceUsed)),
		}).Error; err != nil {
		return fmt.Errorf("persist habit stats: %w", err)
	}

	return nil
}

func validateDateKey(date string) error {
	trimmed := strings.TrimSpace(date)
	if _, err := time.Parse(dateKeyFormat, trimmed); err != nil || trimmed != date {
		return fmt.Errorf("%w: %s", ErrInvalidDate, date)
	}
	return nil
}
