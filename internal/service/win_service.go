package service

import (
	"errors"
	"fmt"

	"github.com/lifelog/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrWinNotFound 在指定最小胜利不存在时返回
var ErrWinNotFound = errors.New("minimum win not found")

// WinService 负责最小胜利的查询与每日切换。
type WinService struct {
	db *gorm.DB
}

// WinForDate 表示某一天的最小胜利视图。
type WinForDate struct {
	ID    uint
	Title string
	Done  bool
}

// NewWinService 构造 WinService。
func NewWinService(gdb *gorm.DB) *WinService {
	return &WinService{db: gdb}
}

// ListForDate 返回指定日期所有最小胜利及完成情况。
// 用一次 LEFT JOIN 取回，不对每个胜利单独查询当日状态。
func (s *WinService) ListForDate(date string) ([]WinForDate, error) {
	if err := validateDateKey(date); err != nil {
		return nil, err
	}

	var rows []WinForDate
	if err := s.db.Model(&db.MinimumWin{}).
		Select("minimum_wins.id AS id, minimum_wins.title AS title, COALESCE(win_logs.done, 0) AS done").
		Joins("LEFT JOIN win_logs ON win_logs.win_id = minimum_wins.id AND win_logs.entry_date = ? AND win_logs.deleted_at IS NULL", date).
		Order("minimum_wins.id ASC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("list wins for date: %w", err)
	}

	return rows, nil
}

// Toggle 写入某天的完成标记，存在即覆盖。
func (s *WinService) Toggle(winID uint, date string, done bool) error {
	if err := validateDateKey(date); err != nil {
		return err
	}

	var win db.MinimumWin
	if err := s.db.First(&win, winID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrWinNotFound
		}
		return fmt.Errorf("get minimum win: %w", err)
	}

	record := db.WinLog{WinID: winID, EntryDate: date, Done: done}
	if err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "win_id"}, {Name: "entry_date"}},
		DoUpdates: clause.AssignmentColumns([]string{"done", "updated_at"}),
	}).Create(&record).Error; err != nil {
		return fmt.Errorf("upsert win log: %w", err)
	}

	return nil
}

// Remove 删除某天的完成记录；记录不存在是无操作。
func (s *WinService) Remove(winID uint, date string) error {
	if err := validateDateKey(date); err != nil {
		return err
	}

	if err := s.db.Unscoped().
		Where("win_id = ? AND entry_date = ?", winID, date).
		Delete(&db.WinLog{}).Error; err != nil {
		return fmt.Errorf("remove win log: %w", err)
	}

	return nil
}
