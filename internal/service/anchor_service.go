package service

import (
	"errors"
	"fmt"

	"github.com/lifelog/internal/db"
	"gorm.io/gorm"
)

// ErrInvalidWeekday 在星期取值超出 0..6 时返回
var ErrInvalidWeekday = errors.New("weekday must be between 0 and 6")

// AnchorService 提供锚点与支柱等参考数据的只读查询。
type AnchorService struct {
	db *gorm.DB
}

// NewAnchorService 构造 AnchorService。
func NewAnchorService(gdb *gorm.DB) *AnchorService {
	return &AnchorService{db: gdb}
}

// List 返回锚点列表；weekday 非空时只取当天的锚点。
func (s *AnchorService) List(weekday *int) ([]db.Anchor, error) {
	query := s.db.Model(&db.Anchor{})

	if weekday != nil {
		if *weekday < 0 || *weekday > 6 {
			return nil, ErrInvalidWeekday
		}
		query = query.Where("weekday = ?", *weekday).Order("category ASC, time_of_day ASC")
	} else {
		query = query.Order("weekday ASC, category ASC, time_of_day ASC")
	}

	var anchors []db.Anchor
	if err := query.Find(&anchors).Error; err != nil {
		return nil, fmt.Errorf("list anchors: %w", err)
	}

	return anchors, nil
}

// Pillars 返回全部支柱，按 ID 升序。
func (s *AnchorService) Pillars() ([]db.Pillar, error) {
	var pillars []db.Pillar
	if err := s.db.Order("id ASC").Find(&pillars).Error; err != nil {
		return nil, fmt.Errorf("list pillars: %w", err)
	}
	return pillars, nil
}
