package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lifelog/internal/db"
	"gorm.io/gorm"
)

var (
	// ErrProjectNotFound 在指定项目不存在时返回
	ErrProjectNotFound = errors.New("project not found")
	// ErrPrintNotesMissing 在打印日志没有备注内容时返回
	ErrPrintNotesMissing = errors.New("print log notes are required")
)

// ProjectService 负责项目列表与打印日志。
// 打印日志只追加，数量通过聚合查询派生，不在项目行上冗余计数。
type ProjectService struct {
	db *gorm.DB
}

// ProjectSummary 表示带打印次数的项目视图。
type ProjectSummary struct {
	ID         uint
	Title      string
	Pillar     string
	Summary    string
	PrintCount int
}

// NewProjectService 构造 ProjectService。
func NewProjectService(gdb *gorm.DB) *ProjectService {
	return &ProjectService{db: gdb}
}

// List 返回全部项目及各自的打印次数。
func (s *ProjectService) List() ([]ProjectSummary, error) {
	var rows []ProjectSummary
	if err := s.db.Model(&db.Project{}).
		Select("projects.id AS id, projects.title AS title, projects.pillar AS pillar, projects.summary AS summary, COUNT(print_logs.id) AS print_count").
		Joins("LEFT JOIN print_logs ON print_logs.project_id = projects.id AND print_logs.deleted_at IS NULL").
		Group("projects.id").
		Order("projects.id ASC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	return rows, nil
}

// AddPrintLog 为项目追加一条打印日志。
func (s *ProjectService) AddPrintLog(projectID uint, notes string) (*db.PrintLog, error) {
	trimmed := strings.TrimSpace(notes)
	if trimmed == "" {
		return nil, ErrPrintNotesMissing
	}

	var project db.Project
	if err := s.db.First(&project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("get project: %w", err)
	}

	record := db.PrintLog{ProjectID: projectID, Notes: trimmed}
	if err := s.db.Create(&record).Error; err != nil {
		return nil, fmt.Errorf("create print log: %w", err)
	}

	return &record, nil
}

// Prints 返回项目的打印日志，按创建时间降序。
func (s *ProjectService) Prints(projectID uint) ([]db.PrintLog, error) {
	var project db.Project
	if err := s.db.First(&project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("get project: %w", err)
	}

	var logs []db.PrintLog
	if err := s.db.Where("project_id = ?", projectID).
		Order("created_at DESC, id DESC").
		Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("list print logs: %w", err)
	}

	return logs, nil
}
