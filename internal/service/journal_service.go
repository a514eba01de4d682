package service

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/lifelog/internal/db"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.Table),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

// JournalService 负责日记的读写、检索与预览渲染。
type JournalService struct {
	db *gorm.DB
}

// NewJournalService 构造 JournalService。
func NewJournalService(gdb *gorm.DB) *JournalService {
	return &JournalService{db: gdb}
}

// Get 读取某天的日记。没有记录时返回该日期的空内容条目，不报错。
func (s *JournalService) Get(date string) (db.JournalEntry, error) {
	if err := validateDateKey(date); err != nil {
		return db.JournalEntry{}, err
	}

	var entry db.JournalEntry
	err := s.db.Where("entry_date = ?", date).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return db.JournalEntry{EntryDate: date}, nil
		}
		return db.JournalEntry{}, fmt.Errorf("get journal entry: %w", err)
	}

	return entry, nil
}

// Save 保存某天的日记内容，同一天再次保存即覆盖。
func (s *JournalService) Save(date, content string) error {
	if err := validateDateKey(date); err != nil {
		return err
	}

	entry := db.JournalEntry{EntryDate: date, Content: content}
	if err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "entry_date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"content":    content,
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(&entry).Error; err != nil {
		return fmt.Errorf("save journal entry: %w", err)
	}

	return nil
}

// Search 按内容模糊检索日记，按日期降序；空关键词返回全部。
func (s *JournalService) Search(term string) ([]db.JournalEntry, error) {
	query := s.db.Model(&db.JournalEntry{}).Order("entry_date DESC")

	if trimmed := strings.TrimSpace(term); trimmed != "" {
		query = query.Where("content LIKE ?", fmt.Sprintf("%%%s%%", trimmed))
	}

	var entries []db.JournalEntry
	if err := query.Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("search journal entries: %w", err)
	}

	return entries, nil
}

// Preview 将某天的日记渲染成净化后的 HTML。
func (s *JournalService) Preview(date string) (string, error) {
	entry, err := s.Get(date)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(entry.Content), &buf); err != nil {
		return "", fmt.Errorf("render journal entry: %w", err)
	}

	return string(sanitizer.SanitizeBytes(buf.Bytes())), nil
}
