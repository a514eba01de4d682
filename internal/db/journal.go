package db

import "time"

// JournalEntry 以日期为主键存储日记，每个自然日至多一条，保存即覆盖。
type JournalEntry struct {
	EntryDate string `gorm:"primaryKey;size:10"`
	Content   string `gorm:"type:text;not null;default:''"`
	UpdatedAt time.Time
}

// TableName 自定义表名以保持命名一致。
func (JournalEntry) TableName() string {
	return "journal_entries"
}
