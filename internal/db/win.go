package db

import "gorm.io/gorm"

// MinimumWin 定义了"最小胜利"模型：比习惯更轻量的每日布尔任务。
type MinimumWin struct {
	gorm.Model
	Title string `gorm:"size:100;not null"`
}

// TableName 自定义表名以保持命名一致。
func (MinimumWin) TableName() string {
	return "minimum_wins"
}

// WinLog 记录最小胜利的每日完成情况
// Win + EntryDate 唯一，重复切换是覆盖写而不是新增行。
type WinLog struct {
	gorm.Model
	WinID     uint       `gorm:"index;index:idx_win_log_unique,unique"`
	Win       MinimumWin `gorm:"foreignKey:WinID;constraint:OnDelete:CASCADE"`
	EntryDate string     `gorm:"size:10;index:idx_win_log_unique,unique"`
	Done      bool       `gorm:"not null;default:false"`
}

// TableName 指定表名
func (WinLog) TableName() string {
	return "win_logs"
}
