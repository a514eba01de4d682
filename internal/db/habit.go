package db

import "gorm.io/gorm"

// 习惯单日状态的取值。一天只会有一条记录；没有记录即表示未打卡。
const (
	HabitStatusDone  = "done"
	HabitStatusGrace = "grace"
	HabitStatusMiss  = "miss"
)

// Habit 定义了习惯模型
// Streak/GraceLeft 是缓存的派生字段，随每次打卡写入重新计算，
// 不允许独立修改，真实来源永远是 habit_logs。
type Habit struct {
	gorm.Model
	Name      string `gorm:"size:100;not null"`
	PillarID  uint   `gorm:"index"`
	Pillar    Pillar
	Streak    int `gorm:"not null;default:0"`
	GraceLeft int `gorm:"not null;default:2"`
}

// HabitLog 记录习惯每日状态
// Habit + EntryDate 采用唯一索引，保证幂等；重复写入替换旧状态而不是追加。
// EntryDate 存 ISO-8601（YYYY-MM-DD）文本，字典序即时间序，区间查询依赖这一点。
type HabitLog struct {
	gorm.Model
	HabitID   uint   `gorm:"index;index:idx_habit_log_unique,unique"`
	Habit     Habit  `gorm:"constraint:OnDelete:CASCADE"`
	EntryDate string `gorm:"size:10;index:idx_habit_log_unique,unique"`
	Status    string `gorm:"size:10;not null"`
}

// TableName 指定表名
func (HabitLog) TableName() string {
	return "habit_logs"
}

// ValidHabitStatus 判断状态取值是否合法。
func ValidHabitStatus(status string) bool {
	switch status {
	case HabitStatusDone, HabitStatusGrace, HabitStatusMiss:
		return true
	}
	return false
}
