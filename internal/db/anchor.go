package db

import "gorm.io/gorm"

// Anchor 定义了每周固定事件（锚点），仅供计划展示，不跟踪完成情况。
// Weekday 取 0..6，0 为周日。Category/TimeOfDay 为可选的展示信息。
type Anchor struct {
	gorm.Model
	Title     string `gorm:"size:200;not null"`
	Weekday   int    `gorm:"not null"`
	Category  string `gorm:"size:50"`
	TimeOfDay string `gorm:"size:5"`
}
