package db

import "gorm.io/gorm"

// Project 定义了打印项目模型。Pillar 冗余存分类名，项目不参与打卡统计。
type Project struct {
	gorm.Model
	Title   string `gorm:"size:200;not null"`
	Pillar  string `gorm:"size:100;not null"`
	Summary string `gorm:"type:text;not null;default:''"`
}

// PrintLog 记录项目的打印日志，只追加不修改，数量通过聚合查询派生。
type PrintLog struct {
	gorm.Model
	ProjectID uint    `gorm:"index"`
	Project   Project `gorm:"constraint:OnDelete:CASCADE"`
	Notes     string  `gorm:"type:text;not null;default:''"`
}

// TableName 自定义表名以保持命名一致。
func (PrintLog) TableName() string {
	return "print_logs"
}
