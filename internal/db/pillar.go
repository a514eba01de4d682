package db

import "gorm.io/gorm"

// Pillar 定义了生活支柱模型，用于给习惯分组。
// 种子数据写入后视为只读的参考数据，正常使用中不会删除。
type Pillar struct {
	gorm.Model
	Name string `gorm:"size:100;uniqueIndex;not null"`
}
